package meta

import "github.com/coregx/fmindex/index"

// Hit represents one match reported by Engine.Search. Which fields are
// meaningful depends on the Config.Output the search ran with: Position is
// set under OutputPositions, Cursor is set under OutputCursors.
type Hit struct {
	Position int
	Cursor   index.BiCursor
	Errors   int
}
