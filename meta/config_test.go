package meta

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("DefaultConfig() should validate, got %v", err)
	}
	if c.Mode != ModeAll {
		t.Errorf("DefaultConfig().Mode = %v, want ModeAll", c.Mode)
	}
	if c.Output != OutputPositions {
		t.Errorf("DefaultConfig().Output = %v, want OutputPositions", c.Output)
	}
	if !c.UseSchemes {
		t.Error("DefaultConfig().UseSchemes should be true")
	}
}

func TestValidateRejectsNegativeBudgets(t *testing.T) {
	cases := []Config{
		{MaxErrorTotal: -1},
		{MaxErrorSub: -1},
		{MaxErrorIns: -1},
		{MaxErrorDel: -1},
	}
	for i, c := range cases {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: Validate() should reject negative error budget, got nil", i)
		}
	}
}

func TestValidateRejectsOutOfRangeRates(t *testing.T) {
	cases := []Config{
		{MaxErrorRateTotal: -0.1},
		{MaxErrorRateTotal: 1.1},
		{MaxErrorRateSub: 2},
	}
	for i, c := range cases {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: Validate() should reject an out-of-[0,1] rate, got nil", i)
		}
	}
}

func TestValidateRejectsUnknownModeAndOutput(t *testing.T) {
	if err := (Config{Mode: Mode(99)}).Validate(); err == nil {
		t.Error("Validate() should reject an unrecognized Mode")
	}
	if err := (Config{Output: Output(99)}).Validate(); err == nil {
		t.Error("Validate() should reject an unrecognized Output")
	}
}

func TestValidateRequiresStrataWithModeStrata(t *testing.T) {
	c := Config{Mode: ModeStrata, Strata: 0}
	if err := c.Validate(); err == nil {
		t.Error("Validate() should reject ModeStrata with Strata < 1")
	}
	c.Strata = 1
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() should accept ModeStrata with Strata = 1, got %v", err)
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "Mode", Message: "must be one of ModeAll, ModeBest, ModeAllBest, ModeStrata"}
	want := "meta: invalid config: Mode: must be one of ModeAll, ModeBest, ModeAllBest, ModeStrata"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestBudgetForPrefersRateWhenSet(t *testing.T) {
	if got := budgetFor(10, 2, 0); got != 2 {
		t.Errorf("budgetFor with no rate = %d, want 2 (absolute)", got)
	}
	if got := budgetFor(10, 2, 0.3); got != 3 {
		t.Errorf("budgetFor with rate 0.3 over length 10 = %d, want 3", got)
	}
}

func TestModeAndOutputStringers(t *testing.T) {
	for mode, want := range map[Mode]string{
		ModeAll:     "all",
		ModeBest:    "best",
		ModeAllBest: "all_best",
		ModeStrata:  "strata",
		Mode(99):    "unknown",
	} {
		if got := mode.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", mode, got, want)
		}
	}
	for out, want := range map[Output]string{
		OutputPositions: "positions",
		OutputCursors:   "cursors",
		Output(99):      "unknown",
	} {
		if got := out.String(); got != want {
			t.Errorf("Output(%d).String() = %q, want %q", out, got, want)
		}
	}
}
