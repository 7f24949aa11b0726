package gotchi

import "testing"

func TestFacetABIMethods(t *testing.T) {
	methods := []string{
		"collateralBalance",
		"collaterals",
		"getAllCollateralTypes",
		"collateralInfo",
		"getCollateralInfo",
		"increaseStake",
		"decreaseStake",
		"decreaseAndDestroy",
		"setCollateralEyeShapeSvgId",
	}

	for _, name := range methods {
		t.Run(name, func(t *testing.T) {
			if _, ok := facetABI.Methods[name]; !ok {
				t.Errorf("Expected method %q in facet ABI", name)
			}
		})
	}
}

func TestFacetABIEvents(t *testing.T) {
	events := []string{
		EventIncreaseStake,
		EventDecreaseStake,
		EventExperienceTransfer,
	}

	for _, name := range events {
		t.Run(name, func(t *testing.T) {
			if _, ok := facetABI.Events[name]; !ok {
				t.Errorf("Expected event %q in facet ABI", name)
			}
		})
	}
}

func TestParseABI(t *testing.T) {
	t.Run("valid ABI", func(t *testing.T) {
		parsed, err := ParseABI(FacetABI)
		if err != nil {
			t.Fatalf("ParseABI failed: %v", err)
		}
		if len(parsed.Methods) != 9 {
			t.Errorf("Expected 9 methods, got %d", len(parsed.Methods))
		}
	})

	t.Run("invalid ABI", func(t *testing.T) {
		if _, err := ParseABI("not json"); err == nil {
			t.Error("Expected error for invalid ABI JSON")
		}
	})
}

func TestMustParseABIPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustParseABI to panic on invalid JSON")
		}
	}()
	MustParseABI("not json")
}

func TestMethodSelectors(t *testing.T) {
	// Selectors are derived from the canonical signatures; pin a few so an
	// accidental ABI edit shows up immediately.
	tests := []struct {
		method    string
		signature string
	}{
		{"collateralBalance", "collateralBalance(uint256)"},
		{"increaseStake", "increaseStake(uint256,uint256)"},
		{"decreaseAndDestroy", "decreaseAndDestroy(uint256,uint256)"},
		{"setCollateralEyeShapeSvgId", "setCollateralEyeShapeSvgId(address,uint8)"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			if got := facetABI.Methods[tt.method].Sig; got != tt.signature {
				t.Errorf("Expected signature %q, got %q", tt.signature, got)
			}
		})
	}
}
