package calculator

import (
	"strings"
	"testing"

	"github.com/Sood122/yeild-pridiction/internal/model"
)

func TestValidateInputsOutOfDomain(t *testing.T) {
	system, err := NewCropSystem(1)
	if err != nil {
		t.Fatalf("NewCropSystem: %v", err)
	}

	warnings := ValidateInputs(system, model.Inputs{Rainfall: 300, Temperature: 30, Fertilizer: 100}, NewSeasonTable())
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got: %v", warnings)
	}
	if !strings.Contains(warnings[0], "rainfall 300 is outside [0, 200], clamped to 200") {
		t.Fatalf("unexpected warning: %s", warnings[0])
	}
}

func TestValidateInputsInDomain(t *testing.T) {
	system, err := NewCropSystem(1)
	if err != nil {
		t.Fatalf("NewCropSystem: %v", err)
	}

	warnings := ValidateInputs(system, model.Inputs{Rainfall: 0, Temperature: 50, Fertilizer: 200, Season: SeasonZaid}, NewSeasonTable())
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got: %v", warnings)
	}
}

func TestValidateInputsUnknownSeason(t *testing.T) {
	system, err := NewCropSystem(1)
	if err != nil {
		t.Fatalf("NewCropSystem: %v", err)
	}

	warnings := ValidateInputs(system, model.Inputs{Rainfall: 10, Temperature: 20, Fertilizer: 30, Season: "Winter"}, NewSeasonTable())
	if !containsString(warnings, `unknown season "Winter", no crops suggested`) {
		t.Fatalf("expected season warning, got: %v", warnings)
	}
}

func containsString(items []string, want string) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}
