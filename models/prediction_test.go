package models

import (
	"strings"
	"testing"
)

func TestPredictionSummary(t *testing.T) {
	protection := "p-1"
	p := CarPreferencePrediction{
		RecommendedVehicleID:           "v-1",
		RecommendedVehicleReason:       "fits the family",
		RecommendedProtectionPackageID: &protection,
		RecommendedAddons: []RecommendedAddon{
			{AddonID: "a-1", Reason: "two kids in the photo"},
		},
	}

	summary := p.Summary()
	for _, want := range []string{
		"Recommended vehicle id: v-1",
		"Vehicle reason: fits the family",
		"Protection package id: p-1",
		"- a-1: two kids in the photo",
	} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestPredictionSummaryWithoutOptionals(t *testing.T) {
	p := CarPreferencePrediction{RecommendedVehicleID: "v-1"}

	summary := p.Summary()
	if !strings.Contains(summary, "Protection package id: none") {
		t.Fatalf("expected protection fallback line, got:\n%s", summary)
	}
	if !strings.Contains(summary, "Addons: none") {
		t.Fatalf("expected addons fallback line, got:\n%s", summary)
	}
}
