package models

import (
	"fmt"
	"strings"
)

// RecommendedAddon pairs an addon id from the catalog with the reason it was suggested.
type RecommendedAddon struct {
	AddonID string `json:"addon_id"`
	Reason  string `json:"reason"`
}

// CarPreferencePrediction is the advisory result of the image classification.
// It only ever references ids present in the session's loaded catalogs and
// never feeds back into the canonical booking.
type CarPreferencePrediction struct {
	RecommendedVehicleID           string             `json:"recommended_vehicle_id"`
	RecommendedVehicleReason       string             `json:"recommended_vehicle_reason"`
	RecommendedProtectionPackageID *string            `json:"recommended_protection_package_id"`
	RecommendedProtectionReason    *string            `json:"recommended_protection_reason"`
	RecommendedAddons              []RecommendedAddon `json:"recommended_addons"`
	OverallExplanation             *string            `json:"overall_explanation"`
}

// Summary renders the prediction as user-presentable text.
func (p CarPreferencePrediction) Summary() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Recommended vehicle id: %s", p.RecommendedVehicleID))
	parts = append(parts, fmt.Sprintf("Vehicle reason: %s", p.RecommendedVehicleReason))
	if p.RecommendedProtectionPackageID != nil {
		parts = append(parts, fmt.Sprintf("Protection package id: %s", *p.RecommendedProtectionPackageID))
	} else {
		parts = append(parts, "Protection package id: none")
	}
	if p.RecommendedProtectionReason != nil {
		parts = append(parts, fmt.Sprintf("Protection reason: %s", *p.RecommendedProtectionReason))
	}
	if len(p.RecommendedAddons) == 0 {
		parts = append(parts, "Addons: none")
	} else {
		lines := make([]string, 0, len(p.RecommendedAddons))
		for _, a := range p.RecommendedAddons {
			lines = append(lines, fmt.Sprintf("- %s: %s", a.AddonID, a.Reason))
		}
		parts = append(parts, "Addons:\n"+strings.Join(lines, "\n"))
	}
	if p.OverallExplanation != nil {
		parts = append(parts, fmt.Sprintf("Overall explanation: %s", *p.OverallExplanation))
	}
	return strings.Join(parts, "\n")
}
