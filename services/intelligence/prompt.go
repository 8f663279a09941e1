// File: services/intelligence/prompt.go
package ai

import (
	"fmt"
	"strings"

	"snapvroom/models"
	"snapvroom/services/session"
)

// buildBookingContext renders the session's full candidate catalogs as text for
// the classifier: every loaded vehicle, protection and addon with its id, so
// the returned ids are always resolvable against the session's own catalogs.
func buildBookingContext(sess *session.Session, userDescription string) string {
	var lines []string

	if userDescription != "" {
		lines = append(lines, "USER_DESCRIPTION:", userDescription, "")
	}

	booking := sess.Booking()
	lines = append(lines, "BOOKING:")
	if booking != nil {
		lines = append(lines, fmt.Sprintf("- id: %s", booking.ID))
		lines = append(lines, fmt.Sprintf("- bookedCategory: %s", orUnknown(booking.BookedCategory)))
		lines = append(lines, fmt.Sprintf("- status: %s", orUnknown(booking.Status)))
		lines = append(lines, fmt.Sprintf("- createdAt: %s", orUnknown(booking.CreatedAt)))
	} else {
		lines = append(lines, "- none (booking not loaded)")
	}
	lines = append(lines, "")

	deals := sess.Vehicles()
	initial := sess.SelectInitialVehicle()
	if initial == nil && deals != nil && len(deals.Deals) > 0 {
		initial = &deals.Deals[0]
	}
	lines = append(lines, "INITIAL_SELECTED_CAR:")
	if initial != nil {
		v := initial.Vehicle
		lines = append(lines, fmt.Sprintf("- id: %s", v.ID))
		lines = append(lines, fmt.Sprintf("- name: %s %s", v.Brand, v.Model))
		lines = append(lines, fmt.Sprintf("- acrissCode: %s", orUnknown(v.AcrissCode)))
		lines = append(lines, fmt.Sprintf("- groupType: %s", orUnknown(v.GroupType)))
		lines = append(lines, fmt.Sprintf("- passengersCount: %d", v.PassengersCount))
		lines = append(lines, fmt.Sprintf("- bagsCount: %d", v.BagsCount))
		lines = append(lines, fmt.Sprintf("- fuelType: %s", orUnknown(v.FuelType)))
		lines = append(lines, fmt.Sprintf("- transmissionType: %s", orUnknown(v.TransmissionType)))
		if initial.Pricing != nil {
			lines = append(lines, "- price: "+formatPrice(initial.Pricing.DisplayPrice))
		}
		lines = append(lines, fmt.Sprintf("- isRecommended: %t", v.IsRecommended))
		lines = append(lines, fmt.Sprintf("- isMoreLuxury: %t", v.IsMoreLuxury))
	} else {
		lines = append(lines, "- none (no vehicles available)")
	}
	lines = append(lines, "")

	lines = append(lines, "AVAILABLE_VEHICLES:")
	if deals != nil && len(deals.Deals) > 0 {
		for _, deal := range deals.Deals {
			v := deal.Vehicle
			row := fmt.Sprintf("- id: %s", v.ID)
			if v.Brand != "" || v.Model != "" {
				row += fmt.Sprintf(", name: %s %s", v.Brand, v.Model)
			}
			if v.AcrissCode != "" {
				row += ", acriss: " + v.AcrissCode
			}
			if v.GroupType != "" {
				row += ", groupType: " + v.GroupType
			}
			if v.PassengersCount > 0 {
				row += fmt.Sprintf(", seats: %d", v.PassengersCount)
			}
			if v.BagsCount > 0 {
				row += fmt.Sprintf(", bags: %d", v.BagsCount)
			}
			if v.FuelType != "" {
				row += ", fuel: " + v.FuelType
			}
			if v.TransmissionType != "" {
				row += ", transmission: " + v.TransmissionType
			}
			if deal.Pricing != nil {
				row += ", price: " + formatPrice(deal.Pricing.DisplayPrice)
			}
			if deal.DealInfo != "" {
				row += ", dealInfo: " + deal.DealInfo
			}
			if v.IsRecommended {
				row += ", isRecommended: true"
			}
			if v.IsMoreLuxury {
				row += ", isMoreLuxury: true"
			}
			if v.IsExcitingDiscount {
				row += ", isExcitingDiscount: true"
			}
			lines = append(lines, row)
		}
	} else {
		lines = append(lines, "- none")
	}
	lines = append(lines, "")

	lines = append(lines, "PROTECTION_PACKAGES:")
	protections := sess.Protections()
	if protections != nil && len(protections.ProtectionPackages) > 0 {
		for _, p := range protections.ProtectionPackages {
			row := fmt.Sprintf("- id: %s", p.ID)
			if p.Name != "" {
				row += ", name: " + p.Name
			}
			if p.RatingStars > 0 {
				row += fmt.Sprintf(", ratingStars: %d", p.RatingStars)
			}
			if p.DeductibleAmount != nil {
				row += fmt.Sprintf(", deductible: %g %s", p.DeductibleAmount.Value, p.DeductibleAmount.Currency)
			}
			if p.Price != nil {
				row += ", price: " + formatPrice(p.Price.DisplayPrice)
			}
			if p.IsSelected {
				row += ", isSelected: true"
			}
			lines = append(lines, row)
		}
	} else {
		lines = append(lines, "- none")
	}
	lines = append(lines, "")

	lines = append(lines, "ADDONS:")
	addons := sess.Addons()
	wroteAddon := false
	if addons != nil {
		for _, category := range addons.Addons {
			for _, option := range category.Options {
				if option.ChargeDetail == nil {
					continue
				}
				row := fmt.Sprintf("- id: %s", option.ChargeDetail.ID)
				if option.ChargeDetail.Title != "" {
					row += ", title: " + option.ChargeDetail.Title
				}
				if option.AdditionalInfo != nil {
					if option.AdditionalInfo.Price != nil {
						row += ", price: " + formatPrice(option.AdditionalInfo.Price.DisplayPrice)
					}
					row += fmt.Sprintf(", isEnabled: %t", option.AdditionalInfo.IsEnabled)
				}
				lines = append(lines, row)
				wroteAddon = true
			}
		}
	}
	if !wroteAddon {
		lines = append(lines, "- none")
	}

	return strings.Join(lines, "\n")
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func formatPrice(p models.PriceComponent) string {
	return strings.TrimSpace(fmt.Sprintf("%g %s %s", p.Amount, p.Currency, p.Suffix))
}

// buildClassifierPrompt wraps the catalog snapshot with the task description
// and the safety constraints the classifier must follow.
func buildClassifierPrompt(bookingContext string) string {
	return `You work for a car rental company (similar to Sixt).

Your task:
- Based on the customer context and booking/inventory data, recommend:
  1) ONE specific vehicle (using its id),
  2) ONE protection package (using its id, or null if none is appropriate),
  3) ONE or more addons (each with its addon id) where they add clear value (aim for 2-3 when appropriate, but avoid spamming unnecessary addons),
- For each of these (vehicle, protection package, each addon), explain briefly WHY you recommend it.
- The vehicle you recommend should generally be more expensive or more feature-rich than the initial selected car, if such an option exists, while still reasonably fitting the user context.

You will receive:
- A high-level description of the user and their trip (derived from the app / image).
- Booking context including the initial selected car.
- A list of available vehicles, protection packages, and addons with their IDs and key attributes.

Use only the IDs provided in the context when recommending a vehicle, protection package, or addon. Do not invent new IDs.

Safety / fairness rules:
- Use only visible, non-sensitive cues (e.g. luggage, group size, clothing style, environment like airport/beach/mountain).
- Do NOT infer or mention race, ethnicity, nationality, religion, health, disability, sexual orientation, or wealth/socioeconomic status.
- Do NOT guess exact ages; use general roles like "adults" and "children".
- If something is unclear, make safe, neutral assumptions and avoid overfitting.

Output design:
- recommended_vehicle_id: the id of the vehicle you think is best for this user, preferring a more expensive/feature-rich car than the initial one when reasonable.
- recommended_vehicle_reason: short explanation in friendly language that can be shown to the user.
- recommended_protection_package_id: id of the chosen protection package, or null if the user clearly does not need one.
- recommended_protection_reason: short explanation for your protection choice, suitable for the user.
- recommended_addons: array of objects { addon_id, reason } where reason explains why that addon helps this user.
- overall_explanation: short summary tying everything together that can be shown to the user.

Booking and inventory context (vehicles, protection packages, addons, and initial selected car):
` + bookingContext + `

Return ONLY valid JSON matching the provided schema. No extra commentary.`
}
