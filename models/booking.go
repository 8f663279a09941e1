package models

import "encoding/json"

// Booking is the server-tracked reservation aggregate.
//
// Addons is client-owned state: the upstream API does not persist addon
// selections yet, so the list is never populated from server JSON and survives
// every server round-trip until the session replaces it locally.
type Booking struct {
	ID                 string              `json:"id"`
	BookedCategory     string              `json:"bookedCategory,omitempty"`
	Status             string              `json:"status,omitempty"`
	CreatedAt          string              `json:"createdAt,omitempty"`
	SelectedVehicle    *SelectedVehicle    `json:"selectedVehicle,omitempty"`
	ProtectionPackages []ProtectionPackage `json:"protectionPackages,omitempty"`
	Addons             []BookingAddon      `json:"addons,omitempty"`
}

// bookingWire mirrors Booking's server-side fields. ProtectionPackages is kept
// raw because the server sometimes returns a single object instead of a list.
type bookingWire struct {
	ID                 string           `json:"id"`
	BookedCategory     string           `json:"bookedCategory"`
	Status             string           `json:"status"`
	CreatedAt          string           `json:"createdAt"`
	SelectedVehicle    *SelectedVehicle `json:"selectedVehicle"`
	ProtectionPackages json.RawMessage  `json:"protectionPackages"`
}

// UnmarshalJSON decodes the server's booking representation. Addons are left
// empty: they are local UI state, not server state.
func (b *Booking) UnmarshalJSON(data []byte) error {
	var wire bookingWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	b.ID = wire.ID
	b.BookedCategory = wire.BookedCategory
	b.Status = wire.Status
	b.CreatedAt = wire.CreatedAt
	b.SelectedVehicle = wire.SelectedVehicle
	b.Addons = nil
	b.ProtectionPackages = normalizeProtectionPackages(wire.ProtectionPackages)
	return nil
}

// normalizeProtectionPackages accepts either a list or a single object and
// always yields a list. Anything else decodes to nil.
func normalizeProtectionPackages(raw json.RawMessage) []ProtectionPackage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var list []ProtectionPackage
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var single ProtectionPackage
	if err := json.Unmarshal(raw, &single); err == nil {
		return []ProtectionPackage{single}
	}
	return nil
}

// CreateBookingRequest is the body for the create-booking call. Fields the
// backend fills on its own stay nil.
type CreateBookingRequest struct {
	PickupStation   *string `json:"pickupStation"`
	DropoffStation  *string `json:"dropoffStation"`
	PickupDateTime  *string `json:"pickupDateTime"`
	DropoffDateTime *string `json:"dropoffDateTime"`
	BookedCategory  *string `json:"bookedCategory"`
}
