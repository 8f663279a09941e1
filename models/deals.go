package models

// VehicleDealsResponse is the available-vehicles payload for a booking.
// Deal entries reuse SelectedVehicle.
type VehicleDealsResponse struct {
	ReservationID            string                    `json:"reservationId,omitempty"`
	Deals                    []SelectedVehicle         `json:"deals"`
	TotalVehicles            int                       `json:"totalVehicles,omitempty"`
	ReservationBlockDateTime *ReservationBlockDateTime `json:"reservationBlockDateTime,omitempty"`
	Filter                   *VehicleFilter            `json:"filter,omitempty"`
	QuickFilters             []QuickFilter             `json:"quickFilters,omitempty"`
	IsBundleSelected         bool                      `json:"isBundleSelected,omitempty"`
}

type ReservationBlockDateTime struct {
	Date     string `json:"date,omitempty"` // ISO string, e.g. "2025-11-21T09:47:04+01:00"
	TimeZone string `json:"timeZone,omitempty"`
}

type VehicleFilter struct {
	Brands            []string `json:"brands,omitempty"`
	TransmissionTypes []string `json:"transmissionTypes,omitempty"`
	FuelTypes         []string `json:"fuelTypes,omitempty"`
}

type QuickFilter struct {
	Key        string `json:"key,omitempty"`
	Title      string `json:"title,omitempty"`
	SelectType string `json:"selectType,omitempty"`
}
