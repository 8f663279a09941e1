package models

// BookingSessionView is the session snapshot published to the UI.
type BookingSessionView struct {
	SessionID   string                      `json:"sessionId"`
	Booking     *Booking                    `json:"booking,omitempty"`
	Vehicles    *VehicleDealsResponse       `json:"vehicles,omitempty"`
	Protections *ProtectionPackagesResponse `json:"protections,omitempty"`
	Addons      *AddonsResponse             `json:"addons,omitempty"`
	LastError   string                      `json:"lastError,omitempty"`
}
