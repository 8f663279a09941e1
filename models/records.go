package models

import "time"

// CompletedBookingRecord is the archived snapshot of a booking that reached
// its terminal status.
type CompletedBookingRecord struct {
	ID             string         `bson:"id" json:"id"`
	SessionID      string         `bson:"sessionId" json:"sessionId"`
	BookingID      string         `bson:"bookingId" json:"bookingId"`
	BookedCategory string         `bson:"bookedCategory,omitempty" json:"bookedCategory,omitempty"`
	Status         string         `bson:"status,omitempty" json:"status,omitempty"`
	VehicleID      string         `bson:"vehicleId,omitempty" json:"vehicleId,omitempty"`
	Addons         []BookingAddon `bson:"addons,omitempty" json:"addons,omitempty"`
	CompletedAt    time.Time      `bson:"completedAt" json:"completedAt"`
}
