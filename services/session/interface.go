package session

import (
	"context"

	"snapvroom/models"
)

// RentalAPI is the slice of the rental client the session depends on. The
// concrete implementation lives in services/rentalapi.
type RentalAPI interface {
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	GetAvailableVehicles(ctx context.Context, bookingID string) (*models.VehicleDealsResponse, error)
	GetProtectionPackages(ctx context.Context, bookingID string) (*models.ProtectionPackagesResponse, error)
	GetAddons(ctx context.Context, bookingID string) (*models.AddonsResponse, error)
	AssignVehicle(ctx context.Context, bookingID, vehicleID string) (*models.Booking, error)
	AssignProtectionPackage(ctx context.Context, bookingID, packageID string) (*models.Booking, error)
	AssignAddon(ctx context.Context, bookingID, addonID string, amount int) (*models.Booking, error)
	CompleteBooking(ctx context.Context, bookingID string) (*models.Booking, error)
}
