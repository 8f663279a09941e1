package session

import (
	"context"
	"errors"
	"testing"

	"snapvroom/models"
)

// fakeRentalAPI is an in-memory stand-in for the upstream booking API. Every
// mutating call returns a fresh server snapshot that never carries addons,
// matching the real backend.
type fakeRentalAPI struct {
	booking     models.Booking
	deals       []models.SelectedVehicle
	protections []models.ProtectionPackage
	addons      []models.AddonCategory

	failAssignAddon bool
	nilVehicleList  bool
	addonCalls      []string
}

func (f *fakeRentalAPI) snapshot() *models.Booking {
	snap := f.booking
	snap.Addons = nil
	return &snap
}

func (f *fakeRentalAPI) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	f.booking.ID = "b-1"
	f.booking.Status = "open"
	if req.BookedCategory != nil {
		f.booking.BookedCategory = *req.BookedCategory
	}
	return f.snapshot(), nil
}

func (f *fakeRentalAPI) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return f.snapshot(), nil
}

func (f *fakeRentalAPI) GetAvailableVehicles(ctx context.Context, bookingID string) (*models.VehicleDealsResponse, error) {
	if f.nilVehicleList {
		return nil, nil
	}
	return &models.VehicleDealsResponse{Deals: f.deals}, nil
}

func (f *fakeRentalAPI) GetProtectionPackages(ctx context.Context, bookingID string) (*models.ProtectionPackagesResponse, error) {
	return &models.ProtectionPackagesResponse{ProtectionPackages: f.protections}, nil
}

func (f *fakeRentalAPI) GetAddons(ctx context.Context, bookingID string) (*models.AddonsResponse, error) {
	return &models.AddonsResponse{Addons: f.addons}, nil
}

func (f *fakeRentalAPI) AssignVehicle(ctx context.Context, bookingID, vehicleID string) (*models.Booking, error) {
	for _, deal := range f.deals {
		if deal.Vehicle.ID == vehicleID {
			chosen := deal
			f.booking.SelectedVehicle = &chosen
		}
	}
	return f.snapshot(), nil
}

func (f *fakeRentalAPI) AssignProtectionPackage(ctx context.Context, bookingID, packageID string) (*models.Booking, error) {
	return f.snapshot(), nil
}

func (f *fakeRentalAPI) AssignAddon(ctx context.Context, bookingID, addonID string, amount int) (*models.Booking, error) {
	f.addonCalls = append(f.addonCalls, addonID)
	if f.failAssignAddon {
		return nil, errors.New("addon endpoint unavailable")
	}
	return f.snapshot(), nil
}

func (f *fakeRentalAPI) CompleteBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	f.booking.Status = "completed"
	return f.snapshot(), nil
}

func deal(id, acriss string) models.SelectedVehicle {
	return models.SelectedVehicle{Vehicle: models.Vehicle{ID: id, AcrissCode: acriss}}
}

func initializedSession(t *testing.T, api *fakeRentalAPI, category string) *Session {
	t.Helper()
	s := newSession("test-session", api)
	req := models.CreateBookingRequest{}
	if category != "" {
		req.BookedCategory = &category
	}
	if err := s.Initialize(context.Background(), req); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return s
}

func TestInitializeLoadsBookingAndCatalogs(t *testing.T) {
	api := &fakeRentalAPI{
		deals:       []models.SelectedVehicle{deal("v-1", "CDAR")},
		protections: []models.ProtectionPackage{{ID: "p-1"}},
		addons:      []models.AddonCategory{{ID: 1, Name: "Seats"}},
	}
	s := initializedSession(t, api, "CDAR")

	if b := s.Booking(); b == nil || b.ID != "b-1" {
		t.Fatalf("expected booking b-1, got %+v", b)
	}
	if v := s.Vehicles(); v == nil || len(v.Deals) != 1 {
		t.Fatalf("expected one vehicle deal, got %+v", v)
	}
	if p := s.Protections(); p == nil || len(p.ProtectionPackages) != 1 {
		t.Fatalf("expected one protection package, got %+v", p)
	}
	if a := s.Addons(); a == nil || len(a.Addons) != 1 {
		t.Fatalf("expected one addon category, got %+v", a)
	}
	if err := s.LastError(); err != nil {
		t.Fatalf("expected clean error slot, got %v", err)
	}
}

func TestInitializeToleratesAbsentVehicleList(t *testing.T) {
	api := &fakeRentalAPI{nilVehicleList: true}
	s := newSession("test-session", api)

	if err := s.Initialize(context.Background(), models.CreateBookingRequest{}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if s.Vehicles() != nil {
		t.Fatalf("expected no vehicle list, got %+v", s.Vehicles())
	}
}

func TestOperationsBeforeInitializeReportNoBooking(t *testing.T) {
	s := newSession("test-session", &fakeRentalAPI{})
	ctx := context.Background()

	if err := s.Refresh(ctx); !errors.Is(err, ErrNoBooking) {
		t.Fatalf("Refresh: expected ErrNoBooking, got %v", err)
	}
	if err := s.AssignVehicle(ctx, "v-1"); !errors.Is(err, ErrNoBooking) {
		t.Fatalf("AssignVehicle: expected ErrNoBooking, got %v", err)
	}
	if err := s.AssignAddon(ctx, "a-1", "GPS", 1); !errors.Is(err, ErrNoBooking) {
		t.Fatalf("AssignAddon: expected ErrNoBooking, got %v", err)
	}
	if _, err := s.Complete(ctx); !errors.Is(err, ErrNoBooking) {
		t.Fatalf("Complete: expected ErrNoBooking, got %v", err)
	}
	if err := s.LastError(); !errors.Is(err, ErrNoBooking) {
		t.Fatalf("expected last error recorded, got %v", err)
	}
}

func TestAddonAmountsAccumulatePerID(t *testing.T) {
	api := &fakeRentalAPI{deals: []models.SelectedVehicle{deal("v-1", "CDAR")}}
	s := initializedSession(t, api, "CDAR")
	ctx := context.Background()

	if err := s.AssignAddon(ctx, "a-1", "Child seat", 2); err != nil {
		t.Fatalf("first AssignAddon failed: %v", err)
	}
	if err := s.AssignAddon(ctx, "a-1", "Child seat", 1); err != nil {
		t.Fatalf("second AssignAddon failed: %v", err)
	}
	if err := s.AssignAddon(ctx, "a-2", "GPS", 1); err != nil {
		t.Fatalf("third AssignAddon failed: %v", err)
	}

	addons := s.Booking().Addons
	if len(addons) != 2 {
		t.Fatalf("expected 2 addon entries, got %+v", addons)
	}
	if addons[0].ID != "a-1" || addons[0].Amount != 3 {
		t.Fatalf("expected a-1 amount 3, got %+v", addons[0])
	}
	if addons[1].ID != "a-2" || addons[1].Amount != 1 {
		t.Fatalf("expected a-2 amount 1, got %+v", addons[1])
	}
}

func TestServerSnapshotNeverClobbersAddons(t *testing.T) {
	api := &fakeRentalAPI{deals: []models.SelectedVehicle{deal("v-1", "CDAR")}}
	s := initializedSession(t, api, "CDAR")
	ctx := context.Background()

	if err := s.AssignAddon(ctx, "a-1", "Child seat", 2); err != nil {
		t.Fatalf("AssignAddon failed: %v", err)
	}
	if err := s.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if err := s.AssignVehicle(ctx, "v-1"); err != nil {
		t.Fatalf("AssignVehicle failed: %v", err)
	}

	b := s.Booking()
	if len(b.Addons) != 1 || b.Addons[0].Amount != 2 {
		t.Fatalf("addons lost across server round-trips: %+v", b.Addons)
	}
	if b.SelectedVehicle == nil || b.SelectedVehicle.Vehicle.ID != "v-1" {
		t.Fatalf("vehicle assignment not merged: %+v", b.SelectedVehicle)
	}
}

func TestAddonIncrementSurvivesServerFailure(t *testing.T) {
	api := &fakeRentalAPI{
		deals:           []models.SelectedVehicle{deal("v-1", "CDAR")},
		failAssignAddon: true,
	}
	s := initializedSession(t, api, "CDAR")

	err := s.AssignAddon(context.Background(), "a-1", "Child seat", 1)
	if err == nil {
		t.Fatal("expected AssignAddon to surface the server failure")
	}
	addons := s.Booking().Addons
	if len(addons) != 1 || addons[0].Amount != 1 {
		t.Fatalf("optimistic increment must be kept on failure, got %+v", addons)
	}
	if s.LastError() == nil {
		t.Fatal("expected last error recorded")
	}
}

func TestSelectInitialVehiclePrefersCategoryMatch(t *testing.T) {
	api := &fakeRentalAPI{
		deals: []models.SelectedVehicle{
			deal("v-1", "EDMR"),
			deal("v-2", "CDAR"),
			deal("v-3", "FDAR"),
		},
	}
	s := initializedSession(t, api, "CDAR")

	for i := 0; i < 20; i++ {
		chosen := s.SelectInitialVehicle()
		if chosen == nil || chosen.Vehicle.ID != "v-2" {
			t.Fatalf("expected the single CDAR match v-2, got %+v", chosen)
		}
	}
}

func TestSelectInitialVehicleFallsBackToAnyDeal(t *testing.T) {
	api := &fakeRentalAPI{
		deals: []models.SelectedVehicle{deal("v-1", "EDMR"), deal("v-2", "FDAR")},
	}
	s := initializedSession(t, api, "CDAR")

	chosen := s.SelectInitialVehicle()
	if chosen == nil {
		t.Fatal("expected a fallback deal, got nil")
	}
	if chosen.Vehicle.ID != "v-1" && chosen.Vehicle.ID != "v-2" {
		t.Fatalf("fallback chose an unknown deal: %+v", chosen)
	}
}

func TestSelectInitialVehicleNilCases(t *testing.T) {
	uninitialized := newSession("test-session", &fakeRentalAPI{})
	if got := uninitialized.SelectInitialVehicle(); got != nil {
		t.Fatalf("expected nil without a booking, got %+v", got)
	}

	noDeals := initializedSession(t, &fakeRentalAPI{}, "CDAR")
	if got := noDeals.SelectInitialVehicle(); got != nil {
		t.Fatalf("expected nil without deals, got %+v", got)
	}

	noCategory := initializedSession(t, &fakeRentalAPI{
		deals: []models.SelectedVehicle{deal("v-1", "CDAR")},
	}, "")
	if got := noCategory.SelectInitialVehicle(); got != nil {
		t.Fatalf("expected nil without a booked category, got %+v", got)
	}
}

func TestFullBookingFlow(t *testing.T) {
	api := &fakeRentalAPI{
		deals:       []models.SelectedVehicle{deal("v-1", "CDAR"), deal("v-2", "EDMR")},
		protections: []models.ProtectionPackage{{ID: "p-1"}},
	}
	s := initializedSession(t, api, "CDAR")
	ctx := context.Background()

	if err := s.AssignVehicle(ctx, "v-1"); err != nil {
		t.Fatalf("AssignVehicle failed: %v", err)
	}
	if err := s.AssignAddon(ctx, "a-1", "Child seat", 2); err != nil {
		t.Fatalf("AssignAddon failed: %v", err)
	}
	if err := s.AssignAddon(ctx, "a-1", "Child seat", 1); err != nil {
		t.Fatalf("AssignAddon failed: %v", err)
	}

	completed, err := s.Complete(ctx)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if completed.Status != "completed" {
		t.Fatalf("expected completed status, got %q", completed.Status)
	}
	if completed.SelectedVehicle == nil || completed.SelectedVehicle.Vehicle.ID != "v-1" {
		t.Fatalf("expected vehicle v-1 on completion, got %+v", completed.SelectedVehicle)
	}
	if len(completed.Addons) != 1 || completed.Addons[0].ID != "a-1" || completed.Addons[0].Amount != 3 {
		t.Fatalf("expected addons [{a-1 3}], got %+v", completed.Addons)
	}
}

func TestResetClearsEverything(t *testing.T) {
	api := &fakeRentalAPI{deals: []models.SelectedVehicle{deal("v-1", "CDAR")}}
	s := initializedSession(t, api, "CDAR")

	s.Reset()
	if s.Booking() != nil || s.Vehicles() != nil || s.Protections() != nil || s.Addons() != nil {
		t.Fatal("expected all session state cleared")
	}
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(&fakeRentalAPI{})

	s := m.Create()
	if s.ID == "" {
		t.Fatal("expected a generated session id")
	}
	got, err := m.Get(s.ID)
	if err != nil || got != s {
		t.Fatalf("Get returned %v, %v", got, err)
	}

	m.Drop(s.ID)
	if _, err := m.Get(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after Drop, got %v", err)
	}
}
