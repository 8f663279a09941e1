// File: services/session/session.go
package session

import (
	"context"
	"sync"

	"snapvroom/models"
	"snapvroom/utils"

	"go.uber.org/zap"
)

// Session owns the canonical booking plus the last-fetched candidate lists for
// one client. It is the only place canonical booking state is mutated; the
// rental client and the classifier bridge stay stateless.
type Session struct {
	ID string

	api    RentalAPI
	logger *zap.Logger

	mu          sync.Mutex
	booking     *models.Booking
	vehicles    *models.VehicleDealsResponse
	protections *models.ProtectionPackagesResponse
	addons      *models.AddonsResponse
	lastErr     error
}

func newSession(id string, api RentalAPI) *Session {
	return &Session{
		ID:     id,
		api:    api,
		logger: utils.GetLogger(),
	}
}

// applyServerBooking merges a server-returned booking into the session.
// Every field takes the server's value except Addons, which is copied from the
// current in-memory booking: addon selections are client-owned until the
// backend persists them, and a server snapshot must never clobber them.
func (s *Session) applyServerBooking(server *models.Booking) {
	merged := *server
	if s.booking != nil {
		merged.Addons = s.booking.Addons
	}
	s.booking = &merged
}

// begin clears the last-error slot; fail records and returns the error.
func (s *Session) begin() {
	s.lastErr = nil
}

func (s *Session) fail(err error) error {
	s.lastErr = err
	return err
}

// Initialize runs the startup sequence: create the booking, fetch its full
// detail, then fetch vehicles, addons and protections concurrently. All three
// candidate fetches are awaited (collect-all); the first failure is reported
// and successful legs are kept.
func (s *Session) Initialize(ctx context.Context, req models.CreateBookingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	created, err := s.api.CreateBooking(ctx, req)
	if err != nil {
		return s.fail(err)
	}
	s.applyServerBooking(created)

	full, err := s.api.GetBooking(ctx, created.ID)
	if err != nil {
		return s.fail(err)
	}
	s.applyServerBooking(full)

	var (
		wg          sync.WaitGroup
		vehicles    *models.VehicleDealsResponse
		addons      *models.AddonsResponse
		protections *models.ProtectionPackagesResponse
		errs        [3]error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		vehicles, errs[0] = s.api.GetAvailableVehicles(ctx, created.ID)
	}()
	go func() {
		defer wg.Done()
		addons, errs[1] = s.api.GetAddons(ctx, created.ID)
	}()
	go func() {
		defer wg.Done()
		protections, errs[2] = s.api.GetProtectionPackages(ctx, created.ID)
	}()
	wg.Wait()

	if vehicles != nil {
		s.vehicles = vehicles
	}
	if addons != nil {
		s.addons = addons
	}
	if protections != nil {
		s.protections = protections
	}
	for _, err := range errs {
		if err != nil {
			return s.fail(err)
		}
	}

	dealCount := 0
	if s.vehicles != nil {
		dealCount = len(s.vehicles.Deals)
	}
	s.logger.Info("Booking session initialized",
		zap.String("sessionId", s.ID),
		zap.String("bookingId", created.ID),
		zap.Int("vehicles", dealCount))
	return nil
}

// Refresh re-fetches the booking detail and applies the merge rule.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	if s.booking == nil || s.booking.ID == "" {
		return s.fail(ErrNoBooking)
	}
	fetched, err := s.api.GetBooking(ctx, s.booking.ID)
	if err != nil {
		return s.fail(err)
	}
	s.applyServerBooking(fetched)
	return nil
}

// AssignVehicle assigns a vehicle to the booking.
func (s *Session) AssignVehicle(ctx context.Context, vehicleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	if s.booking == nil || s.booking.ID == "" {
		return s.fail(ErrNoBooking)
	}
	updated, err := s.api.AssignVehicle(ctx, s.booking.ID, vehicleID)
	if err != nil {
		return s.fail(err)
	}
	s.applyServerBooking(updated)
	return nil
}

// AssignProtection assigns a protection package to the booking.
func (s *Session) AssignProtection(ctx context.Context, packageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	if s.booking == nil || s.booking.ID == "" {
		return s.fail(ErrNoBooking)
	}
	updated, err := s.api.AssignProtectionPackage(ctx, s.booking.ID, packageID)
	if err != nil {
		return s.fail(err)
	}
	s.applyServerBooking(updated)
	return nil
}

// AssignAddon records amount units of an addon locally, then notifies the
// server. The local update is optimistic: amounts accumulate per addon id, and
// a failed server call does not roll the increment back (the UI has already
// shown it). The server response is merged without touching the addon list.
func (s *Session) AssignAddon(ctx context.Context, addonID, title string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	if s.booking == nil || s.booking.ID == "" {
		return s.fail(ErrNoBooking)
	}
	if amount <= 0 {
		amount = 1
	}

	found := false
	for i := range s.booking.Addons {
		if s.booking.Addons[i].ID == addonID {
			s.booking.Addons[i].Amount += amount
			found = true
			break
		}
	}
	if !found {
		s.booking.Addons = append(s.booking.Addons, models.BookingAddon{
			ID:     addonID,
			Title:  title,
			Amount: amount,
		})
	}

	updated, err := s.api.AssignAddon(ctx, s.booking.ID, addonID, amount)
	if err != nil {
		return s.fail(err)
	}
	s.applyServerBooking(updated)
	return nil
}

// Complete transitions the booking to its terminal status and returns the
// merged result.
func (s *Session) Complete(ctx context.Context) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	if s.booking == nil || s.booking.ID == "" {
		return nil, s.fail(ErrNoBooking)
	}
	completed, err := s.api.CompleteBooking(ctx, s.booking.ID)
	if err != nil {
		return nil, s.fail(err)
	}
	s.applyServerBooking(completed)
	return s.booking, nil
}

// Reset discards the booking and all candidate lists.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booking = nil
	s.vehicles = nil
	s.protections = nil
	s.addons = nil
	s.lastErr = nil
}

// Booking returns the canonical booking, or nil before initialization.
func (s *Session) Booking() *models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.booking
}

// Vehicles returns the last-fetched vehicle deals.
func (s *Session) Vehicles() *models.VehicleDealsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vehicles
}

// Protections returns the last-fetched protections catalog.
func (s *Session) Protections() *models.ProtectionPackagesResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.protections
}

// Addons returns the last-fetched addon catalog.
func (s *Session) Addons() *models.AddonsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addons
}

// LastError returns the error recorded by the most recent failed operation.
// It is cleared at the start of every operation.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Snapshot publishes the session state for the UI.
func (s *Session) Snapshot() models.BookingSessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := models.BookingSessionView{
		SessionID:   s.ID,
		Booking:     s.booking,
		Vehicles:    s.vehicles,
		Protections: s.protections,
		Addons:      s.addons,
	}
	if s.lastErr != nil {
		view.LastError = s.lastErr.Error()
	}
	return view
}
