package session

import (
	"math/rand"

	"snapvroom/models"
)

// SelectInitialVehicle picks a starting vehicle for the wizard without any
// network call: a uniformly random deal whose ACRISS code matches the
// booking's booked category, falling back to a uniformly random deal when
// nothing matches. Returns nil when no booking, no category or no deals are
// loaded. The randomness is a placeholder selection heuristic.
func (s *Session) SelectInitialVehicle() *models.SelectedVehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectInitialVehicleLocked()
}

func (s *Session) selectInitialVehicleLocked() *models.SelectedVehicle {
	if s.booking == nil || s.booking.BookedCategory == "" {
		return nil
	}
	if s.vehicles == nil || len(s.vehicles.Deals) == 0 {
		return nil
	}
	deals := s.vehicles.Deals

	var matching []models.SelectedVehicle
	for _, deal := range deals {
		if deal.Vehicle.AcrissCode == s.booking.BookedCategory {
			matching = append(matching, deal)
		}
	}

	if len(matching) > 0 {
		chosen := matching[rand.Intn(len(matching))]
		return &chosen
	}
	chosen := deals[rand.Intn(len(deals))]
	return &chosen
}
