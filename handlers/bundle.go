package handlers

// HandlerBundle groups the handlers the route registry needs.
type HandlerBundle struct {
	Booking *BookingHandler
	AI      *AIHandler
}
