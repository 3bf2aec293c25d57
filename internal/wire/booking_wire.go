package wire

import (
	"github.com/go-chi/chi/v5"

	"github.com/sauls8/nwa-jumpers/internal/adaptor"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// ==================== STOREFRONT ROUTES ====================
		// POST /api/bookings - Create a single-unit booking
		r.Post("/", bookingHandler.CreateBooking)

		// POST /api/bookings/quote - Persist a priced multi-item quote
		r.Post("/quote", bookingHandler.CreateQuote)

		// GET /api/bookings/availability/{date}?inflatable= - Check a date
		r.Get("/availability/{date}", bookingHandler.CheckAvailability)

		// GET /api/bookings/dates-with-bookings - Dates holding bookings
		r.Get("/dates-with-bookings", bookingHandler.BookedDates)

		// ==================== ADMIN ROUTES ====================
		// GET /api/bookings - All bookings ordered by event date
		r.Get("/", bookingHandler.ListBookings)

		// GET /api/bookings/by-date/{date} - Bookings on one date
		r.Get("/by-date/{date}", bookingHandler.BookingsByDate)

		// GET /api/bookings/{id} - One booking with items
		r.Get("/{id}", bookingHandler.GetBooking)

		// PUT /api/bookings/{id} - Partial edit of a booking
		r.Put("/{id}", bookingHandler.UpdateBooking)

		// GET /api/bookings/{id}/pdf - Rental agreement download
		r.Get("/{id}/pdf", bookingHandler.DownloadAgreement)
	})
}
