package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sauls8/nwa-jumpers/internal/dto/request"
	"github.com/sauls8/nwa-jumpers/internal/dto/response"
	"github.com/sauls8/nwa-jumpers/internal/usecase"
	"github.com/sauls8/nwa-jumpers/pkg/utils"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (public)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBookingError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, response.CreateBookingResponse{
		Success:   true,
		Message:   "Booking created successfully",
		BookingID: id,
	})
}

// CreateQuote handles POST /api/bookings/quote (public)
func (h *BookingHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req request.CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBookingError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.service.CreateQuote(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create quote")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, response.CreateBookingResponse{
		Success:   true,
		Message:   "Quote saved successfully",
		BookingID: id,
	})
}

// CheckAvailability handles GET /api/bookings/availability/{date} (public)
func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	availability, err := h.service.CheckAvailability(r.Context(), date, r.URL.Query().Get("inflatable"))
	if err != nil {
		h.handleServiceError(w, err, "check availability")
		return
	}

	utils.WriteJSON(w, http.StatusOK, availability)
}

// BookedDates handles GET /api/bookings/dates-with-bookings (public)
func (h *BookingHandler) BookedDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.service.DatesWithBookings(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get booked dates")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.DatesWithBookingsResponse{Dates: dates})
}

// ListBookings handles GET /api/bookings (admin)
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list bookings")
		return
	}

	utils.WriteJSON(w, http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/{id} (admin)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookingID(w, r)
	if !ok {
		return
	}

	booking, err := h.service.GetBooking(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get booking")
		return
	}

	utils.WriteJSON(w, http.StatusOK, booking)
}

// BookingsByDate handles GET /api/bookings/by-date/{date} (admin)
func (h *BookingHandler) BookingsByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	bookings, err := h.service.BookingsByDate(r.Context(), date)
	if err != nil {
		h.handleServiceError(w, err, "get bookings by date")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.BookingsByDateResponse{
		Date:     date,
		Bookings: bookings,
	})
}

// UpdateBooking handles PUT /api/bookings/{id} (admin)
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookingID(w, r)
	if !ok {
		return
	}

	var patch request.BookingPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.ResponseBookingError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.service.UpdateBooking(r.Context(), id, patch)
	if err != nil {
		h.handleServiceError(w, err, "update booking")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.UpdateBookingResponse{
		Success: true,
		Message: "Booking updated successfully",
		Booking: booking,
	})
}

// DownloadAgreement handles GET /api/bookings/{id}/pdf (admin)
func (h *BookingHandler) DownloadAgreement(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookingID(w, r)
	if !ok {
		return
	}

	filename, pdf, err := h.service.RenderAgreement(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "render agreement")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func (h *BookingHandler) bookingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.ResponseBookingError(w, http.StatusBadRequest, "Invalid booking ID")
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors onto the booking endpoints'
// {"success": false, "message": ...} wire shape.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBookingError(w, http.StatusNotFound, errMsg)

	case strings.Contains(errMsg, "validation failed"), strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBookingError(w, http.StatusBadRequest, errMsg)

	default:
		h.log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBookingError(w, http.StatusInternalServerError, "Internal server error")
	}
}
