package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sauls8/nwa-jumpers/internal/dto/request"
	"github.com/sauls8/nwa-jumpers/internal/dto/response"
)

// stubBookingService returns canned values so the handler's status and
// body mapping can be tested in isolation.
type stubBookingService struct {
	createID  int64
	createErr error
	booking   *response.BookingResponse
	getErr    error
	avail     *response.AvailabilityResponse
}

func (s *stubBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (int64, error) {
	return s.createID, s.createErr
}

func (s *stubBookingService) CreateQuote(ctx context.Context, req *request.CreateQuoteRequest) (int64, error) {
	return s.createID, s.createErr
}

func (s *stubBookingService) CheckAvailability(ctx context.Context, date, bounceHouseType string) (*response.AvailabilityResponse, error) {
	return s.avail, nil
}

func (s *stubBookingService) DatesWithBookings(ctx context.Context) ([]string, error) {
	return []string{"2026-09-12"}, nil
}

func (s *stubBookingService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	return []response.BookingResponse{}, nil
}

func (s *stubBookingService) GetBooking(ctx context.Context, id int64) (*response.BookingResponse, error) {
	return s.booking, s.getErr
}

func (s *stubBookingService) BookingsByDate(ctx context.Context, date string) ([]response.BookingResponse, error) {
	return []response.BookingResponse{}, nil
}

func (s *stubBookingService) UpdateBooking(ctx context.Context, id int64, patch request.BookingPatch) (*response.BookingResponse, error) {
	return s.booking, s.getErr
}

func (s *stubBookingService) RenderAgreement(ctx context.Context, id int64) (string, []byte, error) {
	if s.getErr != nil {
		return "", nil, s.getErr
	}
	return "booking-1-jane-doe.pdf", []byte("%PDF-1.4 stub"), nil
}

func newBookingRouter(stub *stubBookingService) *chi.Mux {
	h := NewBookingHandler(stub, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/bookings", h.CreateBooking)
	r.Get("/api/bookings/availability/{date}", h.CheckAvailability)
	r.Get("/api/bookings/{id}", h.GetBooking)
	r.Put("/api/bookings/{id}", h.UpdateBooking)
	r.Get("/api/bookings/{id}/pdf", h.DownloadAgreement)
	return r
}

func TestCreateBookingReturns201(t *testing.T) {
	stub := &stubBookingService{createID: 7}
	router := newBookingRouter(stub)

	body := `{"customer_name":"Jane","customer_email":"jane@example.com","customer_phone":"479-555-0100","event_date":"2026-09-12","event_start_time":"10:00","event_end_time":"16:00","bounce_house_type":"Castle Combo"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp response.CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(7), resp.BookingID)
}

func TestCreateBookingRejectsMalformedJSON(t *testing.T) {
	router := newBookingRouter(&stubBookingService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestCreateBookingValidationErrorMapsTo400(t *testing.T) {
	stub := &stubBookingService{createErr: fmt.Errorf("validation failed: CustomerEmail must be a valid email")}
	router := newBookingRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingInvalidIDReturns400(t *testing.T) {
	router := newBookingRouter(&stubBookingService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid booking ID")
}

func TestGetBookingNotFoundReturns404(t *testing.T) {
	stub := &stubBookingService{getErr: fmt.Errorf("booking 99 not found")}
	router := newBookingRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestGetBookingUnknownErrorReturns500(t *testing.T) {
	stub := &stubBookingService{getErr: fmt.Errorf("connection refused")}
	router := newBookingRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal details never leak onto the wire.
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestCheckAvailabilityResponseShape(t *testing.T) {
	stub := &stubBookingService{avail: &response.AvailabilityResponse{
		Date:          "2026-09-12",
		IsAvailable:   false,
		BookingsCount: 2,
		Message:       "This date is already booked",
	}}
	router := newBookingRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/availability/2026-09-12", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isAvailable":false`)
	assert.Contains(t, rec.Body.String(), `"bookingsCount":2`)
}

func TestDownloadAgreementSetsHeaders(t *testing.T) {
	router := newBookingRouter(&stubBookingService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/1/pdf", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `attachment; filename="booking-1-jane-doe.pdf"`)
}
