package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vango/internal/models"
	"vango/internal/utils"
	"vango/pkg/payment"
)

type memoryBookingRepo struct {
	bookings map[string]*models.Booking
}

func newMemoryBookingRepo() *memoryBookingRepo {
	return &memoryBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *memoryBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()
	r.bookings[booking.Reference] = booking
	return nil
}

func (r *memoryBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errors.New("booking not found")
}

func (r *memoryBookingRepo) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	if b, ok := r.bookings[reference]; ok {
		return b, nil
	}
	return nil, errors.New("booking not found")
}

func (r *memoryBookingRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}

func (r *memoryBookingRepo) UpdateStatus(ctx context.Context, reference string, status models.BookingStatus) error {
	b, ok := r.bookings[reference]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	return nil
}

func (r *memoryBookingRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	var out []*models.Booking
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (r *memoryBookingRepo) GetByStatus(ctx context.Context, status models.BookingStatus, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	var out []*models.Booking
	for _, b := range r.bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memoryBookingRepo) GetByCustomerEmail(ctx context.Context, email string, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	return nil, 0, nil
}

func (r *memoryBookingRepo) GetTotalCount(ctx context.Context) (int64, error) {
	return int64(len(r.bookings)), nil
}

func (r *memoryBookingRepo) GetCountByStatus(ctx context.Context, status models.BookingStatus) (int64, error) {
	return 0, nil
}

type fakeProvider struct {
	createErr error
	cancelled []string
	events    []*payment.WebhookEvent
}

func (f *fakeProvider) CreateIntent(ctx context.Context, request *payment.IntentRequest) (*payment.IntentResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &payment.IntentResponse{
		IntentID: "pi_test_" + request.Reference,
		Status:   "requires_payment_method",
		Amount:   request.Amount,
		Currency: request.Currency,
	}, nil
}

func (f *fakeProvider) GetIntent(ctx context.Context, intentID string) (*payment.IntentResponse, error) {
	return &payment.IntentResponse{IntentID: intentID, Status: "requires_payment_method"}, nil
}

func (f *fakeProvider) CancelIntent(ctx context.Context, intentID string) error {
	f.cancelled = append(f.cancelled, intentID)
	return nil
}

func (f *fakeProvider) RefundPayment(ctx context.Context, request *payment.RefundRequest) (*payment.RefundResponse, error) {
	return &payment.RefundResponse{RefundID: "re_test", Status: "succeeded"}, nil
}

func (f *fakeProvider) ValidateWebhook(ctx context.Context, payload []byte, signature string) (*payment.WebhookEvent, error) {
	if len(f.events) == 0 {
		return nil, errors.New("no event")
	}
	event := f.events[0]
	f.events = f.events[1:]
	return event, nil
}

func testBookingService(t *testing.T, provider *fakeProvider) (BookingService, QuoteService, *memoryBookingRepo) {
	t.Helper()
	quotes, _ := testQuoteService(t, nil)
	repo := newMemoryBookingRepo()
	svc := NewBookingService(repo, quotes, map[string]payment.PaymentProvider{"stripe": provider}, "stripe", "GBP", testLogger(t))
	return svc, quotes, repo
}

func bookingRequest(quoteRef string) models.BookingRequest {
	return models.BookingRequest{
		QuoteReference: quoteRef,
		CustomerName:   "Jo Whitfield",
		CustomerEmail:  "jo@example.com",
		CustomerPhone:  "07700900123",
	}
}

func TestCreateBooking_ConvertsQuote(t *testing.T) {
	provider := &fakeProvider{}
	svc, quotes, _ := testBookingService(t, provider)

	req := quoteRequest()
	quote, err := quotes.CreateQuote(context.Background(), &req)
	require.NoError(t, err)

	bReq := bookingRequest(quote.Reference)
	booking, intent, err := svc.CreateBooking(context.Background(), &bReq)
	require.NoError(t, err)

	assert.Contains(t, booking.Reference, utils.BookingReferencePrefix+"-")
	assert.Equal(t, models.BookingStatusPendingPayment, booking.Status)
	assert.Equal(t, quote.Breakdown.Total, intent.Amount)
	assert.Equal(t, intent.IntentID, booking.PaymentIntentID)

	// The quote cannot convert twice.
	_, _, err = svc.CreateBooking(context.Background(), &bReq)
	assert.ErrorIs(t, err, ErrQuoteNotFound)
}

func TestCreateBooking_UnknownQuote(t *testing.T) {
	svc, _, _ := testBookingService(t, &fakeProvider{})

	bReq := bookingRequest("missing")
	_, _, err := svc.CreateBooking(context.Background(), &bReq)
	assert.ErrorIs(t, err, ErrQuoteNotFound)
}

func TestCreateBooking_ProviderFailure(t *testing.T) {
	provider := &fakeProvider{createErr: errors.New("stripe down")}
	svc, quotes, repo := testBookingService(t, provider)

	req := quoteRequest()
	quote, err := quotes.CreateQuote(context.Background(), &req)
	require.NoError(t, err)

	bReq := bookingRequest(quote.Reference)
	_, _, err = svc.CreateBooking(context.Background(), &bReq)
	require.ErrorIs(t, err, ErrPaymentUnavailable)

	// Nothing persisted and the quote survives for a retry.
	count, _ := repo.GetTotalCount(context.Background())
	assert.Zero(t, count)
	_, err = quotes.GetQuote(context.Background(), quote.Reference)
	assert.NoError(t, err)
}

func TestCancelBooking_CancelsPendingIntent(t *testing.T) {
	provider := &fakeProvider{}
	svc, quotes, _ := testBookingService(t, provider)

	req := quoteRequest()
	quote, err := quotes.CreateQuote(context.Background(), &req)
	require.NoError(t, err)

	bReq := bookingRequest(quote.Reference)
	booking, _, err := svc.CreateBooking(context.Background(), &bReq)
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking(context.Background(), booking.Reference))

	updated, err := svc.GetBooking(context.Background(), booking.Reference)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)
	assert.Equal(t, []string{booking.PaymentIntentID}, provider.cancelled)
}

func TestHandlePaymentEvent_ConfirmsBooking(t *testing.T) {
	provider := &fakeProvider{}
	svc, quotes, _ := testBookingService(t, provider)

	req := quoteRequest()
	quote, err := quotes.CreateQuote(context.Background(), &req)
	require.NoError(t, err)

	bReq := bookingRequest(quote.Reference)
	booking, _, err := svc.CreateBooking(context.Background(), &bReq)
	require.NoError(t, err)

	provider.events = []*payment.WebhookEvent{{
		EventID:   "evt_1",
		EventType: "payment_intent.succeeded",
		Data: map[string]interface{}{
			"metadata": map[string]interface{}{"reference": booking.Reference},
		},
	}}

	require.NoError(t, svc.HandlePaymentEvent(context.Background(), "stripe", []byte("{}"), "sig"))

	updated, err := svc.GetBooking(context.Background(), booking.Reference)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
}

func TestHandlePaymentEvent_UnknownProvider(t *testing.T) {
	svc, _, _ := testBookingService(t, &fakeProvider{})

	err := svc.HandlePaymentEvent(context.Background(), "worldpay", nil, "")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
