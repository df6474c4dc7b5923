package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"vango/internal/models"
	"vango/internal/repositories/interfaces"
	"vango/internal/utils"
	"vango/internal/validators"
	"vango/pkg/logger"
	"vango/pkg/payment"
)

var (
	ErrBookingNotFound    = errors.New(utils.ErrBookingNotFound)
	ErrUnknownProvider    = errors.New("unknown payment provider")
	ErrPaymentUnavailable = errors.New("payment provider unavailable")
)

type BookingService interface {
	CreateBooking(ctx context.Context, request *models.BookingRequest) (*models.Booking, *payment.IntentResponse, error)
	GetBooking(ctx context.Context, reference string) (*models.Booking, error)
	ListBookings(ctx context.Context, status string, params *utils.PaginationParams) ([]*models.Booking, int64, error)
	CancelBooking(ctx context.Context, reference string) error
	HandlePaymentEvent(ctx context.Context, provider string, payload []byte, signature string) error
}

type bookingService struct {
	repo            interfaces.BookingRepository
	quotes          QuoteService
	providers       map[string]payment.PaymentProvider
	defaultProvider string
	currency        string
	logger          *logger.Logger
}

func NewBookingService(
	repo interfaces.BookingRepository,
	quotes QuoteService,
	providers map[string]payment.PaymentProvider,
	defaultProvider string,
	currency string,
	log *logger.Logger,
) BookingService {
	if !utils.ValidateCurrencyCode(currency) {
		currency = utils.DefaultCurrency
	}

	return &bookingService{
		repo:            repo,
		quotes:          quotes,
		providers:       providers,
		defaultProvider: defaultProvider,
		currency:        currency,
		logger:          log,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, request *models.BookingRequest) (*models.Booking, *payment.IntentResponse, error) {
	if errs := validators.ValidateStruct(request); len(errs) > 0 {
		return nil, nil, errs
	}

	quote, err := s.quotes.GetQuote(ctx, request.QuoteReference)
	if err != nil {
		return nil, nil, err
	}

	providerName := request.PaymentProvider
	if providerName == "" {
		providerName = s.defaultProvider
	}
	provider, ok := s.providers[providerName]
	if !ok {
		return nil, nil, ErrUnknownProvider
	}

	booking := &models.Booking{
		Reference:       newBookingReference(),
		QuoteReference:  quote.Reference,
		CustomerName:    request.CustomerName,
		CustomerEmail:   request.CustomerEmail,
		CustomerPhone:   request.CustomerPhone,
		Trip:            quote.Trip,
		Breakdown:       quote.Breakdown,
		Status:          models.BookingStatusPendingPayment,
		PaymentProvider: providerName,
		Notes:           request.Notes,
	}

	intent, err := provider.CreateIntent(ctx, &payment.IntentRequest{
		Amount:        quote.Breakdown.Total,
		Currency:      s.currency,
		Description:   fmt.Sprintf("Removal booking %s", booking.Reference),
		CustomerEmail: request.CustomerEmail,
		Reference:     booking.Reference,
		Metadata: map[string]string{
			"quote_reference": quote.Reference,
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	booking.PaymentIntentID = intent.IntentID

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, nil, err
	}

	// A quote converts at most once.
	if err := s.quotes.InvalidateQuote(ctx, quote.Reference); err != nil {
		s.logger.WithError(err).WithQuoteRef(quote.Reference).Warn("failed to invalidate converted quote")
	}

	s.logger.LogBookingEvent(booking.Reference, "created", map[string]interface{}{
		"quote_ref": quote.Reference,
		"provider":  providerName,
		"total":     utils.FormatCurrency(quote.Breakdown.Total, s.currency),
	})

	return booking, intent, nil
}

func (s *bookingService) GetBooking(ctx context.Context, reference string) (*models.Booking, error) {
	booking, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, status string, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	if status != "" {
		return s.repo.GetByStatus(ctx, models.BookingStatus(status), params)
	}
	return s.repo.List(ctx, params)
}

func (s *bookingService) CancelBooking(ctx context.Context, reference string) error {
	booking, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		return ErrBookingNotFound
	}

	if booking.Status == models.BookingStatusPendingPayment && booking.PaymentIntentID != "" {
		if provider, ok := s.providers[booking.PaymentProvider]; ok {
			if err := provider.CancelIntent(ctx, booking.PaymentIntentID); err != nil {
				s.logger.WithError(err).WithBookingRef(reference).Warn("failed to cancel payment intent")
			}
		}
	}

	if err := s.repo.UpdateStatus(ctx, reference, models.BookingStatusCancelled); err != nil {
		return err
	}

	s.logger.LogBookingEvent(reference, "cancelled", nil)

	return nil
}

func (s *bookingService) HandlePaymentEvent(ctx context.Context, providerName string, payload []byte, signature string) error {
	provider, ok := s.providers[providerName]
	if !ok {
		return ErrUnknownProvider
	}

	event, err := provider.ValidateWebhook(ctx, payload, signature)
	if err != nil {
		return err
	}

	reference := eventReference(event)
	if reference == "" {
		s.logger.WithField("event_type", event.EventType).Debug("payment event without booking reference")
		return nil
	}

	switch event.EventType {
	case "payment_intent.succeeded", "CHECKOUT.ORDER.APPROVED", "PAYMENT.CAPTURE.COMPLETED":
		if err := s.repo.UpdateStatus(ctx, reference, models.BookingStatusConfirmed); err != nil {
			return err
		}
		s.logger.LogBookingEvent(reference, "payment_confirmed", map[string]interface{}{
			"event_type": event.EventType,
		})
	case "payment_intent.payment_failed", "PAYMENT.CAPTURE.DENIED":
		s.logger.LogBookingEvent(reference, "payment_failed", map[string]interface{}{
			"event_type": event.EventType,
		})
	}

	return nil
}

func newBookingReference() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
	return fmt.Sprintf("%s-%s", utils.BookingReferencePrefix, suffix)
}

// eventReference digs the booking reference out of the provider's event
// payload; both Stripe and PayPal carry it in metadata we set at creation.
func eventReference(event *payment.WebhookEvent) string {
	if metadata, ok := event.Data["metadata"].(map[string]interface{}); ok {
		if ref, ok := metadata["reference"].(string); ok {
			return ref
		}
	}

	if obj, ok := event.Data["object"].(map[string]interface{}); ok {
		if metadata, ok := obj["metadata"].(map[string]interface{}); ok {
			if ref, ok := metadata["reference"].(string); ok {
				return ref
			}
		}
	}

	return ""
}
