package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vango/internal/models"
	"vango/internal/pricing"
	"vango/internal/utils"
	"vango/internal/validators"
	"vango/pkg/logger"
	"vango/pkg/maps"
)

var ErrQuoteNotFound = errors.New(utils.ErrQuoteNotFound)

type QuoteService interface {
	CreateQuote(ctx context.Context, request *models.QuoteRequest) (*models.Quote, error)
	GetQuote(ctx context.Context, reference string) (*models.Quote, error)
	InvalidateQuote(ctx context.Context, reference string) error
	PricingConfig() *pricing.Config
}

type quoteService struct {
	calculator *pricing.Calculator
	config     *pricing.Config
	distance   maps.DistanceProvider
	cache      CacheService
	logger     *logger.Logger
	ttl        time.Duration
}

// NewQuoteService builds the quoting pipeline. The distance provider is
// optional; without one every request must carry its own distance.
func NewQuoteService(cfg *pricing.Config, distance maps.DistanceProvider, cacheService CacheService, log *logger.Logger, ttl time.Duration) QuoteService {
	if ttl <= 0 {
		ttl = utils.QuoteTTL
	}

	return &quoteService{
		calculator: pricing.NewCalculator(*cfg, nil, nil),
		config:     cfg,
		distance:   distance,
		cache:      cacheService,
		logger:     log,
		ttl:        ttl,
	}
}

func (s *quoteService) CreateQuote(ctx context.Context, request *models.QuoteRequest) (*models.Quote, error) {
	moveDate, validationErrs := validators.ValidateQuoteRequest(request)
	if len(validationErrs) > 0 {
		return nil, validationErrs
	}

	distanceMiles := request.DistanceMiles
	if distanceMiles == 0 {
		if s.distance == nil {
			return nil, validators.ValidationErrors{{
				Field:   "DistanceMiles",
				Tag:     "required",
				Message: "Distance is required when route lookup is unavailable",
			}}
		}

		result, err := s.distance.DrivingDistance(ctx, request.PickupAddress, request.DeliveryAddress)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve route distance: %w", err)
		}
		distanceMiles = result.Miles
	}

	trip := pricing.TripRequest{
		PickupAddress:   request.PickupAddress,
		DeliveryAddress: request.DeliveryAddress,
		DistanceMiles:   distanceMiles,
		VanSize:         request.VanSize,
		MoveDate:        moveDate,
		EstimatedHours:  request.EstimatedHours,
		Helpers:         request.Helpers,
		FloorAccess:     request.FloorAccess,
		LiftAvailable:   request.LiftAvailable,
		Urgency:         request.Urgency,
		Urban:           request.Urban,
	}

	breakdown, err := s.calculator.BuildBreakdown(trip)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	quote := &models.Quote{
		Reference: uuid.NewString(),
		Trip:      trip,
		Breakdown: *breakdown,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.cache.Set(ctx, quoteCacheKey(quote.Reference), quote, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to store quote: %w", err)
	}

	s.logger.LogQuoteEvent(quote.Reference, "created", map[string]interface{}{
		"total":    breakdown.Total,
		"van_size": breakdown.VanSize,
		"distance": distanceMiles,
	})

	return quote, nil
}

func (s *quoteService) GetQuote(ctx context.Context, reference string) (*models.Quote, error) {
	var quote models.Quote
	if err := s.cache.Get(ctx, quoteCacheKey(reference), &quote); err != nil {
		return nil, ErrQuoteNotFound
	}

	return &quote, nil
}

func (s *quoteService) InvalidateQuote(ctx context.Context, reference string) error {
	return s.cache.Delete(ctx, quoteCacheKey(reference))
}

func (s *quoteService) PricingConfig() *pricing.Config {
	return s.config
}

func quoteCacheKey(reference string) string {
	return utils.CacheQuotePrefix + reference
}
