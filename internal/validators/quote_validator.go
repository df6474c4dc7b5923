package validators

import (
	"fmt"
	"math"
	"strings"
	"time"

	"vango/internal/models"
	"vango/internal/utils"
)

var moveDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ValidateQuoteRequest runs struct validation plus the bounds checks that
// tags cannot express, and parses the move date.
func ValidateQuoteRequest(req *models.QuoteRequest) (time.Time, ValidationErrors) {
	errs := ValidateStruct(req)

	req.PickupAddress = SanitizeInput(req.PickupAddress)
	req.DeliveryAddress = SanitizeInput(req.DeliveryAddress)

	if req.DistanceMiles != 0 {
		if math.IsNaN(req.DistanceMiles) || math.IsInf(req.DistanceMiles, 0) {
			errs = append(errs, ValidationError{
				Field:   "DistanceMiles",
				Tag:     "numeric",
				Message: "Distance must be a finite number",
			})
		} else if req.DistanceMiles > utils.MaxQuoteDistance {
			errs = append(errs, ValidationError{
				Field:   "DistanceMiles",
				Tag:     "lte",
				Value:   fmt.Sprintf("%v", req.DistanceMiles),
				Message: fmt.Sprintf("Distance must be at most %.0f miles", utils.MaxQuoteDistance),
			})
		}
	}

	if req.Helpers > utils.MaxHelpers {
		errs = append(errs, ValidationError{
			Field:   "Helpers",
			Tag:     "lte",
			Value:   fmt.Sprintf("%d", req.Helpers),
			Message: fmt.Sprintf("At most %d helpers can be booked", utils.MaxHelpers),
		})
	}

	moveDate, err := ParseMoveDate(req.MoveDate)
	if err != nil {
		errs = append(errs, ValidationError{
			Field:   "MoveDate",
			Tag:     "datetime",
			Value:   req.MoveDate,
			Message: "Move date must be an ISO 8601 date or datetime",
		})
	}

	return moveDate, errs
}

// ParseMoveDate accepts the date formats customers actually send.
func ParseMoveDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("move date is empty")
	}
	for _, layout := range moveDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised move date %q", value)
}
