package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vango/internal/models"
)

func validQuoteRequest() models.QuoteRequest {
	return models.QuoteRequest{
		PickupAddress:   "12 Oldham Road, Manchester",
		DeliveryAddress: "4 Mill Lane, Stockport",
		DistanceMiles:   10,
		VanSize:         "medium",
		MoveDate:        "2026-03-04T10:00",
		EstimatedHours:  2,
	}
}

func TestValidateQuoteRequest_Valid(t *testing.T) {
	req := validQuoteRequest()

	moveDate, errs := ValidateQuoteRequest(&req)

	require.Empty(t, errs)
	assert.Equal(t, 2026, moveDate.Year())
	assert.Equal(t, time.March, moveDate.Month())
	assert.Equal(t, 10, moveDate.Hour())
}

func TestValidateQuoteRequest_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.QuoteRequest)
		field  string
	}{
		{
			name:   "missing pickup address",
			mutate: func(r *models.QuoteRequest) { r.PickupAddress = "" },
			field:  "PickupAddress",
		},
		{
			name:   "distance over limit",
			mutate: func(r *models.QuoteRequest) { r.DistanceMiles = 900 },
			field:  "DistanceMiles",
		},
		{
			name:   "too many helpers",
			mutate: func(r *models.QuoteRequest) { r.Helpers = 9 },
			field:  "Helpers",
		},
		{
			name:   "garbled move date",
			mutate: func(r *models.QuoteRequest) { r.MoveDate = "next tuesday" },
			field:  "MoveDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validQuoteRequest()
			tt.mutate(&req)

			_, errs := ValidateQuoteRequest(&req)

			require.NotEmpty(t, errs)
			fields := make([]string, 0, len(errs))
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateQuoteRequest_UnknownEnumsAccepted(t *testing.T) {
	req := validQuoteRequest()
	req.VanSize = "articulated"
	req.FloorAccess = "basement"
	req.Urgency = "yesterday"

	_, errs := ValidateQuoteRequest(&req)

	// Unrecognised enum values are not rejected; they resolve to the
	// documented defaults during pricing.
	assert.Empty(t, errs)
}

func TestParseMoveDate_Layouts(t *testing.T) {
	for _, value := range []string{
		"2026-03-04T10:00:00Z",
		"2026-03-04T10:00",
		"2026-03-04 10:00",
		"2026-03-04",
	} {
		parsed, err := ParseMoveDate(value)
		require.NoError(t, err, value)
		assert.Equal(t, 4, parsed.Day())
	}
}
