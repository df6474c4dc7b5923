package models

import (
	"time"

	"vango/internal/pricing"
)

// QuoteRequest is the API payload for a new quote. Distance may be omitted
// when both addresses resolve through the distance service. Enum-valued
// fields are not validated here; unrecognised values price as their
// documented defaults.
type QuoteRequest struct {
	PickupAddress   string  `json:"pickup_address" validate:"required"`
	DeliveryAddress string  `json:"delivery_address" validate:"required"`
	DistanceMiles   float64 `json:"distance_miles" validate:"omitempty,gt=0"`
	VanSize         string  `json:"van_size"`
	MoveDate        string  `json:"move_date" validate:"required"`
	EstimatedHours  float64 `json:"estimated_hours" validate:"omitempty,gte=0"`
	Helpers         int     `json:"helpers" validate:"gte=0,lte=4"`
	FloorAccess     string  `json:"floor_access"`
	LiftAvailable   bool    `json:"lift_available"`
	Urgency         string  `json:"urgency"`
	Urban           bool    `json:"urban"`
}

// Quote is a priced trip held in the cache until checkout completes or the
// quote expires. A new quote is always a fresh calculation.
type Quote struct {
	Reference string                 `json:"reference"`
	Trip      pricing.TripRequest    `json:"trip"`
	Breakdown pricing.PriceBreakdown `json:"breakdown"`
	CreatedAt time.Time              `json:"created_at"`
	ExpiresAt time.Time              `json:"expires_at"`
}
