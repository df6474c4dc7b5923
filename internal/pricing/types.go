package pricing

import "time"

// VanSize determines per-mile rate, hourly rate and fuel efficiency.
type VanSize string

const (
	VanSmall  VanSize = "small"
	VanMedium VanSize = "medium"
	VanLarge  VanSize = "large"
	VanLuton  VanSize = "luton"
)

// NormalizeVanSize maps unknown or empty values to the documented default.
func NormalizeVanSize(s string) VanSize {
	switch VanSize(s) {
	case VanSmall, VanMedium, VanLarge, VanLuton:
		return VanSize(s)
	}
	return VanMedium
}

// FloorAccess is the highest floor goods must be carried to or from.
type FloorAccess string

const (
	FloorGround    FloorAccess = "ground"
	FloorFirst     FloorAccess = "first"
	FloorSecond    FloorAccess = "second"
	FloorThirdPlus FloorAccess = "thirdPlus"
)

func NormalizeFloorAccess(s string) FloorAccess {
	switch FloorAccess(s) {
	case FloorGround, FloorFirst, FloorSecond, FloorThirdPlus:
		return FloorAccess(s)
	}
	return FloorGround
}

// Urgency is the booking lead-time tier.
type Urgency string

const (
	UrgencyStandard Urgency = "standard"
	UrgencyPriority Urgency = "priority"
	UrgencyExpress  Urgency = "express"
)

func NormalizeUrgency(s string) Urgency {
	switch Urgency(s) {
	case UrgencyStandard, UrgencyPriority, UrgencyExpress:
		return Urgency(s)
	}
	return UrgencyStandard
}

// TripRequest is the calculator input. Enum-valued fields are normalized to
// their defaults before use; the remaining fields must already have passed
// boundary validation.
type TripRequest struct {
	PickupAddress   string    `json:"pickup_address"`
	DeliveryAddress string    `json:"delivery_address"`
	DistanceMiles   float64   `json:"distance_miles"`
	VanSize         string    `json:"van_size"`
	MoveDate        time.Time `json:"move_date"`
	EstimatedHours  float64   `json:"estimated_hours"`
	Helpers         int       `json:"helpers"`
	FloorAccess     string    `json:"floor_access"`
	LiftAvailable   bool      `json:"lift_available"`
	Urgency         string    `json:"urgency"`
	// Urban marks a short inner-city job. The urban per-mile rate also kicks
	// in below the configured distance threshold regardless of this flag.
	Urban bool `json:"urban"`
}

// LineItem is one human-readable row of the price breakdown.
type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PriceBreakdown is the calculator output. Every monetary field is a
// non-negative amount rounded once to two decimal places.
type PriceBreakdown struct {
	ConfigVersion string `json:"config_version"`
	Currency      string `json:"currency"`

	VanSize     VanSize     `json:"van_size"`
	FloorAccess FloorAccess `json:"floor_access"`
	Urgency     Urgency     `json:"urgency"`
	Hours       float64     `json:"hours"`

	DistanceCharge    float64 `json:"distance_charge"`
	TimeCharge        float64 `json:"time_charge"`
	HelpersFee        float64 `json:"helpers_fee"`
	FloorAccessFee    float64 `json:"floor_access_fee"`
	PeakTimeSurcharge float64 `json:"peak_time_surcharge"`
	UrgencySurcharge  float64 `json:"urgency_surcharge"`
	FuelCost          float64 `json:"fuel_cost"`
	ReturnJourneyCost float64 `json:"return_journey_cost"`
	CongestionCharge  float64 `json:"congestion_charge"`

	Subtotal    float64 `json:"subtotal"`
	VATAmount   float64 `json:"vat_amount"`
	Total       float64 `json:"total"`
	PlatformFee float64 `json:"platform_fee"`
	DriverShare float64 `json:"driver_share"`

	LineItems   []LineItem `json:"line_items"`
	Explanation string     `json:"explanation"`
}
