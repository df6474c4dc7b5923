package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidDistance = errors.New("distance must be a positive number")
	ErrInvalidHours    = errors.New("estimated hours must not be negative")
	ErrInvalidHelpers  = errors.New("helper count must not be negative")
	ErrMissingDate     = errors.New("move date is required")
	ErrMissingAddress  = errors.New("pickup and delivery addresses are required")
)

// HolidayCalendar reports whether a date is a public holiday. The shipped
// England & Wales calendar is rule-based and approximate; callers can swap in
// an authoritative source.
type HolidayCalendar interface {
	IsHoliday(t time.Time) bool
}

// CongestionZoneFunc reports whether an address falls inside a charging zone.
// The default is a coarse postcode-prefix heuristic, not a geofence.
type CongestionZoneFunc func(address string) bool

// Calculator turns a TripRequest into a PriceBreakdown. It is pure: no I/O,
// no clock, no shared mutable state, safe for concurrent use.
type Calculator struct {
	cfg      Config
	holidays HolidayCalendar
	inZone   CongestionZoneFunc
}

func NewCalculator(cfg Config, holidays HolidayCalendar, inZone CongestionZoneFunc) *Calculator {
	if holidays == nil {
		holidays = EnglandWalesCalendar{}
	}
	if inZone == nil {
		inZone = DefaultCongestionZone
	}
	return &Calculator{cfg: cfg, holidays: holidays, inZone: inZone}
}

// RoundMoney rounds half away from zero to two decimal places.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// DistanceCharge is base fare plus miles times the van's per-mile rate, with
// the urban multiplier applied to the rate when the job is urban. Whether a
// job counts as urban is the caller's decision; holding the flag fixed, the
// charge is monotonic in distance. BuildBreakdown derives the flag from the
// request and the distance threshold.
func (c *Calculator) DistanceCharge(distance float64, size VanSize, urban bool) float64 {
	rate := c.cfg.perMileRate(size)
	if urban {
		rate *= c.cfg.UrbanRateMultiplier
	}
	return RoundMoney(c.cfg.BaseFare + distance*rate)
}

// EstimateHours folds driving time into the caller's loading estimate and
// enforces the minimum billable hours.
func (c *Calculator) EstimateHours(estimatedHours, distance float64) float64 {
	return math.Max(c.cfg.MinimumHours, estimatedHours+distance/c.cfg.DriveSpeedMPH)
}

func (c *Calculator) TimeCharge(size VanSize, hours float64) float64 {
	return RoundMoney(c.cfg.hourlyRate(size) * hours)
}

func (c *Calculator) HelpersFee(helpers int, hours float64) float64 {
	if helpers <= 0 {
		return 0
	}
	return RoundMoney(float64(helpers) * c.cfg.HelperHourlyRate * hours)
}

// FloorAccessFee is the tier fee, reduced by the lift discount when a lift is
// available, never below zero.
func (c *Calculator) FloorAccessFee(access FloorAccess, liftAvailable bool) float64 {
	fee, ok := c.cfg.FloorAccessFees[access]
	if !ok {
		fee = c.cfg.FloorAccessFees[FloorGround]
	}
	if liftAvailable {
		fee -= c.cfg.LiftDiscount
	}
	if fee < 0 {
		fee = 0
	}
	return RoundMoney(fee)
}

// peakMultiplier sums the applicable weekend, evening and holiday fractions.
// A plain weekday daytime move yields exactly zero.
func (c *Calculator) peakMultiplier(req TripRequest) float64 {
	mult := 0.0
	switch req.MoveDate.Weekday() {
	case time.Saturday, time.Sunday:
		mult += c.cfg.WeekendMultiplier
	}
	if req.MoveDate.Hour() >= c.cfg.EveningStartHour {
		mult += c.cfg.EveningMultiplier
	}
	if c.holidays.IsHoliday(req.MoveDate) {
		mult += c.cfg.HolidayMultiplier
	}
	return mult
}

// PeakTimeSurcharge applies the peak multiplier to the labour base (distance
// + time + helpers charges). Fuel, return-journey and congestion costs are
// deliberately outside the base so surcharges never compound on them.
func (c *Calculator) PeakTimeSurcharge(req TripRequest, labourBase float64) float64 {
	mult := c.peakMultiplier(req)
	if mult == 0 {
		return 0
	}
	return RoundMoney(labourBase * mult)
}

// UrgencySurcharge applies the urgency tier multiplier to the labour base.
func (c *Calculator) UrgencySurcharge(urgency Urgency, labourBase float64) float64 {
	mult := c.cfg.UrgencyMultipliers[urgency]
	if mult == 0 {
		return 0
	}
	return RoundMoney(labourBase * mult)
}

func (c *Calculator) FuelCost(distance float64, size VanSize) float64 {
	gallons := distance / c.cfg.fuelEfficiency(size)
	return RoundMoney(gallons * c.cfg.LitresPerGallon * c.cfg.FuelPricePerLitre)
}

// ReturnJourneyCost recovers a distance-banded fraction of the one-way
// mileage charge (miles times the plain per-mile rate, base fare excluded)
// for the van's empty return leg.
func (c *Calculator) ReturnJourneyCost(distance float64, size VanSize) float64 {
	mileage := distance * c.cfg.perMileRate(size)
	return RoundMoney(mileage * c.cfg.returnJourneyFactor(distance))
}

// CongestionCharge is a flat fee when either address matches the zone
// predicate.
func (c *Calculator) CongestionCharge(pickup, delivery string) float64 {
	if c.inZone(pickup) || c.inZone(delivery) {
		return RoundMoney(c.cfg.CongestionCharge)
	}
	return 0
}

// VAT computes the statutory rate against the net subtotal.
func (c *Calculator) VAT(subtotal float64) float64 {
	return RoundMoney(subtotal * c.cfg.VATRate)
}

// PriceWithVAT adds VAT to a net amount.
func (c *Calculator) PriceWithVAT(subtotal float64) float64 {
	return RoundMoney(subtotal + c.VAT(subtotal))
}

// BuildBreakdown validates the request, runs every sub-calculation in a fixed
// order and assembles the breakdown. Each monetary field is rounded exactly
// once; the subtotal sums the already-rounded line items so the displayed
// rows always add up, and the platform/driver split partitions the subtotal
// to the cent.
func (c *Calculator) BuildBreakdown(req TripRequest) (*PriceBreakdown, error) {
	if err := validateTrip(req); err != nil {
		return nil, err
	}

	size := NormalizeVanSize(req.VanSize)
	access := NormalizeFloorAccess(req.FloorAccess)
	urgency := NormalizeUrgency(req.Urgency)
	urban := req.Urban || req.DistanceMiles < c.cfg.UrbanDistanceThreshold

	hours := c.EstimateHours(req.EstimatedHours, req.DistanceMiles)

	distanceCharge := c.DistanceCharge(req.DistanceMiles, size, urban)
	timeCharge := c.TimeCharge(size, hours)
	helpersFee := c.HelpersFee(req.Helpers, hours)
	floorFee := c.FloorAccessFee(access, req.LiftAvailable)

	labourBase := distanceCharge + timeCharge + helpersFee
	peakSurcharge := c.PeakTimeSurcharge(req, labourBase)
	urgencySurcharge := c.UrgencySurcharge(urgency, labourBase)

	fuelCost := c.FuelCost(req.DistanceMiles, size)
	returnCost := c.ReturnJourneyCost(req.DistanceMiles, size)
	congestion := c.CongestionCharge(req.PickupAddress, req.DeliveryAddress)

	items := []LineItem{
		{Label: fmt.Sprintf("Distance (%.1f miles, %s van)", req.DistanceMiles, size), Amount: distanceCharge},
		{Label: fmt.Sprintf("Time (%.1f hours)", hours), Amount: timeCharge},
	}
	if helpersFee > 0 {
		items = append(items, LineItem{Label: fmt.Sprintf("Helpers (%d)", req.Helpers), Amount: helpersFee})
	}
	if floorFee > 0 {
		items = append(items, LineItem{Label: "Floor access", Amount: floorFee})
	}
	if peakSurcharge > 0 {
		items = append(items, LineItem{Label: "Peak time surcharge", Amount: peakSurcharge})
	}
	if urgencySurcharge > 0 {
		items = append(items, LineItem{Label: fmt.Sprintf("Urgency (%s)", urgency), Amount: urgencySurcharge})
	}
	items = append(items,
		LineItem{Label: "Fuel", Amount: fuelCost},
		LineItem{Label: "Return journey", Amount: returnCost},
	)
	if congestion > 0 {
		items = append(items, LineItem{Label: "Congestion charge", Amount: congestion})
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount
	}
	subtotal = RoundMoney(subtotal)

	vat := c.VAT(subtotal)
	total := RoundMoney(subtotal + vat)

	platformFee := RoundMoney(subtotal * c.cfg.PlatformFeeRate)
	driverShare := RoundMoney(subtotal - platformFee)

	breakdown := &PriceBreakdown{
		ConfigVersion: c.cfg.Version,
		Currency:      c.cfg.Currency,
		VanSize:       size,
		FloorAccess:   access,
		Urgency:       urgency,
		Hours:         hours,

		DistanceCharge:    distanceCharge,
		TimeCharge:        timeCharge,
		HelpersFee:        helpersFee,
		FloorAccessFee:    floorFee,
		PeakTimeSurcharge: peakSurcharge,
		UrgencySurcharge:  urgencySurcharge,
		FuelCost:          fuelCost,
		ReturnJourneyCost: returnCost,
		CongestionCharge:  congestion,

		Subtotal:    subtotal,
		VATAmount:   vat,
		Total:       total,
		PlatformFee: platformFee,
		DriverShare: driverShare,

		LineItems: items,
	}
	breakdown.Explanation = explain(req, breakdown, urban)

	return breakdown, nil
}

func validateTrip(req TripRequest) error {
	if strings.TrimSpace(req.PickupAddress) == "" || strings.TrimSpace(req.DeliveryAddress) == "" {
		return ErrMissingAddress
	}
	if req.DistanceMiles <= 0 || math.IsNaN(req.DistanceMiles) || math.IsInf(req.DistanceMiles, 0) {
		return ErrInvalidDistance
	}
	if req.EstimatedHours < 0 || math.IsNaN(req.EstimatedHours) || math.IsInf(req.EstimatedHours, 0) {
		return ErrInvalidHours
	}
	if req.Helpers < 0 {
		return ErrInvalidHelpers
	}
	if req.MoveDate.IsZero() {
		return ErrMissingDate
	}
	return nil
}

func explain(req TripRequest, b *PriceBreakdown, urban bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%.1f mile move with a %s van over %.1f hours", req.DistanceMiles, b.VanSize, b.Hours)
	if urban {
		sb.WriteString(" (urban rate)")
	}
	if req.Helpers > 0 {
		fmt.Fprintf(&sb, ", %d helper(s)", req.Helpers)
	}
	if b.FloorAccessFee > 0 {
		fmt.Fprintf(&sb, ", %s floor access", b.FloorAccess)
	}
	if b.PeakTimeSurcharge > 0 {
		sb.WriteString(", peak time")
	}
	if b.UrgencySurcharge > 0 {
		fmt.Fprintf(&sb, ", %s service", b.Urgency)
	}
	if b.CongestionCharge > 0 {
		sb.WriteString(", congestion zone")
	}
	fmt.Fprintf(&sb, ". Subtotal %.2f %s + VAT %.2f = %.2f %s.", b.Subtotal, b.Currency, b.VATAmount, b.Total, b.Currency)
	return sb.String()
}
