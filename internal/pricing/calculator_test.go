package pricing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A Wednesday morning with no holiday anywhere near it.
var quietWeekday = time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)

func testCalculator() *Calculator {
	return NewCalculator(DefaultConfig(), nil, nil)
}

func baseRequest() TripRequest {
	return TripRequest{
		PickupAddress:   "12 Elm Street, Manchester, M4 5BB",
		DeliveryAddress: "8 Birch Avenue, Stockport, SK1 3AA",
		DistanceMiles:   10,
		VanSize:         "medium",
		MoveDate:        quietWeekday,
		EstimatedHours:  2,
		Helpers:         0,
		FloorAccess:     "ground",
		Urgency:         "standard",
	}
}

func cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func TestBuildBreakdown_ExampleScenario(t *testing.T) {
	calc := testCalculator()

	b, err := calc.BuildBreakdown(baseRequest())
	require.NoError(t, err)

	// 10 miles is below the urban threshold: 25 + 10 * (1.50 * 1.15).
	assert.InDelta(t, 42.25, b.DistanceCharge, 1e-9)
	// max(2, 2 + 10/30) = 2h20m at 45/h.
	assert.InDelta(t, 105.00, b.TimeCharge, 1e-9)
	assert.Zero(t, b.HelpersFee)
	assert.Zero(t, b.FloorAccessFee)
	assert.Zero(t, b.PeakTimeSurcharge)
	assert.Zero(t, b.UrgencySurcharge)
	assert.Zero(t, b.CongestionCharge)
	assert.Positive(t, b.FuelCost)
	assert.Positive(t, b.ReturnJourneyCost)

	assert.Greater(t, b.Total, b.Subtotal)

	// No floating point residue: every field is an exact number of pence.
	for _, amount := range []float64{b.Subtotal, b.VATAmount, b.Total, b.PlatformFee, b.DriverShare} {
		assert.InDelta(t, float64(cents(amount))/100, amount, 1e-9)
	}
}

func TestBuildBreakdown_CommissionPartitionsSubtotal(t *testing.T) {
	calc := testCalculator()

	requests := []TripRequest{
		baseRequest(),
		{
			PickupAddress:   "1 High Street, London, SW1A 1AA",
			DeliveryAddress: "20 Castle Road, Brighton, BN1 1EE",
			DistanceMiles:   53.7,
			VanSize:         "luton",
			MoveDate:        time.Date(2026, time.June, 13, 19, 30, 0, 0, time.UTC), // Saturday evening
			EstimatedHours:  4.5,
			Helpers:         2,
			FloorAccess:     "thirdPlus",
			Urgency:         "express",
		},
		{
			PickupAddress:   "3 Mill Lane, Leeds, LS1 4AB",
			DeliveryAddress: "99 Bridge Street, York, YO1 6DD",
			DistanceMiles:   24.9,
			VanSize:         "small",
			MoveDate:        quietWeekday,
			EstimatedHours:  1,
			Helpers:         1,
			FloorAccess:     "second",
			LiftAvailable:   true,
			Urgency:         "priority",
		},
	}

	for _, req := range requests {
		b, err := calc.BuildBreakdown(req)
		require.NoError(t, err)

		assert.Equal(t, cents(b.Subtotal), cents(b.PlatformFee)+cents(b.DriverShare))
		assert.Equal(t, cents(b.Total), cents(b.Subtotal)+cents(b.VATAmount))
		assert.Equal(t, cents(RoundMoney(b.Subtotal*0.20)), cents(b.VATAmount))

		// Line items always add up to the subtotal they are shown against.
		var sum float64
		for _, item := range b.LineItems {
			sum += item.Amount
		}
		assert.Equal(t, cents(b.Subtotal), cents(sum))
	}
}

func TestBuildBreakdown_Idempotent(t *testing.T) {
	calc := testCalculator()
	req := baseRequest()

	first, err := calc.BuildBreakdown(req)
	require.NoError(t, err)
	second, err := calc.BuildBreakdown(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDistanceMonotonicity(t *testing.T) {
	calc := testCalculator()

	distances := []float64{1, 5, 10, 29.9, 30, 50, 120, 400}
	for _, size := range []VanSize{VanSmall, VanMedium, VanLarge, VanLuton} {
		prevFuel, prevReturn := -1.0, -1.0
		for _, d := range distances {
			fuel := calc.FuelCost(d, size)
			ret := calc.ReturnJourneyCost(d, size)
			assert.GreaterOrEqual(t, fuel, prevFuel)
			assert.GreaterOrEqual(t, ret, prevReturn)
			prevFuel, prevReturn = fuel, ret
		}

		// Holding the urban flag fixed, the charge never drops as distance
		// grows; 29.9 and 30 straddle the urban threshold.
		for _, urban := range []bool{false, true} {
			prevCharge := -1.0
			for _, d := range distances {
				charge := calc.DistanceCharge(d, size, urban)
				assert.GreaterOrEqual(t, charge, prevCharge)
				prevCharge = charge
			}
		}
	}
}

func TestUnknownVanSizeBehavesLikeMedium(t *testing.T) {
	calc := testCalculator()

	known := baseRequest()
	unknown := baseRequest()
	unknown.VanSize = "transit-xl"

	wantMedium, err := calc.BuildBreakdown(known)
	require.NoError(t, err)
	got, err := calc.BuildBreakdown(unknown)
	require.NoError(t, err)

	assert.Equal(t, wantMedium, got)
	assert.Equal(t, VanMedium, got.VanSize)
}

func TestEnumDefaults(t *testing.T) {
	assert.Equal(t, VanMedium, NormalizeVanSize(""))
	assert.Equal(t, VanMedium, NormalizeVanSize("lorry"))
	assert.Equal(t, VanLuton, NormalizeVanSize("luton"))
	assert.Equal(t, FloorGround, NormalizeFloorAccess("basement"))
	assert.Equal(t, FloorThirdPlus, NormalizeFloorAccess("thirdPlus"))
	assert.Equal(t, UrgencyStandard, NormalizeUrgency("whenever"))
	assert.Equal(t, UrgencyExpress, NormalizeUrgency("express"))
}

func TestZeroSurchargeBoundary(t *testing.T) {
	calc := testCalculator()

	b, err := calc.BuildBreakdown(baseRequest())
	require.NoError(t, err)

	assert.Zero(t, b.PeakTimeSurcharge)
	assert.Zero(t, b.UrgencySurcharge)
}

func TestPeakTimeSurcharge(t *testing.T) {
	calc := testCalculator()

	tests := []struct {
		name string
		date time.Time
		want float64 // fraction of the labour base
	}{
		{"weekday daytime", quietWeekday, 0},
		{"saturday", time.Date(2026, time.March, 7, 11, 0, 0, 0, time.UTC), 0.15},
		{"weekday evening", time.Date(2026, time.March, 4, 18, 0, 0, 0, time.UTC), 0.10},
		{"saturday evening", time.Date(2026, time.March, 7, 20, 0, 0, 0, time.UTC), 0.25},
		{"good friday", time.Date(2026, time.April, 3, 9, 0, 0, 0, time.UTC), 0.20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			req.MoveDate = tt.date
			got := calc.PeakTimeSurcharge(req, 100)
			assert.InDelta(t, RoundMoney(100*tt.want), got, 1e-9)
		})
	}
}

func TestExpressIncreasesTotal(t *testing.T) {
	calc := testCalculator()

	standard := baseRequest()
	express := baseRequest()
	express.Urgency = "express"

	a, err := calc.BuildBreakdown(standard)
	require.NoError(t, err)
	b, err := calc.BuildBreakdown(express)
	require.NoError(t, err)

	assert.Greater(t, b.Total, a.Total)
}

func TestFloorAccessFee(t *testing.T) {
	calc := testCalculator()

	noLift := calc.FloorAccessFee(FloorThirdPlus, false)
	withLift := calc.FloorAccessFee(FloorThirdPlus, true)
	assert.Less(t, withLift, noLift)
	assert.GreaterOrEqual(t, withLift, 0.0)

	// Lift discount can never push a fee negative.
	assert.Zero(t, calc.FloorAccessFee(FloorGround, true))
}

func TestCongestionCharge(t *testing.T) {
	calc := testCalculator()

	assert.Zero(t, calc.CongestionCharge("1 Oak Road, Manchester, M4 5BB", "2 Pine Close, Salford, M5 1AA"))
	assert.InDelta(t, 15.00, calc.CongestionCharge("10 Strand, London, WC2R 0EX", "2 Pine Close, Salford, M5 1AA"), 1e-9)
	assert.InDelta(t, 15.00, calc.CongestionCharge("1 Oak Road, Manchester, M4 5BB", "5 Borough High St, SE1 9SE"), 1e-9)
}

func TestBuildBreakdown_RejectsInvalidInput(t *testing.T) {
	calc := testCalculator()

	tests := []struct {
		name    string
		mutate  func(*TripRequest)
		wantErr error
	}{
		{"zero distance", func(r *TripRequest) { r.DistanceMiles = 0 }, ErrInvalidDistance},
		{"negative distance", func(r *TripRequest) { r.DistanceMiles = -4 }, ErrInvalidDistance},
		{"nan distance", func(r *TripRequest) { r.DistanceMiles = math.NaN() }, ErrInvalidDistance},
		{"negative hours", func(r *TripRequest) { r.EstimatedHours = -1 }, ErrInvalidHours},
		{"negative helpers", func(r *TripRequest) { r.Helpers = -1 }, ErrInvalidHelpers},
		{"zero date", func(r *TripRequest) { r.MoveDate = time.Time{} }, ErrMissingDate},
		{"missing pickup", func(r *TripRequest) { r.PickupAddress = "  " }, ErrMissingAddress},
		{"missing delivery", func(r *TripRequest) { r.DeliveryAddress = "" }, ErrMissingAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)
			b, err := calc.BuildBreakdown(req)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVAT(t *testing.T) {
	calc := testCalculator()

	assert.InDelta(t, 20.00, calc.VAT(100), 1e-9)
	assert.InDelta(t, 120.00, calc.PriceWithVAT(100), 1e-9)
	assert.InDelta(t, 30.61, calc.VAT(153.06), 1e-9)
}

func TestRoundMoney(t *testing.T) {
	assert.InDelta(t, 19.99, RoundMoney(19.994), 1e-9)
	// 0.125 is exactly representable, so the half-cent rounds away from zero.
	assert.InDelta(t, 0.13, RoundMoney(0.125), 1e-9)
	assert.InDelta(t, -0.13, RoundMoney(-0.125), 1e-9)
	assert.InDelta(t, 0.0, RoundMoney(0), 1e-9)
}
