package pricing

// Config is the single authoritative pricing table. It is loaded once at
// startup and injected into the calculator; nothing in this package mutates
// it after construction.
type Config struct {
	Version string `json:"version"`

	Currency string  `json:"currency"`
	BaseFare float64 `json:"base_fare"`

	PerMileRates map[VanSize]float64 `json:"per_mile_rates"`
	HourlyRates  map[VanSize]float64 `json:"hourly_rates"`

	// Urban jobs price the per-mile rate up: short hops mean more loading
	// time per mile driven.
	UrbanRateMultiplier    float64 `json:"urban_rate_multiplier"`
	UrbanDistanceThreshold float64 `json:"urban_distance_threshold"` // miles

	MinimumHours      float64 `json:"minimum_hours"`
	DriveSpeedMPH     float64 `json:"drive_speed_mph"` // used to fold driving time into estimated hours
	HelperHourlyRate  float64 `json:"helper_hourly_rate"`
	FloorAccessFees   map[FloorAccess]float64 `json:"floor_access_fees"`
	LiftDiscount      float64 `json:"lift_discount"`

	// Peak multipliers are fractions of the labour base (distance + time +
	// helpers), additive when more than one applies.
	WeekendMultiplier float64 `json:"weekend_multiplier"`
	EveningMultiplier float64 `json:"evening_multiplier"`
	EveningStartHour  int     `json:"evening_start_hour"`
	HolidayMultiplier float64 `json:"holiday_multiplier"`

	UrgencyMultipliers map[Urgency]float64 `json:"urgency_multipliers"`

	FuelEfficiencyMPG map[VanSize]float64 `json:"fuel_efficiency_mpg"`
	FuelPricePerLitre float64             `json:"fuel_price_per_litre"`
	LitresPerGallon   float64             `json:"litres_per_gallon"`

	ReturnJourneyBands []ReturnJourneyBand `json:"return_journey_bands"`

	CongestionCharge float64 `json:"congestion_charge"`

	PlatformFeeRate float64 `json:"platform_fee_rate"`
	VATRate         float64 `json:"vat_rate"`
}

// ReturnJourneyBand maps a one-way distance ceiling to the fraction of the
// mileage charge recovered for the empty return leg. Bands are checked in
// order; MaxMiles <= 0 means no upper bound.
type ReturnJourneyBand struct {
	MaxMiles float64 `json:"max_miles"`
	Factor   float64 `json:"factor"`
}

// DefaultConfig returns the current UK rate card.
func DefaultConfig() Config {
	return Config{
		Version:  "2026-08",
		Currency: "GBP",
		BaseFare: 25.00,

		PerMileRates: map[VanSize]float64{
			VanSmall:  1.20,
			VanMedium: 1.50,
			VanLarge:  1.80,
			VanLuton:  2.20,
		},
		HourlyRates: map[VanSize]float64{
			VanSmall:  35.00,
			VanMedium: 45.00,
			VanLarge:  55.00,
			VanLuton:  65.00,
		},

		UrbanRateMultiplier:    1.15,
		UrbanDistanceThreshold: 30.0,

		MinimumHours:     2.0,
		DriveSpeedMPH:    30.0,
		HelperHourlyRate: 20.00,
		FloorAccessFees: map[FloorAccess]float64{
			FloorGround:    0,
			FloorFirst:     15.00,
			FloorSecond:    25.00,
			FloorThirdPlus: 40.00,
		},
		LiftDiscount: 10.00,

		WeekendMultiplier: 0.15,
		EveningMultiplier: 0.10,
		EveningStartHour:  18,
		HolidayMultiplier: 0.20,

		UrgencyMultipliers: map[Urgency]float64{
			UrgencyStandard: 0,
			UrgencyPriority: 0.15,
			UrgencyExpress:  0.30,
		},

		FuelEfficiencyMPG: map[VanSize]float64{
			VanSmall:  38.0,
			VanMedium: 32.0,
			VanLarge:  26.0,
			VanLuton:  21.0,
		},
		FuelPricePerLitre: 1.45,
		LitresPerGallon:   4.546,

		ReturnJourneyBands: []ReturnJourneyBand{
			{MaxMiles: 25, Factor: 0.25},
			{MaxMiles: 100, Factor: 0.40},
			{MaxMiles: 0, Factor: 0.50},
		},

		CongestionCharge: 15.00,

		PlatformFeeRate: 0.20,
		VATRate:         0.20,
	}
}

func (c Config) perMileRate(size VanSize) float64 {
	if rate, ok := c.PerMileRates[size]; ok {
		return rate
	}
	return c.PerMileRates[VanMedium]
}

func (c Config) hourlyRate(size VanSize) float64 {
	if rate, ok := c.HourlyRates[size]; ok {
		return rate
	}
	return c.HourlyRates[VanMedium]
}

func (c Config) fuelEfficiency(size VanSize) float64 {
	if mpg, ok := c.FuelEfficiencyMPG[size]; ok {
		return mpg
	}
	return c.FuelEfficiencyMPG[VanMedium]
}

func (c Config) returnJourneyFactor(distance float64) float64 {
	for _, band := range c.ReturnJourneyBands {
		if band.MaxMiles <= 0 || distance <= band.MaxMiles {
			return band.Factor
		}
	}
	return 0
}
