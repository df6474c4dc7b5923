package config

import (
	"vango/internal/pricing"
)

// PricingConfig wraps the rate card and allows the headline rates to be
// tuned per environment without a redeploy.
type PricingConfig struct {
	Card *pricing.Config `yaml:"card"`
}

func loadPricingConfig() *PricingConfig {
	card := pricing.DefaultConfig()
	card.VATRate = getEnvAsFloat64("VAT_RATE", card.VATRate)
	card.PlatformFeeRate = getEnvAsFloat64("PLATFORM_FEE_RATE", card.PlatformFeeRate)
	card.BaseFare = getEnvAsFloat64("PRICING_BASE_FARE", card.BaseFare)
	card.FuelPricePerLitre = getEnvAsFloat64("FUEL_PRICE_PER_LITRE", card.FuelPricePerLitre)
	card.CongestionCharge = getEnvAsFloat64("CONGESTION_CHARGE", card.CongestionCharge)
	card.HelperHourlyRate = getEnvAsFloat64("HELPER_HOURLY_RATE", card.HelperHourlyRate)
	card.UrbanRateMultiplier = getEnvAsFloat64("URBAN_RATE_MULTIPLIER", card.UrbanRateMultiplier)
	if v := getEnv("PRICING_VERSION", ""); v != "" {
		card.Version = v
	}
	return &PricingConfig{Card: &card}
}
