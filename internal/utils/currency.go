package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var SupportedCurrencies = map[string]Currency{
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound"},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar"},
}

func FormatCurrency(amount float64, currencyCode string) string {
	currency, exists := SupportedCurrencies[currencyCode]
	if !exists {
		currency = SupportedCurrencies[DefaultCurrency]
	}

	amount = math.Round(amount*100) / 100
	return fmt.Sprintf("%s%.2f", currency.Symbol, amount)
}

func ParseCurrencyAmount(amountStr string) (float64, error) {
	cleaned := strings.TrimSpace(amountStr)
	cleaned = strings.ReplaceAll(cleaned, "£", "")
	cleaned = strings.ReplaceAll(cleaned, "€", "")
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	return strconv.ParseFloat(cleaned, 64)
}

func GetCurrencySymbol(currencyCode string) string {
	currency, exists := SupportedCurrencies[currencyCode]
	if !exists {
		return "£"
	}
	return currency.Symbol
}

func ValidateCurrencyCode(code string) bool {
	_, exists := SupportedCurrencies[code]
	return exists
}

// ToMinorUnits converts a decimal amount to integer pence for payment
// providers that bill in the minor unit.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
