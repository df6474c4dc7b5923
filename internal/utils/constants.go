package utils

import "time"

// Application Constants
const (
	AppName    = "VanGo"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "GBP"
	DefaultTimeZone = "Europe/London"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Quotes
	QuoteTTL         = 30 * time.Minute
	MaxQuoteDistance = 500.0 // miles
	MaxHelpers       = 4

	// Bookings
	BookingReferencePrefix = "VG"

	// Drivers
	MaxDocumentSize = 10 * 1024 * 1024 // 10MB
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidCredentials = "invalid credentials"
	ErrInvalidInput       = "invalid input"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "forbidden"
	ErrNotFound           = "not found"
	ErrValidationFailed   = "validation failed"
	ErrQuoteNotFound      = "quote not found or expired"
	ErrBookingNotFound    = "booking not found"
	ErrDriverNotFound     = "driver not found"
	ErrPaymentFailed      = "payment failed"
)

// Cache Keys
const (
	CacheQuotePrefix   = "quote:"
	CacheBookingPrefix = "booking:"
)

// File Types
var (
	AllowedDocumentTypes = []string{"pdf", "jpg", "jpeg", "png"}
)
