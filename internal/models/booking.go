package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vango/internal/pricing"
)

type BookingStatus string

const (
	BookingStatusPendingPayment BookingStatus = "pending_payment"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusCompleted      BookingStatus = "completed"
	BookingStatusCancelled      BookingStatus = "cancelled"
)

// BookingRequest turns a cached quote into a booking.
type BookingRequest struct {
	QuoteReference  string `json:"quote_reference" validate:"required"`
	CustomerName    string `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerPhone   string `json:"customer_phone" validate:"required,min=7,max=20"`
	PaymentProvider string `json:"payment_provider" validate:"omitempty,oneof=stripe paypal"`
	Notes           string `json:"notes" validate:"max=1000"`
}

type Booking struct {
	ID              primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	Reference       string                 `json:"reference" bson:"reference"`
	QuoteReference  string                 `json:"quote_reference" bson:"quote_reference"`
	CustomerName    string                 `json:"customer_name" bson:"customer_name"`
	CustomerEmail   string                 `json:"customer_email" bson:"customer_email"`
	CustomerPhone   string                 `json:"customer_phone" bson:"customer_phone"`
	Trip            pricing.TripRequest    `json:"trip" bson:"trip"`
	Breakdown       pricing.PriceBreakdown `json:"breakdown" bson:"breakdown"`
	Status          BookingStatus          `json:"status" bson:"status"`
	PaymentProvider string                 `json:"payment_provider" bson:"payment_provider"`
	PaymentIntentID string                 `json:"payment_intent_id,omitempty" bson:"payment_intent_id,omitempty"`
	Notes           string                 `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at" bson:"updated_at"`
}
