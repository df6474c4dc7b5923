package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverStatus string

const (
	DriverStatusPending   DriverStatus = "pending"
	DriverStatusApproved  DriverStatus = "approved"
	DriverStatusRejected  DriverStatus = "rejected"
	DriverStatusSuspended DriverStatus = "suspended"
)

type DriverDocumentType string

const (
	DocumentLicence   DriverDocumentType = "driving_licence"
	DocumentInsurance DriverDocumentType = "goods_in_transit_insurance"
	DocumentVanPhoto  DriverDocumentType = "van_photo"
)

// DriverRegistration is the public registration payload.
type DriverRegistration struct {
	FullName     string `json:"full_name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,min=7,max=20"`
	VanSize      string `json:"van_size" validate:"required,van_size"`
	Registration string `json:"registration" validate:"required,min=2,max=10,uk_registration"`
	BaseCity     string `json:"base_city" validate:"required,min=2,max=60"`
}

type DriverDocument struct {
	Type       DriverDocumentType `json:"type" bson:"type"`
	StorageKey string             `json:"storage_key" bson:"storage_key"`
	URL        string             `json:"url" bson:"url"`
	UploadedAt time.Time          `json:"uploaded_at" bson:"uploaded_at"`
}

type Driver struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName     string             `json:"full_name" bson:"full_name"`
	Email        string             `json:"email" bson:"email"`
	Phone        string             `json:"phone" bson:"phone"`
	VanSize      string             `json:"van_size" bson:"van_size"`
	Registration string             `json:"registration" bson:"registration"`
	BaseCity     string             `json:"base_city" bson:"base_city"`
	Status       DriverStatus       `json:"status" bson:"status"`
	Documents    []DriverDocument   `json:"documents" bson:"documents"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}
