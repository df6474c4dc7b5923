package payment

import (
	"context"
)

// PaymentProvider creates and manages payment intents for booking deposits.
// Amounts are major currency units; providers convert to minor units on the wire.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, request *IntentRequest) (*IntentResponse, error)
	GetIntent(ctx context.Context, intentID string) (*IntentResponse, error)
	CancelIntent(ctx context.Context, intentID string) error
	RefundPayment(ctx context.Context, request *RefundRequest) (*RefundResponse, error)
	ValidateWebhook(ctx context.Context, payload []byte, signature string) (*WebhookEvent, error)
}

type IntentRequest struct {
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency"`
	Description   string            `json:"description"`
	CustomerEmail string            `json:"customer_email"`
	Reference     string            `json:"reference"`
	Metadata      map[string]string `json:"metadata"`
}

type IntentResponse struct {
	IntentID     string            `json:"intent_id"`
	ClientSecret string            `json:"client_secret,omitempty"`
	ApprovalURL  string            `json:"approval_url,omitempty"`
	Status       string            `json:"status"`
	Amount       float64           `json:"amount"`
	Currency     string            `json:"currency"`
	CreatedAt    int64             `json:"created_at"`
	Metadata     map[string]string `json:"metadata"`
}

type RefundRequest struct {
	IntentID string  `json:"intent_id"`
	Amount   float64 `json:"amount"`
	Reason   string  `json:"reason"`
}

type RefundResponse struct {
	RefundID  string  `json:"refund_id"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	CreatedAt int64   `json:"created_at"`
}

type WebhookEvent struct {
	EventID   string                 `json:"event_id"`
	EventType string                 `json:"event_type"`
	Data      map[string]interface{} `json:"data"`
	CreatedAt int64                  `json:"created_at"`
}
