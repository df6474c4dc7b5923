package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type PayPalProvider struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
}

type PayPalTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type PayPalOrderRequest struct {
	Intent        string               `json:"intent"`
	PurchaseUnits []PayPalPurchaseUnit `json:"purchase_units"`
}

type PayPalPurchaseUnit struct {
	Amount      PayPalAmount `json:"amount"`
	Description string       `json:"description,omitempty"`
	ReferenceID string       `json:"reference_id,omitempty"`
}

type PayPalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type PayPalOrderResponse struct {
	ID     string       `json:"id"`
	Status string       `json:"status"`
	Links  []PayPalLink `json:"links"`
}

type PayPalLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

func NewPayPalProvider(clientID, clientSecret, mode string) *PayPalProvider {
	baseURL := "https://api.sandbox.paypal.com"
	if mode == "live" {
		baseURL = "https://api.paypal.com"
	}

	return &PayPalProvider{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *PayPalProvider) CreateIntent(ctx context.Context, request *IntentRequest) (*IntentResponse, error) {
	orderRequest := PayPalOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []PayPalPurchaseUnit{
			{
				Amount: PayPalAmount{
					CurrencyCode: strings.ToUpper(request.Currency),
					Value:        fmt.Sprintf("%.2f", request.Amount),
				},
				Description: request.Description,
				ReferenceID: request.Reference,
			},
		},
	}

	body, err := p.doRequest(ctx, "POST", "/v2/checkout/orders", orderRequest, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var order PayPalOrderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &IntentResponse{
		IntentID:    order.ID,
		ApprovalURL: approvalLink(order.Links),
		Status:      order.Status,
		Amount:      request.Amount,
		Currency:    strings.ToUpper(request.Currency),
		CreatedAt:   time.Now().Unix(),
		Metadata:    request.Metadata,
	}, nil
}

func (p *PayPalProvider) GetIntent(ctx context.Context, intentID string) (*IntentResponse, error) {
	body, err := p.doRequest(ctx, "GET", "/v2/checkout/orders/"+intentID, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var order PayPalOrderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &IntentResponse{
		IntentID:    order.ID,
		ApprovalURL: approvalLink(order.Links),
		Status:      order.Status,
		CreatedAt:   time.Now().Unix(),
	}, nil
}

func (p *PayPalProvider) CancelIntent(ctx context.Context, intentID string) error {
	// Unapproved PayPal orders expire on their own; there is no cancel call.
	return nil
}

func (p *PayPalProvider) RefundPayment(ctx context.Context, request *RefundRequest) (*RefundResponse, error) {
	refundRequest := map[string]interface{}{
		"note_to_payer": request.Reason,
	}
	if request.Amount > 0 {
		refundRequest["amount"] = PayPalAmount{
			CurrencyCode: "GBP",
			Value:        fmt.Sprintf("%.2f", request.Amount),
		}
	}

	body, err := p.doRequest(ctx, "POST",
		fmt.Sprintf("/v2/payments/captures/%s/refund", request.IntentID),
		refundRequest, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	id, _ := result["id"].(string)
	status, _ := result["status"].(string)

	return &RefundResponse{
		RefundID:  id,
		Status:    status,
		Amount:    request.Amount,
		Currency:  "GBP",
		CreatedAt: time.Now().Unix(),
	}, nil
}

func (p *PayPalProvider) ValidateWebhook(ctx context.Context, payload []byte, signature string) (*WebhookEvent, error) {
	var event map[string]interface{}
	err := json.Unmarshal(payload, &event)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal webhook payload: %w", err)
	}

	id, _ := event["id"].(string)
	eventType, _ := event["event_type"].(string)

	return &WebhookEvent{
		EventID:   id,
		EventType: eventType,
		Data:      event,
		CreatedAt: time.Now().Unix(),
	}, nil
}

func (p *PayPalProvider) doRequest(ctx context.Context, method, path string, payload interface{}, wantStatus int) ([]byte, error) {
	token, err := p.getAccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return nil, fmt.Errorf("PayPal API error: %s", string(body))
	}

	return body, nil
}

func (p *PayPalProvider) getAccessToken(ctx context.Context) (string, error) {
	data := "grant_type=client_credentials"
	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/v1/oauth2/token", strings.NewReader(data))
	if err != nil {
		return "", err
	}

	req.SetBasicAuth(p.clientID, p.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tokenResp PayPalTokenResponse
	err = json.NewDecoder(resp.Body).Decode(&tokenResp)
	if err != nil {
		return "", err
	}

	return tokenResp.AccessToken, nil
}

func approvalLink(links []PayPalLink) string {
	for _, link := range links {
		if link.Rel == "approve" {
			return link.Href
		}
	}
	return ""
}
