package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// MpesaService initiates M-Pesa charges through the Africa's Talking mobile
// checkout API. The charge completes asynchronously: the provider pushes a
// PIN prompt to the handset and reports settlement via the payment webhook.
type MpesaService struct {
	apiKey      string
	username    string
	productName string
	baseURL     string
	httpClient  *http.Client
}

// NewMpesaService creates a new M-Pesa checkout service
func NewMpesaService() (*MpesaService, error) {
	apiKey := os.Getenv("AFRICASTALKING_API_KEY")
	username := os.Getenv("AFRICASTALKING_USERNAME")

	if apiKey == "" || username == "" {
		return nil, fmt.Errorf("missing Africa's Talking credentials in environment variables")
	}

	productName := os.Getenv("AFRICASTALKING_PRODUCT")
	if productName == "" {
		productName = "SafeStay"
	}

	baseURL := "https://payments.africastalking.com"
	if username == "sandbox" {
		baseURL = "https://payments.sandbox.africastalking.com"
	}

	return &MpesaService{
		apiKey:      apiKey,
		username:    username,
		productName: productName,
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type checkoutRequest struct {
	Username     string            `json:"username"`
	ProductName  string            `json:"productName"`
	PhoneNumber  string            `json:"phoneNumber"`
	CurrencyCode string            `json:"currencyCode"`
	Amount       float64           `json:"amount"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

type checkoutResponse struct {
	Status        string `json:"status"`
	Description   string `json:"description"`
	TransactionID string `json:"transactionId"`
}

// MobileCheckout pushes an M-Pesa charge to the given phone and returns the
// provider's transaction ID. The reference travels in the request metadata
// so the settlement webhook can match it back.
func (m *MpesaService) MobileCheckout(phone string, amount float64, reference string) (string, error) {
	payload := checkoutRequest{
		Username:     m.username,
		ProductName:  m.productName,
		PhoneNumber:  formatE164(phone),
		CurrencyCode: "KES",
		Amount:       amount,
		Metadata: map[string]string{
			"requestId": reference,
			"service":   "rent_payment",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode checkout request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, m.baseURL+"/mobile/checkout/request", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("checkout request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read checkout response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("checkout returned HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	var result checkoutResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse checkout response: %w", err)
	}

	if result.Status != "PendingConfirmation" && result.Status != "Success" {
		return "", fmt.Errorf("checkout rejected: %s (%s)", result.Status, result.Description)
	}

	log.Printf("💳 M-Pesa checkout initiated: %s (%s)", result.TransactionID, result.Status)
	return result.TransactionID, nil
}
