package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRequest records a mobile-money charge the engine asked the gateway
// to initiate. Settlement arrives later through the payment webhook, which
// matches on the provider transaction ID and marks the request completed.
type PaymentRequest struct {
	gorm.Model

	RequestID     string  `json:"request_id" gorm:"uniqueIndex;not null"`
	BillID        uint    `json:"bill_id" gorm:"index;not null"`
	PhoneNumber   string  `json:"phone_number"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id" gorm:"index"` // provider reference, set on initiation
	Status        string  `json:"status" gorm:"default:'initiated'"`
}

// PaymentRequest status constants
const (
	PaymentRequestInitiated = "initiated"
	PaymentRequestCompleted = "completed"
	PaymentRequestFailed    = "failed"
)

func (p *PaymentRequest) BeforeCreate(tx *gorm.DB) error {
	if p.RequestID == "" {
		p.RequestID = uuid.NewString()
	}
	return nil
}
