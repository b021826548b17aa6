package models

import (
	"time"

	"gorm.io/gorm"
)

// SessionTTL is how long a USSD session survives after its last write.
// Expiry is the session's only garbage collection; terminal responses mark
// the session inactive but do not remove the row.
const SessionTTL = 5 * time.Minute

// UssdSession holds one caller's dialog state between gateway turns, keyed
// by the provider-issued session identifier.
type UssdSession struct {
	gorm.Model

	SessionID   string `json:"session_id" gorm:"uniqueIndex;not null"`
	PhoneNumber string `json:"phone_number" gorm:"index"` // normalized 254... form
	UserID      uint   `json:"user_id"`                   // 0 until the caller resolves to a user

	CurrentStep string      `json:"current_step" gorm:"default:'main_menu'"`
	Data        SessionData `json:"data" gorm:"serializer:json"`
	IsActive    bool        `json:"is_active" gorm:"default:true"`
	ExpiresAt   time.Time   `json:"expires_at" gorm:"index"`
}

// SessionData is the typed scratch state for in-progress multi-step flows.
// It replaces the loose per-step map a session would otherwise carry; fields
// are only meaningful while the corresponding flow is active.
type SessionData struct {
	// Payment wizard
	PaymentStep      string  `json:"payment_step,omitempty"` // select_bill, enter_amount, confirm_payment
	PendingBillIDs   []uint  `json:"pending_bill_ids,omitempty"`
	SelectedBillID   uint    `json:"selected_bill_id,omitempty"`
	PaymentAmount    float64 `json:"payment_amount,omitempty"`
	PaymentInitiated bool    `json:"payment_initiated,omitempty"`

	// Complaint wizard
	ComplaintStep     string `json:"complaint_step,omitempty"` // select_category, enter_description
	ComplaintCategory string `json:"complaint_category,omitempty"`
}

// Touch extends the session's expiry window. Called on every save so the
// TTL is idle-based, not absolute.
func (s *UssdSession) Touch() {
	s.ExpiresAt = time.Now().Add(SessionTTL)
}

// Expired reports whether the session's idle TTL has elapsed.
func (s *UssdSession) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
