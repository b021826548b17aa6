package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Bill represents one rent/utility bill owed by a tenant. The engine reads
// bills and previews balances but never settles them; paid/remaining/status
// are written only by the payment webhook and manual payment recording.
type Bill struct {
	gorm.Model

	TenantID   uint `json:"tenant_id" gorm:"index;not null"`
	LandlordID uint `json:"landlord_id" gorm:"index"`

	Amount          float64 `json:"amount" gorm:"not null"`
	PaidAmount      float64 `json:"paid_amount" gorm:"default:0"`
	RemainingAmount float64 `json:"remaining_amount"`

	DueDate     time.Time `json:"due_date" gorm:"not null"`
	Month       string    `json:"month"` // e.g. "January"
	Year        int       `json:"year"`
	Description string    `json:"description"`

	Status      string     `json:"status" gorm:"default:'Pending'"` // Pending, Partial, Paid
	PaymentDate *time.Time `json:"payment_date,omitempty"`

	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:BillID"`
}

// Bill status constants
const (
	BillStatusPending = "Pending"
	BillStatusPartial = "Partial"
	BillStatusPaid    = "Paid"
)

// Payment is one settled payment against a bill, recorded by the webhook or
// by manual entry. Distinct from PaymentRequest, which tracks initiations.
type Payment struct {
	gorm.Model

	BillID        uint      `json:"bill_id" gorm:"index;not null"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"` // "M-Pesa", "Cash", "Bank Transfer", "Other"
	TransactionID string    `json:"transaction_id" gorm:"index"`
	PaidAt        time.Time `json:"paid_at"`
	Notes         string    `json:"notes,omitempty"`
}

// BeforeSave keeps the bill invariant: remaining = max(0, amount - paid),
// status is Paid iff nothing remains, Partial iff something was paid.
func (b *Bill) BeforeSave(tx *gorm.DB) error {
	b.RemainingAmount = math.Max(0, b.Amount-b.PaidAmount)

	switch {
	case b.RemainingAmount == 0:
		b.Status = BillStatusPaid
	case b.PaidAmount > 0:
		b.Status = BillStatusPartial
	default:
		b.Status = BillStatusPending
	}

	return nil
}

// ApplyPayment credits an amount against the bill and recomputes the
// invariant fields. Callers persist the bill afterwards.
func (b *Bill) ApplyPayment(amount float64) {
	b.PaidAmount += amount
	b.RemainingAmount = math.Max(0, b.Amount-b.PaidAmount)

	if b.RemainingAmount == 0 {
		b.Status = BillStatusPaid
		now := time.Now()
		b.PaymentDate = &now
	} else {
		b.Status = BillStatusPartial
	}
}

// Outstanding returns the balance still owed on the bill, falling back to
// the full amount for bills that never had a payment recorded against them.
func (b *Bill) Outstanding() float64 {
	if b.RemainingAmount > 0 {
		return b.RemainingAmount
	}
	return b.Amount
}

// BillStats aggregates a tenant's bills for the profile view and main menu.
type BillStats struct {
	TotalBills   int     `json:"total_bills"`
	PaidBills    int     `json:"paid_bills"`
	PendingBills int     `json:"pending_bills"`
	TotalOwed    float64 `json:"total_owed"`
}
