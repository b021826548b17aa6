package storage

import (
	"time"

	"github.com/safestay/safestay-backend/internal/models"
)

// Store defines the interface for storage operations
type Store interface {
	// User operations
	CreateUser(user *models.User) (*models.User, error)
	GetUser(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	// GetUserByPhone matches any of the supplied formats against either of
	// a user's registered numbers.
	GetUserByPhone(phones ...string) (*models.User, error)
	GetLandlordByApartment(apartmentName string) (*models.User, error)

	// Bill operations
	CreateBill(bill *models.Bill) (*models.Bill, error)
	GetBill(id uint) (*models.Bill, error)
	GetBillsByTenant(tenantID uint) ([]*models.Bill, error)
	// GetRecentBills returns the tenant's newest bills first, any status.
	GetRecentBills(tenantID uint, limit int) ([]*models.Bill, error)
	// GetPendingBills returns Pending/Partial bills ordered by due date.
	GetPendingBills(tenantID uint) ([]*models.Bill, error)
	// GetUpcomingBills returns unsettled bills across all tenants due before
	// the cutoff, including overdue ones.
	GetUpcomingBills(before time.Time) ([]*models.Bill, error)
	GetBillStats(tenantID uint) (*models.BillStats, error)
	UpdateBill(bill *models.Bill) error

	// Complaint operations
	CreateComplaint(complaint *models.Complaint) (*models.Complaint, error)
	GetComplaintsByTenant(tenantID uint) ([]*models.Complaint, error)

	// USSD session operations
	GetSession(sessionID string) (*models.UssdSession, error)
	SaveSession(session *models.UssdSession) error
	DeleteExpiredSessions() error

	// Payment request operations
	CreatePaymentRequest(req *models.PaymentRequest) (*models.PaymentRequest, error)
	GetPaymentRequestByTransaction(transactionID string) (*models.PaymentRequest, error)
	UpdatePaymentRequest(req *models.PaymentRequest) error
}
