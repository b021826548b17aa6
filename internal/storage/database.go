package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/safestay/safestay-backend/internal/models"
)

// DatabaseStore implements Store on top of GORM/PostgreSQL
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a database-backed store
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// User operations

func (d *DatabaseStore) CreateUser(user *models.User) (*models.User, error) {
	if err := d.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (d *DatabaseStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := d.db.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("user not found")
	}
	return &user, nil
}

func (d *DatabaseStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("user not found")
	}
	return &user, nil
}

func (d *DatabaseStore) GetUserByPhone(phones ...string) (*models.User, error) {
	if len(phones) == 0 {
		return nil, fmt.Errorf("user not found")
	}
	var user models.User
	err := d.db.Where(
		"primary_phone_number IN ? OR secondary_phone_number IN ?",
		phones, phones,
	).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	return &user, nil
}

func (d *DatabaseStore) GetLandlordByApartment(apartmentName string) (*models.User, error) {
	var user models.User
	err := d.db.Where(
		"apartment_name = ? AND role = ?",
		apartmentName, models.RoleLandlord,
	).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("landlord not found")
	}
	return &user, nil
}

// Bill operations

func (d *DatabaseStore) CreateBill(bill *models.Bill) (*models.Bill, error) {
	if err := d.db.Create(bill).Error; err != nil {
		return nil, err
	}
	return bill, nil
}

func (d *DatabaseStore) GetBill(id uint) (*models.Bill, error) {
	var bill models.Bill
	if err := d.db.First(&bill, id).Error; err != nil {
		return nil, fmt.Errorf("bill not found")
	}
	return &bill, nil
}

func (d *DatabaseStore) GetBillsByTenant(tenantID uint) ([]*models.Bill, error) {
	var bills []*models.Bill
	err := d.db.Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&bills).Error
	return bills, err
}

func (d *DatabaseStore) GetRecentBills(tenantID uint, limit int) ([]*models.Bill, error) {
	var bills []*models.Bill
	err := d.db.Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Find(&bills).Error
	return bills, err
}

func (d *DatabaseStore) GetPendingBills(tenantID uint) ([]*models.Bill, error) {
	var bills []*models.Bill
	err := d.db.Where(
		"tenant_id = ? AND status IN ?",
		tenantID, []string{models.BillStatusPending, models.BillStatusPartial},
	).Order("due_date ASC").Find(&bills).Error
	return bills, err
}

func (d *DatabaseStore) GetUpcomingBills(before time.Time) ([]*models.Bill, error) {
	var bills []*models.Bill
	err := d.db.Where(
		"status IN ? AND due_date < ?",
		[]string{models.BillStatusPending, models.BillStatusPartial}, before,
	).Order("due_date ASC").Find(&bills).Error
	return bills, err
}

func (d *DatabaseStore) GetBillStats(tenantID uint) (*models.BillStats, error) {
	bills, err := d.GetBillsByTenant(tenantID)
	if err != nil {
		return nil, err
	}

	stats := &models.BillStats{}
	for _, bill := range bills {
		stats.TotalBills++
		switch bill.Status {
		case models.BillStatusPaid:
			stats.PaidBills++
		case models.BillStatusPending, models.BillStatusPartial:
			stats.PendingBills++
			stats.TotalOwed += bill.RemainingAmount
		}
	}
	return stats, nil
}

func (d *DatabaseStore) UpdateBill(bill *models.Bill) error {
	return d.db.Save(bill).Error
}

// Complaint operations

func (d *DatabaseStore) CreateComplaint(complaint *models.Complaint) (*models.Complaint, error) {
	if err := d.db.Create(complaint).Error; err != nil {
		return nil, err
	}
	return complaint, nil
}

func (d *DatabaseStore) GetComplaintsByTenant(tenantID uint) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	err := d.db.Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&complaints).Error
	return complaints, err
}

// USSD session operations

func (d *DatabaseStore) GetSession(sessionID string) (*models.UssdSession, error) {
	var session models.UssdSession
	err := d.db.Where("session_id = ?", sessionID).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session not found")
		}
		return nil, err
	}
	// An expired session is indistinguishable from an absent one. The row
	// must go now, not at the next cleanup sweep: the caller will save a
	// fresh session under the same session_id, which has a unique index.
	if session.Expired() {
		if err := d.db.Unscoped().Delete(&session).Error; err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("session expired")
	}
	return &session, nil
}

func (d *DatabaseStore) SaveSession(session *models.UssdSession) error {
	session.Touch()
	return d.db.Save(session).Error
}

func (d *DatabaseStore) DeleteExpiredSessions() error {
	return d.db.Unscoped().
		Where("expires_at < ?", time.Now()).
		Delete(&models.UssdSession{}).Error
}

// Payment request operations

func (d *DatabaseStore) CreatePaymentRequest(req *models.PaymentRequest) (*models.PaymentRequest, error) {
	if err := d.db.Create(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}

func (d *DatabaseStore) GetPaymentRequestByTransaction(transactionID string) (*models.PaymentRequest, error) {
	var req models.PaymentRequest
	err := d.db.Where("transaction_id = ?", transactionID).First(&req).Error
	if err != nil {
		return nil, fmt.Errorf("payment request not found")
	}
	return &req, nil
}

func (d *DatabaseStore) UpdatePaymentRequest(req *models.PaymentRequest) error {
	return d.db.Save(req).Error
}
