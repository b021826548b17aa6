package storage

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/safestay/safestay-backend/internal/models"
)

// MemoryStore holds all data in memory, for tests and local development
type MemoryStore struct {
	users       map[uint]*models.User
	bills       map[uint]*models.Bill
	complaints  map[uint]*models.Complaint
	sessions    map[string]*models.UssdSession
	payRequests map[uint]*models.PaymentRequest

	// Mutexes for thread safety
	userMu sync.RWMutex
	billMu sync.RWMutex
	compMu sync.RWMutex
	sessMu sync.RWMutex
	payMu  sync.RWMutex

	// Counters for ID generation
	userCounter uint
	billCounter uint
	compCounter uint
	sessCounter uint
	payCounter  uint
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[uint]*models.User),
		bills:       make(map[uint]*models.Bill),
		complaints:  make(map[uint]*models.Complaint),
		sessions:    make(map[string]*models.UssdSession),
		payRequests: make(map[uint]*models.PaymentRequest),
	}
}

// User operations

func (m *MemoryStore) CreateUser(user *models.User) (*models.User, error) {
	m.userMu.Lock()
	defer m.userMu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return nil, fmt.Errorf("email already registered")
		}
	}

	// The database store gets this from GORM; here we run the hook directly
	// so hashing and phone normalization behave the same.
	if err := user.BeforeCreate(nil); err != nil {
		return nil, err
	}

	m.userCounter++
	user.ID = m.userCounter
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	m.users[user.ID] = user
	return user, nil
}

func (m *MemoryStore) GetUser(id uint) (*models.User, error) {
	m.userMu.RLock()
	defer m.userMu.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

func (m *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	m.userMu.RLock()
	defer m.userMu.RUnlock()

	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (m *MemoryStore) GetUserByPhone(phones ...string) (*models.User, error) {
	m.userMu.RLock()
	defer m.userMu.RUnlock()

	for _, user := range m.users {
		for _, phone := range phones {
			if phone == "" {
				continue
			}
			if user.PrimaryPhoneNumber == phone || user.SecondaryPhoneNumber == phone {
				return user, nil
			}
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (m *MemoryStore) GetLandlordByApartment(apartmentName string) (*models.User, error) {
	m.userMu.RLock()
	defer m.userMu.RUnlock()

	for _, user := range m.users {
		if user.Role == models.RoleLandlord && user.ApartmentName == apartmentName {
			return user, nil
		}
	}
	return nil, fmt.Errorf("landlord not found")
}

// Bill operations

func (m *MemoryStore) CreateBill(bill *models.Bill) (*models.Bill, error) {
	m.billMu.Lock()
	defer m.billMu.Unlock()

	if err := bill.BeforeSave(nil); err != nil {
		return nil, err
	}

	m.billCounter++
	bill.ID = m.billCounter
	bill.CreatedAt = time.Now()
	bill.UpdatedAt = time.Now()

	m.bills[bill.ID] = bill
	return bill, nil
}

func (m *MemoryStore) GetBill(id uint) (*models.Bill, error) {
	m.billMu.RLock()
	defer m.billMu.RUnlock()

	bill, exists := m.bills[id]
	if !exists {
		return nil, fmt.Errorf("bill not found")
	}
	return bill, nil
}

func (m *MemoryStore) GetBillsByTenant(tenantID uint) ([]*models.Bill, error) {
	m.billMu.RLock()
	defer m.billMu.RUnlock()

	var bills []*models.Bill
	for _, bill := range m.bills {
		if bill.TenantID == tenantID {
			bills = append(bills, bill)
		}
	}
	sort.Slice(bills, func(i, j int) bool {
		return bills[i].CreatedAt.After(bills[j].CreatedAt)
	})
	return bills, nil
}

func (m *MemoryStore) GetRecentBills(tenantID uint, limit int) ([]*models.Bill, error) {
	bills, err := m.GetBillsByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	if len(bills) > limit {
		bills = bills[:limit]
	}
	return bills, nil
}

func (m *MemoryStore) GetPendingBills(tenantID uint) ([]*models.Bill, error) {
	m.billMu.RLock()
	defer m.billMu.RUnlock()

	var bills []*models.Bill
	for _, bill := range m.bills {
		if bill.TenantID != tenantID {
			continue
		}
		if bill.Status == models.BillStatusPending || bill.Status == models.BillStatusPartial {
			bills = append(bills, bill)
		}
	}
	sort.Slice(bills, func(i, j int) bool {
		return bills[i].DueDate.Before(bills[j].DueDate)
	})
	return bills, nil
}

func (m *MemoryStore) GetUpcomingBills(before time.Time) ([]*models.Bill, error) {
	m.billMu.RLock()
	defer m.billMu.RUnlock()

	var bills []*models.Bill
	for _, bill := range m.bills {
		if bill.Status != models.BillStatusPending && bill.Status != models.BillStatusPartial {
			continue
		}
		if bill.DueDate.Before(before) {
			bills = append(bills, bill)
		}
	}
	sort.Slice(bills, func(i, j int) bool {
		return bills[i].DueDate.Before(bills[j].DueDate)
	})
	return bills, nil
}

func (m *MemoryStore) GetBillStats(tenantID uint) (*models.BillStats, error) {
	bills, err := m.GetBillsByTenant(tenantID)
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

func (m *MemoryStore) UpdateBill(bill *models.Bill) error {
	m.billMu.Lock()
	defer m.billMu.Unlock()

	if _, exists := m.bills[bill.ID]; !exists {
		return fmt.Errorf("bill not found")
	}
	if err := bill.BeforeSave(nil); err != nil {
		return err
	}
	bill.UpdatedAt = time.Now()
	m.bills[bill.ID] = bill
	return nil
}

// Complaint operations

func (m *MemoryStore) CreateComplaint(complaint *models.Complaint) (*models.Complaint, error) {
	m.compMu.Lock()
	defer m.compMu.Unlock()

	if err := complaint.BeforeCreate(nil); err != nil {
		return nil, err
	}

	m.compCounter++
	complaint.ID = m.compCounter
	complaint.CreatedAt = time.Now()
	complaint.UpdatedAt = time.Now()
	if complaint.Status == "" {
		complaint.Status = models.ComplaintStatusOpen
	}
	if complaint.Priority == "" {
		complaint.Priority = "Medium"
	}

	m.complaints[complaint.ID] = complaint
	return complaint, nil
}

func (m *MemoryStore) GetComplaintsByTenant(tenantID uint) ([]*models.Complaint, error) {
	m.compMu.RLock()
	defer m.compMu.RUnlock()

	var complaints []*models.Complaint
	for _, complaint := range m.complaints {
		if complaint.TenantID == tenantID {
			complaints = append(complaints, complaint)
		}
	}
	sort.Slice(complaints, func(i, j int) bool {
		return complaints[i].CreatedAt.After(complaints[j].CreatedAt)
	})
	return complaints, nil
}

// USSD session operations

func (m *MemoryStore) GetSession(sessionID string) (*models.UssdSession, error) {
	m.sessMu.RLock()
	defer m.sessMu.RUnlock()

	session, exists := m.sessions[sessionID]
	if !exists {
		return nil, fmt.Errorf("session not found")
	}
	if session.Expired() {
		return nil, fmt.Errorf("session expired")
	}
	return session, nil
}

func (m *MemoryStore) SaveSession(session *models.UssdSession) error {
	m.sessMu.Lock()
	defer m.sessMu.Unlock()

	if session.ID == 0 {
		m.sessCounter++
		session.ID = m.sessCounter
		session.CreatedAt = time.Now()
	}
	session.UpdatedAt = time.Now()
	session.Touch()

	m.sessions[session.SessionID] = session
	return nil
}

func (m *MemoryStore) DeleteExpiredSessions() error {
	m.sessMu.Lock()
	defer m.sessMu.Unlock()

	for id, session := range m.sessions {
		if session.Expired() {
			delete(m.sessions, id)
		}
	}
	return nil
}

// Payment request operations

func (m *MemoryStore) CreatePaymentRequest(req *models.PaymentRequest) (*models.PaymentRequest, error) {
	m.payMu.Lock()
	defer m.payMu.Unlock()

	if err := req.BeforeCreate(nil); err != nil {
		return nil, err
	}

	m.payCounter++
	req.ID = m.payCounter
	req.CreatedAt = time.Now()
	req.UpdatedAt = time.Now()
	if req.Status == "" {
		req.Status = models.PaymentRequestInitiated
	}

	m.payRequests[req.ID] = req
	return req, nil
}

func (m *MemoryStore) GetPaymentRequestByTransaction(transactionID string) (*models.PaymentRequest, error) {
	m.payMu.RLock()
	defer m.payMu.RUnlock()

	for _, req := range m.payRequests {
		if req.TransactionID == transactionID {
			return req, nil
		}
	}
	return nil, fmt.Errorf("payment request not found")
}

func (m *MemoryStore) UpdatePaymentRequest(req *models.PaymentRequest) error {
	m.payMu.Lock()
	defer m.payMu.Unlock()

	if _, exists := m.payRequests[req.ID]; !exists {
		return fmt.Errorf("payment request not found")
	}
	req.UpdatedAt = time.Now()
	m.payRequests[req.ID] = req
	return nil
}
