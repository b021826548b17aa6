package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/safestay/safestay-backend/internal/models"
)

func seedTenant(t *testing.T, store *MemoryStore) *models.User {
	t.Helper()
	user, err := store.CreateUser(&models.User{
		Name:                 "John Kamau",
		Email:                "john@example.com",
		Password:             "secret123",
		PrimaryPhoneNumber:   "0712345678",
		SecondaryPhoneNumber: "0733111222",
		Role:                 models.RoleTenant,
		ApartmentName:        "Sunrise Towers",
	})
	require.NoError(t, err)
	return user
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	store := NewMemoryStore()
	seedTenant(t, store)

	_, err := store.CreateUser(&models.User{
		Name:               "Other",
		Email:              "john@example.com",
		PrimaryPhoneNumber: "0799999999",
	})
	require.Error(t, err)
}

func TestGetUserByPhoneMatchesAnyFormatAndEitherNumber(t *testing.T) {
	store := NewMemoryStore()
	user := seedTenant(t, store)

	// Stored numbers are normalized on create
	found, err := store.GetUserByPhone("254712345678")
	require.NoError(t, err)
	require.Equal(t, user.ID, found.ID)

	found, err = store.GetUserByPhone("254733111222")
	require.NoError(t, err)
	require.Equal(t, user.ID, found.ID)

	// Multiple candidate formats, first match wins
	found, err = store.GetUserByPhone("nonsense", "254712345678")
	require.NoError(t, err)
	require.Equal(t, user.ID, found.ID)

	_, err = store.GetUserByPhone("254700000000")
	require.Error(t, err)
}

func TestGetLandlordByApartment(t *testing.T) {
	store := NewMemoryStore()
	seedTenant(t, store)

	landlord, err := store.CreateUser(&models.User{
		Name:               "Grace Wanjiru",
		Email:              "grace@example.com",
		PrimaryPhoneNumber: "0722000001",
		Role:               models.RoleLandlord,
		ApartmentName:      "Sunrise Towers",
	})
	require.NoError(t, err)

	found, err := store.GetLandlordByApartment("Sunrise Towers")
	require.NoError(t, err)
	require.Equal(t, landlord.ID, found.ID)

	// Tenants never match
	_, err = store.GetLandlordByApartment("Elsewhere")
	require.Error(t, err)
}

func TestGetPendingBillsOrderedByDueDate(t *testing.T) {
	store := NewMemoryStore()
	user := seedTenant(t, store)

	later, err := store.CreateBill(&models.Bill{
		TenantID: user.ID, Amount: 5000,
		Month: "March", Year: 2025,
		DueDate: time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	sooner, err := store.CreateBill(&models.Bill{
		TenantID: user.ID, Amount: 5000,
		Month: "February", Year: 2025,
		DueDate: time.Now().Add(-24 * time.Hour),
	})
	require.NoError(t, err)

	_, err = store.CreateBill(&models.Bill{
		TenantID: user.ID, Amount: 5000, PaidAmount: 5000,
		Month: "January", Year: 2025,
		DueDate: time.Now().Add(-30 * 24 * time.Hour),
	})
	require.NoError(t, err)

	pending, err := store.GetPendingBills(user.ID)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	require.Equal(t, sooner.ID, pending[0].ID)
	require.Equal(t, later.ID, pending[1].ID)
}

func TestGetUpcomingBillsHonorsCutoff(t *testing.T) {
	store := NewMemoryStore()
	user := seedTenant(t, store)

	overdue, err := store.CreateBill(&models.Bill{
		TenantID: user.ID, Amount: 5000,
		Month: "February", Year: 2025,
		DueDate: time.Now().Add(-24 * time.Hour),
	})
	require.NoError(t, err)

	_, err = store.CreateBill(&models.Bill{
		TenantID: user.ID, Amount: 5000,
		Month: "April", Year: 2025,
		DueDate: time.Now().Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)

	bills, err := store.GetUpcomingBills(time.Now().Add(3 * 24 * time.Hour))
	require.NoError(t, err)
	require.Len(t, bills, 1)
	require.Equal(t, overdue.ID, bills[0].ID)
}

func TestGetBillStats(t *testing.T) {
	store := NewMemoryStore()
	user := seedTenant(t, store)

	_, err := store.CreateBill(&models.Bill{
		TenantID: user.ID, Amount: 15000, PaidAmount: 15000,
		Month: "January", Year: 2025, DueDate: time.Now(),
	})
	require.NoError(t, err)

	_, err = store.CreateBill(&models.Bill{
		TenantID: user.ID, Amount: 15000, PaidAmount: 5000,
		Month: "February", Year: 2025, DueDate: time.Now(),
	})
	require.NoError(t, err)

	stats, err := store.GetBillStats(user.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalBills)
	require.Equal(t, 1, stats.PaidBills)
	require.Equal(t, 1, stats.PendingBills)
	require.Equal(t, 10000.0, stats.TotalOwed)
}

func TestSessionLifecycle(t *testing.T) {
	store := NewMemoryStore()

	session := &models.UssdSession{
		SessionID:   "sess-1",
		PhoneNumber: "254712345678",
		CurrentStep: "main_menu",
		IsActive:    true,
	}
	require.NoError(t, store.SaveSession(session))
	require.False(t, session.ExpiresAt.IsZero())

	loaded, err := store.GetSession("sess-1")
	require.NoError(t, err)
	require.Equal(t, "main_menu", loaded.CurrentStep)

	// Expired sessions read as absent
	loaded.ExpiresAt = time.Now().Add(-time.Minute)
	_, err = store.GetSession("sess-1")
	require.Error(t, err)

	require.NoError(t, store.DeleteExpiredSessions())
	require.NoError(t, store.SaveSession(&models.UssdSession{SessionID: "sess-2"}))

	_, err = store.GetSession("sess-2")
	require.NoError(t, err)
}

func TestPaymentRequestLifecycle(t *testing.T) {
	store := NewMemoryStore()

	req, err := store.CreatePaymentRequest(&models.PaymentRequest{
		BillID:      1,
		PhoneNumber: "254712345678",
		Amount:      5000,
	})
	require.NoError(t, err)
	require.NotEmpty(t, req.RequestID)
	require.Equal(t, models.PaymentRequestInitiated, req.Status)

	req.TransactionID = "ATPid_1"
	require.NoError(t, store.UpdatePaymentRequest(req))

	found, err := store.GetPaymentRequestByTransaction("ATPid_1")
	require.NoError(t, err)
	require.Equal(t, req.RequestID, found.RequestID)

	_, err = store.GetPaymentRequestByTransaction("missing")
	require.Error(t, err)
}
