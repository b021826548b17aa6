package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/safestay/safestay-backend/internal/models"
	"github.com/safestay/safestay-backend/internal/storage"
)

type recordingSMS struct {
	messages map[string][]string
}

func newRecordingSMS() *recordingSMS {
	return &recordingSMS{messages: make(map[string][]string)}
}

func (r *recordingSMS) SendSMS(to, message string) error {
	r.messages[to] = append(r.messages[to], message)
	return nil
}

func setupPaymentTest(t *testing.T) (*PaymentService, *storage.MemoryStore, *recordingSMS, *models.Bill) {
	t.Helper()
	store := storage.NewMemoryStore()
	sms := newRecordingSMS()
	service := NewPaymentService(store, NewNotificationService(sms))

	_, err := store.CreateUser(&models.User{
		Name:               "Grace Wanjiru",
		Email:              "grace@example.com",
		PrimaryPhoneNumber: "0722000001",
		Role:               models.RoleLandlord,
		ApartmentName:      "Sunrise Towers",
	})
	require.NoError(t, err)

	tenant, err := store.CreateUser(&models.User{
		Name:               "John Kamau",
		Email:              "john@example.com",
		PrimaryPhoneNumber: "0712345678",
		Role:               models.RoleTenant,
		ApartmentName:      "Sunrise Towers",
	})
	require.NoError(t, err)

	bill, err := store.CreateBill(&models.Bill{
		TenantID: tenant.ID,
		Amount:   15000,
		Month:    "February",
		Year:     2025,
		DueDate:  time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	return service, store, sms, bill
}

func TestProcessPaymentNotificationSettlesBill(t *testing.T) {
	service, store, sms, bill := setupPaymentTest(t)

	req, err := store.CreatePaymentRequest(&models.PaymentRequest{
		BillID:        bill.ID,
		PhoneNumber:   "254712345678",
		Amount:        5000,
		TransactionID: "ATPid_1",
	})
	require.NoError(t, err)

	payload := []byte(`{"transactionId":"ATPid_1","phoneNumber":"254712345678","amount":5000,"status":"Success"}`)
	require.NoError(t, service.ProcessPaymentNotification(payload))

	settled, err := store.GetBill(bill.ID)
	require.NoError(t, err)
	require.Equal(t, 5000.0, settled.PaidAmount)
	require.Equal(t, 10000.0, settled.RemainingAmount)
	require.Equal(t, models.BillStatusPartial, settled.Status)
	require.Len(t, settled.Payments, 1)
	require.Equal(t, "M-Pesa", settled.Payments[0].Method)
	require.Equal(t, "ATPid_1", settled.Payments[0].TransactionID)

	updated, err := store.GetPaymentRequestByTransaction("ATPid_1")
	require.NoError(t, err)
	require.Equal(t, models.PaymentRequestCompleted, updated.Status)
	require.Equal(t, req.RequestID, updated.RequestID)

	// Tenant confirmation and landlord alert
	require.Len(t, sms.messages["254712345678"], 1)
	require.Contains(t, sms.messages["254712345678"][0], "Payment of KSh 5000 received for February 2025")
	require.Len(t, sms.messages["254722000001"], 1)
	require.Contains(t, sms.messages["254722000001"][0], "Payment received from John Kamau (Sunrise Towers)")
}

func TestProcessPaymentNotificationIgnoresDuplicates(t *testing.T) {
	service, store, _, bill := setupPaymentTest(t)

	_, err := store.CreatePaymentRequest(&models.PaymentRequest{
		BillID:        bill.ID,
		Amount:        5000,
		TransactionID: "ATPid_1",
	})
	require.NoError(t, err)

	payload := []byte(`{"transactionId":"ATPid_1","amount":5000,"status":"Success"}`)
	require.NoError(t, service.ProcessPaymentNotification(payload))
	require.NoError(t, service.ProcessPaymentNotification(payload))

	settled, err := store.GetBill(bill.ID)
	require.NoError(t, err)
	require.Equal(t, 5000.0, settled.PaidAmount)
	require.Len(t, settled.Payments, 1)
}

func TestProcessPaymentNotificationDropsFailures(t *testing.T) {
	service, store, sms, bill := setupPaymentTest(t)

	_, err := store.CreatePaymentRequest(&models.PaymentRequest{
		BillID:        bill.ID,
		Amount:        5000,
		TransactionID: "ATPid_1",
	})
	require.NoError(t, err)

	payload := []byte(`{"transactionId":"ATPid_1","amount":5000,"status":"Failed"}`)
	require.NoError(t, service.ProcessPaymentNotification(payload))

	untouched, err := store.GetBill(bill.ID)
	require.NoError(t, err)
	require.Equal(t, 0.0, untouched.PaidAmount)
	require.Empty(t, sms.messages)
}

func TestRecordManualPayment(t *testing.T) {
	service, store, _, bill := setupPaymentTest(t)

	settled, err := service.RecordManualPayment(bill.ID, 15000, "Cash", "paid at office")
	require.NoError(t, err)
	require.Equal(t, models.BillStatusPaid, settled.Status)
	require.NotNil(t, settled.PaymentDate)
	require.Len(t, settled.Payments, 1)
	require.Equal(t, "Cash", settled.Payments[0].Method)
	require.Equal(t, "paid at office", settled.Payments[0].Notes)

	stored, err := store.GetBill(bill.ID)
	require.NoError(t, err)
	require.Equal(t, 0.0, stored.RemainingAmount)
}

func TestRecordManualPaymentRejectsInvalidAmounts(t *testing.T) {
	service, _, _, bill := setupPaymentTest(t)

	_, err := service.RecordManualPayment(bill.ID, 0, "Cash", "")
	require.Error(t, err)

	_, err = service.RecordManualPayment(bill.ID, 20000, "Cash", "")
	require.Error(t, err)

	_, err = service.RecordManualPayment(999, 5000, "Cash", "")
	require.Error(t, err)
}
