package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/safestay/safestay-backend/internal/models"
	"github.com/safestay/safestay-backend/internal/storage"
)

// PaymentService settles bills from provider notifications and manual
// entries. This is the only writer of paid/remaining/status on a bill; the
// USSD engine just initiates charges.
type PaymentService struct {
	store         storage.Store
	notifications *NotificationService
}

// NewPaymentService creates a new payment service
func NewPaymentService(store storage.Store, notifications *NotificationService) *PaymentService {
	return &PaymentService{
		store:         store,
		notifications: notifications,
	}
}

// PaymentNotification is the settlement callback from Africa's Talking.
type PaymentNotification struct {
	TransactionID string            `json:"transactionId"`
	PhoneNumber   string            `json:"phoneNumber"`
	Amount        float64           `json:"amount"`
	Status        string            `json:"status"`
	RequestID     string            `json:"requestId"`
	Metadata      map[string]string `json:"metadata"`
}

// ProcessPaymentNotification handles an M-Pesa settlement webhook. Anything
// other than a Success status is noted and dropped.
func (p *PaymentService) ProcessPaymentNotification(payload []byte) error {
	var notification PaymentNotification
	if err := json.Unmarshal(payload, &notification); err != nil {
		return fmt.Errorf("failed to parse payment notification: %w", err)
	}

	log.Printf("Payment notification received: %s (%s)", notification.TransactionID, notification.Status)

	if notification.Status != "Success" {
		log.Printf("Payment not successful: %s", notification.Status)
		return nil
	}

	request, err := p.store.GetPaymentRequestByTransaction(notification.TransactionID)
	if err != nil {
		return fmt.Errorf("no payment request for transaction %s: %w", notification.TransactionID, err)
	}

	if request.Status == models.PaymentRequestCompleted {
		// Providers retry webhooks; the first settlement wins.
		log.Printf("Duplicate settlement for transaction %s ignored", notification.TransactionID)
		return nil
	}

	bill, err := p.store.GetBill(request.BillID)
	if err != nil {
		return fmt.Errorf("bill %d not found for transaction %s: %w", request.BillID, notification.TransactionID, err)
	}

	if err := p.applyPayment(bill, notification.Amount, "M-Pesa", notification.TransactionID, ""); err != nil {
		return err
	}

	request.Status = models.PaymentRequestCompleted
	if err := p.store.UpdatePaymentRequest(request); err != nil {
		log.Printf("Failed to mark payment request %s completed: %v", request.RequestID, err)
	}

	p.sendSettlementNotifications(bill, notification.Amount)

	log.Printf("Payment processed successfully for bill %d", bill.ID)
	return nil
}

// RecordManualPayment settles a cash or bank payment entered by a landlord.
func (p *PaymentService) RecordManualPayment(billID uint, amount float64, method, notes string) (*models.Bill, error) {
	bill, err := p.store.GetBill(billID)
	if err != nil {
		return nil, fmt.Errorf("bill not found")
	}

	if amount <= 0 || amount > bill.RemainingAmount {
		return nil, fmt.Errorf("invalid payment amount")
	}

	if method == "" {
		method = "Cash"
	}

	if err := p.applyPayment(bill, amount, method, "", notes); err != nil {
		return nil, err
	}

	p.sendSettlementNotifications(bill, amount)
	return bill, nil
}

// applyPayment credits the bill, appends the payment record and persists.
func (p *PaymentService) applyPayment(bill *models.Bill, amount float64, method, transactionID, notes string) error {
	bill.ApplyPayment(amount)
	bill.Payments = append(bill.Payments, models.Payment{
		BillID:        bill.ID,
		Amount:        amount,
		Method:        method,
		TransactionID: transactionID,
		PaidAt:        time.Now(),
		Notes:         notes,
	})

	if err := p.store.UpdateBill(bill); err != nil {
		return fmt.Errorf("failed to update bill %d: %w", bill.ID, err)
	}
	return nil
}

// sendSettlementNotifications confirms the payment to the tenant and alerts
// the landlord. Failures are logged, never returned.
func (p *PaymentService) sendSettlementNotifications(bill *models.Bill, amount float64) {
	if p.notifications == nil {
		return
	}

	tenant, err := p.store.GetUser(bill.TenantID)
	if err != nil {
		log.Printf("Tenant %d not found for payment notification: %v", bill.TenantID, err)
		return
	}

	if err := p.notifications.SendPaymentConfirmation(tenant, amount, bill); err != nil {
		log.Printf("Failed to send payment confirmation to %s: %v", tenant.PrimaryPhoneNumber, err)
	}

	landlord, err := p.store.GetLandlordByApartment(tenant.ApartmentName)
	if err != nil {
		log.Printf("No landlord found for apartment %q: %v", tenant.ApartmentName, err)
		return
	}

	if err := p.notifications.NotifyLandlordOfPayment(landlord, tenant, amount, bill); err != nil {
		log.Printf("Failed to notify landlord %s of payment: %v", landlord.PrimaryPhoneNumber, err)
	}
}
