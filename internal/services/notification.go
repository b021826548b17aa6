package services

import (
	"fmt"
	"os"

	"github.com/safestay/safestay-backend/internal/models"
)

// SMSSender is the transport NotificationService sends through.
type SMSSender interface {
	SendSMS(to string, message string) error
}

// NotificationService composes and sends the SMS notifications the platform
// produces: bill reminders, payment confirmations and welcome messages.
type NotificationService struct {
	sms      SMSSender
	ussdCode string
}

// NewNotificationService creates a new notification service
func NewNotificationService(sms SMSSender) *NotificationService {
	ussdCode := os.Getenv("USSD_CODE")
	if ussdCode == "" {
		ussdCode = "*384*96#"
	}

	return &NotificationService{
		sms:      sms,
		ussdCode: ussdCode,
	}
}

// SendBillReminder nudges a tenant about an upcoming or overdue bill.
func (n *NotificationService) SendBillReminder(tenant *models.User, bill *models.Bill) error {
	message := fmt.Sprintf("SafeStay Reminder: Your %s %d rent of KSh %.0f is due on %s. Pay via USSD: %s",
		bill.Month, bill.Year, bill.Amount, bill.DueDate.Format("Mon Jan 02 2006"), n.ussdCode)
	return n.sms.SendSMS(tenant.PrimaryPhoneNumber, message)
}

// SendPaymentConfirmation confirms a settled payment to the tenant.
func (n *NotificationService) SendPaymentConfirmation(tenant *models.User, amount float64, bill *models.Bill) error {
	message := fmt.Sprintf("SafeStay: Payment of KSh %.0f received for %s %d. Balance: KSh %.0f. Thank you!",
		amount, bill.Month, bill.Year, bill.RemainingAmount)
	return n.sms.SendSMS(tenant.PrimaryPhoneNumber, message)
}

// NotifyLandlordOfPayment alerts the landlord that a tenant's payment landed.
func (n *NotificationService) NotifyLandlordOfPayment(landlord, tenant *models.User, amount float64, bill *models.Bill) error {
	message := fmt.Sprintf("SafeStay: Payment received from %s (%s). Amount: KSh %.0f for %s %d. Remaining: KSh %.0f",
		tenant.Name, tenant.ApartmentName, amount, bill.Month, bill.Year, bill.RemainingAmount)
	return n.sms.SendSMS(landlord.PrimaryPhoneNumber, message)
}

// SendWelcomeMessage greets a newly registered user.
func (n *NotificationService) SendWelcomeMessage(user *models.User) error {
	message := fmt.Sprintf("Welcome to SafeStay, %s! Access your account anytime via USSD: %s. For support, contact your landlord.",
		user.Name, n.ussdCode)
	return n.sms.SendSMS(user.PrimaryPhoneNumber, message)
}
