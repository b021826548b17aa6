package ussd

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/safestay/safestay-backend/internal/models"
	"github.com/safestay/safestay-backend/internal/storage"
)

// Dialog steps. The router dispatches strictly on the session's current
// step; anything unknown resets to the main menu.
const (
	StepMainMenu           = "main_menu"
	StepAwaitingMainChoice = "awaiting_main_choice"
	StepViewBills          = "view_bills"
	StepBillsDisplayed     = "bills_displayed"
	StepMakePayment        = "make_payment"
	StepSelectBill         = "select_bill"
	StepEnterAmount        = "enter_amount"
	StepConfirmPayment     = "confirm_payment"
	StepFileComplaint      = "file_complaint"
	StepSelectCategory     = "select_complaint_category"
	StepEnterDescription   = "enter_complaint_description"
	StepViewProfile        = "view_profile"
	StepContactLandlord    = "contact_landlord"
	StepHelpMenu           = "help_menu"
)

// Payment wizard sub-steps carried in session scratch data.
const (
	PaymentStepSelectBill  = "select_bill"
	PaymentStepEnterAmount = "enter_amount"
	PaymentStepConfirm     = "confirm_payment"
)

// Complaint wizard sub-steps carried in session scratch data.
const (
	ComplaintStepSelectCategory   = "select_category"
	ComplaintStepEnterDescription = "enter_description"
)

// Notifier sends best-effort SMS notifications. Failures are logged, never
// surfaced to the caller.
type Notifier interface {
	SendSMS(phone, message string) error
}

// PaymentGateway initiates a mobile-money charge against the caller's phone
// and returns the provider's transaction reference.
type PaymentGateway interface {
	MobileCheckout(phone string, amount float64, reference string) (string, error)
}

// Callback is one inbound gateway turn.
type Callback struct {
	SessionID   string
	ServiceCode string
	PhoneNumber string
	Text        string
}

// Engine drives the USSD dialog. It is stateless between turns; everything
// a turn needs lives in the persisted session record.
type Engine struct {
	store    storage.Store
	notifier Notifier
	payments PaymentGateway
}

// NewEngine creates a USSD dialog engine.
func NewEngine(store storage.Store, notifier Notifier, payments PaymentGateway) *Engine {
	return &Engine{
		store:    store,
		notifier: notifier,
		payments: payments,
	}
}

type turnResult struct {
	response string
	end      bool
}

type handlerFunc func(e *Engine, user *models.User, session *models.UssdSession, input string) (turnResult, error)

// stepHandlers is the dispatch table: current step -> handler. Several steps
// share a handler because the wizard position inside a flow is gated by the
// session's scratch data, not the top-level step alone.
var stepHandlers = map[string]handlerFunc{
	StepMainMenu:           (*Engine).handleMainMenu,
	StepAwaitingMainChoice: (*Engine).handleMainMenuChoice,
	StepViewBills:          (*Engine).handleBillsMenu,
	StepBillsDisplayed:     (*Engine).handleBillsMenu,
	StepMakePayment:        (*Engine).handlePaymentFlow,
	StepSelectBill:         (*Engine).handlePaymentFlow,
	StepEnterAmount:        (*Engine).handlePaymentFlow,
	StepConfirmPayment:     (*Engine).handlePaymentFlow,
	StepFileComplaint:      (*Engine).handleComplaintFlow,
	StepSelectCategory:     (*Engine).handleComplaintFlow,
	StepEnterDescription:   (*Engine).handleComplaintFlow,
	StepViewProfile:        (*Engine).handleViewProfile,
	StepContactLandlord:    (*Engine).handleContactLandlord,
	StepHelpMenu:           (*Engine).handleHelpMenu,
}

// Handle processes one gateway turn and returns the text/plain response
// body. It never fails: every internal fault becomes a terminal message.
func (e *Engine) Handle(cb Callback) (response string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("USSD panic for session %s: %v", cb.SessionID, r)
			response = EndPrefix + "Sorry, there was a technical error. Please try again later or contact support."
		}
	}()

	normalized := models.NormalizePhone(cb.PhoneNumber)

	session, err := e.store.GetSession(cb.SessionID)
	if err != nil {
		session = &models.UssdSession{
			SessionID:   cb.SessionID,
			PhoneNumber: normalized,
			CurrentStep: StepMainMenu,
			IsActive:    true,
		}
	}

	// Re-check the directory every turn until the caller resolves; the
	// lookup is by phone, not by session.
	user, _ := e.store.GetUserByPhone(normalized, cb.PhoneNumber)
	if user != nil {
		session.UserID = user.ID
	}

	var result turnResult
	switch {
	case user == nil:
		result = turnResult{
			response: BuildEndMessage("Access Denied",
				"Your phone number is not registered with SafeStay.\n\nPlease contact your landlord to register your number.\n\nFor support: info@safestay.com"),
			end: true,
		}
	case cb.Text == "":
		// First turn: render the menu without advancing.
		session.CurrentStep = StepMainMenu
		result = turnResult{response: e.showMainMenu(user)}
	default:
		result = e.route(user, session, LastInput(cb.Text))
	}

	if result.end {
		session.IsActive = false
	}
	if err := e.store.SaveSession(session); err != nil {
		log.Printf("Failed to save USSD session %s: %v", cb.SessionID, err)
	}

	return result.response
}

// route dispatches the turn to the handler for the session's current step.
func (e *Engine) route(user *models.User, session *models.UssdSession, input string) turnResult {
	handler, ok := stepHandlers[session.CurrentStep]
	if !ok {
		session.CurrentStep = StepMainMenu
		handler = stepHandlers[StepMainMenu]
	}

	result, err := handler(e, user, session, input)
	if err != nil {
		log.Printf("USSD route error for session %s at %s: %v", session.SessionID, session.CurrentStep, err)
		return turnResult{response: EndPrefix + "An error occurred. Please try again later.", end: true}
	}
	return result
}

// backToMainMenu resets the dialog and re-renders the main menu.
func (e *Engine) backToMainMenu(user *models.User, session *models.UssdSession) turnResult {
	session.CurrentStep = StepMainMenu
	session.Data = models.SessionData{}
	return turnResult{response: e.showMainMenu(user)}
}

// showMainMenu renders the greeting, the outstanding-bills warning and the
// six menu options.
func (e *Engine) showMainMenu(user *models.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%sWelcome to SafeStay, %s!\n", ContinuePrefix, user.Name)

	stats, err := e.store.GetBillStats(user.ID)
	if err != nil {
		log.Printf("Main menu stats error for user %d: %v", user.ID, err)
		return ContinuePrefix + "Welcome to SafeStay!\n\n1. View Bills\n2. Make Payment\n3. File Complaint\n4. View Profile\n5. Contact Landlord\n6. Help\n0. Exit"
	}

	if stats.PendingBills > 0 {
		fmt.Fprintf(&b, "⚠ You have %d pending bill(s)\n", stats.PendingBills)
		fmt.Fprintf(&b, "💰 Total owed: KES %s\n", FormatAmount(stats.TotalOwed))
	} else {
		b.WriteString("✓ All bills are up to date!\n")
	}

	b.WriteString("\n1. View Bills\n2. Make Payment\n3. File Complaint\n4. View Profile\n5. Contact Landlord\n6. Help\n0. Exit")
	return b.String()
}

func (e *Engine) handleMainMenu(user *models.User, session *models.UssdSession, input string) (turnResult, error) {
	if input != "" {
		session.CurrentStep = StepAwaitingMainChoice
		return e.handleMainMenuChoice(user, session, input)
	}
	return turnResult{response: e.showMainMenu(user)}, nil
}

func (e *Engine) handleMainMenuChoice(user *models.User, session *models.UssdSession, choice string) (turnResult, error) {
	switch choice {
	case "1":
		session.CurrentStep = StepViewBills
		return e.handleBillsMenu(user, session, "")
	case "2":
		session.CurrentStep = StepMakePayment
		return e.handlePaymentFlow(user, session, "")
	case "3":
		session.CurrentStep = StepFileComplaint
		return e.handleComplaintFlow(user, session, "")
	case "4":
		return turnResult{response: e.viewProfile(user), end: true}, nil
	case "5":
		return turnResult{response: e.contactLandlord(user), end: true}, nil
	case "6":
		session.CurrentStep = StepHelpMenu
		return e.handleHelpMenu(user, session, "")
	case "0":
		return turnResult{response: EndPrefix + "Thank you for using SafeStay. Have a great day!", end: true}, nil
	default:
		// No re-prompt on a bad choice; USSD turns are single-shot.
		return turnResult{response: EndPrefix + "Invalid option. Please dial again and select a valid option.", end: true}, nil
	}
}

func (e *Engine) handleBillsMenu(user *models.User, session *models.UssdSession, input string) (turnResult, error) {
	if input == "0" {
		return e.backToMainMenu(user, session), nil
	}

	bills, err := e.store.GetRecentBills(user.ID, 5)
	if err != nil {
		log.Printf("Error fetching bills for user %d: %v", user.ID, err)
		return turnResult{response: EndPrefix + "Error fetching bills. Please try again later.", end: true}, nil
	}

	if len(bills) == 0 {
		return turnResult{
			response: BuildEndMessage("No Bills", "You have no bills at the moment."),
			end:      true,
		}, nil
	}

	var b strings.Builder
	b.WriteString(ContinuePrefix + "Your Recent Bills:\n\n")
	for i, bill := range bills {
		fmt.Fprintf(&b, "%d. %s\n", i+1, FormatBillSummary(bill))
		if bill.Status != models.BillStatusPaid {
			fmt.Fprintf(&b, "   Due: %s\n", FormatDate(bill.DueDate))
		}
		b.WriteString("\n")
	}
	b.WriteString("0. Back to Main Menu")

	session.CurrentStep = StepBillsDisplayed
	return turnResult{response: b.String()}, nil
}

func (e *Engine) handlePaymentFlow(user *models.User, session *models.UssdSession, input string) (turnResult, error) {
	if input == "0" {
		return e.backToMainMenu(user, session), nil
	}

	switch session.Data.PaymentStep {
	case "":
		return e.startPaymentFlow(user, session)
	case PaymentStepSelectBill:
		return e.selectPaymentBill(session, input)
	case PaymentStepEnterAmount:
		return e.enterPaymentAmount(session, input)
	case PaymentStepConfirm:
		return e.confirmPayment(user, session, input)
	default:
		return e.startPaymentFlow(user, session)
	}
}

// startPaymentFlow lists the caller's unsettled bills, soonest due first.
func (e *Engine) startPaymentFlow(user *models.User, session *models.UssdSession) (turnResult, error) {
	pending, err := e.store.GetPendingBills(user.ID)
	if err != nil {
		log.Printf("Error fetching pending bills for user %d: %v", user.ID, err)
		return turnResult{response: EndPrefix + "Error processing payment. Please try again later.", end: true}, nil
	}

	if len(pending) == 0 {
		return turnResult{
			response: BuildEndMessage("No Pending Bills", "You have no pending bills to pay."),
			end:      true,
		}, nil
	}

	var b strings.Builder
	b.WriteString(ContinuePrefix + "Select bill to pay:\n\n")

	ids := make([]uint, 0, len(pending))
	for i, bill := range pending {
		ids = append(ids, bill.ID)
		fmt.Fprintf(&b, "%d. %s %d\n", i+1, bill.Month, bill.Year)
		fmt.Fprintf(&b, "   %s\n", FormatCurrency(bill.Outstanding()))
		if days := DaysOverdue(bill.DueDate); days > 0 {
			fmt.Fprintf(&b, "   (%d days overdue)\n", days)
		}
		b.WriteString("\n")
	}
	b.WriteString("0. Back to Main Menu")

	session.Data.PendingBillIDs = ids
	session.Data.PaymentStep = PaymentStepSelectBill
	session.CurrentStep = StepSelectBill
	return turnResult{response: b.String()}, nil
}

func (e *Engine) selectPaymentBill(session *models.UssdSession, input string) (turnResult, error) {
	index, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || index < 1 || index > len(session.Data.PendingBillIDs) {
		return turnResult{response: EndPrefix + "Invalid selection. Please try again.", end: true}, nil
	}

	billID := session.Data.PendingBillIDs[index-1]
	bill, err := e.store.GetBill(billID)
	if err != nil {
		// The candidate list went stale between turns.
		return turnResult{response: EndPrefix + "Invalid selection. Please try again.", end: true}, nil
	}

	session.Data.SelectedBillID = billID
	session.Data.PaymentStep = PaymentStepEnterAmount
	session.CurrentStep = StepEnterAmount

	outstanding := bill.Outstanding()
	response := fmt.Sprintf("%sPayment for %s %d\nOutstanding: %s\n\nEnter amount to pay:\n(Min: %d, Max: %s)",
		ContinuePrefix, bill.Month, bill.Year, FormatCurrency(outstanding),
		MinPaymentAmount, FormatAmount(outstanding))
	return turnResult{response: response}, nil
}

func (e *Engine) enterPaymentAmount(session *models.UssdSession, input string) (turnResult, error) {
	bill, err := e.store.GetBill(session.Data.SelectedBillID)
	if err != nil {
		return turnResult{response: EndPrefix + "Invalid selection. Please try again.", end: true}, nil
	}

	amount, parseErr := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if !IsValidAmount(input) || parseErr != nil || amount < MinPaymentAmount {
		return turnResult{response: EndPrefix + "Invalid amount. Minimum payment is KSh 100.", end: true}, nil
	}

	outstanding := bill.Outstanding()
	if amount > outstanding {
		return turnResult{response: EndPrefix + "Amount exceeds outstanding balance.", end: true}, nil
	}

	session.Data.PaymentAmount = amount
	session.Data.PaymentStep = PaymentStepConfirm
	session.CurrentStep = StepConfirmPayment

	response := fmt.Sprintf("%sConfirm Payment:\n\nBill: %s %d\nAmount: %s\nNew Balance: %s\n\n1. Confirm\n2. Cancel",
		ContinuePrefix, bill.Month, bill.Year,
		FormatCurrency(amount), FormatCurrency(outstanding-amount))
	return turnResult{response: response}, nil
}

func (e *Engine) confirmPayment(user *models.User, session *models.UssdSession, input string) (turnResult, error) {
	switch input {
	case "1":
		return e.initiatePayment(user, session)
	case "2":
		return e.backToMainMenu(user, session), nil
	default:
		return turnResult{response: EndPrefix + "Invalid option. Payment cancelled.", end: true}, nil
	}
}

// initiatePayment asks the gateway to push a mobile-money charge to the
// caller. The engine never settles the bill itself; that happens when the
// provider's payment notification arrives.
func (e *Engine) initiatePayment(user *models.User, session *models.UssdSession) (turnResult, error) {
	bill, err := e.store.GetBill(session.Data.SelectedBillID)
	if err != nil {
		return turnResult{response: EndPrefix + "Invalid selection. Please try again.", end: true}, nil
	}

	initiated := BuildEndMessage("Payment Initiated",
		fmt.Sprintf("Payment of %s for %s %d has been initiated.\n\nYou will receive an M-Pesa prompt shortly. Please enter your PIN to complete the payment.",
			FormatCurrency(session.Data.PaymentAmount), bill.Month, bill.Year))

	// A replayed confirm within the same session must not charge twice.
	if session.Data.PaymentInitiated {
		return turnResult{response: initiated, end: true}, nil
	}

	request, err := e.store.CreatePaymentRequest(&models.PaymentRequest{
		BillID:      bill.ID,
		PhoneNumber: user.PrimaryPhoneNumber,
		Amount:      session.Data.PaymentAmount,
	})
	if err != nil {
		log.Printf("Failed to record payment request for bill %d: %v", bill.ID, err)
		return turnResult{response: EndPrefix + "Payment initiation failed. Please try again later.", end: true}, nil
	}

	transactionID, err := e.payments.MobileCheckout(user.PrimaryPhoneNumber, session.Data.PaymentAmount, request.RequestID)
	if err != nil {
		log.Printf("Mobile checkout failed for bill %d: %v", bill.ID, err)
		request.Status = models.PaymentRequestFailed
		if updateErr := e.store.UpdatePaymentRequest(request); updateErr != nil {
			log.Printf("Failed to mark payment request %s failed: %v", request.RequestID, updateErr)
		}
		return turnResult{response: EndPrefix + "Payment initiation failed. Please try again later.", end: true}, nil
	}

	request.TransactionID = transactionID
	if err := e.store.UpdatePaymentRequest(request); err != nil {
		log.Printf("Failed to store transaction ID for request %s: %v", request.RequestID, err)
	}

	session.Data.PaymentInitiated = true
	return turnResult{response: initiated, end: true}, nil
}

func (e *Engine) handleComplaintFlow(user *models.User, session *models.UssdSession, input string) (turnResult, error) {
	if input == "0" {
		return e.backToMainMenu(user, session), nil
	}

	switch session.Data.ComplaintStep {
	case "":
		session.Data.ComplaintStep = ComplaintStepSelectCategory
		session.CurrentStep = StepSelectCategory
		return turnResult{response: BuildMenu("Select complaint category:", models.ComplaintCategories)}, nil

	case ComplaintStepSelectCategory:
		index, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || index < 1 || index > len(models.ComplaintCategories) {
			return turnResult{response: EndPrefix + "Invalid category selection.", end: true}, nil
		}
		category := models.ComplaintCategories[index-1]
		session.Data.ComplaintCategory = category
		session.Data.ComplaintStep = ComplaintStepEnterDescription
		session.CurrentStep = StepEnterDescription

		response := fmt.Sprintf("%sEnter complaint description for %s:\n\n(Keep it brief but detailed)\n\nDescription:",
			ContinuePrefix, category)
		return turnResult{response: response}, nil

	case ComplaintStepEnterDescription:
		return e.fileComplaint(user, session, input)

	default:
		session.Data.ComplaintStep = ""
		return e.handleComplaintFlow(user, session, "")
	}
}

func (e *Engine) fileComplaint(user *models.User, session *models.UssdSession, input string) (turnResult, error) {
	description := strings.TrimSpace(input)

	// Bounds are in characters, not bytes
	length := utf8.RuneCountInString(description)
	if length < 10 {
		return turnResult{response: EndPrefix + "Description too short. Please provide more details (minimum 10 characters).", end: true}, nil
	}
	if length > 500 {
		return turnResult{response: EndPrefix + "Description too long. Please keep it under 500 characters.", end: true}, nil
	}

	complaint, err := e.store.CreateComplaint(&models.Complaint{
		TenantID:      user.ID,
		ApartmentName: user.ApartmentName,
		Category:      session.Data.ComplaintCategory,
		Description:   description,
		Status:        models.ComplaintStatusOpen,
		Priority:      "Medium",
	})
	if err != nil {
		log.Printf("Error filing complaint for user %d: %v", user.ID, err)
		return turnResult{response: EndPrefix + "Error filing complaint. Please try again later.", end: true}, nil
	}

	// Notifications are best-effort; the complaint is already saved and the
	// response already decided.
	go e.notifyComplaint(user, complaint)

	response := BuildEndMessage("Complaint Filed Successfully",
		fmt.Sprintf("Category: %s\n\nYour complaint has been forwarded to your landlord.\n\nReference: %s\n\nYou will be contacted soon.",
			complaint.Category, complaint.Reference()))
	return turnResult{response: response, end: true}, nil
}

// notifyComplaint sends the acknowledgment SMS to the tenant and alerts the
// landlord for the tenant's building. Failures are logged only.
func (e *Engine) notifyComplaint(user *models.User, complaint *models.Complaint) {
	if e.notifier == nil {
		return
	}

	ack := fmt.Sprintf("SafeStay: Your complaint (%s) has been received and forwarded to your landlord. Reference: %s",
		complaint.Category, complaint.Reference())
	if err := e.notifier.SendSMS(user.PrimaryPhoneNumber, ack); err != nil {
		log.Printf("Failed to send complaint acknowledgment to %s: %v", user.PrimaryPhoneNumber, err)
	}

	landlord, err := e.store.GetLandlordByApartment(user.ApartmentName)
	if err != nil {
		log.Printf("No landlord found for apartment %q: %v", user.ApartmentName, err)
		return
	}

	alert := fmt.Sprintf("SafeStay: New complaint from %s (%s). Category: %s. Check your dashboard for details.",
		user.Name, user.ApartmentName, complaint.Category)
	if err := e.notifier.SendSMS(landlord.PrimaryPhoneNumber, alert); err != nil {
		log.Printf("Failed to notify landlord %s of complaint: %v", landlord.PrimaryPhoneNumber, err)
	}
}

func (e *Engine) handleViewProfile(user *models.User, session *models.UssdSession, input string) (turnResult, error) {
	return turnResult{response: e.viewProfile(user), end: true}, nil
}

// viewProfile renders the caller's account and bill summary as one terminal
// message.
func (e *Engine) viewProfile(user *models.User) string {
	stats, err := e.store.GetBillStats(user.ID)
	if err != nil {
		log.Printf("Error fetching profile stats for user %d: %v", user.ID, err)
		return EndPrefix + "Error fetching profile. Please try again later."
	}

	lines := []string{
		"Name: " + user.Name,
		"Apartment: " + user.ApartmentName,
		"Phone: " + user.PrimaryPhoneNumber,
		"Role: " + user.Role,
	}
	if user.DateMovedIn != nil {
		lines = append(lines, "Move-in Date: "+FormatDate(*user.DateMovedIn))
	}
	lines = append(lines,
		"",
		"Bill Summary:",
		fmt.Sprintf("Total Bills: %d", stats.TotalBills),
		fmt.Sprintf("Paid Bills: %d", stats.PaidBills),
		"Outstanding: "+FormatCurrency(stats.TotalOwed),
	)
	if user.RentAmount > 0 {
		lines = append(lines, "Monthly Rent: "+FormatCurrency(user.RentAmount))
	}

	return BuildEndMessage("Your Profile", strings.Join(lines, "\n"))
}

func (e *Engine) handleContactLandlord(user *models.User, session *models.UssdSession, input string) (turnResult, error) {
	return turnResult{response: e.contactLandlord(user), end: true}, nil
}

// contactLandlord renders the landlord's contact card, degrading to the
// generic support contact when no landlord record exists.
func (e *Engine) contactLandlord(user *models.User) string {
	landlord, err := e.store.GetLandlordByApartment(user.ApartmentName)
	if err != nil {
		return BuildEndMessage("Contact Information",
			"Landlord contact information not available.\n\nPlease contact SafeStay support:\nEmail: support@safestay.com\nPhone: +254-XXX-XXXXXX")
	}

	lines := []string{
		"Landlord Details:",
		"",
		"Name: " + landlord.Name,
		"Phone: " + landlord.PrimaryPhoneNumber,
	}
	if landlord.SecondaryPhoneNumber != "" {
		lines = append(lines, "Alt Phone: "+landlord.SecondaryPhoneNumber)
	}
	lines = append(lines,
		"Email: "+landlord.Email,
		"",
		"Please contact your landlord directly for urgent matters.",
	)

	return BuildEndMessage("Landlord Contact", strings.Join(lines, "\n"))
}

func (e *Engine) handleHelpMenu(user *models.User, session *models.UssdSession, input string) (turnResult, error) {
	if input == "0" {
		return e.backToMainMenu(user, session), nil
	}

	if input == "" {
		options := []string{
			"How to Pay Bills",
			"Filing Complaints",
			"Understanding Your Rights",
			"Contact Support",
		}
		return turnResult{response: BuildMenu("Help & Support", options)}, nil
	}

	switch input {
	case "1":
		return turnResult{response: BuildEndMessage("How to Pay Bills",
			"1. Select \"Make Payment\" from main menu\n2. Choose the bill to pay\n3. Enter payment amount\n4. Confirm payment\n5. Complete M-Pesa transaction\n\nYou can make partial payments. Your landlord will be notified automatically."), end: true}, nil
	case "2":
		return turnResult{response: BuildEndMessage("Filing Complaints",
			"1. Select \"File Complaint\" from main menu\n2. Choose complaint category\n3. Provide detailed description\n4. Submit complaint\n\nYour landlord will be notified immediately. You will receive a reference number for tracking."), end: true}, nil
	case "3":
		return turnResult{response: BuildEndMessage("Your Tenant Rights",
			"• Right to peaceful enjoyment\n• 2-month notice before eviction\n• Safe and habitable living conditions\n• Privacy rights\n• Right to proper receipts\n\nFor legal advice, contact a tenant rights organization."), end: true}, nil
	case "4":
		return turnResult{response: BuildEndMessage("Contact Support",
			"SafeStay Support:\n\nEmail: support@safestay.com\nPhone: +254-XXX-XXXXXX\nHours: Mon-Fri 8AM-6PM\n\nFor emergencies, contact your landlord directly."), end: true}, nil
	default:
		return turnResult{response: EndPrefix + "Invalid option. Please try again.", end: true}, nil
	}
}
