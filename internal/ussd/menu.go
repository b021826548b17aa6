package ussd

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/safestay/safestay-backend/internal/models"
)

// Response markers inspected by the gateway. Everything after "CON " is
// re-prompted to the caller; "END " closes the session. The four-character
// prefix is load-bearing for the gateway contract.
const (
	ContinuePrefix = "CON "
	EndPrefix      = "END "
)

// MaxPaymentAmount caps any single mobile-money payment (KES).
const MaxPaymentAmount = 1000000

// MinPaymentAmount is the smallest accepted mobile-money payment (KES).
const MinPaymentAmount = 100

var currencyPrinter = message.NewPrinter(language.English)

// kenyanPhonePattern accepts local-format Kenyan mobile numbers (Safaricom
// and Airtel prefixes), with or without the country code.
var kenyanPhonePattern = regexp.MustCompile(`^(254|0)?[17]\d{8}$`)

// FormatAmount renders an amount with locale-style digit grouping and no
// decimals: 1234567 -> "1,234,567".
func FormatAmount(amount float64) string {
	return currencyPrinter.Sprintf("%.0f", amount)
}

// FormatCurrency renders an amount with the KSh prefix: "KSh 1,234".
func FormatCurrency(amount float64) string {
	return "KSh " + FormatAmount(amount)
}

// FormatDate renders a date as day/short-month/year: "05 Mar 2025".
func FormatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// TruncateText shortens text to maxLength runes, ellipsized.
func TruncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength-3] + "..."
}

// ValidatePhoneNumber reports whether the number looks like a Kenyan mobile
// number. Used defensively; the user directory lookup is the real gate.
func ValidatePhoneNumber(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(phone)
	return kenyanPhonePattern.MatchString(cleaned)
}

// IsValidAmount reports whether the input parses as a positive amount within
// the payment cap. Minimum-amount and balance checks happen in the flow.
func IsValidAmount(input string) bool {
	amount, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return false
	}
	return amount > 0 && amount <= MaxPaymentAmount
}

// DaysOverdue returns how many whole or partial days a due date is past,
// never negative.
func DaysOverdue(dueDate time.Time) int {
	diff := time.Since(dueDate)
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// ParseInput splits the gateway's accumulated input history on '*', dropping
// empty segments. The gateway resends the full history every turn.
func ParseInput(text string) []string {
	if text == "" {
		return nil
	}
	var inputs []string
	for _, part := range strings.Split(text, "*") {
		if strings.TrimSpace(part) != "" {
			inputs = append(inputs, part)
		}
	}
	return inputs
}

// LastInput extracts the newest token from the accumulated input history,
// or "" when there is none.
func LastInput(text string) string {
	inputs := ParseInput(text)
	if len(inputs) == 0 {
		return ""
	}
	return inputs[len(inputs)-1]
}

// BuildMenu renders a continue-tagged numbered menu with a back option.
func BuildMenu(title string, options []string) string {
	var b strings.Builder
	b.WriteString(ContinuePrefix)
	b.WriteString(title)
	b.WriteString("\n\n")

	for i, option := range options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, option)
	}

	b.WriteString("\n0. Back to Main Menu")
	return b.String()
}

// BuildEndMessage renders a terminal response with the standard sign-off.
func BuildEndMessage(title, content string) string {
	return fmt.Sprintf("%s%s\n\n%s\n\nThank you for using SafeStay!", EndPrefix, title, content)
}

// StatusIcon maps a bill status to its single-glyph marker.
func StatusIcon(status string) string {
	switch status {
	case models.BillStatusPaid:
		return "✓"
	case models.BillStatusPartial:
		return "⚠"
	case models.BillStatusPending:
		return "⏳"
	default:
		return "•"
	}
}

// FormatBillSummary renders the one-line bill summary used in the bills
// list: status glyph, period, amount, optional overdue annotation.
func FormatBillSummary(bill *models.Bill) string {
	summary := fmt.Sprintf("%s %s %d - %s",
		StatusIcon(bill.Status), bill.Month, bill.Year, FormatCurrency(bill.Outstanding()))

	if days := DaysOverdue(bill.DueDate); days > 0 && bill.Status != models.BillStatusPaid {
		summary += fmt.Sprintf(" (%dd overdue)", days)
	}
	return summary
}
