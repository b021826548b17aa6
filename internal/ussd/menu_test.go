package ussd

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/safestay/safestay-backend/internal/models"
)

func TestParseInput(t *testing.T) {
	require.Nil(t, ParseInput(""))
	require.Equal(t, []string{"1"}, ParseInput("1"))
	require.Equal(t, []string{"2", "1", "4000"}, ParseInput("2*1*4000"))
	require.Equal(t, []string{"1", "2"}, ParseInput("1**2"))
	require.Equal(t, []string{"1"}, ParseInput("1* *"))
}

func TestLastInput(t *testing.T) {
	require.Equal(t, "", LastInput(""))
	require.Equal(t, "1", LastInput("1"))
	require.Equal(t, "4000", LastInput("2*1*4000"))
	require.Equal(t, "leaking tap in kitchen", LastInput("3*1*leaking tap in kitchen"))
}

func TestIsValidAmount(t *testing.T) {
	require.True(t, IsValidAmount("100"))
	require.True(t, IsValidAmount("  2500.50  "))
	require.True(t, IsValidAmount("1000000"))

	require.False(t, IsValidAmount("0"))
	require.False(t, IsValidAmount("-50"))
	require.False(t, IsValidAmount("1000001"))
	require.False(t, IsValidAmount("abc"))
	require.False(t, IsValidAmount(""))
}

func TestValidatePhoneNumber(t *testing.T) {
	require.True(t, ValidatePhoneNumber("0712345678"))
	require.True(t, ValidatePhoneNumber("254712345678"))
	require.True(t, ValidatePhoneNumber("+254 712 345 678"))
	require.True(t, ValidatePhoneNumber("0110123456"))

	require.False(t, ValidatePhoneNumber("12345"))
	require.False(t, ValidatePhoneNumber("0812345678"))
	require.False(t, ValidatePhoneNumber(""))
}

func TestDaysOverdueNeverNegative(t *testing.T) {
	require.Equal(t, 0, DaysOverdue(time.Now().Add(72*time.Hour)))
	require.Equal(t, 0, DaysOverdue(time.Now().Add(time.Minute)))
	require.Equal(t, 1, DaysOverdue(time.Now().Add(-time.Hour)))
	require.Equal(t, 3, DaysOverdue(time.Now().Add(-61*time.Hour)))
}

func TestFormatAmountGroupsThousands(t *testing.T) {
	require.Equal(t, "0", FormatAmount(0))
	require.Equal(t, "999", FormatAmount(999))
	require.Equal(t, "15,000", FormatAmount(15000))
	require.Equal(t, "1,234,567", FormatAmount(1234567))
}

func TestBuildMenu(t *testing.T) {
	menu := BuildMenu("Select complaint category:", []string{"Maintenance Issue", "Other"})

	require.True(t, strings.HasPrefix(menu, ContinuePrefix))
	require.Contains(t, menu, "1. Maintenance Issue")
	require.Contains(t, menu, "2. Other")
	require.True(t, strings.HasSuffix(menu, "0. Back to Main Menu"))
}

func TestBuildEndMessage(t *testing.T) {
	msg := BuildEndMessage("No Bills", "You have no bills at the moment.")

	require.True(t, strings.HasPrefix(msg, EndPrefix))
	require.Contains(t, msg, "No Bills\n\n")
	require.True(t, strings.HasSuffix(msg, "Thank you for using SafeStay!"))
}

func TestFormatBillSummary(t *testing.T) {
	bill := &models.Bill{
		Amount:          15000,
		PaidAmount:      5000,
		RemainingAmount: 10000,
		Month:           "February",
		Year:            2025,
		Status:          models.BillStatusPartial,
		DueDate:         time.Now().Add(-48 * time.Hour),
	}

	summary := FormatBillSummary(bill)
	require.Contains(t, summary, "February 2025")
	require.Contains(t, summary, "KSh 10,000")
	require.Contains(t, summary, "overdue")

	bill.Status = models.BillStatusPaid
	require.NotContains(t, FormatBillSummary(bill), "overdue")
}

func TestTruncateText(t *testing.T) {
	require.Equal(t, "short", TruncateText("short", 10))
	require.Equal(t, "long te...", TruncateText("long text here", 10))
}
