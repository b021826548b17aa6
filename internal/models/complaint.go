package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Complaint is filed by a tenant, either from the dashboard or through the
// USSD complaint flow. The engine only ever creates complaints; status
// changes are a landlord-facing concern.
type Complaint struct {
	gorm.Model

	ComplaintID   string `json:"complaint_id" gorm:"uniqueIndex;not null"`
	TenantID      uint   `json:"tenant_id" gorm:"index;not null"`
	ApartmentName string `json:"apartment_name" gorm:"index"`

	Category    string `json:"category"`
	Description string `json:"description"`

	Status   string `json:"status" gorm:"default:'Open'"`     // Open, In Progress, Resolved
	Priority string `json:"priority" gorm:"default:'Medium'"` // Low, Medium, High
}

// Complaint status constants
const (
	ComplaintStatusOpen       = "Open"
	ComplaintStatusInProgress = "In Progress"
	ComplaintStatusResolved   = "Resolved"
)

// ComplaintCategories is the closed set of categories offered in the USSD
// complaint menu, in display order.
var ComplaintCategories = []string{
	"Maintenance Issue",
	"Noise Complaint",
	"Security Issue",
	"Billing Issue",
	"Landlord Issue",
	"Utility Problem",
	"Other",
}

// BeforeCreate assigns the public complaint identifier.
func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ComplaintID == "" {
		c.ComplaintID = uuid.NewString()
	}
	return nil
}

// Reference is the short human-readable reference quoted back to the caller:
// the first 8 hex characters of the complaint ID, upper-cased.
func (c *Complaint) Reference() string {
	id := strings.ReplaceAll(c.ComplaintID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}
