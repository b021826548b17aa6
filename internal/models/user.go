package models

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is a registered SafeStay account - either a tenant or the landlord
// of an apartment building. The USSD engine only ever reads users; they are
// created through the REST registration endpoint.
type User struct {
	gorm.Model

	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"` // bcrypt hash, never serialized

	PrimaryPhoneNumber   string `json:"primary_phone_number" gorm:"index"`
	SecondaryPhoneNumber string `json:"secondary_phone_number"`

	NationalID string `json:"national_id" gorm:"uniqueIndex"`

	Role string `json:"role"` // "Tenant" or "Landlord"

	// Shared affiliation - tenants and their landlord carry the same
	// apartment name, which is how the engine resolves "my landlord".
	ApartmentName string `json:"apartment_name" gorm:"index"`

	// Tenant-specific, both optional
	RentAmount  float64    `json:"rent_amount,omitempty"`
	DateMovedIn *time.Time `json:"date_moved_in,omitempty"`
}

// Role constants
const (
	RoleTenant   = "Tenant"
	RoleLandlord = "Landlord"
)

// BeforeCreate hashes the password and normalizes phone numbers to the
// canonical 254... form used for USSD lookups.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Password != "" && !strings.HasPrefix(u.Password, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashed)
	}

	u.PrimaryPhoneNumber = NormalizePhone(u.PrimaryPhoneNumber)
	if u.SecondaryPhoneNumber != "" {
		u.SecondaryPhoneNumber = NormalizePhone(u.SecondaryPhoneNumber)
	}

	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// NormalizePhone converts any caller-supplied phone format to the canonical
// international form: separators stripped, leading 0 replaced with the 254
// country code, 254 prefixed if absent. Idempotent.
func NormalizePhone(phone string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(phone)
	if strings.HasPrefix(cleaned, "0") {
		return "254" + cleaned[1:]
	}
	if !strings.HasPrefix(cleaned, "254") {
		return "254" + cleaned
	}
	return cleaned
}
