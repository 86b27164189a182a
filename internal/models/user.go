// Package models defines the data types persisted by the storefront state
// store: users, their payment card vaults, cart lines and catalog products.
package models

import (
	"strings"
	"time"
)

// Built-in administrator identity. It is synthesized at read time and never
// written to the user directory; deletion flows must reject its id.
const (
	AdminID        = "ADMIN001"
	AdminEmail     = "admin@admin.com"
	AdminAlias     = "admin"
	AdminPassword  = "12345"
	AdminFirstName = "Admin"
	AdminLastName  = "User"
)

// User is a registered account. Password and card numbers are stored in
// clear text; the export report depends on that representation. This is a
// known exposure of the storefront demo, not an oversight.
type User struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Password   string    `json:"password"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	IsAdmin    bool      `json:"isAdmin"`
	SavedCards []Card    `json:"savedCards"`
}

// Card is one payment card in a user's vault. Within a vault at most one
// card has IsDefault set; the first card ever added is the default.
type Card struct {
	ID         string    `json:"id"`
	CardName   string    `json:"cardName"`
	CardNumber string    `json:"cardNumber"`
	CardExpiry string    `json:"cardExpiry"`
	CardCVC    string    `json:"cardCVC"`
	IsDefault  bool      `json:"isDefault"`
	AddedDate  time.Time `json:"addedDate"`
}

// FullName joins first and last name for display and reports.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// DefaultCard returns the vault's default card, or nil if the vault is
// empty. Vaults built by this store always mark the first card default.
func (u User) DefaultCard() *Card {
	for i := range u.SavedCards {
		if u.SavedCards[i].IsDefault {
			return &u.SavedCards[i]
		}
	}
	return nil
}

// BuiltinAdmin synthesizes the always-present administrator account.
// CreatedAt is stamped at call time, matching the read-time construction.
func BuiltinAdmin(now time.Time) User {
	return User{
		ID:         AdminID,
		Email:      AdminEmail,
		Phone:      AdminAlias,
		FirstName:  AdminFirstName,
		LastName:   AdminLastName,
		Password:   AdminPassword,
		IsAdmin:    true,
		CreatedAt:  now,
		SavedCards: []Card{},
	}
}

// NormalizePhone strips everything but digits, so "511 511 55 55" and
// "5115115555" compare equal for uniqueness checks.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskCardNumber renders a card number as "**** **** **** 1234".
// Whitespace in the stored number is ignored.
func MaskCardNumber(number string) string {
	cleaned := strings.ReplaceAll(number, " ", "")
	if len(cleaned) < 4 {
		return cleaned
	}
	return "**** **** **** " + cleaned[len(cleaned)-4:]
}
