package domain

import "regexp"

var (
	// AccountNumberRe accepts bank account numbers of 6 to 20 digits.
	AccountNumberRe = regexp.MustCompile(`^\d{6,20}$`)
	// PayoutPhoneRe accepts Ethiopian mobile numbers for payout wallets.
	PayoutPhoneRe = regexp.MustCompile(`^(\+251|0)?(9|7)\d{8}$`)
)

// MinWithdrawal is the smallest amount a creator may withdraw.
const MinWithdrawal = 100.0

// PaymentMethod is a saved payout destination.
type PaymentMethod struct {
	ID            string `json:"id"`
	Category      string `json:"category"` // bank or wallet
	ShortName     string `json:"short_name"`
	AccountNumber string `json:"account_number"`
	PhoneNumber   string `json:"phone_number"`
	Status        string `json:"status"` // pending, verified, rejected
	IsDefault     bool   `json:"is_default"`
}

// Verified reports whether the method passed review and can receive payouts.
func (m PaymentMethod) Verified() bool { return m.Status == "verified" }

// PaymentMethodChoice is one selectable provider from the backend catalog.
type PaymentMethodChoice struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	ShortName string `json:"short_name"`
}
