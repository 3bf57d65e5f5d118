package domain

import "regexp"

// PaymentKind is a mobile money rail accepted for deposits.
type PaymentKind string

const (
	PayTelebirr PaymentKind = "telebirr"
	PayMpesa    PaymentKind = "mpesa"
	PayCbeBirr  PaymentKind = "cbebirr"
	PayEbirr    PaymentKind = "ebirr"
)

// AllPaymentKinds lists the deposit rails in display order.
func AllPaymentKinds() []PaymentKind {
	return []PaymentKind{PayTelebirr, PayMpesa, PayCbeBirr, PayEbirr}
}

var (
	// Ethiopian carriers, used by every rail except M-Pesa.
	ethiopianMobileRe = regexp.MustCompile(`^(09\d{8}|07\d{8}|\+251[97]\d{8})$`)
	// Kenyan Safaricom numbers for M-Pesa.
	mpesaMobileRe = regexp.MustCompile(`^(07\d{8}|01\d{8}|\+254[71]\d{8})$`)
)

// ValidMobile reports whether the mobile number matches the rail's national
// numbering plan.
func (k PaymentKind) ValidMobile(mobile string) bool {
	if k == PayMpesa {
		return mpesaMobileRe.MatchString(mobile)
	}
	return ethiopianMobileRe.MatchString(mobile)
}

// MobileHint is the placeholder example shown for the rail's number format.
func (k PaymentKind) MobileHint() string {
	if k == PayMpesa {
		return "e.g., 07xxxxxxxx or +2547xxxxxxxx"
	}
	return "e.g., 09xxxxxxxx or +2519xxxxxxxx"
}

// Instruction is the fallback payment instruction shown when the deposit
// response carries none.
func (k PaymentKind) Instruction() string {
	switch k {
	case PayTelebirr:
		return "Open your Telebirr app or check your phone for a USSD prompt to authorize your payment."
	case PayMpesa:
		return "Check your M-Pesa app or phone for a USSD prompt to confirm the payment."
	case PayCbeBirr:
		return "Open your CBE Birr app or follow the USSD prompt on your phone to complete the payment."
	case PayEbirr:
		return "Use your Coopay E-Birr app or respond to the USSD prompt to authorize your payment."
	default:
		return "Check your phone for a payment prompt."
	}
}

// Title is the display name of the rail.
func (k PaymentKind) Title() string {
	switch k {
	case PayTelebirr:
		return "Telebirr"
	case PayMpesa:
		return "M-Pesa"
	case PayCbeBirr:
		return "CBE Birr"
	case PayEbirr:
		return "E-Birr"
	default:
		return string(k)
	}
}

// MinDeposit is the smallest amount the deposit form accepts.
const MinDeposit = 1.0

// DepositReceipt is the backend's answer to a deposit request.
type DepositReceipt struct {
	Reference   string `json:"reference"`
	Instruction string `json:"instruction"`
}

// DepositStatus is one poll result for a pending deposit.
type DepositStatus struct {
	Status   string `json:"status"` // pending, success, failed
	Credited bool   `json:"credited"`
	Message  string `json:"message"`
}
