package domain

import "encoding/json"

// BalanceSummary is the advertiser's wallet state.
type BalanceSummary struct {
	Available    float64       `json:"available_balance"`
	TotalSpent   float64       `json:"total_spent"`
	Escrow       float64       `json:"pending_escrow"`
	Transactions []Transaction `json:"transactions"`
}

// UnmarshalJSON accepts both the long and short key spellings the backend
// has used for the balance fields ("available_balance" vs "available",
// "pending_escrow" vs "locked").
func (b *BalanceSummary) UnmarshalJSON(data []byte) error {
	var raw struct {
		Available    *float64      `json:"available_balance"`
		AvailableAlt *float64      `json:"available"`
		TotalSpent   float64       `json:"total_spent"`
		Escrow       *float64      `json:"pending_escrow"`
		EscrowAlt    *float64      `json:"locked"`
		Transactions []Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.TotalSpent = raw.TotalSpent
	b.Transactions = raw.Transactions
	b.Available = 0
	if raw.Available != nil {
		b.Available = *raw.Available
	} else if raw.AvailableAlt != nil {
		b.Available = *raw.AvailableAlt
	}
	b.Escrow = 0
	if raw.Escrow != nil {
		b.Escrow = *raw.Escrow
	} else if raw.EscrowAlt != nil {
		b.Escrow = *raw.EscrowAlt
	}
	return nil
}

// Transaction is one wallet movement.
type Transaction struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"` // deposit, withdrawal, debit, credit
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
	Date      string  `json:"date"`
}

// TypeLabel returns the display label for the transaction type.
func (t Transaction) TypeLabel() string {
	switch t.Type {
	case "deposit":
		return "Deposit"
	case "withdrawal":
		return "Withdrawal"
	case "debit":
		return "To Escrow"
	case "credit":
		return "Escrow Refund"
	default:
		return t.Type
	}
}
