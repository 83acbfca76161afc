package domain

import "time"

// TransactionType defines the direction of money flow (DEBIT or CREDIT).
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "DEBIT"
	TransactionTypeCredit TransactionType = "CREDIT"
)

// Valid reports whether t is one of the two recognized type literals.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeDebit || t == TransactionTypeCredit
}

// TransactionSource identifies which side of the reconciliation a
// transaction came from. It is fixed at ingestion and never mutated.
type TransactionSource string

const (
	SourceBank   TransactionSource = "BANK"
	SourceLedger TransactionSource = "LEDGER"
)

// Transaction represents one financial event from either a bank statement
// or the internal ledger. Amount is a non-negative magnitude; the direction
// of money flow is carried by Type, not by the sign of Amount.
type Transaction struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description"`
	Amount      float64           `json:"amount"`
	Reference   string            `json:"reference,omitempty"`
	Type        TransactionType   `json:"type"`
	Source      TransactionSource `json:"source"`
}
