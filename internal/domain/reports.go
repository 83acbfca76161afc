package domain

import "time"

// MatchedPair records a bank transaction and the ledger transaction the
// engine decided denote the same real-world event. Confidence reflects the
// strength of the pass that produced the match; Notes explains which rule
// matched. Consumers must treat both transactions as read-only.
type MatchedPair struct {
	BankTransaction   Transaction `json:"bank_transaction"`
	LedgerTransaction Transaction `json:"ledger_transaction"`
	Confidence        float64     `json:"confidence"`
	Notes             string      `json:"notes"`
}

// Summary provides the aggregate view of a reconciliation run. Matched
// amounts are summed from the bank side, which is canonical: the ledger
// side is equal within the configured tolerance by construction.
type Summary struct {
	TotalMatchedAmount         float64 `json:"total_matched_amount"`
	TotalUnmatchedBankAmount   float64 `json:"total_unmatched_bank_amount"`
	TotalUnmatchedLedgerAmount float64 `json:"total_unmatched_ledger_amount"`
	MatchCount                 int     `json:"match_count"`
	DiscrepancyCount           int     `json:"discrepancy_count"`
}

// ReconciliationReport is the engine's sole output. Matches appear in
// discovery order; the unmatched lists keep the original relative order of
// their side with matched items excised. The report is constructed once per
// run and is not mutated afterwards.
type ReconciliationReport struct {
	ID              string        `json:"id,omitempty"`
	GeneratedAt     time.Time     `json:"generated_at"`
	Matches         []MatchedPair `json:"matches"`
	UnmatchedBank   []Transaction `json:"unmatched_bank"`
	UnmatchedLedger []Transaction `json:"unmatched_ledger"`
	Summary         Summary       `json:"summary"`
}
