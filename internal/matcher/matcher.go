package matcher

import (
	"fmt"
	"math"
	"time"

	"bank-reconciliation/internal/domain"
)

// Engine matches bank transactions against ledger transactions in three
// sequential passes of decreasing strictness: exact date, fuzzy date, then
// description similarity. A transaction claimed by an earlier pass is
// removed from the candidate pools and never reconsidered, so a record can
// appear in at most one matched pair.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given matching policy.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Reconcile decides which bank and ledger records denote the same event
// and returns the report. It is a pure function: no I/O, no shared state,
// deterministic for a given input order, and safe to call concurrently
// from multiple goroutines. Empty inputs are valid and produce a report
// with zero matches.
//
// Within each pass the bank pool is walked last-to-first and, for each
// bank transaction, the first eligible ledger candidate in pool order is
// claimed. That ordering is load-bearing: it determines which pairing wins
// when several candidates are eligible.
func (e *Engine) Reconcile(bank, ledger []domain.Transaction) *domain.ReconciliationReport {
	remainingBank := make([]domain.Transaction, len(bank))
	copy(remainingBank, bank)
	remainingLedger := make([]domain.Transaction, len(ledger))
	copy(remainingLedger, ledger)

	matches := make([]domain.MatchedPair, 0, len(bank))

	remainingBank, remainingLedger = e.runPass(remainingBank, remainingLedger, &matches,
		e.exactRule, e.cfg.ConfidenceExact,
		"Exact match on Date, Amount, and Type")

	remainingBank, remainingLedger = e.runPass(remainingBank, remainingLedger, &matches,
		e.fuzzyDateRule, e.cfg.ConfidenceFuzzyDate,
		fmt.Sprintf("Match on Amount/Type within %d days", e.cfg.FuzzyDateToleranceDays))

	remainingBank, remainingLedger = e.runPass(remainingBank, remainingLedger, &matches,
		e.descriptionRule, e.cfg.ConfidenceDescription,
		"Match on Amount and similar Description")

	return buildReport(matches, remainingBank, remainingLedger)
}

// runPass claims greedy first-found pairs: no backtracking, immediate
// removal from both pools. Walking the bank pool in reverse keeps the
// remaining indices valid after each excision.
func (e *Engine) runPass(
	bank, ledger []domain.Transaction,
	matches *[]domain.MatchedPair,
	rule func(bankTx, ledgerTx domain.Transaction) bool,
	confidence float64,
	notes string,
) ([]domain.Transaction, []domain.Transaction) {
	for i := len(bank) - 1; i >= 0; i-- {
		for j := 0; j < len(ledger); j++ {
			if !rule(bank[i], ledger[j]) {
				continue
			}
			*matches = append(*matches, domain.MatchedPair{
				BankTransaction:   bank[i],
				LedgerTransaction: ledger[j],
				Confidence:        confidence,
				Notes:             notes,
			})
			bank = append(bank[:i], bank[i+1:]...)
			ledger = append(ledger[:j], ledger[j+1:]...)
			break
		}
	}
	return bank, ledger
}

func (e *Engine) exactRule(bankTx, ledgerTx domain.Transaction) bool {
	return e.amountsMatch(bankTx, ledgerTx) &&
		bankTx.Type == ledgerTx.Type &&
		daysApart(bankTx.Date, ledgerTx.Date) <= e.cfg.ExactDateToleranceDays
}

func (e *Engine) fuzzyDateRule(bankTx, ledgerTx domain.Transaction) bool {
	return e.amountsMatch(bankTx, ledgerTx) &&
		bankTx.Type == ledgerTx.Type &&
		daysApart(bankTx.Date, ledgerTx.Date) <= e.cfg.FuzzyDateToleranceDays
}

// descriptionRule has no date constraint at all.
func (e *Engine) descriptionRule(bankTx, ledgerTx domain.Transaction) bool {
	if !e.amountsMatch(bankTx, ledgerTx) || bankTx.Type != ledgerTx.Type {
		return false
	}
	return descriptionsSimilar(bankTx.Description, ledgerTx.Description, e.cfg.MinDescriptionLength)
}

func (e *Engine) amountsMatch(bankTx, ledgerTx domain.Transaction) bool {
	return math.Abs(ledgerTx.Amount-bankTx.Amount) < e.cfg.AmountTolerance
}

// daysApart returns the absolute difference between two calendar dates in
// whole days, ignoring any time-of-day component. No time-zone
// normalization is applied: each date is taken as given.
func daysApart(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	diff := ad.Sub(bd)
	if diff < 0 {
		diff = -diff
	}
	return int(diff / (24 * time.Hour))
}

func buildReport(matches []domain.MatchedPair, unmatchedBank, unmatchedLedger []domain.Transaction) *domain.ReconciliationReport {
	summary := domain.Summary{
		MatchCount:       len(matches),
		DiscrepancyCount: len(unmatchedBank) + len(unmatchedLedger),
	}
	for _, m := range matches {
		summary.TotalMatchedAmount += m.BankTransaction.Amount
	}
	for _, tx := range unmatchedBank {
		summary.TotalUnmatchedBankAmount += tx.Amount
	}
	for _, tx := range unmatchedLedger {
		summary.TotalUnmatchedLedgerAmount += tx.Amount
	}

	return &domain.ReconciliationReport{
		Matches:         matches,
		UnmatchedBank:   unmatchedBank,
		UnmatchedLedger: unmatchedLedger,
		Summary:         summary,
	}
}
