package gateway

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"bank-reconciliation/internal/domain"
)

const (
	sectionMatched         = "MATCHED"
	sectionUnmatchedBank   = "UNMATCHED_BANK"
	sectionUnmatchedLedger = "UNMATCHED_LEDGER"
)

// CSVReportWriter renders a ReconciliationReport as CSV rows for download
// or spreadsheet import. It reads the report and never mutates it.
type CSVReportWriter struct{}

// NewCSVReportWriter creates a new writer instance.
func NewCSVReportWriter() *CSVReportWriter {
	return &CSVReportWriter{}
}

// Write renders the report to out: matched pairs first, in report order,
// then unmatched bank rows, then unmatched ledger rows.
func (w *CSVReportWriter) Write(out io.Writer, report *domain.ReconciliationReport) error {
	cw := csv.NewWriter(out)

	header := []string{
		"section",
		"bank_id", "bank_date", "bank_description", "bank_amount",
		"ledger_id", "ledger_date", "ledger_description", "ledger_amount",
		"type", "confidence", "notes",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, m := range report.Matches {
		row := []string{
			sectionMatched,
			m.BankTransaction.ID,
			m.BankTransaction.Date.Format("2006-01-02"),
			m.BankTransaction.Description,
			formatAmount(m.BankTransaction.Amount),
			m.LedgerTransaction.ID,
			m.LedgerTransaction.Date.Format("2006-01-02"),
			m.LedgerTransaction.Description,
			formatAmount(m.LedgerTransaction.Amount),
			string(m.BankTransaction.Type),
			strconv.FormatFloat(m.Confidence, 'f', 2, 64),
			m.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write matched row: %w", err)
		}
	}

	for _, tx := range report.UnmatchedBank {
		row := []string{
			sectionUnmatchedBank,
			tx.ID, tx.Date.Format("2006-01-02"), tx.Description, formatAmount(tx.Amount),
			"", "", "", "",
			string(tx.Type), "", "",
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write unmatched bank row: %w", err)
		}
	}

	for _, tx := range report.UnmatchedLedger {
		row := []string{
			sectionUnmatchedLedger,
			"", "", "", "",
			tx.ID, tx.Date.Format("2006-01-02"), tx.Description, formatAmount(tx.Amount),
			string(tx.Type), "", "",
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write unmatched ledger row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(a float64) string {
	return strconv.FormatFloat(a, 'f', 2, 64)
}
