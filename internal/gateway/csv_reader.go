package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"bank-reconciliation/internal/domain"
)

// Expected CSV layout for both sides, header first:
//
//	id,date,description,amount,reference,type
//
// date is YYYY-MM-DD. type may be left empty in bank exports that carry
// direction in the sign of the amount; it is then inferred and the amount
// normalized to a magnitude.

// CSVTransactionRepository implements the TransactionRepository interface
// for CSV files. It enforces the ingestion invariants the matching engine
// relies on: non-empty id, valid calendar date, non-negative amount, and a
// recognized type literal.
type CSVTransactionRepository struct{}

// NewCSVTransactionRepository creates a new repository instance.
func NewCSVTransactionRepository() *CSVTransactionRepository {
	return &CSVTransactionRepository{}
}

// GetBankTransactions reads and parses a bank statement CSV file.
func (r *CSVTransactionRepository) GetBankTransactions(ctx context.Context, path string) ([]domain.Transaction, error) {
	return r.readFile(ctx, path, domain.SourceBank)
}

// GetLedgerTransactions reads and parses an internal ledger CSV file.
func (r *CSVTransactionRepository) GetLedgerTransactions(ctx context.Context, path string) ([]domain.Transaction, error) {
	return r.readFile(ctx, path, domain.SourceLedger)
}

func (r *CSVTransactionRepository) readFile(_ context.Context, path string, source domain.TransactionSource) ([]domain.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var transactions []domain.Transaction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		tx, err := parseRecord(record, source)
		if err != nil {
			return nil, fmt.Errorf("invalid record in %s: %w", path, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func parseRecord(record []string, source domain.TransactionSource) (domain.Transaction, error) {
	if len(record) < 6 {
		return domain.Transaction{}, fmt.Errorf("expected 6 columns, got %d", len(record))
	}

	id := record[0]
	if id == "" {
		return domain.Transaction{}, fmt.Errorf("missing transaction id")
	}

	date, err := time.Parse("2006-01-02", record[1])
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("could not parse date '%s': %w", record[1], err)
	}

	amount, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("could not parse amount '%s': %w", record[3], err)
	}

	tx := domain.Transaction{
		ID:          id,
		Date:        date,
		Description: record[2],
		Amount:      amount,
		Reference:   record[4],
		Type:        domain.TransactionType(record[5]),
		Source:      source,
	}

	if tx.Type == "" {
		// Signed export: direction comes from the sign of the amount.
		if tx.Amount < 0 {
			tx.Type = domain.TransactionTypeDebit
			tx.Amount = math.Abs(tx.Amount)
		} else {
			tx.Type = domain.TransactionTypeCredit
		}
		return tx, nil
	}

	if !tx.Type.Valid() {
		return domain.Transaction{}, fmt.Errorf("unknown transaction type '%s'", record[5])
	}
	if tx.Amount < 0 {
		return domain.Transaction{}, fmt.Errorf("amount must be non-negative when a type is given, got %v", tx.Amount)
	}
	return tx, nil
}
