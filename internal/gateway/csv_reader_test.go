package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"testing"
	"time"

	"bank-reconciliation/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCSVTransactionRepository_GetBankTransactions(t *testing.T) {
	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.Transaction
		wantErr  bool
	}{
		{
			name: "valid bank transactions",
			csvData: [][]string{
				{"id", "date", "description", "amount", "reference", "type"},
				{"BANK001", "2024-03-15", "Client payment", "4500.00", "WIRE-77", "CREDIT"},
				{"BANK002", "2024-03-20", "AWS Cloud Services", "890.00", "", "DEBIT"},
			},
			expected: []domain.Transaction{
				{
					ID:          "BANK001",
					Date:        mustParseDate("2024-03-15"),
					Description: "Client payment",
					Amount:      4500.00,
					Reference:   "WIRE-77",
					Type:        domain.TransactionTypeCredit,
					Source:      domain.SourceBank,
				},
				{
					ID:          "BANK002",
					Date:        mustParseDate("2024-03-20"),
					Description: "AWS Cloud Services",
					Amount:      890.00,
					Type:        domain.TransactionTypeDebit,
					Source:      domain.SourceBank,
				},
			},
			wantErr: false,
		},
		{
			name: "signed export with empty type infers direction",
			csvData: [][]string{
				{"id", "date", "description", "amount", "reference", "type"},
				{"BANK003", "2024-03-01", "Card purchase", "-75.50", "", ""},
				{"BANK004", "2024-03-02", "Incoming transfer", "200.00", "", ""},
			},
			expected: []domain.Transaction{
				{
					ID:          "BANK003",
					Date:        mustParseDate("2024-03-01"),
					Description: "Card purchase",
					Amount:      75.50,
					Type:        domain.TransactionTypeDebit,
					Source:      domain.SourceBank,
				},
				{
					ID:          "BANK004",
					Date:        mustParseDate("2024-03-02"),
					Description: "Incoming transfer",
					Amount:      200.00,
					Type:        domain.TransactionTypeCredit,
					Source:      domain.SourceBank,
				},
			},
			wantErr: false,
		},
		{
			name: "empty file with header only",
			csvData: [][]string{
				{"id", "date", "description", "amount", "reference", "type"},
			},
			expected: nil,
			wantErr:  false,
		},
		{
			name: "invalid amount format",
			csvData: [][]string{
				{"id", "date", "description", "amount", "reference", "type"},
				{"BANK001", "2024-03-15", "Payment", "not_a_number", "", "DEBIT"},
			},
			wantErr: true,
		},
		{
			name: "invalid date format",
			csvData: [][]string{
				{"id", "date", "description", "amount", "reference", "type"},
				{"BANK001", "15/03/2024", "Payment", "100.00", "", "DEBIT"},
			},
			wantErr: true,
		},
		{
			name: "unknown type literal",
			csvData: [][]string{
				{"id", "date", "description", "amount", "reference", "type"},
				{"BANK001", "2024-03-15", "Payment", "100.00", "", "TRANSFER"},
			},
			wantErr: true,
		},
		{
			name: "negative amount with explicit type",
			csvData: [][]string{
				{"id", "date", "description", "amount", "reference", "type"},
				{"BANK001", "2024-03-15", "Payment", "-100.00", "", "DEBIT"},
			},
			wantErr: true,
		},
		{
			name: "missing id",
			csvData: [][]string{
				{"id", "date", "description", "amount", "reference", "type"},
				{"", "2024-03-15", "Payment", "100.00", "", "DEBIT"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile, err := createTempCSV(tt.csvData)
			if err != nil {
				t.Fatalf("Failed to create temp CSV file: %v", err)
			}
			defer os.Remove(tmpFile)

			repo := NewCSVTransactionRepository()
			got, err := repo.GetBankTransactions(context.Background(), tmpFile)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCSVTransactionRepository_GetLedgerTransactions(t *testing.T) {
	csvData := [][]string{
		{"id", "date", "description", "amount", "reference", "type"},
		{"LED001", "2024-03-12", "Invoice settlement", "4500.00", "INV-2024-003", "CREDIT"},
	}
	tmpFile, err := createTempCSV(csvData)
	if err != nil {
		t.Fatalf("Failed to create temp CSV file: %v", err)
	}
	defer os.Remove(tmpFile)

	repo := NewCSVTransactionRepository()
	got, err := repo.GetLedgerTransactions(context.Background(), tmpFile)

	assert.NoError(t, err)
	assert.Equal(t, []domain.Transaction{
		{
			ID:          "LED001",
			Date:        mustParseDate("2024-03-12"),
			Description: "Invoice settlement",
			Amount:      4500.00,
			Reference:   "INV-2024-003",
			Type:        domain.TransactionTypeCredit,
			Source:      domain.SourceLedger,
		},
	}, got)
}

func TestCSVTransactionRepository_FileErrors(t *testing.T) {
	repo := NewCSVTransactionRepository()
	ctx := context.Background()

	t.Run("file not found", func(t *testing.T) {
		_, err := repo.GetBankTransactions(ctx, "nonexistent_file.csv")
		assert.Error(t, err)
	})

	t.Run("file with no header", func(t *testing.T) {
		tmpFile, err := os.CreateTemp("", "empty_*.csv")
		if err != nil {
			t.Fatalf("Failed to create temp file: %v", err)
		}
		defer os.Remove(tmpFile.Name())
		tmpFile.Close()

		_, err = repo.GetLedgerTransactions(ctx, tmpFile.Name())
		assert.Error(t, err)
	})
}

// Helper functions

func createTempCSV(data [][]string) (string, error) {
	tmpFile, err := os.CreateTemp("", "test_*.csv")
	if err != nil {
		return "", err
	}

	writer := csv.NewWriter(tmpFile)
	for _, record := range data {
		if err := writer.Write(record); err != nil {
			tmpFile.Close()
			os.Remove(tmpFile.Name())
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", err
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return "", err
	}

	return tmpFile.Name(), nil
}

func mustParseDate(dateStr string) time.Time {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// Benchmark tests

func BenchmarkGetBankTransactions(b *testing.B) {
	data := [][]string{{"id", "date", "description", "amount", "reference", "type"}}
	for i := 0; i < 1000; i++ {
		data = append(data, []string{
			"BANK" + string(rune('0'+i%10)),
			"2024-03-15",
			"Recurring vendor payment",
			"150.00",
			"",
			"DEBIT",
		})
	}

	tmpFile, err := createTempCSV(data)
	if err != nil {
		b.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile)

	repo := NewCSVTransactionRepository()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.GetBankTransactions(ctx, tmpFile); err != nil {
			b.Fatalf("Error in benchmark: %v", err)
		}
	}
}
