package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bank-reconciliation/internal/domain"
)

// TransactionPayload is the wire form of a transaction. Dates travel as
// YYYY-MM-DD strings; Source is assigned from the list the payload arrived
// in, never taken from the client.
type TransactionPayload struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Reference   string  `json:"reference"`
	Type        string  `json:"type"`
}

// ReconcileRequest carries both transaction lists. Empty lists are valid.
type ReconcileRequest struct {
	BankTransactions   []TransactionPayload `json:"bank_transactions"`
	LedgerTransactions []TransactionPayload `json:"ledger_transactions"`
}

func (s *Server) reconcile(c *gin.Context) {
	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	bank, err := toDomain(req.BankTransactions, domain.SourceBank)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid bank transaction: %v", err)})
		return
	}
	ledger, err := toDomain(req.LedgerTransactions, domain.SourceLedger)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid ledger transaction: %v", err)})
		return
	}

	report := s.engine.Reconcile(bank, ledger)
	report.ID = uuid.NewString()
	report.GeneratedAt = time.Now().UTC()

	c.JSON(http.StatusOK, report)
}

func toDomain(payloads []TransactionPayload, source domain.TransactionSource) ([]domain.Transaction, error) {
	transactions := make([]domain.Transaction, 0, len(payloads))
	for _, p := range payloads {
		if p.ID == "" {
			return nil, fmt.Errorf("missing transaction id")
		}
		date, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			return nil, fmt.Errorf("could not parse date '%s' for %s: %w", p.Date, p.ID, err)
		}
		txType := domain.TransactionType(p.Type)
		if !txType.Valid() {
			return nil, fmt.Errorf("unknown transaction type '%s' for %s", p.Type, p.ID)
		}
		if p.Amount < 0 {
			return nil, fmt.Errorf("amount must be non-negative for %s, got %v", p.ID, p.Amount)
		}
		transactions = append(transactions, domain.Transaction{
			ID:          p.ID,
			Date:        date,
			Description: p.Description,
			Amount:      p.Amount,
			Reference:   p.Reference,
			Type:        txType,
			Source:      source,
		})
	}
	return transactions, nil
}
