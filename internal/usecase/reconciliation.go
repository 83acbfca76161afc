package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bank-reconciliation/internal/domain"
	"bank-reconciliation/internal/matcher"
)

// ReconciliationUseCase orchestrates a reconciliation run: ingest both
// sides through the repository, hand them to the matching engine, stamp
// the resulting report with a run id.
type ReconciliationUseCase struct {
	repo   TransactionRepository
	engine *matcher.Engine
	logger *logrus.Logger
}

// NewReconciliationUseCase creates a new instance of the usecase. A nil
// logger disables run logging.
func NewReconciliationUseCase(repo TransactionRepository, engine *matcher.Engine, logger *logrus.Logger) *ReconciliationUseCase {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &ReconciliationUseCase{repo: repo, engine: engine, logger: logger}
}

// Reconcile ingests the bank statement and ledger files and runs the
// matching engine over them.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, bankPath, ledgerPath string) (*domain.ReconciliationReport, error) {
	bankTransactions, err := uc.repo.GetBankTransactions(ctx, bankPath)
	if err != nil {
		return nil, fmt.Errorf("could not get bank transactions: %w", err)
	}

	ledgerTransactions, err := uc.repo.GetLedgerTransactions(ctx, ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("could not get ledger transactions: %w", err)
	}

	report := uc.engine.Reconcile(bankTransactions, ledgerTransactions)
	report.ID = uuid.NewString()
	report.GeneratedAt = time.Now().UTC()

	uc.logger.WithFields(logrus.Fields{
		"report_id":     report.ID,
		"bank_count":    len(bankTransactions),
		"ledger_count":  len(ledgerTransactions),
		"matched":       report.Summary.MatchCount,
		"discrepancies": report.Summary.DiscrepancyCount,
	}).Info("reconciliation complete")

	return report, nil
}
