package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"bank-reconciliation/internal/config"
	"bank-reconciliation/internal/gateway"
	"bank-reconciliation/internal/logging"
	"bank-reconciliation/internal/matcher"
	"bank-reconciliation/internal/usecase"
)

func main() {
	// Define command-line flags
	bankFile := flag.String("bank", "", "Path to the bank statement CSV file (required)")
	ledgerFile := flag.String("ledger", "", "Path to the internal ledger CSV file (required)")
	configFile := flag.String("config", "", "Path to a YAML config file (optional)")
	format := flag.String("format", "json", "Output format: json or csv")
	outPath := flag.String("out", "", "Write the report to this file instead of stdout")
	flag.Parse()

	// Validate required flags
	if *bankFile == "" || *ledgerFile == "" {
		fmt.Println("Error: flags -bank and -ledger are required.")
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	logger := logging.Setup(cfg.Logging)

	matcherCfg := cfg.Matching.MatcherConfig()
	if err := matcherCfg.Validate(); err != nil {
		logger.Fatalf("Invalid matching config: %v", err)
	}

	// --- Dependency Injection (Wiring the application) ---
	csvRepo := gateway.NewCSVTransactionRepository()
	engine := matcher.NewEngine(matcherCfg)
	reconciliationUseCase := usecase.NewReconciliationUseCase(csvRepo, engine, logger)

	// --- Execute the Usecase ---
	report, err := reconciliationUseCase.Reconcile(context.Background(), *bankFile, *ledgerFile)
	if err != nil {
		logger.Fatalf("Reconciliation failed: %v", err)
	}

	// --- Present the Output ---
	out := os.Stdout
	if *outPath != "" {
		out, err = os.Create(*outPath)
		if err != nil {
			logger.Fatalf("Failed to create output file: %v", err)
		}
		defer out.Close()
	}

	switch *format {
	case "json":
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			logger.Fatalf("Failed to generate JSON report: %v", err)
		}
		fmt.Fprintln(out, string(output))
	case "csv":
		if err := gateway.NewCSVReportWriter().Write(out, report); err != nil {
			logger.Fatalf("Failed to generate CSV report: %v", err)
		}
	default:
		logger.Fatalf("Unknown output format %q (want json or csv)", *format)
	}
}
