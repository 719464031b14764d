package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"shift-reconciliation/internal/config"
	"shift-reconciliation/internal/gateway"
	"shift-reconciliation/internal/server"
	"shift-reconciliation/internal/usecase"
)

var (
	cfgPath      string
	snapshotPath string
	shiftID      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftrecon",
		Short: "Fuel station shift reconciliation",
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Build a reconciliation report from a shift snapshot file",
		RunE:  runReport,
	}
	reportCmd.Flags().StringVarP(&snapshotPath, "snapshot", "s", "", "Path to the shift snapshot JSON file (required)")
	reportCmd.Flags().StringVar(&shiftID, "shift", "", "Shift id to stamp on the report (defaults to the snapshot file name)")
	_ = reportCmd.MarkFlagRequired("snapshot")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the shift reconciliation HTTP server",
		RunE:  runServer,
	}
	serveCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to the YAML config file")

	rootCmd.AddCommand(reportCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	shift, err := gateway.ReadSnapshotFile(snapshotPath)
	if err != nil {
		return err
	}

	id := shiftID
	if id == "" {
		base := filepath.Base(snapshotPath)
		id = strings.TrimSuffix(base, filepath.Ext(base))
	}

	report := usecase.BuildShiftReport(id, shift)

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}

	fmt.Println(string(output))
	return nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	store, err := gateway.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	repo := gateway.NewFallbackRepository(store, gateway.NewSnapshotRepository(cfg.SnapshotDir))
	reconciler := usecase.NewReconciliationUseCase(repo, store, cfg.ReportCacheTTL)

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("snapshot_dir", cfg.SnapshotDir).
		Dur("report_cache_ttl", cfg.ReportCacheTTL).
		Msg("store ready")

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Reconciler:    reconciler,
			SnapshotStore: store,
		},
	})

	return api.Start()
}
