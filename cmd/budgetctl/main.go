// Command budgetctl manages the local transaction ledger from the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"budgetapp/internal/config"
	"budgetapp/internal/database"
	apperrors "budgetapp/internal/errors"
	"budgetapp/internal/logger"
	"budgetapp/internal/services"
	"budgetapp/internal/storage"
)

// allowLoadFailure marks commands that still run when the stored ledger
// cannot be read, so a corrupt store can be wiped.
const allowLoadFailure = "allow-load-failure"

// session holds what every command needs: the opened local store and a
// ledger initialized from it.
type session struct {
	dbPath   string
	logLevel string
	now      func() time.Time

	db      *gorm.DB
	store   *storage.SerialStore
	ledger  services.LedgerServicer
	budgets services.BudgetServicer
}

func newRootCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgetctl",
		Short: "Record and report income and expenses",
		Long: `budgetctl works on the same local ledger as the API server.

Every command opens the local store, loads the ledger and prints plain text.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.open,
	}

	cmd.PersistentFlags().StringVar(&s.dbPath, "db", "", "local database path (default: LOCAL_DB_PATH)")
	cmd.PersistentFlags().StringVar(&s.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(addCmd(s))
	cmd.AddCommand(listCmd(s))
	cmd.AddCommand(historyCmd(s))
	cmd.AddCommand(summaryCmd(s))
	cmd.AddCommand(budgetCmd(s))
	cmd.AddCommand(clearCmd(s))

	return cmd
}

func (s *session) open(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path := cfg.LocalDBPath
	if s.dbPath != "" {
		path = s.dbPath
	}

	log := logger.New(cfg.Env, s.logLevel)

	db, err := database.OpenLocal(path)
	if err != nil {
		return err
	}
	s.db = db
	s.store = storage.NewSerialStore(storage.NewLocalStore(storage.NewKeyValue(db)))
	s.ledger = services.NewLedgerService(s.store, log.Named("ledger"))
	s.budgets = services.NewBudgetService(nil, log.Named("budget"))

	if err := s.ledger.Initialize(cmd.Context()); err != nil {
		if apperrors.IsCode(err, apperrors.ErrStorageRead) && cmd.Annotations[allowLoadFailure] == "true" {
			log.Warnw("continuing without a loaded ledger", "error", err)
			return nil
		}
		return err
	}
	return nil
}

func (s *session) close() {
	if s.store != nil {
		s.store.Close()
	}
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// execute runs one budgetctl invocation and releases the store afterwards.
func execute(ctx context.Context, s *session, args []string, out io.Writer) error {
	defer s.close()

	cmd := newRootCmd(s)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	return cmd.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx, &session{now: time.Now}, os.Args[1:], os.Stdout)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
