package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zeirishi/takehome-calculator/internal/calculation"
	"github.com/zeirishi/takehome-calculator/internal/config"
	"github.com/zeirishi/takehome-calculator/internal/domain"
	"github.com/zeirishi/takehome-calculator/internal/history"
	"github.com/zeirishi/takehome-calculator/internal/logging"
	"github.com/zeirishi/takehome-calculator/internal/output"
	"github.com/zeirishi/takehome-calculator/internal/store"
)

var (
	configPath string
	debug      bool
)

func main() {
	root := &cobra.Command{
		Use:   "takehome",
		Short: "Estimate a freelancer's take-home pay from an invoiced payment",
		Long: `takehome simulates Japanese individual tax and insurance obligations
(withholding, income tax, resident tax, national health insurance, pension,
business tax) for a single invoiced payment against your deduction profile.

Figures are estimates for planning, not tax advice.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "takehome.yaml", "path to the configuration file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(newCalcCommand(), newHistoryCommand(), newInitCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfiguration reads the config file, falling back to the example
// defaults when the file does not exist.
func loadConfiguration() (*domain.Configuration, error) {
	parser := config.NewInputParser()
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return parser.CreateExampleConfiguration(), nil
	}
	return parser.LoadFromFile(configPath)
}

func openHistory(cfg *domain.Configuration, logger *zap.Logger) (*history.Service, error) {
	dataDir := cfg.Storage.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	s, err := store.OpenWithFallback(dataDir, logger)
	if err != nil {
		return nil, err
	}
	return history.NewService(store.NewRecordStore(s), logger), nil
}

func newCalcCommand() *cobra.Command {
	var (
		amountStr   string
		taxIncluded bool
		withholding bool
		format      string
		save        bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Settle one invoiced payment and estimate the real take-home amount",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(debug)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			cfg, err := loadConfiguration()
			if err != nil {
				return err
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q (available: %v)", format, output.AvailableFormatterNames())
			}

			svc, err := openHistory(cfg, logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			records, err := svc.Records(ctx)
			if err != nil {
				return err
			}

			engine := calculation.NewSettlementEngine(cfg.EffectiveRateTable())
			if debug {
				engine.SetLogger(logging.NewEngineLogger(logger))
			}

			record, err := engine.Settle(domain.PaymentInput{
				Amount:         amount,
				IncludesTax:    taxIncluded,
				HasWithholding: withholding,
			}, history.TrailingPayments(records), cfg.Profile)
			if err != nil {
				return err
			}

			data, err := formatter.Format(record)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			if save {
				if err := svc.Append(ctx, *record); err != nil {
					return fmt.Errorf("settlement computed but not saved: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountStr, "amount", "a", "", "invoiced payment amount in yen")
	cmd.Flags().BoolVar(&taxIncluded, "tax-included", false, "amount already embeds consumption tax")
	cmd.Flags().BoolVar(&withholding, "withholding", true, "client withholds tax at source")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json, csv)")
	cmd.Flags().BoolVar(&save, "save", true, "append the settlement to history")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage past settlements",
	}
	cmd.AddCommand(newHistoryListCommand(), newHistorySummaryCommand(), newHistoryRemoveCommand())
	return cmd
}

func withHistoryService(fn func(ctx context.Context, svc *history.Service, cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(debug)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}
		svc, err := openHistory(cfg, logger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		return fn(ctx, svc, cmd)
	}
}

func newHistoryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all settlement records, oldest first",
		RunE: withHistoryService(func(ctx context.Context, svc *history.Service, cmd *cobra.Command) error {
			records, err := svc.Records(ctx)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No settlements recorded.")
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  amount=%s deposit=%s take-home=%s\n",
					r.ID,
					r.CreatedAt.Format("2006-01-02"),
					output.FormatYen(r.Payment.Amount),
					output.FormatYen(r.DepositAmount),
					output.FormatYen(r.EstimatedTakeHome),
				)
			}
			return nil
		}),
	}
}

func newHistorySummaryCommand() *cobra.Command {
	var (
		by    string
		asCSV bool
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate settlements by calendar month or year",
		RunE: withHistoryService(func(ctx context.Context, svc *history.Service, cmd *cobra.Command) error {
			switch by {
			case "month":
				summaries, err := svc.Monthly(ctx)
				if err != nil {
					return err
				}
				if asCSV {
					data, err := output.MonthlySummariesCSV(summaries)
					if err != nil {
						return err
					}
					fmt.Fprint(cmd.OutOrStdout(), string(data))
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), output.FormatMonthlySummaries(summaries))
				return nil
			case "year":
				summaries, err := svc.Yearly(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), output.FormatYearlySummaries(summaries))
				return nil
			default:
				return fmt.Errorf("unknown bucket %q: use month or year", by)
			}
		}),
	}
	cmd.Flags().StringVar(&by, "by", "month", "bucket size (month or year)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "emit CSV instead of a table")
	return cmd
}

func newHistoryRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove one settlement record by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistoryService(func(ctx context.Context, svc *history.Service, cmd *cobra.Command) error {
				return svc.Remove(ctx, args[0])
			})(cmd, args)
		},
	}
}

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write an example configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("%s already exists, refusing to overwrite", configPath)
			}
			if err := config.NewInputParser().WriteExampleConfiguration(configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote example configuration to %s\n", configPath)
			return nil
		},
	}
}
