package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rpgo/overpayment-simulator/internal/calculation"
	"github.com/rpgo/overpayment-simulator/internal/config"
	"github.com/rpgo/overpayment-simulator/internal/domain"
	"github.com/rpgo/overpayment-simulator/internal/metrics"
	"github.com/rpgo/overpayment-simulator/internal/tracing"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds state shared by all subcommands.
type app struct {
	out io.Writer

	configFile  string
	envFile     string
	balance     string
	interest    string
	payment     string
	maxPayment  string
	months      int
	day         int
	currency    string
	start       string
	verbose     bool
	metricsFile string
	otelTarget  string

	defaults config.Defaults
	logger   *zap.SugaredLogger
	shutdown tracing.ShutdownFunc
}

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// execute runs the command line with args. Traces and metrics are flushed
// after every run, including failed ones.
func execute(out, errOut io.Writer, args []string) error {
	root, a := newRootCmd(out)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)

	err := root.Execute()
	if terr := a.teardown(context.Background()); terr != nil {
		return errors.Join(err, terr)
	}
	return err
}

func newRootCmd(out io.Writer) (*cobra.Command, *app) {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "overpay",
		Short: "Compare mortgage overpayment strategies",
		Long: `overpay simulates a loan month by month under three overpayment strategies
(Mix, Reduce Payment, Reduce Term) and compares them with paying only the
contractual installment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "YAML loan file (flags override its values)")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file with OVERPAY_* defaults")
	pf.StringVar(&a.balance, "balance", "", "remaining loan balance")
	pf.StringVar(&a.interest, "interest", "", "annual interest rate in percent, e.g. 7.84")
	pf.StringVar(&a.payment, "payment", "", "contractual monthly payment")
	pf.StringVar(&a.maxPayment, "max", "", "maximum affordable monthly payment")
	pf.IntVar(&a.months, "months", 0, "remaining number of monthly installments")
	pf.IntVar(&a.day, "day", 0, "payment day of month (1-28)")
	pf.StringVar(&a.currency, "currency", "", "currency label for reports")
	pf.StringVar(&a.start, "start", "", "first payment month, YYYY-MM or YYYY-MM-DD (default current month)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")
	pf.StringVar(&a.otelTarget, "otel-endpoint", os.Getenv("OTEL_ENDPOINT"), "OTLP/HTTP endpoint (host:port) for trace export")

	root.AddCommand(
		newCompareCmd(a),
		newScheduleCmd(a),
		newSweepCmd(a),
		newValidateCmd(a),
		newExampleConfigCmd(a),
	)
	return root, a
}

func (a *app) setup(ctx context.Context) error {
	defaults, err := config.LoadDefaults(a.envFile)
	if err != nil {
		return err
	}
	a.defaults = defaults

	shutdown, err := tracing.Init(ctx, a.otelTarget, version)
	if err != nil {
		return err
	}
	a.shutdown = shutdown

	var logger *zap.Logger
	if a.verbose {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err = cfg.Build()
	}
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = logger.Sugar()
	return nil
}

// teardown flushes logs, traces and metrics. Every step runs even if an
// earlier one fails.
func (a *app) teardown(ctx context.Context) error {
	var errs []error
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.shutdown != nil {
		if err := a.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to flush traces: %w", err))
		}
	}
	if a.metricsFile != "" {
		if err := metrics.WriteTextfile(a.metricsFile); err != nil {
			errs = append(errs, fmt.Errorf("failed to write metrics: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (a *app) simulator() *calculation.Simulator {
	sim := calculation.NewSimulator()
	sim.MaxMonths = a.defaults.MaxMonths
	if a.logger != nil {
		sim.SetLogger(a.logger)
	}
	return sim
}

// loadConfiguration merges the loan file (if any) with explicitly set flags
// and validates the result.
func (a *app) loadConfiguration(cmd *cobra.Command) (*domain.Configuration, error) {
	parser := config.NewInputParserWithDefaults(a.defaults)

	var cfg *domain.Configuration
	if a.configFile != "" {
		loaded, err := parser.LoadFromFile(a.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = &domain.Configuration{}
		var missing []string
		for _, name := range []string{"balance", "interest", "payment", "max", "months"} {
			if !cmd.Flags().Changed(name) {
				missing = append(missing, "--"+name)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("missing required flags: %s (or use --config)", strings.Join(missing, ", "))
		}
	}

	flags := cmd.Flags()
	decimals := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"balance", a.balance, &cfg.Loan.Balance},
		{"interest", a.interest, &cfg.Loan.AnnualRatePercent},
		{"payment", a.payment, &cfg.Loan.MonthlyPayment},
		{"max", a.maxPayment, &cfg.Loan.MaxMonthlyPayment},
	}
	for _, d := range decimals {
		if !flags.Changed(d.name) {
			continue
		}
		v, err := decimal.NewFromString(strings.TrimSpace(d.value))
		if err != nil {
			return nil, fmt.Errorf("invalid --%s %q: %w", d.name, d.value, err)
		}
		*d.dst = v
	}
	if flags.Changed("months") {
		cfg.Loan.RemainingMonths = a.months
	}
	if flags.Changed("day") {
		cfg.Loan.PaymentDay = a.day
	}
	if flags.Changed("currency") {
		cfg.Loan.Currency = strings.ToUpper(strings.TrimSpace(a.currency))
	}
	if flags.Changed("start") {
		cfg.Loan.StartDate = a.start
	}

	parser.ApplyDefaults(cfg)
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (a *app) loadParameters(cmd *cobra.Command) (domain.LoanParameters, *domain.Configuration, error) {
	cfg, err := a.loadConfiguration(cmd)
	if err != nil {
		return domain.LoanParameters{}, nil, err
	}
	params, err := config.NewInputParserWithDefaults(a.defaults).ToParameters(cfg)
	if err != nil {
		return domain.LoanParameters{}, nil, err
	}
	return params, cfg, nil
}
