package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/overpayment-simulator/internal/calculation"
	"github.com/rpgo/overpayment-simulator/internal/config"
	"github.com/rpgo/overpayment-simulator/internal/domain"
	"github.com/rpgo/overpayment-simulator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	var format, outputDir string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare all strategies against paying only the contractual installment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, cfg, err := a.loadParameters(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") && cfg.Report.Format != "" {
				format = cfg.Report.Format
			}
			if !cmd.Flags().Changed("output-dir") && cfg.Report.OutputDir != "" {
				outputDir = cfg.Report.OutputDir
			}

			results, err := a.simulator().CompareStrategies(cmd.Context(), params)
			if err != nil {
				return err
			}

			if outputDir == "" && !isBinaryFormat(format) {
				return output.Render(a.out, results, format)
			}
			files, err := output.GenerateReport(results, format, outputDir)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintf(a.out, "Report written to %s\n", f)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console",
		fmt.Sprintf("report format (%s, all)", strings.Join(output.AvailableFormatterNames(), ", ")))
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "write a timestamped report file into this directory instead of stdout")
	return cmd
}

// isBinaryFormat reports whether a format must be written to a file.
func isBinaryFormat(format string) bool {
	n := output.NormalizeFormatName(format)
	return n == "pdf" || n == "all"
}

func newScheduleCmd(a *app) *cobra.Command {
	var strategy, format string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the month-by-month schedule for one strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var mode domain.StrategyMode
			var label string
			if strategy == "baseline" {
				mode = domain.StrategyReduceTerm
				label = output.BaselineLabel
			} else {
				parsed, err := domain.ParseStrategyMode(strategy)
				if err != nil {
					return fmt.Errorf("%w: %v", calculation.ErrInvalidInput, err)
				}
				mode = parsed
			}

			params, _, err := a.loadParameters(cmd)
			if err != nil {
				return err
			}
			if strategy == "baseline" {
				params = params.WithoutOverpayment()
			}

			result, err := a.simulator().Simulate(params, mode)
			if err != nil {
				return err
			}
			data, err := output.FormatSchedule(result, label, format, params.Currency)
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "mix", "strategy: mix, reduce_payment, reduce_term or baseline")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "schedule format (console, csv)")
	return cmd
}

func newSweepCmd(a *app) *cobra.Command {
	var from, to, step, format string
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare strategies across a range of affordable payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, _, err := a.loadParameters(cmd)
			if err != nil {
				return err
			}

			start := params.ContractualPayment
			if from != "" {
				if start, err = decimal.NewFromString(from); err != nil {
					return fmt.Errorf("invalid --from %q: %w", from, err)
				}
			}
			end := params.AffordablePayment
			if to != "" {
				if end, err = decimal.NewFromString(to); err != nil {
					return fmt.Errorf("invalid --to %q: %w", to, err)
				}
			}
			increment, err := decimal.NewFromString(step)
			if err != nil {
				return fmt.Errorf("invalid --step %q: %w", step, err)
			}

			ceilings, err := calculation.SweepCeilings(start, end, increment)
			if err != nil {
				return err
			}
			points, err := a.simulator().SensitivitySweep(cmd.Context(), params, ceilings)
			if err != nil {
				return err
			}
			data, err := output.FormatSweep(points, format)
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first affordable payment (default contractual payment)")
	cmd.Flags().StringVar(&to, "to", "", "last affordable payment (default --max)")
	cmd.Flags().StringVar(&step, "step", "100", "increment between affordable payments")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "sweep format (console, csv)")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate a loan configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.configFile = args[0]
			}
			params, _, err := a.loadParameters(cmd)
			if err != nil {
				return err
			}
			for _, mode := range domain.AllStrategies() {
				if err := calculation.ValidateParameters(params, mode); err != nil {
					return err
				}
			}
			fmt.Fprintln(a.out, "Configuration is valid.")
			fmt.Fprintf(a.out, "Annuity payment for the remaining term: %s\n",
				output.FormatCurrency(calculation.AnnuityPayment(params.Balance, calculation.MonthlyRate(params.AnnualRate), params.RemainingMonths), params.Currency))
			return nil
		},
	}
}

func newExampleConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write an example loan configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "example_loan.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			example := config.NewInputParserWithDefaults(a.defaults).CreateExampleConfiguration()
			if err := config.SaveConfiguration(example, filename); err != nil {
				return fmt.Errorf("failed to write %s: %w", filename, err)
			}
			fmt.Fprintf(a.out, "Example configuration written to %s\n", filename)
			return nil
		},
	}
}
