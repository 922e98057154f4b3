package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/loansim/loan-calculator/internal/calculation"
	"github.com/loansim/loan-calculator/internal/compare"
	"github.com/loansim/loan-calculator/internal/config"
	"github.com/loansim/loan-calculator/internal/domain"
	"github.com/loansim/loan-calculator/internal/output"
	"github.com/loansim/loan-calculator/internal/tui"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "loansim",
	Short: "Loan amortization and offset simulator",
	Long:  "Models amortizing loan repayment schedules under variable rates and offset-account contributions",
}

func newEngine(verbose bool) *calculation.AmortizationEngine {
	engine := calculation.NewAmortizationEngine()
	if verbose {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

func loadConfig(path string) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Simulate every scenario and render a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args[0])
		if err != nil {
			return err
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		engine := newEngine(verbose)

		report := &output.Report{Loan: cfg.Loan, Summary: cfg.Loan.Summary()}
		for i := range cfg.Scenarios {
			ledger, err := engine.RunScenario(cfg, i)
			if err != nil {
				return err
			}
			report.Runs = append(report.Runs, output.ScenarioRun{
				Scenario: cfg.Scenarios[i],
				Ledger:   ledger,
			})
		}

		format, _ := cmd.Flags().GetString("format")
		formatter, err := output.NewFormatter(format)
		if err != nil {
			return err
		}
		data, err := formatter.Format(report)
		if err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}
		return writeOut(cmd, data)
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [input-file]",
	Short: "Print one scenario's full period ledger as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args[0])
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("scenario")
		index := 0
		if name != "" {
			index = -1
			for i := range cfg.Scenarios {
				if cfg.Scenarios[i].Name == name {
					index = i
					break
				}
			}
			if index < 0 {
				return fmt.Errorf("unknown scenario %q", name)
			}
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		ledger, err := newEngine(verbose).RunScenario(cfg, index)
		if err != nil {
			return err
		}
		data, err := output.LedgerCSV(ledger)
		if err != nil {
			return err
		}
		return writeOut(cmd, data)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare every scenario against the first one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args[0])
		if err != nil {
			return err
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		compSet, err := compare.NewEngine(newEngine(verbose)).RunComparison(cfg, args[0])
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		var rendered string
		switch format {
		case "table", "":
			rendered = (&compare.TableFormatter{}).Format(compSet)
		case "csv":
			rendered, err = (&compare.CSVFormatter{}).Format(compSet)
		case "json":
			rendered, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
		default:
			return fmt.Errorf("unknown comparison format %q (want table, csv or json)", format)
		}
		if err != nil {
			return err
		}
		return writeOut(cmd, []byte(rendered))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %d scenario(s) for loan %q\n",
			len(cfg.Scenarios), cfg.Loan.Label)
		return nil
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [input-file]",
	Short: "Browse ledgers and charts interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args[0])
		if err != nil {
			return err
		}
		program := tea.NewProgram(tui.NewModel(cfg), tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "loansim %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// writeOut sends formatted bytes to --output or stdout.
func writeOut(cmd *cobra.Command, data []byte) error {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "log engine activity")

	calculateCmd.Flags().String("format", "console", "output format: console, csv or json")
	calculateCmd.Flags().String("output", "", "write output to a file instead of stdout")
	scheduleCmd.Flags().String("scenario", "", "scenario name (default: the first one)")
	scheduleCmd.Flags().String("output", "", "write output to a file instead of stdout")
	compareCmd.Flags().String("format", "table", "output format: table, csv or json")
	compareCmd.Flags().String("output", "", "write output to a file instead of stdout")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
