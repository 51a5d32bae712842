package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/loansim/loansim/internal/calculation"
	"github.com/loansim/loansim/internal/config"
	"github.com/loansim/loansim/internal/domain"
	"github.com/loansim/loansim/internal/optimize"
	"github.com/loansim/loansim/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
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

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "loansim %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "loansim",
	Short: "Loan repayment strategy simulator",
	Long:  "Simulates multi-loan repayment and finds the upfront payment that minimizes present-value cost",
}

// loadInputs reads the YAML configuration and the loan CSV it points to.
func loadInputs(configFile string) (*engineSetup, error) {
	parser := config.NewInputParser()
	configData, err := parser.LoadFromFile(configFile)
	if err != nil {
		return nil, err
	}

	simConfig, err := parser.ToSimulationConfig(configData)
	if err != nil {
		return nil, err
	}

	loader := config.NewLoanLoader()
	records, err := loader.LoadFromFile(configData.LoanFile)
	if err != nil {
		return nil, err
	}

	return &engineSetup{
		Engine:    calculation.NewSimulationEngine(simConfig),
		Records:   records,
		Verbosity: simConfig.Verbosity,
	}, nil
}

type engineSetup struct {
	Engine    *calculation.SimulationEngine
	Records   []domain.LoanRecord
	Verbosity int
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize [config-file]",
	Short: "Search for the upfront payment that minimizes present-value cost",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setup, err := loadInputs(args[0])
		if err != nil {
			log.Fatal(err)
		}

		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			setup.Engine.SetLogger(simpleCLILogger{})
		}

		workers, _ := cmd.Flags().GetInt("workers")
		parallel, _ := cmd.Flags().GetBool("parallel")
		stepDollars, _ := cmd.Flags().GetInt64("step")
		options := optimize.DefaultSearchOptions()
		if workers > 0 {
			options.Workers = workers
		}
		if parallel && !cmd.Flags().Changed("workers") {
			options.Workers = runtime.NumCPU()
		}
		if stepDollars > 0 {
			options.StepPennies = stepDollars * 100
		}

		searcher := optimize.NewSearcher(setup.Engine, options)
		result, err := searcher.Search(context.Background(), setup.Records)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		verbosity := setup.Verbosity
		if cmd.Flags().Changed("verbosity") {
			verbosity, _ = cmd.Flags().GetInt("verbosity")
		}

		formatter, err := output.GetFormatterByName(outputFormat, verbosity)
		if err != nil {
			log.Fatal(err)
		}
		text, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(text)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [config-file]",
	Short: "Run a single repayment simulation with a fixed upfront payment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setup, err := loadInputs(args[0])
		if err != nil {
			log.Fatal(err)
		}

		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			setup.Engine.SetLogger(simpleCLILogger{})
		}

		upfrontDollars, _ := cmd.Flags().GetFloat64("upfront")
		if upfrontDollars < 0 {
			log.Fatal("--upfront cannot be negative")
		}
		upfrontPennies := decimal.NewFromFloat(upfrontDollars).
			Mul(decimal.NewFromInt(100)).Ceil().IntPart()

		run, err := setup.Engine.Run(setup.Records, upfrontPennies)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("SIMULATION RESULT")
		fmt.Println("=================")
		fmt.Printf("Upfront Payment:    %s\n", output.FormatPennies(run.UpfrontPennies))
		fmt.Printf("Total Paid:         %s\n", output.FormatPennies(run.TotalPaidPennies))
		fmt.Printf("Present Value Cost: %s\n",
			output.FormatCurrency(run.PresentValuePennies.Div(decimal.NewFromInt(100))))

		verbosity := setup.Verbosity
		if cmd.Flags().Changed("verbosity") {
			verbosity, _ = cmd.Flags().GetInt("verbosity")
		}
		if verbosity >= 2 {
			for i, m := range run.Months {
				fmt.Printf("[%3d] minimum=%s balance=%s paid=%s\n",
					i+1,
					output.FormatPennies(m.MinimumPaymentPennies),
					output.FormatPennies(m.BalancePennies),
					output.FormatPennies(m.TotalPaidPennies))
				if m.BalancePennies == 0 {
					break
				}
			}
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate a configuration file and its loan file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setup, err := loadInputs(args[0])
		if err != nil {
			log.Fatal(err)
		}

		var balance int64
		for _, r := range setup.Records {
			balance += r.BalancePennies()
		}
		fmt.Printf("Configuration file %s is valid\n", args[0])
		fmt.Printf("Loans: %d, starting balance %s\n", len(setup.Records), output.FormatPennies(balance))
	},
}

func init() {
	optimizeCmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json)")
	optimizeCmd.Flags().Int("verbosity", 0, "Console detail level 0-3 (overrides config file)")
	optimizeCmd.Flags().Bool("debug", false, "Enable debug output for per-month simulation detail")
	optimizeCmd.Flags().Int("workers", 1, "Concurrent strategy evaluations (1 = sequential)")
	optimizeCmd.Flags().Bool("parallel", false, "Evaluate strategies on all CPUs (same as --workers NumCPU)")
	optimizeCmd.Flags().Int64("step", 0, "Candidate spacing in whole dollars (default 1000)")

	simulateCmd.Flags().Float64("upfront", 0, "Upfront payment in dollars")
	simulateCmd.Flags().Int("verbosity", 0, "Console detail level 0-3 (overrides config file)")
	simulateCmd.Flags().Bool("debug", false, "Enable debug output for per-month simulation detail")

	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
