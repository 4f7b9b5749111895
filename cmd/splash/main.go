// splash draws tiny arcade widgets in the terminal while you wait.
//
// Usage:
//
//	splash list                    - List available widgets
//	splash play [widget]           - Run a widget until you quit
//	splash while -- <cmd> [args]   - Show a widget while a command runs
//
// Global flags:
//
//	--theme <name>  - Color theme name or path to a theme YAML
//	--seed <value>  - RNG seed for reproducible runs
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import widgets to register them
	_ "github.com/vovakirdan/tui-splash/internal/games/ambient"
	_ "github.com/vovakirdan/tui-splash/internal/games/runner"
)

var (
	// Global flags
	flagTheme   string
	flagSeed    int64
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "splash",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "splash",
	Short: "Splash - Mini-games for your terminal's idle moments",
	Long: `Splash renders small arcade widgets in the terminal, either on their
own or as a loading screen while another command runs.

Available commands:
  list     - Show all available widgets
  play     - Run a widget until you quit
  while    - Show a widget while a command runs

Examples:
  splash list
  splash play runner
  splash play runner --seed 42
  splash while -- go build ./...
  splash while --theme mono -- sleep 10`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme name or path to a theme YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(whileCmd)
}
