package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-splash/internal/config"
	"github.com/vovakirdan/tui-splash/internal/core"
	"github.com/vovakirdan/tui-splash/internal/platform/tui"
	"github.com/vovakirdan/tui-splash/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [widget]",
	Short: "Run a widget until you quit",
	Long: `Run the specified widget in the terminal until you quit.
Defaults to the runner when no widget is given.

Controls:
  Space/Up   - Jump / start / restart
  Ctrl+S     - Save a screenshot
  Q/Esc      - Quit

Examples:
  splash play
  splash play runner --seed 42
  splash play ambient --theme mono`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	widgetID := "runner"
	if len(args) > 0 {
		widgetID = args[0]
	}

	// Check if widget exists
	if !registry.Exists(widgetID) {
		fmt.Fprintf(os.Stderr, "Error: unknown widget %q\n", widgetID)
		fmt.Fprintln(os.Stderr, "Run 'splash list' to see available widgets.")
		os.Exit(1)
	}

	// No terminal, nothing to draw
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Info("stdout is not a terminal, nothing to draw")
		return
	}

	widget, err := registry.Create(widgetID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating widget: %v\n", err)
		os.Exit(1)
	}

	cfg := buildRuntimeConfig()
	warnIfTooSmall(widget)

	model := tui.NewModel(widget, cfg).WithStatus(tui.DefaultKeyMap().HelpLine())
	if _, runErr := tui.RunModel(model); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running widget: %v\n", runErr)
		os.Exit(1)
	}
}

// buildRuntimeConfig assembles a runtime config from the global flags.
func buildRuntimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed

	theme, err := config.LoadTheme(flagTheme)
	if err != nil {
		logger.Warn("falling back to default theme", "error", err)
		theme = core.DefaultTheme()
	}
	cfg.Theme = theme

	return cfg
}

// warnIfTooSmall logs when the terminal cannot fit the widget yet. The
// model shows a resize notice on screen, so this is advisory only.
func warnIfTooSmall(w registry.Widget) {
	cols, rows := w.Size()
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (tw < cols || th < rows) {
		logger.Warn("terminal smaller than widget",
			"need", fmt.Sprintf("%dx%d", cols, rows),
			"have", fmt.Sprintf("%dx%d", tw, th),
		)
	}
}
