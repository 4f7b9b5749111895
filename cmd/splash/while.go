package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-splash/internal/platform/tui"
	"github.com/vovakirdan/tui-splash/internal/registry"
)

var flagWidget string

var whileCmd = &cobra.Command{
	Use:   "while -- <command> [args...]",
	Short: "Show a widget while a command runs",
	Long: `Run a command in the background and show a splash widget until it
finishes. The command's output is held back while the widget owns the
terminal and printed once it is gone. Splash exits with the command's
exit code.

Without a terminal the command runs directly and no widget is shown.

Examples:
  splash while -- sleep 10
  splash while -- go build ./...
  splash while --widget ambient -- make test`,
	Args: cobra.MinimumNArgs(1),
	Run:  runWhile,
}

func init() {
	whileCmd.Flags().StringVar(&flagWidget, "widget", "runner", "Widget to show while the command runs")
}

func runWhile(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagWidget) {
		fmt.Fprintf(os.Stderr, "Error: unknown widget %q\n", flagWidget)
		fmt.Fprintln(os.Stderr, "Run 'splash list' to see available widgets.")
		os.Exit(1)
	}

	// No terminal, run the command attached to our stdio and skip the widget
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Debug("stdout is not a terminal, running command directly")
		child := exec.Command(args[0], args[1:]...)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		exitWithChildStatus(child.Run())
	}

	widget, err := registry.Create(flagWidget)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating widget: %v\n", err)
		os.Exit(1)
	}

	// Buffer the command's output while the widget owns the terminal,
	// then replay it once the alt screen is torn down. The command gets
	// no stdin; the widget owns it.
	var stdout, stderr bytes.Buffer
	child := exec.Command(args[0], args[1:]...)
	child.Stdout = &stdout
	child.Stderr = &stderr

	started := time.Now()
	if startErr := child.Start(); startErr != nil {
		fmt.Fprintf(os.Stderr, "Error starting command: %v\n", startErr)
		os.Exit(1)
	}
	logger.Debug("command started", "command", args[0], "pid", child.Process.Pid)

	var waitErr error
	done := make(chan struct{})
	go func() {
		waitErr = child.Wait()
		close(done)
	}()

	task := func() tea.Msg {
		<-done
		return tui.TaskDoneMsg{Err: waitErr}
	}

	cfg := buildRuntimeConfig()
	model := tui.NewModel(widget, cfg).
		WithStatus(tui.DefaultKeyMap().HelpLine()).
		WithTask(task)

	_, runErr := tui.RunModel(model)

	// The user may dismiss the widget before the command finishes; the
	// command keeps running and we wait for it so the replay is complete.
	select {
	case <-done:
	default:
		logger.Info("waiting for command to finish", "command", args[0])
		<-done
	}
	logger.Debug("command finished", "command", args[0], "duration", time.Since(started))

	//nolint:errcheck // Best-effort replay of the buffered output
	os.Stdout.Write(stdout.Bytes())
	//nolint:errcheck // Best-effort replay of the buffered output
	os.Stderr.Write(stderr.Bytes())

	// A widget failure must not mask the command's result
	if runErr != nil {
		logger.Warn("widget failed", "error", runErr)
	}

	exitWithChildStatus(waitErr)
}

// exitWithChildStatus exits with the command's exit code, or 1 when the
// command failed without producing one.
func exitWithChildStatus(err error) {
	if err == nil {
		os.Exit(0)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
