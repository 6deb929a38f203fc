// Package cli implements the relief command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/response"
	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/scenario"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "relief"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose      bool
	scenarioPath string
	sys          *response.System
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Relief coordinates affected areas and road routes after a disaster",
		Long: `Relief keeps an alphabetical index of affected areas and a weighted road
network, and answers reachability (BFS) and shortest-distance (Dijkstra)
queries over it. Load a network with --scenario or build one in the menu.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(contextWithLogger(cmd.Context(), c.Logger))
			return c.loadSystem()
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log mutations and timings at debug level")
	root.PersistentFlags().StringVarP(&c.scenarioPath, "scenario", "s", "", "scenario TOML file with areas and routes")

	root.AddCommand(c.areasCommand())
	root.AddCommand(c.bfsCommand())
	root.AddCommand(c.shortestCommand())
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.menuCommand())

	return root
}

// Exit codes returned by Run.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// Run executes the command line args against a fresh CLI and maps the
// outcome to a process exit code. Command output goes to stdout; logs and
// the final error go to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := New(stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SilenceErrors = true

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		fmt.Fprintln(stderr, styleIconError.Render(iconError)+" "+err.Error())
		return ExitFailure
	}
}

// loadSystem builds the session and applies the scenario file, if any.
func (c *CLI) loadSystem() error {
	c.sys = response.New(response.WithLogger(c.Logger))
	if c.scenarioPath == "" {
		c.Logger.Debug("no scenario, starting empty", "session", c.sys.Session())
		return nil
	}

	var name string
	err := timed(c.Logger, "scenario loaded", func() error {
		s, err := scenario.Load(c.scenarioPath)
		if err != nil {
			return err
		}
		name = s.Name
		return s.Apply(c.sys)
	})
	if err != nil {
		return err
	}
	sum := c.sys.Summary()
	c.Logger.Debug("scenario applied", "name", name, "areas", sum.Areas, "places", sum.Places, "roads", sum.Roads)

	return nil
}

// system returns the current session, creating an empty one when commands
// run without the root pre-run (tests calling subcommands directly).
func (c *CLI) system() *response.System {
	if c.sys == nil {
		c.sys = response.New(response.WithLogger(c.Logger))
	}
	return c.sys
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
