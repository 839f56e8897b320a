// Package cli implements the adleman command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matzehuels/adleman/pkg/buildinfo"
	"github.com/matzehuels/adleman/pkg/errors"
	"github.com/matzehuels/adleman/pkg/observability"
	"github.com/matzehuels/adleman/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "adleman"

	// configFile is the file name looked up in the config directory.
	configFile = "config.toml"
)

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

	// opts collects the generation flags shared by every command.
	opts genFlags

	// metricsFile, if set, receives the run's metrics in Prometheus text
	// format after a successful command.
	metricsFile string
	registry    *prometheus.Registry
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
//
// Run without a subcommand, the root command generates a graph, enumerates
// its Hamiltonian paths and prints the report to stdout.
func (c *CLI) RootCommand() *cobra.Command {
	var format string

	root := &cobra.Command{
		Use:   appName,
		Short: "Adleman enumerates Hamiltonian paths in random DNA-labeled graphs",
		Long: `Adleman generates a small graph whose nodes carry random DNA labels, samples
a set of edges between them, and exhaustively searches every ordering of the
nodes for Hamiltonian paths.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.installHooks()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.writeMetrics()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReport(cmd, format)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	c.opts.register(root)
	root.PersistentFlags().StringVar(&c.metricsFile, "metrics-file", "", "write run metrics to this file in Prometheus text format")
	root.Flags().StringVarP(&format, "format", "f", pipeline.FormatText, "output format: text (default), json")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// installHooks registers the debug-logging pipeline hooks, plus Prometheus
// metrics when a metrics file was requested.
func (c *CLI) installHooks() {
	hooks := observability.PipelineHooks(newLogHooks(c.Logger))
	if c.metricsFile != "" {
		c.registry = prometheus.NewRegistry()
		hooks = observability.Multi(hooks, observability.NewMetrics(c.registry))
	}
	observability.SetPipelineHooks(hooks)
}

// writeMetrics writes the collected metrics if a metrics file was requested.
func (c *CLI) writeMetrics() error {
	if c.metricsFile == "" || c.registry == nil {
		return nil
	}
	if err := observability.WriteTextfile(c.metricsFile, c.registry); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write metrics %s", c.metricsFile)
	}
	c.Logger.Debug("wrote metrics", "path", c.metricsFile)
	return nil
}
