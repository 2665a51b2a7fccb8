package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/casement/pkg/buildinfo"
	"github.com/matzehuels/casement/pkg/config"
	"github.com/matzehuels/casement/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and file names.
const appName = "casement"

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
	Config config.Config

	// Out receives command output (tables, file lists). Defaults to stdout.
	Out io.Writer
	// Err receives spinners and warnings. Defaults to stderr.
	Err io.Writer

	configPath string
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	buildinfo.Resolve()

	root := &cobra.Command{
		Use:   appName,
		Short: "Casement turns window specs into 3D models and quotations",
		Long: `Casement is a parametric window generator. From one window spec (size,
profile, design, glass, grill, mesh, rate) it derives a 3D model, draws
the 2D schematic, prices the order and lays out a printable A4 quotation.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/casement/config.toml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "do not read or write the model cache")

	// Register all subcommands
	root.AddCommand(c.modelCommand())
	root.AddCommand(c.quoteCommand())
	root.AddCommand(c.priceCommand())
	root.AddCommand(c.formCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.templatesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and attaches the logger to the
// command context.
func (c *CLI) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	if c.configPath != "" {
		c.Logger.Debug("loaded config", "path", c.configPath)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner carrying the configured templates
// and the model cache.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	templates, err := c.Config.Templates()
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(c.openCache(), c.Logger)
	r.Templates = templates
	r.DefaultTemplate = c.Config.Quotation.Template
	return r, nil
}

// clientName returns name, or the configured default client.
func (c *CLI) clientName(name string) string {
	if name != "" {
		return name
	}
	return c.Config.Quotation.Client
}
