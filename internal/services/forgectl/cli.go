// Package forgectl implements the forgectl command line
// it drives the same dispatcher the API uses, built from the same FORGE_* configuration
package forgectl

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"forgeapi/internal/core/forge"
	"forgeapi/internal/core/version"
	"forgeapi/internal/modkit/forgekit"
	"forgeapi/internal/platform/config"
	"forgeapi/internal/platform/logger"
)

// output formats
const (
	outputAuto = "auto"
	outputText = "text"
	outputJSON = "json"
)

// CLI holds shared state for all commands
type CLI struct {
	out io.Writer

	// seams for tests
	build   func(probe bool) (*forge.Dispatcher, error)
	initLog func(verbose bool)
	isTTY   func() bool

	output  string
	timeout time.Duration
	noProbe bool
	verbose bool
}

// New creates a CLI writing results to out
func New(out io.Writer) *CLI {
	return &CLI{
		out:     out,
		build:   buildFromEnv,
		initLog: initLogger,
		isTTY: func() bool {
			f, ok := out.(*os.File)
			return ok && isatty.IsTerminal(f.Fd())
		},
	}
}

// RootCommand creates the root cobra command with all subcommands registered
func (c *CLI) RootCommand() *cobra.Command {
	bi := version.Info()
	root := &cobra.Command{
		Use:           "forgectl",
		Short:         "Query GitHub, GitLab, Forgejo, SourceHut and FlakeHub through one interface",
		Version:       bi.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch c.output {
			case outputAuto, outputText, outputJSON:
			default:
				return usageErrorf("unknown output format %q (want auto, text or json)", c.output)
			}
			if c.initLog != nil {
				c.initLog(c.verbose)
			}
			return nil
		},
	}
	root.SetVersionTemplate("forgectl " + bi.Version + "\ncommit: " + bi.Commit + "\nbuilt: " + bi.Date + "\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&c.output, "output", "o", outputAuto, "output format: auto, text or json")
	pf.DurationVar(&c.timeout, "timeout", 30*time.Second, "overall deadline for one command")
	pf.BoolVar(&c.noProbe, "no-probe", false, "disable active probing during discovery")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "debug logging and full error causes")

	root.AddCommand(c.discoverCommand())
	root.AddCommand(c.getCommand())
	root.AddCommand(c.forgesCommand())

	return root
}

// jsonOutput reports whether results are printed as JSON
func (c *CLI) jsonOutput() bool {
	switch c.output {
	case outputJSON:
		return true
	case outputText:
		return false
	default:
		return c.isTTY == nil || !c.isTTY()
	}
}

func (c *CLI) dispatcher() (*forge.Dispatcher, error) {
	return c.build(!c.noProbe)
}

// buildFromEnv reads FORGE_* exactly like the API does
func buildFromEnv(probe bool) (*forge.Dispatcher, error) {
	o, err := forgekit.FromConfig(config.New())
	if err != nil {
		return nil, err
	}
	if !probe {
		o.Probe = false
	}
	return forgekit.Build(o)
}

// initLogger sends logs to stderr; quiet unless verbose or LOG_LEVEL says otherwise
func initLogger(verbose bool) {
	opt := logger.FromEnv()
	opt.Writer = os.Stderr
	switch {
	case verbose:
		opt.Level = "debug"
	case os.Getenv("LOG_LEVEL") == "":
		opt.Level = "warn"
	}
	logger.Init(opt)
}
