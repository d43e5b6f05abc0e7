// Package cli implements the dotx command line.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-utils/dot"
	"github.com/hasbyte1/go-utils/internal/config"
	"github.com/hasbyte1/go-utils/internal/logging"
)

// Build information, set with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// flags holds the raw command-line values before they are merged over the
// loaded configuration.
type flags struct {
	verbosity  int
	configPath string
	from       string
	to         string
	format     string
	separator  string
	strict     bool
	keepEmpty  bool
	coerceKeys bool
}

// app is the state shared by every subcommand once PersistentPreRunE has
// run.
type app struct {
	flags flags
	cfg   *config.Config
	dot   *dot.Flattener
	log   zerolog.Logger
}

// NewRootCmd builds the dotx command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dotx",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.CountVarP(&a.flags.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.StringVar(&a.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/dotx/config.toml)")
	pf.StringVarP(&a.flags.from, "from", "f", "", "input format: json, yaml, toml or hcl")
	pf.StringVarP(&a.flags.to, "to", "t", "", "output format: json, yaml or toml")
	pf.StringVar(&a.flags.format, "format", "", `output layout: "doc" or "list"`)
	pf.StringVarP(&a.flags.separator, "separator", "s", "", `path separator (default ".")`)
	pf.BoolVar(&a.flags.strict, "strict", false, "reject malformed paths and conflicting keys")
	pf.BoolVar(&a.flags.keepEmpty, "keep-empty", false, "keep empty mappings as leaves when flattening")
	pf.BoolVar(&a.flags.coerceKeys, "coerce-keys", false, "stringify non-string keys instead of failing")

	root.AddCommand(
		a.newFlattenCmd(),
		a.newUnflattenCmd(),
		a.newGetCmd(),
		a.newDigestCmd(),
		newVersionCmd(),
	)

	initTemplateFormatting(root)
	return root
}

// setup configures logging and resolves the effective configuration:
// defaults, config file, environment, then explicitly set flags.
func (a *app) setup(cmd *cobra.Command) error {
	logging.SetupLoggerTo(cmd.ErrOrStderr(), a.flags.verbosity)
	a.log = logging.GetLogger("cli")

	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if changed("from") {
		cfg.From = a.flags.from
	}
	if changed("to") {
		cfg.To = a.flags.to
	}
	if changed("format") {
		cfg.Format = a.flags.format
	}
	if changed("separator") {
		cfg.Separator = a.flags.separator
	}
	if changed("strict") {
		cfg.Strict = a.flags.strict
	}
	if changed("keep-empty") {
		cfg.KeepEmpty = a.flags.keepEmpty
	}
	if changed("coerce-keys") {
		cfg.CoerceKeys = a.flags.coerceKeys
	}
	if changed("verbose") {
		cfg.Verbosity = a.flags.verbosity
	} else if cfg.Verbosity != a.flags.verbosity {
		logging.SetupLoggerTo(cmd.ErrOrStderr(), cfg.Verbosity)
		a.log = logging.GetLogger("cli")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.dot = dot.New(cfg.Options())
	a.log.Debug().
		Str("command", cmd.Name()).
		Str("config", cfg.Source).
		Str("separator", cfg.Separator).
		Bool("strict", cfg.Strict).
		Msg("Command started")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dotx version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}
