package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"batbroom/internal/catalog"
	"batbroom/internal/config"
	"batbroom/internal/logging"
)

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	configFile string
	cfg        config.Config
	logger     *log.Logger
	catalog    *catalog.Catalog
}

func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "batbroom",
		Short: "batbroom 🧹 - sweep Windows temporary files",
		Long:  "batbroom 🧹 removes temporary files, caches, crash dumps and history from a catalog of well-known locations.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage: true,
	}
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is "+config.Dir()+"/batbroom.yaml)")
	flags.String("catalog", "", "YAML catalog replacing the built-in locations")
	flags.String("log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
	flags.String("lock-file", "", "lock file guarding against concurrent runs")
	_ = flags.MarkHidden("lock-file")

	rootCmd.AddCommand(newCleanCmd(a), newListCmd(a))
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd, a.configFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	c := catalog.Default()
	if cfg.Catalog != "" {
		c, err = catalog.Load(afero.NewOsFs(), cfg.Catalog)
		if err != nil {
			return err
		}
		logger.Debug("loaded catalog", "path", cfg.Catalog, "entries", c.Len())
	}

	a.cfg = cfg
	a.logger = logger
	a.catalog = c
	return nil
}

// selectionFlags are the flags shared by commands that pick entries.
type selectionFlags struct {
	all      bool
	sections []string
	entries  []string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.all, "all", false, "select every catalog entry")
	cmd.Flags().StringArrayVarP(&f.sections, "section", "s", nil, "select every entry of a section (repeatable)")
	cmd.Flags().StringArrayVarP(&f.entries, "entry", "e", nil, "select an entry by its description (repeatable)")
}

func (f *selectionFlags) build(c *catalog.Catalog) (catalog.Selection, error) {
	if f.all {
		return catalog.SelectAll(c), nil
	}
	sel := catalog.NewSelection()
	for _, name := range f.sections {
		if err := sel.SelectSection(c, name); err != nil {
			return nil, err
		}
	}
	for _, description := range f.entries {
		if err := sel.SelectDescription(c, description); err != nil {
			return nil, err
		}
	}
	return sel, nil
}
