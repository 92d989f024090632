// Package cli implements the esmap command line.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/esmap/internal/config"
	"github.com/reoring/esmap/internal/logger"
	"github.com/reoring/esmap/mapping"
)

// app carries state shared by every command of one invocation.
type app struct {
	configPath string
	logLevel   string
	logPretty  bool

	cfg config.Config
	log *logger.Logger

	// per-command flags
	mappingPath string
	typeName    string
	prefix      string
	postfix     string
	plural      []string
}

// NewRootCommand builds the esmap command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "esmap",
		Short:         "Project Elasticsearch mappings into typed schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to an esmap YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.logPretty, "log-pretty", false, "Human readable logs")

	root.AddCommand(
		newProjectCommand(a),
		newRehydrateCommand(a),
		newResolveCommand(a),
		newInspectCommand(a),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error { return NewRootCommand().Execute() }

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-pretty") {
		cfg.Log.Pretty = a.logPretty
	}
	if flags.Changed("type") {
		cfg.TypeName = a.typeName
	}
	if flags.Changed("prefix") {
		cfg.Prefix = a.prefix
	}
	if flags.Changed("postfix") {
		cfg.Postfix = a.postfix
	}
	if flags.Changed("plural") {
		cfg.PluralFields = a.plural
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty, Output: cmd.ErrOrStderr()})
	return nil
}

func (a *app) mappingFlags(cmd *cobra.Command, projection bool) {
	cmd.Flags().StringVarP(&a.mappingPath, "mapping", "m", "", "Path to the mapping (.json, .yaml or .yml)")
	_ = cmd.MarkFlagRequired("mapping")
	if !projection {
		return
	}
	cmd.Flags().StringVarP(&a.typeName, "type", "t", config.DefaultTypeName, "Name of the output type")
	cmd.Flags().StringVar(&a.prefix, "prefix", "", "Prefix of every generated type name")
	cmd.Flags().StringVar(&a.postfix, "postfix", "", "Postfix of every generated type name")
	cmd.Flags().StringSliceVar(&a.plural, "plural", nil, "Dotted paths of fields holding several values")
}

func (a *app) loadMapping(cmd *cobra.Command) (*mapping.Node, error) {
	data, err := readInput(cmd, a.mappingPath)
	if err != nil {
		return nil, err
	}
	var (
		root *mapping.Node
		diag mapping.Diag
	)
	switch strings.ToLower(filepath.Ext(a.mappingPath)) {
	case ".yaml", ".yml":
		root, diag, err = mapping.ParseYAML(data, a.cfg.MappingOptions())
	default:
		root, diag, err = mapping.ParseJSON(data, a.cfg.MappingOptions())
	}
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", a.mappingPath, err)
	}
	if diag != nil && diag.HasWarnings() {
		a.log.Component("mapping").LogWarnings(a.mappingPath, diag.Warnings())
	}
	return root, nil
}

// readInput reads a file, or the command input for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return readAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
