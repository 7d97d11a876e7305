// propctl resolves typed project properties from a properties file and
// command-line overrides, the same way a build script would.
package main

import (
	"errors"
	"os"
	"time"

	"github.com/lixenwraith/property"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	file    string
	format  string
	props   []string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "propctl",
		Short:         "Resolve typed project properties",
		Long:          "Resolve typed values from a properties file, with -Pkey=value overrides taking precedence.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "gradle.properties", "properties file (.properties, .toml, .yaml, .json)")
	flags.StringVar(&opts.format, "input-format", "", "force the properties file format")
	flags.StringArrayVarP(&opts.props, "prop", "P", nil, "project property override as key=value (repeatable)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log how sources were loaded")

	root.AddCommand(newGetCmd(opts), newDumpCmd(opts), newKindsCmd())
	return root
}

// snapshot loads the file and the -P overrides
func (o *rootOptions) snapshot(cmd *cobra.Command) (*property.Snapshot, error) {
	args := make([]string, 0, len(o.props))
	for _, p := range o.props {
		args = append(args, "-P"+p)
	}

	level := zerolog.WarnLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Str("component", "propctl").
		Logger()

	snap, err := property.NewBuilder().
		WithFile(o.file).
		WithFormat(o.format).
		WithArgs(args).
		WithLogger(logger).
		Build()
	if errors.Is(err, property.ErrConfigNotFound) {
		return snap, nil
	}
	return snap, err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		logger.Error().Err(err).Msg("propctl failed")
		os.Exit(1)
	}
}
