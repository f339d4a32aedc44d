package config

import (
	"flag"
	"io"

	"github.com/pkg/errors"
)

// CliConfig holds the command line options. The config file, when given, is
// layered under BODYLOGGER_* environment variables.
type CliConfig struct {
	ConfigFile string
	Debug      bool
	Version    bool
}

// ParseArgs parses args (without the program name). Usage and parse errors
// are written to output.
func ParseArgs(args []string, output io.Writer) (*CliConfig, error) {
	cli := &CliConfig{}
	fs := flag.NewFlagSet("bodylogger", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cli.ConfigFile, "config", "", "Path to an optional YAML config file")
	fs.BoolVar(&cli.Debug, "d", false, "Log at debug level and run gin in debug mode")
	fs.BoolVar(&cli.Debug, "debug", false, "Log at debug level and run gin in debug mode")
	fs.BoolVar(&cli.Version, "v", false, "Print version and exit")
	fs.BoolVar(&cli.Version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cli, nil
}
