package common

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/kirsle/configdir"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"github.com/wagner1975/eezycollectionz/pkg/client"
)

// AppName names the per-user configuration directory of the CLI.
const AppName = "eezycollectionz"

const (
	paramConfig   = "config"
	paramServer   = "server"
	paramUsername = "username"
	paramPassword = "password"
	paramPage     = "page"
	paramSize     = "size"
	paramSort     = "sort"
	paramJSON     = "json"
)

var (
	flagConfig = &cli.StringFlag{
		Name:    paramConfig,
		Aliases: []string{"c"},
		EnvVars: []string{"EEZYCOLLECTIONZ_CLI_CONFIG"},
		Value:   DefaultConfigPath(),
		Usage:   "YAML file providing default flag values",
	}
	flagServer = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		Value:   "http://localhost:3002",
		EnvVars: []string{"EEZYCOLLECTIONZ_CLI_SERVER"},
		Usage:   "Server base url",
	})
	flagUsername = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramUsername,
		EnvVars: []string{"EEZYCOLLECTIONZ_CLI_USERNAME"},
		Usage:   "Basic auth username",
	})
	flagPassword = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramPassword,
		EnvVars: []string{"EEZYCOLLECTIONZ_CLI_PASSWORD"},
		Usage:   "Basic auth password",
	})
	flagJSON = &cli.BoolFlag{
		Name:  paramJSON,
		Usage: "Print raw JSON records",
	}
)

// WithCommonFlags prepends the connection flags. Their values can also be
// read from the YAML file given with --config.
func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagConfig,
		flagServer,
		flagUsername,
		flagPassword,
		flagJSON,
	}, flags...)
}

// DefaultConfigPath returns the cli.yaml file of the user configuration
// directory, e.g. ~/.config/eezycollectionz/cli.yaml on Linux.
func DefaultConfigPath() string {
	return filepath.Join(configdir.LocalConfig(AppName), "cli.yaml")
}

// LoadConfig reads flag values from the --config YAML file. A missing file
// is only an error when the path was given explicitly.
func LoadConfig(ctx *cli.Context) error {
	path := ctx.String(paramConfig)
	if path == "" {
		return nil
	}

	if !ctx.IsSet(paramConfig) {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}

	return errors.WithStack(altsrc.InitInputSourceWithContext(ctx.Command.Flags, altsrc.NewYamlSourceFromFlagFunc(paramConfig))(ctx))
}

func WithListFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&cli.IntFlag{
			Name:  paramPage,
			Value: 0,
			Usage: "Zero-based page number",
		},
		&cli.IntFlag{
			Name:  paramSize,
			Value: 20,
			Usage: "Page size",
		},
		&cli.StringSliceFlag{
			Name:  paramSort,
			Usage: "Sort order, as 'field[,asc|desc]' (fields: name, createdAt, lastModifiedAt)",
		},
	}, flags...)
}

func GetListOptions(ctx *cli.Context) []client.ListOptionFunc {
	return []client.ListOptionFunc{
		client.WithPage(ctx.Int(paramPage)),
		client.WithSize(ctx.Int(paramSize)),
		client.WithSort(ctx.StringSlice(paramSort)...),
	}
}

func PrintJSON(ctx *cli.Context) bool {
	return ctx.Bool(paramJSON)
}

func GetClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	funcs := []client.OptionFunc{
		client.WithBaseURL(serverURL),
	}

	if username := ctx.String(paramUsername); username != "" {
		funcs = append(funcs, client.WithBasicAuth(username, ctx.String(paramPassword)))
	}

	return client.New(funcs...), nil
}
