package common

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var ErrMissingArgument = errors.New("missing argument")

func RequireArg(ctx *cli.Context, name string) (string, error) {
	value := ctx.Args().First()
	if value == "" {
		return "", errors.Wrapf(ErrMissingArgument, "expected <%s>", name)
	}

	return value, nil
}
