package collection

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/wagner1975/eezycollectionz/internal/command/common"
	"github.com/wagner1975/eezycollectionz/internal/http/handler/api"
)

const (
	flagName = "name"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "collection",
		Usage: "Manage collections",
		Subcommands: []*cli.Command{
			listCommand(),
			getCommand(),
			createCommand(),
			updateCommand(),
			deleteCommand(),
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "List collections",
		Flags:  common.WithCommonFlags(common.WithListFlags()...),
		Before: common.LoadConfig,
		Action: func(ctx *cli.Context) error {
			client, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			page, err := client.ListCollections(ctx.Context, common.GetListOptions(ctx)...)
			if err != nil {
				return errors.Wrap(err, "could not list collections")
			}

			if common.PrintJSON(ctx) {
				return common.WriteJSON(ctx.App.Writer, page)
			}

			table := common.NewTable(ctx.App.Writer, "ID", "NAME", "CREATED", "MODIFIED")
			for _, c := range page.Content {
				table.Row(c.ID, c.Name, common.RelativeTime(c.CreatedAt), common.RelativeTime(c.LastModifiedAt))
			}

			if err := table.Flush(); err != nil {
				return errors.WithStack(err)
			}

			common.PageFooter(ctx.App.Writer, page.Page, page.TotalPages, page.TotalElements)

			return nil
		},
	}
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Show a collection",
		ArgsUsage: "<id>",
		Flags:     common.WithCommonFlags(),
		Before:    common.LoadConfig,
		Action: func(ctx *cli.Context) error {
			id, err := common.RequireArg(ctx, "id")
			if err != nil {
				return errors.WithStack(err)
			}

			client, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			collection, err := client.GetCollection(ctx.Context, id)
			if err != nil {
				return errors.Wrapf(err, "could not get collection '%s'", id)
			}

			return printCollection(ctx, collection)
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a collection",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagName,
				Aliases:  []string{"n"},
				Usage:    "Collection name",
				Required: true,
			},
		),
		Before: common.LoadConfig,
		Action: func(ctx *cli.Context) error {
			client, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			collection, err := client.CreateCollection(ctx.Context, ctx.String(flagName))
			if err != nil {
				return errors.Wrap(err, "could not create collection")
			}

			return printCollection(ctx, collection)
		},
	}
}

func updateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Rename a collection",
		ArgsUsage: "<id>",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagName,
				Aliases:  []string{"n"},
				Usage:    "New collection name",
				Required: true,
			},
		),
		Before: common.LoadConfig,
		Action: func(ctx *cli.Context) error {
			id, err := common.RequireArg(ctx, "id")
			if err != nil {
				return errors.WithStack(err)
			}

			client, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			collection, err := client.UpdateCollection(ctx.Context, id, ctx.String(flagName))
			if err != nil {
				return errors.Wrapf(err, "could not update collection '%s'", id)
			}

			return printCollection(ctx, collection)
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a collection and its entries",
		ArgsUsage: "<id>",
		Flags:     common.WithCommonFlags(),
		Before:    common.LoadConfig,
		Action: func(ctx *cli.Context) error {
			id, err := common.RequireArg(ctx, "id")
			if err != nil {
				return errors.WithStack(err)
			}

			client, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := client.DeleteCollection(ctx.Context, id); err != nil {
				return errors.Wrapf(err, "could not delete collection '%s'", id)
			}

			return nil
		},
	}
}

func printCollection(ctx *cli.Context, collection *api.Collection) error {
	if common.PrintJSON(ctx) {
		return common.WriteJSON(ctx.App.Writer, collection)
	}

	table := common.NewTable(ctx.App.Writer, "ID", "NAME", "CREATED", "MODIFIED")
	table.Row(collection.ID, collection.Name, common.RelativeTime(collection.CreatedAt), common.RelativeTime(collection.LastModifiedAt))

	return table.Flush()
}
