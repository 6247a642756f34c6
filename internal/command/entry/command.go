package entry

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/wagner1975/eezycollectionz/internal/command/common"
	"github.com/wagner1975/eezycollectionz/internal/http/handler/api"
)

const (
	flagName       = "name"
	flagCollection = "collection"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "entry",
		Usage: "Manage the entries of a collection",
		Subcommands: []*cli.Command{
			listCommand(),
			getCommand(),
			createCommand(),
			updateCommand(),
			deleteCommand(),
		},
	}
}

func collectionFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     flagCollection,
		Usage:    "Collection ID",
		Required: true,
	}
}

func nameFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     flagName,
		Aliases:  []string{"n"},
		Usage:    "Entry name",
		Required: true,
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "List the entries of a collection",
		Flags:  common.WithCommonFlags(common.WithListFlags(collectionFlag())...),
		Before: common.LoadConfig,
		Action: func(ctx *cli.Context) error {
			client, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			collectionID := ctx.String(flagCollection)

			page, err := client.ListEntries(ctx.Context, collectionID, common.GetListOptions(ctx)...)
			if err != nil {
				return errors.Wrapf(err, "could not list entries of collection '%s'", collectionID)
			}

			if common.PrintJSON(ctx) {
				return common.WriteJSON(ctx.App.Writer, page)
			}

			table := common.NewTable(ctx.App.Writer, "ID", "NAME", "CREATED", "MODIFIED")
			for _, e := range page.Content {
				table.Row(e.ID, e.Name, common.RelativeTime(e.CreatedAt), common.RelativeTime(e.LastModifiedAt))
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
		Usage:     "Show an entry",
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

			entry, err := client.GetEntry(ctx.Context, id)
			if err != nil {
				return errors.Wrapf(err, "could not get entry '%s'", id)
			}

			return printEntry(ctx, entry)
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:   "create",
		Usage:  "Add an entry to a collection",
		Flags:  common.WithCommonFlags(collectionFlag(), nameFlag()),
		Before: common.LoadConfig,
		Action: func(ctx *cli.Context) error {
			client, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			entry, err := client.CreateEntry(ctx.Context, ctx.String(flagCollection), ctx.String(flagName))
			if err != nil {
				return errors.Wrap(err, "could not create entry")
			}

			return printEntry(ctx, entry)
		},
	}
}

func updateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Rename an entry",
		ArgsUsage: "<id>",
		Flags:     common.WithCommonFlags(nameFlag()),
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

			entry, err := client.UpdateEntry(ctx.Context, id, ctx.String(flagName))
			if err != nil {
				return errors.Wrapf(err, "could not update entry '%s'", id)
			}

			return printEntry(ctx, entry)
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete an entry",
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

			if err := client.DeleteEntry(ctx.Context, id); err != nil {
				return errors.Wrapf(err, "could not delete entry '%s'", id)
			}

			return nil
		},
	}
}

func printEntry(ctx *cli.Context, entry *api.Entry) error {
	if common.PrintJSON(ctx) {
		return common.WriteJSON(ctx.App.Writer, entry)
	}

	table := common.NewTable(ctx.App.Writer, "ID", "COLLECTION", "NAME", "CREATED", "MODIFIED")
	table.Row(entry.ID, entry.CollectionID, entry.Name, common.RelativeTime(entry.CreatedAt), common.RelativeTime(entry.LastModifiedAt))

	return table.Flush()
}
