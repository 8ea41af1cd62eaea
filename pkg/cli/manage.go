package cli

import (
	"context"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

func cmdCreate() *cli.Command {
	var be backends
	var name, nickname, description string

	flags := joinFlags(be.Flags(), []cli.Flag{
		&cli.StringFlag{
			Name:        "name",
			Usage:       "Display name for the new list",
			Required:    true,
			Destination: &name,
		},
		&cli.StringFlag{
			Name:        "nickname",
			Usage:       "Mail nickname (the local part of the address)",
			Required:    true,
			Destination: &nickname,
		},
		&cli.StringFlag{
			Name:        "description",
			Usage:       "Description for the new list",
			Destination: &description,
		},
	})

	return &cli.Command{
		Name:  "create",
		Usage: "Create a new distribution list",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}

			dl, err := uc.CreateList(ctx, name, nickname, description)
			if err != nil {
				return err
			}
			pterm.Success.Printf("Created %s (%s)\n", dl.DisplayName, dl.ID)
			return nil
		},
	}
}

func cmdUpdate() *cli.Command {
	var be backends
	var name, nickname, description string

	flags := joinFlags(be.Flags(), []cli.Flag{
		&cli.StringFlag{
			Name:        "name",
			Usage:       "New display name",
			Destination: &name,
		},
		&cli.StringFlag{
			Name:        "nickname",
			Usage:       "New mail nickname",
			Destination: &nickname,
		},
		&cli.StringFlag{
			Name:        "description",
			Usage:       "New description",
			Destination: &description,
		},
	})

	return &cli.Command{
		Name:      "update",
		Usage:     "Update a distribution list's properties",
		ArgsUsage: "<list-id-or-email>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("exactly one list identifier is required")
			}

			var update model.ListUpdate
			if c.IsSet("name") {
				update.DisplayName = &name
			}
			if c.IsSet("nickname") {
				update.MailNickname = &nickname
			}
			if c.IsSet("description") {
				update.Description = &description
			}
			if update.IsEmpty() {
				return goerr.New("nothing to update: set --name, --nickname or --description")
			}

			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}

			dl, err := resolveList(ctx, uc, c.Args().First())
			if err != nil {
				return err
			}
			if err := uc.UpdateList(ctx, dl.ID, update); err != nil {
				return err
			}
			pterm.Success.Printf("Updated %s\n", dl.Mail)
			return nil
		},
	}
}

func cmdDelete() *cli.Command {
	var be backends
	var force bool

	flags := joinFlags(be.Flags(), []cli.Flag{
		&cli.BoolFlag{
			Name:        "force",
			Usage:       "Skip the confirmation prompt",
			Destination: &force,
		},
	})

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a distribution list",
		ArgsUsage: "<list-id-or-email>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("exactly one list identifier is required")
			}

			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}

			dl, err := resolveList(ctx, uc, c.Args().First())
			if err != nil {
				return err
			}

			if !force {
				ok, _ := pterm.DefaultInteractiveConfirm.
					WithDefaultText("Delete " + dl.DisplayName + " (" + dl.Mail.String() + ")?").
					Show()
				if !ok {
					pterm.Info.Println("Aborted.")
					return nil
				}
			}

			if err := uc.DeleteList(ctx, dl.ID); err != nil {
				return err
			}
			pterm.Success.Printf("Deleted %s\n", dl.Mail)
			return nil
		},
	}
}
