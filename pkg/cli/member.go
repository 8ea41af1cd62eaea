package cli

import (
	"context"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

const errorExcerptLimit = 10

func renderBulkResult(verb string, result *model.BulkResult) {
	if result.FailureCount() == 0 {
		pterm.Success.Printf("%s %d member(s)\n", verb, result.SuccessCount())
		return
	}

	pterm.Warning.Printf("%s %d member(s), %d failed:\n", verb, result.SuccessCount(), result.FailureCount())
	for _, line := range result.ErrorExcerpt(errorExcerptLimit) {
		pterm.Printf("  %s\n", line)
	}
}

func emailArgs(c *cli.Command, from int) []types.EmailAddress {
	args := c.Args().Slice()[from:]
	emails := make([]types.EmailAddress, 0, len(args))
	for _, a := range args {
		emails = append(emails, types.EmailAddress(a))
	}
	return emails
}

func cmdAdd() *cli.Command {
	var be backends

	return &cli.Command{
		Name:      "add",
		Usage:     "Add one or more members to a distribution list",
		ArgsUsage: "<list-id-or-email> <email> [email...]",
		Flags:     be.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() < 2 {
				return goerr.New("a list identifier and at least one email are required")
			}

			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}

			dl, err := resolveList(ctx, uc, c.Args().First())
			if err != nil {
				return err
			}

			emails := emailArgs(c, 1)
			if len(emails) == 1 {
				if err := uc.AddMember(ctx, dl.ID, emails[0]); err != nil {
					return err
				}
				pterm.Success.Printf("Added %s to %s\n", emails[0], dl.Mail)
				return nil
			}

			report, stop := progressBar("Adding members")
			result, err := uc.AddMembersBulk(ctx, dl.ID, emails, report)
			stop()
			if err != nil {
				return err
			}
			renderBulkResult("Added", result)
			return nil
		},
	}
}

func cmdRemove() *cli.Command {
	var be backends

	return &cli.Command{
		Name:      "remove",
		Usage:     "Remove one or more members from a distribution list",
		ArgsUsage: "<list-id-or-email> <email> [email...]",
		Flags:     be.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() < 2 {
				return goerr.New("a list identifier and at least one email are required")
			}

			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}

			dl, err := resolveList(ctx, uc, c.Args().First())
			if err != nil {
				return err
			}

			emails := emailArgs(c, 1)
			if len(emails) == 1 {
				if err := uc.RemoveMember(ctx, dl.ID, emails[0]); err != nil {
					return err
				}
				pterm.Success.Printf("Removed %s from %s\n", emails[0], dl.Mail)
				return nil
			}

			report, stop := progressBar("Removing members")
			result, err := uc.RemoveMembersBulk(ctx, dl.ID, emails, report)
			stop()
			if err != nil {
				return err
			}
			renderBulkResult("Removed", result)
			return nil
		},
	}
}
