package cli

import (
	"context"
	"fmt"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

func renderLists(lists []*model.List) {
	if len(lists) == 0 {
		pterm.Info.Println("No distribution lists found.")
		return
	}
	table := pterm.TableData{{"ID", "NAME", "MAIL", "DESCRIPTION"}}
	for _, l := range lists {
		table = append(table, []string{l.ID.String(), l.DisplayName, l.Mail.String(), l.Description})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(table).Render()
}

func cmdList() *cli.Command {
	var be backends

	return &cli.Command{
		Name:  "list",
		Usage: "List all distribution lists in the tenant",
		Flags: be.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}

			lists, err := uc.ListAll(ctx)
			if err != nil {
				return err
			}
			renderLists(lists)
			return nil
		},
	}
}

func cmdShow() *cli.Command {
	var be backends

	return &cli.Command{
		Name:      "show",
		Usage:     "Show a distribution list and its members",
		ArgsUsage: "<list-id-or-email>",
		Flags:     be.Flags(),
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
			members, err := uc.GetMembers(ctx, dl.ID)
			if err != nil {
				return err
			}

			pterm.DefaultSection.Println(dl.DisplayName)
			pterm.Printf("ID:          %s\n", dl.ID)
			pterm.Printf("Mail:        %s\n", dl.Mail)
			if dl.Description != "" {
				pterm.Printf("Description: %s\n", dl.Description)
			}
			pterm.Printf("Members:     %d\n", len(members))
			pterm.Println()

			if len(members) == 0 {
				return nil
			}
			table := pterm.TableData{{"NAME", "EMAIL", "TYPE"}}
			for _, m := range members {
				table = append(table, []string{m.DisplayName, m.Email.String(), string(m.Type)})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(table).Render()
		},
	}
}

func cmdSearch() *cli.Command {
	var be backends

	return &cli.Command{
		Name:      "search",
		Usage:     "Search distribution lists by name or mail prefix",
		ArgsUsage: "<query>",
		Flags:     be.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("exactly one query is required")
			}

			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}

			lists, err := uc.Search(ctx, c.Args().First())
			if err != nil {
				return err
			}
			renderLists(lists)
			return nil
		},
	}
}

func cmdMemberships() *cli.Command {
	var be backends

	return &cli.Command{
		Name:      "memberships",
		Usage:     "Show which distribution lists an address belongs to",
		ArgsUsage: "<email>",
		Flags:     be.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("exactly one email address is required")
			}

			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}

			report, stop := progressBar("Scanning memberships")
			lists, err := uc.GetUserMemberships(ctx, types.EmailAddress(c.Args().First()), report)
			stop()
			if err != nil {
				return err
			}

			if len(lists) == 0 {
				pterm.Info.Printf("%s is not a member of any distribution list.\n", c.Args().First())
				return nil
			}
			renderLists(lists)
			return nil
		},
	}
}

func cmdFind() *cli.Command {
	var be backends
	var partial bool

	flags := joinFlags(be.Flags(), []cli.Flag{
		&cli.BoolFlag{
			Name:        "partial",
			Usage:       "Match the term as a substring instead of a whole address",
			Destination: &partial,
		},
	})

	return &cli.Command{
		Name:      "find",
		Usage:     "Find an email address across all list memberships",
		ArgsUsage: "<email-or-fragment>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("exactly one search term is required")
			}

			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}

			report, stop := progressBar("Building membership cache")
			matches, err := uc.FindEmailAcrossAllLists(ctx, c.Args().First(), partial, report)
			stop()
			if err != nil {
				return err
			}

			if len(matches) == 0 {
				pterm.Info.Println("No memberships matched.")
				return nil
			}
			table := pterm.TableData{{"LIST", "LIST MAIL", "MATCHED EMAIL"}}
			for _, match := range matches {
				table = append(table, []string{
					match.List.DisplayName,
					match.List.Mail.String(),
					match.Email.String(),
				})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(table).Render(); err != nil {
				return err
			}
			fmt.Printf("%d list(s) matched\n", len(matches))
			return nil
		},
	}
}
