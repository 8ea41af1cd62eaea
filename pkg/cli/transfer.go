package cli

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/entraops/dlman/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// readEmailColumn reads the first column of a CSV file as email
// addresses. A leading "email" header row is tolerated and skipped.
func readEmailColumn(path string) ([]types.EmailAddress, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open CSV file", goerr.V("path", path))
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var emails []types.EmailAddress
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse CSV", goerr.V("path", path))
		}
		if len(record) == 0 {
			continue
		}
		value := strings.TrimSpace(record[0])
		if value == "" || strings.EqualFold(value, "email") {
			continue
		}
		emails = append(emails, types.EmailAddress(value))
	}
	return emails, nil
}

// readPlan reads a column-per-list CSV: the header row holds list SMTP
// addresses, each column below holds that list's desired members
func readPlan(path string) ([]usecase.ImportList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open CSV file", goerr.V("path", path))
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, goerr.New("CSV is empty", goerr.V("path", path))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse CSV", goerr.V("path", path))
	}

	// Column index -> plan index; columns without a list address in the
	// header are ignored entirely
	columns := make(map[int]int)
	var plan []usecase.ImportList
	for col, cell := range header {
		listMail := strings.TrimSpace(cell)
		if !strings.Contains(listMail, "@") {
			continue
		}
		columns[col] = len(plan)
		plan = append(plan, usecase.ImportList{ListEmail: types.EmailAddress(listMail)})
	}
	if len(plan) == 0 {
		return nil, goerr.New("CSV header contains no list addresses", goerr.V("path", path))
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse CSV", goerr.V("path", path))
		}
		for col, cell := range record {
			i, ok := columns[col]
			if !ok {
				continue
			}
			if member := strings.TrimSpace(cell); member != "" {
				plan[i].Members = append(plan[i].Members, types.EmailAddress(member))
			}
		}
	}
	return plan, nil
}

func writeExport(w io.Writer, entries []*usecase.ExportEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"list_email", "member_email", "member_name", "member_type"}); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}
	for _, entry := range entries {
		for _, m := range entry.Members {
			record := []string{
				entry.List.Mail.String(),
				m.Email.String(),
				m.DisplayName,
				string(m.Type),
			}
			if err := cw.Write(record); err != nil {
				return goerr.Wrap(err, "failed to write CSV record")
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func cmdImport() *cli.Command {
	var be backends

	return &cli.Command{
		Name:      "import",
		Usage:     "Add members to a list from a CSV file, skipping existing ones",
		ArgsUsage: "<list-id-or-email> <csv-file>",
		Flags:     be.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 2 {
				return goerr.New("a list identifier and a CSV file are required")
			}

			emails, err := readEmailColumn(c.Args().Get(1))
			if err != nil {
				return err
			}
			if len(emails) == 0 {
				return goerr.New("CSV contains no email addresses")
			}

			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}
			dl, err := resolveList(ctx, uc, c.Args().First())
			if err != nil {
				return err
			}

			report, stop := progressBar("Importing members")
			summary, err := uc.ImportMembers(ctx, dl.ID, emails, report)
			stop()
			if err != nil {
				return err
			}

			renderBulkResult("Imported", summary.Result)
			if n := len(summary.SkippedExisting); n > 0 {
				pterm.Info.Printf("Skipped %d existing member(s)\n", n)
			}
			for _, bad := range summary.SkippedInvalid {
				pterm.Warning.Printf("Skipped invalid address: %s\n", bad)
			}
			return nil
		},
	}
}

func cmdExport() *cli.Command {
	var be backends
	var output string

	flags := joinFlags(be.Flags(), []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file (default stdout)",
			Destination: &output,
		},
	})

	return &cli.Command{
		Name:      "export",
		Usage:     "Export memberships as CSV, for one list or the whole tenant",
		ArgsUsage: "[list-id-or-email]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}

			var entries []*usecase.ExportEntry
			if c.Args().Len() > 0 {
				dl, err := resolveList(ctx, uc, c.Args().First())
				if err != nil {
					return err
				}
				entry, err := uc.ExportMembers(ctx, dl.ID)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
			} else {
				report, stop := progressBar("Building membership cache")
				entries, err = uc.ExportAll(ctx, report)
				stop()
				if err != nil {
					return err
				}
			}

			w := io.Writer(os.Stdout)
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
				}
				defer f.Close()
				w = f
			}
			if err := writeExport(w, entries); err != nil {
				return err
			}
			if output != "" {
				pterm.Success.Printf("Exported %d list(s) to %s\n", len(entries), output)
			}
			return nil
		},
	}
}

func cmdClearImport() *cli.Command {
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
		Name:      "clear-import",
		Usage:     "Replace list memberships from a column-per-list CSV",
		ArgsUsage: "<csv-file>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("exactly one CSV file is required")
			}

			plan, err := readPlan(c.Args().First())
			if err != nil {
				return err
			}

			if !force {
				ok, _ := pterm.DefaultInteractiveConfirm.
					WithDefaultText("Replace the full membership of " +
						pterm.Sprintf("%d list(s)?", len(plan))).
					Show()
				if !ok {
					pterm.Info.Println("Aborted.")
					return nil
				}
			}

			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}

			report, stop := progressBar("Replacing memberships")
			summary, err := uc.ClearAndImport(ctx, plan, report)
			stop()
			if err != nil {
				return err
			}

			renderBulkResult("Removed", summary.Removed)
			renderBulkResult("Added", summary.Added)
			return nil
		},
	}
}
