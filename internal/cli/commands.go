package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/buildinfo"
	"github.com/dmitrijs2005/guestbook/internal/guestbook"
	"github.com/dmitrijs2005/guestbook/internal/services"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const dateLayout = "2006-01-02 15:04"

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *App) migrate(ctx context.Context) error {
	if err := a.repomanager.RunMigrations(ctx, a.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	fmt.Fprintln(a.out, "Schema is up to date")
	return nil
}

func (a *App) sign(ctx context.Context, args []string) error {
	var name, text, email string

	fs := newFlagSet("sign")
	fs.StringVar(&name, "name", "", "author name")
	fs.StringVar(&text, "text", "", "entry text")
	fs.StringVar(&email, "email", "", "author email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := a.entryService.Sign(ctx, name, text, email)
	if err != nil {
		return err
	}

	id, _ := e.ID()
	fmt.Fprintf(a.out, "Entry #%d saved\n", id)
	return nil
}

func (a *App) importEntries(ctx context.Context, args []string) error {
	var path string

	fs := newFlagSet("import")
	fs.StringVar(&path, "file", "", "JSON file with an array of {name, text, email, date}")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("import: -file is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var records []services.ImportRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	created, err := a.entryService.Import(ctx, records)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Imported %d entries\n", len(created))
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	var page int

	fs := newFlagSet("list")
	fs.IntVar(&page, "page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := a.entryService.List(ctx, page)
	if err != nil {
		return err
	}

	renderPage(a.out, p)
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	id, err := parseID("show", args)
	if err != nil {
		return err
	}

	e, err := a.entryService.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "ID:     %d\n", id)
	fmt.Fprintf(a.out, "Name:   %s\n", e.Name())
	fmt.Fprintf(a.out, "Email:  %s\n", e.Email())
	fmt.Fprintf(a.out, "Date:   %s\n", e.Date().Format(time.RFC3339))
	if edited, ok := e.LastEditDate(); ok {
		fmt.Fprintf(a.out, "Edited: %s\n", edited.Format(time.RFC3339))
	}
	fmt.Fprintf(a.out, "\n%s\n", e.Text())
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := parseID("delete", args)
	if err != nil {
		return err
	}

	if err := a.entryService.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Entry #%d deleted\n", id)
	return nil
}

func (a *App) version() {
	buildinfo.PrintBuildData(a.out)
}

func parseID(cmd string, args []string) (int64, error) {
	var id int64

	fs := newFlagSet(cmd)
	fs.Int64Var(&id, "id", 0, "entry id")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s: -id must be a positive number", cmd)
	}
	return id, nil
}

func entryRow(e *guestbook.Entry, _ int) []string {
	id, _ := e.ID()
	edited := ""
	if t, ok := e.LastEditDate(); ok {
		edited = t.Format(dateLayout)
	}
	return []string{
		strconv.FormatInt(id, 10),
		e.Date().Format(dateLayout),
		e.Name(),
		e.Email(),
		e.Text(),
		edited,
	}
}

func renderPage(w io.Writer, p *services.Page) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Date", "Name", "Email", "Text", "Edited"})
	table.SetAutoWrapText(true)
	table.AppendBulk(lo.Map(p.Entries, entryRow))
	table.Render()

	fmt.Fprintf(w, "Page %d of %d (%d entries)\n", p.Number, max(p.PageCount, 1), p.TotalEntries)
}
