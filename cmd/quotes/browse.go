package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/view"
)

const browseHelp = `n next page | p previous page | t toggle top | f <tag> filter | r reset
l <id> like | a add | e <id> edit | s <tags> suggest tags | h help | q quit`

func newBrowseCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse quotes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := &browser{
				ctrl: view.NewController(c.api, c.logger),
				in:   bufio.NewScanner(cmd.InOrStdin()),
				out:  cmd.OutOrStdout(),
			}

			return b.run(cmd.Context())
		},
	}
}

// browser is a line-oriented front end over view.Controller.
type browser struct {
	ctrl *view.Controller
	in   *bufio.Scanner
	out  io.Writer
}

func (b *browser) run(ctx context.Context) error {
	b.report(b.ctrl.Refresh(ctx))
	b.render()
	fmt.Fprintln(b.out, browseHelp)

	for {
		line, ok := b.prompt("> ")
		if !ok {
			return b.in.Err()
		}

		verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)

		switch verb {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "h", "help", "?":
			fmt.Fprintln(b.out, browseHelp)
			continue
		case "n":
			b.report(b.ctrl.NextPage(ctx))
		case "p":
			b.report(b.ctrl.PrevPage(ctx))
		case "t":
			b.report(b.ctrl.ToggleTop(ctx))
		case "f":
			b.ctrl.SetFilterInput(arg)
			b.report(b.ctrl.ApplyFilter(ctx))
		case "r":
			b.report(b.ctrl.ResetFilter(ctx))
		case "l":
			if id, err := parseID(arg); b.report(err) {
				b.report(b.ctrl.Like(ctx, id))
			}
		case "a":
			b.add(ctx)
		case "e":
			if id, err := parseID(arg); b.report(err) {
				b.edit(ctx, id)
			}
		case "s":
			b.suggest(ctx, arg)
			continue
		default:
			fmt.Fprintf(b.out, "unknown command %q, h for help\n", verb)
			continue
		}

		b.render()
	}
}

func (b *browser) add(ctx context.Context) {
	content, ok := b.prompt("content: ")
	if !ok {
		return
	}
	author, _ := b.prompt("author: ")
	tags, _ := b.prompt("tags (comma separated): ")

	b.ctrl.OpenAdd()
	defer b.ctrl.CloseAdd()

	b.hint(b.ctrl.SetDraft(ctx, view.Draft{Content: content, Author: author, Tags: tags}))
	b.report(b.ctrl.SubmitAdd(ctx))
}

func (b *browser) edit(ctx context.Context, id int64) {
	q, found := b.shown(id)
	if !found {
		fmt.Fprintf(b.out, "quote %d is not on screen\n", id)
		return
	}

	b.ctrl.OpenEdit(q)
	defer b.ctrl.CloseEdit()

	content := b.promptDefault("content", q.Content)
	author := b.promptDefault("author", q.Author)
	tags := b.promptDefault("tags", strings.Join(q.TagNames(), ", "))

	b.hint(b.ctrl.SetEdit(ctx, content, author, tags))
	b.report(b.ctrl.SubmitEdit(ctx))
}

// suggest fills the add form's tag field so matches show as they would
// while typing tags.
func (b *browser) suggest(ctx context.Context, tags string) {
	draft := b.ctrl.State().Draft
	draft.Tags = tags

	if !b.report(b.ctrl.SetDraft(ctx, draft)) {
		return
	}

	suggestions := b.ctrl.State().Suggestions
	if len(suggestions) == 0 {
		fmt.Fprintln(b.out, "no matching tags")
		return
	}

	fmt.Fprintln(b.out, strings.Join(suggestions, "  "))
}

func (b *browser) shown(id int64) (domain.Quote, bool) {
	for _, q := range b.ctrl.State().Quotes {
		if q.ID == id {
			return q, true
		}
	}

	return domain.Quote{}, false
}

func (b *browser) render() {
	s := b.ctrl.State()

	switch {
	case s.TopMode:
		fmt.Fprintf(b.out, "\n== Top %d ==\n", view.TopCount)
	case s.Filter != "":
		fmt.Fprintf(b.out, "\n== Tagged %q ==\n", s.Filter)
	default:
		fmt.Fprintf(b.out, "\n== Page %d ==\n", s.Page)
	}

	_ = printQuotes(b.out, s.Quotes, false)

	if s.ShowPagination() {
		prev := "p previous"
		if !s.CanGoBack() {
			prev = "(first page)"
		}
		fmt.Fprintf(b.out, "%s | n next\n", prev)
	}
}

func (b *browser) prompt(label string) (string, bool) {
	fmt.Fprint(b.out, label)
	if !b.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(b.in.Text()), true
}

// promptDefault keeps current when the answer is blank.
func (b *browser) promptDefault(label, current string) string {
	answer, ok := b.prompt(fmt.Sprintf("%s [%s]: ", label, current))
	if !ok || answer == "" {
		return current
	}

	return answer
}

// report prints err and tells the caller whether to carry on.
func (b *browser) report(err error) bool {
	if err == nil {
		return true
	}

	fmt.Fprintf(b.out, "error: %v\n", err)

	return false
}

// hint reports a failed tag suggestion lookup. The form is already filled
// in, so the caller goes on and submits it.
func (b *browser) hint(err error) {
	if err != nil {
		fmt.Fprintf(b.out, "no tag suggestions: %v\n", err)
	}
}
