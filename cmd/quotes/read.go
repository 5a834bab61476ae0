package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/view"
)

func newListCmd(c *cli) *cobra.Command {
	var (
		page     int
		pageSize int
		tag      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotes a page at a time, or those carrying a tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				quotes []domain.Quote
				err    error
			)

			if tag != "" {
				quotes, err = c.api.QuotesByTag(cmd.Context(), tag)
			} else {
				quotes, err = c.api.ListQuotes(cmd.Context(), page, pageSize)
			}
			if err != nil {
				return err
			}

			return printQuotes(cmd.OutOrStdout(), quotes, c.asJSON)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number, from 1")
	cmd.Flags().IntVar(&pageSize, "page-size", view.PageSize, "quotes per page, -1 for all")
	cmd.Flags().StringVar(&tag, "tag", "", "only quotes with this tag, ignoring case")

	return cmd
}

func newTopCmd(c *cli) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the most liked quotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			quotes, err := c.api.TopQuotes(cmd.Context(), count)
			if err != nil {
				return err
			}

			return printQuotes(cmd.OutOrStdout(), quotes, c.asJSON)
		},
	}

	cmd.Flags().IntVar(&count, "count", view.TopCount, "number of quotes")

	return cmd
}

func newRandomCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Print one quote picked at random",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			quotes, err := c.api.ListQuotes(cmd.Context(), 1, -1)
			if err != nil {
				return err
			}

			if len(quotes) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No quotes yet. Add one with 'quotes add'.")
				return err
			}

			picked := quotes[rand.IntN(len(quotes))]

			return printQuotes(cmd.OutOrStdout(), []domain.Quote{picked}, c.asJSON)
		},
	}
}

func newTagsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tags, err := c.api.ListTags(cmd.Context())
			if err != nil {
				return err
			}

			for _, tag := range tags {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", tag.ID, tag.Name); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newSuggestCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <tags>",
		Short: "Suggest existing tags for the last token of a comma separated list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := view.LastToken(args[0])
			if token == "" {
				return nil
			}

			tags, err := c.api.ListTags(cmd.Context())
			if err != nil {
				return err
			}

			for _, name := range view.MatchTags(tags, token) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
