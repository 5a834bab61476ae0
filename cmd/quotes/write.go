package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/view"
)

func newAddCmd(c *cli) *cobra.Command {
	var draft view.Draft

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Add a quote, optionally tagged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft.Content = args[0]

			created, err := view.CreateWithTags(cmd.Context(), c.api, draft)
			if created != nil {
				if printErr := printQuotes(cmd.OutOrStdout(), []domain.Quote{*created}, c.asJSON); printErr != nil {
					return printErr
				}
			}

			return err
		},
	}

	cmd.Flags().StringVarP(&draft.Author, "author", "a", "", "who said it")
	cmd.Flags().StringVarP(&draft.Tags, "tags", "t", "", "comma separated tags")

	return cmd
}

func newEditCmd(c *cli) *cobra.Command {
	var content, author string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the content or author of a quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var patch domain.QuotePatch
			if cmd.Flags().Changed("content") {
				patch.Content = &content
			}
			if cmd.Flags().Changed("author") {
				patch.Author = &author
			}

			if patch.IsEmpty() {
				return fmt.Errorf("nothing to change: pass --content or --author")
			}

			if err := c.api.PatchQuote(cmd.Context(), id, patch); err != nil {
				return err
			}

			q, err := c.api.GetQuote(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printQuotes(cmd.OutOrStdout(), []domain.Quote{*q}, c.asJSON)
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "new quote text")
	cmd.Flags().StringVar(&author, "author", "", "new author")

	return cmd
}

func newLikeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "like <id>",
		Short: "Like a quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			q, err := c.api.LikeQuote(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printQuotes(cmd.OutOrStdout(), []domain.Quote{*q}, c.asJSON)
		},
	}
}

func newTagCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <id> <name>",
		Short: "Attach a tag to a quote, creating the tag if needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			q, err := c.api.AttachTag(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}

			return printQuotes(cmd.OutOrStdout(), []domain.Quote{*q}, c.asJSON)
		},
	}
}

func newUntagCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "untag <id> <tag-id>",
		Short: "Remove a tag from a quote",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			tagID, err := parseID(args[1])
			if err != nil {
				return err
			}

			q, err := c.api.DetachTag(cmd.Context(), id, tagID)
			if err != nil {
				return err
			}

			return printQuotes(cmd.OutOrStdout(), []domain.Quote{*q}, c.asJSON)
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}

	return id, nil
}
