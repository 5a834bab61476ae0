package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotebook/internal/importer"
)

func newImportCmd(c *cli) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add every quote in a text file",
		Long: `Entries are separated by a line holding only ".". The author follows
the last " -- " of an entry and may be left out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("concurrency") {
				concurrency = c.cfg.Importer.Concurrency
			}

			report, err := importer.New(c.api, concurrency, c.logger).ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range report.Failed() {
				fmt.Fprintf(out, "line %d: %v\n", res.Entry.Line, res.Err)
			}

			fmt.Fprintf(out, "Imported %d of %d quotes.\n", report.Created(), len(report.Results))

			if failed := len(report.Failed()); failed > 0 {
				return fmt.Errorf("%d quotes not imported", failed)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "parallel requests, defaults to importer.concurrency")

	return cmd
}
