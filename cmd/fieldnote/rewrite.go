/*
 * Copyright (c) 2022-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldnote/fieldnote/pkg/docfile"
)

func newRewriteCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "rewrite <file>",
		Short: "Reads a data file and writes it back in canonical form",
		Long: "Reads a data file and writes it back in canonical form: " +
			"normalized whitespace, quoting and numeric formatting, blank lines dropped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			reg := newRegistry()

			doc, err := docfile.ReadDocument(path, reg, nil)
			if err != nil {
				return err
			}

			target := output
			if target == "" {
				target = path
			}
			if err := docfile.WriteDocument(doc, target, doc.Format()); err != nil {
				return err
			}
			fmt.Println(green("OK"), "wrote", doc.Len(), "records to", target)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of rewriting in place")
	return cmd
}
