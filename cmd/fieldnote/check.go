/*
 * Copyright (c) 2022-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldnote/fieldnote/pkg/docfile"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Checks that data files parse against their grammars",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := newRegistry()
			failed := 0
			for _, path := range args {
				if !docfile.IsFileRecognized(path) {
					fmt.Println(red("FAIL"), path, "- not a field-note data file")
					failed++
					continue
				}
				doc, err := docfile.ReadDocument(path, reg, nil)
				if err != nil {
					fmt.Println(red("FAIL"), path, "-", err)
					failed++
					continue
				}
				fmt.Println(green("OK"), path, "-", doc.Len(), "records,",
					doc.Format().Name())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}
