/*
 * Copyright (c) 2022-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldnote/fieldnote/pkg/docfile"
	"github.com/fieldnote/fieldnote/pkg/store"
)

// database path flag (--db), shared by the store subcommands
var dbPath string

func newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manages the document store",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "fieldnote.db", "Path to the document store database")
	cmd.AddCommand(
		newStorePutCmd(),
		newStoreGetCmd(),
		newStoreListCmd(),
		newStoreDeleteCmd(),
	)
	return cmd
}

func newStorePutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <name> <file>",
		Short: "Stores a data file under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]
			reg := newRegistry()

			doc, err := docfile.ReadDocument(path, reg, nil)
			if err != nil {
				return err
			}

			s, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Put(name, doc, doc.Format()); err != nil {
				return err
			}
			fmt.Println(green("OK"), "stored", doc.Len(), "records as", name)
			return nil
		},
	}
}

func newStoreGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name> <file>",
		Short: "Writes a stored document to a data file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]
			reg := newRegistry()

			s, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			doc, err := s.Get(name, reg, nil)
			if err != nil {
				return err
			}
			if err := docfile.WriteDocument(doc, path, doc.Format()); err != nil {
				return err
			}
			fmt.Println(green("OK"), "wrote", doc.Len(), "records to", path)
			return nil
		},
	}
}

func newStoreListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the stored document names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			names, err := s.Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func newStoreDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Removes a stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(args[0]); err != nil {
				return err
			}
			fmt.Println(green("OK"), "deleted", args[0])
			return nil
		},
	}
}
