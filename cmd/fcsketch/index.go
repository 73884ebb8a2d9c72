package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/fcsketch/internal/catalog"
	"github.com/pdiddy/fcsketch/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index [file...]",
	Short: "Scan documents and store their sketches in the catalog",
	Long: `Index scans each document and records its sketches in the SQLite
catalog. Re-indexing a document replaces its previous rows.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		for _, path := range args {
			sketches, err := readSketches(path)
			if err != nil {
				return err
			}
			if _, err := store.IndexDocument(cmd.Context(), path, sketches, cmd.OutOrStdout()); err != nil {
				return err
			}
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the sketches stored in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		return store.List(cmd.Context(), cmd.OutOrStdout())
	},
}

// openStore resolves the catalog directory from the flag, then the config
// file, then the default.
func openStore(cmd *cobra.Command) (*catalog.Store, error) {
	dir, _ := cmd.Flags().GetString("catalog-dir")
	if !cmd.Flags().Changed("catalog-dir") {
		if v := viper.GetString("catalog_dir"); v != "" {
			dir = v
		}
	}
	return catalog.NewStore(types.CatalogConfig{CatalogDir: dir})
}

func init() {
	indexCmd.Flags().String("catalog-dir", "catalog", "directory holding the catalog database")
	listCmd.Flags().String("catalog-dir", "catalog", "directory holding the catalog database")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(listCmd)
}
