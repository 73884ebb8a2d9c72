package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fcsketch/internal/catalog"
	"github.com/pdiddy/fcsketch/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Serialize a document's sketches to YAML or JSON",
	Long: `Export scans a document and writes every sketch as a flat record:
geometry with derived endpoints and foci, constraints with their
references, and the external-geometry id map.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		sketches, err := readSketches(args[0])
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if out != "" && out != "-" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()
			w = f
		}

		switch types.ExportFormat(format) {
		case types.FormatYAML:
			return catalog.WriteYAML(w, sketches)
		case types.FormatJSON:
			return catalog.WriteJSON(w, sketches)
		default:
			return fmt.Errorf("unknown format %q (want yaml or json)", format)
		}
	},
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("out", "-", "output path; - writes to stdout")

	rootCmd.AddCommand(exportCmd)
}
