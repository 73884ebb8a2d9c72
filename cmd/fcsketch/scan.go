package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fcsketch/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan [file...]",
	Short: "Report the sketches in one or more documents",
	Long: `Scan reads each document and prints its sketches with geometry,
external-geometry, and constraint counts. With --detail, every geometry
element and constraint is listed in document order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detail, _ := cmd.Flags().GetBool("detail")

		for _, path := range args {
			sketches, err := readSketches(path)
			if err != nil {
				return err
			}
			printScan(cmd.OutOrStdout(), path, sketches, detail)
		}
		return nil
	},
}

func printScan(w io.Writer, path string, sketches map[string]types.Sketch, detail bool) {
	names := make([]string, 0, len(sketches))
	for name := range sketches {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "%s: %d sketch(es)\n", path, len(sketches))
	for _, name := range names {
		sk := sketches[name]
		fmt.Fprintf(w, "  %s (label %q): geometry=%d external=%d constraints=%d",
			sk.Name, sk.Label, sk.GeometryCount(), sk.ExternalGeometryCount(), sk.ConstraintCount())
		if sk.FullyConstrained {
			fmt.Fprint(w, " fully-constrained")
		}
		fmt.Fprintln(w)

		if !detail {
			continue
		}
		for i, g := range sk.Geometry {
			fmt.Fprintf(w, "    geometry[%d] %s%s\n", i, g.Kind(), constructionSuffix(g))
			if start, ok := types.StartPoint(g); ok {
				end, _ := types.EndPoint(g)
				fmt.Fprintf(w, "      start=(%g, %g, %g) end=(%g, %g, %g)\n",
					start.X, start.Y, start.Z, end.X, end.Y, end.Z)
			}
		}
		for i, c := range sk.Constraints {
			fmt.Fprintf(w, "    constraint[%d] %s", i, c.Type)
			if c.Name != "" {
				fmt.Fprintf(w, " %q", c.Name)
			}
			if c.First != types.NoGeometry {
				fmt.Fprintf(w, " first=%d/%s", c.First, c.FirstPos)
			}
			if c.Second != types.NoGeometry {
				fmt.Fprintf(w, " second=%d/%s", c.Second, c.SecondPos)
			}
			if c.Third != types.NoGeometry {
				fmt.Fprintf(w, " third=%d/%s", c.Third, c.ThirdPos)
			}
			fmt.Fprintln(w)
		}
	}
}

func constructionSuffix(g types.Geometry) string {
	if g.IsConstruction() {
		return " (construction)"
	}
	return ""
}

func init() {
	scanCmd.Flags().Bool("detail", false, "list every geometry element and constraint")

	rootCmd.AddCommand(scanCmd)
}
