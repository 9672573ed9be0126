package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pickperfect/internal/colormodel"
)

func newFormatCmd(c *cli) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "format <hex>",
		Short: "Print a color in every notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color := colormodel.ParseHex(args[0])
			out := cmd.OutOrStdout()

			if as != "" {
				format, err := colormodel.ParseFormat(as)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, color.Format(format))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, format := range colormodel.Formats() {
				fmt.Fprintf(w, "%s\t%s\n", format, color.Format(format))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&as, "as", "", "only print this notation: hex, rgb, hsl or oklch")
	return cmd
}

func newContrastCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check the WCAG contrast of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			foreground := colormodel.ParseHex(args[0])
			background := colormodel.ParseHex(args[1])
			result := colormodel.CheckContrast(foreground, background)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "ratio\t%.2f:1\n", result.Ratio)
			fmt.Fprintf(w, "AA normal\t%s\n", verdict(result.AANormal))
			fmt.Fprintf(w, "AA large\t%s\n", verdict(result.AALarge))
			fmt.Fprintf(w, "AAA normal\t%s\n", verdict(result.AAANormal))
			fmt.Fprintf(w, "AAA large\t%s\n", verdict(result.AAALarge))
			return w.Flush()
		},
	}
}

func newNearestCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "nearest <hex>",
		Short: "Find the closest CSS named color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nearest := colormodel.FindNearest(colormodel.ParseHex(args[0]), colormodel.CSSNamedColors())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (distance %.2f)\n", nearest.Name, nearest.Color.Hex(), nearest.Distance)
			return nil
		},
	}
}

func verdict(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}
