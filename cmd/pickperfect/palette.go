package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pickperfect/internal/export"
	"pickperfect/internal/htmldoc"
	"pickperfect/internal/palette"
)

type paletteOptions struct {
	group bool
	watch bool
	kind  string
	name  string
}

func newPaletteCmd(c *cli) *cobra.Command {
	var opts paletteOptions

	cmd := &cobra.Command{
		Use:   "palette <file.html>",
		Short: "Sample the colors an HTML page uses",
		Long: `Sample the background, text and border colors of every rendered element
of an HTML file, most frequent first. Only inline styles are resolved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupOptions, err := c.groupOptions()
			if err != nil {
				return err
			}

			var kind export.Kind
			if opts.kind != "" {
				if kind, err = export.ParseKind(opts.kind); err != nil {
					return err
				}
			}

			host := htmldoc.NewFileHost(args[0], c.logger)
			run := func(ctx context.Context) error {
				colors, err := palette.Extract(ctx, host)
				if err != nil {
					return err
				}
				if opts.group {
					colors = palette.GroupWith(colors, groupOptions)
				}
				return writePalette(cmd.OutOrStdout(), kind, opts.name, colors)
			}

			if err := run(cmd.Context()); err != nil || !opts.watch {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c.logger.Info("watching for changes", "path", args[0])
			return htmldoc.Watch(ctx, args[0], func() {
				if err := run(ctx); err != nil {
					c.logger.Error("resample failed", "err", err)
				}
			})
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.group, "group", false, "merge near-duplicate colors")
	flags.Float64("threshold", -1, "grouping distance threshold; negative uses the metric default")
	flags.String("metric", string(palette.MetricRGB), "grouping metric: rgb or deltae2000")
	flags.BoolVar(&opts.watch, "watch", false, "sample again whenever the file is saved")
	flags.StringVar(&opts.kind, "export", "", "write the palette as css, gpl or json")
	flags.StringVar(&opts.name, "name", "", "palette name used by --export")
	_ = c.v.BindPFlag("palette.threshold", flags.Lookup("threshold"))
	_ = c.v.BindPFlag("palette.metric", flags.Lookup("metric"))

	return cmd
}

func (c *cli) groupOptions() (palette.GroupOptions, error) {
	metric, err := palette.ParseMetric(c.v.GetString("palette.metric"))
	if err != nil {
		return palette.GroupOptions{}, err
	}
	return palette.GroupOptions{
		Threshold: c.v.GetFloat64("palette.threshold"),
		Metric:    metric,
	}, nil
}

func writePalette(out io.Writer, kind export.Kind, name string, colors []palette.ExtractedColor) error {
	if kind != "" {
		rendered, err := export.Render(kind, name, colors)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, rendered)
		return err
	}

	swatches := newSwatcher(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, color := range colors {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", color.Hex, color.Count, color.Type, swatches.block(color.Hex))
	}
	return w.Flush()
}
