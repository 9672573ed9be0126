package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pickperfect/internal/export"
	"pickperfect/internal/history"
	"pickperfect/internal/picker"
)

func newPickCmd(c *cli) *cobra.Command {
	var (
		x, y int
		save bool
	)

	cmd := &cobra.Command{
		Use:   "pick <image>",
		Short: "Print the color of one pixel of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := picker.LoadImage(args[0])
			if err != nil {
				return err
			}

			picked, err := picker.PickFromImage(img, x, y)
			if err != nil {
				return err
			}

			if save {
				if err := c.recordPick(cmd.Context(), picked.Hex()); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), picked.Hex())
			return nil
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "pixel column")
	cmd.Flags().IntVar(&y, "y", 0, "pixel row")
	cmd.Flags().BoolVar(&save, "save", false, "add the color to the history")
	return cmd
}

func newDominantCmd(c *cli) *cobra.Command {
	var (
		count int
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "dominant <image>",
		Short: "List the dominant colors of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var exportKind export.Kind
			if kind != "" {
				parsed, err := export.ParseKind(kind)
				if err != nil {
					return err
				}
				exportKind = parsed
			}

			img, err := picker.LoadImage(args[0])
			if err != nil {
				return err
			}

			colors, err := picker.Dominant(img, count)
			if err != nil {
				return err
			}

			c.logger.Debug("quantized image", "path", args[0], "colors", len(colors))
			return writePalette(cmd.OutOrStdout(), exportKind, "", colors)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 6, "number of colors")
	cmd.Flags().StringVar(&kind, "export", "", "write the colors as css, gpl or json")
	return cmd
}

func (c *cli) recordPick(ctx context.Context, hex string) error {
	database, err := c.openDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	_, err = history.NewRepository(database).Add(ctx, hex)
	return err
}
