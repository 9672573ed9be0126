package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pickperfect/internal/history"
)

func newHistoryCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage recently picked colors",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List recent picks, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withHistory(cmd, func(repo *history.Repository) error {
					entries, err := repo.List(cmd.Context())
					if err != nil {
						return err
					}

					swatches := newSwatcher(cmd.OutOrStdout())
					w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
					for _, entry := range entries {
						fmt.Fprintf(w, "%s\t%s\t%s\n",
							entry.Hex,
							humanize.Time(time.UnixMilli(entry.Timestamp)),
							swatches.block(entry.Hex),
						)
					}
					return w.Flush()
				})
			},
		},
		&cobra.Command{
			Use:   "add <hex>",
			Short: "Add a color to the history",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withHistory(cmd, func(repo *history.Repository) error {
					entry, err := repo.Add(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), entry.Hex)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "remove <hex>",
			Short: "Remove a color from the history",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withHistory(cmd, func(repo *history.Repository) error {
					err := repo.Remove(cmd.Context(), args[0])
					if errors.Is(err, history.ErrEntryNotFound) {
						return fmt.Errorf("color %s is not in history", args[0])
					}
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Forget every picked color",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withHistory(cmd, func(repo *history.Repository) error {
					return repo.Clear(cmd.Context())
				})
			},
		},
	)

	return cmd
}

func (c *cli) withHistory(cmd *cobra.Command, fn func(*history.Repository) error) error {
	database, err := c.openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(history.NewRepository(database))
}
