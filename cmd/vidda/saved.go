package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/vidda/internal/domain"
)

func (c *cli) savedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved titles",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			titles, err := c.savedSnapshot(cmd)
			if err != nil {
				return err
			}
			if !c.jsonOutput && len(titles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved titles")
				return nil
			}
			return c.printTitles(cmd.OutOrStdout(), titles)
		},
	}

	add := &cobra.Command{
		Use:   "add <id>",
		Short: "Save a title by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd)
			defer cancel()

			t, err := c.env.repo.TitleDetails(ctx, id, kindFlag(cmd))
			if err != nil {
				return fmt.Errorf("details failed: %w", err)
			}
			if err := c.env.repo.SaveTitle(ctx, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d)\n", t.DisplayTitle(), t.ID)
			return nil
		},
	}
	add.Flags().Bool("tv", false, "The id is a TV show")

	rm := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a saved title",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd)
			defer cancel()

			saved, err := c.env.repo.IsSaved(ctx, id)
			if err != nil {
				return err
			}
			if !saved {
				return fmt.Errorf("title %d is not saved", id)
			}
			if err := c.env.repo.DeleteTitle(ctx, domain.Title{ID: id}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d\n", id)
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()

			if err := c.env.repo.ClearSaved(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared saved titles")
			return nil
		},
	}

	cmd.AddCommand(list, add, rm, clearCmd)
	return cmd
}

// savedSnapshot reads the current saved list from the live subscription.
func (c *cli) savedSnapshot(cmd *cobra.Command) ([]domain.Title, error) {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	live, err := c.env.repo.SavedTitles(ctx)
	if err != nil {
		return nil, err
	}
	select {
	case titles, ok := <-live:
		if !ok {
			return nil, errors.New("saved titles closed before the first snapshot")
		}
		return titles, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
