package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/player"
)

func kindFlag(cmd *cobra.Command) domain.MediaKind {
	if tv, _ := cmd.Flags().GetBool("tv"); tv {
		return domain.MediaKindTV
	}
	return domain.MediaKindMovie
}

func (c *cli) listCmd(name, short string, withKind bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()

			kind := kindFlag(cmd)
			var (
				titles []domain.Title
				err    error
			)
			switch name {
			case "trending":
				titles, err = c.env.repo.Trending(ctx, kind)
			case "top-rated":
				titles, err = c.env.repo.TopRated(ctx, kind)
			default:
				titles, err = c.env.repo.Upcoming(ctx)
			}
			if err != nil {
				return fmt.Errorf("%s failed: %w", name, err)
			}
			return c.printTitles(cmd.OutOrStdout(), titles)
		},
	}
	if withKind {
		cmd.Flags().Bool("tv", false, "Show TV shows instead of movies")
	}
	return cmd
}

func (c *cli) searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search movies or TV shows by name",
		Long: `Search movies or TV shows by name.

Examples:
  vidda search blade runner
  vidda search --tv "the bear"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()

			query := strings.TrimSpace(strings.Join(args, " "))
			titles, err := c.env.repo.Search(ctx, kindFlag(cmd), query)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}
			if !c.jsonOutput && len(titles) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No results for %q\n", query)
				return nil
			}
			return c.printTitles(cmd.OutOrStdout(), titles)
		},
	}
	cmd.Flags().Bool("tv", false, "Search TV shows instead of movies")
	return cmd
}

func (c *cli) detailsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details <id>",
		Short: "Show a title's details and whether it is saved",
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
			saved, err := c.env.repo.IsSaved(ctx, id)
			if err != nil {
				c.env.logger.Error("failed to check saved state", "id", id, "error", err)
			}
			return c.printDetail(cmd.OutOrStdout(), t, saved)
		},
	}
	cmd.Flags().Bool("tv", false, "Look up a TV show instead of a movie")
	return cmd
}

func (c *cli) trailerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trailer <title>...",
		Short: "Find a trailer by title name",
		Long: `Find a trailer by title name and print its URL.

Examples:
  vidda trailer dune part two
  vidda trailer --play andor`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()

			name := strings.Join(args, " ")
			id, err := c.env.repo.TrailerVideoID(ctx, name)
			if err != nil {
				return fmt.Errorf("trailer lookup failed: %w", err)
			}

			url := player.TrailerURL(c.env.trailerBase, id)
			if c.jsonOutput {
				if err := printJSON(cmd.OutOrStdout(), map[string]string{"video_id": id, "url": url}); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), url)
			}

			if play, _ := cmd.Flags().GetBool("play"); play {
				if err := c.env.player.PlayTrailer(id); err != nil {
					return fmt.Errorf("failed to play trailer: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("play", false, "Open the trailer in a player")
	return cmd
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid title id %q", s)
	}
	return id, nil
}
