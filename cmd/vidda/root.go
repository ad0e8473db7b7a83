package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/vidda/internal/config"
	"github.com/mmcdole/vidda/internal/controller"
	"github.com/mmcdole/vidda/internal/tui"
)

// cli carries global flag values and the loaded env to subcommands.
type cli struct {
	open       opener
	opts       config.Options
	jsonOutput bool

	env *env
}

func newRootCmd(open opener) *cobra.Command {
	c := &cli{open: open}

	root := &cobra.Command{
		Use:   "vidda",
		Short: "Browse movies and TV shows from the terminal",
		Long: `vidda - browse trending, top rated and upcoming movies and TV shows,
search titles, watch trailers and keep a list of saved titles.

Run without arguments to start the interactive browser.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			e, err := c.open(c.opts)
			if err != nil {
				return err
			}
			c.env = e
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.env != nil {
				c.env.Close()
			}
		},
		RunE: c.runTUI,
	}
	root.SetVersionTemplate("vidda {{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Output as JSON")
	root.PersistentFlags().StringVar(&c.opts.ConfigDir, "config-dir", "", "Directory holding config.yaml and APIConfig.json")
	root.PersistentFlags().StringVar(&c.opts.APIConfigPath, "api-config", "", "Path to APIConfig.json")
	root.PersistentFlags().StringVar(&c.opts.EnvFile, "env-file", "", "Environment file to load (default .env)")

	root.AddCommand(
		c.listCmd("trending", "Show today's trending titles", true),
		c.listCmd("top-rated", "Show the top rated titles", true),
		c.listCmd("upcoming", "Show upcoming movies", false),
		c.searchCmd(),
		c.detailsCmd(),
		c.trailerCmd(),
		c.savedCmd(),
	)
	return root
}

func (c *cli) runTUI(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return cmd.Help()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	opts := []controller.Option{
		controller.WithLogger(c.env.logger),
		controller.WithDebounce(c.env.cfg.Search.Debounce),
	}
	ctl := tui.Controllers{
		Home:     controller.NewHome(ctx, c.env.repo, opts...),
		Search:   controller.NewSearch(ctx, c.env.repo, opts...),
		Upcoming: controller.NewUpcoming(ctx, c.env.repo, opts...),
		Detail:   controller.NewDetail(ctx, c.env.repo, opts...),
		Saved:    controller.NewSaved(ctx, c.env.repo, opts...),
	}
	defer func() {
		ctl.Search.Close()
		ctl.Detail.Close()
		ctl.Home.Close()
		ctl.Upcoming.Close()
		ctl.Saved.Close()
	}()

	model := tui.NewModel(ctl, c.env.player)
	defer model.Unsubscribe()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	c.env.logger.Info("starting TUI")
	if _, err := p.Run(); err != nil {
		c.env.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	c.env.logger.Info("shutting down")
	return nil
}

// requestContext bounds a one-shot command.
func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, time.Minute)
}
