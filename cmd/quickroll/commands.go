package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quickroll-bot/internal/actions"
	"github.com/KirkDiggler/quickroll-bot/internal/config"
	"github.com/KirkDiggler/quickroll-bot/internal/console"
	"github.com/KirkDiggler/quickroll-bot/internal/quickroll"
	"github.com/KirkDiggler/quickroll-bot/internal/tui"
)

var errNotDispatched = errors.New("input was not dispatched")

var headerStyle = lipgloss.NewStyle().Bold(true)

type options struct {
	noDice      bool
	actionsFile string
	verbose     bool
}

// execute runs the command tree. Rejected input was already reported by the parser, every other error is printed.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil && !errors.Is(err, errNotDispatched) {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "quickroll",
		Short:         "Quick damage rolls, checks and actions from one line of text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !opts.verbose {
				log.SetOutput(io.Discard)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, opts)
		},
	}

	root.PersistentFlags().BoolVar(&opts.noDice, "no-dice", false, "print roll commands instead of rolling them")
	root.PersistentFlags().StringVar(&opts.actionsFile, "actions", "", "YAML file with extra action definitions")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log parser activity to stderr")

	root.AddCommand(parseCmd(opts), promptCmd(opts), actionsCmd(opts))
	return root
}

func parseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <text...>",
		Short:   "Parse one line and print the result",
		Example: "  quickroll parse 2d6+4 fir\n  quickroll parse perc 11\n  quickroll parse raise a shield",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := newHost(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if !quickroll.New(host.QuickRoll()).Parse(cmd.Context(), strings.Join(args, " ")) {
				return errNotDispatched
			}
			return nil
		},
	}
}

func promptCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Open the quick roll prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, opts)
		},
	}
}

func runPrompt(cmd *cobra.Command, opts *options) error {
	// Output is held until the prompt closes
	var out bytes.Buffer
	host, err := newHost(cmd.Context(), opts, &out, nil)
	if err != nil {
		return err
	}

	if _, err := tui.Run(cmd.Context(), quickroll.New(host.QuickRoll())); err != nil {
		return err
	}

	_, err = io.Copy(cmd.OutOrStdout(), &out)
	return err
}

func actionsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the action definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := loadDefinitions(cmd.Context(), opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-20s %-20s %-10s %s", "ID", "NAME", "COST", "TRAITS")))
			for _, def := range defs {
				fmt.Fprintf(w, "%-20s %-20s %-10s %s\n", def.ID, def.Name, def.CostLabel(), strings.Join(def.Traits, ", "))
			}
			return nil
		},
	}
}

func newHost(ctx context.Context, opts *options, out, errOut io.Writer) (*console.Host, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	defs, err := loadDefinitions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return console.NewHost(&console.HostConfig{
		Out:         out,
		Err:         errOut,
		DiceEngine:  cfg.QuickRoll.DiceEngine && !opts.noDice,
		Definitions: defs,
	}), nil
}

// loadDefinitions seeds the built-ins and the actions file into the configured store, then lists it
func loadDefinitions(ctx context.Context, opts *options) ([]*actions.Definition, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	file := opts.actionsFile
	if file == "" {
		file = cfg.QuickRoll.ActionsFile
	}

	store := actions.OpenStore(ctx, cfg.Redis.URL)
	defer store.Close()

	return seedDefinitions(ctx, store, file)
}

func seedDefinitions(ctx context.Context, repo actions.Repository, file string) ([]*actions.Definition, error) {
	var overrides []*actions.Definition
	if file != "" {
		var err error
		overrides, err = actions.LoadFile(file)
		if err != nil {
			return nil, err
		}
	}

	if err := actions.Seed(ctx, repo, overrides); err != nil {
		return nil, err
	}

	return repo.List(ctx)
}
