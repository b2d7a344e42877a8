package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/menu/internal/demo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var defaultDemoItems = []string{
	"Amsterdam", "Athens", "Berlin", "Bern", "Bratislava", "Brussels",
	"Bucharest", "Budapest", "Copenhagen", "Dublin", "Helsinki", "Lisbon",
	"Ljubljana", "London", "Luxembourg", "Madrid", "Oslo", "Paris",
	"Prague", "Reykjavik", "Riga", "Rome", "Sofia", "Stockholm",
	"Tallinn", "Vienna", "Vilnius", "Warsaw", "Zagreb",
}

var errNotTerminal = errors.New("demo needs an interactive terminal")

var demoCmd = &cobra.Command{
	Use:   "demo [items...]",
	Short: "Open an interactive autocomplete prompt",
	Long: `Open an autocomplete prompt over the given items (or the config file's
items, or a built-in list of cities). Type to filter, use the arrow keys or
the mouse to select, enter to choose and esc to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errNotTerminal
		}

		cfg, err := settings(cmd)
		if err != nil {
			return err
		}
		items := args
		if len(items) == 0 {
			items = cfg.Items
		}
		if len(items) == 0 {
			items = defaultDemoItems
		}

		width, _ := cmd.Flags().GetInt("width")
		m := demo.New(items, demo.Options{
			Visible:  cfg.VisibleCount,
			Separate: cfg.SeparateSelections,
			Width:    width,
		})

		final, err := tea.NewProgram(m, demoProgramOptions()...).Run()
		if err != nil {
			return fmt.Errorf("run prompt: %w", err)
		}
		if chosen := final.(demo.Model).Chosen(); chosen != "" {
			fmt.Fprintln(cmd.OutOrStdout(), chosen)
		}
		return nil
	},
}

// demoProgramOptions enables all-motion mouse reporting. Cell-motion mode
// only reports movement while a button is held, which would never hover.
func demoProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithMouseAllMotion()}
}

func init() {
	addMenuFlags(demoCmd)
	demoCmd.Flags().Int("width", 0, "truncate rows to this many cells (0: no limit)")
	rootCmd.AddCommand(demoCmd)
}
