package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"batbroom/internal/catalog"
	"batbroom/internal/tui"
	"batbroom/pkg/pathtmpl"
)

func newListCmd(a *app) *cobra.Command {
	var sel selectionFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show catalog entries and the paths they resolve to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := sel.build(a.catalog)
			if err != nil {
				return err
			}
			resolver := pathtmpl.NewResolver()
			out := cmd.OutOrStdout()

			for i, section := range a.catalog.Sections() {
				if i > 0 {
					fmt.Fprintln(out)
				}
				state := selection.StateOf(a.catalog, section.Name)
				fmt.Fprintf(out, "%s %s\n",
					listSectionStyle.Render(section.Name),
					listDimStyle.Render(fmt.Sprintf("(%d entries, selected: %s)", len(section.Entries), state)),
				)
				for _, entry := range section.Entries {
					fmt.Fprintf(out, "  %s %s %s\n",
						listBulletStyle.Render(marker(selection, entry)),
						listEntryStyle.Render(entry.Description),
						listDimStyle.Render("Path: "+resolver.Resolve(entry.Pattern)),
					)
				}
			}
			return nil
		},
	}
	sel.register(cmd)
	return cmd
}

func marker(sel catalog.Selection, entry catalog.Entry) string {
	if sel.Has(entry.ID()) {
		return "[x]"
	}
	return "[ ]"
}

var (
	listSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(tui.ColorAccent)
	listEntryStyle   = lipgloss.NewStyle().Foreground(tui.ColorInk)
	listDimStyle     = lipgloss.NewStyle().Foreground(tui.ColorDim)
	listBulletStyle  = lipgloss.NewStyle().Foreground(tui.ColorAccentAlt)
)
