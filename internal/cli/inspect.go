package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/geom"
	"github.com/matzehuels/boxlayout/pkg/layout"
	"github.com/matzehuels/boxlayout/pkg/pipeline"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// inspectCommand creates the inspect command: an interactive table of every
// placed box.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		plain       bool
		inputFormat string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "inspect [tree]",
		Short: "Browse the computed rectangles of a box tree",
		Long: `Browse the computed rectangles of a box tree.

Every placed box is listed in tree order with its kind, its rectangle relative
to its parent and its absolute rectangle. Boxes that could not be laid out are
omitted. Press enter on a row to print its details.

Without a terminal, or with --plain, a static table is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyConfig(cmd, &opts)
			return c.runInspect(cmd.Context(), args[0], inputFormat, plain, opts)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print a static table")
	cmd.Flags().StringVarP(&inputFormat, "input-format", "i", "", "tree format: json, yaml, toml (default: from extension)")
	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "disable caching")
	viewportFlags(cmd, &opts)

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input, inputFormat string, plain bool, opts pipeline.Options) error {
	tree, err := readTree(ctx, input, inputFormat, &opts)
	if err != nil {
		return err
	}

	runner := c.newRunner(ctx, opts.NoCache)
	defer runner.Close()

	l, err := runner.ComputeLayout(ctx, tree, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	rows := inspectRows(tree, l)
	if len(rows) == 0 {
		printInfo("Nothing was laid out")
		return nil
	}

	if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(renderInspectTable(rows, 0, len(rows), -1))
		return nil
	}

	final, err := tea.NewProgram(newInspectModel(rows, l.UISpace), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	if m, ok := final.(InspectModel); ok && m.Selected != nil {
		printRow(*m.Selected)
	}
	return nil
}

// inspectRow is one placed box.
type inspectRow struct {
	ID    string
	Kind  box.Kind
	Depth int
	Local geom.Rect
	UI    geom.Rect
}

// inspectRows lists the boxes of tree present in l in pre-order. Subtrees of
// boxes missing from the layout are skipped.
func inspectRows(tree box.Unit, l layout.Layout) []inspectRow {
	var rows []inspectRow
	box.Walk(tree, func(u box.Unit, depth int) bool {
		it, ok := l.Item(u.Identity())
		if !ok {
			return false
		}
		rows = append(rows, inspectRow{
			ID:    u.Identity(),
			Kind:  u.Kind(),
			Depth: depth,
			Local: it.LocalSpace,
			UI:    it.UISpace,
		})
		return true
	})
	return rows
}

func formatRect(r geom.Rect) string {
	return fmt.Sprintf("%g,%g %gx%g", r.Left, r.Top, r.Width(), r.Height())
}

func printRow(r inspectRow) {
	printNewline()
	printKeyValue("id", r.ID)
	printKeyValue("kind", r.Kind.String())
	printKeyValue("depth", fmt.Sprint(r.Depth))
	printKeyValue("local", formatRect(r.Local))
	printKeyValue("absolute", formatRect(r.UI))
}

// renderInspectTable renders rows[from:to] as a table. cursor is the index in
// rows of the highlighted row, or -1.
func renderInspectTable(rows []inspectRow, from, to, cursor int) string {
	cells := make([][]string, 0, to-from)
	for i := from; i < to; i++ {
		r := rows[i]
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		cells = append(cells, []string{
			marker,
			strings.Repeat("  ", r.Depth) + r.ID,
			r.Kind.String(),
			formatRect(r.Local),
			formatRect(r.UI),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Box", "Kind", "Local", "Absolute").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle()
			if col == 2 {
				base = base.Foreground(colorGray)
			}
			if from+row == cursor {
				return base.Foreground(colorCyan).Bold(true)
			}
			return base
		})

	return t.Render()
}

// InspectModel pages through placed boxes, Height rows at a time starting at
// Offset. Enter stores the row under the cursor in Selected and quits.
type InspectModel struct {
	Rows     []inspectRow
	Viewport geom.Rect
	Cursor   int
	Selected *inspectRow
	Height   int
	Offset   int
}

func newInspectModel(rows []inspectRow, viewport geom.Rect) InspectModel {
	return InspectModel{
		Rows:     rows,
		Viewport: viewport,
		Height:   15,
	}
}

func (m InspectModel) Init() tea.Cmd { return nil }

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "home", "g":
			m.move(-len(m.Rows))
		case "end", "G":
			m.move(len(m.Rows))
		case "enter":
			if len(m.Rows) == 0 {
				return m, tea.Quit
			}
			row := m.Rows[m.Cursor]
			m.Selected = &row
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

// move shifts the cursor by delta, clamped to the rows, and scrolls just
// enough to keep it visible.
func (m *InspectModel) move(delta int) {
	m.Cursor = max(0, min(m.Cursor+delta, len(m.Rows)-1))
	switch {
	case m.Cursor < m.Offset:
		m.Offset = m.Cursor
	case m.Cursor >= m.Offset+m.Height:
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m InspectModel) View() string {
	end := min(m.Offset+m.Height, len(m.Rows))
	return StyleTitle.Render("Layout") + " " + listDimStyle.Render(formatRect(m.Viewport)) + "\n" +
		listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit") + "\n\n" +
		renderInspectTable(m.Rows, m.Offset, end, m.Cursor) + "\n\n" +
		listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows)))
}
