package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/reconcile"
)

// =============================================================================
// ReviewModel - Interactive layout confirmation
// =============================================================================

// ReviewModel is the bubbletea model that shows the computed crate
// dimensions and waits for the user to accept or reject them before any
// files are written.
type ReviewModel struct {
	Result   *reconcile.Result
	Accepted bool
	Decided  bool
}

// NewReviewModel creates a review model for the given result.
func NewReviewModel(res *reconcile.Result) ReviewModel {
	return ReviewModel{Result: res}
}

func (m ReviewModel) Init() tea.Cmd {
	return nil
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y", "enter":
			m.Accepted = true
			m.Decided = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.Accepted = false
			m.Decided = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ReviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Crate Layout Review"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("y/enter accept  n/q reject"))
	b.WriteString("\n\n")

	res := m.Result
	rows := [][]string{
		{"Overall width", fmt.Sprintf("%.2f in", res.Envelope.Width)},
		{"Overall length", fmt.Sprintf("%.2f in", res.Envelope.Length)},
		{"Overall height", fmt.Sprintf("%.2f in", res.Envelope.Height)},
		{"Skids", fmt.Sprintf("%d x %s", res.Skids.Count, res.Skids.Callout)},
		{"Floorboards", fmt.Sprintf("%d", len(res.Floor.Boards))},
		{"Passes", fmt.Sprintf("%d", res.Passes)},
	}
	if res.GrowthWidth > 0 || res.GrowthLength > 0 {
		rows = append(rows, []string{"Growth",
			fmt.Sprintf("+%.2f W, +%.2f L", res.GrowthWidth, res.GrowthLength)})
	}
	for i := range res.Panels {
		p := &res.Panels[i]
		rows = append(rows, []string{
			string(p.Name) + " panel",
			fmt.Sprintf("%.2f x %.2f, %d sheets, %d cleats",
				p.Spec.Width, p.Spec.Height, len(p.Sheets), len(p.Verticals)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Dimension", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

// confirmLayout runs the interactive review and reports whether the user
// accepted the layout. Errors from the terminal program count as rejection.
func confirmLayout(res *reconcile.Result) (bool, error) {
	final, err := tea.NewProgram(NewReviewModel(res)).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ReviewModel)
	if !ok {
		return false, nil
	}
	return m.Accepted, nil
}
