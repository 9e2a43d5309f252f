package templatize

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	addedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	removedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	promptStyle    = lipgloss.NewStyle().Bold(true)
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type confirmModel struct {
	prompt  string
	answer  bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y", "enter":
		m.answer = true
		return m, tea.Quit
	case "n", "N", "esc":
		m.answer = false
		return m, tea.Quit
	case "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	return promptStyle.Render(m.prompt) + " [Y/n] "
}

func confirm(prompt string) (bool, error) {
	res, err := tea.NewProgram(confirmModel{prompt: prompt}).Run()
	if err != nil {
		return false, err
	}
	m := res.(confirmModel)
	if m.aborted {
		return false, fmt.Errorf("aborted")
	}
	return m.answer, nil
}

// interactiveApprover shows each would-change in the terminal and asks for
// a yes/no answer before the walker applies it.
type interactiveApprover struct{}

func NewInteractiveApprover() Approver { return interactiveApprover{} }

func (interactiveApprover) Content(change ContentChange) (bool, error) {
	fmt.Printf("\n%s %s\n", headerStyle.Render(change.Description+":"), change.Path)
	fmt.Print(renderDiff(change.Old, change.New))
	return confirm("Apply this change?")
}

func (interactiveApprover) Path(change PathChange) (bool, error) {
	fmt.Printf("\n%s\n", headerStyle.Render(change.Kind+" rename:"))
	fmt.Println("  " + removedStyle.Render("- "+change.OldPath))
	fmt.Println("  " + addedStyle.Render("+ "+change.NewPath))
	return confirm("Apply this rename?")
}

func FormatResult(r Result) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Templating complete") + "\n")
	b.WriteString(fmt.Sprintf("  Files processed: %d\n", r.FilesProcessed))
	b.WriteString(fmt.Sprintf("  Paths renamed:   %d\n", r.PathsRenamed))
	b.WriteString(fmt.Sprintf("  Content changes: %d\n", r.ContentChanges))
	return b.String()
}
