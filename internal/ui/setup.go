package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tama/internal/ai"
	"tama/internal/pet"
)

var chooserStyles = struct {
	title  lipgloss.Style
	cursor lipgloss.Style
	item   lipgloss.Style
	hint   lipgloss.Style
}{
	title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF75B5")).Padding(1, 1, 0, 1),
	cursor: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C792EA")),
	item:   lipgloss.NewStyle().PaddingLeft(2),
	hint:   lipgloss.NewStyle().Faint(true).Padding(1, 1),
}

// chooserModel is a tiny one-shot list picker, run before the game
// starts to select the AI model and personality.
type chooserModel struct {
	title     string
	items     []string
	cursor    int
	choice    string
	cancelled bool
}

func (m chooserModel) Init() tea.Cmd { return nil }

func (m chooserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		m.choice = m.items[m.cursor]
		return m, tea.Quit
	}
	return m, nil
}

func (m chooserModel) View() string {
	s := chooserStyles.title.Render(m.title) + "\n\n"
	for i, item := range m.items {
		if i == m.cursor {
			s += chooserStyles.cursor.Render("➤ "+item) + "\n"
		} else {
			s += chooserStyles.item.Render(item) + "\n"
		}
	}
	s += chooserStyles.hint.Render("↑/↓ move · enter select · esc cancel")
	return s
}

func choose(title string, items []string) (string, bool) {
	m := chooserModel{title: title, items: items}
	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", false
	}
	final, ok := out.(chooserModel)
	if !ok || final.cancelled || final.choice == "" {
		return "", false
	}
	return final.choice, true
}

// RunAISetup probes the local Ollama install and walks the user through
// model and personality selection. When Ollama is unavailable it prints a
// short notice and reports AI disabled.
func RunAISetup(preferred string) (bool, string, pet.Personality) {
	ok, models, errMsg := ai.ListModels()
	if !ok || len(models) == 0 {
		if errMsg == "" {
			errMsg = "no models available"
		}
		fmt.Println("AI chatter disabled: " + errMsg)
		return false, "", pet.PersonalityClassic
	}

	// Put the preferred model first so enter-enter picks the default.
	if preferred != "" {
		found := false
		for _, m := range models {
			if m == preferred {
				found = true
				break
			}
		}
		if !found {
			models = append([]string{preferred}, models...)
		} else {
			ordered := []string{preferred}
			for _, m := range models {
				if m != preferred {
					ordered = append(ordered, m)
				}
			}
			models = ordered
		}
	}

	model, picked := choose("Pick a model for pet chatter", models)
	if !picked {
		fmt.Println("AI chatter disabled.")
		return false, "", pet.PersonalityClassic
	}

	names := make([]string, len(pet.Personalities))
	for i, p := range pet.Personalities {
		names[i] = string(p)
	}
	name, picked := choose("Pick a personality", names)
	if !picked {
		return true, model, pet.PersonalityClassic
	}
	return true, model, pet.Personality(name)
}
