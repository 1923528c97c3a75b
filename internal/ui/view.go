package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tama/internal/pet"
)

const barWidth = 22

var gameStyles = struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	sprite   lipgloss.Style
	good     lipgloss.Style
	warn     lipgloss.Style
	bad      lipgloss.Style
	box      lipgloss.Style
	boxTitle lipgloss.Style
	help     lipgloss.Style
	signal   lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	subtitle: lipgloss.NewStyle().
		Faint(true).
		Padding(0, 1),

	sprite: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#C792EA")).
		Padding(0, 2),

	good: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	warn: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	bad:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),

	box: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1),

	boxTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#C792EA")),

	help: lipgloss.NewStyle().Faint(true).Padding(0, 1),

	signal: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("2")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	if m.Width > 0 && (m.Width < minWidth || m.Height < minHeight) {
		return fmt.Sprintf("Resize terminal to at least %dx%d\n\nPress q to quit.\n", minWidth, minHeight)
	}
	if m.ShowHelp {
		return m.helpView()
	}
	if m.Renaming {
		return m.renameView()
	}

	sections := []string{
		gameStyles.title.Render("Terminal Tamagotchi"),
		gameStyles.subtitle.Render(m.subtitle()),
		"",
		m.petPanel(),
		m.consolePanel(),
	}

	if m.Minigame.Active() {
		sections = append(sections, m.minigamePanel())
	}

	sections = append(sections, gameStyles.help.Render(m.helpLine()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) subtitle() string {
	p := m.Pet
	aiLabel := "ai: off"
	if p.AIEnabled && p.AIModel != "" {
		aiLabel = fmt.Sprintf("ai: %s (%s)", p.AIModel, p.AIPersonality)
	}
	return fmt.Sprintf("%s · %s/%s · age %s · life %s · mood: %s · mistakes: %d · coins: %d · speed: %.1fx · %s",
		p.Name, p.Stage, p.Form,
		pet.FmtAge(p.AgeS), pet.FmtAge(p.SimS),
		p.Mood(), p.CareMistakes, p.Coins, m.Clock.Speed, aiLabel)
}

func (m Model) helpLine() string {
	if !m.Pet.Alive {
		return "r new egg  q quit  ? help"
	}
	return "f feed  p play  s sleep/wake  c clean  m med  g minigame  t train  r rename  ? help  q quit"
}

// bar renders a labelled 22-cell gauge. Hunger is drawn inverted so a
// full bar always means "good".
func bar(label string, value float64, invert bool) string {
	v := value
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	pct := v
	if invert {
		pct = 100 - v
	}
	filled := int(pct/100*barWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	gauge := strings.Repeat("█", filled) + strings.Repeat(" ", barWidth-filled)
	return fmt.Sprintf("%-9s %s %3d", label, colorForPct(pct).Render(gauge), int(v))
}

func colorForPct(pct float64) lipgloss.Style {
	if pct >= 70 {
		return gameStyles.good
	}
	if pct >= 35 {
		return gameStyles.warn
	}
	return gameStyles.bad
}

func (m Model) petPanel() string {
	p := m.Pet

	sprite := gameStyles.sprite.Render(strings.Join(Sprite(p), "\n"))

	poopLine := fmt.Sprintf("%-9s none", "Poop")
	if p.Poop > 0 {
		poopLine = fmt.Sprintf("%-9s %s", "Poop", strings.Repeat("#", p.Poop))
	}
	stateLine := fmt.Sprintf("%-9s awake", "State")
	if p.Asleep {
		stateLine = fmt.Sprintf("%-9s asleep", "State")
	}

	status := strings.Join([]string{
		bar("Hunger", p.Hunger, true),
		bar("Happy", p.Happiness, false),
		bar("Energy", p.Energy, false),
		bar("Hygiene", p.Hygiene, false),
		bar("Health", p.Health, false),
		poopLine,
		stateLine,
		fmt.Sprintf("%-9s %s", "Last", p.LastEvent),
	}, "\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, sprite, "   ", status)
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.boxTitle.Render(" Pet "),
		gameStyles.box.Render(body),
	)
}

func (m Model) consolePanel() string {
	shown := m.Messages
	if len(shown) > 4 {
		shown = shown[:4]
	}
	lines := make([]string, 0, len(shown))
	for _, msg := range shown {
		lines = append(lines, "• "+msg)
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.boxTitle.Render(" Console "),
		gameStyles.box.Width(64).Render(strings.Join(lines, "\n")),
	)
}

func (m Model) minigamePanel() string {
	g := m.Minigame
	var lines []string
	switch g.Phase {
	case MinigameWaiting:
		lines = append(lines, "Wait for the signal, then press SPACE.", "Early press = fail.")
	case MinigameGo:
		lines = append(lines, gameStyles.signal.Render("NOW! Press SPACE!"))
	case MinigameDone:
		lines = append(lines, "Press g to start again.")
	}
	lines = append(lines, "", g.Prompt, fmt.Sprintf("Timer: %0.3fs", g.Timer))
	if g.HasBest {
		lines = append(lines, fmt.Sprintf("Best: %dms", g.BestMS))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.boxTitle.Render(" Minigame "),
		gameStyles.box.Render(strings.Join(lines, "\n")),
	)
}

func (m Model) renameView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.title.Render("Rename your pet"),
		"",
		gameStyles.box.Render("> "+string(m.RenameBuf)),
		"",
		gameStyles.help.Render("Enter=ok  Esc=cancel  (max 20 chars)"),
	)
}

func (m Model) helpView() string {
	body := []string{
		"Keep stats healthy. Hunger rises over time; hygiene drops",
		"faster if poop piles up.",
		"Classic-style evolution: egg -> baby -> child -> teen -> adult.",
		"Your care influences the character. Neglect (high hunger, low",
		"energy, mess, low health) can add care mistakes.",
		"",
		"Actions:",
		"  f feed: reduces hunger; may cause poop",
		"  p play: boosts happiness; costs energy",
		"  s sleep: restores energy; slows life a bit",
		"  c clean: removes poop; restores hygiene",
		"  m med: restores health (costs coins)",
		"  g minigame: reaction game for coins/happiness",
		"  t train: small happiness + coin chance",
		"  r rename: type a new name",
		"",
		"Tip: adjust evolution speed with -speed (example: tama -speed 10).",
		"Tip: enable AI chatter with -ai (uses local Ollama).",
		"Note: time keeps flowing from the last save when you return.",
		"Press ? to close this window.",
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.boxTitle.Render(" Help "),
		gameStyles.box.Render(strings.Join(body, "\n")),
	)
}
