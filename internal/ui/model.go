package ui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tama/internal/ai"
	"tama/internal/pet"
)

const (
	tickInterval  = 100 * time.Millisecond
	saveIntervalS = 12.0
	maxMessages   = 6
	minWidth      = 70
	minHeight     = 19

	// Chance per tick of an ambient warning while its condition holds.
	flavorChance = 0.01
)

// Config carries the runtime options into the interaction layer. There is
// no global save path: it is injected here.
type Config struct {
	SavePath string
	Speed    float64
}

// Model is the Bubble Tea model driving the game loop. All pet mutation
// happens here, on the main loop; the speech worker only ever hands back
// finished lines over its result channel.
type Model struct {
	Pet    *pet.Pet
	Clock  pet.Clock
	Cfg    Config
	Worker *ai.SpeechWorker

	Messages  []string // newest first
	Minigame  Minigame
	ShowHelp  bool
	Renaming  bool
	RenameBuf []rune
	LastSave  float64
	Width     int
	Height    int
	Quitting  bool
}

type tickMsg time.Time

// NewModel builds the game model and starts the speech worker when AI
// chatter is enabled.
func NewModel(p *pet.Pet, cfg Config) Model {
	m := Model{
		Pet:      p,
		Clock:    pet.NewClock(cfg.Speed),
		Cfg:      cfg,
		LastSave: pet.Now(),
	}
	if p.AIEnabled && p.AIModel != "" {
		m.Worker = ai.NewSpeechWorker()
	}
	m.log("Press ? for help.")
	if m.Worker != nil {
		m.log(fmt.Sprintf("AI enabled: %s (%s).", p.AIModel, p.AIPersonality))
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tickMsg:
		m.advance()
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// advance runs one simulation step: clock, decay, neglect, evolution, AI
// pump, minigame phase, flavor messages, autosave. Order is fixed.
func (m *Model) advance() {
	dt := m.Clock.Advance(m.Pet)
	t := m.Pet.LastTick

	m.Pet.Tick(dt)
	if msg := m.Pet.UpdateCareMistakes(dt); msg != "" {
		m.log(msg)
	}
	if msg := m.Pet.MaybeEvolve(); msg != "" {
		m.log(msg)
	}

	m.pumpAI(t)
	m.Minigame.Advance(t)
	m.flavor()

	if t-m.LastSave > saveIntervalS {
		m.save()
		m.LastSave = t
	}
}

// pumpAI drains at most one finished line and issues at most one request
// per call, following the randomized speak schedule.
func (m *Model) pumpAI(t float64) {
	if m.Worker == nil {
		return
	}

	if line, ok := m.Worker.TryPop(); ok {
		m.log(m.Pet.Name + ": " + ai.EnforceFirstPerson(m.Pet.Name, line))
	}

	p := m.Pet
	if !p.Alive || p.Asleep || p.Stage == pet.StageEgg {
		return
	}
	if p.AINextSayAt <= 0 {
		p.AINextSayAt = t + 2.0 + pet.RandFloat64()*4.0
	}
	if t >= p.AINextSayAt && t-p.AILastSayAt >= 8.0 {
		if m.Worker.TryRequest(p.AIModel, ai.BuildPrompt(p)) {
			p.AILastSayAt = t
			p.AINextSayAt = t + 18.0 + pet.RandFloat64()*22.0
		}
	}
}

// flavor occasionally nags about whatever is currently going wrong.
func (m *Model) flavor() {
	p := m.Pet
	if !p.Alive {
		return
	}
	if p.Hunger > 90 && pet.RandFloat64() < flavorChance {
		m.log("Your pet looks hungry.")
	}
	if p.Energy < 12 && pet.RandFloat64() < flavorChance {
		m.log("Your pet is exhausted.")
	}
	if (p.Poop >= 2 || p.Hygiene < 20) && pet.RandFloat64() < flavorChance {
		m.log("Clean-up needed.")
	}
}

func (m *Model) log(msg string) {
	m.Messages = append([]string{msg}, m.Messages...)
	if len(m.Messages) > maxMessages {
		m.Messages = m.Messages[:maxMessages]
	}
}

func (m *Model) save() {
	if err := pet.Save(m.Pet, m.Cfg.SavePath); err != nil {
		log.Printf("autosave failed: %v", err)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Renaming {
		return m.handleRenameKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.save()
		m.Quitting = true
		return m, tea.Quit

	case "?":
		m.ShowHelp = !m.ShowHelp
		return m, nil
	}

	if !m.Pet.Alive {
		if msg.String() == "r" {
			*m.Pet = *pet.New()
			m.Pet.InitIfNeeded()
			m.Messages = nil
			m.Minigame = Minigame{}
			m.log("New egg hatched.")
		}
		return m, nil
	}

	switch msg.String() {
	case " ":
		m.pressMinigame()

	case "f":
		switch {
		case m.Pet.Asleep:
			m.log("Shh... wake them first (s).")
		case m.Pet.Stage == pet.StageEgg:
			m.log("It hasn't hatched yet.")
		default:
			m.Pet.Feed()
			m.log("Fed.")
		}

	case "p":
		switch {
		case m.Pet.Asleep:
			m.log("Can't play while asleep.")
		case m.Pet.Stage == pet.StageEgg:
			m.log("Wait for it to hatch.")
		default:
			m.Pet.Play()
			m.log("Played together.")
		}

	case "s":
		if m.Pet.Stage == pet.StageEgg {
			m.log("The egg doesn't sleep.")
		} else {
			m.Pet.ToggleSleep()
			if m.Pet.Asleep {
				m.log("Sleep mode: on.")
			} else {
				m.log("Sleep mode: off.")
			}
		}

	case "c":
		switch {
		case m.Pet.Stage == pet.StageEgg:
			m.log("Nothing to clean yet.")
		case m.Pet.Poop <= 0 && m.Pet.Hygiene >= 95:
			m.log("Already clean.")
		default:
			m.Pet.Clean()
			m.log("Cleaned up.")
		}

	case "m":
		switch {
		case m.Pet.Stage == pet.StageEgg:
			m.log("Not yet.")
		case m.Pet.Medicine():
			m.log(fmt.Sprintf("Gave medicine (-%d coins).", pet.MedicineCost))
		default:
			m.log(fmt.Sprintf("Not enough coins (need %d).", pet.MedicineCost))
		}

	case "t":
		switch {
		case m.Pet.Asleep:
			m.log("Training can wait.")
		case m.Pet.Stage == pet.StageEgg:
			m.log("Not until it hatches.")
		default:
			if m.Pet.Train() {
				m.log("Training paid off: +1 coin.")
			} else {
				m.log("Training complete.")
			}
		}

	case "g":
		switch {
		case m.Pet.Asleep:
			m.log("Wake up first (s).")
		case m.Pet.Stage == pet.StageEgg:
			m.log("Minigames after hatch.")
		default:
			m.Minigame.Dismiss()
			m.Minigame.Start(pet.Now())
			m.log("Minigame started.")
		}

	case "r":
		m.Renaming = true
		m.RenameBuf = []rune(m.Pet.Name)
	}

	return m, nil
}

func (m *Model) pressMinigame() {
	res, handled := m.Minigame.Press(pet.Now())
	if !handled {
		return
	}
	if res.Early {
		m.log("Too early! No reward.")
		return
	}
	if res.NewBest {
		m.log(fmt.Sprintf("New best: %dms!", res.ReactionMS))
	}
	m.Pet.RewardMinigame(res.Reward)
	m.log(fmt.Sprintf("Minigame win: +%d coins, +happiness.", res.Reward))
}

func (m Model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		old := m.Pet.Name
		m.Pet.Rename(string(m.RenameBuf))
		if m.Pet.Name != old {
			m.log("Renamed to " + m.Pet.Name + ".")
		}
		m.Renaming = false

	case "esc":
		m.Renaming = false

	case "backspace":
		if len(m.RenameBuf) > 0 {
			m.RenameBuf = m.RenameBuf[:len(m.RenameBuf)-1]
		}

	default:
		runes := msg.Runes
		if len(runes) == 0 && msg.String() == " " {
			runes = []rune{' '}
		}
		if msg.Type == tea.KeyRunes || msg.String() == " " {
			for _, r := range runes {
				if r >= 32 && r != 127 && len(m.RenameBuf) < pet.MaxNameLen {
					m.RenameBuf = append(m.RenameBuf, r)
				}
			}
		}
	}
	return m, nil
}
