package pet

import (
	"strings"

	"github.com/google/uuid"
)

// Pet represents the virtual pet's full mutable state. It is owned by the
// interaction loop; background workers never write to it directly.
type Pet struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CreatedAt float64 `json:"created_at"`
	LastTick  float64 `json:"last_tick"`
	AgeS      int     `json:"age_s"`
	AgeAccumS float64 `json:"age_accum_s"`
	SimS      int     `json:"sim_s"`
	SimAccumS float64 `json:"sim_accum_s"`

	Hunger    float64 `json:"hunger"` // 0..100 (higher = hungrier)
	Happiness float64 `json:"happiness"`
	Energy    float64 `json:"energy"`
	Hygiene   float64 `json:"hygiene"`
	Health    float64 `json:"health"`

	Asleep bool `json:"asleep"`
	Poop   int  `json:"poop"`
	Coins  int  `json:"coins"`

	Stage          Stage   `json:"stage"`
	Form           Form    `json:"form"`
	CareMistakes   int     `json:"care_mistakes"`
	NeglectHungerS float64 `json:"neglect_hunger_s"`
	NeglectEnergyS float64 `json:"neglect_energy_s"`
	NeglectDirtyS  float64 `json:"neglect_dirty_s"`
	NeglectHealthS float64 `json:"neglect_health_s"`

	AIEnabled     bool        `json:"ai_enabled"`
	AIModel       string      `json:"ai_model"`
	AIPersonality Personality `json:"ai_personality"`
	AINextSayAt   float64     `json:"ai_next_say_at"`
	AILastSayAt   float64     `json:"ai_last_say_at"`

	Alive     bool   `json:"alive"`
	LastEvent string `json:"last_event"`
}

// New creates a pet with fresh-egg defaults.
func New() *Pet {
	return &Pet{
		ID:            uuid.NewString(),
		Name:          DefaultName,
		Hunger:        20.0,
		Happiness:     75.0,
		Energy:        75.0,
		Hygiene:       80.0,
		Health:        90.0,
		Coins:         StartingCoins,
		Stage:         StageEgg,
		Form:          FormEgg,
		AIPersonality: PersonalityClassic,
		Alive:         true,
		LastEvent:     "An egg...",
	}
}

// InitIfNeeded fills in timestamps that haven't been set yet, so a fresh
// pet's first tick sees a sane delta.
func (p *Pet) InitIfNeeded() {
	t := Now()
	if p.CreatedAt <= 0 {
		p.CreatedAt = t
	}
	if p.LastTick <= 0 {
		p.LastTick = t
	}
}

// Mood derives the pet's current mood from its vitals.
func (p *Pet) Mood() Mood {
	if !p.Alive {
		return MoodGone
	}
	if p.Asleep {
		return MoodSleepy
	}
	danger := 0
	if p.Hunger > 80 {
		danger++
	}
	if p.Energy < 20 {
		danger++
	}
	if p.Hygiene < 25 || p.Poop >= 2 {
		danger++
	}
	if p.Health < 40 {
		danger++
	}
	if danger >= 2 {
		return MoodStruggling
	}
	if p.Happiness < 35 {
		return MoodBored
	}
	if p.Happiness > 85 && p.Health > 80 {
		return MoodSparkly
	}
	return MoodOkay
}

// Tick advances the simulation by dt game-seconds. Simulated age accrues
// even after death; everything else is gated on being alive.
func (p *Pet) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	Carry(&p.SimS, &p.SimAccumS, dt)

	if !p.Alive {
		return
	}

	minutes := dt / 60.0

	if p.Asleep {
		p.Energy += SleepEnergyGain * minutes
		p.Hunger += SleepHungerRise * minutes
		if p.Hunger > 80 {
			p.Happiness -= SleepHappyDropHuge * minutes
		} else {
			p.Happiness -= SleepHappyDropFed * minutes
		}
		p.Hygiene -= SleepHygieneDrop * minutes
	} else {
		p.Energy -= AwakeEnergyDrop * minutes
		p.Hunger += AwakeHungerRise * minutes
		p.Happiness -= AwakeHappyDrop * minutes
		p.Hygiene -= AwakeHygieneDrop * minutes
	}

	if p.Poop > 0 {
		p.Hygiene -= PoopHygieneDropUnit * minutes * float64(min(MaxPoop, p.Poop))
	}

	if p.Hunger > 92 {
		p.Health -= StarvingHealthDrop * minutes
	}
	if p.Energy < 10 {
		p.Health -= ExhaustedHealthDrop * minutes
	}
	if p.Hygiene < 15 {
		p.Health -= FilthyHealthDrop * minutes
	}
	if p.Happiness < 15 {
		p.Health -= MiserableHealthDrop * minutes
	}
	if p.Hunger < 35 && p.Energy > 40 && p.Hygiene > 40 && p.Happiness > 40 {
		p.Health += ThrivingHealthGain * minutes
	}

	p.Hunger = clamp(p.Hunger, MinVital, MaxVital)
	p.Happiness = clamp(p.Happiness, MinVital, MaxVital)
	p.Energy = clamp(p.Energy, MinVital, MaxVital)
	p.Hygiene = clamp(p.Hygiene, MinVital, MaxVital)
	p.Health = clamp(p.Health, MinVital, MaxVital)

	if p.Health <= 0.1 {
		p.Alive = false
		p.LastEvent = "..."
	}
}

// UpdateCareMistakes advances the four neglect timers by dt game-seconds.
// Timers are checked in priority order (hunger > exhaustion > mess >
// health) and at most one mistake fires per call; a timer that fires
// resets to zero. Returns a human-readable reason or "".
func (p *Pet) UpdateCareMistakes(dt float64) string {
	if !p.Alive {
		return ""
	}

	bump := func(timer *float64, active bool) bool {
		if active {
			*timer += dt
		} else {
			*timer = 0
		}
		if *timer >= NeglectThresholdS {
			*timer = 0
			return true
		}
		return false
	}

	var reason string
	switch {
	case bump(&p.NeglectHungerS, p.Hunger >= 92 && !p.Asleep):
		reason = "Hunger neglected"
	case bump(&p.NeglectEnergyS, p.Energy <= 8 && !p.Asleep):
		reason = "Exhaustion neglected"
	case bump(&p.NeglectDirtyS, (p.Poop >= 2 || p.Hygiene <= 15) && !p.Asleep):
		reason = "Mess neglected"
	case bump(&p.NeglectHealthS, p.Health <= 35):
		reason = "Health neglected"
	default:
		return ""
	}

	p.CareMistakes++
	if p.CareMistakes > MaxCareMistakes {
		p.CareMistakes = MaxCareMistakes
	}
	return "Care mistake: " + reason + " (+1)"
}

// CareScore is the derived care-quality metric used at evolution points.
func (p *Pet) CareScore() float64 {
	return (100 - p.Hunger) + p.Happiness + p.Energy + p.Hygiene + p.Health -
		12*float64(p.CareMistakes) - 8*float64(p.Poop)
}

func (p *Pet) evolveTo(stage Stage, form Form, event string) {
	p.Stage = stage
	p.Form = form
	p.LastEvent = event
}

// MaybeEvolve grants at most the next stage when the simulated age crosses
// its threshold, picking a form from how well the pet has been cared for.
// Returns a transition description or "".
func (p *Pet) MaybeEvolve() string {
	if !p.Alive {
		return ""
	}
	if p.Stage >= StageAdult || p.SimS < p.Stage.Threshold() {
		return ""
	}

	switch p.Stage {
	case StageEgg:
		p.Asleep = false
		p.evolveTo(StageBaby, FormBloblet, "It hatched!")
		return "Evolved: egg -> baby"

	case StageBaby:
		form := FormSpiky
		if p.CareMistakes <= 0 && p.Happiness >= 70 && p.Hygiene >= 60 {
			form = FormSprout
		} else if p.Hygiene >= 55 && p.Health >= 55 {
			form = FormShell
		}
		p.evolveTo(StageChild, form, "Growing up!")
		return "Evolved: baby -> child"

	case StageChild:
		form := FormGrit
		if p.CareScore() >= 360 && p.Health >= 70 {
			form = FormWing
		} else if p.Happiness >= 55 && p.Energy >= 35 {
			form = FormBouncy
		}
		p.evolveTo(StageTeen, form, "Teen phase!")
		return "Evolved: child -> teen"

	case StageTeen:
		form := FormGremlin
		if p.CareMistakes <= 1 && p.Health >= 75 && p.Happiness >= 70 && p.Hygiene >= 55 {
			form = FormSeraph
		} else if p.CareMistakes <= 3 && p.Health >= 45 {
			form = FormClassic
		}
		p.evolveTo(StageAdult, form, "Fully grown!")
		return "Evolved: teen -> adult"
	}
	return ""
}

// MaybePoop rolls for a new mess, capped at MaxPoop.
func (p *Pet) MaybePoop() {
	if !p.Alive {
		return
	}
	if RandFloat64() < PoopChance {
		p.Poop = min(MaxPoop, p.Poop+1)
	}
}

// Feed reduces hunger and may cause a mess.
func (p *Pet) Feed() {
	p.Hunger = clamp(p.Hunger-FeedHungerDrop, MinVital, MaxVital)
	p.Happiness = clamp(p.Happiness+FeedHappyGain, MinVital, MaxVital)
	p.LastEvent = "Nom nom."
	p.MaybePoop()
}

// Play boosts happiness at the cost of energy; it also works up an appetite.
func (p *Pet) Play() {
	p.Happiness = clamp(p.Happiness+PlayHappyGain, MinVital, MaxVital)
	p.Energy = clamp(p.Energy-PlayEnergyDrop, MinVital, MaxVital)
	p.Hunger = clamp(p.Hunger+PlayHungerRise, MinVital, MaxVital)
	p.LastEvent = "Played!"
}

// ToggleSleep flips the sleep state.
func (p *Pet) ToggleSleep() {
	p.Asleep = !p.Asleep
	if p.Asleep {
		p.LastEvent = "Zzz..."
	} else {
		p.LastEvent = "Awake!"
	}
}

// Clean removes all mess and restores hygiene.
func (p *Pet) Clean() {
	p.Poop = 0
	p.Hygiene = clamp(p.Hygiene+CleanHygieneGain, MinVital, MaxVital)
	p.LastEvent = "Cleaned."
}

// Medicine restores health for coins. Returns false when the pet can't
// afford it.
func (p *Pet) Medicine() bool {
	if p.Coins < MedicineCost {
		return false
	}
	p.Coins -= MedicineCost
	p.Health = clamp(p.Health+MedicineHealth, MinVital, MaxVital)
	p.Happiness = clamp(p.Happiness-1, MinVital, MaxVital)
	p.LastEvent = "Medicine."
	return true
}

// Train gives a small happiness boost and sometimes pays out a coin.
// Returns true on a payout.
func (p *Pet) Train() bool {
	p.Happiness = clamp(p.Happiness+TrainHappyGain, MinVital, MaxVital)
	p.Energy = clamp(p.Energy-TrainEnergyDrop, MinVital, MaxVital)
	p.LastEvent = "Trained."
	if RandFloat64() < TrainCoinChance {
		p.Coins++
		return true
	}
	return false
}

// RewardMinigame applies a minigame payout: coins plus a happiness boost
// that scales with the reward, at a small energy cost.
func (p *Pet) RewardMinigame(coins int) {
	p.Coins += coins
	p.Happiness = clamp(p.Happiness+6+float64(coins), MinVital, MaxVital)
	p.Energy = clamp(p.Energy-4, MinVital, MaxVital)
}

// Rename sets the pet's name, trimmed and capped at MaxNameLen runes.
// Empty input keeps the old name.
func (p *Pet) Rename(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	runes := []rune(name)
	if len(runes) > MaxNameLen {
		name = string(runes[:MaxNameLen])
	}
	p.Name = name
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
