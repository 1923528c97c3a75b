package pet

import (
	"encoding/json"
	"fmt"
)

// Game constants
const (
	DefaultName = "Tama"
	MaxNameLen  = 20

	MaxVital = 100.0
	MinVital = 0.0
	MaxPoop  = 4

	// Neglect threshold for care mistakes (in game-seconds)
	NeglectThresholdS = 15 * 60.0
	MaxCareMistakes   = 99

	// Stat change rates (per game-minute)
	SleepEnergyGain     = 10.0
	SleepHungerRise     = 1.2
	SleepHygieneDrop    = 0.25
	SleepHappyDropFed   = 0.05
	SleepHappyDropHuge  = 0.4 // applies while hunger > 80
	AwakeEnergyDrop     = 4.0
	AwakeHungerRise     = 3.0
	AwakeHappyDrop      = 1.6
	AwakeHygieneDrop    = 1.1
	PoopHygieneDropUnit = 0.35

	// Health penalties/bonus (per game-minute)
	StarvingHealthDrop  = 6.0
	ExhaustedHealthDrop = 4.0
	FilthyHealthDrop    = 5.0
	MiserableHealthDrop = 2.0
	ThrivingHealthGain  = 1.2

	// Action effects
	FeedHungerDrop   = 22.0
	FeedHappyGain    = 2.0
	PlayHappyGain    = 16.0
	PlayEnergyDrop   = 12.0
	PlayHungerRise   = 6.0
	CleanHygieneGain = 35.0
	MedicineCost     = 4
	MedicineHealth   = 30.0
	TrainHappyGain   = 6.0
	TrainEnergyDrop  = 6.0
	TrainCoinChance  = 0.35
	PoopChance       = 0.22

	StartingCoins = 10
)

// Stage is the pet's coarse lifecycle phase. Stages only advance.
type Stage int

const (
	StageEgg Stage = iota
	StageBaby
	StageChild
	StageTeen
	StageAdult
)

var stageNames = [...]string{"egg", "baby", "child", "teen", "adult"}

// stageSeconds is how long each stage lasts in game-seconds. The adult
// duration is effectively infinite.
var stageSeconds = [...]int{60, 20 * 60, 60 * 60, 3 * 60 * 60, 1 << 30}

func (s Stage) String() string {
	if s < StageEgg || s > StageAdult {
		return "egg"
	}
	return stageNames[s]
}

// Threshold returns the cumulative game-seconds needed to leave this stage.
func (s Stage) Threshold() int {
	total := 0
	for i := StageEgg; i <= s && i <= StageAdult; i++ {
		total += stageSeconds[i]
	}
	return total
}

// MarshalJSON encodes the stage as its save-file string form.
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the save-file string form; unknown values fall back
// to egg so a tampered save still loads.
func (s *Stage) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("stage: %w", err)
	}
	for i, n := range stageNames {
		if n == name {
			*s = Stage(i)
			return nil
		}
	}
	*s = StageEgg
	return nil
}

// Form is the cosmetic variant chosen at each stage transition.
type Form int

const (
	FormEgg Form = iota
	FormBloblet
	// Child forms
	FormSprout
	FormShell
	FormSpiky
	// Teen forms
	FormWing
	FormBouncy
	FormGrit
	// Adult forms
	FormSeraph
	FormClassic
	FormGremlin
)

var formNames = [...]string{
	"egg", "bloblet",
	"sprout", "shell", "spiky",
	"wing", "bouncy", "grit",
	"seraph", "classic", "gremlin",
}

func (f Form) String() string {
	if f < FormEgg || f > FormGremlin {
		return "egg"
	}
	return formNames[f]
}

// MarshalJSON encodes the form as its save-file string form.
func (f Form) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON accepts the save-file string form; unknown values fall back
// to egg.
func (f *Form) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("form: %w", err)
	}
	for i, n := range formNames {
		if n == name {
			*f = Form(i)
			return nil
		}
	}
	*f = FormEgg
	return nil
}

// Personality selects the voice used for AI chatter.
type Personality string

const (
	PersonalityClassic Personality = "classic"
	PersonalitySweet   Personality = "sweet"
	PersonalityChaotic Personality = "chaotic"
	PersonalityWise    Personality = "wise"
	PersonalitySnarky  Personality = "snarky"
	PersonalityShy     Personality = "shy"
)

// Personalities lists every selectable personality, in wizard order.
var Personalities = []Personality{
	PersonalityClassic,
	PersonalitySweet,
	PersonalityChaotic,
	PersonalityWise,
	PersonalitySnarky,
	PersonalityShy,
}

// Style describes the personality for the generation prompt.
func (p Personality) Style() string {
	switch p {
	case PersonalitySweet:
		return "wholesome and affectionate"
	case PersonalityChaotic:
		return "hyper, weird, silly"
	case PersonalityWise:
		return "calm, zen, slightly poetic"
	case PersonalitySnarky:
		return "dry, playful sarcasm (not mean)"
	case PersonalityShy:
		return "quiet, bashful, gentle"
	case PersonalityClassic:
		return "simple, cute, 90s virtual pet vibe"
	default:
		return "simple, cute"
	}
}

// Mood is a coarse read of the pet's state, used for sprites and prompts.
type Mood string

const (
	MoodGone       Mood = "gone"
	MoodSleepy     Mood = "sleepy"
	MoodStruggling Mood = "struggling"
	MoodBored      Mood = "bored"
	MoodSparkly    Mood = "sparkly"
	MoodOkay       Mood = "okay"
)
