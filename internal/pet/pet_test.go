package pet

import (
	"math"
	"testing"
)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestTickZeroDeltaIsNoop(t *testing.T) {
	p := New()
	before := *p
	p.Tick(0)
	p.Tick(-5)
	if *p != before {
		t.Fatalf("Tick with dt<=0 mutated the pet: %+v", *p)
	}
}

func TestTickAwakeMinuteDeltas(t *testing.T) {
	p := New()
	p.Tick(60)

	approx(t, "Hunger", p.Hunger, 20+AwakeHungerRise)
	approx(t, "Happiness", p.Happiness, 75-AwakeHappyDrop)
	approx(t, "Energy", p.Energy, 75-AwakeEnergyDrop)
	approx(t, "Hygiene", p.Hygiene, 80-AwakeHygieneDrop)
	// Well-fed and rested, so the thriving bonus applies.
	approx(t, "Health", p.Health, 90+ThrivingHealthGain)
	if p.SimS != 60 {
		t.Errorf("SimS = %d, want 60", p.SimS)
	}
}

func TestTickAsleepMinuteDeltas(t *testing.T) {
	p := New()
	p.Asleep = true
	p.Tick(60)

	approx(t, "Energy", p.Energy, 75+SleepEnergyGain)
	approx(t, "Hunger", p.Hunger, 20+SleepHungerRise)
	approx(t, "Happiness", p.Happiness, 75-SleepHappyDropFed)
	approx(t, "Hygiene", p.Hygiene, 80-SleepHygieneDrop)
}

func TestTickAsleepHungryHappinessDrop(t *testing.T) {
	p := New()
	p.Asleep = true
	p.Hunger = 85
	p.Tick(60)

	approx(t, "Happiness", p.Happiness, 75-SleepHappyDropHuge)
}

func TestTickPoopAcceleratesHygieneDrop(t *testing.T) {
	p := New()
	p.Poop = 2
	p.Tick(60)

	approx(t, "Hygiene", p.Hygiene, 80-AwakeHygieneDrop-PoopHygieneDropUnit*2)
}

func TestTickPoopDrainCapped(t *testing.T) {
	p := New()
	p.Poop = 10 // out-of-range save; drain still capped at MaxPoop units
	p.Tick(60)

	approx(t, "Hygiene", p.Hygiene, 80-AwakeHygieneDrop-PoopHygieneDropUnit*MaxPoop)
}

func TestTickStarvingHealthPenalty(t *testing.T) {
	p := New()
	p.Hunger = 95
	p.Tick(60)

	approx(t, "Health", p.Health, 90-StarvingHealthDrop)
}

func TestTickVitalsClamped(t *testing.T) {
	p := New()
	p.Asleep = true
	p.Energy = 99
	p.Tick(600) // ten game-minutes of sleep

	if p.Energy != MaxVital {
		t.Errorf("Energy = %v, want clamped to %v", p.Energy, MaxVital)
	}
}

func TestTickDeathFreezesVitalsButNotSimAge(t *testing.T) {
	p := New()
	p.Health = 1
	p.Hunger = 100
	p.Tick(60)

	if p.Alive {
		t.Fatal("pet survived starving at 1 health for a minute")
	}
	if p.LastEvent != "..." {
		t.Errorf("LastEvent = %q, want %q", p.LastEvent, "...")
	}

	frozen := *p
	p.Tick(120)
	if p.SimS != frozen.SimS+120 {
		t.Errorf("SimS = %d, want %d (sim age keeps flowing)", p.SimS, frozen.SimS+120)
	}
	if p.Hunger != frozen.Hunger || p.Energy != frozen.Energy || p.Hygiene != frozen.Hygiene {
		t.Error("vitals changed after death")
	}
}

func TestCareMistakeFiresAtThreshold(t *testing.T) {
	p := New()
	p.Hunger = 95

	if msg := p.UpdateCareMistakes(NeglectThresholdS - 1); msg != "" {
		t.Fatalf("mistake fired below threshold: %q", msg)
	}
	msg := p.UpdateCareMistakes(1)
	if msg != "Care mistake: Hunger neglected (+1)" {
		t.Fatalf("msg = %q", msg)
	}
	if p.CareMistakes != 1 {
		t.Errorf("CareMistakes = %d, want 1", p.CareMistakes)
	}
	if p.NeglectHungerS != 0 {
		t.Errorf("NeglectHungerS = %v, want reset to 0", p.NeglectHungerS)
	}
}

func TestCareMistakeTimerResetsWhenConditionClears(t *testing.T) {
	p := New()
	p.Hunger = 95
	p.UpdateCareMistakes(NeglectThresholdS / 2)

	p.Hunger = 50
	p.UpdateCareMistakes(1)
	if p.NeglectHungerS != 0 {
		t.Errorf("NeglectHungerS = %v after hunger recovered, want 0", p.NeglectHungerS)
	}
}

func TestCareMistakePriorityFiresOnlyHighest(t *testing.T) {
	p := New()
	p.Hunger = 95
	p.Energy = 5
	p.Poop = 3
	p.Health = 30

	msg := p.UpdateCareMistakes(NeglectThresholdS)
	if msg != "Care mistake: Hunger neglected (+1)" {
		t.Fatalf("msg = %q, want the hunger mistake", msg)
	}
	if p.CareMistakes != 1 {
		t.Errorf("CareMistakes = %d, want exactly 1", p.CareMistakes)
	}
	// The hunger case short-circuits, so the lower-priority timers were
	// not even advanced this call.
	if p.NeglectEnergyS != 0 || p.NeglectDirtyS != 0 || p.NeglectHealthS != 0 {
		t.Errorf("lower-priority timers advanced: energy=%v dirty=%v health=%v",
			p.NeglectEnergyS, p.NeglectDirtyS, p.NeglectHealthS)
	}
}

func TestCareMistakeSleepSuppressesAllButHealth(t *testing.T) {
	p := New()
	p.Asleep = true
	p.Hunger = 95
	p.Energy = 5
	p.Health = 30

	msg := p.UpdateCareMistakes(NeglectThresholdS)
	if msg != "Care mistake: Health neglected (+1)" {
		t.Fatalf("msg = %q, want the health mistake", msg)
	}
}

func TestCareMistakesClamped(t *testing.T) {
	p := New()
	p.CareMistakes = MaxCareMistakes
	p.Hunger = 95
	p.UpdateCareMistakes(NeglectThresholdS)
	if p.CareMistakes != MaxCareMistakes {
		t.Errorf("CareMistakes = %d, want clamped at %d", p.CareMistakes, MaxCareMistakes)
	}
}

func TestCareMistakesIgnoredWhenDead(t *testing.T) {
	p := New()
	p.Alive = false
	p.Hunger = 95
	if msg := p.UpdateCareMistakes(NeglectThresholdS); msg != "" {
		t.Fatalf("dead pet got a care mistake: %q", msg)
	}
}

func TestEvolveEggHatches(t *testing.T) {
	p := New()
	p.Asleep = true
	p.SimS = StageEgg.Threshold()

	msg := p.MaybeEvolve()
	if msg != "Evolved: egg -> baby" {
		t.Fatalf("msg = %q", msg)
	}
	if p.Stage != StageBaby || p.Form != FormBloblet {
		t.Errorf("stage/form = %v/%v, want baby/bloblet", p.Stage, p.Form)
	}
	if p.Asleep {
		t.Error("hatching should wake the pet")
	}
}

func TestEvolveOneStagePerCall(t *testing.T) {
	p := New()
	p.SimS = 1 << 29 // far past every threshold

	stages := []Stage{StageBaby, StageChild, StageTeen, StageAdult}
	for _, want := range stages {
		if msg := p.MaybeEvolve(); msg == "" {
			t.Fatalf("no evolution while at %v with huge sim age", p.Stage)
		}
		if p.Stage != want {
			t.Fatalf("Stage = %v, want %v", p.Stage, want)
		}
	}
	if msg := p.MaybeEvolve(); msg != "" {
		t.Fatalf("adult evolved again: %q", msg)
	}
}

func TestEvolveBelowThresholdDoesNothing(t *testing.T) {
	p := New()
	p.SimS = StageEgg.Threshold() - 1
	if msg := p.MaybeEvolve(); msg != "" {
		t.Fatalf("evolved below threshold: %q", msg)
	}
}

func TestEvolveDeadPetDoesNothing(t *testing.T) {
	p := New()
	p.Alive = false
	p.SimS = 1 << 29
	if msg := p.MaybeEvolve(); msg != "" {
		t.Fatalf("dead pet evolved: %q", msg)
	}
}

func childAt(simS int) *Pet {
	p := New()
	p.Stage = StageBaby
	p.Form = FormBloblet
	p.SimS = simS
	return p
}

func TestEvolveChildFormTiers(t *testing.T) {
	at := StageBaby.Threshold()

	cases := []struct {
		name  string
		setup func(*Pet)
		want  Form
	}{
		{"perfect care", func(p *Pet) {
			p.CareMistakes = 0
			p.Happiness = 70
			p.Hygiene = 60
		}, FormSprout},
		{"one mistake drops to shell", func(p *Pet) {
			p.CareMistakes = 1
			p.Happiness = 90
			p.Hygiene = 90
		}, FormShell},
		{"low happiness drops to shell", func(p *Pet) {
			p.Happiness = 69
			p.Hygiene = 60
		}, FormShell},
		{"dirty and unhealthy", func(p *Pet) {
			p.Happiness = 50
			p.Hygiene = 40
		}, FormSpiky},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := childAt(at)
			c.setup(p)
			p.MaybeEvolve()
			if p.Stage != StageChild || p.Form != c.want {
				t.Errorf("got %v/%v, want child/%v", p.Stage, p.Form, c.want)
			}
		})
	}
}

func TestEvolveTeenFormTiers(t *testing.T) {
	at := StageChild.Threshold()

	cases := []struct {
		name  string
		setup func(*Pet)
		want  Form
	}{
		// Default vitals give a care score of 400.
		{"high score healthy", func(p *Pet) {}, FormWing},
		{"low health drops to bouncy", func(p *Pet) {
			p.Health = 69
		}, FormBouncy},
		{"poor all around", func(p *Pet) {
			p.Health = 69
			p.Happiness = 50
			p.Energy = 30
		}, FormGrit},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := New()
			p.Stage = StageChild
			p.Form = FormSprout
			p.SimS = at
			c.setup(p)
			p.MaybeEvolve()
			if p.Stage != StageTeen || p.Form != c.want {
				t.Errorf("got %v/%v, want teen/%v", p.Stage, p.Form, c.want)
			}
		})
	}
}

func TestEvolveAdultFormTiers(t *testing.T) {
	at := StageTeen.Threshold()

	cases := []struct {
		name  string
		setup func(*Pet)
		want  Form
	}{
		{"near-perfect care", func(p *Pet) {
			p.CareMistakes = 1
		}, FormSeraph},
		{"a few mistakes", func(p *Pet) {
			p.CareMistakes = 3
		}, FormClassic},
		{"too many mistakes", func(p *Pet) {
			p.CareMistakes = 4
		}, FormGremlin},
		{"mistakes plus poor health", func(p *Pet) {
			p.CareMistakes = 2
			p.Health = 40
		}, FormGremlin},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := New()
			p.Stage = StageTeen
			p.Form = FormWing
			p.SimS = at
			c.setup(p)
			p.MaybeEvolve()
			if p.Stage != StageAdult || p.Form != c.want {
				t.Errorf("got %v/%v, want adult/%v", p.Stage, p.Form, c.want)
			}
		})
	}
}

func TestFeedEffectsAndPoopRoll(t *testing.T) {
	mockRand(t, 0.99) // no poop
	p := New()
	p.Hunger = 50
	p.Feed()
	approx(t, "Hunger", p.Hunger, 50-FeedHungerDrop)
	approx(t, "Happiness", p.Happiness, 75+FeedHappyGain)
	if p.Poop != 0 {
		t.Errorf("Poop = %d with a high roll, want 0", p.Poop)
	}

	mockRand(t, 0.1) // below PoopChance
	p.Feed()
	if p.Poop != 1 {
		t.Errorf("Poop = %d with a low roll, want 1", p.Poop)
	}
}

func TestFeedHungerClampsAtZero(t *testing.T) {
	mockRand(t, 0.99)
	p := New()
	p.Hunger = 10
	p.Feed()
	if p.Hunger != 0 {
		t.Errorf("Hunger = %v, want clamped to 0", p.Hunger)
	}
}

func TestPlayEffects(t *testing.T) {
	p := New()
	p.Play()
	approx(t, "Happiness", p.Happiness, 75+PlayHappyGain)
	approx(t, "Energy", p.Energy, 75-PlayEnergyDrop)
	approx(t, "Hunger", p.Hunger, 20+PlayHungerRise)
}

func TestMedicineNeedsCoins(t *testing.T) {
	p := New()
	p.Coins = MedicineCost - 1
	p.Health = 50
	if p.Medicine() {
		t.Fatal("Medicine succeeded without enough coins")
	}
	if p.Health != 50 {
		t.Errorf("Health = %v, want untouched 50", p.Health)
	}

	p.Coins = MedicineCost
	if !p.Medicine() {
		t.Fatal("Medicine failed with exact coins")
	}
	if p.Coins != 0 {
		t.Errorf("Coins = %d, want 0", p.Coins)
	}
	approx(t, "Health", p.Health, 50+MedicineHealth)
}

func TestTrainPayout(t *testing.T) {
	mockRand(t, 0.1)
	p := New()
	if !p.Train() {
		t.Fatal("low roll should pay out a coin")
	}
	if p.Coins != StartingCoins+1 {
		t.Errorf("Coins = %d, want %d", p.Coins, StartingCoins+1)
	}

	mockRand(t, 0.9)
	if p.Train() {
		t.Fatal("high roll should not pay out")
	}
}

func TestCleanResetsPoop(t *testing.T) {
	p := New()
	p.Poop = 3
	p.Hygiene = 40
	p.Clean()
	if p.Poop != 0 {
		t.Errorf("Poop = %d, want 0", p.Poop)
	}
	approx(t, "Hygiene", p.Hygiene, 40+CleanHygieneGain)
}

func TestRewardMinigame(t *testing.T) {
	p := New()
	p.RewardMinigame(5)
	if p.Coins != StartingCoins+5 {
		t.Errorf("Coins = %d, want %d", p.Coins, StartingCoins+5)
	}
	approx(t, "Happiness", p.Happiness, 75+6+5)
	approx(t, "Energy", p.Energy, 75-4)
}

func TestRename(t *testing.T) {
	p := New()

	p.Rename("  Mochi  ")
	if p.Name != "Mochi" {
		t.Errorf("Name = %q, want trimmed %q", p.Name, "Mochi")
	}

	p.Rename("")
	if p.Name != "Mochi" {
		t.Errorf("Name = %q, empty rename should keep the old name", p.Name)
	}

	p.Rename("abcdefghijklmnopqrstuvwxyz")
	if p.Name != "abcdefghijklmnopqrst" {
		t.Errorf("Name = %q, want capped at %d runes", p.Name, MaxNameLen)
	}
}

func TestMood(t *testing.T) {
	p := New()
	if got := p.Mood(); got != MoodOkay {
		t.Errorf("fresh pet mood = %v, want okay", got)
	}

	p.Happiness = 90
	p.Health = 85
	if got := p.Mood(); got != MoodSparkly {
		t.Errorf("mood = %v, want sparkly", got)
	}

	p.Happiness = 30
	if got := p.Mood(); got != MoodBored {
		t.Errorf("mood = %v, want bored", got)
	}

	p.Hunger = 85
	p.Energy = 10
	if got := p.Mood(); got != MoodStruggling {
		t.Errorf("mood = %v, want struggling", got)
	}

	p.Asleep = true
	if got := p.Mood(); got != MoodSleepy {
		t.Errorf("mood = %v, want sleepy", got)
	}

	p.Alive = false
	if got := p.Mood(); got != MoodGone {
		t.Errorf("mood = %v, want gone", got)
	}
}

func TestStageThresholds(t *testing.T) {
	if got := StageEgg.Threshold(); got != 60 {
		t.Errorf("egg threshold = %d, want 60", got)
	}
	if got := StageBaby.Threshold(); got != 60+20*60 {
		t.Errorf("baby threshold = %d, want %d", got, 60+20*60)
	}
	if got := StageChild.Threshold(); got != 60+20*60+60*60 {
		t.Errorf("child threshold = %d", got)
	}
	if got := StageTeen.Threshold(); got != 60+20*60+60*60+3*60*60 {
		t.Errorf("teen threshold = %d", got)
	}
}
