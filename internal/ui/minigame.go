package ui

import (
	"fmt"

	"tama/internal/pet"
)

// MinigamePhase enumerates the reaction game's states.
type MinigamePhase int

const (
	MinigameIdle MinigamePhase = iota
	MinigameWaiting
	MinigameGo
	MinigameDone
)

// Reaction-time reward tiers (milliseconds and coins).
const (
	reactionFastMS  = 250
	reactionOkayMS  = 450
	rewardFast      = 5
	rewardOkay      = 3
	rewardSlow      = 1
	minSignalDelayS = 1.2
	maxSignalDelayS = 3.8
)

// Minigame is the reaction-timer overlay: wait for the signal, then press
// space as fast as possible.
type Minigame struct {
	Phase   MinigamePhase
	GoAt    float64 // when the signal fires (epoch seconds)
	GoTime  float64 // when the signal actually fired
	Timer   float64 // seconds since the signal, while in MinigameGo
	Prompt  string
	BestMS  int
	HasBest bool
}

// Active reports whether the overlay should be shown.
func (g *Minigame) Active() bool {
	return g.Phase != MinigameIdle
}

// Start arms the game with a randomized signal delay. Best time survives
// across rounds.
func (g *Minigame) Start(now float64) {
	delay := minSignalDelayS + pet.RandFloat64()*(maxSignalDelayS-minSignalDelayS)
	g.Phase = MinigameWaiting
	g.GoAt = now + delay
	g.GoTime = 0
	g.Timer = 0
	g.Prompt = "Get ready..."
}

// Advance moves waiting to go once the signal time arrives and keeps the
// reaction timer current.
func (g *Minigame) Advance(now float64) {
	switch g.Phase {
	case MinigameWaiting:
		if now >= g.GoAt {
			g.Phase = MinigameGo
			g.GoTime = now
			g.Prompt = "Signal!"
		}
	case MinigameGo:
		g.Timer = now - g.GoTime
	}
}

// PressResult describes the outcome of a space press.
type PressResult struct {
	Early      bool
	ReactionMS int
	Reward     int
	NewBest    bool
}

// Press handles the space key. Returns handled=false when no round is in
// progress. An early press forfeits the round; a press during the go
// phase scores it and leaves the game in MinigameDone.
func (g *Minigame) Press(now float64) (PressResult, bool) {
	switch g.Phase {
	case MinigameWaiting:
		g.Phase = MinigameIdle
		return PressResult{Early: true}, true

	case MinigameGo:
		ms := int(1000 * (now - g.GoTime))
		res := PressResult{ReactionMS: ms}
		switch {
		case ms < reactionFastMS:
			res.Reward = rewardFast
		case ms < reactionOkayMS:
			res.Reward = rewardOkay
		default:
			res.Reward = rewardSlow
		}
		if !g.HasBest || ms < g.BestMS {
			g.BestMS = ms
			g.HasBest = true
			res.NewBest = true
		}
		g.Phase = MinigameDone
		g.Prompt = fmt.Sprintf("Reaction: %dms", ms)
		return res, true
	}
	return PressResult{}, false
}

// Dismiss closes the overlay after a finished round.
func (g *Minigame) Dismiss() {
	if g.Phase == MinigameDone {
		g.Phase = MinigameIdle
	}
}
