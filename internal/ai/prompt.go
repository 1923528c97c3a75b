package ai

import (
	"fmt"

	"tama/internal/pet"
)

var promptTopics = []string{
	"food",
	"dreams",
	"games",
	"the human",
	"being tiny",
	"stars",
	"time",
	"training",
	"cleanliness",
}

// BuildPrompt assembles the one-line generation prompt from the pet's
// current state, with a randomly chosen topic for variety.
func BuildPrompt(p *pet.Pet) string {
	topic := promptTopics[int(pet.RandFloat64()*float64(len(promptTopics)))%len(promptTopics)]
	persona := p.AIPersonality
	if persona == "" {
		persona = pet.PersonalityClassic
	}

	return fmt.Sprintf(
		"You are a tiny Tamagotchi-style virtual pet in a terminal.\n"+
			"Respond with exactly ONE short line, max 60 characters. No emojis.\n"+
			"Speak ONLY in first person (I/me/my). Never use your name.\n"+
			"Never refer to yourself in third person (no '<name> is', 'it is', etc.).\n"+
			"Do NOT introduce yourself with 'my name is'.\n"+
			"No quotes, no markdown, no extra lines.\n"+
			"Personality: %s (%s).\n"+
			"Current: name=%s, stage=%s/%s, mood=%s.\n"+
			"Stats (0-100): hunger=%d, happy=%d, energy=%d, hygiene=%d, health=%d, poop=%d, mistakes=%d.\n"+
			"Say something about %s.",
		persona, persona.Style(),
		p.Name, p.Stage, p.Form, p.Mood(),
		int(p.Hunger), int(p.Happiness), int(p.Energy), int(p.Hygiene), int(p.Health),
		p.Poop, p.CareMistakes,
		topic,
	)
}
