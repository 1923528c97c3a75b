package ui

import "tama/internal/pet"

// Sprite returns the ASCII art for the pet's current look: death and the
// egg trump everything, sleep trumps stage, and child/teen/adult vary by
// form.
func Sprite(p *pet.Pet) []string {
	if !p.Alive {
		return []string{
			"   .-''''-.",
			"  /  RIP  \\",
			" |   xx   |",
			"  \\______/",
			"   (____)",
		}
	}
	if p.Stage == pet.StageEgg {
		return []string{
			"    .----. ",
			"   / .--.\\ ",
			"  |  '--' |",
			"   \\_____/ ",
			"    (egg)  ",
		}
	}
	if p.Asleep {
		return []string{
			"   .-''''-.",
			"  /  zZz  \\",
			" |  (-_-) |",
			"  \\______/ ",
			"   /||||\\  ",
		}
	}

	switch p.Stage {
	case pet.StageBaby:
		return []string{
			"   .-''''-.",
			"  /  o o  \\",
			" |   (.)  |",
			"  \\______/ ",
			"   /||||\\  ",
		}

	case pet.StageChild:
		switch p.Form {
		case pet.FormSprout:
			return []string{
				"   .-''''-.",
				"  /  \\|/  \\",
				" |  (o_o) |",
				"  \\______/ ",
				"    /||\\   ",
			}
		case pet.FormShell:
			return []string{
				"   .-''''-.",
				"  /  ___  \\",
				" |  (o_o) |",
				"  \\__===_/ ",
				"    /||\\   ",
			}
		default: // spiky
			return []string{
				"   .-''''-.",
				"  /  ^ ^  \\",
				" |  (o_o) |",
				"  \\__^_^_/ ",
				"    /||\\   ",
			}
		}

	case pet.StageTeen:
		switch p.Form {
		case pet.FormWing:
			return []string{
				"  .-''''-.",
				" / \\_ _/ \\",
				"|  (o_o) |",
				" \\__\\_/__/ ",
				"   /|||\\   ",
			}
		case pet.FormBouncy:
			return []string{
				"   .-''''-.",
				"  /  ._.  \\",
				" |  (o_o) |",
				"  \\__---_/ ",
				"    /||\\   ",
			}
		default: // grit
			return []string{
				"   .-''''-.",
				"  /  x x  \\",
				" |  (o_o) |",
				"  \\__-_-_/ ",
				"    /||\\   ",
			}
		}

	case pet.StageAdult:
		switch p.Form {
		case pet.FormSeraph:
			return []string{
				"  .-''''-.",
				" /  ( )  \\",
				"|  (o_o) |",
				" \\__\\_/__/ ",
				"  _/|||\\_  ",
			}
		case pet.FormGremlin:
			return []string{
				"   .-''''-.",
				"  /  > <  \\",
				" |  (o_o) |",
				"  \\__\\_/^/ ",
				"    /||\\   ",
			}
		default: // classic
			return []string{
				"   .-''''-.",
				"  /  o o  \\",
				" |  (o_o) |",
				"  \\__\\_/__/ ",
				"    /||\\   ",
			}
		}
	}

	return []string{
		"   .-''''-.",
		"  /       \\",
		" |  (o_o) |",
		"  \\______/ ",
		"   /||||\\  ",
	}
}
