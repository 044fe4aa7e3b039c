package core

// Dismissed is the answer index for a prompt closed without a selection.
const Dismissed = -1

// Prompt is a modal choice a game asks the player to make. While a prompt is
// pending the platform stops ticking the game.
type Prompt struct {
	Title   string
	Lines   []string
	Options []string
	Default int
}

// Valid reports whether index names one of the options.
func (p Prompt) Valid(index int) bool {
	return index >= 0 && index < len(p.Options)
}
