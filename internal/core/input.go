package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionFlap              // Space - flap while running, restart after game over
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - dump the current frame to a text file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// SoundID names a fire-and-forget sound effect.
type SoundID int

const (
	SoundFlap SoundID = iota
	SoundHit
)

// String returns a human-readable name for the sound.
func (s SoundID) String() string {
	switch s {
	case SoundFlap:
		return "flap"
	case SoundHit:
		return "hit"
	default:
		return "unknown"
	}
}
