package config

// StateID identifies a top-level game scene.
type StateID int

const (
	StateNone StateID = iota
	StateMainMenu
	StateLevel
	StateEnding
)

func (s StateID) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateLevel:
		return "level"
	case StateEnding:
		return "ending"
	default:
		return "none"
	}
}
