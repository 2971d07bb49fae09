package types

// Screen identifies which top-level view the app is showing
type Screen int

const (
	ScreenAuth Screen = iota
	ScreenCreate
	ScreenRoast
	ScreenFocus
	ScreenCompletion
	ScreenMyTasks
	ScreenFeed
	ScreenLeaderboard
)

// String returns the display name of the screen
func (s Screen) String() string {
	switch s {
	case ScreenAuth:
		return "CONNEXION"
	case ScreenCreate:
		return "NOUVELLE TÂCHE"
	case ScreenRoast:
		return "ROAST"
	case ScreenFocus:
		return "FOCUS"
	case ScreenCompletion:
		return "RÉSULTAT"
	case ScreenMyTasks:
		return "MES TÂCHES"
	case ScreenFeed:
		return "FEED"
	case ScreenLeaderboard:
		return "CLASSEMENT"
	default:
		return "UNKNOWN"
	}
}
