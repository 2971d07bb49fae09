package statusbar

import "github.com/mbriard/roastcli/internal/types"

// GetHints returns the keybinding hints for the given screen
func GetHints(screen types.Screen) string {
	switch screen {
	case types.ScreenAuth:
		return "Tab: champ suivant  Entrée: valider  Ctrl+R: basculer inscription  Ctrl+C: quitter"
	case types.ScreenCreate:
		return "Tab: champ suivant  Ctrl+T: type  Entrée: envoyer  Ctrl+F: feed  Ctrl+K: classement  Ctrl+B: mes tâches"
	case types.ScreenRoast:
		return "Entrée: lancer le focus  f: feed  Esc: retour"
	case types.ScreenFocus:
		return "1-3: cocher  Entrée: valider  a: abandonner"
	case types.ScreenCompletion:
		return "Entrée: nouvelle tâche  f: feed  c: classement"
	case types.ScreenMyTasks:
		return "j/k: naviguer  p: public/privé  Esc: retour"
	case types.ScreenFeed:
		return "Tab: global/amis  j/k: naviguer  l: liker  Esc: retour"
	case types.ScreenLeaderboard:
		return "Tab: global/amis  j/k: naviguer  Esc: retour"
	default:
		return ""
	}
}
