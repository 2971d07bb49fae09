package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbriard/roastcli/internal/ui/styles"
)

// SubmitLoginMsg asks the app to log in with the given credentials
type SubmitLoginMsg struct {
	Email    string
	Password string
}

// SubmitRegisterMsg asks the app to create an account
type SubmitRegisterMsg struct {
	Username string
	Email    string
	Password string
}

// AuthForm is the login / register screen
type AuthForm struct {
	username textinput.Model
	email    textinput.Model
	password textinput.Model

	registering bool
	focusIndex  int
	pending     bool
	formError   string

	styles *styles.Styles
}

// NewAuthForm creates the auth screen in login mode
func NewAuthForm(st *styles.Styles) AuthForm {
	username := textinput.New()
	username.Placeholder = "pseudo"
	username.CharLimit = 40
	username.Width = 40

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "mot de passe"
	password.CharLimit = 120
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return AuthForm{
		username: username,
		email:    email,
		password: password,
		styles:   st,
	}
}

// Init starts the cursor blinking
func (f AuthForm) Init() tea.Cmd {
	return textinput.Blink
}

// Registering reports whether the form is in register mode
func (f AuthForm) Registering() bool { return f.registering }

// Pending reports whether a request is in flight
func (f AuthForm) Pending() bool { return f.pending }

// SetPending toggles the in-flight guard
func (f AuthForm) SetPending(pending bool) AuthForm {
	f.pending = pending
	return f
}

// SetError shows a server-side auth error inline
func (f AuthForm) SetError(message string) AuthForm {
	f.formError = message
	f.pending = false
	return f
}

func (f AuthForm) fieldCount() int {
	if f.registering {
		return 3
	}
	return 2
}

func (f *AuthForm) syncFocus() {
	f.username.Blur()
	f.email.Blur()
	f.password.Blur()

	inputs := f.focusOrder()
	inputs[f.focusIndex].Focus()
}

func (f *AuthForm) focusOrder() []*textinput.Model {
	if f.registering {
		return []*textinput.Model{&f.username, &f.email, &f.password}
	}
	return []*textinput.Model{&f.email, &f.password}
}

// Update handles key input
func (f AuthForm) Update(msg tea.Msg) (AuthForm, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			f.focusIndex = (f.focusIndex + 1) % f.fieldCount()
			f.syncFocus()
			return f, nil

		case "shift+tab", "up":
			f.focusIndex = (f.focusIndex - 1 + f.fieldCount()) % f.fieldCount()
			f.syncFocus()
			return f, nil

		case "ctrl+r":
			f.registering = !f.registering
			f.focusIndex = 0
			f.formError = ""
			f.syncFocus()
			return f, nil

		case "enter":
			return f, f.submit()
		}
	}

	var cmd tea.Cmd
	switch f.focusOrder()[f.focusIndex] {
	case &f.username:
		f.username, cmd = f.username.Update(msg)
	case &f.email:
		f.email, cmd = f.email.Update(msg)
	default:
		f.password, cmd = f.password.Update(msg)
	}
	if f.formError != "" {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			f.formError = ""
		}
	}
	return f, cmd
}

func (f *AuthForm) submit() tea.Cmd {
	if f.pending {
		return nil
	}

	username := strings.TrimSpace(f.username.Value())
	email := strings.TrimSpace(f.email.Value())
	password := f.password.Value()

	if f.registering && username == "" {
		f.formError = "Il te faut un pseudo."
		return nil
	}
	if email == "" || password == "" {
		f.formError = "Email et mot de passe obligatoires."
		return nil
	}

	f.pending = true
	f.formError = ""

	if f.registering {
		return func() tea.Msg {
			return SubmitRegisterMsg{Username: username, Email: email, Password: password}
		}
	}
	return func() tea.Msg {
		return SubmitLoginMsg{Email: email, Password: password}
	}
}

// View renders the form
func (f AuthForm) View() string {
	var b strings.Builder

	title := "Connexion"
	switchHint := "Ctrl+R: créer un compte"
	if f.registering {
		title = "Inscription"
		switchHint = "Ctrl+R: j'ai déjà un compte"
	}

	b.WriteString(f.styles.ScreenTitle.Render("Roast My Excuses"))
	b.WriteString("\n")
	b.WriteString(f.styles.Subtitle.Render(title))
	b.WriteString("\n\n")

	if f.registering {
		b.WriteString(f.styles.Label.Render("Pseudo"))
		b.WriteString("\n")
		b.WriteString(f.username.View())
		b.WriteString("\n\n")
	}

	b.WriteString(f.styles.Label.Render("Email"))
	b.WriteString("\n")
	b.WriteString(f.email.View())
	b.WriteString("\n\n")

	b.WriteString(f.styles.Label.Render("Mot de passe"))
	b.WriteString("\n")
	b.WriteString(f.password.View())
	b.WriteString("\n")

	if f.formError != "" {
		b.WriteString("\n")
		b.WriteString(f.styles.FieldError.Render(f.formError))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if f.pending {
		b.WriteString(f.styles.Hint.Render("Connexion en cours..."))
	} else {
		b.WriteString(f.styles.Hint.Render("Entrée: valider  " + switchHint))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
