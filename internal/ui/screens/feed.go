package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbriard/roastcli/internal/domain"
	"github.com/mbriard/roastcli/internal/ui/styles"
)

// ToggleLikeMsg asks the app to flip a pepper on a feed item
type ToggleLikeMsg struct {
	FeedItemID string
}

// ChangeFeedScopeMsg asks the app to reload the feed for a scope
type ChangeFeedScopeMsg struct {
	Scope domain.FeedScope
}

// Feed is the public roast feed screen
type Feed struct {
	items   []domain.FeedItem
	scope   domain.FeedScope
	cursor  int
	loading bool
	styles  *styles.Styles
}

// NewFeed creates the feed screen in its loading state
func NewFeed(st *styles.Styles) Feed {
	return Feed{scope: domain.ScopeGlobal, loading: true, styles: st}
}

// Scope returns the active tab
func (f Feed) Scope() domain.FeedScope { return f.scope }

// SetItems installs a loaded feed page
func (f Feed) SetItems(scope domain.FeedScope, items []domain.FeedItem) Feed {
	f.scope = scope
	f.items = items
	f.loading = false
	if f.cursor >= len(items) {
		f.cursor = 0
	}
	return f
}

// SetLoading flags a reload in progress
func (f Feed) SetLoading() Feed {
	f.loading = true
	return f
}

// ApplyLike applies a confirmed like toggle to the local list
func (f Feed) ApplyLike(itemID string, liked bool, upvotes int) Feed {
	for i := range f.items {
		if f.items[i].ID == itemID {
			f.items[i].IsLiked = liked
			f.items[i].Upvotes = upvotes
		}
	}
	return f
}

// Update handles key input
func (f Feed) Update(msg tea.Msg) (Feed, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch key.String() {
	case "tab":
		next := domain.ScopeFriends
		if f.scope == domain.ScopeFriends {
			next = domain.ScopeGlobal
		}
		f.cursor = 0
		return f, func() tea.Msg { return ChangeFeedScopeMsg{Scope: next} }

	case "j", "down":
		if f.cursor < len(f.items)-1 {
			f.cursor++
		}
	case "k", "up":
		if f.cursor > 0 {
			f.cursor--
		}
	case "l":
		if len(f.items) > 0 {
			itemID := f.items[f.cursor].ID
			return f, func() tea.Msg { return ToggleLikeMsg{FeedItemID: itemID} }
		}
	}
	return f, nil
}

func (f Feed) tabs() string {
	global := f.styles.Tab.Render("Global")
	friends := f.styles.Tab.Render("Amis")
	if f.scope == domain.ScopeGlobal {
		global = f.styles.TabActive.Render("Global")
	} else {
		friends = f.styles.TabActive.Render("Amis")
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, global, friends)
}

// View renders the feed
func (f Feed) View() string {
	var b strings.Builder

	b.WriteString(f.styles.ScreenTitle.Render("Le feed"))
	b.WriteString("\n")
	b.WriteString(f.tabs())
	b.WriteString("\n\n")

	switch {
	case f.loading:
		b.WriteString(f.styles.Hint.Render("Chargement..."))
	case len(f.items) == 0:
		b.WriteString(f.styles.Subtitle.Render("Personne n'a encore été grillé ici."))
	default:
		for i, item := range f.items {
			card := f.styles.Card
			if i == f.cursor {
				card = f.styles.CardActive
			}

			header := f.styles.CardTitle.Render(item.User)
			if item.IsTop {
				header = lipgloss.JoinHorizontal(lipgloss.Left,
					header, "  ", f.styles.Points.Render("🔥 top roast"))
			}

			pepper := "🌶️"
			likeLine := fmt.Sprintf("%s %d", pepper, item.Upvotes)
			if item.IsLiked {
				likeLine = f.styles.Points.Render(likeLine)
			} else {
				likeLine = f.styles.Hint.Render(likeLine)
			}

			body := lipgloss.JoinVertical(lipgloss.Left,
				header,
				f.styles.CardBody.Render(item.Task),
				f.styles.RoastText.Width(60).Render(item.Roast),
				likeLine,
			)

			b.WriteString(card.Width(64).Render(body))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
