package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reelterm/reel/internal/domain"
	"github.com/reelterm/reel/internal/tui/styles"
)

const (
	minInspectorWidth = 36
	chromeHeight      = 4 // tab bar + input row + status bar + padding
)

// View renders the application
func (m Model) View() string {
	if m.Width == 0 {
		return "Loading..."
	}
	if !m.SessionSvc.SignedIn() {
		return m.viewLogin()
	}
	if m.ShowDetails && m.Details != nil {
		return m.viewDetails()
	}
	return m.viewBrowse()
}

// viewLogin renders the login / register form
func (m Model) viewLogin() string {
	title := "Sign in to Reel"
	action := "enter: sign in"
	if m.Registering {
		title = "Create a Reel account"
		action = "enter: register"
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(title) + "\n\n")
	b.WriteString(styles.SubtitleStyle.Render("Username") + "\n")
	b.WriteString(m.UserInput.View() + "\n\n")
	b.WriteString(styles.SubtitleStyle.Render("Password") + "\n")
	b.WriteString(m.PassInput.View() + "\n\n")
	if m.AuthPending {
		b.WriteString(styles.AccentStyle.Render(m.spinner()+" signing in...") + "\n")
	}
	if m.StatusText != "" {
		style := styles.SubtitleStyle
		if m.StatusIsErr {
			style = styles.ErrorStyle
		}
		b.WriteString(style.Render(m.StatusText) + "\n")
	}
	b.WriteString("\n" + styles.DimStyle.Render(action+" · tab: next field · ctrl+r: toggle register · ctrl+c: quit"))

	box := styles.LoginBoxStyle.Render(b.String())
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}

// viewBrowse renders the tabbed listing view
func (m Model) viewBrowse() string {
	var sections []string
	sections = append(sections, m.viewTabs())

	if input := m.viewInputRow(); input != "" {
		sections = append(sections, input)
	}

	items := m.visibleItems()
	list := m.viewList(items)

	if m.Width >= minInspectorWidth*2 {
		inspector := m.viewInspector(items)
		body := lipgloss.JoinHorizontal(lipgloss.Top, list, inspector)
		sections = append(sections, body)
	} else {
		sections = append(sections, list)
	}

	sections = append(sections, m.viewStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for t := Tab(0); t < tabCount; t++ {
		label := t.Title()
		if t == TabFavorites {
			label = fmt.Sprintf("%s (%d)", label, len(m.FavoritesSvc.Entries()))
		}
		if t == m.Tab {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(label))
		}
	}

	media := "Movies"
	if m.Media == domain.MediaTypeTV {
		media = "TV"
	}
	row := strings.Join(tabs, " ")
	return row + "  " + styles.DimStyle.Render("["+media+"]")
}

func (m Model) viewInputRow() string {
	switch {
	case m.Tab == TabSearch:
		return "  " + m.SearchInput.View()
	case m.Mode == ModeFilterInput || m.FilterInput.Value() != "":
		return "  " + m.FilterInput.View()
	}
	return ""
}

// listHeight returns the number of rows available for list entries
func (m Model) listHeight() int {
	h := m.Height - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) viewList(items []domain.MediaItem) string {
	cat := m.Tab.Category()
	var snap domain.Listing
	if cat != "" {
		snap = m.Catalog.Snapshot(cat)
	}

	width := m.Width
	if m.Width >= minInspectorWidth*2 {
		width = m.Width - minInspectorWidth
	}

	var b strings.Builder

	if snap.Loading && len(items) == 0 {
		b.WriteString(styles.AccentStyle.Render(m.spinner() + " loading..."))
		return styles.ListStyle.Width(width).Render(b.String())
	}
	if len(items) == 0 {
		switch {
		case snap.Err != "":
			b.WriteString(styles.ErrorStyle.Render(snap.Err))
		case m.Tab == TabSearch:
			b.WriteString(styles.DimStyle.Render("Type s to search the catalog."))
		case m.Tab == TabFavorites:
			b.WriteString(styles.DimStyle.Render("No favorites yet. Press f on any item."))
		default:
			b.WriteString(styles.DimStyle.Render("Nothing here yet. Press r to refresh."))
		}
		return styles.ListStyle.Width(width).Render(b.String())
	}

	cursor := m.Cursors[m.Tab]
	height := m.listHeight()
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := start + height
	if end > len(items) {
		end = len(items)
	}

	for i := start; i < end; i++ {
		item := items[i]
		marker := styles.UnmarkedChar
		if m.FavoritesSvc.IsFavorite(item) {
			marker = styles.FavoriteStyle.Render(styles.FavoriteChar)
		}
		line := fmt.Sprintf("%s %s %s %s",
			marker,
			item.Title,
			styles.DimStyle.Render(item.ReleaseYear()),
			styles.RatingStyle.Render(item.FormattedRating()),
		)
		if i == cursor {
			b.WriteString(styles.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(styles.NormalItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if snap.Loading {
		b.WriteString(styles.AccentStyle.Render(m.spinner() + " loading more..."))
	} else if cat != "" && cat.Accumulates() && len(items) > 0 {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("page %d · m: load more", snap.CurrentPage)))
	}

	return styles.ListStyle.Width(width).Render(b.String())
}

func (m Model) viewInspector(items []domain.MediaItem) string {
	cursor := m.Cursors[m.Tab]
	if cursor < 0 || cursor >= len(items) {
		return styles.InspectorStyle.Width(minInspectorWidth).Render(styles.DimStyle.Render("Nothing selected"))
	}
	item := items[cursor]

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(item.Title) + "\n")
	meta := strings.TrimSpace(fmt.Sprintf("%s  %s ☆ (%d votes)", item.ReleaseYear(), item.FormattedRating(), item.VoteCount))
	b.WriteString(styles.SubtitleStyle.Render(meta) + "\n\n")
	if item.Overview != "" {
		b.WriteString(wrap(item.Overview, minInspectorWidth-6) + "\n")
	}
	b.WriteString("\n" + styles.DimStyle.Render("enter: full details"))

	return styles.InspectorStyle.Width(minInspectorWidth).Height(m.listHeight()).Render(b.String())
}

// viewDetails renders the full-screen detail view for the selected item
func (m Model) viewDetails() string {
	d := m.Details

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(d.Title))
	if d.Tagline != "" {
		b.WriteString("\n" + styles.AccentStyle.Render(d.Tagline))
	}
	b.WriteString("\n\n")

	var facts []string
	if y := d.ReleaseYear(); y != "" {
		facts = append(facts, y)
	}
	facts = append(facts, fmt.Sprintf("%s ☆ (%d votes)", d.FormattedRating(), d.VoteCount))
	if d.Type == domain.MediaTypeMovie {
		if rt := d.FormattedRuntime(); rt != "" {
			facts = append(facts, rt)
		}
	} else {
		facts = append(facts, fmt.Sprintf("%d seasons · %d episodes", d.SeasonCount, d.EpisodeCount))
	}
	if d.Status != "" {
		facts = append(facts, d.Status)
	}
	b.WriteString(styles.SubtitleStyle.Render(strings.Join(facts, "  ·  ")) + "\n")

	if len(d.Genres) > 0 {
		names := make([]string, len(d.Genres))
		for i, g := range d.Genres {
			names[i] = g.Name
		}
		b.WriteString(styles.DimStyle.Render(strings.Join(names, ", ")) + "\n")
	}

	b.WriteString("\n" + wrap(d.Overview, min(m.Width-8, 90)) + "\n")

	if url := d.PosterURL(); url != "" {
		b.WriteString("\n" + styles.DimStyle.Render("Poster: "+url) + "\n")
	}

	fav := "f: add to favorites"
	if m.FavoritesSvc.IsFavorite(d.MediaItem) {
		fav = "f: remove from favorites"
	}
	b.WriteString("\n" + styles.DimStyle.Render(fav+" · esc: back"))

	box := styles.InspectorStyle.Render(b.String())
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewStatusBar() string {
	if m.StatusText != "" {
		if m.StatusIsErr {
			return " " + styles.ErrorStyle.Render(m.StatusText)
		}
		return " " + styles.AccentStyle.Render(m.StatusText)
	}

	help := "tab: switch · s: search · /: filter · f: favorite · t: movies/tv · r: refresh · q: quit"
	user := m.SessionSvc.Username()
	if user != "" {
		help = user + " · " + help
	}
	return " " + styles.StatusBarStyle.Render(help)
}

func (m Model) spinner() string {
	return styles.SpinnerFrames[m.SpinnerFrame%len(styles.SpinnerFrames)]
}

// wrap breaks text into lines no longer than width
func wrap(text string, width int) string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
