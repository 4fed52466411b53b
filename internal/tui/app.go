package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reelterm/reel/internal/domain"
	"github.com/reelterm/reel/internal/service"
	"github.com/reelterm/reel/internal/state"
)

// Tab identifies one of the top-level views
type Tab int

const (
	TabTrending Tab = iota
	TabPopular
	TabTopRated
	TabSearch
	TabFavorites
	tabCount
)

// Category returns the catalog category behind the tab, or "" for the
// favorites tab which reads the favorites store instead.
func (t Tab) Category() domain.Category {
	switch t {
	case TabTrending:
		return domain.CategoryTrending
	case TabPopular:
		return domain.CategoryPopular
	case TabTopRated:
		return domain.CategoryTopRated
	case TabSearch:
		return domain.CategorySearch
	}
	return ""
}

func (t Tab) Title() string {
	switch t {
	case TabTrending:
		return "Trending"
	case TabPopular:
		return "Popular"
	case TabTopRated:
		return "Top Rated"
	case TabSearch:
		return "Search"
	case TabFavorites:
		return "Favorites"
	}
	return ""
}

// InputMode tracks which text input, if any, owns the keyboard
type InputMode int

const (
	ModeList InputMode = iota
	ModeSearchInput
	ModeFilterInput
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Services
	CatalogSvc   *service.CatalogService
	FavoritesSvc *service.FavoritesService
	SessionSvc   *service.SessionService

	// State stores (read-only snapshot access)
	Catalog *state.CatalogState

	Keys KeyMap

	// Browse state
	Tab     Tab
	Cursors [tabCount]int
	Media   domain.MediaType
	Mode    InputMode

	// Inputs
	SearchInput textinput.Model
	FilterInput textinput.Model

	// Login form
	UserInput   textinput.Model
	PassInput   textinput.Model
	LoginField  int // 0 = username, 1 = password
	Registering bool
	AuthPending bool

	// Detail view
	Details     *domain.MediaDetails
	ShowDetails bool

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusText   string
	StatusIsErr  bool
	SpinnerFrame int
}

// NewModel creates a new application model
func NewModel(
	catalogSvc *service.CatalogService,
	favoritesSvc *service.FavoritesService,
	sessionSvc *service.SessionService,
	catalog *state.CatalogState,
	media domain.MediaType,
) Model {
	search := textinput.New()
	search.Placeholder = "Search movies and shows..."
	search.CharLimit = 120

	filter := textinput.New()
	filter.Placeholder = "Filter list..."
	filter.CharLimit = 60

	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 60
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 60
	pass.EchoMode = textinput.EchoPassword

	if !media.Valid() {
		media = domain.MediaTypeMovie
	}

	return Model{
		CatalogSvc:   catalogSvc,
		FavoritesSvc: favoritesSvc,
		SessionSvc:   sessionSvc,
		Catalog:      catalog,
		Keys:         DefaultKeyMap(),
		Media:        media,
		SearchInput:  search,
		FilterInput:  filter,
		UserInput:    user,
		PassInput:    pass,
	}
}

// Init kicks off the initial listing fetches when already signed in
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{TickCmd(120 * time.Millisecond)}
	if m.SessionSvc.SignedIn() {
		cmds = append(cmds, m.initialLoadCmds()...)
	}
	return tea.Batch(cmds...)
}

func (m Model) initialLoadCmds() []tea.Cmd {
	return []tea.Cmd{
		LoadCategoryCmd(m.CatalogSvc, domain.CategoryTrending, m.Media, 1),
		LoadCategoryCmd(m.CatalogSvc, domain.CategoryPopular, m.Media, 1),
		LoadCategoryCmd(m.CatalogSvc, domain.CategoryTopRated, m.Media, 1),
	}
}

// Update routes messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(120 * time.Millisecond)

	case CatalogUpdatedMsg:
		if msg.Err != nil {
			snap := m.Catalog.Snapshot(msg.Category)
			if snap.Err != "" {
				m.StatusText = snap.Err
				m.StatusIsErr = true
				return m, ClearStatusCmd(4 * time.Second)
			}
		}
		m.clampCursor()
		return m, nil

	case DetailsLoadedMsg:
		if msg.Err != nil {
			m.StatusText = "Could not load details."
			m.StatusIsErr = true
			return m, ClearStatusCmd(4 * time.Second)
		}
		m.Details = msg.Details
		m.ShowDetails = true
		return m, nil

	case AuthResultMsg:
		m.AuthPending = false
		if msg.Err != nil {
			m.StatusText = msg.Err.Error()
			m.StatusIsErr = true
			return m, ClearStatusCmd(4 * time.Second)
		}
		m.StatusText = "Signed in as " + m.SessionSvc.Username()
		m.StatusIsErr = false
		m.PassInput.SetValue("")
		return m, tea.Batch(append(m.initialLoadCmds(), ClearStatusCmd(3*time.Second))...)

	case StatusMsg:
		m.StatusText = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(4 * time.Second)

	case ClearStatusMsg:
		m.StatusText = ""
		m.StatusIsErr = false
		return m, nil

	case tea.KeyMsg:
		if !m.SessionSvc.SignedIn() {
			return m.updateLogin(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

// updateLogin handles keys on the login form
func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab", "up", "down":
		m.LoginField = 1 - m.LoginField
		if m.LoginField == 0 {
			m.UserInput.Focus()
			m.PassInput.Blur()
		} else {
			m.PassInput.Focus()
			m.UserInput.Blur()
		}
		return m, nil
	case "ctrl+r":
		m.Registering = !m.Registering
		return m, nil
	case "enter":
		if m.AuthPending {
			return m, nil
		}
		username := m.UserInput.Value()
		password := m.PassInput.Value()
		m.AuthPending = true
		if m.Registering {
			return m, RegisterCmd(m.SessionSvc, username, password)
		}
		return m, LoginCmd(m.SessionSvc, username, password)
	}

	var cmd tea.Cmd
	if m.LoginField == 0 {
		m.UserInput, cmd = m.UserInput.Update(msg)
	} else {
		m.PassInput, cmd = m.PassInput.Update(msg)
	}
	return m, cmd
}

// updateBrowse handles keys in the main browse view
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text inputs own the keyboard while active
	if m.Mode == ModeSearchInput {
		switch msg.String() {
		case "enter":
			m.Mode = ModeList
			m.SearchInput.Blur()
			m.Cursors[TabSearch] = 0
			return m, SearchCmd(m.CatalogSvc, m.Media, m.SearchInput.Value())
		case "esc":
			m.Mode = ModeList
			m.SearchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.SearchInput, cmd = m.SearchInput.Update(msg)
		return m, cmd
	}
	if m.Mode == ModeFilterInput {
		switch msg.String() {
		case "enter", "esc":
			m.Mode = ModeList
			m.FilterInput.Blur()
			if msg.String() == "esc" {
				m.FilterInput.SetValue("")
			}
			m.clampCursor()
			return m, nil
		}
		var cmd tea.Cmd
		m.FilterInput, cmd = m.FilterInput.Update(msg)
		m.clampCursor()
		return m, cmd
	}

	if m.ShowDetails {
		switch {
		case key.Matches(msg, m.Keys.Escape), key.Matches(msg, m.Keys.Enter):
			m.ShowDetails = false
			m.Details = nil
			m.CatalogSvc.ClearSelection()
			return m, nil
		case key.Matches(msg, m.Keys.Favorite):
			return m.toggleFavorite()
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.NextTab):
		m.Tab = (m.Tab + 1) % tabCount
		m.FilterInput.SetValue("")
		return m, nil

	case key.Matches(msg, m.Keys.PrevTab):
		m.Tab = (m.Tab + tabCount - 1) % tabCount
		m.FilterInput.SetValue("")
		return m, nil

	case key.Matches(msg, m.Keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.Keys.PageUp):
		m.moveCursor(-m.pageStep())
		return m, nil

	case key.Matches(msg, m.Keys.PageDown):
		m.moveCursor(m.pageStep())
		return m, nil

	case key.Matches(msg, m.Keys.Search):
		m.Tab = TabSearch
		m.Mode = ModeSearchInput
		m.SearchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.Keys.Filter):
		if m.Tab != TabSearch {
			m.Mode = ModeFilterInput
			m.FilterInput.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.Keys.Escape):
		if m.Tab == TabSearch {
			m.SearchInput.SetValue("")
			m.CatalogSvc.ClearSearch()
			return m, nil
		}
		m.FilterInput.SetValue("")
		return m, nil

	case key.Matches(msg, m.Keys.Enter):
		if item, ok := m.selectedItem(); ok {
			return m, SelectItemCmd(m.CatalogSvc, item)
		}
		return m, nil

	case key.Matches(msg, m.Keys.Favorite):
		return m.toggleFavorite()

	case key.Matches(msg, m.Keys.Refresh):
		if cat := m.Tab.Category(); cat != "" && cat != domain.CategorySearch {
			m.Cursors[m.Tab] = 0
			return m, LoadCategoryCmd(m.CatalogSvc, cat, m.Media, 1)
		}
		return m, nil

	case key.Matches(msg, m.Keys.LoadMore):
		return m.loadMore()

	case key.Matches(msg, m.Keys.ToggleMedia):
		if m.Media == domain.MediaTypeMovie {
			m.Media = domain.MediaTypeTV
		} else {
			m.Media = domain.MediaTypeMovie
		}
		m.Cursors = [tabCount]int{}
		return m, tea.Batch(m.initialLoadCmds()...)

	case key.Matches(msg, m.Keys.Logout):
		m.SessionSvc.Logout()
		m.UserInput.Focus()
		m.LoginField = 0
		return m, nil
	}

	return m, nil
}

// loadMore requests the next page for accumulating categories
func (m Model) loadMore() (tea.Model, tea.Cmd) {
	cat := m.Tab.Category()
	if cat == "" || !cat.Accumulates() {
		return m, nil
	}
	snap := m.Catalog.Snapshot(cat)
	if snap.Loading {
		return m, nil
	}
	page := snap.CurrentPage + 1
	if snap.CurrentPage == 0 {
		page = 1
	}
	return m, LoadCategoryCmd(m.CatalogSvc, cat, m.Media, page)
}

func (m Model) toggleFavorite() (tea.Model, tea.Cmd) {
	item, ok := m.selectedItem()
	if !ok {
		return m, nil
	}
	if m.FavoritesSvc.Toggle(item) {
		return m, func() tea.Msg {
			return StatusMsg{Message: "Added to favorites: " + item.Title}
		}
	}
	m.clampCursor()
	return m, func() tea.Msg {
		return StatusMsg{Message: "Removed from favorites: " + item.Title}
	}
}

// visibleItems returns the current tab's list after local filtering
func (m Model) visibleItems() []domain.MediaItem {
	if m.Tab == TabFavorites {
		entries := m.FavoritesSvc.Filter(m.FilterInput.Value())
		items := make([]domain.MediaItem, len(entries))
		for i, e := range entries {
			items[i] = domain.MediaItem{
				ID:         e.ID,
				Type:       e.Type,
				Title:      e.Title,
				PosterPath: e.PosterPath,
				Rating:     e.Rating,
				VoteCount:  1, // rating was cached from a rated item
			}
		}
		return items
	}

	snap := m.Catalog.Snapshot(m.Tab.Category())
	return filterItems(snap.Items, m.FilterInput.Value())
}

func (m Model) selectedItem() (domain.MediaItem, bool) {
	if m.ShowDetails && m.Details != nil {
		return m.Details.MediaItem, true
	}
	items := m.visibleItems()
	cursor := m.Cursors[m.Tab]
	if cursor < 0 || cursor >= len(items) {
		return domain.MediaItem{}, false
	}
	return items[cursor], true
}

func (m *Model) moveCursor(delta int) {
	items := m.visibleItems()
	cursor := m.Cursors[m.Tab] + delta
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(items) {
		cursor = len(items) - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	m.Cursors[m.Tab] = cursor
}

func (m *Model) clampCursor() {
	m.moveCursor(0)
}

func (m Model) pageStep() int {
	step := m.listHeight() / 2
	if step < 1 {
		step = 1
	}
	return step
}
