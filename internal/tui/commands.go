package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reelterm/reel/internal/domain"
	"github.com/reelterm/reel/internal/service"
)

// Command factories for async operations

const fetchTimeout = 30 * time.Second

// LoadCategoryCmd fetches one page of a listing category
func LoadCategoryCmd(svc *service.CatalogService, category domain.Category, media domain.MediaType, page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		err := svc.LoadCategory(ctx, category, media, page)
		return CatalogUpdatedMsg{Category: category, Err: err}
	}
}

// SearchCmd runs a free-text search
func SearchCmd(svc *service.CatalogService, media domain.MediaType, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		err := svc.Search(ctx, media, query)
		return CatalogUpdatedMsg{Category: domain.CategorySearch, Err: err}
	}
}

// SelectItemCmd stores the selection and fetches its detail record
func SelectItemCmd(svc *service.CatalogService, item domain.MediaItem) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		details, err := svc.SelectItem(ctx, item)
		return DetailsLoadedMsg{Details: details, Err: err}
	}
}

// LoginCmd attempts a login with the entered credentials
func LoginCmd(svc *service.SessionService, username, password string) tea.Cmd {
	return func() tea.Msg {
		return AuthResultMsg{Err: svc.Login(username, password)}
	}
}

// RegisterCmd creates an account and signs in
func RegisterCmd(svc *service.SessionService, username, password string) tea.Cmd {
	return func() tea.Msg {
		return AuthResultMsg{Err: svc.Register(username, password)}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
