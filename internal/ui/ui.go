package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/reelcli/reel/internal/models"
	"github.com/reelcli/reel/internal/shared"
	"github.com/reelcli/reel/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	MovieListView ViewState = iota
	MovieDetailView
	DashboardView
)

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	api        tasks.APIClient
	engine     tasks.Engine
	userID     string
	token      string
	width      int
	height     int
	movieList  list.Model
	movies     []models.Movie
	reviewList list.Model
	detail     *tasks.MovieDetail
	dashboard  *tasks.DashboardResult
	err        error
	help       help.Model
	keys       keyMap
}

type moviesFetchedMsg struct {
	movies []models.Movie
	err    error
}

type detailFetchedMsg struct {
	detail *tasks.MovieDetail
	err    error
}

type dashboardFetchedMsg struct {
	result *tasks.DashboardResult
	err    error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, api tasks.APIClient, engine tasks.Engine, userID, token string) *Model {
	return &Model{
		ctx:    ctx,
		view:   MovieListView,
		api:    api,
		engine: engine,
		userID: userID,
		token:  token,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init initializes the TUI by fetching the movie catalog.
func (m *Model) Init() tea.Cmd {
	return m.fetchMovies()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.movieList.Width() == 0 {
			m.movieList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.reviewList.Width() == 0 {
			m.reviewList.SetSize(msg.Width-4, msg.Height-12)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case MovieListView:
			return m.handleMovieListKeys(msg)
		case MovieDetailView:
			return m.handleDetailKeys(msg)
		case DashboardView:
			return m.handleDashboardKeys(msg)
		}

	case moviesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.movies = msg.movies
		items := make([]list.Item, len(msg.movies))
		for i, movie := range msg.movies {
			items[i] = movieItem{movie: movie}
		}
		m.movieList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.movieList.Title = "Movies"
		m.movieList.SetSize(m.width-4, m.height-8)
		return m, nil

	case detailFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = MovieListView
			return m, nil
		}
		m.detail = msg.detail
		items := make([]list.Item, len(msg.detail.Reviews))
		for i, review := range msg.detail.Reviews {
			items[i] = reviewItem{review: review}
		}
		m.reviewList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.reviewList.Title = fmt.Sprintf("Reviews of '%s'", msg.detail.Movie.Title)
		m.reviewList.SetSize(m.width-4, m.height-12)
		m.view = MovieDetailView
		return m, nil

	case dashboardFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = MovieListView
			return m, nil
		}
		m.dashboard = msg.result
		m.view = DashboardView
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view == MovieListView && m.movies == nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case MovieListView:
		return m.renderMovieList()
	case MovieDetailView:
		return m.renderDetail()
	case DashboardView:
		return m.renderDashboard()
	default:
		return ""
	}
}

func (m *Model) handleMovieListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "h":
		return m, m.fetchDashboard()
	case "enter":
		selected := m.movieList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(movieItem); ok {
				return m, m.fetchDetail(item.movie.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.movieList, cmd = m.movieList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MovieListView
		m.detail = nil
		m.err = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.reviewList, cmd = m.reviewList.Update(msg)
	return m, cmd
}

func (m *Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MovieListView
		m.dashboard = nil
		m.err = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case MovieListView:
		m.movieList, cmd = m.movieList.Update(msg)
	case MovieDetailView:
		m.reviewList, cmd = m.reviewList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchMovies() tea.Cmd {
	return func() tea.Msg {
		movies, err := m.api.Movies(m.ctx, m.token)
		return moviesFetchedMsg{movies: movies, err: err}
	}
}

func (m *Model) fetchDetail(movieID int64) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.engine.MovieDetail(m.ctx, movieID, m.token)
		return detailFetchedMsg{detail: detail, err: err}
	}
}

func (m *Model) fetchDashboard() tea.Cmd {
	return func() tea.Msg {
		result, err := m.engine.Dashboard(m.ctx, nil, m.userID, m.token)
		return dashboardFetchedMsg{result: result, err: err}
	}
}

func (m *Model) renderMovieList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.home, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	view := fmt.Sprintf("%s\n\n%s", m.movieList.View(), helpView)
	if m.err != nil {
		view = fmt.Sprintf("%s\n%s", styles.warn.Render(fmt.Sprintf("Error: %v", m.err)), view)
	}
	return view
}

func (m *Model) renderDetail() string {
	title := styles.title.Render(m.detail.Movie.Title)

	var info string
	info += fmt.Sprintf("Rating: %s", shared.FormatRating(m.detail.Movie.Rating))
	if m.detail.Movie.Genres != "" {
		info += fmt.Sprintf("\nGenres: %s", shared.JoinGenres(m.detail.Movie.Genres))
	}
	if m.detail.Movie.Description != "" {
		info += fmt.Sprintf("\n\n%s", m.detail.Movie.Description)
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, info, m.reviewList.View(), helpView)
}

func (m *Model) renderDashboard() string {
	title := styles.title.Render("Your Dashboard")

	if !m.dashboard.HasRatings {
		empty := "You haven't rated any movies yet.\nRate a few movies to unlock recommendations."
		helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
		return fmt.Sprintf("%s\n%s\n\n%s", title, empty, helpView)
	}

	ratings := styles.ok.Render(fmt.Sprintf("Rated movies (%d)", len(m.dashboard.Ratings)))
	for _, rated := range m.dashboard.Ratings {
		ratings += fmt.Sprintf("\n  • %s [%s]", rated.Title, shared.FormatRating(rated.Rating))
	}

	recs := styles.ok.Render(fmt.Sprintf("Recommended for you (%d)", len(m.dashboard.Recommendations)))
	for _, movie := range m.dashboard.Recommendations {
		recs += fmt.Sprintf("\n  • %s [%s]", movie.Title, shared.FormatRating(movie.Rating))
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, ratings, recs, helpView)
}
