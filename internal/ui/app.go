package ui

import (
	"context"
	"strings"
	"time"

	"eatgo/internal/model"
	"eatgo/internal/store"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the root Bubble Tea model.
type Model struct {
	ctx          context.Context
	store        *store.Store
	orchestrator *store.Orchestrator
	feed         *stateFeed
	state        model.State

	screen       model.Screen
	returnScreen model.Screen
	mode         model.Mode

	width  int
	height int

	error       string
	info        string
	showingHelp bool
	ready       bool

	// Screen models
	home        *HomeModel
	restaurants *RestaurantsModel
	detail      *RestaurantDetailModel
	loginForm   *LoginFormModel
	reviewForm  *ReviewFormModel

	spinner  spinner.Model
	keys     KeyMap
	formKeys FormKeyMap
}

// New creates a new root model rendering the given store.
func New(ctx context.Context, s *store.Store, o *store.Orchestrator) Model {
	feed, _ := newStateFeed(s)
	return Model{
		ctx:          ctx,
		store:        s,
		orchestrator: o,
		feed:         feed,
		state:        s.State(),
		screen:       model.ScreenHome,
		mode:         model.ModeNav,
		home:         NewHomeModel(),
		restaurants:  NewRestaurantsModel(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(HelpKeyStyle)),
		keys:         DefaultKeyMap(),
		formKeys:     DefaultFormKeyMap(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.feed.wait(),
		m.spinner.Tick,
		restoreSessionCmd(m.ctx, m.orchestrator, m.store),
		loadInitialDataCmd(m.ctx, m.orchestrator, m.store),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// Handle ctrl+c globally
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.mode == model.ModeNav && key.Matches(msg, m.keys.Help) {
			m.showingHelp = !m.showingHelp
			return m, nil
		}

		if m.showingHelp {
			if msg.String() == "esc" {
				m.showingHelp = false
			}
			return m, nil
		}

		if m.mode == model.ModeNav {
			return m.handleNavMode(msg)
		}
		return m.handleInsertMode(msg)

	case model.StateChangedMsg:
		m.state = msg.State
		m.syncViews()
		return m, m.feed.wait()

	case model.InitialDataLoadedMsg:
		m.ready = true
		m.error = ""
		return m, nil

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		return m, nil

	case model.LoginFinishedMsg:
		if !msg.LoggedIn {
			m.error = "Login failed. Check your e-mail and password."
			return m, nil
		}
		m.error = ""
		m.info = "Logged in"
		m.mode = model.ModeNav
		m.loginForm = nil
		m.screen = m.returnScreen
		return m, nil

	case model.ReviewSentMsg:
		m.mode = model.ModeNav
		m.reviewForm = nil
		m.info = "Review sent"
		return m, nil

	case formSubmittedMsg:
		switch {
		case m.reviewForm != nil:
			return m, sendReviewCmd(m.ctx, m.orchestrator, m.store, m.reviewForm.restaurantID)
		case m.loginForm != nil:
			m.info = "Logging in..."
			return m, requestLoginCmd(m.ctx, m.orchestrator, m.store)
		}
		return m, nil

	case model.FormCancelledMsg:
		m.mode = model.ModeNav
		m.error = ""
		if m.reviewForm != nil {
			m.reviewForm = nil
			return m, nil
		}
		if m.loginForm != nil {
			m.loginForm = nil
			m.screen = m.returnScreen
		}
		return m, nil
	}

	return m, nil
}

// syncViews keeps cursors and forms consistent with a new snapshot.
func (m *Model) syncViews() {
	m.home.Clamp(m.state)
	m.restaurants.Clamp(m.state.Restaurants)
	if m.loginForm != nil {
		m.loginForm.Sync(m.state)
	}
	if m.reviewForm != nil {
		m.reviewForm.Sync(m.state)
	}
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Home):
		m.screen = model.ScreenHome
		return m, nil
	case key.Matches(msg, m.keys.Restaurants):
		m.screen = model.ScreenRestaurants
		return m, nil
	case key.Matches(msg, m.keys.Account):
		return m.openAccount()
	}

	m.info = ""
	switch m.screen {
	case model.ScreenHome:
		return m.handleHomeNav(msg)
	case model.ScreenRestaurants:
		return m.handleRestaurantsNav(msg)
	case model.ScreenRestaurantDetail:
		return m.handleRestaurantDetailNav(msg)
	case model.ScreenLogin:
		return m.handleLoginNav(msg)
	}
	return m, nil
}

func (m Model) openAccount() (tea.Model, tea.Cmd) {
	if m.screen != model.ScreenLogin {
		m.returnScreen = m.screen
	}
	m.screen = model.ScreenLogin
	if m.state.LoggedIn() {
		return m, nil
	}
	m.mode = model.ModeInsert
	m.loginForm = NewLoginFormModel(m.store, m.formKeys)
	return m, textinput.Blink
}

func (m Model) handleHomeNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.home.MoveDown(m.state)
	case key.Matches(msg, m.keys.Up):
		m.home.MoveUp()
	case key.Matches(msg, m.keys.Top):
		m.home.JumpToTop()
	case key.Matches(msg, m.keys.Bottom):
		m.home.JumpToBottom(m.state)
	case key.Matches(msg, m.keys.Switch):
		m.home.SwitchList()
	case key.Matches(msg, m.keys.Reload):
		m.error = ""
		return m, loadInitialDataCmd(m.ctx, m.orchestrator, m.store)
	case key.Matches(msg, m.keys.Select):
		list, id, ok := m.home.Selected(m.state)
		if !ok {
			return m, nil
		}
		if list == homeListRegions {
			m.store.Dispatch(store.SelectRegion(id))
		} else {
			m.store.Dispatch(store.SelectCategory(id))
		}
		m.state = m.store.State()
		m.restaurants.Reset()
		return m, loadRestaurantsCmd(m.ctx, m.orchestrator, m.store)
	}
	return m, nil
}

func (m Model) handleRestaurantsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.state.Restaurants
	switch {
	case key.Matches(msg, m.keys.Down):
		m.restaurants.MoveDown(rows)
	case key.Matches(msg, m.keys.Up):
		m.restaurants.MoveUp()
	case key.Matches(msg, m.keys.Top):
		m.restaurants.JumpToTop()
	case key.Matches(msg, m.keys.Bottom):
		m.restaurants.JumpToBottom(rows)
	case key.Matches(msg, m.keys.Back):
		m.screen = model.ScreenHome
	case key.Matches(msg, m.keys.Reload):
		return m, loadRestaurantsCmd(m.ctx, m.orchestrator, m.store)
	case key.Matches(msg, m.keys.Select):
		row, ok := m.restaurants.Selected(rows)
		if !ok {
			return m, nil
		}
		return m.openRestaurant(row.ID)
	}
	return m, nil
}

func (m Model) openRestaurant(restaurantID int64) (tea.Model, tea.Cmd) {
	m.detail = NewRestaurantDetailModel(restaurantID)
	m.screen = model.ScreenRestaurantDetail
	return m, loadRestaurantCmd(m.ctx, m.orchestrator, m.store, restaurantID)
}

func (m Model) handleRestaurantDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail == nil {
		m.screen = model.ScreenRestaurants
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = model.ScreenRestaurants
	case key.Matches(msg, m.keys.Reload):
		return m.openRestaurant(m.detail.restaurantID)
	case key.Matches(msg, m.keys.Review):
		if !m.state.LoggedIn() {
			m.info = "Log in (3) to write a review"
			return m, nil
		}
		m.mode = model.ModeInsert
		m.reviewForm = NewReviewFormModel(m.store, m.formKeys, m.detail.restaurantID)
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleLoginNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = m.returnScreen
	case key.Matches(msg, m.keys.Select):
		if !m.state.LoggedIn() {
			return m.openAccount()
		}
		m.info = "Logged out"
		return m, requestLogoutCmd(m.ctx, m.orchestrator, m.store)
	}
	return m, nil
}

// handleInsertMode routes input to the open form.
func (m Model) handleInsertMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.reviewForm != nil:
		cmd = m.reviewForm.Update(msg)
	case m.loginForm != nil:
		cmd = m.loginForm.Update(msg)
	default:
		m.mode = model.ModeNav
	}
	m.state = m.store.State()
	return m, cmd
}

// View renders the current screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	// Header: 2 lines, nav: 1 line, footer: 2 lines
	contentHeight := m.height - 5

	var content string
	var breadcrumbParts []string

	switch m.screen {
	case model.ScreenHome:
		breadcrumbParts = []string{"Home"}
		if !m.ready && m.error == "" {
			content = EmptyStateStyle.Render(m.spinner.View() + " Loading regions and categories...")
		} else {
			content = m.home.View(m.state, m.width, contentHeight)
		}
	case model.ScreenRestaurants:
		breadcrumbParts = []string{"Restaurants"}
		content = m.restaurants.View(m.state, m.width, contentHeight)
	case model.ScreenRestaurantDetail:
		breadcrumbParts = []string{"Restaurants", "Detail"}
		if r := m.state.Restaurant; r != nil && r.Name != "" {
			breadcrumbParts = []string{"Restaurants", r.Name}
		}
		if m.detail != nil {
			if m.reviewForm != nil {
				content = m.reviewForm.View(m.state, m.width, contentHeight)
			} else {
				content = m.detail.View(m.state, m.spinner.View(), m.width, contentHeight)
			}
		}
	case model.ScreenLogin:
		if m.state.LoggedIn() {
			breadcrumbParts = []string{"Log out"}
			content = PanelStyle.Width(m.width - 4).Render(
				SuccessStyle.Render("You are logged in.") + "\n\n" + HelpDescStyle.Render("Press enter to log out."),
			)
		} else {
			breadcrumbParts = []string{"Log in"}
			if m.loginForm != nil {
				content = m.loginForm.View(m.error, m.width, contentHeight)
			}
		}
	}

	header := renderHeader(breadcrumbParts, m.width)
	nav := renderNav(m.screen, m.state.LoggedIn(), m.width)
	footer := RenderHelp(m.screen, m.mode, m.state.LoggedIn(), m.width)

	// Ensure content fills the available height to anchor footer at bottom
	content = lipgloss.NewStyle().
		Width(m.width).
		Height(max(0, contentHeight)).
		Render(content)

	parts := []string{header, nav}
	if m.error != "" && m.screen != model.ScreenLogin {
		parts = append(parts, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		parts = append(parts, SuccessStyle.Width(m.width).Render(m.info))
	}
	parts = append(parts, content, footer)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderHeader(breadcrumbParts []string, width int) string {
	// Left side: app name + breadcrumb
	title := HeaderStyle.Render("EatGo")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb

	// Right side: current date
	right := BreadcrumbStyle.Render(time.Now().Format("Mon 02 Jan")) + "  "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	headerContent := left + strings.Repeat(" ", padding) + right
	return TitleStyle.Width(width).Render(headerContent)
}
