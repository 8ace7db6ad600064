package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"eatgo/internal/db"
	"eatgo/internal/model"
	"eatgo/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

type stubAPI struct {
	regions     []model.Region
	categories  []model.Category
	restaurants []model.RestaurantSummary
	detail      model.RestaurantDetail
	token       string
	initErr     error
	reviews     [][]string
}

func (s *stubAPI) FetchRegions(ctx context.Context) ([]model.Region, error) {
	return s.regions, s.initErr
}

func (s *stubAPI) FetchCategories(ctx context.Context) ([]model.Category, error) {
	return s.categories, nil
}

func (s *stubAPI) FetchRestaurants(ctx context.Context, regionName string, categoryID int64) ([]model.RestaurantSummary, error) {
	return s.restaurants, nil
}

func (s *stubAPI) FetchRestaurant(ctx context.Context, restaurantID int64) (model.RestaurantDetail, error) {
	return s.detail, nil
}

func (s *stubAPI) PostLogin(ctx context.Context, email, password string) (string, error) {
	if email != "tester@example.com" || password != "test" {
		return "", errors.New("unauthorized")
	}
	return s.token, nil
}

func (s *stubAPI) PostReview(ctx context.Context, accessToken string, restaurantID int64, score, description string) error {
	s.reviews = append(s.reviews, []string{accessToken, score, description})
	return nil
}

func newStubAPI() *stubAPI {
	return &stubAPI{
		regions:     []model.Region{{ID: 1, Name: "Seoul"}, {ID: 2, Name: "Busan"}},
		categories:  []model.Category{{ID: 1, Name: "Korean"}, {ID: 2, Name: "Chinese"}},
		restaurants: []model.RestaurantSummary{{ID: 7, Name: "Kimbap heaven", Address: "Gangnam"}},
		detail: model.RestaurantDetail{
			ID:        7,
			Name:      "Kimbap heaven",
			Address:   "Gangnam",
			MenuItems: []model.MenuItem{{ID: 1, Name: "Kimbap"}},
			Reviews:   []model.Review{{ID: 1, Name: "tester", Score: 5, Description: "Great"}},
		},
		token: "tok123",
	}
}

type testApp struct {
	t       *testing.T
	api     *stubAPI
	store   *store.Store
	storage *db.Storage
	model   Model
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "eatgo.db"))
	if err != nil {
		t.Fatalf("db.Open returned error: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	api := newStubAPI()
	s := store.New(model.NewState())
	storage := db.NewStorage(database)
	o := store.NewOrchestrator(api, storage, nil)

	m := New(context.Background(), s, o)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	return &testApp{t: t, api: api, store: s, storage: storage, model: updated.(Model)}
}

// send delivers msg and runs the returned command, feeding its message
// back in. Batched and blinking commands are not followed.
func (a *testApp) send(msg tea.Msg) {
	a.t.Helper()
	updated, cmd := a.model.Update(msg)
	a.model = updated.(Model)
	if cmd != nil {
		switch next := cmd().(type) {
		case model.LoginFinishedMsg, model.ReviewSentMsg, model.InitialDataLoadedMsg, model.ErrorMsg, formSubmittedMsg, model.FormCancelledMsg:
			a.send(next)
		}
	}
	// Stand-in for the state feed.
	a.model.state = a.store.State()
}

// typeText types into the focused input without running cursor commands.
func (a *testApp) typeText(s string) {
	for _, r := range s {
		updated, _ := a.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		a.model = updated.(Model)
	}
}

func (a *testApp) loadInitialData() {
	a.t.Helper()
	msg := loadInitialDataCmd(context.Background(), a.model.orchestrator, a.store)()
	a.send(msg)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_InitialDataLoaded(t *testing.T) {
	app := newTestApp(t)
	app.loadInitialData()

	if !app.model.ready {
		t.Error("model not ready after initial data")
	}
	if got := len(app.store.State().Regions); got != 2 {
		t.Errorf("len(Regions) = %d, want 2", got)
	}
	if view := app.model.View(); !strings.Contains(view, "Seoul") || !strings.Contains(view, "Korean") {
		t.Errorf("home view missing regions/categories:\n%s", view)
	}
}

func TestApp_InitialDataFailureShowsError(t *testing.T) {
	app := newTestApp(t)
	app.api.initErr = errors.New("offline")
	app.loadInitialData()

	if app.model.ready {
		t.Error("model ready after failed initial load")
	}
	if !strings.Contains(app.model.View(), "offline") {
		t.Error("error banner missing")
	}
}

func TestApp_SelectRegionAndCategoryLoadsRestaurants(t *testing.T) {
	app := newTestApp(t)
	app.loadInitialData()

	app.send(runes("j"))                     // Busan
	app.send(tea.KeyMsg{Type: tea.KeyEnter}) // select region
	if len(app.store.State().Restaurants) != 0 {
		t.Fatal("restaurants loaded before category was selected")
	}

	app.send(tea.KeyMsg{Type: tea.KeyTab})
	app.send(tea.KeyMsg{Type: tea.KeyEnter}) // select Korean

	state := app.store.State()
	if state.SelectedRegion == nil || state.SelectedRegion.Name != "Busan" {
		t.Errorf("SelectedRegion = %+v, want Busan", state.SelectedRegion)
	}
	if state.SelectedCategory == nil || state.SelectedCategory.ID != 1 {
		t.Errorf("SelectedCategory = %+v, want Korean", state.SelectedCategory)
	}
	if len(state.Restaurants) != 1 {
		t.Fatalf("len(Restaurants) = %d, want 1", len(state.Restaurants))
	}

	app.send(runes("2"))
	if app.model.screen != model.ScreenRestaurants {
		t.Errorf("screen = %v, want restaurants", app.model.screen)
	}
	if !strings.Contains(app.model.View(), "Kimbap heaven") {
		t.Error("restaurant listing missing from view")
	}

	app.send(tea.KeyMsg{Type: tea.KeyEnter})
	if app.model.screen != model.ScreenRestaurantDetail {
		t.Fatalf("screen = %v, want detail", app.model.screen)
	}
	if r := app.store.State().Restaurant; r == nil || r.ID != 7 {
		t.Errorf("Restaurant = %+v, want id 7", r)
	}
	if !strings.Contains(app.model.View(), "Great") {
		t.Error("review missing from detail view")
	}
}

func login(t *testing.T, app *testApp) {
	t.Helper()
	app.send(runes("3"))
	if app.model.mode != model.ModeInsert || app.model.loginForm == nil {
		t.Fatal("login form not opened")
	}
	app.typeText("tester@example.com")
	app.send(tea.KeyMsg{Type: tea.KeyTab})
	app.typeText("test")
	app.send(tea.KeyMsg{Type: tea.KeyCtrlS})
}

func TestApp_Login(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	state := app.store.State()
	if state.LoginFields != (model.LoginFields{Email: "tester@example.com", Password: "test"}) {
		t.Errorf("LoginFields = %+v", state.LoginFields)
	}
	if state.AccessToken != "tok123" {
		t.Errorf("AccessToken = %q, want %q", state.AccessToken, "tok123")
	}
	if app.model.mode != model.ModeNav || app.model.loginForm != nil {
		t.Error("login form still open after success")
	}

	stored, err := app.storage.LoadItem(context.Background(), store.AccessTokenKey)
	if err != nil || stored != "tok123" {
		t.Errorf("stored token = %q, %v", stored, err)
	}
}

func TestApp_LoginFailureKeepsForm(t *testing.T) {
	app := newTestApp(t)
	app.send(runes("3"))
	app.typeText("nobody@example.com")
	app.send(tea.KeyMsg{Type: tea.KeyCtrlS})

	if app.store.State().AccessToken != "" {
		t.Error("token set after failed login")
	}
	if app.model.loginForm == nil || app.model.error == "" {
		t.Error("failed login should keep the form open with an error")
	}
}

func TestApp_Logout(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	app.send(runes("3"))
	app.send(tea.KeyMsg{Type: tea.KeyEnter})

	if app.store.State().AccessToken != "" {
		t.Error("token kept after logout")
	}
	stored, err := app.storage.LoadItem(context.Background(), store.AccessTokenKey)
	if err != nil || stored != "" {
		t.Errorf("stored token = %q, %v; want empty", stored, err)
	}
}

func TestApp_WriteReview(t *testing.T) {
	app := newTestApp(t)
	app.loadInitialData()

	// Detail screen without a session refuses the review form.
	app.send(runes("2"))
	updated, cmd := app.model.openRestaurant(7)
	app.model = updated.(Model)
	cmd()
	app.model.state = app.store.State()

	app.send(runes("w"))
	if app.model.reviewForm != nil {
		t.Fatal("review form opened while logged out")
	}

	login(t, app)
	if app.model.screen != model.ScreenRestaurantDetail {
		t.Fatalf("screen = %v, want detail after login", app.model.screen)
	}

	app.api.detail.Reviews = append(app.api.detail.Reviews, model.Review{ID: 2, Name: "tester", Score: 4, Description: "Tasty"})
	app.send(runes("w"))
	if app.model.reviewForm == nil {
		t.Fatal("review form not opened")
	}
	app.typeText("4")
	app.send(tea.KeyMsg{Type: tea.KeyTab})
	app.typeText("Tasty")
	app.send(tea.KeyMsg{Type: tea.KeyEnter})

	if len(app.api.reviews) != 1 || strings.Join(app.api.reviews[0], "|") != "tok123|4|Tasty" {
		t.Errorf("posted reviews = %v", app.api.reviews)
	}
	state := app.store.State()
	if state.ReviewFields != (model.ReviewFields{}) {
		t.Errorf("ReviewFields = %+v, want blank", state.ReviewFields)
	}
	if len(state.Restaurant.Reviews) != 2 {
		t.Errorf("len(Reviews) = %d, want 2", len(state.Restaurant.Reviews))
	}
	if app.model.reviewForm != nil || app.model.mode != model.ModeNav {
		t.Error("review form still open after submit")
	}
}

func TestApp_CancelReviewKeepsFields(t *testing.T) {
	app := newTestApp(t)
	app.store.Dispatch(store.SetAccessToken("tok"))
	updated, cmd := app.model.openRestaurant(7)
	app.model = updated.(Model)
	cmd()
	app.model.state = app.store.State()

	app.send(runes("w"))
	app.typeText("3")
	app.send(tea.KeyMsg{Type: tea.KeyEsc})

	if app.model.reviewForm != nil {
		t.Error("review form open after cancel")
	}
	if got := app.store.State().ReviewFields.Score; got != "3" {
		t.Errorf("Score = %q, want %q", got, "3")
	}
}

func TestStateFeed_DeliversLatestSnapshot(t *testing.T) {
	s := store.New(model.NewState())
	feed, unsubscribe := newStateFeed(s)
	defer unsubscribe()

	s.Dispatch(store.SetAccessToken("a"))
	s.Dispatch(store.SetAccessToken("b"))

	msg, ok := feed.wait()().(model.StateChangedMsg)
	if !ok {
		t.Fatal("feed did not produce StateChangedMsg")
	}
	if msg.State.AccessToken != "b" {
		t.Errorf("AccessToken = %q, want %q", msg.State.AccessToken, "b")
	}
}

func TestApp_StateChangedMsgClampsCursor(t *testing.T) {
	app := newTestApp(t)
	app.loadInitialData()
	app.send(runes("j"))

	app.store.Dispatch(store.SetRegions([]model.Region{{ID: 1, Name: "Seoul"}}))
	updated, _ := app.model.Update(model.StateChangedMsg{State: app.store.State()})
	app.model = updated.(Model)

	_, id, ok := app.model.home.Selected(app.model.state)
	if !ok || id != 1 {
		t.Errorf("selected = %d, %v; want 1, true", id, ok)
	}
}
