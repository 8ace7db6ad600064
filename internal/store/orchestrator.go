package store

import (
	"context"
	"fmt"
	"log/slog"

	"eatgo/internal/model"

	"golang.org/x/sync/errgroup"
)

// AccessTokenKey is the storage key the session token is persisted under.
const AccessTokenKey = "accessToken"

// API is the remote restaurant service the orchestrators read from.
type API interface {
	FetchRegions(ctx context.Context) ([]model.Region, error)
	FetchCategories(ctx context.Context) ([]model.Category, error)
	FetchRestaurants(ctx context.Context, regionName string, categoryID int64) ([]model.RestaurantSummary, error)
	FetchRestaurant(ctx context.Context, restaurantID int64) (model.RestaurantDetail, error)
	PostLogin(ctx context.Context, email, password string) (string, error)
	PostReview(ctx context.Context, accessToken string, restaurantID int64, score, description string) error
}

// Storage persists small string values across runs.
type Storage interface {
	SaveItem(ctx context.Context, key, value string) error
	LoadItem(ctx context.Context, key string) (string, error)
}

// Orchestrator runs the asynchronous flows that call the API and dispatch
// transitions. Only LoadInitialData reports failure; every other flow
// replaces a failed result with an empty value.
type Orchestrator struct {
	api     API
	storage Storage
	logger  *slog.Logger
}

// NewOrchestrator creates an orchestrator. A nil logger discards output.
func NewOrchestrator(api API, storage Storage, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Orchestrator{
		api:     api,
		storage: storage,
		logger:  logger,
	}
}

// LoadInitialData fetches regions and categories concurrently and
// dispatches them together. Failures are returned to the caller and
// nothing is dispatched.
func (o *Orchestrator) LoadInitialData(ctx context.Context, d Dispatcher) error {
	var (
		regions    []model.Region
		categories []model.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		regions, err = o.api.FetchRegions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = o.api.FetchCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load initial data: %w", err)
	}

	d.Dispatch(SetRegionsAndCategories(regions, categories))
	return nil
}

// LoadRestaurants fetches the listing for the selected region and
// category. It does nothing until both are selected.
func (o *Orchestrator) LoadRestaurants(ctx context.Context, d Dispatcher) {
	state := d.State()
	region, category := state.SelectedRegion, state.SelectedCategory
	if region == nil || category == nil {
		return
	}

	restaurants, err := o.api.FetchRestaurants(ctx, region.Name, category.ID)
	if err != nil {
		o.logger.Warn("failed to load restaurants",
			slog.String("region", region.Name),
			slog.Int64("category_id", category.ID),
			slog.String("error", err.Error()),
		)
		d.Dispatch(SetRestaurants([]model.RestaurantSummary{}))
		return
	}

	d.Dispatch(SetRestaurants(restaurants))
}

// LoadRestaurant clears the current detail, then fetches the requested one.
func (o *Orchestrator) LoadRestaurant(ctx context.Context, d Dispatcher, restaurantID int64) {
	d.Dispatch(SetRestaurant(nil))

	detail, err := o.api.FetchRestaurant(ctx, restaurantID)
	if err != nil {
		o.logger.Warn("failed to load restaurant",
			slog.Int64("restaurant_id", restaurantID),
			slog.String("error", err.Error()),
		)
		d.Dispatch(SetRestaurant(&model.RestaurantDetail{}))
		return
	}

	d.Dispatch(SetRestaurant(&detail))
}

// RequestLogin posts the login form and stores the returned token.
func (o *Orchestrator) RequestLogin(ctx context.Context, d Dispatcher) {
	fields := d.State().LoginFields

	token, err := o.api.PostLogin(ctx, fields.Email, fields.Password)
	if err != nil {
		o.logger.Warn("login failed", slog.String("error", err.Error()))
		d.Dispatch(SetAccessToken(""))
		return
	}

	o.saveItem(ctx, AccessTokenKey, token)
	d.Dispatch(SetAccessToken(token))
}

// LoadReview refreshes only the reviews of a restaurant.
func (o *Orchestrator) LoadReview(ctx context.Context, d Dispatcher, restaurantID int64) {
	detail, err := o.api.FetchRestaurant(ctx, restaurantID)
	if err != nil {
		o.logger.Warn("failed to load reviews",
			slog.Int64("restaurant_id", restaurantID),
			slog.String("error", err.Error()),
		)
		d.Dispatch(SetReviews([]model.Review{}))
		return
	}

	d.Dispatch(SetReviews(detail.Reviews))
}

// SendReview submits the review form. On success the reviews are reloaded
// before the form is cleared; on failure the form is only cleared.
func (o *Orchestrator) SendReview(ctx context.Context, d Dispatcher, restaurantID int64) {
	state := d.State()
	fields := state.ReviewFields

	err := o.api.PostReview(ctx, state.AccessToken, restaurantID, fields.Score, fields.Description)
	if err != nil {
		o.logger.Warn("failed to send review",
			slog.Int64("restaurant_id", restaurantID),
			slog.String("error", err.Error()),
		)
		d.Dispatch(ClearReviewFields())
		return
	}

	o.LoadReview(ctx, d, restaurantID)
	d.Dispatch(ClearReviewFields())
}

// RestoreSession dispatches a token persisted by an earlier login.
func (o *Orchestrator) RestoreSession(ctx context.Context, d Dispatcher) {
	if o.storage == nil {
		return
	}

	token, err := o.storage.LoadItem(ctx, AccessTokenKey)
	if err != nil {
		o.logger.Debug("no stored session", slog.String("error", err.Error()))
		return
	}
	if token == "" {
		return
	}

	d.Dispatch(SetAccessToken(token))
}

// RequestLogout clears the token in state and in storage.
func (o *Orchestrator) RequestLogout(ctx context.Context, d Dispatcher) {
	d.Dispatch(Logout())
	o.saveItem(ctx, AccessTokenKey, "")
}

// saveItem writes through to storage without letting failures escape.
func (o *Orchestrator) saveItem(ctx context.Context, key, value string) {
	if o.storage == nil {
		return
	}
	if err := o.storage.SaveItem(ctx, key, value); err != nil {
		o.logger.Error("failed to persist item",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
