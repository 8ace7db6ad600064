package ui

import (
	"context"

	"eatgo/internal/model"
	"eatgo/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Orchestrators run inside commands; their transitions reach the UI
// through the state feed, so most commands report nothing themselves.

func loadInitialDataCmd(ctx context.Context, o *store.Orchestrator, d store.Dispatcher) tea.Cmd {
	return func() tea.Msg {
		if err := o.LoadInitialData(ctx, d); err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.InitialDataLoadedMsg{}
	}
}

func restoreSessionCmd(ctx context.Context, o *store.Orchestrator, d store.Dispatcher) tea.Cmd {
	return func() tea.Msg {
		o.RestoreSession(ctx, d)
		return nil
	}
}

func loadRestaurantsCmd(ctx context.Context, o *store.Orchestrator, d store.Dispatcher) tea.Cmd {
	return func() tea.Msg {
		o.LoadRestaurants(ctx, d)
		return nil
	}
}

func loadRestaurantCmd(ctx context.Context, o *store.Orchestrator, d store.Dispatcher, restaurantID int64) tea.Cmd {
	return func() tea.Msg {
		o.LoadRestaurant(ctx, d, restaurantID)
		return nil
	}
}

func requestLoginCmd(ctx context.Context, o *store.Orchestrator, d store.Dispatcher) tea.Cmd {
	return func() tea.Msg {
		o.RequestLogin(ctx, d)
		return model.LoginFinishedMsg{LoggedIn: d.State().LoggedIn()}
	}
}

func sendReviewCmd(ctx context.Context, o *store.Orchestrator, d store.Dispatcher, restaurantID int64) tea.Cmd {
	return func() tea.Msg {
		o.SendReview(ctx, d, restaurantID)
		return model.ReviewSentMsg{RestaurantID: restaurantID}
	}
}

func requestLogoutCmd(ctx context.Context, o *store.Orchestrator, d store.Dispatcher) tea.Cmd {
	return func() tea.Msg {
		o.RequestLogout(ctx, d)
		return nil
	}
}
