package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// StateChangedMsg is sent after the store applied one or more transitions.
type StateChangedMsg struct {
	State State
}

// InitialDataLoadedMsg is sent when regions and categories arrived.
type InitialDataLoadedMsg struct{}

// LoginFinishedMsg is sent when a login request has completed.
type LoginFinishedMsg struct {
	LoggedIn bool
}

// ReviewSentMsg is sent when a review submission has completed.
type ReviewSentMsg struct {
	RestaurantID int64
}

// FormCancelledMsg is sent when a form is cancelled.
type FormCancelledMsg struct{}

// Screen represents different app screens.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenRestaurants
	ScreenRestaurantDetail
	ScreenLogin
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)
