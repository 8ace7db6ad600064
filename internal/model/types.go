package model

// Region represents a region a restaurant can be located in.
type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Category represents a restaurant category (cuisine).
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RestaurantSummary represents a restaurant in a filtered listing.
type RestaurantSummary struct {
	ID          int64  `json:"id"`
	CategoryID  int64  `json:"categoryId"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Information string `json:"information"`
}

// MenuItem represents a dish on a restaurant's menu.
type MenuItem struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	Name         string `json:"name"`
}

// Review represents a user review of a restaurant.
type Review struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	Name         string `json:"name"`
	Score        int    `json:"score"`
	Description  string `json:"description"`
}

// RestaurantDetail represents a restaurant with its menu and reviews.
type RestaurantDetail struct {
	ID          int64      `json:"id"`
	CategoryID  int64      `json:"categoryId"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Information string     `json:"information"`
	MenuItems   []MenuItem `json:"menuItems"`
	Reviews     []Review   `json:"reviews"`
}

// IsEmpty reports whether the detail carries no restaurant, which is how a
// failed load is represented.
func (d RestaurantDetail) IsEmpty() bool {
	return d.ID == 0 && d.Name == "" && len(d.MenuItems) == 0 && len(d.Reviews) == 0
}

// Login form field names.
const (
	LoginFieldEmail    = "email"
	LoginFieldPassword = "password"
)

// LoginFields is the login form buffer.
type LoginFields struct {
	Email    string
	Password string
}

// Review form field names.
const (
	ReviewFieldScore       = "score"
	ReviewFieldDescription = "description"
)

// ReviewFields is the review form buffer.
type ReviewFields struct {
	Score       string
	Description string
}

// State is an immutable snapshot of the whole application state.
// Transitions replace slices and pointers instead of writing through them.
type State struct {
	Regions          []Region
	Categories       []Category
	Restaurants      []RestaurantSummary
	Restaurant       *RestaurantDetail // nil while unset or loading
	SelectedRegion   *Region
	SelectedCategory *Category
	LoginFields      LoginFields
	AccessToken      string // empty when logged out
	ReviewFields     ReviewFields
}

// NewState returns the blank state the application starts with.
func NewState() State {
	return State{
		Regions:     []Region{},
		Categories:  []Category{},
		Restaurants: []RestaurantSummary{},
	}
}

// LoggedIn reports whether the snapshot holds an access token.
func (s State) LoggedIn() bool {
	return s.AccessToken != ""
}
