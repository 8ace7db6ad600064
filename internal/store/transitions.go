package store

import "eatgo/internal/model"

// Action is a pure transition from one snapshot to the next.
type Action func(model.State) model.State

// SetRegions replaces the region list.
func SetRegions(regions []model.Region) Action {
	return func(s model.State) model.State {
		s.Regions = regions
		return s
	}
}

// SetCategories replaces the category list.
func SetCategories(categories []model.Category) Action {
	return func(s model.State) model.State {
		s.Categories = categories
		return s
	}
}

// SetRegionsAndCategories replaces both lists in a single step.
func SetRegionsAndCategories(regions []model.Region, categories []model.Category) Action {
	return func(s model.State) model.State {
		s.Regions = regions
		s.Categories = categories
		return s
	}
}

// SetRestaurants replaces the restaurant listing.
func SetRestaurants(restaurants []model.RestaurantSummary) Action {
	return func(s model.State) model.State {
		s.Restaurants = restaurants
		return s
	}
}

// SetRestaurant replaces the restaurant detail. A nil detail marks it unset.
func SetRestaurant(detail *model.RestaurantDetail) Action {
	return func(s model.State) model.State {
		s.Restaurant = detail
		return s
	}
}

// SelectRegion selects the region with the given id, or clears the
// selection when no region matches.
func SelectRegion(regionID int64) Action {
	return func(s model.State) model.State {
		s.SelectedRegion = nil
		for i := range s.Regions {
			if s.Regions[i].ID == regionID {
				region := s.Regions[i]
				s.SelectedRegion = &region
				break
			}
		}
		return s
	}
}

// SelectCategory selects the category with the given id, or clears the
// selection when no category matches.
func SelectCategory(categoryID int64) Action {
	return func(s model.State) model.State {
		s.SelectedCategory = nil
		for i := range s.Categories {
			if s.Categories[i].ID == categoryID {
				category := s.Categories[i]
				s.SelectedCategory = &category
				break
			}
		}
		return s
	}
}

// ChangeLoginField sets one login form field. Unknown names are ignored.
func ChangeLoginField(name, value string) Action {
	return func(s model.State) model.State {
		switch name {
		case model.LoginFieldEmail:
			s.LoginFields.Email = value
		case model.LoginFieldPassword:
			s.LoginFields.Password = value
		}
		return s
	}
}

// SetAccessToken replaces the session token.
func SetAccessToken(token string) Action {
	return func(s model.State) model.State {
		s.AccessToken = token
		return s
	}
}

// Logout clears the session token.
func Logout() Action {
	return SetAccessToken("")
}

// ChangeReviewField sets one review form field. Unknown names are ignored.
func ChangeReviewField(name, value string) Action {
	return func(s model.State) model.State {
		switch name {
		case model.ReviewFieldScore:
			s.ReviewFields.Score = value
		case model.ReviewFieldDescription:
			s.ReviewFields.Description = value
		}
		return s
	}
}

// ClearReviewFields resets the review form.
func ClearReviewFields() Action {
	return func(s model.State) model.State {
		s.ReviewFields = model.ReviewFields{}
		return s
	}
}

// SetReviews replaces the reviews of the current restaurant detail and
// keeps every other detail field. The detail is copied, never written
// through.
func SetReviews(reviews []model.Review) Action {
	return func(s model.State) model.State {
		var detail model.RestaurantDetail
		if s.Restaurant != nil {
			detail = *s.Restaurant
		}
		detail.Reviews = reviews
		s.Restaurant = &detail
		return s
	}
}
