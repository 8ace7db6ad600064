package store

import (
	"reflect"
	"testing"

	"eatgo/internal/model"
)

func sampleState() model.State {
	s := model.NewState()
	s.Regions = []model.Region{{ID: 1, Name: "Seoul"}, {ID: 2, Name: "Busan"}}
	s.Categories = []model.Category{{ID: 1, Name: "Korean"}, {ID: 2, Name: "Chinese"}}
	return s
}

func TestSetRegionsAndCategories(t *testing.T) {
	regions := []model.Region{{ID: 1, Name: "Seoul"}}
	categories := []model.Category{{ID: 3, Name: "Japanese"}}

	got := SetRegionsAndCategories(regions, categories)(model.NewState())

	if !reflect.DeepEqual(got.Regions, regions) {
		t.Errorf("Regions = %v, want %v", got.Regions, regions)
	}
	if !reflect.DeepEqual(got.Categories, categories) {
		t.Errorf("Categories = %v, want %v", got.Categories, categories)
	}
}

func TestSelectRegion(t *testing.T) {
	tests := []struct {
		name string
		id   int64
		want *model.Region
	}{
		{"present", 2, &model.Region{ID: 2, Name: "Busan"}},
		{"absent", 9, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectRegion(tt.id)(sampleState())
			if !reflect.DeepEqual(got.SelectedRegion, tt.want) {
				t.Errorf("SelectedRegion = %v, want %v", got.SelectedRegion, tt.want)
			}
		})
	}
}

func TestSelectRegion_ClearsPreviousSelection(t *testing.T) {
	s := SelectRegion(1)(sampleState())
	s = SelectRegion(42)(s)
	if s.SelectedRegion != nil {
		t.Errorf("SelectedRegion = %v, want nil", s.SelectedRegion)
	}
}

func TestSelectCategory(t *testing.T) {
	got := SelectCategory(1)(sampleState())
	want := &model.Category{ID: 1, Name: "Korean"}
	if !reflect.DeepEqual(got.SelectedCategory, want) {
		t.Errorf("SelectedCategory = %v, want %v", got.SelectedCategory, want)
	}

	got = SelectCategory(7)(got)
	if got.SelectedCategory != nil {
		t.Errorf("SelectedCategory = %v, want nil", got.SelectedCategory)
	}
}

func TestChangeLoginField(t *testing.T) {
	s := ChangeLoginField(model.LoginFieldEmail, "a@b.com")(model.NewState())
	s = ChangeLoginField(model.LoginFieldPassword, "x")(s)

	want := model.LoginFields{Email: "a@b.com", Password: "x"}
	if s.LoginFields != want {
		t.Errorf("LoginFields = %+v, want %+v", s.LoginFields, want)
	}
}

func TestChangeLoginField_UnknownNameIgnored(t *testing.T) {
	s := ChangeLoginField(model.LoginFieldEmail, "a@b.com")(model.NewState())
	got := ChangeLoginField("nickname", "z")(s)
	if got.LoginFields != s.LoginFields {
		t.Errorf("LoginFields = %+v, want %+v", got.LoginFields, s.LoginFields)
	}
}

func TestChangeReviewField(t *testing.T) {
	s := ChangeReviewField(model.ReviewFieldScore, "5")(model.NewState())
	s = ChangeReviewField(model.ReviewFieldDescription, "Great")(s)

	want := model.ReviewFields{Score: "5", Description: "Great"}
	if s.ReviewFields != want {
		t.Errorf("ReviewFields = %+v, want %+v", s.ReviewFields, want)
	}
}

func TestClearReviewFields(t *testing.T) {
	for _, fields := range []model.ReviewFields{
		{},
		{Score: "3"},
		{Score: "1", Description: "meh"},
	} {
		s := model.NewState()
		s.ReviewFields = fields
		got := ClearReviewFields()(s)
		if got.ReviewFields != (model.ReviewFields{}) {
			t.Errorf("ReviewFields = %+v, want blank", got.ReviewFields)
		}
	}
}

func TestLogout_Idempotent(t *testing.T) {
	s := SetAccessToken("tok")(model.NewState())

	once := Logout()(s)
	twice := Logout()(once)

	if once.AccessToken != "" {
		t.Errorf("AccessToken = %q, want empty", once.AccessToken)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("logout twice = %+v, want %+v", twice, once)
	}
}

func TestSetReviews_KeepsDetailFields(t *testing.T) {
	s := model.NewState()
	s.Restaurant = &model.RestaurantDetail{ID: 5, Name: "X"}
	reviews := []model.Review{{ID: 1, Score: 5}, {ID: 2, Score: 3}}

	got := SetReviews(reviews)(s)

	want := &model.RestaurantDetail{ID: 5, Name: "X", Reviews: reviews}
	if !reflect.DeepEqual(got.Restaurant, want) {
		t.Errorf("Restaurant = %+v, want %+v", got.Restaurant, want)
	}
	if s.Restaurant.Reviews != nil {
		t.Errorf("input detail was modified: %+v", s.Restaurant)
	}
}

func TestSetReviews_UnsetRestaurant(t *testing.T) {
	reviews := []model.Review{{ID: 1}}
	got := SetReviews(reviews)(model.NewState())

	if got.Restaurant == nil {
		t.Fatal("Restaurant = nil, want detail holding reviews")
	}
	if !reflect.DeepEqual(got.Restaurant.Reviews, reviews) {
		t.Errorf("Reviews = %v, want %v", got.Restaurant.Reviews, reviews)
	}
}

func TestTransitions_DoNotModifyInput(t *testing.T) {
	actions := map[string]Action{
		"SetRegions":        SetRegions([]model.Region{{ID: 9}}),
		"SetCategories":     SetCategories([]model.Category{{ID: 9}}),
		"SetRestaurants":    SetRestaurants([]model.RestaurantSummary{{ID: 9}}),
		"SetRestaurant":     SetRestaurant(&model.RestaurantDetail{ID: 9}),
		"SelectRegion":      SelectRegion(2),
		"SelectCategory":    SelectCategory(2),
		"ChangeLoginField":  ChangeLoginField(model.LoginFieldEmail, "e"),
		"SetAccessToken":    SetAccessToken("t"),
		"Logout":            Logout(),
		"ChangeReviewField": ChangeReviewField(model.ReviewFieldScore, "4"),
		"ClearReviewFields": ClearReviewFields(),
		"SetReviews":        SetReviews([]model.Review{{ID: 9}}),
	}

	for name, action := range actions {
		t.Run(name, func(t *testing.T) {
			input := sampleState()
			input.Restaurant = &model.RestaurantDetail{ID: 1, Name: "Kimbap"}
			input.AccessToken = "old"
			input.ReviewFields = model.ReviewFields{Score: "1", Description: "d"}

			before := sampleState()
			before.Restaurant = &model.RestaurantDetail{ID: 1, Name: "Kimbap"}
			before.AccessToken = "old"
			before.ReviewFields = model.ReviewFields{Score: "1", Description: "d"}

			action(input)

			if !reflect.DeepEqual(input, before) {
				t.Errorf("input changed to %+v, want %+v", input, before)
			}
		})
	}
}
