package tracker

import "github.com/okoshkina/fittrack/internal/models"

// CheckAndResetDailyMeals clears selections and completion flags when the
// calendar day has changed since the last reset. Dispatched when a meal
// screen mounts; safe to call any number of times per day.
func (s *Store) CheckAndResetDailyMeals() {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := dayOf(s.clock.Now())
	if resetIfNewDay(&s.state.Meals.LastResetDate, today, func() {
		s.state.Meals.Meals = cloneMeals(s.seed)
	}) {
		s.persist()
	}
}

// SelectOption marks the option as selected within its category and clears
// its siblings. Unknown meal, category, or option ids are silent no-ops.
func (s *Store) SelectOption(mealID, categoryID, optionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meal := findMeal(s.state.Meals.Meals, mealID)
	if meal == nil {
		return
	}
	for ci := range meal.Categories {
		cat := &meal.Categories[ci]
		if cat.ID != categoryID {
			continue
		}
		for oi := range cat.Options {
			cat.Options[oi].Selected = cat.Options[oi].ID == optionID
		}
		s.persist()
		return
	}
}

// CompleteMeal marks the meal as consumed. Readiness (a selection in every
// category) is a caller-side precondition, not enforced here.
func (s *Store) CompleteMeal(mealID string) {
	s.setCompleted(mealID, true)
}

// UncompleteMeal returns a completed meal to the editable state with its
// selections intact.
func (s *Store) UncompleteMeal(mealID string) {
	s.setCompleted(mealID, false)
}

func (s *Store) setCompleted(mealID string, completed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if meal := findMeal(s.state.Meals.Meals, mealID); meal != nil {
		meal.Completed = completed
		s.persist()
	}
}

// ResetMeals restores the seed template unconditionally, regardless of date.
func (s *Store) ResetMeals() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Meals.Meals = cloneMeals(s.seed)
	s.state.Meals.LastResetDate = dayOf(s.clock.Now())
	s.persist()
}

func findMeal(meals []models.Meal, id string) *models.Meal {
	for i := range meals {
		if meals[i].ID == id {
			return &meals[i]
		}
	}
	return nil
}

// MealReady reports whether every category of the meal has a selection,
// the read-time condition under which completion is offered.
func MealReady(meal models.Meal) bool {
	if len(meal.Categories) == 0 {
		return false
	}
	for _, cat := range meal.Categories {
		selected := false
		for _, opt := range cat.Options {
			if opt.Selected {
				selected = true
				break
			}
		}
		if !selected {
			return false
		}
	}
	return true
}
