package tracker

import "github.com/okoshkina/fittrack/internal/models"

// DefaultMealPlan is the static meal template loaded at store creation and
// restored on each daily reset.
func DefaultMealPlan() []models.Meal {
	return []models.Meal{
		{
			ID:   "breakfast",
			Name: "Breakfast",
			Categories: []models.MealCategory{
				{
					ID:   "breakfast-protein",
					Name: "Protein",
					Options: []models.MealOption{
						{ID: "eggs", Name: "Scrambled eggs"},
						{ID: "greek-yogurt", Name: "Greek yogurt"},
						{ID: "protein-shake", Name: "Protein shake"},
					},
				},
				{
					ID:   "breakfast-carbs",
					Name: "Carbs",
					Options: []models.MealOption{
						{ID: "oatmeal", Name: "Oatmeal"},
						{ID: "toast", Name: "Whole-grain toast"},
						{ID: "fruit", Name: "Fresh fruit"},
					},
				},
			},
		},
		{
			ID:   "lunch",
			Name: "Lunch",
			Categories: []models.MealCategory{
				{
					ID:   "lunch-protein",
					Name: "Protein",
					Options: []models.MealOption{
						{ID: "chicken", Name: "Grilled chicken"},
						{ID: "salmon", Name: "Baked salmon"},
						{ID: "tofu", Name: "Tofu"},
					},
				},
				{
					ID:   "lunch-carbs",
					Name: "Carbs",
					Options: []models.MealOption{
						{ID: "rice", Name: "Brown rice"},
						{ID: "quinoa", Name: "Quinoa"},
						{ID: "sweet-potato", Name: "Sweet potato"},
					},
				},
				{
					ID:   "lunch-veggies",
					Name: "Vegetables",
					Options: []models.MealOption{
						{ID: "salad", Name: "Mixed salad"},
						{ID: "steamed-veg", Name: "Steamed vegetables"},
					},
				},
			},
		},
		{
			ID:   "dinner",
			Name: "Dinner",
			Categories: []models.MealCategory{
				{
					ID:   "dinner-protein",
					Name: "Protein",
					Options: []models.MealOption{
						{ID: "beef", Name: "Lean beef"},
						{ID: "turkey", Name: "Turkey breast"},
						{ID: "lentils", Name: "Lentils"},
					},
				},
				{
					ID:   "dinner-veggies",
					Name: "Vegetables",
					Options: []models.MealOption{
						{ID: "roasted-veg", Name: "Roasted vegetables"},
						{ID: "greens", Name: "Sauteed greens"},
					},
				},
			},
		},
	}
}
