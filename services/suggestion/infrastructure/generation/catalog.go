package generation

import "github.com/ghuser/foodkeeper/services/suggestion/domain/models"

// recipeTemplate is one entry of the static rule table. Each pattern is a
// keyword list; a pattern matches when every keyword substring-matches some
// available product name. Patterns are tried in order per template and the
// first full match wins.
type recipeTemplate struct {
	name      string
	patterns  [][]string
	timeRange models.TimeRange
	steps     []string
}

// recipeCatalog holds common Spanish dishes. Catalog order is the tie-break
// when two templates bind the same number of urgent ingredients.
var recipeCatalog = []recipeTemplate{
	{
		name: "Arroz con pollo",
		patterns: [][]string{
			{"chicken", "rice"},
			{"pollo", "arroz"},
		},
		timeRange: models.TimeMedium,
		steps:     []string{"Cocina el pollo", "Hierve el arroz", "Mezcla todo"},
	},
	{
		name: "Pasta con tomate",
		patterns: [][]string{
			{"pasta", "tomato"},
			{"pasta", "tomate"},
			{"spaghetti", "tomato"},
		},
		timeRange: models.TimeQuick,
		steps:     []string{"Hierve la pasta", "Calienta la salsa", "Mezcla"},
	},
	{
		name: "Tortilla de patatas",
		patterns: [][]string{
			{"eggs", "potato"},
			{"huevos", "patata"},
		},
		timeRange: models.TimeMedium,
		steps:     []string{"Fríe las patatas", "Bate los huevos", "Cocina la tortilla"},
	},
	{
		name: "Ensalada de pollo",
		patterns: [][]string{
			{"chicken", "lettuce"},
			{"pollo", "lechuga"},
		},
		timeRange: models.TimeQuick,
		steps:     []string{"Cocina el pollo", "Corta la lechuga", "Mezcla con aliño"},
	},
	{
		name: "Sopa de verduras",
		patterns: [][]string{
			{"carrot", "onion"},
			{"zanahoria", "cebolla"},
			{"vegetables", "broth"},
		},
		timeRange: models.TimeMedium,
		steps:     []string{"Corta las verduras", "Hierve con caldo", "Cocina 20 min"},
	},
	{
		name:      "Huevos revueltos",
		patterns:  [][]string{{"eggs"}, {"huevos"}},
		timeRange: models.TimeQuick,
		steps:     []string{"Bate los huevos", "Cocina a fuego medio", "Remueve constantemente"},
	},
	{
		name:      "Arroz blanco",
		patterns:  [][]string{{"rice"}, {"arroz"}},
		timeRange: models.TimeQuick,
		steps:     []string{"Hierve agua", "Añade arroz", "Cocina 15 min"},
	},
	{
		name: "Pasta al aglio e olio",
		patterns: [][]string{
			{"pasta", "garlic", "olive oil"},
			{"pasta", "ajo", "aceite"},
		},
		timeRange: models.TimeQuick,
		steps:     []string{"Hierve la pasta", "Fríe el ajo", "Mezcla con aceite"},
	},
	{
		name:      "Pollo al horno",
		patterns:  [][]string{{"chicken"}, {"pollo"}},
		timeRange: models.TimeLong,
		steps:     []string{"Sazona el pollo", "Precalienta el horno", "Hornea 30-40 min"},
	},
	{
		name: "Sándwich",
		patterns: [][]string{
			{"bread", "cheese"},
			{"pan", "queso"},
			{"bread", "ham"},
		},
		timeRange: models.TimeQuick,
		steps:     []string{"Pon los ingredientes en el pan", "Opcional: tuéstalo"},
	},
}
