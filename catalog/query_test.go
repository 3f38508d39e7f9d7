package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentloop/rentloop-server/models"
)

func fixtureProducts() []models.Product {
	return []models.Product{
		{
			ID: 1, Name: "Wireless Bluetooth Headphones", Category: "Electronics",
			Description: "Premium headphones with noise cancellation.",
			Tags:        []string{"wireless", "bluetooth", "audio"},
			Features:    []string{"Noise Cancellation", "30hr Battery", "Wireless"},
			PricePerDay: 299.99, Rating: 4.8, InStock: true,
			City: "New York", Address: "123 Tech Street",
		},
		{
			ID: 2, Name: "Smart Fitness Watch", Category: "Wearables",
			Description: "Track your fitness goals with GPS.",
			Tags:        []string{"fitness", "smart", "health"},
			Features:    []string{"Heart Rate Monitor", "GPS", "Waterproof"},
			PricePerDay: 249.99, Rating: 4.6, InStock: true,
			City: "Los Angeles", Address: "456 Fitness Ave",
		},
		{
			ID: 3, Name: "DSLR Camera Kit", Category: "Photography",
			Description: "Professional camera body with two lenses.",
			Tags:        []string{"camera", "photo"},
			Features:    []string{"4K Video", "Image Stabilization"},
			PricePerDay: 89.50, Rating: 4.9, InStock: false,
			City: "Chicago", Address: "9 Shutter Lane",
		},
		{
			ID: 4, Name: "Gaming Console Bundle", Category: "Gaming",
			Description: "Console with two controllers and top titles.",
			Tags:        []string{"gaming", "console"},
			Features:    []string{"4K Gaming", "Wireless Controllers"},
			PricePerDay: 45.00, Rating: 4.2, InStock: true,
			City: "New York", Address: "77 Play Street",
		},
		{
			ID: 5, Name: "Ergonomic Office Chair", Category: "Furniture",
			Description: "All-day comfort for the home office.",
			Tags:        []string{"office", "chair"},
			Features:    []string{"Lumbar Support", "Adjustable Height"},
			PricePerDay: 45.00, Rating: 4.4, InStock: true,
			City: "Boston", Address: "12 Desk Road",
		},
	}
}

func TestQueryNoFiltersReturnsEverything(t *testing.T) {
	products := fixtureProducts()

	page, total := Query(products, Spec{})

	assert.Equal(t, len(products), total)
	assert.Len(t, page, len(products))
}

func TestQueryIsPure(t *testing.T) {
	products := fixtureProducts()
	spec := Spec{Search: "camera", SortBy: SortByPrice}

	first, firstTotal := Query(products, spec)
	second, secondTotal := Query(products, spec)

	assert.Equal(t, firstTotal, secondTotal)
	assert.Equal(t, first, second)
	assert.Equal(t, fixtureProducts(), products, "input slice must not be mutated")
}

func TestQueryTextSearch(t *testing.T) {
	cases := []struct {
		name    string
		search  string
		wantIDs []int
	}{
		{"matches name", "headphones", []int{1}},
		{"matches description", "home office", []int{5}},
		{"matches tag", "gaming", []int{4}},
		{"case insensitive", "FITNESS", []int{2}},
		{"no match", "submarine", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, total := Query(fixtureProducts(), Spec{Search: tc.search})
			assert.Equal(t, len(tc.wantIDs), total)
			assert.Equal(t, tc.wantIDs, ids(page))
		})
	}
}

func TestQueryCategory(t *testing.T) {
	page, total := Query(fixtureProducts(), Spec{Category: "Gaming"})
	require.Equal(t, 1, total)
	assert.Equal(t, 4, page[0].ID)

	_, total = Query(fixtureProducts(), Spec{Category: models.AllCategories})
	assert.Equal(t, 5, total)
}

func TestQueryPriceRange(t *testing.T) {
	// Bounds are inclusive on both ends.
	page, total := Query(fixtureProducts(), Spec{PriceMin: 45, PriceMax: 89.50})
	assert.Equal(t, 3, total)
	assert.ElementsMatch(t, []int{3, 4, 5}, ids(page))

	// Reversed interval matches nothing, by contract.
	_, total = Query(fixtureProducts(), Spec{PriceMin: 100, PriceMax: 50})
	assert.Zero(t, total)
}

func TestQueryFeatureFilterIsExistential(t *testing.T) {
	// Asking for two features must match a product holding only one of them.
	page, total := Query(fixtureProducts(), Spec{Features: []string{"Wireless", "Waterproof"}})

	assert.Equal(t, 3, total)
	assert.ElementsMatch(t, []int{1, 2, 4}, ids(page))
}

func TestQueryAvailability(t *testing.T) {
	_, total := Query(fixtureProducts(), Spec{Availability: models.AvailabilityAvailable})
	assert.Equal(t, 4, total)

	page, total := Query(fixtureProducts(), Spec{Availability: models.AvailabilityUnavailable})
	require.Equal(t, 1, total)
	assert.Equal(t, 3, page[0].ID)

	_, total = Query(fixtureProducts(), Spec{Availability: models.AvailabilityAll})
	assert.Equal(t, 5, total)
}

func TestQueryLocation(t *testing.T) {
	page, total := Query(fixtureProducts(), Spec{Location: "new york"})
	assert.Equal(t, 2, total)
	assert.ElementsMatch(t, []int{1, 4}, ids(page))

	// Address is searched as well as city.
	page, total = Query(fixtureProducts(), Spec{Location: "shutter"})
	require.Equal(t, 1, total)
	assert.Equal(t, 3, page[0].ID)
}

func TestQueryConjunction(t *testing.T) {
	page, total := Query(fixtureProducts(), Spec{
		Search:       "console",
		Category:     "Gaming",
		Availability: models.AvailabilityAvailable,
		Location:     "New York",
	})

	require.Equal(t, 1, total)
	assert.Equal(t, 4, page[0].ID)
}

func TestQuerySortOrderings(t *testing.T) {
	cases := []struct {
		name    string
		sortBy  SortKey
		order   SortOrder
		wantIDs []int
	}{
		{"price asc keeps tie order", SortByPrice, SortAsc, []int{4, 5, 3, 2, 1}},
		{"price desc", SortByPrice, SortDesc, []int{1, 2, 3, 4, 5}},
		{"rating asc", SortByRating, SortAsc, []int{4, 5, 2, 1, 3}},
		{"rating desc", SortByRating, SortDesc, []int{3, 1, 2, 5, 4}},
		{"name asc", SortByName, SortAsc, []int{3, 5, 4, 2, 1}},
		{"name desc", SortByName, SortDesc, []int{1, 2, 4, 5, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, _ := Query(fixtureProducts(), Spec{SortBy: tc.sortBy, SortOrder: tc.order})
			assert.Equal(t, tc.wantIDs, ids(page))
		})
	}
}

func TestQueryPagination(t *testing.T) {
	products := fixtureProducts()
	spec := Spec{SortBy: SortByName, PageSize: 2}

	// Concatenating every page must reproduce the full sorted set exactly.
	var all []int
	_, total := Query(products, spec)
	pages := TotalPages(total, spec.PageSize)
	require.Equal(t, 3, pages)

	for page := 1; page <= pages; page++ {
		spec.Page = page
		pageItems, pageTotal := Query(products, spec)
		assert.Equal(t, total, pageTotal)
		all = append(all, ids(pageItems)...)
	}

	assert.Equal(t, []int{3, 5, 4, 2, 1}, all)

	// Out-of-range page returns an empty page, not an error.
	spec.Page = 99
	pageItems, pageTotal := Query(products, spec)
	assert.Empty(t, pageItems)
	assert.Equal(t, total, pageTotal)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 8))
	assert.Equal(t, 1, TotalPages(8, 8))
	assert.Equal(t, 2, TotalPages(9, 8))
	assert.Equal(t, 1, TotalPages(3, 0), "zero page size falls back to the default")
}

func ids(products []models.Product) []int {
	if len(products) == 0 {
		return nil
	}
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
