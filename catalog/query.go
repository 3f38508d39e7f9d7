package catalog

import (
	"sort"
	"strings"

	"github.com/rentloop/rentloop-server/models"
)

type SortKey string
type SortOrder string

const (
	SortByName   SortKey = "name"
	SortByPrice  SortKey = "price"
	SortByRating SortKey = "rating"
)

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// DefaultPageSize is the number of products shown per catalog page.
const DefaultPageSize = 8

// Spec holds the complete set of active search, filter, sort and pagination
// parameters for one catalog view. Zero values mean "filter not applied":
// empty Search/Location, empty or "All" Category, nil Features and
// Availability "all" (or empty) match everything. PriceMin/PriceMax form a
// closed interval; a PriceMax of zero means unbounded. The caller must supply
// PriceMin <= PriceMax, a reversed interval simply matches nothing.
type Spec struct {
	Search       string
	Category     string
	PriceMin     float64
	PriceMax     float64
	Features     []string
	Availability models.AvailabilityFilter
	Location     string
	SortBy       SortKey
	SortOrder    SortOrder
	Page         int
	PageSize     int
}

type predicate func(p models.Product) bool

// activePredicates builds the predicate pipeline for the spec. Only
// non-default filters contribute a predicate; the result is combined with
// logical AND.
func activePredicates(spec Spec) []predicate {
	preds := make([]predicate, 0, 6)

	if spec.Search != "" {
		term := strings.ToLower(spec.Search)
		preds = append(preds, func(p models.Product) bool {
			if strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Description), term) {
				return true
			}
			for _, tag := range p.Tags {
				if strings.Contains(strings.ToLower(tag), term) {
					return true
				}
			}
			return false
		})
	}

	if spec.Category != "" && spec.Category != models.AllCategories {
		preds = append(preds, func(p models.Product) bool {
			return p.Category == spec.Category
		})
	}

	if spec.PriceMin > 0 || spec.PriceMax > 0 {
		preds = append(preds, func(p models.Product) bool {
			if spec.PriceMax > 0 && p.PricePerDay > spec.PriceMax {
				return false
			}
			return p.PricePerDay >= spec.PriceMin
		})
	}

	if len(spec.Features) > 0 {
		required := spec.Features
		preds = append(preds, func(p models.Product) bool {
			for _, want := range required {
				want = strings.ToLower(want)
				for _, have := range p.Features {
					if strings.Contains(strings.ToLower(have), want) {
						return true
					}
				}
			}
			return false
		})
	}

	if spec.Availability == models.AvailabilityAvailable {
		preds = append(preds, func(p models.Product) bool { return p.InStock })
	} else if spec.Availability == models.AvailabilityUnavailable {
		preds = append(preds, func(p models.Product) bool { return !p.InStock })
	}

	if spec.Location != "" {
		term := strings.ToLower(spec.Location)
		preds = append(preds, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.City), term) ||
				strings.Contains(strings.ToLower(p.Address), term)
		})
	}

	return preds
}

func matchesAll(p models.Product, preds []predicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

// sortProducts orders the filtered set in place by the selected key. The sort
// is stable so ties keep the original collection order.
func sortProducts(products []models.Product, key SortKey, order SortOrder) {
	less := func(a, b models.Product) int {
		switch key {
		case SortByPrice:
			switch {
			case a.PricePerDay < b.PricePerDay:
				return -1
			case a.PricePerDay > b.PricePerDay:
				return 1
			}
			return 0
		case SortByRating:
			switch {
			case a.Rating < b.Rating:
				return -1
			case a.Rating > b.Rating:
				return 1
			}
			return 0
		default:
			return strings.Compare(a.Name, b.Name)
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		cmp := less(products[i], products[j])
		if order == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// Query filters, sorts and paginates the given product collection according
// to the spec. It returns the requested page and the total number of matching
// products. Query is a pure function: the input slice is never mutated and
// identical arguments always produce identical results. An out-of-range page
// yields an empty page, not an error.
func Query(products []models.Product, spec Spec) ([]models.Product, int) {
	preds := activePredicates(spec)

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesAll(p, preds) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, spec.SortBy, spec.SortOrder)

	page := spec.Page
	if page < 1 {
		page = 1
	}
	pageSize := spec.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	start := (page - 1) * pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[start:end], len(filtered)
}

// TotalPages reports how many pages the given match count spans.
func TotalPages(totalMatching, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if totalMatching <= 0 {
		return 0
	}
	return (totalMatching + pageSize - 1) / pageSize
}
