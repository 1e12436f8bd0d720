package search

import (
	"github.com/NotAnsar/orava-api/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductQuery is the optional predicate set for product search. Nil
// fields apply no constraint; set fields are AND-combined.
type ProductQuery struct {
	Name       *string
	CategoryID *uuid.UUID
	ColorID    *uuid.UUID
	SizeID     *uuid.UUID
	Archived   *bool
	Featured   *bool
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	MinStock   *int
	MaxStock   *int
	PageSort
}

var productComparators = map[string]func(a, b store.Product) bool{
	"price":     func(a, b store.Product) bool { return a.Price.LessThan(b.Price) },
	"createdAt": func(a, b store.Product) bool { return a.CreatedAt.Before(b.CreatedAt) },
	"stock":     func(a, b store.Product) bool { return a.Stock < b.Stock },
	"categoryName": func(a, b store.Product) bool {
		return productCategoryName(a) < productCategoryName(b)
	},
}

func productCategoryName(p store.Product) string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

func productComparator(sortBy string) func(a, b store.Product) bool {
	if cmp, ok := productComparators[sortBy]; ok {
		return cmp
	}
	return func(a, b store.Product) bool { return a.Name < b.Name }
}

// FilterProducts applies the query's predicates, then sorts and
// paginates.
func FilterProducts(products []store.Product, q ProductQuery) []store.Product {
	if q.Name != nil && *q.Name != "" {
		products = filterList(products, func(p store.Product) bool {
			return containsFold(p.Name, *q.Name)
		})
	}
	if q.CategoryID != nil {
		products = filterList(products, func(p store.Product) bool {
			return p.Category != nil && p.Category.ID == *q.CategoryID
		})
	}
	if q.ColorID != nil {
		products = filterList(products, func(p store.Product) bool {
			return p.Color != nil && p.Color.ID == *q.ColorID
		})
	}
	if q.SizeID != nil {
		products = filterList(products, func(p store.Product) bool {
			return p.Size != nil && p.Size.ID == *q.SizeID
		})
	}
	if q.Archived != nil {
		products = filterList(products, func(p store.Product) bool {
			return p.Archived == *q.Archived
		})
	}
	if q.Featured != nil {
		products = filterList(products, func(p store.Product) bool {
			return p.Featured == *q.Featured
		})
	}
	if q.MinPrice != nil {
		products = filterList(products, func(p store.Product) bool {
			return p.Price.GreaterThanOrEqual(*q.MinPrice)
		})
	}
	if q.MaxPrice != nil {
		products = filterList(products, func(p store.Product) bool {
			return p.Price.LessThanOrEqual(*q.MaxPrice)
		})
	}
	if q.MinStock != nil {
		products = filterList(products, func(p store.Product) bool {
			return p.Stock >= *q.MinStock
		})
	}
	if q.MaxStock != nil {
		products = filterList(products, func(p store.Product) bool {
			return p.Stock <= *q.MaxStock
		})
	}
	return sortAndPaginate(products, productComparator(q.SortBy), q.PageSort)
}
