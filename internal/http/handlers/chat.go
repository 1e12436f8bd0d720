package handlers

import (
	"net/http"
	"strconv"

	"github.com/NotAnsar/orava-api/internal/search"
	"github.com/NotAnsar/orava-api/pkg/response"
)

var numericSearchParams = map[string]bool{
	"minPrice": true,
	"maxPrice": true,
	"minStock": true,
	"maxStock": true,
	"minTotal": true,
	"maxTotal": true,
	"limit":    true,
	"offset":   true,
}

var boolSearchParams = map[string]bool{
	"archived": true,
	"featured": true,
}

// searchParams coerces URL query values into the typed parameter bag the
// search decoders expect. Unparsable values stay strings and read as absent.
func searchParams(r *http.Request) search.Params {
	params := search.Params{}
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		raw := values[0]
		switch {
		case numericSearchParams[key]:
			if n, err := strconv.ParseFloat(raw, 64); err == nil {
				params[key] = n
			}
		case boolSearchParams[key]:
			if b, err := strconv.ParseBool(raw); err == nil {
				params[key] = b
			}
		default:
			params[key] = raw
		}
	}
	return params
}

func (h *Handler) ChatSearchProducts(w http.ResponseWriter, r *http.Request) {
	query := search.DecodeProductQuery(searchParams(r))
	products, err := h.Search.Products(r.Context(), query)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search products")
		return
	}
	response.Success(w, products)
}

func (h *Handler) ChatSearchOrders(w http.ResponseWriter, r *http.Request) {
	query := search.DecodeOrderQuery(searchParams(r))
	orders, err := h.Search.Orders(r.Context(), query)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search orders")
		return
	}
	response.Success(w, orders)
}

func (h *Handler) ChatSearchUsers(w http.ResponseWriter, r *http.Request) {
	query := search.DecodeUserQuery(searchParams(r))
	users, err := h.Search.Users(r.Context(), query)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search users")
		return
	}
	response.Success(w, users)
}

func (h *Handler) ChatQuery(w http.ResponseWriter, r *http.Request) {
	var input map[string]any
	if !decodeBody(w, r, &input) {
		return
	}
	result, err := h.Search.MultiQuery(r.Context(), input)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to run query")
		return
	}
	response.Success(w, result)
}
