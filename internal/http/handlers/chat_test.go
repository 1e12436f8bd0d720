package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestSearchParamsCoercion(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/chat/search/products?name=shirt&minPrice=10.5&maxStock=20&archived=false&limit=5&offset=bogus", nil)
	params := searchParams(r)

	if v, ok := params["name"].(string); !ok || v != "shirt" {
		t.Fatalf("expected name=shirt, got %v", params["name"])
	}
	if v, ok := params["minPrice"].(float64); !ok || v != 10.5 {
		t.Fatalf("expected minPrice=10.5, got %v", params["minPrice"])
	}
	if v, ok := params["maxStock"].(float64); !ok || v != 20 {
		t.Fatalf("expected maxStock=20, got %v", params["maxStock"])
	}
	if v, ok := params["archived"].(bool); !ok || v != false {
		t.Fatalf("expected archived=false, got %v", params["archived"])
	}
	if v, ok := params["limit"].(float64); !ok || v != 5 {
		t.Fatalf("expected limit=5, got %v", params["limit"])
	}
	if _, ok := params["offset"]; ok {
		t.Fatalf("expected unparsable offset to be dropped")
	}
}

func TestTimeRangeParamDefault(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/analytics/revenue-trends", nil)
	if got := timeRangeParam(r); got != "6months" {
		t.Fatalf("expected default 6months, got %s", got)
	}

	r = httptest.NewRequest("GET", "/api/analytics/revenue-trends?timeRange=30days", nil)
	if got := timeRangeParam(r); got != "30days" {
		t.Fatalf("expected 30days, got %s", got)
	}
}
