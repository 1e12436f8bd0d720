package handlers

import "testing"

func TestSelectOnlyGuard(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		allowed bool
	}{
		{
			name:    "simple select",
			query:   "select * from product",
			allowed: true,
		},
		{
			name:    "uppercase with leading whitespace",
			query:   "  SELECT id FROM orders",
			allowed: true,
		},
		{
			name:    "multiline select",
			query:   "select id,\n total\nfrom orders",
			allowed: true,
		},
		{
			name:    "update rejected",
			query:   "update product set stock = 0",
			allowed: false,
		},
		{
			name:    "delete rejected",
			query:   "delete from orders",
			allowed: false,
		},
		{
			name:    "cte rejected",
			query:   "with x as (select 1) select * from x",
			allowed: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := selectOnly.MatchString(tc.query); got != tc.allowed {
				t.Fatalf("expected allowed=%v for %q, got %v", tc.allowed, tc.query, got)
			}
		})
	}
}
