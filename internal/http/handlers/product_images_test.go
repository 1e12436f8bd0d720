package handlers

import "testing"

func TestImageThumbKey(t *testing.T) {
	cases := []struct {
		key      string
		expected string
	}{
		{"products/p1/img1.jpg", "products/p1/img1_thumb.jpg"},
		{"products/p1/img1", "products/p1/img1_thumb"},
	}
	for _, tc := range cases {
		if got := imageThumbKey(tc.key); got != tc.expected {
			t.Fatalf("expected %s, got %s", tc.expected, got)
		}
	}
}
