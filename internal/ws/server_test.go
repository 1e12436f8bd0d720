package ws

import (
	"testing"
	"time"

	"github.com/NotAnsar/orava-api/internal/store"

	"github.com/google/uuid"
)

func feedOrders() []store.Order {
	return []store.Order{
		{
			ID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Status:    store.OrderStatusNew,
			CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Status:    store.OrderStatusProcessing,
			CreatedAt: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestOrdersFingerprintStable(t *testing.T) {
	if ordersFingerprint(feedOrders()) != ordersFingerprint(feedOrders()) {
		t.Fatalf("expected identical order lists to share a fingerprint")
	}
}

func TestOrdersFingerprintSeesStatusChange(t *testing.T) {
	before := feedOrders()
	after := feedOrders()
	after[1].Status = store.OrderStatusCompleted

	if ordersFingerprint(before) == ordersFingerprint(after) {
		t.Fatalf("expected a status flip to change the fingerprint")
	}
}

func TestOrdersFingerprintSeesDeletion(t *testing.T) {
	before := feedOrders()
	after := feedOrders()[:1]

	if ordersFingerprint(before) == ordersFingerprint(after) {
		t.Fatalf("expected a removed order to change the fingerprint")
	}
}

func TestOrdersFingerprintSeesNewOrder(t *testing.T) {
	before := feedOrders()
	after := append(feedOrders(), store.Order{
		ID:        uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		Status:    store.OrderStatusNew,
		CreatedAt: time.Date(2026, 8, 3, 10, 0, 0, 0, time.UTC),
	})

	if ordersFingerprint(before) == ordersFingerprint(after) {
		t.Fatalf("expected a new order to change the fingerprint")
	}
}
