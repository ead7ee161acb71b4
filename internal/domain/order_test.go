package domain_test

import (
	"testing"

	"github.com/MOWLI17/luxora-sub001/internal/domain"
)

func TestOrderStatusColor_KnownStatuses(t *testing.T) {
	cases := []struct {
		status domain.OrderStatus
		color  string
	}{
		{domain.OrderStatusProcessing, "#ff9800"},
		{domain.OrderStatusConfirmed, "#2196f3"},
		{domain.OrderStatusShipped, "#3f51b5"},
		{domain.OrderStatusInTransit, "#00bcd4"},
		{domain.OrderStatusOutForDelivery, "#009688"},
		{domain.OrderStatusDelivered, "#4caf50"},
		{domain.OrderStatusCancelled, "#f44336"},
		{domain.OrderStatusRefunded, "#795548"},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			if got := tc.status.Color(); got != tc.color {
				t.Fatalf("expected color %s for %s, got %s", tc.color, tc.status, got)
			}
			if !tc.status.IsKnown() {
				t.Fatalf("status %s must be known", tc.status)
			}
		})
	}
}

func TestOrderStatusColor_UnknownFallsBack(t *testing.T) {
	unknown := domain.OrderStatus("Teleported")
	if got := unknown.Color(); got != domain.DefaultStatusColor {
		t.Fatalf("expected neutral color for unknown status, got %s", got)
	}
	if unknown.IsKnown() {
		t.Fatal("unknown status must not be reported as known")
	}
}

func TestOrderSetStatus_RecomputesColor(t *testing.T) {
	order := domain.Order{Status: domain.OrderStatusProcessing}
	order.NormalizeStatusColor()

	order.SetStatus(domain.OrderStatusDelivered)

	if order.Status != domain.OrderStatusDelivered {
		t.Fatalf("expected status Delivered, got %s", order.Status)
	}
	if order.StatusColor != domain.OrderStatusDelivered.Color() {
		t.Fatalf("status color not recomputed: %s", order.StatusColor)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{44.975, 44.98},
		{3.5984, 3.6},
		{0, 0},
		{15.0, 15.0},
		{19.991, 19.99},
	}

	for _, tc := range cases {
		if got := domain.Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}
