package entities

import (
	"testing"
	"time"
)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		pledged, qty int
		want         NeedStatus
	}{
		{0, 10, NeedStatusRequested},
		{-3, 10, NeedStatusRequested},
		{0, 0, NeedStatusRequested},
		{6, 10, NeedStatusPartiallyPledged},
		{10, 10, NeedStatusFullyPledged},
		{12, 10, NeedStatusFullyPledged},
		{1, 0, NeedStatusFullyPledged},
	}
	for _, tc := range cases {
		got := DeriveStatus(tc.pledged, tc.qty)
		if got != tc.want {
			t.Fatalf("DeriveStatus(%d, %d) = %s, want %s", tc.pledged, tc.qty, got, tc.want)
		}
		if again := DeriveStatus(tc.pledged, tc.qty); again != got {
			t.Fatalf("DeriveStatus not stable for (%d, %d)", tc.pledged, tc.qty)
		}
	}
}

func TestNeed_DerivedFields(t *testing.T) {
	first := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	n := Need{
		Quantity: 10,
		Pledges: []Pledge{
			{ID: "p1", Amount: 6, PinHash: "h1", PledgedAt: first},
			{ID: "p2", Amount: 4, PinHash: "h2", PledgedAt: second},
		},
	}

	if n.PledgedAmount() != 10 {
		t.Fatalf("expected 10 pledged, got %d", n.PledgedAmount())
	}
	if n.Status() != NeedStatusFullyPledged {
		t.Fatalf("expected fully pledged, got %s", n.Status())
	}
	if n.DonorPinHash() != "h2" {
		t.Fatalf("expected latest donor hash, got %q", n.DonorPinHash())
	}
	if at := n.PledgedAt(); at == nil || !at.Equal(second) {
		t.Fatalf("unexpected pledged_at: %v", at)
	}
	if n.IsPubliclyVisible() {
		t.Fatalf("fully pledged need must not be public")
	}

	n.Closed = true
	if n.Status() != NeedStatusReceived {
		t.Fatalf("closed need must be received, got %s", n.Status())
	}

	empty := Need{Quantity: 5}
	if empty.DonorPinHash() != "" || empty.PledgedAt() != nil {
		t.Fatalf("expected no donor fields on an unpledged need")
	}
	if !empty.IsPubliclyVisible() {
		t.Fatalf("requested need must be public")
	}
}
