package request

import (
	"errors"
	"testing"
	"time"
)

func TestQuoteSubmitRequest_ResolveServices(t *testing.T) {
	r := QuoteSubmitRequest{
		Services: []SelectedServiceRequest{
			{ServiceID: " oil-change ", BaseSelected: true},
			{ServiceID: "brake-service", Options: []SelectedOptionRequest{{OptionIndex: 1, Quantity: 2}}},
		},
	}

	out := r.ResolveServices()
	if len(out) != 2 {
		t.Fatalf("expected 2 selections, got %d", len(out))
	}
	if out[0].ServiceID != "oil-change" || !out[0].BaseSelected {
		t.Fatalf("unexpected first selection: %+v", out[0])
	}
	if len(out[1].Options) != 1 || out[1].Options[0].Quantity != 2 {
		t.Fatalf("unexpected second selection: %+v", out[1])
	}
}

func TestQuoteSubmitRequest_ResolvePreferredDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Montreal")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	r := QuoteSubmitRequest{PreferredDate: " 2026-09-10 "}
	d, err := r.ResolvePreferredDate(loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.September || d.Day() != 10 {
		t.Fatalf("unexpected date: %v", d)
	}
	if d.Location() != loc {
		t.Fatalf("date must be anchored to the business timezone")
	}

	for _, raw := range []string{"", "10/09/2026", "2026-13-40"} {
		r := QuoteSubmitRequest{PreferredDate: raw}
		if _, err := r.ResolvePreferredDate(loc); !errors.Is(err, ErrInvalidPreferredDate) {
			t.Fatalf("expected ErrInvalidPreferredDate for %q, got %v", raw, err)
		}
	}
}
