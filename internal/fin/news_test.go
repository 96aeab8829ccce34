package fin

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/oakmund/finsight/internal/core"
)

func TestGetMarketNews_Shape(t *testing.T) {
	svc := testService(&stubRand{ints: []int{0, 1, 2}})

	items, err := svc.GetMarketNews("crypto", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for i, item := range items {
		if !strings.Contains(item.Headline, "Update: Market analysis and insights") {
			t.Errorf("item %d headline %q missing template", i, item.Headline)
		}
		if item.Source == "" || item.Summary == "" {
			t.Errorf("item %d has empty source or summary", i)
		}
	}
}

func TestGetMarketNews_TimestampsWithin24h(t *testing.T) {
	svc := testService(&stubRand{ints: []int{0, 1, 24, 3, 2, 12}})

	items, err := svc.GetMarketNews("tech", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, item := range items {
		if item.Timestamp.After(testNow) {
			t.Errorf("item %d timestamp in the future: %v", i, item.Timestamp)
		}
		if item.Timestamp.Before(testNow.Add(-24 * time.Hour)) {
			t.Errorf("item %d timestamp older than 24h: %v", i, item.Timestamp)
		}
	}
}

func TestGetMarketNews_UnknownCategory(t *testing.T) {
	svc := testService(&stubRand{})

	items, err := svc.GetMarketNews("astrology", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, item := range items {
		if !strings.HasPrefix(item.Headline, "Market ") {
			t.Errorf("unknown category should use the generic topic, got %q", item.Headline)
		}
	}
}

func TestGetMarketNews_DefaultCategory(t *testing.T) {
	svc := testService(&stubRand{})

	items, err := svc.GetMarketNews("", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Empty category falls back to stocks; topic index 0 is "Stock Market".
	if !strings.HasPrefix(items[0].Headline, "Stock Market ") {
		t.Errorf("empty category should default to stocks, got %q", items[0].Headline)
	}
}

func TestGetMarketNews_Limits(t *testing.T) {
	svc := New()

	items, err := svc.GetMarketNews("stocks", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("limit 0 should yield no items, got %d", len(items))
	}

	if _, err := svc.GetMarketNews("stocks", -1); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("negative limit error = %v, want INVALID_ARGUMENT", err)
	}
}
