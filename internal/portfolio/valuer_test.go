package portfolio

import (
	"context"
	"errors"
	"testing"

	"rates-pricer/internal/market"
	"rates-pricer/internal/pricing"
	"rates-pricer/internal/trade"
)

type fixedTrade struct {
	kind trade.Kind
}

func (f fixedTrade) Kind() trade.Kind { return f.kind }

func newTestEngine() *pricing.Engine {
	engine := pricing.NewEngine(pricing.Backends{}, nil)
	engine.Register(trade.Kind("ten"), func(e *pricing.Engine, trd trade.Trade, state market.State) (float64, error) {
		return 10, nil
	})
	engine.Register(trade.Kind("twenty"), func(e *pricing.Engine, trd trade.Trade, state market.State) (float64, error) {
		return 20, nil
	})
	engine.Register(trade.Kind("broken"), func(e *pricing.Engine, trd trade.Trade, state market.State) (float64, error) {
		return 0, errors.New("backend blew up")
	})
	return engine
}

func TestValuerReturnsResultsInInputOrder(t *testing.T) {
	valuer, err := NewValuer(newTestEngine(), 2, nil)
	if err != nil {
		t.Fatalf("NewValuer returned error: %v", err)
	}

	book := []trade.Trade{
		fixedTrade{kind: trade.Kind("twenty")},
		fixedTrade{kind: trade.Kind("ten")},
		fixedTrade{kind: trade.Kind("twenty")},
	}

	results, err := valuer.Value(context.Background(), book, market.NewState(nil, nil, nil))
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	wantValues := []float64{20, 10, 20}
	for i, result := range results {
		if result.Index != i {
			t.Errorf("result %d carries index %d", i, result.Index)
		}
		if result.Err != nil {
			t.Errorf("result %d unexpected error: %v", i, result.Err)
		}
		if result.Value != wantValues[i] {
			t.Errorf("result %d value mismatch: got %v want %v", i, result.Value, wantValues[i])
		}
		if result.Kind != book[i].Kind() {
			t.Errorf("result %d kind mismatch: got %s", i, result.Kind)
		}
	}
}

func TestValuerIsolatesPerTradeFailures(t *testing.T) {
	valuer, err := NewValuer(newTestEngine(), 1, nil)
	if err != nil {
		t.Fatalf("NewValuer returned error: %v", err)
	}

	book := []trade.Trade{
		fixedTrade{kind: trade.Kind("ten")},
		fixedTrade{kind: trade.Kind("broken")},
		fixedTrade{kind: trade.Kind("unregistered")},
		fixedTrade{kind: trade.Kind("twenty")},
	}

	results, err := valuer.Value(context.Background(), book, market.NewState(nil, nil, nil))
	if err != nil {
		t.Fatalf("per-trade failures must not abort the book: %v", err)
	}

	if results[0].Err != nil || results[3].Err != nil {
		t.Errorf("healthy trades must price despite neighbors failing")
	}
	if results[1].Err == nil {
		t.Errorf("expected backend error on result 1")
	}
	var unsupported *pricing.UnsupportedTradeError
	if !errors.As(results[2].Err, &unsupported) {
		t.Errorf("expected UnsupportedTradeError on result 2, got %v", results[2].Err)
	}

	summary := Summarize(results)
	if summary.Priced != 2 || summary.Failed != 2 {
		t.Errorf("unexpected summary counts: %+v", summary)
	}
	if summary.TotalPV != 30 {
		t.Errorf("expected total PV 30 over healthy trades, got %v", summary.TotalPV)
	}
}

func TestValuerStopsOnCancelledContext(t *testing.T) {
	valuer, err := NewValuer(newTestEngine(), 1, nil)
	if err != nil {
		t.Fatalf("NewValuer returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	book := []trade.Trade{fixedTrade{kind: trade.Kind("ten")}}
	if _, err := valuer.Value(ctx, book, market.NewState(nil, nil, nil)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewValuerRequiresEngine(t *testing.T) {
	if _, err := NewValuer(nil, 1, nil); err == nil {
		t.Fatalf("expected error for nil engine")
	}
}
