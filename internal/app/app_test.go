package app

import (
	"context"
	"testing"

	"rates-pricer/internal/config"
)

func demoConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Environment: "test"},
		Market: config.MarketConfig{
			Curves: map[string]map[string]float64{
				"usd_ois": {"par_rate": 0.03},
				"usd_3m":  {"forward": 0.031},
			},
			Data: map[string]interface{}{"implied_vol": 0.22},
			VolSurfaces: map[string]map[string]float64{
				"usd_3m_caps": {"atm_vol": 0.19},
			},
		},
		Portfolio: []config.TradeConfig{
			{Type: "interest_rate_swap", Params: map[string]interface{}{
				"notional":   1_000_000.0,
				"fixed_rate": 0.032,
				"start":      "2026-01-01",
				"end":        "2031-01-01",
				"curve_id":   "usd_ois",
			}},
			{Type: "swaption", Params: map[string]interface{}{
				"attributes": map[string]interface{}{"notional": 5_000_000.0, "annuity": 4.1},
			}},
			{Type: "cap_floor", Params: map[string]interface{}{
				"terms":          map[string]interface{}{"notional": 2_000_000.0, "strike": 0.03},
				"curve_id":       "usd_3m",
				"vol_surface_id": "usd_3m_caps",
				"overrides":      map[string]interface{}{"scale": 1.2},
			}},
		},
		Valuation: config.ValuationConfig{Concurrency: 2},
		Logging:   config.LoggingConfig{Level: "info", Encoding: "console"},
	}
}

func TestAppRunPricesDemoBook(t *testing.T) {
	application := New(demoConfig(), nil)

	if err := application.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestAppRunSurfacesPricingFailures(t *testing.T) {
	cfg := demoConfig()
	// 互换期权引用的观测值仍在，但互换的曲线被移除后应整体上报失败。
	cfg.Market.Curves = map[string]map[string]float64{"usd_3m": {"forward": 0.031}}

	err := New(cfg, nil).Run(context.Background())
	if err == nil {
		t.Fatalf("expected pricing failure for missing curve")
	}
}

func TestAppRunHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := New(demoConfig(), nil).Run(ctx); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
}
