package quantlib

import (
	"rates-pricer/internal/market"
)

// capTerms 是利率上下限定价器约定的合约键集合。
type capTerms struct {
	Notional float64 `mapstructure:"notional"`
	Strike   float64 `mapstructure:"strike"`
}

// capOverrides 是利率上下限定价器支持的模型控制参数。
type capOverrides struct {
	Scale float64 `mapstructure:"scale"`
}

// BlackCapFloorPricer 是对象风格的利率上下限定价器替身。
// 零值即可使用。
type BlackCapFloorPricer struct{}

// Price 以占位公式估值：max(forward-strike, 0) * notional * atm_vol * scale。
// 曲线缺少 forward 时以行权价兜底（内在价值为 0），
// notional 缺省为 1，scale 缺省为 1，曲面缺少 atm_vol 时估值为 0。
func (p *BlackCapFloorPricer) Price(cap map[string]interface{}, curve market.Curve, vol market.Surface, overrides map[string]interface{}) float64 {
	terms := capTerms{Notional: 1}
	decodeInto(cap, &terms)

	forward, ok := curve["forward"]
	if !ok {
		forward = terms.Strike
	}
	atmVol := vol["atm_vol"]

	opts := capOverrides{Scale: 1}
	decodeInto(overrides, &opts)

	intrinsic := forward - terms.Strike
	if intrinsic < 0 {
		intrinsic = 0
	}

	return intrinsic * terms.Notional * atmVol * opts.Scale
}
