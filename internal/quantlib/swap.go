package quantlib

import (
	"time"

	"rates-pricer/internal/market"
)

const daysPerYear = 365.0

// PriceSwap 以占位公式为固定对浮动利率互换估值：
// notional * (fixedRate - parRate) * ACT/365 年化期限。
// 曲线缺少 par_rate 时以 fixedRate 兜底，负期限按 0 处理。
func PriceSwap(notional, fixedRate float64, start, end time.Time, curve market.Curve) float64 {
	yearFraction := end.Sub(start).Hours() / 24 / daysPerYear
	if yearFraction < 0 {
		yearFraction = 0
	}

	parRate, ok := curve["par_rate"]
	if !ok {
		parRate = fixedRate
	}

	return notional * (fixedRate - parRate) * yearFraction
}
