package quantlib

// swaptionTerms 是互换期权定价函数约定的交易键集合。
type swaptionTerms struct {
	Notional float64 `mapstructure:"notional"`
	Annuity  float64 `mapstructure:"annuity"`
}

// swaptionMarket 是互换期权定价函数约定的市场键集合。
type swaptionMarket struct {
	ImpliedVol float64 `mapstructure:"implied_vol"`
}

// SwaptionPV 以占位公式为互换期权估值：notional * annuity * implied_vol。
// 入参是两个不透明映射，键约定由本函数自行解释：
// notional 缺省为 0，annuity 缺省为 1，implied_vol 缺省为 0。
func SwaptionPV(attrs map[string]interface{}, marketData map[string]interface{}) float64 {
	terms := swaptionTerms{Annuity: 1}
	decodeInto(attrs, &terms)

	mkt := swaptionMarket{}
	decodeInto(marketData, &mkt)

	return terms.Notional * terms.Annuity * mkt.ImpliedVol
}
