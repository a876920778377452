package pricing

import (
	"fmt"

	"rates-pricer/internal/market"
	"rates-pricer/internal/trade"
)

// registerBuiltins 经与扩展方完全相同的注册通道挂载内置处理器，
// 并声明内置品种的父类别链。内置注册没有任何特殊地位，
// 之后的同名注册一样会覆盖它们。
func registerBuiltins(e *Engine) {
	e.Register(trade.KindInterestRateSwap, priceInterestRateSwap)
	e.Register(trade.KindSwaption, priceSwaption)
	e.Register(trade.KindCapFloor, priceCapFloor)

	e.RegisterLineage(trade.KindInterestRateSwap, trade.KindRateDerivative)
	e.RegisterLineage(trade.KindSwaption, trade.KindRateDerivative)
	e.RegisterLineage(trade.KindCapFloor, trade.KindRateDerivative)
}

// priceInterestRateSwap 取出交易指定的曲线并转发外部互换定价库。
// 曲线缺失时在调用外部库之前即以 *market.MissingDataError 失败。
func priceInterestRateSwap(e *Engine, trd trade.Trade, state market.State) (float64, error) {
	swap, ok := trd.(trade.InterestRateSwap)
	if !ok {
		return 0, fmt.Errorf("pricing: 互换处理器收到异类交易 %T", trd)
	}

	curve, err := state.Curve(swap.CurveID)
	if err != nil {
		return 0, err
	}

	return e.backends.Swap(swap.Notional, swap.FixedRate, swap.Start, swap.End, curve), nil
}

// priceSwaption 组装属性映射，连同全部市场观测值转发外部互换期权定价库，
// 键的取舍由外部库自行负责。
func priceSwaption(e *Engine, trd trade.Trade, state market.State) (float64, error) {
	swaption, ok := trd.(trade.Swaption)
	if !ok {
		return 0, fmt.Errorf("pricing: 互换期权处理器收到异类交易 %T", trd)
	}

	return e.backends.Swaption(copyAttributes(swaption.Attributes), state.Data()), nil
}

// priceCapFloor 取出交易指定的曲线与波动率曲面，连同合约要素和
// 自由覆盖参数转发对象风格的外部定价器。任一市场输入缺失都在
// 外部调用之前失败。
func priceCapFloor(e *Engine, trd trade.Trade, state market.State) (float64, error) {
	capFloor, ok := trd.(trade.CapFloor)
	if !ok {
		return 0, fmt.Errorf("pricing: 利率上下限处理器收到异类交易 %T", trd)
	}

	curve, err := state.Curve(capFloor.CurveID)
	if err != nil {
		return 0, err
	}

	surface, err := state.Surface(capFloor.VolSurfaceID)
	if err != nil {
		return 0, err
	}

	return e.backends.CapFloor.Price(copyAttributes(capFloor.Terms), curve, surface, copyAttributes(capFloor.Overrides)), nil
}

// copyAttributes 浅复制交易携带的属性映射，保证交易值在转发后仍然不可变。
func copyAttributes(attrs map[string]interface{}) map[string]interface{} {
	dup := make(map[string]interface{}, len(attrs))
	for key, value := range attrs {
		dup[key] = value
	}
	return dup
}
