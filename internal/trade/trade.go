package trade

import "time"

// Kind 标识交易品种，是定价处理器注册与解析使用的键。
// 品种集合是开放的：扩展方可以自行定义新的 Kind 并注册对应处理器。
type Kind string

// String 返回品种标识的字符串形式。
func (k Kind) String() string { return string(k) }

const (
	// KindRateDerivative 是内置品种共同声明的父类别，
	// 供类别级处理器兜底使用。
	KindRateDerivative Kind = "rate_derivative"
	// KindInterestRateSwap 表示固定对浮动利率互换。
	KindInterestRateSwap Kind = "interest_rate_swap"
	// KindSwaption 表示互换期权。
	KindSwaption Kind = "swaption"
	// KindCapFloor 表示利率上下限期权。
	KindCapFloor Kind = "cap_floor"
)

// Trade 是所有可定价交易的最小接口。
// 交易值只承载定价所需字段，除品种标识外不携带任何行为；
// 构造后视为不可变，可在并发定价调用间自由共享。
type Trade interface {
	Kind() Kind
}

// InterestRateSwap 描述一笔固定对浮动利率互换。
type InterestRateSwap struct {
	Notional  float64   // 名义本金
	FixedRate float64   // 固定端利率
	Start     time.Time // 起息日
	End       time.Time // 到期日
	CurveID   string    // 贴现曲线在市场快照中的键
}

// Kind 实现 Trade 接口。
func (InterestRateSwap) Kind() Kind { return KindInterestRateSwap }

// Swaption 以不透明属性映射描述一笔互换期权，
// 键的约定由外部定价库负责解释。
type Swaption struct {
	Attributes map[string]interface{}
}

// Kind 实现 Trade 接口。
func (Swaption) Kind() Kind { return KindSwaption }

// CapFloor 描述一笔利率上下限期权。
type CapFloor struct {
	Terms        map[string]interface{} // 合约要素，透传给外部定价器
	CurveID      string                 // 远期曲线键
	VolSurfaceID string                 // 波动率曲面键
	Overrides    map[string]interface{} // 自由覆盖参数，原样转发
}

// Kind 实现 Trade 接口。
func (CapFloor) Kind() Kind { return KindCapFloor }

var (
	_ Trade = InterestRateSwap{}
	_ Trade = Swaption{}
	_ Trade = CapFloor{}
)
