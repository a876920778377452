package pricing

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"rates-pricer/internal/market"
	"rates-pricer/internal/quantlib"
	"rates-pricer/internal/trade"
)

// Handler 是品种级定价处理器：纯函数，从市场快照中取出所需输入并
// 调用外部定价例程。返回值与错误都会被 Price 原样透传。
type Handler func(e *Engine, trd trade.Trade, state market.State) (float64, error)

// SwapPricerFunc 匹配外部互换定价库的固定签名。
type SwapPricerFunc func(notional, fixedRate float64, start, end time.Time, curve market.Curve) float64

// SwaptionPricerFunc 匹配外部互换期权定价库的固定签名。
type SwaptionPricerFunc func(attrs map[string]interface{}, marketData map[string]interface{}) float64

// CapFloorPricer 匹配对象风格外部利率上下限定价库的固定接口。
type CapFloorPricer interface {
	Price(cap map[string]interface{}, curve market.Curve, vol market.Surface, overrides map[string]interface{}) float64
}

// Backends 聚合可注入的三套外部定价库。零值字段回落到 quantlib 替身，
// 测试与接入真实库时按需覆盖。
type Backends struct {
	Swap     SwapPricerFunc
	Swaption SwaptionPricerFunc
	CapFloor CapFloorPricer
}

func (b Backends) withDefaults() Backends {
	if b.Swap == nil {
		b.Swap = quantlib.PriceSwap
	}
	if b.Swaption == nil {
		b.Swaption = quantlib.SwaptionPV
	}
	if b.CapFloor == nil {
		b.CapFloor = &quantlib.BlackCapFloorPricer{}
	}
	return b
}

// Engine 是唯一的定价入口：维护品种到处理器的注册表，
// 按品种标识解析处理器并调用，支持经声明的父类别链兜底。
// 注册表约定在任何 Price 调用前的启动阶段写入；
// 仍以读写锁护住注册表，使运行期补注册与并发定价可以共存。
type Engine struct {
	mu       sync.RWMutex
	handlers map[trade.Kind]Handler
	parents  map[trade.Kind][]trade.Kind

	backends Backends
	logger   *zap.Logger
}

// NewEngine 创建定价引擎并经公开注册通道挂载内置处理器。
// logger 传 nil 时使用空日志器。
func NewEngine(backends Backends, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		handlers: make(map[trade.Kind]Handler),
		parents:  make(map[trade.Kind][]trade.Kind),
		backends: backends.withDefaults(),
		logger:   logger,
	}

	registerBuiltins(e)

	return e
}

// Backends 返回注入的外部定价库，供处理器经引擎参数转发调用。
func (e *Engine) Backends() Backends {
	return e.backends
}

// Register 绑定品种与处理器。重复注册覆盖旧处理器，最后一次生效。
func (e *Engine) Register(kind trade.Kind, handler Handler) {
	e.mu.Lock()
	_, overwrite := e.handlers[kind]
	e.handlers[kind] = handler
	e.mu.Unlock()

	e.logger.Debug("注册定价处理器",
		zap.String("kind", kind.String()),
		zap.Bool("overwrite", overwrite))
}

// RegisterLineage 声明品种的直接父类别，按从最具体到最一般的顺序给出。
// 重复声明整体覆盖之前的父类别列表。
func (e *Engine) RegisterLineage(kind trade.Kind, parents ...trade.Kind) {
	chain := make([]trade.Kind, len(parents))
	copy(chain, parents)

	e.mu.Lock()
	e.parents[kind] = chain
	e.mu.Unlock()
}

// Price 为一笔交易解析处理器并返回现值。
// 解析顺序见 Linearization；链上无任何注册时返回 *UnsupportedTradeError，
// 此时不会调用任何处理器。处理器的返回值与错误原样透传。
func (e *Engine) Price(trd trade.Trade, state market.State) (float64, error) {
	if trd == nil {
		return 0, &UnsupportedTradeError{}
	}

	kind := trd.Kind()
	handler, resolved, ok := e.resolveHandler(kind)
	if !ok {
		return 0, &UnsupportedTradeError{Kind: kind}
	}

	if resolved != kind {
		e.logger.Debug("品种经父类别兜底解析",
			zap.String("kind", kind.String()),
			zap.String("resolved", resolved.String()))
	}

	return handler(e, trd, state)
}

// Linearization 返回品种的确定性解析顺序：自身最先，随后对声明的
// 父类别做广度优先展开——直接父类别整体先于更高层级，同层按声明
// 顺序，重复出现只保留首次。该顺序即多父类别场景的兜底规则。
func (e *Engine) Linearization(kind trade.Kind) []trade.Kind {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.linearize(kind)
}

func (e *Engine) resolveHandler(kind trade.Kind) (Handler, trade.Kind, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, candidate := range e.linearize(kind) {
		if handler, ok := e.handlers[candidate]; ok {
			return handler, candidate, true
		}
	}
	return nil, "", false
}

// linearize 必须在持有 e.mu 的前提下调用。
func (e *Engine) linearize(kind trade.Kind) []trade.Kind {
	order := []trade.Kind{kind}
	seen := map[trade.Kind]struct{}{kind: {}}

	for i := 0; i < len(order); i++ {
		for _, parent := range e.parents[order[i]] {
			if _, ok := seen[parent]; ok {
				continue
			}
			seen[parent] = struct{}{}
			order = append(order, parent)
		}
	}

	return order
}
