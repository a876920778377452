package portfolio

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rates-pricer/internal/market"
	"rates-pricer/internal/pricing"
	"rates-pricer/internal/trade"
)

const defaultConcurrency = 4

// Valuation 是组合中单笔交易的估值结果，Index 对应输入顺序。
type Valuation struct {
	Index int
	Kind  trade.Kind
	Value float64
	Err   error
}

// Summary 汇总一次组合估值：成功笔数、失败笔数与成功部分的现值合计。
type Summary struct {
	TotalPV float64
	Priced  int
	Failed  int
}

// Valuer 将共享同一市场快照的一篮交易逐笔送入定价引擎。
// 交易与快照均不可变，因此可以安全并发定价；
// 引擎按品种解析处理器的过程本身保持同步。
type Valuer struct {
	engine      *pricing.Engine
	concurrency int
	logger      *zap.Logger
}

// NewValuer 创建组合估值器。concurrency 不为正时使用缺省并发度。
func NewValuer(engine *pricing.Engine, concurrency int, logger *zap.Logger) (*Valuer, error) {
	if engine == nil {
		return nil, errors.New("portfolio: 定价引擎不能为空")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &Valuer{
		engine:      engine,
		concurrency: concurrency,
		logger:      logger,
	}, nil
}

// Value 对整本组合估值，结果与输入同序。
// 单笔定价失败只记入对应结果的 Err 字段，不影响其余交易；
// 仅上下文取消会提前终止并整体返回错误。
func (v *Valuer) Value(ctx context.Context, book []trade.Trade, state market.State) ([]Valuation, error) {
	v.logger.Debug("开始组合估值",
		zap.Int("trades", len(book)),
		zap.Int("concurrency", v.concurrency))

	results := make([]Valuation, len(book))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(v.concurrency)

	for i, trd := range book {
		i, trd := i, trd
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			result := Valuation{Index: i}
			if trd != nil {
				result.Kind = trd.Kind()
			}

			value, err := v.engine.Price(trd, state)
			if err != nil {
				result.Err = err
			} else {
				result.Value = value
			}

			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Summarize 汇总估值结果。
func Summarize(results []Valuation) Summary {
	var summary Summary
	for _, result := range results {
		if result.Err != nil {
			summary.Failed++
			continue
		}
		summary.Priced++
		summary.TotalPV += result.Value
	}
	return summary
}
