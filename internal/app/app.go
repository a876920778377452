package app

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"rates-pricer/internal/config"
	"rates-pricer/internal/portfolio"
	"rates-pricer/internal/pricing"
)

// App 聚合核心依赖并驱动一次完整的组合估值。
type App struct {
	cfg    *config.Config
	logger *zap.Logger
}

// New 创建 App 实例。
func New(cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// Run 执行一次组合估值：构建定价引擎与市场快照，
// 把配置中的交易簿整体送入估值器，逐笔记录结果后输出汇总。
// 单笔定价失败不中断估值，失败逐条累积后整体返回。
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("定价系统已初始化",
		zap.String("environment", a.cfg.App.Environment),
		zap.Int("trades", len(a.cfg.Portfolio)),
	)

	book, err := config.BuildPortfolio(a.cfg.Portfolio)
	if err != nil {
		return fmt.Errorf("构建交易簿失败: %w", err)
	}

	engine := pricing.NewEngine(pricing.Backends{}, a.logger)

	valuer, err := portfolio.NewValuer(engine, a.cfg.Valuation.Concurrency, a.logger)
	if err != nil {
		return err
	}

	results, err := valuer.Value(ctx, book, a.cfg.Market.State())
	if err != nil {
		return fmt.Errorf("组合估值中断: %w", err)
	}

	var pricingErrs error
	for _, result := range results {
		if result.Err != nil {
			a.logger.Error("交易定价失败",
				zap.Int("index", result.Index),
				zap.String("kind", result.Kind.String()),
				zap.Error(result.Err))
			pricingErrs = multierr.Append(pricingErrs,
				fmt.Errorf("portfolio[%d] %s: %w", result.Index, result.Kind, result.Err))
			continue
		}
		a.logger.Info("交易定价完成",
			zap.Int("index", result.Index),
			zap.String("kind", result.Kind.String()),
			zap.Float64("pv", result.Value))
	}

	summary := portfolio.Summarize(results)
	a.logger.Info("组合估值完成",
		zap.Float64("total_pv", summary.TotalPV),
		zap.Int("priced", summary.Priced),
		zap.Int("failed", summary.Failed))

	return pricingErrs
}
