package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"rates-pricer/internal/market"
)

// Config 聚合一次组合估值运行所需的全部配置项。
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Market    MarketConfig    `mapstructure:"market"`
	Portfolio []TradeConfig   `mapstructure:"portfolio"`
	Valuation ValuationConfig `mapstructure:"valuation"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// AppConfig 控制应用级参数。
type AppConfig struct {
	Environment string `mapstructure:"environment"`
}

// MarketConfig 描述市场输入：曲线、标量观测值、波动率曲面。
type MarketConfig struct {
	Curves      map[string]map[string]float64 `mapstructure:"curves"`
	Data        map[string]interface{}        `mapstructure:"data"`
	VolSurfaces map[string]map[string]float64 `mapstructure:"vol_surfaces"`
}

// State 把市场配置转换为不可变快照。
func (m MarketConfig) State() market.State {
	curves := make(map[string]market.Curve, len(m.Curves))
	for id, points := range m.Curves {
		curves[id] = market.Curve(points)
	}

	surfaces := make(map[string]market.Surface, len(m.VolSurfaces))
	for id, points := range m.VolSurfaces {
		surfaces[id] = market.Surface(points)
	}

	return market.NewState(curves, m.Data, surfaces)
}

// ValuationConfig 控制组合估值行为。
type ValuationConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// LoggingConfig 控制日志输出。
type LoggingConfig struct {
	Level            string   `mapstructure:"level"`
	Encoding         string   `mapstructure:"encoding"`
	Development      bool     `mapstructure:"development"`
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// Validate 对配置进行基本校验，逐项累积错误后整体返回。
func (c *Config) Validate() error {
	var err error

	if c.App.Environment == "" {
		err = multierr.Append(err, errors.New("app.environment 不能为空"))
	}
	if c.Valuation.Concurrency <= 0 {
		err = multierr.Append(err, errors.New("valuation.concurrency 必须大于0"))
	}
	if c.Logging.Level == "" {
		err = multierr.Append(err, errors.New("logging.level 不能为空"))
	}
	if c.Logging.Encoding == "" {
		err = multierr.Append(err, errors.New("logging.encoding 不能为空"))
	}
	if len(c.Logging.OutputPaths) == 0 {
		err = multierr.Append(err, errors.New("logging.output_paths 至少包含一个输出目标"))
	}
	if len(c.Logging.ErrorOutputPaths) == 0 {
		err = multierr.Append(err, errors.New("logging.error_output_paths 至少包含一个输出目标"))
	}

	for i, entry := range c.Portfolio {
		if _, buildErr := entry.Trade(); buildErr != nil {
			err = multierr.Append(err, fmt.Errorf("portfolio[%d]: %w", i, buildErr))
		}
	}

	if err != nil {
		return fmt.Errorf("配置校验失败: %w", err)
	}

	return nil
}
