package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"go.uber.org/multierr"

	"rates-pricer/internal/trade"
)

// TradeConfig 是组合中的一条交易配置：type 选择品种，
// 其余键按品种各自的字段约定解码。
type TradeConfig struct {
	Type   string                 `mapstructure:"type"`
	Params map[string]interface{} `mapstructure:",remain"`
}

// swapParams 是 interest_rate_swap 条目的字段约定。
type swapParams struct {
	Notional  float64   `mapstructure:"notional"`
	FixedRate float64   `mapstructure:"fixed_rate"`
	Start     time.Time `mapstructure:"start"`
	End       time.Time `mapstructure:"end"`
	CurveID   string    `mapstructure:"curve_id"`
}

// swaptionParams 是 swaption 条目的字段约定。
type swaptionParams struct {
	Attributes map[string]interface{} `mapstructure:"attributes"`
}

// capFloorParams 是 cap_floor 条目的字段约定。
type capFloorParams struct {
	Terms        map[string]interface{} `mapstructure:"terms"`
	CurveID      string                 `mapstructure:"curve_id"`
	VolSurfaceID string                 `mapstructure:"vol_surface_id"`
	Overrides    map[string]interface{} `mapstructure:"overrides"`
}

// Trade 把一条组合配置构造成对应品种的交易值，
// 未知的 type 返回错误并列出受支持的类型。
func (t TradeConfig) Trade() (trade.Trade, error) {
	switch trade.Kind(t.Type) {
	case trade.KindInterestRateSwap:
		return t.interestRateSwap()
	case trade.KindSwaption:
		return t.swaption()
	case trade.KindCapFloor:
		return t.capFloor()
	default:
		return nil, fmt.Errorf("未知的交易类型 %q，受支持的类型: %s", t.Type, supportedTypeList())
	}
}

func (t TradeConfig) interestRateSwap() (trade.Trade, error) {
	var params swapParams
	if err := decodeParams(t.Params, &params); err != nil {
		return nil, err
	}

	var err error
	if params.Notional <= 0 {
		err = multierr.Append(err, errors.New("notional 必须大于0"))
	}
	if params.CurveID == "" {
		err = multierr.Append(err, errors.New("curve_id 不能为空"))
	}
	if params.Start.IsZero() || params.End.IsZero() {
		err = multierr.Append(err, errors.New("start 与 end 均不能为空"))
	} else if !params.End.After(params.Start) {
		err = multierr.Append(err, errors.New("end 必须晚于 start"))
	}
	if err != nil {
		return nil, err
	}

	return trade.InterestRateSwap{
		Notional:  params.Notional,
		FixedRate: params.FixedRate,
		Start:     params.Start,
		End:       params.End,
		CurveID:   params.CurveID,
	}, nil
}

func (t TradeConfig) swaption() (trade.Trade, error) {
	var params swaptionParams
	if err := decodeParams(t.Params, &params); err != nil {
		return nil, err
	}

	return trade.Swaption{Attributes: params.Attributes}, nil
}

func (t TradeConfig) capFloor() (trade.Trade, error) {
	var params capFloorParams
	if err := decodeParams(t.Params, &params); err != nil {
		return nil, err
	}

	var err error
	if params.CurveID == "" {
		err = multierr.Append(err, errors.New("curve_id 不能为空"))
	}
	if params.VolSurfaceID == "" {
		err = multierr.Append(err, errors.New("vol_surface_id 不能为空"))
	}
	if err != nil {
		return nil, err
	}

	return trade.CapFloor{
		Terms:        params.Terms,
		CurveID:      params.CurveID,
		VolSurfaceID: params.VolSurfaceID,
		Overrides:    params.Overrides,
	}, nil
}

// BuildPortfolio 把组合配置整体构造成交易列表，逐条累积错误。
func BuildPortfolio(entries []TradeConfig) ([]trade.Trade, error) {
	book := make([]trade.Trade, 0, len(entries))

	var errs error
	for i, entry := range entries {
		trd, err := entry.Trade()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("portfolio[%d]: %w", i, err))
			continue
		}
		book = append(book, trd)
	}

	if errs != nil {
		return nil, errs
	}
	return book, nil
}

// decodeParams 按品种字段约定解码条目参数，日期使用 YYYY-MM-DD。
func decodeParams(src map[string]interface{}, dst interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.DateOnly),
	})
	if err != nil {
		return fmt.Errorf("构造条目解码器失败: %w", err)
	}
	if err := decoder.Decode(src); err != nil {
		return fmt.Errorf("解析条目字段失败: %w", err)
	}
	return nil
}

func supportedTypeList() string {
	kinds := []string{
		trade.KindInterestRateSwap.String(),
		trade.KindSwaption.String(),
		trade.KindCapFloor.String(),
	}
	sort.Strings(kinds)
	return strings.Join(kinds, ", ")
}
