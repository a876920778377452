package quantlib

import (
	mapstructure "github.com/go-viper/mapstructure/v2"
)

// decodeInto 以宽松模式把不透明映射解码进目标结构：
// 未知键忽略，数值字符串与整型自动转换，无法解码时保留目标的预置缺省值。
// 这与被模拟的外部库对字典入参的宽容行为保持一致。
func decodeInto(src map[string]interface{}, dst interface{}) {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return
	}
	_ = decoder.Decode(src)
}
