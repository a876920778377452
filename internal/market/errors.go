package market

import "fmt"

// 快照分区名称，用于 MissingDataError 定位缺失键所在的映射。
const (
	SectionCurves      = "curves"
	SectionData        = "market_data"
	SectionVolSurfaces = "vol_surfaces"
)

// MissingDataError 表示处理器所需的市场输入在快照中不存在。
// 该错误只能由调用方补齐输入后重试，内部不做任何回退估值。
type MissingDataError struct {
	Section string
	Key     string
}

// Error 实现 error 接口。
func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing market data: %s/%s", e.Section, e.Key)
}
