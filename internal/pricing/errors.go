package pricing

import (
	"fmt"

	"rates-pricer/internal/trade"
)

// UnsupportedTradeError 表示交易品种自身及其声明的父类别链上
// 都没有注册任何处理器。该错误总是直接上抛，不重试也不吞掉。
type UnsupportedTradeError struct {
	Kind trade.Kind
}

// Error 实现 error 接口。
func (e *UnsupportedTradeError) Error() string {
	return fmt.Sprintf("unsupported trade kind: %q", string(e.Kind))
}
