// Package quantlib 模拟三套签名互不兼容的外部定价库，
// 作为调度器转发目标的进程内替身：
//   - 位置参数风格的互换定价函数 PriceSwap
//   - 字典入参风格的互换期权定价函数 SwaptionPV
//   - 对象风格的利率上下限定价器 BlackCapFloorPricer
//
// 三个调用签名视为外部固定契约，不在本仓库的修改范围内；
// 公式本身只是占位实现，数值准确性不是目标。
package quantlib
