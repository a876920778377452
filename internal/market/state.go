package market

// Curve 表示一条利率曲线的数值要素，例如平价利率或远期利率。
type Curve map[string]float64

// Surface 表示一张波动率曲面的数值要素，例如平值波动率。
type Surface map[string]float64

// State 是一次定价请求的市场输入快照，聚合三组相互独立的映射：
// 曲线、标量市场观测值、波动率曲面。
// 快照在构造时整体复制输入，对所有处理器只读；
// 读取接口返回副本，缺失的键以 *MissingDataError 报告，绝不隐式崩溃。
type State struct {
	curves   map[string]Curve
	data     map[string]interface{}
	surfaces map[string]Surface
}

// NewState 构造市场快照。三个入参均可为 nil，
// 传入的映射会被复制，之后调用方的修改不影响快照。
func NewState(curves map[string]Curve, data map[string]interface{}, surfaces map[string]Surface) State {
	state := State{
		curves:   make(map[string]Curve, len(curves)),
		data:     make(map[string]interface{}, len(data)),
		surfaces: make(map[string]Surface, len(surfaces)),
	}

	for id, curve := range curves {
		state.curves[id] = copyCurve(curve)
	}
	for name, value := range data {
		state.data[name] = value
	}
	for id, surface := range surfaces {
		state.surfaces[id] = copySurface(surface)
	}

	return state
}

// Curve 按键返回曲线副本，缺失时返回 *MissingDataError。
func (s State) Curve(id string) (Curve, error) {
	curve, ok := s.curves[id]
	if !ok {
		return nil, &MissingDataError{Section: SectionCurves, Key: id}
	}
	return copyCurve(curve), nil
}

// Surface 按键返回波动率曲面副本，缺失时返回 *MissingDataError。
func (s State) Surface(id string) (Surface, error) {
	surface, ok := s.surfaces[id]
	if !ok {
		return nil, &MissingDataError{Section: SectionVolSurfaces, Key: id}
	}
	return copySurface(surface), nil
}

// Observable 按名称返回单个市场观测值，缺失时返回 *MissingDataError。
func (s State) Observable(name string) (interface{}, error) {
	value, ok := s.data[name]
	if !ok {
		return nil, &MissingDataError{Section: SectionData, Key: name}
	}
	return value, nil
}

// Data 返回全部市场观测值的副本，供约定自行取键的外部定价库整体消费。
func (s State) Data() map[string]interface{} {
	data := make(map[string]interface{}, len(s.data))
	for name, value := range s.data {
		data[name] = value
	}
	return data
}

func copyCurve(curve Curve) Curve {
	dup := make(Curve, len(curve))
	for key, value := range curve {
		dup[key] = value
	}
	return dup
}

func copySurface(surface Surface) Surface {
	dup := make(Surface, len(surface))
	for key, value := range surface {
		dup[key] = value
	}
	return dup
}
