package components

import "fmt"

// timerEpsilon 吸收浮点累加误差，例如 120 次 1/60 秒之和应视为恰好 2 秒
const timerEpsilon = 1e-9

// TimerComponent 通用重复计时器组件
// 用于敌机生成周期和每架敌机的开火周期
type TimerComponent struct {
	Name        string  // 计时器名称，如 "enemy_fire"
	TargetTime  float64 // 周期（秒），必须大于 0
	CurrentTime float64 // 当前累计时间（秒）
	IsReady     bool    // 最近一次 Tick 是否触发
}

// NewRepeatingTimer 创建重复计时器
//
// 参数:
//   - name: 计时器名称
//   - period: 周期（秒）
//
// 返回:
//   - *TimerComponent: 计时器
//   - error: period <= 0 时返回错误（会导致无限生成）
func NewRepeatingTimer(name string, period float64) (*TimerComponent, error) {
	if !(period > 0) {
		return nil, fmt.Errorf("timer %q: period must be > 0, got %v", name, period)
	}
	return &TimerComponent{
		Name:       name,
		TargetTime: period,
	}, nil
}

// Tick 累加时间，到达周期时返回 true
//
// 每次调用至多触发一次：一帧跨越多个周期时不补发，
// 触发后累计时间减去一个周期，并截断到不足一个周期。
func (t *TimerComponent) Tick(deltaTime float64) bool {
	t.CurrentTime += deltaTime
	t.IsReady = t.CurrentTime+timerEpsilon >= t.TargetTime
	if !t.IsReady {
		return false
	}

	t.CurrentTime -= t.TargetTime
	if t.CurrentTime < 0 || t.CurrentTime >= t.TargetTime {
		t.CurrentTime = 0
	}
	return true
}

// Reset 清零累计时间
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
	t.IsReady = false
}
