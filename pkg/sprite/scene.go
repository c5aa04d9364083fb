package sprite

import "image/color"

// FlickerMode 显示器内容的可见模式
type FlickerMode int

const (
	FlickerNormal FlickerMode = iota // 正常显示图表
	FlickerOn                        // 闪烁：每隔 3 个折线点跳过一个
	FlickerOff                       // 关闭：不画任何图表内容
)

// 左屏折线图每个点的纵向偏移
var chartOffsets = [10]int{3, 2, 4, 1, 3, 2, 5, 3, 1, 2}

// 右屏 K 线柱高度
var candleHeights = [5]int{4, 6, 3, 7, 5}

// drawDesk 画桌子（帧下半部分，所有帧都一样）
func drawDesk(c *Canvas) {
	// 桌面
	c.FillRect(8, 44, 48, 3, DeskTop)
	// 桌子正面
	c.FillRect(8, 47, 48, 8, Desk)
	// 阴影线
	c.FillRect(8, 47, 48, 1, DeskDark)
	// 桌腿
	c.FillRect(10, 55, 3, 9, DeskDark)
	c.FillRect(51, 55, 3, 9, DeskDark)
}

// drawChair 画角色身后的椅背
func drawChair(c *Canvas) {
	c.FillRect(24, 28, 16, 2, ChairBack)
	c.FillRect(23, 30, 1, 12, ChairBack)
	c.FillRect(40, 30, 1, 12, ChairBack)
}

// drawMonitorBodies 画两台显示器的外框、空白屏幕和支架
func drawMonitorBodies(c *Canvas) {
	// 左显示器
	c.FillRect(11, 30, 14, 12, MonitorFrame)
	c.FillRect(12, 31, 12, 10, MonitorScreen)
	c.FillRect(16, 42, 4, 2, MonitorFrame)

	// 右显示器
	c.FillRect(39, 30, 14, 12, MonitorFrame)
	c.FillRect(40, 31, 12, 10, MonitorScreen)
	c.FillRect(44, 42, 4, 2, MonitorFrame)
}

// drawMonitors 画两台显示器及屏幕内容
//
// 参数:
//   - leftGlow: 左屏折线颜色
//   - rightGlow: 右屏 K 线颜色
//   - flicker: FlickerOff 时只画空白屏幕
func drawMonitors(c *Canvas, leftGlow, rightGlow color.NRGBA, flicker FlickerMode) {
	drawMonitorBodies(c)

	if flicker == FlickerOff {
		return
	}

	// 左屏：折线图
	for i, off := range chartOffsets {
		if flicker == FlickerOn && i%3 == 0 {
			continue
		}
		c.SetPixel(13+i, 35+off, leftGlow)
		c.SetPixel(13+i, 36+off, withAlpha(leftGlow, 80))
	}

	// 右屏：K 线（高度 > 4 的柱子全亮，其余半透明）
	for i, h := range candleHeights {
		col := withAlpha(rightGlow, 150)
		if h > 4 {
			col = rightGlow
		}
		c.FillRect(41+i*2, 38-h, 1, h, col)
	}
}

// drawBootingMonitors 画开机中的显示器（warmup 状态第 2、3 帧）
// level 从 0 开始，每级左屏辉光更亮；level >= 1 时右屏出现一条暗线
func drawBootingMonitors(c *Canvas, level int) {
	drawMonitorBodies(c)

	alpha := 60 + level*80
	if alpha > 200 {
		alpha = 200
	}
	glow := withAlpha(MonitorBlue, uint8(alpha))
	for i := 0; i < 12; i++ {
		c.SetPixel(13+i%6, 33+i/6, glow)
	}

	if level >= 1 {
		accent := withAlpha(MonitorGreen, 80)
		for i := 0; i < 6; i++ {
			c.SetPixel(42+i, 35, accent)
		}
	}
}
