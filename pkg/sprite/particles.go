package sprite

import "image"

// Overlay 叠加在角色之上的粒子特效
type Overlay int

const (
	OverlayNone     Overlay = iota
	OverlaySleep            // 漂浮的 Z
	OverlaySparkles         // 庆祝的星光
	OverlaySweat            // 汗滴
)

// 粒子锚点
var (
	sleepAnchors   = [3]image.Point{{X: 36, Y: 22}, {X: 40, Y: 18}, {X: 44, Y: 14}}
	sleepSizes     = [3]int{1, 1, 2}
	sparkleAnchors = [5]image.Point{{X: 18, Y: 28}, {X: 44, Y: 26}, {X: 22, Y: 20}, {X: 40, Y: 18}, {X: 32, Y: 16}}
	sparkleAlphas  = [3]uint8{255, 180, 100}
	sweatAnchors   = [2]image.Point{{X: 26, Y: 28}, {X: 38, Y: 27}}
)

// particlePhase 计算第 slot 个粒子在 6 帧循环中的相位
// stride 让不同粒子错开出现的时间
func particlePhase(frame, slot, stride int) int {
	return (frame + slot*stride) % Columns
}

// drawOverlay 按类型分派粒子特效
func drawOverlay(c *Canvas, o Overlay, frame int) {
	switch o {
	case OverlaySleep:
		drawSleepMarks(c, frame)
	case OverlaySparkles:
		drawSparkles(c, frame)
	case OverlaySweat:
		drawSweat(c, frame)
	}
}

// drawSleepMarks 画上浮渐隐的 Zzz
// 相位超过 3+slot 的粒子隐藏；越往上越透明
func drawSleepMarks(c *Canvas, frame int) {
	for i, p := range sleepAnchors {
		f := particlePhase(frame, i, 1)
		if f >= 3+i {
			continue
		}
		alpha := 255 - f*40
		if alpha < 0 {
			alpha = 0
		}
		col := withAlpha(Zzz, uint8(alpha))
		y := p.Y - f

		if sleepSizes[i] == 1 {
			c.SetPixel(p.X, y, col)
			continue
		}
		c.FillRect(p.X, y, 3, 1, col)
		c.SetPixel(p.X+2, y+1, col)
		c.FillRect(p.X, y+2, 3, 1, col)
	}
}

// drawSparkles 画十字星光，只在相位 0~2 可见
func drawSparkles(c *Canvas, frame int) {
	for i, p := range sparkleAnchors {
		f := particlePhase(frame, i, 2)
		if f >= len(sparkleAlphas) {
			continue
		}
		col := withAlpha(Sparkle, sparkleAlphas[f])
		c.SetPixel(p.X, p.Y, col)
		c.SetPixel(p.X-1, p.Y, col)
		c.SetPixel(p.X+1, p.Y, col)
		c.SetPixel(p.X, p.Y-1, col)
		c.SetPixel(p.X, p.Y+1, col)
	}
}

// drawSweat 画下落的汗滴，相位 < 4 时可见
// 下落偏移非 0 时在上方一格留下淡色拖尾（偏移为 0 时没有拖尾）
func drawSweat(c *Canvas, frame int) {
	for i, p := range sweatAnchors {
		f := particlePhase(frame, i, 3)
		if f >= 4 {
			continue
		}
		dy := f % 3
		c.SetPixel(p.X, p.Y+dy, Sweat)
		if dy > 0 {
			c.SetPixel(p.X, p.Y+dy-1, withAlpha(Sweat, 100))
		}
	}
}
