package sprite

import "fmt"

// Compose 按固定图层顺序把一帧画到新画布上
//
// 图层顺序: 桌子 → 显示器 → 椅子 → 身体 → 头 → 粒子特效
// （MonitorsOverChair 时显示器和椅子交换顺序）
// frame 是粒子特效使用的循环帧号 0~5
func Compose(p Pose, frame int) *Canvas {
	c := NewFrameCanvas()

	drawDesk(c)
	if p.MonitorsOverChair {
		drawChair(c)
		drawPoseMonitors(c, p)
	} else {
		drawPoseMonitors(c, p)
		drawChair(c)
	}

	drawBody(c, p.Offset, p.Arms)

	switch p.Head {
	case HeadSlumped:
		drawSlumpedHead(c)
	default:
		drawHead(c, p.Offset, p.Eyes, p.Blink, p.Look, p.Mouth)
	}

	drawOverlay(c, p.Overlay, frame)
	return c
}

func drawPoseMonitors(c *Canvas, p Pose) {
	if p.BootLevel > 0 {
		drawBootingMonitors(c, p.BootLevel-1)
		return
	}
	drawMonitors(c, p.LeftGlow, p.RightGlow, p.Flicker)
}

// RenderFrameChecked 渲染第 row 行第 col 列的帧
// 行列超出 0~5 时返回错误
func RenderFrameChecked(row, col int) (*Canvas, error) {
	state := State(row)
	if !state.Valid() {
		return nil, fmt.Errorf("row %d out of range [0,%d)", row, Rows)
	}
	if col < 0 || col >= Columns {
		return nil, fmt.Errorf("column %d out of range [0,%d)", col, Columns)
	}
	return Compose(PoseFor(state, col), col), nil
}

// RenderFrame 渲染第 row 行第 col 列的帧
//
// 纯函数：同样的参数总是得到逐字节相同的结果，不读写任何全局可变状态。
// 行列越界视为调用方错误，直接 panic。
func RenderFrame(row, col int) *Canvas {
	c, err := RenderFrameChecked(row, col)
	if err != nil {
		panic(err)
	}
	return c
}
