// cmd/sheet_viewer/animation_cell.go
// 动画展示单元 - 播放精灵表中一个状态的 6 帧

package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/desksprite/pkg/sprite"
)

// frameClock 帧计时器
// 每次 Update 累加 animationFPS，满 targetTPS 前进一帧（整数计数，没有浮点误差）
type frameClock struct {
	current          int
	frameCount       int
	frameAccumulator int
	animationFPS     int
	targetTPS        int
}

func newFrameClock(frameCount, fps, tps int) frameClock {
	return frameClock{
		frameCount:   frameCount,
		animationFPS: fps,
		targetTPS:    max(tps, 1),
	}
}

// tick 推进一次更新；paused 时不累加
func (c *frameClock) tick(paused bool) {
	if paused || c.frameCount == 0 {
		return
	}
	c.frameAccumulator += c.animationFPS
	for c.frameAccumulator >= c.targetTPS {
		c.frameAccumulator -= c.targetTPS
		c.current = (c.current + 1) % c.frameCount
	}
}

// step 手动前进或后退 delta 帧（循环）
func (c *frameClock) step(delta int) {
	if c.frameCount == 0 {
		return
	}
	c.current = ((c.current+delta)%c.frameCount + c.frameCount) % c.frameCount
	c.frameAccumulator = 0
}

// AnimationCell 动画展示单元
type AnimationCell struct {
	state  sprite.State
	frames []*ebiten.Image
	clock  frameClock
	scale  float64

	// 重用的渲染对象（避免每帧分配）
	drawOpts ebiten.DrawImageOptions
}

// NewAnimationCell 从精灵表中截取一个状态的所有帧
// sheet 是整张精灵表的 ebiten 图片，帧是共享纹理的子图
func NewAnimationCell(sheet *ebiten.Image, state sprite.State, scale, fps, tps int) *AnimationCell {
	frames := make([]*ebiten.Image, 0, sprite.Columns)
	for col := 0; col < sprite.Columns; col++ {
		r := sprite.FrameRect(int(state), col)
		frames = append(frames, sheet.SubImage(r).(*ebiten.Image))
	}

	return &AnimationCell{
		state:  state,
		frames: frames,
		clock:  newFrameClock(len(frames), fps, tps),
		scale:  float64(scale),
	}
}

// Update 更新动画
func (c *AnimationCell) Update(paused bool) {
	c.clock.tick(paused)
}

// Step 单步切换帧
func (c *AnimationCell) Step(delta int) {
	c.clock.step(delta)
}

// Render 以 (x, y) 为左上角绘制当前帧（最近邻放大）
func (c *AnimationCell) Render(screen *ebiten.Image, x, y float64) {
	frame := c.frames[c.clock.current]

	// 子图从 (0, 0) 开始绘制
	c.drawOpts.GeoM.Reset()
	c.drawOpts.GeoM.Scale(c.scale, c.scale)
	c.drawOpts.GeoM.Translate(x, y)
	c.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, &c.drawOpts)
}

// GetName 状态名
func (c *AnimationCell) GetName() string {
	return c.state.String()
}

// GetFrameLabel 标签文本，例如 "idle 3/6"
func (c *AnimationCell) GetFrameLabel() string {
	return fmt.Sprintf("%s %d/%d", c.state, c.clock.current+1, len(c.frames))
}

// CurrentFrame 当前帧索引
func (c *AnimationCell) CurrentFrame() int {
	return c.clock.current
}

// sheetImage 将精灵表转换为 ebiten 图片
func sheetImage(sheet image.Image) *ebiten.Image {
	return ebiten.NewImageFromImage(sheet)
}
