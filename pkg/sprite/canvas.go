package sprite

import (
	"image"
	"image/color"
)

// 帧与精灵表尺寸常量
const (
	FrameWidth  = 64 // 单帧宽度（像素）
	FrameHeight = 64 // 单帧高度（像素）
	Columns     = 6  // 每个动画状态的帧数
	Rows        = 6  // 动画状态数量

	SheetWidth  = FrameWidth * Columns  // 384
	SheetHeight = FrameHeight * Rows    // 384
	FrameCount  = Columns * Rows        // 36
)

// Canvas 像素画布
//
// 底层是 8 位直通 alpha 的 *image.NRGBA。
// 所有写入都经过 SetPixel：越界坐标和 alpha 为 0 的颜色静默忽略，
// 不做任何 alpha 混合（画家算法，后写覆盖先写）。
// 靠近边缘的特效因此不会回绕，也不会报错。
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas 创建指定尺寸的全透明画布
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// NewFrameCanvas 创建一个 64x64 的空白帧
func NewFrameCanvas() *Canvas {
	return NewCanvas(FrameWidth, FrameHeight)
}

// SetPixel 在 (x, y) 写入颜色
// 仅当坐标在画布内且 c.A != 0 时写入，否则什么都不做
func (c *Canvas) SetPixel(x, y int, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	i := c.img.PixOffset(x, y)
	s := c.img.Pix[i : i+4 : i+4]
	s[0] = col.R
	s[1] = col.G
	s[2] = col.B
	s[3] = col.A
}

// FillRect 填充半开矩形 [x, x+w) × [y, y+h)
// 每个像素都按 SetPixel 的规则裁剪
func (c *Canvas) FillRect(x, y, w, h int, col color.NRGBA) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.SetPixel(x+dx, y+dy, col)
		}
	}
}

// NRGBAAt 读取 (x, y) 的颜色，越界返回全透明
func (c *Canvas) NRGBAAt(x, y int) color.NRGBA {
	return c.img.NRGBAAt(x, y)
}

// Bounds 返回画布范围
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// Image 返回底层图像（共享像素，不复制）
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}
