package utils

import (
	"image"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// 字符集（从暗到亮），适合深色终端：越亮的像素字符越"密"
const asciiRamp = ".:-=+*#%@"

// ASCIIOptions 字符画预览选项
type ASCIIOptions struct {
	// Step 采样步长（像素），<1 视为 1
	Step int
	// DoubleWidth 为 true 时每个像素输出两个字符，抵消终端字符的纵横比
	DoubleWidth bool
	// Transparent 全透明像素使用的字符，0 时使用空格
	Transparent byte
}

// ASCIIPreview 将图片转换为字符画
// 每行对应图片的一行采样像素，亮度取 CIE L*（感知亮度）
func ASCIIPreview(img image.Image, opts ASCIIOptions) []string {
	step := opts.Step
	if step < 1 {
		step = 1
	}
	blank := opts.Transparent
	if blank == 0 {
		blank = ' '
	}

	bounds := img.Bounds()
	var lines []string
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		var line strings.Builder
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			ch := pixelToASCII(img.At(x, y), blank)
			line.WriteByte(ch)
			if opts.DoubleWidth {
				line.WriteByte(ch)
			}
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return lines
}

// pixelToASCII 根据感知亮度选择字符；alpha 为 0 时返回 blank
func pixelToASCII(c color.Color, blank byte) byte {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return blank
	}
	l, _, _ := cf.Lab()

	idx := int(math.Round(l * float64(len(asciiRamp)-1)))
	// Lab 的 L 在极端颜色下可能略超出 [0,1]
	if idx < 0 {
		idx = 0
	} else if idx >= len(asciiRamp) {
		idx = len(asciiRamp) - 1
	}
	return asciiRamp[idx]
}
