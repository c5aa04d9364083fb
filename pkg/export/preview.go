package export

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/image/draw"

	"github.com/decker502/desksprite/pkg/sprite"
)

// PreviewOptions GIF 预览选项
type PreviewOptions struct {
	Dir        string      // 输出目录，不存在时自动创建
	Scale      int         // 整数放大倍数，<1 视为 1
	FPS        int         // 帧率，<1 视为 1
	Background color.NRGBA // 透明像素合成到的底色
}

// WriteRowPreviews 为每个动画状态输出一个循环播放的 GIF（<Dir>/<state>.gif）
//
// 返回写入的文件路径，顺序与 sprite.AllStates() 一致。
func WriteRowPreviews(sheet *image.NRGBA, opts PreviewOptions) ([]string, error) {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.FPS < 1 {
		opts.FPS = 1
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("创建预览目录失败 %s: %w", opts.Dir, err)
	}

	var written []string
	for _, state := range sprite.AllStates() {
		anim := RowAnimation(sheet, state, opts)
		path := filepath.Join(opts.Dir, state.String()+".gif")
		if err := writeGIF(path, anim); err != nil {
			return written, err
		}
		log.Printf("[Preview] ✓ %s (%d 帧, %dx%d)", path, len(anim.Image), anim.Config.Width, anim.Config.Height)
		written = append(written, path)
	}
	return written, nil
}

// RowAnimation 将精灵表中某一行的 6 帧转换为 GIF 动画
func RowAnimation(sheet *image.NRGBA, state sprite.State, opts PreviewOptions) *gif.GIF {
	scale := max(opts.Scale, 1)
	delay := 100 / max(opts.FPS, 1)

	frames := make([]*image.RGBA, 0, sprite.Columns)
	for col := 0; col < sprite.Columns; col++ {
		frames = append(frames, composeScaled(sprite.SubFrame(sheet, int(state), col), opts.Background, scale))
	}

	pal, exact := rowPalette(frames)
	anim := &gif.GIF{LoopCount: 0}
	for _, f := range frames {
		anim.Image = append(anim.Image, toPaletted(f, pal, exact))
		anim.Delay = append(anim.Delay, delay)
	}
	anim.Config = image.Config{
		ColorModel: pal,
		Width:      sprite.FrameWidth * scale,
		Height:     sprite.FrameHeight * scale,
	}
	return anim
}

// composeScaled 把帧合成到底色上，再按最近邻放大（保持像素风格）
func composeScaled(frame *image.NRGBA, bg color.NRGBA, scale int) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, sprite.FrameWidth, sprite.FrameHeight))
	draw.Draw(src, src.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	draw.Draw(src, src.Bounds(), frame, frame.Bounds().Min, draw.Over)

	if scale == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, sprite.FrameWidth*scale, sprite.FrameHeight*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// rowPalette 收集一行所有帧用到的颜色
// 颜色数不超过 256 时使用精确调色板，否则退回 Plan9 调色板
func rowPalette(frames []*image.RGBA) (pal color.Palette, exact bool) {
	seen := make(map[color.RGBA]struct{})
	for _, f := range frames {
		for i := 0; i+3 < len(f.Pix); i += 4 {
			seen[color.RGBA{f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]}] = struct{}{}
			if len(seen) > 256 {
				return palette.Plan9, false
			}
		}
	}

	colors := make([]color.RGBA, 0, len(seen))
	for c := range seen {
		colors = append(colors, c)
	}
	// map 遍历顺序随机，排序保证输出稳定
	sort.Slice(colors, func(i, j int) bool {
		return packRGBA(colors[i]) < packRGBA(colors[j])
	})

	pal = make(color.Palette, len(colors))
	for i, c := range colors {
		pal[i] = c
	}
	return pal, true
}

func packRGBA(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// toPaletted 精确调色板直接映射，否则用 Floyd-Steinberg 抖动
func toPaletted(src *image.RGBA, pal color.Palette, exact bool) *image.Paletted {
	dst := image.NewPaletted(src.Bounds(), pal)
	if exact {
		draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
	} else {
		draw.FloydSteinberg.Draw(dst, dst.Bounds(), src, image.Point{})
	}
	return dst
}

func writeGIF(path string, anim *gif.GIF) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建预览文件失败 %s: %w", path, err)
	}
	return encodeGIF(f, path, anim)
}

// encodeGIF 编码到 w 并关闭；编码成功时关闭失败同样返回错误（数据可能没有写完）
func encodeGIF(w io.WriteCloser, path string, anim *gif.GIF) error {
	if err := gif.EncodeAll(w, anim); err != nil {
		w.Close()
		return fmt.Errorf("GIF 编码失败 %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("关闭预览文件失败 %s: %w", path, err)
	}
	return nil
}
