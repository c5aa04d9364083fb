package sprite

import (
	"context"
	"image"
	"image/draw"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/decker502/desksprite/pkg/utils"
)

// SheetOptions 精灵表组装选项
type SheetOptions struct {
	// Workers 并行渲染的协程数；0 或 1 表示顺序渲染
	Workers int
	// Verbose 为 true 时每帧输出一行日志
	Verbose bool
}

// FrameRect 返回 (row, col) 帧在精灵表中占据的矩形
func FrameRect(row, col int) image.Rectangle {
	return utils.CellRect(row, col, FrameWidth, FrameHeight)
}

// RenderSheet 渲染全部 36 帧并拼成 384x384 的精灵表
//
// 每帧独立分配画布、互不共享可变状态，所以可以任意顺序或并行渲染；
// 并行时每个协程只写自己那块不相交的区域，不需要加锁。
// 帧直接覆盖到目标位置（draw.Src），不做混合。
func RenderSheet(ctx context.Context, opts SheetOptions) (*image.NRGBA, error) {
	sheet := image.NewNRGBA(image.Rect(0, 0, SheetWidth, SheetHeight))

	paste := func(ctx context.Context, row, col int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		frame, err := RenderFrameChecked(row, col)
		if err != nil {
			return err
		}
		r := FrameRect(row, col)
		draw.Draw(sheet, r, frame.Image(), image.Point{}, draw.Src)
		if opts.Verbose {
			log.Printf("[Sheet] ✓ %s 帧 %d -> %v", State(row), col, r.Min)
		}
		return nil
	}

	if opts.Workers <= 1 {
		for row := 0; row < Rows; row++ {
			for col := 0; col < Columns; col++ {
				if err := paste(ctx, row, col); err != nil {
					return nil, err
				}
			}
		}
		return sheet, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			g.Go(func() error {
				return paste(gctx, row, col)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sheet, nil
}

// SubFrame 从精灵表中截取 (row, col) 帧（共享像素）
func SubFrame(sheet *image.NRGBA, row, col int) *image.NRGBA {
	return sheet.SubImage(FrameRect(row, col)).(*image.NRGBA)
}
