// cmd/sheet_viewer/grid_layout.go
// 网格布局管理器 - 管理动画单元的布局

package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/desksprite/pkg/utils"
)

// GridLayout 网格布局管理器
type GridLayout struct {
	cells []*AnimationCell

	// 布局数据
	columns    int
	cellWidth  int
	cellHeight int
	padding    int

	// 是否绘制单元格背景和边框
	showGrid bool

	// 鼠标选中的单元索引，-1 表示未选中
	selected int
}

// NewGridLayout 创建网格布局管理器
func NewGridLayout(settings *ViewerSettings, cells []*AnimationCell) *GridLayout {
	cellW, cellH := settings.CellSize()
	return &GridLayout{
		cells:      cells,
		columns:    settings.Grid.Columns,
		cellWidth:  cellW,
		cellHeight: cellH,
		padding:    settings.Grid.Padding,
		showGrid:   true,
		selected:   -1,
	}
}

// Update 更新所有单元的动画
func (g *GridLayout) Update(paused bool) {
	for _, cell := range g.cells {
		cell.Update(paused)
	}
}

// Step 单步：有选中单元时只切换它，否则所有单元同时切换
func (g *GridLayout) Step(delta int) {
	if cell := g.Selected(); cell != nil {
		cell.Step(delta)
		return
	}
	for _, cell := range g.cells {
		cell.Step(delta)
	}
}

// CellIndexAt 窗口坐标下的单元索引；落在间距、网格外或空位时返回 -1
func (g *GridLayout) CellIndexAt(x, y int) int {
	if g.columns <= 0 {
		return -1
	}
	pitchW := g.cellWidth + g.padding
	pitchH := g.cellHeight + g.padding
	rows := (len(g.cells) + g.columns - 1) / g.columns

	// 每个单元占 [padding, padding+cell) 的位置，前面是间距
	lx, ly := x-g.padding, y-g.padding
	row, col, ok := utils.CellAt(lx, ly, pitchW, pitchH, g.columns, rows)
	if !ok {
		return -1
	}
	origin := utils.CellOrigin(row, col, pitchW, pitchH)
	if lx-origin.X >= g.cellWidth || ly-origin.Y >= g.cellHeight {
		return -1
	}

	index := row*g.columns + col
	if index >= len(g.cells) {
		return -1
	}
	return index
}

// Select 选中单元；index 越界时取消选中
func (g *GridLayout) Select(index int) {
	if index < 0 || index >= len(g.cells) {
		index = -1
	}
	g.selected = index
}

// Selected 当前选中的单元，没有时返回 nil
func (g *GridLayout) Selected() *AnimationCell {
	if g.selected < 0 {
		return nil
	}
	return g.cells[g.selected]
}

// ToggleGrid 切换单元格背景
func (g *GridLayout) ToggleGrid() {
	g.showGrid = !g.showGrid
}

// Render 渲染网格布局
func (g *GridLayout) Render(screen *ebiten.Image) {
	for i, cell := range g.cells {
		x, y := g.getCellPosition(i)

		if g.showGrid {
			vector.DrawFilledRect(
				screen,
				float32(x),
				float32(y),
				float32(g.cellWidth),
				float32(g.cellHeight-labelHeight),
				color.RGBA{40, 48, 64, 255},
				false,
			)
			vector.StrokeRect(
				screen,
				float32(x),
				float32(y),
				float32(g.cellWidth),
				float32(g.cellHeight-labelHeight),
				1,
				color.RGBA{90, 100, 120, 255},
				false,
			)
		}

		cell.Render(screen, x, y)
		if i == g.selected {
			vector.StrokeRect(
				screen,
				float32(x)-1,
				float32(y)-1,
				float32(g.cellWidth)+2,
				float32(g.cellHeight-labelHeight)+2,
				2,
				color.RGBA{255, 210, 80, 255},
				false,
			)
		}
		ebitenutil.DebugPrintAt(screen, cell.GetFrameLabel(), int(x), int(y)+g.cellHeight-labelHeight)
	}
}

// getCellPosition 获取指定索引单元的位置
func (g *GridLayout) getCellPosition(index int) (float64, float64) {
	row := index / g.columns
	col := index % g.columns

	x := float64(col*(g.cellWidth+g.padding) + g.padding)
	y := float64(row*(g.cellHeight+g.padding) + g.padding)

	return x, y
}

// GetCellCount 获取单元总数
func (g *GridLayout) GetCellCount() int {
	return len(g.cells)
}
