package main

import (
	"fmt"
	"testing"

	"github.com/decker502/desksprite/pkg/config"
	"github.com/decker502/desksprite/pkg/sprite"
)

func testSettings() *ViewerSettings {
	return &ViewerSettings{
		Grid:   config.ViewerConfig{Columns: 3, Scale: 3, Padding: 10, FPS: 6},
		TPS:    60,
		States: sprite.AllStates(),
	}
}

// TestFrameClockTick 6 FPS @ 60 TPS：每 10 次更新前进一帧
func TestFrameClockTick(t *testing.T) {
	clock := newFrameClock(6, 6, 60)

	for i := 0; i < 9; i++ {
		clock.tick(false)
	}
	if clock.current != 0 {
		t.Fatalf("9 次更新后 current = %d, 期望 0", clock.current)
	}
	clock.tick(false)
	if clock.current != 1 {
		t.Fatalf("10 次更新后 current = %d, 期望 1", clock.current)
	}

	// 一整轮后回到第 0 帧
	for i := 0; i < 50; i++ {
		clock.tick(false)
	}
	if clock.current != 0 {
		t.Errorf("60 次更新后 current = %d, 期望 0（循环）", clock.current)
	}
}

func TestFrameClockPaused(t *testing.T) {
	clock := newFrameClock(6, 6, 60)
	for i := 0; i < 100; i++ {
		clock.tick(true)
	}
	if clock.current != 0 || clock.frameAccumulator != 0 {
		t.Errorf("暂停时不应前进: current=%d acc=%d", clock.current, clock.frameAccumulator)
	}
}

func TestFrameClockStep(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"前进", 0, 1, 1},
		{"末帧前进回到开头", 5, 1, 0},
		{"首帧后退到末帧", 0, -1, 5},
		{"大步后退", 2, -8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFrameClock(6, 6, 60)
			clock.current = tt.start
			clock.frameAccumulator = 30
			clock.step(tt.delta)
			if clock.current != tt.want {
				t.Errorf("step(%d) 从 %d 得到 %d, 期望 %d", tt.delta, tt.start, clock.current, tt.want)
			}
			if clock.frameAccumulator != 0 {
				t.Errorf("单步后累加器应清零, got %d", clock.frameAccumulator)
			}
		})
	}
}

func TestWindowSize(t *testing.T) {
	s := testSettings()

	cellW, cellH := s.CellSize()
	if cellW != 192 || cellH != 192+labelHeight {
		t.Fatalf("CellSize() = %dx%d", cellW, cellH)
	}

	// 3 列 2 行
	w, h := s.WindowSize()
	wantW := 3*(192+10) + 10
	wantH := 2*(192+labelHeight+10) + 10 + footerHeight
	if w != wantW || h != wantH {
		t.Errorf("WindowSize() = %dx%d, 期望 %dx%d", w, h, wantW, wantH)
	}

	// 列数超过状态数时按状态数计算宽度
	s.Grid.Columns = 10
	w, _ = s.WindowSize()
	if want := 6*(192+10) + 10; w != want {
		t.Errorf("Columns=10 时宽度 = %d, 期望 %d", w, want)
	}
}

func TestGridCellPosition(t *testing.T) {
	s := testSettings()
	layout := NewGridLayout(s, make([]*AnimationCell, len(s.States)))

	tests := []struct {
		index      int
		wantX, wantY float64
	}{
		{0, 10, 10},
		{1, 212, 10},
		{2, 414, 10},
		{3, 10, 10 + 192 + labelHeight + 10},
	}

	for _, tt := range tests {
		x, y := layout.getCellPosition(tt.index)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("getCellPosition(%d) = (%v, %v), 期望 (%v, %v)", tt.index, x, y, tt.wantX, tt.wantY)
		}
	}
	if layout.GetCellCount() != sprite.Rows {
		t.Errorf("GetCellCount() = %d", layout.GetCellCount())
	}
}

func TestGridCellIndexAt(t *testing.T) {
	s := testSettings()
	layout := NewGridLayout(s, make([]*AnimationCell, len(s.States)))
	cellH := 192 + labelHeight

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"第一个单元左上角", 10, 10, 0},
		{"第一个单元内部", 100, 100, 0},
		{"第二个单元", 212, 10, 1},
		{"第三个单元右下角", 414 + 191, 10 + cellH - 1, 2},
		{"第二行", 220, 10 + cellH + 10, 4},
		{"左侧间距", 5, 50, -1},
		{"列之间的间距", 205, 50, -1},
		{"行之间的间距", 50, 10 + cellH + 5, -1},
		{"窗口外", -1, 50, -1},
		{"网格右侧", 3*202 + 10, 50, -1},
		{"网格下方", 50, 2*(cellH+10) + 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := layout.CellIndexAt(tt.x, tt.y); got != tt.want {
				t.Errorf("CellIndexAt(%d, %d) = %d, 期望 %d", tt.x, tt.y, got, tt.want)
			}
		})
	}

	// 最后一行未填满时空位不算单元
	short := NewGridLayout(s, make([]*AnimationCell, 4))
	if got := short.CellIndexAt(220, 10+cellH+10); got != -1 {
		t.Errorf("空位 CellIndexAt = %d, 期望 -1", got)
	}
}

func testCells(n int) []*AnimationCell {
	cells := make([]*AnimationCell, n)
	for i := range cells {
		cells[i] = &AnimationCell{state: sprite.State(i), clock: newFrameClock(6, 6, 60)}
	}
	return cells
}

// TestGridSelectStep 选中后单步只影响选中的单元
func TestGridSelectStep(t *testing.T) {
	s := testSettings()
	cells := testCells(len(s.States))
	layout := NewGridLayout(s, cells)

	if layout.Selected() != nil {
		t.Fatal("初始不应有选中单元")
	}

	layout.Select(layout.CellIndexAt(220, 20))
	sel := layout.Selected()
	if sel != cells[1] {
		t.Fatalf("Selected() = %v, 期望第 2 个单元", sel)
	}
	if sel.GetName() != sprite.State(1).String() {
		t.Errorf("GetName() = %q", sel.GetName())
	}

	layout.Step(1)
	if cells[1].CurrentFrame() != 1 || cells[0].CurrentFrame() != 0 {
		t.Errorf("选中时单步: cells[0]=%d cells[1]=%d, 期望 0 1", cells[0].CurrentFrame(), cells[1].CurrentFrame())
	}

	// 点在间距上取消选中，单步作用于全部
	layout.Select(layout.CellIndexAt(5, 5))
	if layout.Selected() != nil {
		t.Fatal("点在间距上应取消选中")
	}
	layout.Step(-1)
	if cells[1].CurrentFrame() != 0 || cells[0].CurrentFrame() != 5 {
		t.Errorf("全部单步: cells[0]=%d cells[1]=%d, 期望 5 0", cells[0].CurrentFrame(), cells[1].CurrentFrame())
	}
}

func TestFooterText(t *testing.T) {
	s := testSettings()
	g := &Game{settings: s, layout: NewGridLayout(s, testCells(len(s.States)))}

	if got := g.footerText(); got != "PLAY" {
		t.Errorf("footerText() = %q, 期望 PLAY", got)
	}

	g.paused = true
	g.layout.Select(2)
	g.layout.Step(1)
	want := fmt.Sprintf("PAUSED | %s frame 2", sprite.State(2))
	if got := g.footerText(); got != want {
		t.Errorf("footerText() = %q, 期望 %q", got, want)
	}
}
