// cmd/sheet_viewer/config.go
// 查看器配置：复用生成器的 YAML 配置文件中的 viewer 段

package main

import (
	"fmt"

	"github.com/decker502/desksprite/pkg/config"
	"github.com/decker502/desksprite/pkg/sprite"
)

const (
	labelHeight  = 16 // 单元格下方标签区域高度
	footerHeight = 16 // 窗口底部帮助栏高度
)

// ViewerSettings 查看器运行参数
type ViewerSettings struct {
	Grid   config.ViewerConfig
	TPS    int // 游戏更新频率，保持 60 以确保输入响应
	Title  string
	States []sprite.State
}

// LoadViewerSettings 加载配置文件中的 viewer 段（文件不存在时使用默认值）
func LoadViewerSettings(path string) (*ViewerSettings, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	return &ViewerSettings{
		Grid:   cfg.Viewer,
		TPS:    60,
		Title:  "Desk Sprite Viewer",
		States: sprite.AllStates(),
	}, nil
}

// CellSize 单个单元格的尺寸（放大后的帧 + 标签）
func (s *ViewerSettings) CellSize() (width, height int) {
	return sprite.FrameWidth * s.Grid.Scale, sprite.FrameHeight*s.Grid.Scale + labelHeight
}

// WindowSize 根据列数、缩放和间距计算窗口大小
func (s *ViewerSettings) WindowSize() (width, height int) {
	cellW, cellH := s.CellSize()
	cols := min(s.Grid.Columns, len(s.States))
	rows := (len(s.States) + s.Grid.Columns - 1) / s.Grid.Columns

	width = cols*(cellW+s.Grid.Padding) + s.Grid.Padding
	height = rows*(cellH+s.Grid.Padding) + s.Grid.Padding + footerHeight
	return width, height
}
