// cmd/sheet_viewer/main.go
// 精灵表查看器：每个动画状态一个单元格，循环播放
//
// 用法：
//   go run ./cmd/sheet_viewer --config=spritegen.yaml
//   go run ./cmd/sheet_viewer --png=sprite-sheet.png

package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/desksprite/pkg/sprite"
)

var (
	configPath = flag.String("config", "spritegen.yaml", "配置文件路径")
	pngPath    = flag.String("png", "", "查看已生成的 PNG（为空时直接在内存中渲染）")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

// Game 主游戏结构
type Game struct {
	settings *ViewerSettings
	layout   *GridLayout

	paused   bool
	showHelp bool

	windowWidth  int
	windowHeight int
}

// NewGame 创建查看器实例
func NewGame(settings *ViewerSettings, sheet image.Image) *Game {
	sheetImg := sheetImage(sheet)

	cells := make([]*AnimationCell, 0, len(settings.States))
	for _, state := range settings.States {
		cells = append(cells, NewAnimationCell(sheetImg, state, settings.Grid.Scale, settings.Grid.FPS, settings.TPS))
		if *verbose {
			log.Printf("  ✓ 加载: %s", state)
		}
	}

	w, h := settings.WindowSize()
	return &Game{
		settings:     settings,
		layout:       NewGridLayout(settings, cells),
		showHelp:     true,
		windowWidth:  w,
		windowHeight: h,
	}
}

// Update 更新游戏状态
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.layout.ToggleGrid()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}

	// 点击选中单元格，点在单元格外取消选中
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.layout.Select(g.layout.CellIndexAt(x, y))
	}

	// 暂停时方向键单步（有选中时只切换选中的单元）
	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
			g.layout.Step(1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
			g.layout.Step(-1)
		}
	}

	g.layout.Update(g.paused)
	return nil
}

// Draw 绘制游戏画面
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{17, 26, 43, 255})
	g.layout.Render(screen)

	ebitenutil.DebugPrintAt(screen, g.footerText(), 4, g.windowHeight-footerHeight)
}

// footerText 底部状态栏（DebugPrint 只支持 ASCII）
func (g *Game) footerText() string {
	text := "PLAY"
	if g.paused {
		text = "PAUSED"
	}
	if cell := g.layout.Selected(); cell != nil {
		text += fmt.Sprintf(" | %s frame %d", cell.GetName(), cell.CurrentFrame()+1)
	}
	if g.showHelp {
		text += " | Click select | Space pause | <-/-> step | G grid | H help | Esc quit"
	}
	return text
}

// Layout 设置窗口布局
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.windowWidth, g.windowHeight
}

func main() {
	flag.Parse()

	settings, err := LoadViewerSettings(*configPath)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	sheet, err := loadSheet(*pngPath)
	if err != nil {
		log.Fatalf("加载精灵表失败: %v", err)
	}

	game := NewGame(settings, sheet)

	ebiten.SetWindowSize(game.windowWidth, game.windowHeight)
	ebiten.SetWindowTitle(settings.Title)
	ebiten.SetTPS(settings.TPS)

	log.Printf("✓ 窗口配置: %dx%d @ %d TPS (动画速度: %d FPS)",
		game.windowWidth, game.windowHeight, settings.TPS, settings.Grid.FPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// loadSheet 读取 PNG 精灵表；path 为空时直接渲染
func loadSheet(path string) (image.Image, error) {
	if path == "" {
		sheet, err := sprite.RenderSheet(context.Background(), sprite.SheetOptions{Workers: 4})
		if err != nil {
			return nil, err
		}
		return sheet, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开 %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("无法解码 %s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() != sprite.SheetWidth || b.Dy() != sprite.SheetHeight {
		return nil, fmt.Errorf("精灵表尺寸为 %dx%d，期望 %dx%d", b.Dx(), b.Dy(), sprite.SheetWidth, sprite.SheetHeight)
	}
	return img, nil
}
