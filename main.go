// main.go - 桌面助手精灵表生成器
// 程序化绘制 6 个动画状态 x 6 帧（64x64）的像素风精灵表，
// 输出 384x384 PNG 以及同一份 PNG 的 base64 文本
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/decker502/desksprite/pkg/config"
	"github.com/decker502/desksprite/pkg/export"
	"github.com/decker502/desksprite/pkg/sprite"
	"github.com/decker502/desksprite/pkg/utils"
)

var (
	configPath = flag.String("config", "spritegen.yaml", "配置文件路径（不存在时使用默认配置）")
	outDir     = flag.String("out", "", "输出目录（覆盖配置文件）")
	workers    = flag.Int("workers", -1, "并行渲染协程数（-1 表示使用配置文件）")
	preview    = flag.Bool("preview", false, "为每个动画状态输出 GIF 预览")
	record     = flag.Bool("record", false, "在用户数据目录记录本次生成摘要，并与上次比较")
	asciiFrame = flag.String("ascii", "", "以字符画打印一帧后退出，格式 row,col（例如 0,3）")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	applyFlags(cfg)

	if *asciiFrame != "" {
		if err := printASCIIFrame(*asciiFrame); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *verbose {
		log.Printf("[Main] 配置: %s", *configPath)
		log.Printf("[Main] 渲染协程数: %d", cfg.Render.Workers)
	}

	start := time.Now()
	sheet, err := sprite.RenderSheet(context.Background(), sprite.SheetOptions{
		Workers: cfg.Render.Workers,
		Verbose: *verbose,
	})
	if err != nil {
		log.Fatalf("渲染精灵表失败: %v", err)
	}
	if *verbose {
		log.Printf("[Main] ✓ 渲染完成 %d 帧 (%v)", sprite.FrameCount, time.Since(start))
	}

	pngPath, b64Path, err := cfg.Output.Paths()
	if err != nil {
		log.Fatal(err)
	}
	level, err := cfg.Output.CompressionLevel()
	if err != nil {
		log.Fatal(err)
	}

	result, err := export.WriteOutputs(sheet, export.Paths{PNG: pngPath, Base64: b64Path}, level)
	if err != nil {
		log.Fatalf("输出失败: %v", err)
	}

	if cfg.Preview.Enabled {
		writePreviews(cfg, sheet, filepath.Dir(pngPath))
	}
	if cfg.Record.Enabled {
		recordGeneration(cfg.Record.AppName, result)
	}

	export.PrintReport(os.Stdout, result)
}

// applyFlags 命令行参数覆盖配置文件
func applyFlags(cfg *config.GeneratorConfig) {
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *workers >= 0 {
		cfg.Render.Workers = *workers
	}
	if *preview {
		cfg.Preview.Enabled = true
	}
	if *record {
		cfg.Record.Enabled = true
	}
}

// printASCIIFrame 渲染单帧并以字符画输出
func printASCIIFrame(arg string) error {
	row, col, err := parseRowCol(arg)
	if err != nil {
		return err
	}
	frame, err := sprite.RenderFrameChecked(row, col)
	if err != nil {
		return err
	}

	fmt.Printf("%s 第 %d 帧:\n", sprite.State(row), col)
	for _, line := range utils.ASCIIPreview(frame.Image(), utils.ASCIIOptions{DoubleWidth: true}) {
		fmt.Println(line)
	}
	return nil
}

// parseRowCol 解析 "row,col"；row 也可以是状态名，例如 "sleeping,2"
func parseRowCol(s string) (row, col int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("-ascii 格式应为 row,col: %q", s)
	}

	rowText := strings.TrimSpace(parts[0])
	if row, err = strconv.Atoi(rowText); err != nil {
		state, perr := sprite.ParseState(rowText)
		if perr != nil {
			return 0, 0, fmt.Errorf("-ascii 行无效: %w", perr)
		}
		row = int(state)
	}
	if col, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("-ascii 列无效: %w", err)
	}
	return row, col, nil
}

// writePreviews 输出 GIF 预览；相对的预览目录以 PNG 所在目录为基准
func writePreviews(cfg *config.GeneratorConfig, sheet *image.NRGBA, baseDir string) {
	bg, err := config.ParseHexColor(cfg.Preview.Background)
	if err != nil {
		log.Fatal(err)
	}

	dir := cfg.Preview.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(baseDir, dir)
	}

	if _, err := export.WriteRowPreviews(sheet, export.PreviewOptions{
		Dir:        dir,
		Scale:      cfg.Preview.Scale,
		FPS:        cfg.Preview.FPS,
		Background: bg,
	}); err != nil {
		log.Fatalf("输出预览失败: %v", err)
	}
}

// recordGeneration 与上次生成结果比较并保存记录
// 记录失败不影响生成结果，只输出警告
func recordGeneration(appName string, result *export.Result) {
	store, err := export.OpenRecordStore(appName)
	if err != nil {
		log.Printf("[Record] Warning: %v (skipping record)", err)
		return
	}

	change, prev, err := store.Compare(export.NewRecord(result, time.Now()))
	if err != nil {
		log.Printf("[Record] Warning: %v", err)
	}

	switch change {
	case export.ChangeUnchanged:
		log.Printf("[Record] ✓ 精灵表与上次生成相同 (%s)", prev.GeneratedAt.Format(time.RFC3339))
	case export.ChangeChanged:
		log.Printf("[Record] 精灵表已变化（上次 %d 字节，本次 %d 字节）", prev.PNGSize, result.PNGSize)
	default:
		log.Printf("[Record] 首次生成")
	}
}
