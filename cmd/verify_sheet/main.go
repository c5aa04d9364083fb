// verify_sheet - 精灵表输出验证程序
// 检查 PNG 与 base64 文本是否一致，并逐帧与渲染器的结果比对
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/decker502/desksprite/pkg/config"
	"github.com/decker502/desksprite/pkg/export"
	"github.com/decker502/desksprite/pkg/sprite"
)

type checkResult struct {
	name    string
	passed  bool
	message string
}

var results []checkResult

func addResult(name string, passed bool, message string) {
	results = append(results, checkResult{name: name, passed: passed, message: message})
	status := "❌"
	if passed {
		status = "✅"
	}
	fmt.Printf("%s %-24s %s\n", status, name, message)
}

func main() {
	defaultPNG, defaultB64, err := config.NewDefault().Output.Paths()
	if err != nil {
		log.Fatal(err)
	}

	pngPath := flag.String("png", defaultPNG, "PNG 文件路径")
	b64Path := flag.String("b64", defaultB64, "base64 文本文件路径")
	flag.Parse()

	img, err := export.VerifyPair(*pngPath, *b64Path, sprite.SheetWidth, sprite.SheetHeight)
	if err != nil {
		addResult("PNG / base64", false, err.Error())
		os.Exit(1)
	}
	addResult("PNG / base64", true, fmt.Sprintf("一致，%dx%d", sprite.SheetWidth, sprite.SheetHeight))

	mismatched := 0
	for _, state := range sprite.AllStates() {
		for col := 0; col < sprite.Columns; col++ {
			if x, y, ok := compareFrame(img, int(state), col); !ok {
				mismatched++
				addResult(fmt.Sprintf("%s[%d]", state, col), false, fmt.Sprintf("像素 (%d, %d) 不一致", x, y))
			}
		}
	}
	if mismatched == 0 {
		addResult("逐帧比对", true, fmt.Sprintf("%d 帧全部一致", sprite.FrameCount))
	}

	failed := 0
	for _, r := range results {
		if !r.passed {
			failed++
		}
	}
	if failed > 0 {
		fmt.Printf("\n%d 项检查失败\n", failed)
		os.Exit(1)
	}
}

// compareFrame 比较精灵表中 (row, col) 格子与 RenderFrame 的结果
// 返回第一个不同像素的帧内坐标
func compareFrame(sheet image.Image, row, col int) (x, y int, ok bool) {
	frame := sprite.RenderFrame(row, col)
	origin := sprite.FrameRect(row, col).Min

	for y = 0; y < sprite.FrameHeight; y++ {
		for x = 0; x < sprite.FrameWidth; x++ {
			got := color.NRGBAModel.Convert(sheet.At(origin.X+x, origin.Y+y)).(color.NRGBA)
			if got != frame.NRGBAAt(x, y) {
				return x, y, false
			}
		}
	}
	return 0, 0, true
}
