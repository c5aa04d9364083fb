package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/desksprite/pkg/sprite"
)

func renderTestSheet(t *testing.T) *image.NRGBA {
	t.Helper()
	sheet, err := sprite.RenderSheet(context.Background(), sprite.SheetOptions{Workers: 4})
	if err != nil {
		t.Fatalf("RenderSheet() error: %v", err)
	}
	return sheet
}

func testPaths(dir string) Paths {
	return Paths{
		PNG:    filepath.Join(dir, "sprite-sheet.png"),
		Base64: filepath.Join(dir, "sprite-base64.txt"),
	}
}

// TestWriteOutputsRoundTrip PNG 与 base64 文件互相一致，解码后像素不变
func TestWriteOutputsRoundTrip(t *testing.T) {
	sheet := renderTestSheet(t)
	paths := testPaths(t.TempDir())

	result, err := WriteOutputs(sheet, paths, png.BestCompression)
	if err != nil {
		t.Fatalf("WriteOutputs() error: %v", err)
	}

	pngData, err := os.ReadFile(paths.PNG)
	if err != nil {
		t.Fatalf("读取 PNG 失败: %v", err)
	}
	if result.PNGSize != len(pngData) {
		t.Errorf("PNGSize = %d, 实际文件 %d 字节", result.PNGSize, len(pngData))
	}
	if !bytes.HasPrefix(pngData, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("输出文件不是 PNG")
	}

	text, err := os.ReadFile(paths.Base64)
	if err != nil {
		t.Fatalf("读取 base64 失败: %v", err)
	}
	if result.Base64Len != len(text) {
		t.Errorf("Base64Len = %d, 实际 %d 字符", result.Base64Len, len(text))
	}
	if bytes.ContainsAny(text, "\r\n") {
		t.Error("base64 文本不应包含换行")
	}
	// 标准 base64 长度 = 4 * ceil(n / 3)
	if want := 4 * ((len(pngData) + 2) / 3); len(text) != want {
		t.Errorf("base64 长度 = %d, 期望 %d", len(text), want)
	}
	decoded, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil || !bytes.Equal(decoded, pngData) {
		t.Fatalf("base64 解码结果与 PNG 不同 (err=%v)", err)
	}

	img, err := VerifyPair(paths.PNG, paths.Base64, sprite.SheetWidth, sprite.SheetHeight)
	if err != nil {
		t.Fatalf("VerifyPair() error: %v", err)
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("解码结果类型 = %T, 期望 *image.NRGBA", img)
	}
	if !bytes.Equal(nrgba.Pix, sheet.Pix) {
		t.Error("PNG 解码后的像素与渲染结果不同")
	}
}

// TestWriteOutputsOverwrite 重复输出覆盖旧文件，内容完全相同
func TestWriteOutputsOverwrite(t *testing.T) {
	sheet := renderTestSheet(t)
	paths := testPaths(t.TempDir())

	if err := os.WriteFile(paths.Base64, []byte(strings.Repeat("x", 500000)), 0644); err != nil {
		t.Fatalf("写入旧文件失败: %v", err)
	}

	first, err := WriteOutputs(sheet, paths, png.BestCompression)
	if err != nil {
		t.Fatalf("第一次 WriteOutputs() error: %v", err)
	}
	second, err := WriteOutputs(sheet, paths, png.BestCompression)
	if err != nil {
		t.Fatalf("第二次 WriteOutputs() error: %v", err)
	}
	if !bytes.Equal(first.PNGData, second.PNGData) {
		t.Error("两次输出的 PNG 字节不同")
	}

	text, _ := os.ReadFile(paths.Base64)
	if len(text) != second.Base64Len {
		t.Errorf("旧文件没有被完全覆盖: %d 字符, 期望 %d", len(text), second.Base64Len)
	}
}

func TestWriteOutputsCreatesDir(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	paths := testPaths(filepath.Join(t.TempDir(), "nested", "out"))

	if _, err := WriteOutputs(img, paths, png.DefaultCompression); err != nil {
		t.Fatalf("WriteOutputs() error: %v", err)
	}
	if _, err := os.Stat(paths.PNG); err != nil {
		t.Errorf("PNG 文件不存在: %v", err)
	}
}

func TestWriteOutputsUnwritable(t *testing.T) {
	dir := t.TempDir()
	// 用普通文件占据目录位置，使 MkdirAll 失败
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	_, err := WriteOutputs(img, testPaths(filepath.Join(blocker, "out")), png.DefaultCompression)
	if err == nil {
		t.Fatal("WriteOutputs() 期望返回错误")
	}
	if !strings.Contains(err.Error(), "blocker") {
		t.Errorf("错误信息应包含出错路径: %v", err)
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	PrintReport(&buf, &Result{
		PNGPath:    "/tmp/a/sprite-sheet.png",
		Base64Path: "/tmp/a/sprite-base64.txt",
		PNGSize:    12345,
		Base64Len:  16460,
	})

	want := "Sprite sheet saved to /tmp/a/sprite-sheet.png\n" +
		"Base64 saved to /tmp/a/sprite-base64.txt\n" +
		"PNG size: 12345 bytes\n" +
		"Base64 length: 16460 chars\n"
	if buf.String() != want {
		t.Errorf("PrintReport() 输出:\n%s\n期望:\n%s", buf.String(), want)
	}
}

// TestVerifyPairMismatch 篡改 base64 或尺寸不对时应报错
func TestVerifyPairMismatch(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))

	tests := []struct {
		name    string
		mutate  func(p Paths)
		w, h    int
		errPart string
	}{
		{
			name: "base64 内容不同",
			mutate: func(p Paths) {
				os.WriteFile(p.Base64, []byte(EncodeBase64([]byte("not a png"))), 0644)
			},
			w: 8, h: 8,
			errPart: "不一致",
		},
		{
			name: "base64 非法字符",
			mutate: func(p Paths) {
				os.WriteFile(p.Base64, []byte("@@@@"), 0644)
			},
			w: 8, h: 8,
			errPart: "解码失败",
		},
		{
			name:    "尺寸不对",
			mutate:  func(p Paths) {},
			w:       384, h: 384,
			errPart: "尺寸",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := testPaths(t.TempDir())
			if _, err := WriteOutputs(img, paths, png.DefaultCompression); err != nil {
				t.Fatalf("WriteOutputs() error: %v", err)
			}
			tt.mutate(paths)

			_, err := VerifyPair(paths.PNG, paths.Base64, tt.w, tt.h)
			if err == nil {
				t.Fatal("VerifyPair() 期望返回错误")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("错误信息 %q 不包含 %q", err.Error(), tt.errPart)
			}
		})
	}
}
