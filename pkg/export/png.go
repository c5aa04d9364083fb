package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Paths 输出文件路径
type Paths struct {
	PNG    string
	Base64 string
}

// Result 一次输出的结果，用于打印报告和生成记录
type Result struct {
	PNGPath    string
	Base64Path string
	PNGSize    int    // PNG 字节数
	Base64Len  int    // base64 字符数
	PNGData    []byte // 已写入的 PNG 字节
}

// EncodePNG 将图片编码为 PNG 字节
// level 为 png.BestCompression 时相当于"优化"输出
func EncodePNG(img image.Image, level png.CompressionLevel) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("PNG 编码失败: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeBase64 使用标准字母表（带填充）编码，不换行
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// WriteOutputs 编码一次 PNG，依次写入 PNG 文件和 base64 文本文件
//
// 两个文件都会被覆盖；base64 文本是同一份 PNG 字节的编码，没有换行。
// 目标目录不存在时会先创建。
//
// 返回:
//   - *Result: 路径、PNG 字节数和 base64 字符数
//   - error: 编码或写文件失败（包含出错的路径）
func WriteOutputs(img image.Image, paths Paths, level png.CompressionLevel) (*Result, error) {
	data, err := EncodePNG(img, level)
	if err != nil {
		return nil, err
	}

	if err := writeFile(paths.PNG, data); err != nil {
		return nil, err
	}

	encoded := EncodeBase64(data)
	if err := writeFile(paths.Base64, []byte(encoded)); err != nil {
		return nil, err
	}

	return &Result{
		PNGPath:    paths.PNG,
		Base64Path: paths.Base64,
		PNGSize:    len(data),
		Base64Len:  len(encoded),
		PNGData:    data,
	}, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建输出目录失败 %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("写入文件失败 %s: %w", path, err)
	}
	return nil
}

// PrintReport 输出四行生成报告
func PrintReport(w io.Writer, r *Result) {
	fmt.Fprintf(w, "Sprite sheet saved to %s\n", r.PNGPath)
	fmt.Fprintf(w, "Base64 saved to %s\n", r.Base64Path)
	fmt.Fprintf(w, "PNG size: %d bytes\n", r.PNGSize)
	fmt.Fprintf(w, "Base64 length: %d chars\n", r.Base64Len)
}

// VerifyPair 检查 base64 文本解码后与 PNG 文件逐字节相同，且 PNG 尺寸正确
//
// 返回解码后的图片，供调用方进一步比对像素。
func VerifyPair(pngPath, b64Path string, wantWidth, wantHeight int) (image.Image, error) {
	pngData, err := os.ReadFile(pngPath)
	if err != nil {
		return nil, fmt.Errorf("读取 PNG 失败: %w", err)
	}
	text, err := os.ReadFile(b64Path)
	if err != nil {
		return nil, fmt.Errorf("读取 base64 文本失败: %w", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return nil, fmt.Errorf("base64 解码失败 %s: %w", b64Path, err)
	}
	if !bytes.Equal(decoded, pngData) {
		return nil, fmt.Errorf("base64 内容与 PNG 不一致（解码 %d 字节，PNG %d 字节）", len(decoded), len(pngData))
	}

	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("PNG 解码失败 %s: %w", pngPath, err)
	}
	if b := img.Bounds(); b.Dx() != wantWidth || b.Dy() != wantHeight {
		return nil, fmt.Errorf("PNG 尺寸为 %dx%d，期望 %dx%d", b.Dx(), b.Dy(), wantWidth, wantHeight)
	}
	return img, nil
}
