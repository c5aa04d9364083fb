package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GeneratorConfig 精灵表生成器配置
type GeneratorConfig struct {
	Output  OutputConfig  `yaml:"output"`
	Render  RenderConfig  `yaml:"render"`
	Preview PreviewConfig `yaml:"preview"`
	Record  RecordConfig  `yaml:"record"`
	Viewer  ViewerConfig  `yaml:"viewer"`
}

// OutputConfig 输出文件配置
type OutputConfig struct {
	Dir         string `yaml:"dir"`         // 输出目录，空表示可执行文件所在目录
	PNG         string `yaml:"png"`         // PNG 文件名
	Base64      string `yaml:"base64"`      // base64 文本文件名
	Compression string `yaml:"compression"` // default | none | speed | best
}

// RenderConfig 渲染配置
type RenderConfig struct {
	Workers int `yaml:"workers"` // 并行渲染协程数，0 表示顺序渲染
}

// PreviewConfig 每个动画状态的 GIF 预览
type PreviewConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Dir        string `yaml:"dir"`        // 相对于输出目录
	Scale      int    `yaml:"scale"`      // 整数放大倍数（最近邻）
	FPS        int    `yaml:"fps"`        // 播放帧率
	Background string `yaml:"background"` // 预览底色 "#rrggbb"
}

// RecordConfig 生成记录（用于判断精灵表是否变化）
// 默认关闭：默认运行除两个输出文件外不写任何文件
type RecordConfig struct {
	Enabled bool   `yaml:"enabled"`
	AppName string `yaml:"app_name"` // gdata 存储使用的应用名
}

// ViewerConfig sheet_viewer 窗口配置
type ViewerConfig struct {
	Columns int `yaml:"columns"` // 每行显示几个动画状态
	Scale   int `yaml:"scale"`   // 放大倍数
	Padding int `yaml:"padding"` // 单元格间距
	FPS     int `yaml:"fps"`     // 动画帧率
}

// 默认值
const (
	DefaultPNGName     = "sprite-sheet.png"
	DefaultBase64Name  = "sprite-base64.txt"
	DefaultCompression = "best"
	DefaultBackground  = "#111a2b" // 仪表盘深色背景
)

// NewDefault 返回默认配置
// 配置文件不存在时使用这份配置，行为与无参数运行完全一致
func NewDefault() *GeneratorConfig {
	cfg := &GeneratorConfig{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig 从 YAML 文件加载配置
//
// 文件不存在时返回默认配置（不算错误）；
// 文件存在但格式错误或取值非法时返回错误，避免拼写错误被静默忽略。
func LoadConfig(path string) (*GeneratorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewDefault(), nil
		}
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig 解析 YAML 配置内容并填充默认值
func ParseConfig(data []byte) (*GeneratorConfig, error) {
	cfg := &GeneratorConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults 为未设置的字段填充默认值
func (c *GeneratorConfig) applyDefaults() {
	if c.Output.PNG == "" {
		c.Output.PNG = DefaultPNGName
	}
	if c.Output.Base64 == "" {
		c.Output.Base64 = DefaultBase64Name
	}
	if c.Output.Compression == "" {
		c.Output.Compression = DefaultCompression
	}

	if c.Preview.Dir == "" {
		c.Preview.Dir = "preview"
	}
	if c.Preview.Scale == 0 {
		c.Preview.Scale = 4
	}
	if c.Preview.FPS == 0 {
		c.Preview.FPS = 6
	}
	if c.Preview.Background == "" {
		c.Preview.Background = DefaultBackground
	}

	if c.Record.AppName == "" {
		c.Record.AppName = "desksprite"
	}

	if c.Viewer.Columns == 0 {
		c.Viewer.Columns = 3
	}
	if c.Viewer.Scale == 0 {
		c.Viewer.Scale = 3
	}
	if c.Viewer.Padding == 0 {
		c.Viewer.Padding = 10
	}
	if c.Viewer.FPS == 0 {
		c.Viewer.FPS = 6
	}
}

// Validate 检查取值是否合法
func (c *GeneratorConfig) Validate() error {
	if _, err := c.Output.CompressionLevel(); err != nil {
		return err
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("render.workers 不能为负数: %d", c.Render.Workers)
	}
	if c.Preview.Scale < 1 {
		return fmt.Errorf("preview.scale 必须 >= 1: %d", c.Preview.Scale)
	}
	if c.Preview.FPS < 1 || c.Preview.FPS > 100 {
		return fmt.Errorf("preview.fps 必须在 1~100 之间: %d", c.Preview.FPS)
	}
	if _, err := ParseHexColor(c.Preview.Background); err != nil {
		return fmt.Errorf("preview.background: %w", err)
	}
	if c.Viewer.Columns < 1 || c.Viewer.Scale < 1 || c.Viewer.FPS < 1 || c.Viewer.Padding < 0 {
		return fmt.Errorf("viewer 配置非法: %+v", c.Viewer)
	}
	return nil
}

// CompressionLevel 将配置字符串转换为 png.CompressionLevel
func (o OutputConfig) CompressionLevel() (png.CompressionLevel, error) {
	switch strings.ToLower(o.Compression) {
	case "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best", "":
		return png.BestCompression, nil
	}
	return 0, fmt.Errorf("未知的 output.compression: %q", o.Compression)
}

// ResolveDir 返回实际输出目录
// Dir 为空时使用可执行文件所在目录；
// go run 编译出的临时可执行文件退出后会被删除，这时改用当前工作目录
func (o OutputConfig) ResolveDir() (string, error) {
	if o.Dir != "" {
		return o.Dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("无法定位可执行文件: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("无法获取工作目录: %w", err)
	}
	return outputDirFor(filepath.Dir(exe), os.TempDir(), wd), nil
}

// outputDirFor 可执行文件位于临时目录（或 go-build* 目录）时返回 workDir，否则返回 exeDir
func outputDirFor(exeDir, tempDir, workDir string) string {
	exeDir = filepath.Clean(exeDir)
	if tempDir != "" {
		if rel, err := filepath.Rel(filepath.Clean(tempDir), exeDir); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return workDir
		}
	}
	for _, part := range strings.Split(filepath.ToSlash(exeDir), "/") {
		if strings.HasPrefix(part, "go-build") {
			return workDir
		}
	}
	return exeDir
}

// Paths 返回 PNG 与 base64 文件的完整路径
func (o OutputConfig) Paths() (pngPath, base64Path string, err error) {
	dir, err := o.ResolveDir()
	if err != nil {
		return "", "", err
	}
	return filepath.Join(dir, o.PNG), filepath.Join(dir, o.Base64), nil
}

// ParseHexColor 解析 "#rrggbb" 或 "#rrggbbaa" 格式的颜色
func ParseHexColor(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return color.NRGBA{}, fmt.Errorf("非法颜色 %q: 应为 #rrggbb 或 #rrggbbaa", s)
	}
	// 每个字符都必须是十六进制数字
	b, err := hex.DecodeString(s[1:])
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("非法颜色 %q: %w", s, err)
	}

	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 255}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}
