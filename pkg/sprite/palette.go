package sprite

import "image/color"

// 调色板
// 针对深色仪表盘背景（#111a2b）调亮过的固定配色，所有绘制只使用这些颜色
// 以及由 withAlpha 派生的降低透明度版本
var (
	Transparent = color.NRGBA{0, 0, 0, 0}

	Skin        = color.NRGBA{255, 210, 170, 255}
	SkinShadow  = color.NRGBA{230, 180, 140, 255}
	Hair        = color.NRGBA{90, 60, 40, 255}
	Hoodie      = color.NRGBA{100, 130, 200, 255}
	HoodieDark  = color.NRGBA{75, 100, 170, 255}
	HoodieLight = color.NRGBA{130, 160, 220, 255}

	Desk     = color.NRGBA{160, 120, 80, 255}
	DeskTop  = color.NRGBA{185, 145, 100, 255}
	DeskDark = color.NRGBA{130, 95, 65, 255}

	ChairBack = color.NRGBA{105, 105, 125, 255}

	MonitorFrame  = color.NRGBA{70, 75, 95, 255}
	MonitorScreen = color.NRGBA{30, 45, 75, 255}
	MonitorGreen  = color.NRGBA{16, 220, 150, 255}
	MonitorBlue   = color.NRGBA{80, 150, 255, 255}
	MonitorRed    = color.NRGBA{255, 90, 90, 255}

	EyeWhite    = color.NRGBA{255, 255, 255, 255}
	EyePupil    = color.NRGBA{40, 30, 25, 255}
	Mouth       = color.NRGBA{200, 120, 100, 255}
	MouthInside = color.NRGBA{100, 50, 40, 255}

	Zzz     = color.NRGBA{170, 190, 240, 230}
	Sparkle = color.NRGBA{255, 230, 110, 255}
	Sweat   = color.NRGBA{160, 220, 255, 240}
	Outline = color.NRGBA{50, 40, 35, 255}
)

// withAlpha 返回同 RGB、指定透明度的颜色（用于辉光和淡出效果）
func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
