package sprite

// ArmPose 手臂姿势
type ArmPose int

const (
	ArmsDesk        ArmPose = iota // 双手平放在桌上
	ArmsUp                         // 双手举起（庆祝）
	ArmsTypingLeft                 // 左手抬起打字，右手在桌上
	ArmsTypingRight                // 右手抬起打字，左手在桌上
	ArmsSlumped                    // 双臂前伸趴在桌上（睡觉）
)

// String 返回手臂姿势名称
func (a ArmPose) String() string {
	switch a {
	case ArmsDesk:
		return "desk"
	case ArmsUp:
		return "up"
	case ArmsTypingLeft:
		return "typing_l"
	case ArmsTypingRight:
		return "typing_r"
	case ArmsSlumped:
		return "slumped"
	default:
		return "unknown"
	}
}

// EyeMode 眼睛模式
type EyeMode int

const (
	EyesOpen   EyeMode = iota // 睁眼，瞳孔随视线方向偏移
	EyesClosed                // 闭眼
	EyesWide                  // 瞪大眼（紧张），不受视线方向影响
)

// MouthMode 嘴型
type MouthMode int

const (
	MouthSmile MouthMode = iota // 微笑
	MouthOpen                   // 张嘴
	MouthFlat                   // 抿嘴
	MouthNone                   // 不画嘴
)

// drawBody 画坐姿身体
//
// 参数:
//   - offset: 纵向偏移（呼吸/弹跳）
//   - arms: 手臂姿势
func drawBody(c *Canvas, offset int, arms ArmPose) {
	y := offset

	// 卫衣躯干
	c.FillRect(27, 36+y, 10, 8, Hoodie)
	c.FillRect(26, 37+y, 1, 6, HoodieDark)
	c.FillRect(37, 37+y, 1, 6, HoodieDark)
	// 卫衣中线
	c.FillRect(32, 37+y, 1, 7, HoodieDark)

	switch arms {
	case ArmsDesk:
		c.FillRect(24, 42+y, 4, 2, Hoodie)
		c.FillRect(36, 42+y, 4, 2, Hoodie)
		c.FillRect(23, 42+y, 2, 2, Skin)
		c.FillRect(39, 42+y, 2, 2, Skin)
	case ArmsUp:
		c.FillRect(23, 33+y, 3, 2, Hoodie)
		c.FillRect(38, 33+y, 3, 2, Hoodie)
		c.FillRect(22, 31+y, 2, 3, Hoodie)
		c.FillRect(40, 31+y, 2, 3, Hoodie)
		c.FillRect(22, 30+y, 2, 2, Skin)
		c.FillRect(40, 30+y, 2, 2, Skin)
	case ArmsTypingLeft:
		c.FillRect(24, 40+y, 4, 2, Hoodie)
		c.FillRect(36, 42+y, 4, 2, Hoodie)
		c.FillRect(23, 40+y, 2, 2, Skin)
		c.FillRect(39, 42+y, 2, 2, Skin)
	case ArmsTypingRight:
		c.FillRect(24, 42+y, 4, 2, Hoodie)
		c.FillRect(36, 40+y, 4, 2, Hoodie)
		c.FillRect(23, 42+y, 2, 2, Skin)
		c.FillRect(39, 40+y, 2, 2, Skin)
	case ArmsSlumped:
		c.FillRect(22, 43+y, 6, 2, Hoodie)
		c.FillRect(36, 43+y, 6, 2, Hoodie)
		c.FillRect(21, 43+y, 2, 2, Skin)
		c.FillRect(41, 43+y, 2, 2, Skin)
	}
}

// drawHead 画头部（兜帽、脸、眼睛、嘴）
//
// 参数:
//   - offset: 纵向偏移，与身体一致
//   - eyes: 眼睛模式；blink 为 true 时强制按闭眼绘制
//   - look: 视线方向 -1/0/1，仅对睁眼有效
//   - mouth: 嘴型
func drawHead(c *Canvas, offset int, eyes EyeMode, blink bool, look int, mouth MouthMode) {
	y := offset

	// 后脑头发
	c.FillRect(28, 24+y, 8, 3, Hair)

	// 脸
	c.FillRect(28, 26+y, 8, 9, Skin)
	c.FillRect(29, 25+y, 6, 1, Skin)
	c.FillRect(28, 33+y, 8, 2, SkinShadow)

	// 兜帽
	c.FillRect(27, 24+y, 10, 3, Hoodie)
	c.FillRect(26, 26+y, 2, 4, Hoodie)
	c.FillRect(36, 26+y, 2, 4, Hoodie)
	c.FillRect(28, 24+y, 8, 1, HoodieLight)

	// 兜帽下露出的刘海
	c.FillRect(28, 26+y, 2, 2, Hair)
	c.FillRect(34, 26+y, 2, 2, Hair)

	switch {
	case eyes == EyesOpen && !blink:
		c.SetPixel(30+look, 29+y, EyeWhite)
		c.SetPixel(30+look, 30+y, EyePupil)
		c.SetPixel(33+look, 29+y, EyeWhite)
		c.SetPixel(33+look, 30+y, EyePupil)
	case eyes == EyesClosed || blink:
		c.SetPixel(30, 30+y, Outline)
		c.SetPixel(31, 30+y, Outline)
		c.SetPixel(33, 30+y, Outline)
		c.SetPixel(34, 30+y, Outline)
	case eyes == EyesWide:
		c.SetPixel(30, 29+y, EyeWhite)
		c.SetPixel(31, 29+y, EyeWhite)
		c.SetPixel(30, 30+y, EyePupil)
		c.SetPixel(31, 30+y, EyeWhite)
		c.SetPixel(33, 29+y, EyeWhite)
		c.SetPixel(34, 29+y, EyeWhite)
		c.SetPixel(33, 30+y, EyeWhite)
		c.SetPixel(34, 30+y, EyePupil)
	}

	switch mouth {
	case MouthSmile:
		c.SetPixel(31, 32+y, Mouth)
		c.SetPixel(32, 33+y, Mouth)
		c.SetPixel(33, 32+y, Mouth)
	case MouthOpen:
		c.SetPixel(31, 32+y, Mouth)
		c.SetPixel(32, 32+y, MouthInside)
		c.SetPixel(33, 32+y, Mouth)
		c.SetPixel(32, 33+y, Mouth)
	case MouthFlat:
		c.SetPixel(31, 32+y, Mouth)
		c.SetPixel(32, 32+y, Mouth)
		c.SetPixel(33, 32+y, Mouth)
	}
}

// slumpedHeadDrop 睡觉时头部相对正常坐姿下沉的像素数
const slumpedHeadDrop = 5

// drawSlumpedHead 画趴在桌上的头（只露出兜帽和侧脸）
func drawSlumpedHead(c *Canvas) {
	y := slumpedHeadDrop
	c.FillRect(28, 30+y, 8, 6, Hoodie)
	c.FillRect(29, 31+y, 6, 3, SkinShadow)
	c.FillRect(27, 29+y, 10, 2, HoodieLight)
}
