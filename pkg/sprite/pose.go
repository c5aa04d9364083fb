package sprite

import (
	"fmt"
	"image/color"
)

// State 动画状态，对应精灵表的一行
type State int

const (
	StateIdle        State = iota // 待机：呼吸，偶尔点鼠标
	StateWorking                  // 工作：快速打字，屏幕闪烁
	StateSleeping                 // 睡觉：趴在桌上，Zzz
	StateCelebrating              // 庆祝：举手，星光
	StateWorried                  // 紧张：汗滴，屏幕变红
	StateWarmup                   // 热身：显示器开机，伸懒腰
)

var stateNames = [Rows]string{"idle", "working", "sleeping", "celebrating", "worried", "warmup"}

// AllStates 按行顺序返回全部动画状态
func AllStates() []State {
	return []State{StateIdle, StateWorking, StateSleeping, StateCelebrating, StateWorried, StateWarmup}
}

// String 返回状态名（小写）
func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Valid 报告状态是否在 0~5 范围内
func (s State) Valid() bool {
	return s >= 0 && int(s) < Rows
}

// ParseState 根据名称解析动画状态
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("unknown animation state %q", name)
}

// HeadStyle 头部绘制方式
type HeadStyle int

const (
	HeadUpright HeadStyle = iota // 正常坐姿的头
	HeadSlumped                  // 趴在桌上的头
)

// Pose 某一帧解析后的完整绘制参数
//
// 每个状态都是一张按列索引的常量表，PoseFor 负责查表；
// 帧与帧之间没有共享状态，也没有转换逻辑。
type Pose struct {
	Offset int     // 身体和头的纵向偏移
	Arms   ArmPose // 最终手臂姿势（每帧只画一次身体）

	Head  HeadStyle
	Eyes  EyeMode
	Blink bool
	Look  int // 视线方向 -1/0/1
	Mouth MouthMode

	LeftGlow  color.NRGBA
	RightGlow color.NRGBA
	Flicker   FlickerMode
	// BootLevel > 0 时改画开机中的显示器，级别为 BootLevel-1
	BootLevel int
	// MonitorsOverChair 为 true 时显示器画在椅子之后（warmup 状态）
	MonitorsOverChair bool

	Overlay Overlay
}

// basePose 默认参数：蓝/绿屏正常显示，双手在桌上，睁眼微笑
func basePose() Pose {
	return Pose{
		Arms:      ArmsDesk,
		Head:      HeadUpright,
		Eyes:      EyesOpen,
		Mouth:     MouthSmile,
		LeftGlow:  MonitorBlue,
		RightGlow: MonitorGreen,
		Flicker:   FlickerNormal,
	}
}

// 各状态的逐列常量表
var (
	idleOffsets = [Columns]int{0, 0, -1, -1, 0, 0}
	idleLook    = [Columns]int{0, 0, 1, 0, -1, 0}

	workingArms = [Columns]ArmPose{ArmsTypingLeft, ArmsTypingRight, ArmsTypingLeft, ArmsTypingRight, ArmsTypingLeft, ArmsTypingRight}
	workingLook = [Columns]int{0, 1, 0, -1, 0, 1}

	celebrateOffsets = [Columns]int{0, -1, -2, -1, 0, -1}
	celebrateLook    = [Columns]int{0, 0, 1, -1, 0, 0}

	worriedArms = [Columns]ArmPose{ArmsTypingLeft, ArmsDesk, ArmsTypingRight, ArmsDesk, ArmsTypingLeft, ArmsTypingRight}
	worriedLook = [Columns]int{0, 1, 1, -1, -1, 0}
)

// sleepingBodyOffset 睡觉时身体下沉 1 像素
const sleepingBodyOffset = 1

// PoseFor 查表得到指定状态第 col 帧的绘制参数
// col 必须在 0~5 之间
func PoseFor(state State, col int) Pose {
	p := basePose()

	switch state {
	case StateIdle:
		p.Offset = idleOffsets[col]
		p.Blink = col == 3
		p.Look = idleLook[col]
		// 第 2 帧右手点鼠标
		if col == 2 {
			p.Arms = ArmsTypingRight
		}

	case StateWorking:
		if col == 2 || col == 5 {
			p.Flicker = FlickerOn
		}
		p.Arms = workingArms[col]
		p.Blink = col == 4
		p.Look = workingLook[col]

	case StateSleeping:
		p.Offset = sleepingBodyOffset
		p.Flicker = FlickerOff
		p.Arms = ArmsSlumped
		p.Head = HeadSlumped
		p.Eyes = EyesClosed
		p.Mouth = MouthNone
		p.Overlay = OverlaySleep

	case StateCelebrating:
		p.Offset = celebrateOffsets[col]
		p.LeftGlow = MonitorGreen
		p.RightGlow = MonitorGreen
		if col >= 1 && col <= 4 {
			p.Arms = ArmsUp
		}
		if col >= 1 && col <= 3 {
			p.Mouth = MouthOpen
		}
		p.Look = celebrateLook[col]
		p.Overlay = OverlaySparkles

	case StateWorried:
		p.LeftGlow = MonitorRed
		p.RightGlow = MonitorRed
		if col%2 == 1 {
			p.Flicker = FlickerOn
		}
		p.Arms = worriedArms[col]
		p.Eyes = EyesWide
		p.Mouth = MouthFlat
		p.Look = worriedLook[col]
		p.Overlay = OverlaySweat

	case StateWarmup:
		p.MonitorsOverChair = true
		switch {
		case col < 2:
			// 显示器关闭，伸懒腰
			p.Flicker = FlickerOff
			if col == 1 {
				p.Offset = -1
				p.Mouth = MouthOpen
			} else {
				p.Eyes = EyesClosed
				p.Mouth = MouthFlat
			}
		case col < 4:
			// 左屏开机中
			p.BootLevel = col - 1
			p.Look = 1
			if col == 2 {
				p.Look = -1
			}
		default:
			if col == 5 {
				p.Arms = ArmsTypingLeft
			}
		}
	}

	return p
}
