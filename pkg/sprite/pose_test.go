package sprite

import "testing"

func TestStateNames(t *testing.T) {
	want := []string{"idle", "working", "sleeping", "celebrating", "worried", "warmup"}
	states := AllStates()
	if len(states) != Rows {
		t.Fatalf("AllStates() 返回 %d 个状态, 期望 %d", len(states), Rows)
	}
	for i, s := range states {
		if int(s) != i {
			t.Errorf("AllStates()[%d] = %d", i, int(s))
		}
		if s.String() != want[i] {
			t.Errorf("State(%d).String() = %q, 期望 %q", i, s.String(), want[i])
		}
		parsed, err := ParseState(want[i])
		if err != nil || parsed != s {
			t.Errorf("ParseState(%q) = (%v, %v), 期望 %v", want[i], parsed, err, s)
		}
	}

	if _, err := ParseState("dancing"); err == nil {
		t.Error("ParseState(\"dancing\") 应该返回错误")
	}
	if State(6).Valid() || State(-1).Valid() {
		t.Error("越界状态不应 Valid")
	}
}

// TestIdlePose 待机状态：偏移与眨眼各自按本行的表查找
func TestIdlePose(t *testing.T) {
	tests := []struct {
		col    int
		offset int
		blink  bool
		look   int
		arms   ArmPose
	}{
		{0, 0, false, 0, ArmsDesk},
		{1, 0, false, 0, ArmsDesk},
		{2, -1, false, 1, ArmsTypingRight},
		{3, -1, true, 0, ArmsDesk},
		{4, 0, false, -1, ArmsDesk},
		{5, 0, false, 0, ArmsDesk},
	}

	for _, tt := range tests {
		p := PoseFor(StateIdle, tt.col)
		if p.Offset != tt.offset || p.Blink != tt.blink || p.Look != tt.look || p.Arms != tt.arms {
			t.Errorf("idle 第 %d 帧 = {Offset:%d Blink:%v Look:%d Arms:%v}, 期望 {%d %v %d %v}",
				tt.col, p.Offset, p.Blink, p.Look, p.Arms, tt.offset, tt.blink, tt.look, tt.arms)
		}
		if p.Eyes != EyesOpen || p.Mouth != MouthSmile {
			t.Errorf("idle 第 %d 帧应睁眼微笑, got eyes=%v mouth=%v", tt.col, p.Eyes, p.Mouth)
		}
	}
}

func TestWorkingPose(t *testing.T) {
	for col := 0; col < Columns; col++ {
		p := PoseFor(StateWorking, col)

		wantArms := ArmsTypingLeft
		if col%2 == 1 {
			wantArms = ArmsTypingRight
		}
		if p.Arms != wantArms {
			t.Errorf("working 第 %d 帧 Arms = %v, 期望 %v", col, p.Arms, wantArms)
		}

		wantFlicker := FlickerNormal
		if col == 2 || col == 5 {
			wantFlicker = FlickerOn
		}
		if p.Flicker != wantFlicker {
			t.Errorf("working 第 %d 帧 Flicker = %v, 期望 %v", col, p.Flicker, wantFlicker)
		}
		if p.Blink != (col == 4) {
			t.Errorf("working 第 %d 帧 Blink = %v", col, p.Blink)
		}
		if p.Offset != 0 {
			t.Errorf("working 第 %d 帧 Offset = %d, 期望 0", col, p.Offset)
		}
	}
}

func TestSleepingPose(t *testing.T) {
	for col := 0; col < Columns; col++ {
		p := PoseFor(StateSleeping, col)
		if p.Flicker != FlickerOff {
			t.Errorf("sleeping 第 %d 帧显示器应关闭", col)
		}
		if p.Head != HeadSlumped || p.Arms != ArmsSlumped || p.Offset != 1 {
			t.Errorf("sleeping 第 %d 帧 = %+v", col, p)
		}
		if p.Overlay != OverlaySleep {
			t.Errorf("sleeping 第 %d 帧 Overlay = %v, 期望 OverlaySleep", col, p.Overlay)
		}
	}
}

func TestCelebratingPose(t *testing.T) {
	offsets := []int{0, -1, -2, -1, 0, -1}
	for col := 0; col < Columns; col++ {
		p := PoseFor(StateCelebrating, col)
		if p.Offset != offsets[col] {
			t.Errorf("celebrating 第 %d 帧 Offset = %d, 期望 %d", col, p.Offset, offsets[col])
		}
		armsUp := col >= 1 && col <= 4
		if (p.Arms == ArmsUp) != armsUp {
			t.Errorf("celebrating 第 %d 帧 Arms = %v", col, p.Arms)
		}
		mouthOpen := col >= 1 && col <= 3
		if (p.Mouth == MouthOpen) != mouthOpen {
			t.Errorf("celebrating 第 %d 帧 Mouth = %v", col, p.Mouth)
		}
		if p.LeftGlow != MonitorGreen || p.RightGlow != MonitorGreen {
			t.Errorf("celebrating 第 %d 帧两台显示器都应为绿色", col)
		}
		if p.Overlay != OverlaySparkles {
			t.Errorf("celebrating 第 %d 帧 Overlay = %v", col, p.Overlay)
		}
	}
}

// TestWorriedPoseRowConstant 紧张状态：眼睛和嘴型整行不变
func TestWorriedPoseRowConstant(t *testing.T) {
	arms := []ArmPose{ArmsTypingLeft, ArmsDesk, ArmsTypingRight, ArmsDesk, ArmsTypingLeft, ArmsTypingRight}
	for col := 0; col < Columns; col++ {
		p := PoseFor(StateWorried, col)
		if p.Eyes != EyesWide {
			t.Errorf("worried 第 %d 帧 Eyes = %v, 期望 EyesWide", col, p.Eyes)
		}
		if p.Mouth != MouthFlat {
			t.Errorf("worried 第 %d 帧 Mouth = %v, 期望 MouthFlat", col, p.Mouth)
		}
		if p.Arms != arms[col] {
			t.Errorf("worried 第 %d 帧 Arms = %v, 期望 %v", col, p.Arms, arms[col])
		}
		if (p.Flicker == FlickerOn) != (col%2 == 1) {
			t.Errorf("worried 第 %d 帧 Flicker = %v", col, p.Flicker)
		}
		if p.LeftGlow != MonitorRed || p.RightGlow != MonitorRed {
			t.Errorf("worried 第 %d 帧两台显示器都应为红色", col)
		}
	}
}

func TestWarmupPose(t *testing.T) {
	tests := []struct {
		col       int
		flicker   FlickerMode
		bootLevel int
		offset    int
		eyes      EyeMode
		mouth     MouthMode
		look      int
		arms      ArmPose
	}{
		{0, FlickerOff, 0, 0, EyesClosed, MouthFlat, 0, ArmsDesk},
		{1, FlickerOff, 0, -1, EyesOpen, MouthOpen, 0, ArmsDesk},
		{2, FlickerNormal, 1, 0, EyesOpen, MouthSmile, -1, ArmsDesk},
		{3, FlickerNormal, 2, 0, EyesOpen, MouthSmile, 1, ArmsDesk},
		{4, FlickerNormal, 0, 0, EyesOpen, MouthSmile, 0, ArmsDesk},
		{5, FlickerNormal, 0, 0, EyesOpen, MouthSmile, 0, ArmsTypingLeft},
	}

	for _, tt := range tests {
		p := PoseFor(StateWarmup, tt.col)
		if !p.MonitorsOverChair {
			t.Errorf("warmup 第 %d 帧显示器应画在椅子之后", tt.col)
		}
		if p.Flicker != tt.flicker || p.BootLevel != tt.bootLevel || p.Offset != tt.offset ||
			p.Eyes != tt.eyes || p.Mouth != tt.mouth || p.Look != tt.look || p.Arms != tt.arms {
			t.Errorf("warmup 第 %d 帧 = %+v, 期望 %+v", tt.col, p, tt)
		}
	}
}

// TestOnlyWarmupLayersMonitorsOverChair 其他状态保持 桌子→显示器→椅子 的顺序
func TestOnlyWarmupLayersMonitorsOverChair(t *testing.T) {
	for _, s := range AllStates() {
		for col := 0; col < Columns; col++ {
			if PoseFor(s, col).MonitorsOverChair != (s == StateWarmup) {
				t.Errorf("%s 第 %d 帧 MonitorsOverChair 不正确", s, col)
			}
		}
	}
}
