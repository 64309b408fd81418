package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEdgeDetector(t *testing.T) {
	var d EdgeDetector

	levels := []bool{false, true, true, true, false, true, false, false}
	want := []bool{false, true, false, false, false, true, false, false}

	for i, down := range levels {
		if got := d.Update(down); got != want[i] {
			t.Errorf("tick %d: level=%v, got edge=%v, want %v", i, down, got, want[i])
		}
		if d.IsDown() != down {
			t.Errorf("tick %d: IsDown()=%v, want %v", i, d.IsDown(), down)
		}
	}
}

func TestLevelSourceHeldButtonFiresOnce(t *testing.T) {
	primaryDown := false
	secondaryDown := false
	src := NewLevelSource(
		func() bool { return primaryDown },
		func() bool { return secondaryDown },
	)

	primaryDown = true
	edges := 0
	for i := 0; i < 10; i++ {
		src.Poll()
		if src.PrimaryJustPressed() {
			edges++
		}
		if src.SecondaryJustPressed() {
			t.Fatalf("tick %d: unexpected secondary edge", i)
		}
	}
	if edges != 1 {
		t.Errorf("Expected 1 primary edge while held for 10 ticks, got %d", edges)
	}

	// 松开后再次按下会产生新边沿
	primaryDown = false
	src.Poll()
	primaryDown = true
	src.Poll()
	if !src.PrimaryJustPressed() {
		t.Error("Expected a new primary edge after release and press")
	}
}

func TestLevelSourceNilFuncs(t *testing.T) {
	src := NewLevelSource(nil, nil)
	src.Poll()
	if src.PrimaryJustPressed() || src.SecondaryJustPressed() {
		t.Error("nil level functions should never produce edges")
	}
}

func TestAnySource(t *testing.T) {
	a := NewScriptedSource(false, Frame{Primary: true}, Frame{})
	b := NewScriptedSource(false, Frame{}, Frame{Secondary: true})
	src := AnySource{a, b}

	src.Poll()
	if !src.PrimaryJustPressed() || src.SecondaryJustPressed() {
		t.Errorf("tick 1: got primary=%v secondary=%v", src.PrimaryJustPressed(), src.SecondaryJustPressed())
	}

	src.Poll()
	if src.PrimaryJustPressed() || !src.SecondaryJustPressed() {
		t.Errorf("tick 2: got primary=%v secondary=%v", src.PrimaryJustPressed(), src.SecondaryJustPressed())
	}
}

func TestScriptedSource(t *testing.T) {
	src := NewScriptedSource(false, Frame{}, Frame{Primary: true}, Frame{Secondary: true})

	// 第一次 Poll 之前没有输入
	if src.PrimaryJustPressed() || src.SecondaryJustPressed() {
		t.Error("No input expected before first Poll")
	}

	want := []Frame{{}, {Primary: true}, {Secondary: true}, {}, {}}
	for i, w := range want {
		src.Poll()
		got := Frame{Primary: src.PrimaryJustPressed(), Secondary: src.SecondaryJustPressed()}
		if got != w {
			t.Errorf("tick %d: got %+v, want %+v", i+1, got, w)
		}
	}
}

func TestScriptedSourceLoop(t *testing.T) {
	src := NewScriptedSource(true, Frame{Primary: true}, Frame{})

	var primaries int
	for i := 0; i < 6; i++ {
		src.Poll()
		if src.PrimaryJustPressed() {
			primaries++
		}
	}
	if primaries != 3 {
		t.Errorf("Expected 3 primary edges over 6 looped ticks, got %d", primaries)
	}

	empty := NewScriptedSource(true)
	empty.Poll()
	if empty.PrimaryJustPressed() {
		t.Error("Empty looping script should produce no input")
	}
}

func TestDemoScript(t *testing.T) {
	src := DemoScript(3)

	var got []Frame
	for i := 0; i < 12; i++ {
		src.Poll()
		got = append(got, Frame{Primary: src.PrimaryJustPressed(), Secondary: src.SecondaryJustPressed()})
	}

	for i, f := range got {
		tick := i + 1
		wantPrimary := tick%6 == 3
		wantSecondary := tick%6 == 0
		if f.Primary != wantPrimary || f.Secondary != wantSecondary {
			t.Errorf("tick %d: got %+v", tick, f)
		}
	}

	if len(DemoScript(0).Frames) != 2 {
		t.Error("DemoScript(0) should clamp interval to 1")
	}
}

func TestParseMouseButton(t *testing.T) {
	tests := []struct {
		name    string
		want    ebiten.MouseButton
		wantErr bool
	}{
		{"left", ebiten.MouseButtonLeft, false},
		{"Right", ebiten.MouseButtonRight, false},
		{" middle ", ebiten.MouseButtonMiddle, false},
		{"back", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMouseButton(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMouseButton(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMouseButton(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseScript(t *testing.T) {
	frames, err := ParseScript(" -, p ,P,s,ps,")
	if err != nil {
		t.Fatalf("ParseScript() error: %v", err)
	}

	want := []Frame{{}, {Primary: true}, {Primary: true}, {Secondary: true}, {Primary: true, Secondary: true}, {}}
	if len(frames) != len(want) {
		t.Fatalf("Expected %d frames, got %d", len(want), len(frames))
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d: got %+v, want %+v", i+1, frames[i], want[i])
		}
	}

	if frames, err := ParseScript(""); err != nil || frames != nil {
		t.Errorf("empty script: got %v, %v", frames, err)
	}
	if _, err := ParseScript("p,x"); err == nil {
		t.Error("Expected error for unknown token")
	}
}
