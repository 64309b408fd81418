package input

import (
	"fmt"
	"strings"
)

// Frame 一帧的输入边沿
type Frame struct {
	Primary   bool
	Secondary bool
}

// ScriptedSource 按预设序列逐帧回放输入边沿
//
// 序列播放完毕后：Loop 为 true 时从头开始，否则之后每帧都没有输入。
type ScriptedSource struct {
	Frames []Frame
	Loop   bool

	next    int
	current Frame
}

// NewScriptedSource 创建回放输入源
func NewScriptedSource(loop bool, frames ...Frame) *ScriptedSource {
	return &ScriptedSource{
		Frames: frames,
		Loop:   loop,
	}
}

// Poll 前进一帧
func (s *ScriptedSource) Poll() {
	if s.next >= len(s.Frames) {
		if !s.Loop || len(s.Frames) == 0 {
			s.current = Frame{}
			return
		}
		s.next = 0
	}
	s.current = s.Frames[s.next]
	s.next++
}

// PrimaryJustPressed 实现 Source
func (s *ScriptedSource) PrimaryJustPressed() bool { return s.current.Primary }

// SecondaryJustPressed 实现 Source
func (s *ScriptedSource) SecondaryJustPressed() bool { return s.current.Secondary }

// DemoScript 生成自动演示序列：每隔 interval 帧交替一次主键与副键
//
// interval 小于 1 时按 1 处理。
func DemoScript(interval int) *ScriptedSource {
	if interval < 1 {
		interval = 1
	}
	frames := make([]Frame, 2*interval)
	frames[interval-1] = Frame{Primary: true}
	frames[2*interval-1] = Frame{Secondary: true}
	return NewScriptedSource(true, frames...)
}

// ParseScript 解析逗号分隔的输入脚本
//
// 每个元素对应一帧："-" 无输入，"p" 主键，"s" 副键，"ps" 两者同时。
// 例如 "-,p,p,s" 对应四帧。
func ParseScript(script string) ([]Frame, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	tokens := strings.Split(script, ",")
	frames := make([]Frame, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		var f Frame
		switch tok {
		case "-", "":
		case "p":
			f.Primary = true
		case "s":
			f.Secondary = true
		case "ps", "sp":
			f.Primary, f.Secondary = true, true
		default:
			return nil, fmt.Errorf("frame %d: unknown token %q", i+1, tok)
		}
		frames = append(frames, f)
	}
	return frames, nil
}
