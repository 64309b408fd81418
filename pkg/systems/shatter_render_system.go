package systems

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/decker502/shatter/pkg/components"
	"github.com/decker502/shatter/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var paneFrameColor = color.RGBA{R: 90, G: 110, B: 130, A: 255}

// ShatterRenderSystem 绘制玻璃板、碎片和状态文字
type ShatterRenderSystem struct {
	entityManager *ecs.EntityManager

	whiteImage *ebiten.Image   // DrawTriangles 使用的纯白贴图（延迟创建）
	vertices   []ebiten.Vertex // 复用，避免每帧分配
	indices    []uint16
}

// NewShatterRenderSystem 创建渲染系统
func NewShatterRenderSystem(em *ecs.EntityManager) *ShatterRenderSystem {
	return &ShatterRenderSystem{
		entityManager: em,
		vertices:      make([]ebiten.Vertex, 0, 4*256),
		indices:       make([]uint16, 0, 6*256),
	}
}

// Draw 绘制所有可见的玻璃板与碎片
func (s *ShatterRenderSystem) Draw(screen *ebiten.Image) {
	s.drawPanes(screen)
	s.drawShards(screen)
	s.drawStatus(screen)
}

func (s *ShatterRenderSystem) drawPanes(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.PaneComponent, *components.PositionComponent](s.entityManager) {
		pane, _ := ecs.GetComponent[*components.PaneComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !pane.Visible {
			continue
		}

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(pane.Width), float32(pane.Height)
		vector.DrawFilledRect(screen, x, y, w, h, pane.Color, true)
		vector.StrokeRect(screen, x, y, w, h, 3, paneFrameColor, true)
	}
}

func (s *ShatterRenderSystem) drawShards(screen *ebiten.Image) {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]

	for _, id := range ecs.GetEntitiesWith2[*components.ShardComponent, *components.PositionComponent](s.entityManager) {
		shard, _ := ecs.GetComponent[*components.ShardComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		// uint16 索引上限
		if len(s.vertices)+4 > math.MaxUint16 {
			s.flushShards(screen)
		}
		s.vertices, s.indices = appendShardQuad(s.vertices, s.indices, pos.X, pos.Y, shard)
	}

	s.flushShards(screen)
}

func (s *ShatterRenderSystem) flushShards(screen *ebiten.Image) {
	if len(s.vertices) == 0 {
		return
	}
	if s.whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	screen.DrawTriangles(s.vertices, s.indices, s.whiteImage, op)

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}

func (s *ShatterRenderSystem) drawStatus(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ShatterControllerComponent](s.entityManager) {
		ctrl, _ := ecs.GetComponent[*components.ShatterControllerComponent](s.entityManager, id)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("State: %s\nLeft click: shatter  Right click: reset\nM: sound  F11: fullscreen", ctrl.StateName()))
		return
	}
}

// appendShardQuad 为碎片生成 4 个顶点和 6 个索引（两个三角形）
//
// 顶点顺序：左上、右上、左下、右下，围绕碎片中心 (cx, cy) 旋转 shard.Rotation 度。
func appendShardQuad(vs []ebiten.Vertex, is []uint16, cx, cy float64, shard *components.ShardComponent) ([]ebiten.Vertex, []uint16) {
	rad := shard.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	hw, hh := shard.Width/2, shard.Height/2

	r := float32(shard.Color.R) / 255
	g := float32(shard.Color.G) / 255
	b := float32(shard.Color.B) / 255
	a := float32(shard.Color.A) / 255

	base := uint16(len(vs))
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {-hw, hh}, {hw, hh}}
	for _, c := range corners {
		x := cx + c[0]*cos - c[1]*sin
		y := cy + c[0]*sin + c[1]*cos
		// color.RGBA 为预乘 alpha，绘制时使用 ColorScaleModePremultipliedAlpha
		vs = append(vs, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	is = append(is,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
	return vs, is
}
