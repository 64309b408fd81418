package scenes

import (
	"testing"

	"github.com/decker502/shatter/pkg/components"
	"github.com/decker502/shatter/pkg/config"
	"github.com/decker502/shatter/pkg/ecs"
	"github.com/decker502/shatter/pkg/game"
	"github.com/decker502/shatter/pkg/input"
)

const tick = 1.0 / 60.0

func TestNewShatterSceneInvalidOptions(t *testing.T) {
	if _, err := NewShatterScene(ShatterSceneOptions{Input: input.NewScriptedSource(false)}); err == nil {
		t.Error("Expected error for nil config")
	}
	if _, err := NewShatterScene(ShatterSceneOptions{Config: config.DefaultEffectConfig()}); err == nil {
		t.Error("Expected error for nil input")
	}
}

func TestShatterSceneImplementsSceneInterface(t *testing.T) {
	scene, err := NewShatterScene(ShatterSceneOptions{
		Config: config.DefaultEffectConfig(),
		Input:  input.NewScriptedSource(false),
	})
	if err != nil {
		t.Fatalf("NewShatterScene() error: %v", err)
	}
	var _ game.Scene = scene
}

// TestShatterSceneCycle 完整流程：击碎 -> 碎片下落 -> 复原 -> 碎片清理
func TestShatterSceneCycle(t *testing.T) {
	cfg := config.DefaultEffectConfig()
	cfg.Shards.Rows = 2
	cfg.Shards.Cols = 2

	frames := make([]input.Frame, 0, 63)
	frames = append(frames, input.Frame{}, input.Frame{Primary: true})
	for i := 0; i < 60; i++ {
		frames = append(frames, input.Frame{})
	}
	frames = append(frames, input.Frame{Secondary: true})

	scene, err := NewShatterScene(ShatterSceneOptions{
		Config: cfg,
		Input:  input.NewScriptedSource(false, frames...),
		Seed:   7,
	})
	if err != nil {
		t.Fatalf("NewShatterScene() error: %v", err)
	}
	em := scene.EntityManager()

	scene.Update(tick)
	if scene.IsShattered() {
		t.Fatal("tick 1: should be Intact")
	}

	scene.Update(tick)
	if !scene.IsShattered() {
		t.Fatal("tick 2: should be Shattered")
	}
	shards := append([]ecs.EntityID(nil), scene.Pane().Shards()...)
	if len(shards) != 4 {
		t.Fatalf("Expected 4 shards, got %d", len(shards))
	}

	first, _ := ecs.GetComponent[*components.PositionComponent](em, shards[0])
	startY := first.Y
	for i := 0; i < 60; i++ {
		scene.Update(tick)
	}
	if first.Y <= startY {
		t.Errorf("Shard should fall under gravity: startY=%v now=%v", startY, first.Y)
	}

	scene.Update(tick)
	if scene.IsShattered() {
		t.Fatal("After secondary click the scene should be Intact")
	}
	for _, id := range shards {
		if em.IsAlive(id) {
			t.Errorf("Shard %d should be removed after reset", id)
		}
	}
	if !em.IsAlive(scene.Pane().EntityID()) {
		t.Error("Pane entity must survive reset")
	}
}
