package scenes

import (
	"github.com/decker502/shatter/pkg/game"
)

// Scene 是 game.Scene 的别名
type Scene = game.Scene
