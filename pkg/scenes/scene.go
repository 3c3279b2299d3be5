package scenes

import (
	"github.com/decker502/thunder/pkg/game"
)

// Scene is a type alias for game.Scene so scene implementations can be
// referenced without importing the game package.
type Scene = game.Scene
