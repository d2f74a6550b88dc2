package game

import (
	"github.com/lixenwraith/pong/engine"
)

// StatusLine joins the key legend and frontend controls, flagging missing or muted audio
func StatusLine(legend, controls string, player engine.AudioPlayer) string {
	s := legend + "  " + controls
	switch {
	case player == nil:
		s += "  [no audio]"
	case player.IsMuted():
		s += "  [muted]"
	}
	return s
}
