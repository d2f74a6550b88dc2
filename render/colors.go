package render

import (
	"github.com/gdamore/tcell/v2"
)

var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)
	RgbForeground = tcell.NewRGBColor(255, 255, 255)
	RgbNet        = tcell.NewRGBColor(90, 90, 90)
	RgbStatus     = tcell.NewRGBColor(160, 160, 160)
)

var (
	styleBase   = tcell.StyleDefault.Background(RgbBackground)
	styleBall   = styleBase.Foreground(RgbForeground)
	stylePaddle = styleBase.Foreground(RgbForeground)
	styleBound  = styleBase.Foreground(RgbForeground)
	styleNet    = styleBase.Foreground(RgbNet)
	styleScore  = styleBase.Foreground(RgbForeground).Bold(true)
	styleStatus = styleBase.Foreground(RgbStatus)
)
