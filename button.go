package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
)

type ButtonState int

const (
	ButtonStateNormal ButtonState = iota
	ButtonStateHover
	ButtonStateDown
)

type BaseButton struct {
	Rect FRectangle

	Disabled bool

	// fires when pressed
	OnPress func()

	State ButtonState

	readyToCallOnPress bool
}

func (b *BaseButton) Update() {
	if b.Disabled {
		b.State = ButtonStateNormal
		b.readyToCallOnPress = false
		return
	}

	pt := CursorFPt()

	inRect := pt.In(b.Rect)

	if inRect {
		if IsMouseButtonJustPressed(eb.MouseButtonLeft) {
			b.readyToCallOnPress = true
		}

		if b.readyToCallOnPress && IsMouseButtonJustReleased(eb.MouseButtonLeft) {
			if b.OnPress != nil {
				b.OnPress()
			}
			b.readyToCallOnPress = false
		}
	} else {
		b.readyToCallOnPress = false
	}

	switch {
	case inRect && IsMouseButtonPressed(eb.MouseButtonLeft) && b.readyToCallOnPress:
		b.State = ButtonStateDown
	case inRect:
		b.State = ButtonStateHover
	default:
		b.State = ButtonStateNormal
	}
}

type TextButton struct {
	BaseButton

	Text string

	// draws the button slightly brighter even when idle
	Highlight bool
}

func NewTextButton(text string, onPress func()) *TextButton {
	b := new(TextButton)

	b.Text = text
	b.OnPress = onPress

	return b
}

func (b *TextButton) Draw(dst *eb.Image) {
	var bgColor color.NRGBA

	switch b.State {
	case ButtonStateDown:
		bgColor = ColorTable[ColorTopUIButtonDown]
	case ButtonStateHover:
		bgColor = ColorTable[ColorTopUIButtonHover]
	default:
		bgColor = ColorTable[ColorTopUIButton]
		if b.Highlight {
			bgColor = ColorTable[ColorTopUIButtonHover]
		}
	}

	DrawFilledRect(dst, b.Rect, bgColor)

	if b.Highlight {
		StrokeRect(dst, b.Rect, 2, ColorTable[ColorTopUIText])
	}

	DrawTextCentered(dst, b.Text, b.Rect, 0.5, ColorTable[ColorTopUIText])
}
