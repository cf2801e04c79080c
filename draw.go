package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

func DrawFilledRect(
	dst *eb.Image,
	rect FRectangle,
	clr color.Color,
) {
	ebv.DrawFilledRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		clr,
		true,
	)
}

func StrokeRect(
	dst *eb.Image,
	rect FRectangle,
	strokeWidth float64,
	clr color.Color,
) {
	ebv.StrokeRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		f32(strokeWidth),
		clr,
		true,
	)
}

func DrawFilledCircle(
	dst *eb.Image,
	x, y, r float64,
	clr color.Color,
) {
	ebv.DrawFilledCircle(
		dst, f32(x), f32(y), f32(r), clr, true)
}

func StrokeLine(
	dst *eb.Image,
	x0, y0, x1, y1 float64,
	strokeWidth float64,
	clr color.Color,
) {
	ebv.StrokeLine(
		dst, f32(x0), f32(y0), f32(x1), f32(y1), f32(strokeWidth), clr, true)
}

// =====================
// text
// =====================

// ClearFace is the one face the whole ui uses.
var ClearFace ebt.Face = ebt.NewGoXFace(basicfont.Face7x13)

func FontSize(face ebt.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent
}

func FontLineSpacing(face ebt.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

type DrawTextOptions struct {
	GeoM       eb.GeoM
	ColorScale eb.ColorScale

	LayoutOptions ebt.LayoutOptions
}

func DrawText(
	dst *eb.Image,
	text string,
	face ebt.Face,
	options *DrawTextOptions,
) {
	if options == nil {
		options = &DrawTextOptions{}
	}

	op := &ebt.DrawOptions{}
	op.GeoM = options.GeoM
	op.ColorScale = options.ColorScale
	op.LayoutOptions = options.LayoutOptions

	ebt.Draw(dst, text, face, op)
}

// DrawTextCentered draws text centered in rect,
// scaled so its height fills the given fraction of the rect.
func DrawTextCentered(
	dst *eb.Image,
	text string,
	rect FRectangle,
	heightRatio float64,
	clr color.Color,
) {
	if text == "" {
		return
	}

	lineSpacing := FontLineSpacing(ClearFace)
	w, h := ebt.Measure(text, ClearFace, lineSpacing)

	scale := rect.Dy() * heightRatio / h
	scale = min(scale, rect.Dx()*0.9/w)

	center := FRectangleCenter(rect)

	op := &DrawTextOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(center.X-w*scale*0.5, center.Y-h*scale*0.5)
	op.ColorScale.ScaleWithColor(clr)
	op.LayoutOptions.LineSpacing = lineSpacing

	DrawText(dst, text, ClearFace, op)
}
