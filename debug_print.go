package main

import (
	"fmt"
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager

	for i, msg := range dm.DebugMsgs {
		if msg.Key == key {
			dm.DebugMsgs[i].Value = value
			return
		}
	}

	dm.DebugMsgs = append(dm.DebugMsgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

func DrawDebugMsgs(dst *eb.Image) {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	for i, msg := range dm.DebugMsgs {
		dm.builder.WriteString(msg.Key)
		dm.builder.WriteString(": ")
		dm.builder.WriteString(msg.Value)

		if i+1 != len(dm.DebugMsgs) {
			dm.builder.WriteString("\n")
		}
	}

	const fontSize = 20
	const hozMargin = 5
	const vertMargin = 5

	scale := fontSize / FontSize(ClearFace)
	fontLineSpacing := FontLineSpacing(ClearFace) + 3

	text := dm.builder.String()

	w, h := ebt.Measure(text, ClearFace, fontLineSpacing)

	boxW, boxH := w*scale+hozMargin*2, h*scale+vertMargin*2

	dstRect := RectToFRect(dst.Bounds())
	boxRect := FRectWH(boxW, boxH).Add(
		FPt(dstRect.Max.X-boxW, dstRect.Max.Y-boxH))

	// draw background
	DrawFilledRect(dst, boxRect, color.NRGBA{255, 255, 255, 255})
	DrawFilledRect(dst, boxRect.Inset(2), color.NRGBA{0, 0, 0, 255})

	// draw text
	op := &DrawTextOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(boxRect.Min.X+hozMargin, boxRect.Min.Y+vertMargin)
	op.ColorScale.ScaleWithColor(color.NRGBA{255, 255, 255, 255})
	op.LayoutOptions.LineSpacing = fontLineSpacing

	DrawText(dst, text, ClearFace, op)
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
