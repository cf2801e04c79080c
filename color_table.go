package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	css "github.com/mazznoer/csscolorparser"
)

type ColorTableIndex int

const (
	ColorBg ColorTableIndex = iota

	ColorTileNormal1
	ColorTileNormal2
	ColorTileNormalStroke

	ColorTileRevealed1
	ColorTileRevealed2
	ColorTileRevealedStroke

	ColorNumber1
	ColorNumber2
	ColorNumber3
	ColorNumber4
	ColorNumber5
	ColorNumber6
	ColorNumber7
	ColorNumber8

	ColorMine
	ColorFlag

	ColorTopUIText
	ColorTopUIButton
	ColorTopUIButtonHover
	ColorTopUIButtonDown

	ColorTableSize
)

var colorTableIndexNames = [ColorTableSize]string{
	"Bg",

	"TileNormal1",
	"TileNormal2",
	"TileNormalStroke",

	"TileRevealed1",
	"TileRevealed2",
	"TileRevealedStroke",

	"Number1",
	"Number2",
	"Number3",
	"Number4",
	"Number5",
	"Number6",
	"Number7",
	"Number8",

	"Mine",
	"Flag",

	"TopUIText",
	"TopUIButton",
	"TopUIButtonHover",
	"TopUIButtonDown",
}

func (i ColorTableIndex) String() string {
	return colorTableIndexNames[i]
}

var ColorTable [ColorTableSize]color.NRGBA

func init() {
	ColorTable[ColorBg] = color.NRGBA{10, 10, 10, 255}

	ColorTable[ColorTileNormal1] = color.NRGBA{30, 30, 30, 255}
	ColorTable[ColorTileNormal2] = color.NRGBA{50, 50, 50, 255}
	ColorTable[ColorTileNormalStroke] = color.NRGBA{150, 150, 150, 255}

	ColorTable[ColorTileRevealed1] = color.NRGBA{245, 245, 245, 255}
	ColorTable[ColorTileRevealed2] = color.NRGBA{255, 255, 255, 255}
	ColorTable[ColorTileRevealedStroke] = color.NRGBA{150, 150, 150, 255}

	ColorTable[ColorNumber1] = color.NRGBA{30, 60, 225, 255}
	ColorTable[ColorNumber2] = color.NRGBA{25, 130, 25, 255}
	ColorTable[ColorNumber3] = color.NRGBA{220, 30, 30, 255}
	ColorTable[ColorNumber4] = color.NRGBA{20, 20, 140, 255}
	ColorTable[ColorNumber5] = color.NRGBA{140, 20, 20, 255}
	ColorTable[ColorNumber6] = color.NRGBA{20, 140, 140, 255}
	ColorTable[ColorNumber7] = color.NRGBA{10, 10, 10, 255}
	ColorTable[ColorNumber8] = color.NRGBA{120, 120, 120, 255}

	ColorTable[ColorMine] = color.NRGBA{10, 10, 10, 255}
	ColorTable[ColorFlag] = color.NRGBA{255, 90, 90, 255}

	ColorTable[ColorTopUIText] = color.NRGBA{255, 255, 255, 255}
	ColorTable[ColorTopUIButton] = color.NRGBA{50, 50, 50, 255}
	ColorTable[ColorTopUIButtonHover] = color.NRGBA{80, 80, 80, 255}
	ColorTable[ColorTopUIButtonDown] = color.NRGBA{120, 120, 120, 255}
}

// ColorTableFromJson parses a theme file.
// The file maps color names to css color strings :
//
//	{
//	    "Bg": "#101010",
//	    "Flag": "tomato"
//	}
//
// Colors missing from the map keep their defaults.
func ColorTableFromJson(tableJson []byte) ([ColorTableSize]color.NRGBA, error) {
	colorTable := ColorTable

	var tableMap map[string]string

	err := json.Unmarshal(tableJson, &tableMap)
	if err != nil {
		return colorTable, err
	}

	stringToIndex := make(map[string]int)
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		stringToIndex[i.String()] = int(i)
	}

	for k, v := range tableMap {
		index, ok := stringToIndex[k]
		if !ok {
			return colorTable, fmt.Errorf("unknown color name %q", k)
		}

		parsed, err := css.Parse(v)
		if err != nil {
			return colorTable, fmt.Errorf("color %q: %w", k, err)
		}

		r, g, b, a := parsed.RGBA255()
		colorTable[index] = color.NRGBA{r, g, b, a}
	}

	return colorTable, nil
}

func LoadColorTable(path string) error {
	tableJson, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	table, err := ColorTableFromJson(tableJson)
	if err != nil {
		return err
	}

	ColorTable = table
	log.Infof("loaded color table from %s", path)

	return nil
}
