package main

import (
	"image/color"
	"testing"
)

func TestColorTableFromJson(t *testing.T) {
	tableJson := []byte(`{
		"Bg": "#102030",
		"Flag": "tomato",
		"Mine": "rgb(1, 2, 3)"
	}`)

	table, err := ColorTableFromJson(tableJson)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := table[ColorBg], (color.NRGBA{0x10, 0x20, 0x30, 255}); got != want {
		t.Errorf("Bg = %v, want %v", got, want)
	}
	if got, want := table[ColorFlag], (color.NRGBA{255, 99, 71, 255}); got != want {
		t.Errorf("Flag = %v, want %v", got, want)
	}
	if got, want := table[ColorMine], (color.NRGBA{1, 2, 3, 255}); got != want {
		t.Errorf("Mine = %v, want %v", got, want)
	}

	// colors not in the file keep their defaults
	if got, want := table[ColorNumber1], ColorTable[ColorNumber1]; got != want {
		t.Errorf("Number1 = %v, want default %v", got, want)
	}
}

func TestColorTableFromJsonErrors(t *testing.T) {
	tests := []struct {
		name      string
		tableJson string
	}{
		{"unknown name", `{"NotAColor": "#fff"}`},
		{"bad color", `{"Bg": "not a color"}`},
		{"bad json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ColorTableFromJson([]byte(tt.tableJson)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestColorTableIndexNames(t *testing.T) {
	seen := make(map[string]bool)

	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		name := i.String()
		if name == "" {
			t.Errorf("index %d has no name", i)
		}
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true
	}
}
