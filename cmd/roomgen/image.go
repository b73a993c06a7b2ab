package main

import (
	"image"
	"image/color"
)

// tileImage satisfies the image.Image interface, drawing each tile of a tile
// map as a solid square of cellPixels × cellPixels.
type tileImage struct {
	tiles      [][]byte
	cellPixels int
}

func newTileImage(tiles [][]byte, cellPixels int) *tileImage {
	return &tileImage{tiles: tiles, cellPixels: cellPixels}
}

func (m *tileImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *tileImage) Bounds() image.Rectangle {
	if len(m.tiles) == 0 {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, len(m.tiles[0])*m.cellPixels,
		len(m.tiles)*m.cellPixels)
}

func (m *tileImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		return color.Transparent
	}
	return tileColor(m.tiles[y/m.cellPixels][x/m.cellPixels])
}

func tileColor(t byte) color.Color {
	switch t {
	case tileFloor:
		return color.White
	case tileBig:
		return color.RGBA{R: 200, G: 220, B: 255, A: 255}
	case tileChest:
		return color.RGBA{R: 230, G: 180, B: 20, A: 255}
	case tileEpicenter:
		return color.RGBA{R: 230, G: 20, B: 20, A: 255}
	}
	return color.Black
}
