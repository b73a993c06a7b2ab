package main

import (
	"strings"

	"github.com/katalvlaran/roomgen/grid"
	"github.com/katalvlaran/roomgen/rooms"
)

// Tile bytes used by both the text dump and the PNG snapshot.
const (
	tileWall      = '#'
	tileFloor     = '.'
	tileBig       = ','
	tileChest     = '$'
	tileEpicenter = '@'
)

// renderTiles lays the result out on a (2w+1)×(2h+1) tile map, indexed
// [row][col]. Cell (x,y) sits at tile (2x+1, 2y+1); the tile between two
// cells is the door joining them.
func renderTiles(res *rooms.Result) [][]byte {
	cols, rows := 2*res.Width+1, 2*res.Height+1
	tiles := make([][]byte, rows)
	for r := range tiles {
		tiles[r] = []byte(strings.Repeat(string(tileWall), cols))
	}

	for x := 0; x < res.Width; x++ {
		for y := 0; y < res.Height; y++ {
			if res.Occupied[x][y] {
				tiles[2*y+1][2*x+1] = tileFloor
			}
		}
	}
	for x := range res.HorDoors {
		for y, open := range res.HorDoors[x] {
			if open {
				tiles[2*y+1][2*x+2] = tileFloor
			}
		}
	}
	for x := range res.VerDoors {
		for y, open := range res.VerDoors[x] {
			if open {
				tiles[2*y+2][2*x+1] = tileFloor
			}
		}
	}
	// Big rooms fill their whole 3×3 tile span, internal walls included.
	for x := range res.BigCells {
		for y, b := range res.BigCells[x] {
			if !b {
				continue
			}
			for r := 2*y + 1; r <= 2*y+3; r++ {
				for c := 2*x + 1; c <= 2*x+3; c++ {
					tiles[r][c] = tileBig
				}
			}
		}
	}
	for _, p := range res.Chests {
		*cellTile(tiles, p) = tileChest
	}
	if res.Walkable(res.Epicenter) {
		*cellTile(tiles, res.Epicenter) = tileEpicenter
	}
	return tiles
}

// tilesString joins a tile map into newline-terminated rows.
func tilesString(tiles [][]byte) string {
	var sb strings.Builder
	for _, row := range tiles {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// cellTile returns the tile of cell p.
func cellTile(tiles [][]byte, p grid.Point) *byte {
	return &tiles[2*p.Y+1][2*p.X+1]
}
