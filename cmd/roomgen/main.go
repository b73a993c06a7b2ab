// This defines a basic executable for generating a room layout and dumping
// it as text and, optionally, as a PNG snapshot.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/roomgen/gridgraph"
	"github.com/katalvlaran/roomgen/rooms"
)

func run() int {
	var width, height, px, py, heads, cellPixels int
	var chance float64
	var seed int64
	var outFilename string
	var quiet bool
	flag.IntVar(&width, "width", 24, "The width of the layout, in cells.")
	flag.IntVar(&height, "height", 16, "The height of the layout, in cells.")
	flag.IntVar(&px, "x", -1, "Epicenter column. Negative selects the center.")
	flag.IntVar(&py, "y", -1, "Epicenter row. Negative selects the center.")
	flag.Float64Var(&chance, "chance", rooms.DefaultChance,
		"Probability of each additional loop door, strictly between 0 and 1.")
	flag.IntVar(&heads, "heads", rooms.DefaultHeadLimit,
		"Maximum number of new frontier cells per wave.")
	flag.Int64Var(&seed, "seed", 0, "Random seed. 0 selects the fixed default.")
	flag.StringVar(&outFilename, "png", "",
		"If set, the name of a .png file to which a snapshot is written.")
	flag.IntVar(&cellPixels, "cell_pixels", 8,
		"Side of one tile in the PNG snapshot, in pixels.")
	flag.BoolVar(&quiet, "quiet", false, "If set, don't print the text dump.")
	flag.Parse()
	log.SetFlags(0)

	if px < 0 {
		px = width / 2
	}
	if py < 0 {
		py = height / 2
	}
	if cellPixels < 1 {
		log.Printf("Invalid -cell_pixels %d: must be at least 1", cellPixels)
		return 1
	}

	res, e := rooms.Generate(width, height, px, py,
		rooms.WithChance(chance),
		rooms.WithHeadLimit(heads),
		rooms.WithSeed(seed),
	)
	if e != nil {
		log.Printf("Failed generating layout: %s", e)
		return 1
	}
	tiles := renderTiles(res)
	if !quiet {
		fmt.Print(tilesString(tiles))
	}

	gg, e := gridgraph.FromResult(res)
	if e != nil {
		log.Printf("Failed analyzing layout: %s", e)
		return 1
	}
	fmt.Printf("%dx%d layout, seed %d: %d waves, %d walkable cells, %d big "+
		"rooms, %d chests, %d components\n", res.Width, res.Height, res.Seed,
		res.Waves, gg.WalkableCount(), res.BigCellCount(), len(res.Chests),
		len(gg.ConnectedComponents()))

	if outFilename == "" {
		return 0
	}
	pic := image_utils.ToRGBA(newTileImage(tiles, cellPixels))
	f, e := os.Create(outFilename)
	if e != nil {
		log.Printf("Error creating output file %s: %s", outFilename, e)
		return 1
	}
	defer f.Close()
	e = png.Encode(f, pic)
	if e != nil {
		log.Printf("Error writing image to %s: %s", outFilename, e)
		return 1
	}
	log.Printf("Image %s written OK.", outFilename)
	return 0
}

func main() {
	os.Exit(run())
}
