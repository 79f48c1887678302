package mapgen

import "github.com/automoto/dungeonrush/config"

// TileSize returns the room interior size in tiles.
func (r *Room) TileSize() (w, h int) {
	if r.Oversized {
		return config.Room.BossTilesWidth, config.Room.BossTilesHeight
	}
	return config.Room.TilesWidth, config.Room.TilesHeight
}

// Tiles lays out the room: a wall ring with door openings centred on each
// connected side.
func (r *Room) Tiles() [][]config.TileKind {
	w, h := r.TileSize()
	tiles := make([][]config.TileKind, h)
	for y := range tiles {
		tiles[y] = make([]config.TileKind, w)
		for x := range tiles[y] {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				tiles[y][x] = config.TileWall
			}
		}
	}

	half := config.Room.DoorWidthTiles / 2
	for _, d := range config.Directions {
		if !r.Doors[d] {
			continue
		}
		switch d {
		case config.North, config.South:
			y := 0
			if d == config.South {
				y = h - 1
			}
			for x := w/2 - half; x <= w/2+half; x++ {
				tiles[y][x] = config.TileDoor
			}
		default:
			x := 0
			if d == config.East {
				x = w - 1
			}
			for y := h/2 - half; y <= h/2+half; y++ {
				tiles[y][x] = config.TileDoor
			}
		}
	}
	return tiles
}
