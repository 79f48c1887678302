package mapgen

import (
	"strings"

	"github.com/automoto/dungeonrush/config"
)

func (r *Room) glyph() byte {
	switch r.Type {
	case config.RoomBegin:
		return 'S'
	case config.RoomBoss:
		return 'B'
	case config.RoomEnd:
		if r.Arena {
			return 'A'
		}
		return 'E'
	case config.RoomReward:
		if r.Reward == config.RewardWeapon {
			return 'W'
		}
		return 'P'
	default:
		return '#'
	}
}

// String draws the grid with one glyph per room and door connectors.
func (m *Map) String() string {
	var b strings.Builder
	for y := 0; y < m.Size; y++ {
		var row, below strings.Builder
		for x := 0; x < m.Size; x++ {
			r := m.At(x, y)
			if r == nil {
				row.WriteString(". ")
				below.WriteString("  ")
				continue
			}
			row.WriteByte(r.glyph())
			if r.Doors[config.East] {
				row.WriteByte('-')
			} else {
				row.WriteByte(' ')
			}
			if r.Doors[config.South] {
				below.WriteString("| ")
			} else {
				below.WriteString("  ")
			}
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteByte('\n')
		if y < m.Size-1 {
			if line := strings.TrimRight(below.String(), " "); line != "" {
				b.WriteString(line)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
