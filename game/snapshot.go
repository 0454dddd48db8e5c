package game

import (
	"encoding/binary"

	"github.com/cespare/xxhash"

	"github.com/domino14/azul/board"
	"github.com/domino14/azul/tiles"
)

// PlayerSnapshot is a copy of one player's board.
type PlayerSnapshot struct {
	Score int
	Wall  [tiles.WallDim][tiles.WallDim]tiles.Color
	Lines [tiles.WallDim]board.PatternLine
	Floor []tiles.Color
}

// Snapshot is a read-only copy of everything visible at the table. It
// shares nothing with the game it came from.
type Snapshot struct {
	Factories                 []tiles.Counts
	Center                    tiles.Counts
	FirstPlayerTokenAvailable bool
	Players                   []PlayerSnapshot
	PlayerOnTurn              int
	StartPlayer               int
	Round                     int
	Bag                       tiles.Counts
	Box                       tiles.Counts
	GameOver                  bool
}

// Snapshot copies out the current state of the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Factories:                 make([]tiles.Counts, len(g.factories)),
		Center:                    g.center,
		FirstPlayerTokenAvailable: g.firstPlayerTokenAvailable,
		Players:                   make([]PlayerSnapshot, len(g.players)),
		PlayerOnTurn:              g.onturn,
		StartPlayer:               g.startPlayer,
		Round:                     g.round,
		Bag:                       g.supply.Bag(),
		Box:                       g.supply.Box(),
		GameOver:                  g.IsGameOver(),
	}
	copy(s.Factories, g.factories)
	for i, p := range g.players {
		s.Players[i] = PlayerSnapshot{
			Score: p.Score(),
			Wall:  p.Wall(),
			Lines: p.Lines(),
			Floor: p.Floor(),
		}
	}
	return s
}

// Fingerprint hashes the snapshot. Two snapshots of the same position
// have the same fingerprint.
func (s Snapshot) Fingerprint() uint64 {
	buf := make([]byte, 0, 256)
	putCounts := func(c tiles.Counts) {
		for _, n := range c {
			buf = binary.AppendUvarint(buf, uint64(n))
		}
	}
	for _, f := range s.Factories {
		putCounts(f)
	}
	putCounts(s.Center)
	putCounts(s.Bag)
	putCounts(s.Box)
	for _, p := range s.Players {
		buf = binary.AppendVarint(buf, int64(p.Score))
		for _, row := range p.Wall {
			for _, c := range row {
				buf = append(buf, byte(c))
			}
		}
		for _, l := range p.Lines {
			buf = append(buf, byte(l.Color), byte(l.Count))
		}
		buf = append(buf, byte(len(p.Floor)))
		for _, c := range p.Floor {
			buf = append(buf, byte(c))
		}
	}
	buf = binary.AppendUvarint(buf, uint64(s.PlayerOnTurn))
	buf = binary.AppendUvarint(buf, uint64(s.StartPlayer))
	buf = binary.AppendUvarint(buf, uint64(s.Round))
	buf = append(buf, boolByte(s.FirstPlayerTokenAvailable), boolByte(s.GameOver))
	return xxhash.Sum64(buf)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
