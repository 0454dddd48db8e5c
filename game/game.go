// Package game encapsulates the main mechanics for a game of Azul: the
// factories and center, turn order, and the round and game lifecycle.
// A Game doesn't care how it is played; it is just rules for gameplay.
// Whatever chooses the moves lives outside of this package.
package game

import (
	"encoding/hex"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/azul/board"
	"github.com/domino14/azul/tiles"
)

const (
	MinPlayers       = 2
	MaxPlayers       = 4
	TilesPerFactory  = 4
	firstRoundNumber = 1
)

// factoryCounts is the number of factories, indexed by number of players.
var factoryCounts = [MaxPlayers + 1]int{2: 5, 3: 7, 4: 9}

// NumFactoriesFor returns the number of factories for a game with the
// given number of players, and false if that many can't play.
func NumFactoriesFor(numPlayers int) (int, bool) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return 0, false
	}
	return factoryCounts[numPlayers], true
}

type PlayState int

const (
	PlayStatePlaying PlayState = iota
	PlayStateGameOver
)

func (p PlayState) String() string {
	if p == PlayStateGameOver {
		return "game-over"
	}
	return "playing"
}

// Game is the actual internal game structure that controls the entire
// business logic of the game: dealing, drafting, scoring rounds, etc.
type Game struct {
	factories                 []tiles.Counts
	center                    tiles.Counts
	firstPlayerTokenAvailable bool

	players []*board.PlayerBoard
	supply  *tiles.Supply

	randSeed   [32]byte
	randSource *rand.Rand

	playing     PlayState
	onturn      int
	startPlayer int
	round       int
	turnnum     int
	// stalled is set if a round could not be dealt a single tile.
	stalled        bool
	bonusesApplied bool

	history []RoundRecord
}

// Option configures a new Game.
type Option func(*Game)

// WithSeed makes the game draw from a ChaCha8 stream with the given seed.
func WithSeed(seed [32]byte) Option {
	return func(g *Game) {
		g.randSeed = seed
		g.randSource = rand.New(rand.NewChaCha8(seed))
	}
}

// WithRandSource makes the game use an existing random source. Seed()
// will return all zeroes in this case.
func WithRandSource(r *rand.Rand) Option {
	return func(g *Game) {
		g.randSource = r
	}
}

// NewGame is how one instantiates a brand new game. The game is reset
// and the first round dealt before it is returned.
func NewGame(numPlayers int, opts ...Option) (*Game, error) {
	numFactories, ok := NumFactoriesFor(numPlayers)
	if !ok {
		return nil, fmt.Errorf("%w: %d (must be %d to %d)",
			ErrInvalidPlayerCount, numPlayers, MinPlayers, MaxPlayers)
	}
	g := &Game{
		factories: make([]tiles.Counts, numFactories),
		players:   make([]*board.PlayerBoard, numPlayers),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.randSource == nil {
		WithSeed(frand.Entropy256())(g)
	}
	log.Debug().Str("seed", hex.EncodeToString(g.randSeed[:])).
		Int("players", numPlayers).Msg("new-game")

	for i := range g.players {
		g.players[i] = board.NewPlayerBoard()
	}
	g.supply = tiles.NewSupply(g.randSource)
	g.Reset()
	return g, nil
}

// Reset starts the game over: a fresh supply, empty boards, a random
// starting player, and round 1 dealt. The random stream is not reseeded.
func (g *Game) Reset() {
	g.supply.Reset()
	for _, p := range g.players {
		p.Reset()
	}
	g.playing = PlayStatePlaying
	g.round = firstRoundNumber - 1
	g.turnnum = 0
	g.stalled = false
	g.bonusesApplied = false
	g.history = nil
	g.startPlayer = g.randSource.IntN(len(g.players))
	g.startNewRound()
}

// startNewRound fills the factories and puts the token back in the center.
func (g *Game) startNewRound() {
	g.round++
	g.onturn = g.startPlayer
	g.center.Clear()
	g.firstPlayerTokenAvailable = true

	dealt := 0
	for i := range g.factories {
		g.factories[i].Clear()
		drew := g.supply.DrawAtMost(TilesPerFactory)
		for _, c := range drew {
			g.factories[i].Add(c, 1)
		}
		dealt += len(drew)
		if len(drew) < TilesPerFactory {
			log.Warn().Err(tiles.ErrSupplyExhausted).Int("round", g.round).
				Int("factory", i).Int("drew", len(drew)).Msg("short-deal")
		}
	}
	if dealt == 0 {
		log.Warn().Int("round", g.round).Msg("nothing-to-deal-game-over")
		g.stalled = true
		g.playing = PlayStateGameOver
		return
	}
	log.Debug().Int("round", g.round).Int("startplayer", g.startPlayer).
		Int("dealt", dealt).Msg("new-round")
}

// roundIsOver returns true once every factory and the center are empty.
func (g *Game) roundIsOver() bool {
	if !g.center.IsEmpty() {
		return false
	}
	for i := range g.factories {
		if !g.factories[i].IsEmpty() {
			return false
		}
	}
	return true
}

// endRound scores every board, sends the discards to the box, and
// either deals the next round or ends the game.
func (g *Game) endRound() {
	rec := RoundRecord{
		Round:   g.round,
		Results: make([]board.RoundResult, len(g.players)),
	}
	for i, p := range g.players {
		res := p.ResolveRound()
		for _, evt := range res.Events {
			log.Debug().Int("round", g.round).Int("player", i).Msg(evt)
		}
		g.supply.Recycle(res.Discards...)
		rec.Results[i] = res
		rec.Recycled.Merge(tiles.CountColors(res.Discards))
	}
	g.history = append(g.history, rec)

	if g.anyCompletedRow() {
		log.Debug().Int("round", g.round).Msg("game-over")
		g.playing = PlayStateGameOver
		return
	}
	g.startNewRound()
}

func (g *Game) anyCompletedRow() bool {
	for _, p := range g.players {
		if p.HasCompletedRow() {
			return true
		}
	}
	return false
}

// IsGameOver returns true once a player has completed a wall row at the
// end of a round.
func (g *Game) IsGameOver() bool {
	return g.stalled || g.anyCompletedRow()
}

// Playing returns the current play state.
func (g *Game) Playing() PlayState {
	return g.playing
}

// ApplyEndGameBonuses adds the row, column and color bonuses to every
// board. It may only be called once, after the game is over.
func (g *Game) ApplyEndGameBonuses() ([]board.EndgameBonus, error) {
	if !g.IsGameOver() {
		return nil, ErrGameNotOver
	}
	if g.bonusesApplied {
		return nil, ErrBonusesApplied
	}
	bonuses := make([]board.EndgameBonus, len(g.players))
	for i, p := range g.players {
		bonuses[i] = p.ResolveEndgame()
		log.Debug().Int("player", i).Int("bonus", bonuses[i].Points).
			Int("final", p.Score()).Msg("endgame-bonus")
	}
	g.bonusesApplied = true
	return bonuses, nil
}

// BonusesApplied returns true once ApplyEndGameBonuses has succeeded.
func (g *Game) BonusesApplied() bool {
	return g.bonusesApplied
}

func (g *Game) NumPlayers() int {
	return len(g.players)
}

func (g *Game) NumFactories() int {
	return len(g.factories)
}

// PlayerOnTurn returns the index of the player whose turn it is.
func (g *Game) PlayerOnTurn() int {
	return g.onturn
}

// StartPlayer returns who starts the next round (or started this one,
// if nobody has taken from the center yet).
func (g *Game) StartPlayer() int {
	return g.startPlayer
}

func (g *Game) Round() int {
	return g.round
}

// Turn returns how many moves have been played since the last reset.
func (g *Game) Turn() int {
	return g.turnnum
}

func (g *Game) FirstPlayerTokenAvailable() bool {
	return g.firstPlayerTokenAvailable
}

// Board returns the board of the given player. Callers must not mutate
// it; use Snapshot for a copy.
func (g *Game) Board(playerIdx int) *board.PlayerBoard {
	return g.players[playerIdx]
}

// PointsFor returns the current score of the given player.
func (g *Game) PointsFor(playerIdx int) int {
	return g.players[playerIdx].Score()
}

// Supply returns the tile supply.
func (g *Game) Supply() *tiles.Supply {
	return g.supply
}

// Seed returns the seed of the random stream, if the game made its own.
func (g *Game) Seed() [32]byte {
	return g.randSeed
}

// Winners returns the players with the highest score. Ties go to the
// player with more completed wall rows; if that is tied too, all of
// them are returned.
func (g *Game) Winners() []int {
	best := -1
	bestRows := -1
	var winners []int
	for i, p := range g.players {
		score, rows := p.Score(), p.CompletedRows()
		switch {
		case score > best || (score == best && rows > bestRows):
			best, bestRows = score, rows
			winners = []int{i}
		case score == best && rows == bestRows:
			winners = append(winners, i)
		}
	}
	return winners
}
