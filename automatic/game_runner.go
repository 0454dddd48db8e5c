// Package automatic plays many games of Azul on its own, with every
// player choosing uniformly among its legal moves. It exists to exercise
// the rules engine over lots of seeded games and to summarize them.
package automatic

import (
	"encoding/base64"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/azul/game"
)

// GameResult is the outcome of one self-played game.
type GameResult struct {
	GameID      string
	Seed        [32]byte
	Rounds      int
	Turns       int
	FirstPlayer int
	Scores      []int
	Winners     []int

	// Finished is false if the game hit the round cap first.
	Finished bool

	// Fingerprint hashes the final position. It isn't written to the
	// results file.
	Fingerprint uint64
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	game      *game.Game
	picker    *rand.Rand
	seed      [32]byte
	maxRounds int
}

// GameID returns a short name for the game with the given seed.
func GameID(seed [32]byte) string {
	return base64.RawURLEncoding.EncodeToString(seed[:6])
}

// pickerSeed derives the move picker's stream from the game seed, so
// that one seed pins down the deal and the choices.
func pickerSeed(seed [32]byte) [32]byte {
	for i := range seed {
		seed[i] ^= 0x5a
	}
	return seed
}

// NewGameRunner sets up a game with the given seed. A maxRounds of zero
// means no cap.
func NewGameRunner(numPlayers int, seed [32]byte, maxRounds int) (*GameRunner, error) {
	g, err := game.NewGame(numPlayers, game.WithSeed(seed))
	if err != nil {
		return nil, err
	}
	return &GameRunner{
		game:      g,
		picker:    rand.New(rand.NewChaCha8(pickerSeed(seed))),
		seed:      seed,
		maxRounds: maxRounds,
	}, nil
}

// Game returns the game being played.
func (r *GameRunner) Game() *game.Game {
	return r.game
}

// PlayRandomTurn plays one uniformly random legal move for whoever is on
// turn.
func (r *GameRunner) PlayRandomTurn() error {
	moves := r.game.LegalMoves()
	if len(moves) == 0 {
		return fmt.Errorf("no legal moves in round %d", r.game.Round())
	}
	m := moves[r.picker.IntN(len(moves))]
	onturn := r.game.PlayerOnTurn()
	if err := r.game.PlayMove(m); err != nil {
		return err
	}
	log.Trace().Str("game", GameID(r.seed)).Int("turn", r.game.Turn()).
		Int("player", onturn).Str("move", m.ShortDescription()).
		Int("score", r.game.PointsFor(onturn)).Msg("played")
	return nil
}

// PlayGame plays the game out, or until the round cap, and scores the
// end-game bonuses if it finished.
func (r *GameRunner) PlayGame() (*GameResult, error) {
	res := &GameResult{
		GameID:      GameID(r.seed),
		Seed:        r.seed,
		FirstPlayer: r.game.StartPlayer(),
	}
	for !r.game.IsGameOver() {
		if r.maxRounds > 0 && r.game.Round() > r.maxRounds {
			log.Debug().Str("game", res.GameID).Int("rounds", r.maxRounds).
				Msg("round-cap-reached")
			break
		}
		if err := r.PlayRandomTurn(); err != nil {
			return nil, err
		}
	}
	if r.game.IsGameOver() {
		if _, err := r.game.ApplyEndGameBonuses(); err != nil {
			return nil, err
		}
		res.Finished = true
	}
	res.Rounds = len(r.game.History())
	res.Turns = r.game.Turn()
	res.Scores = lo.Times(r.game.NumPlayers(), r.game.PointsFor)
	res.Winners = r.game.Winners()
	res.Fingerprint = r.game.Snapshot().Fingerprint()
	log.Debug().Str("game", res.GameID).Ints("scores", res.Scores).
		Uint64("fingerprint", res.Fingerprint).Msg("game-finished")
	return res, nil
}

// CSVHeader is the header line for CSVLine, for the given player count.
func CSVHeader(numPlayers int) string {
	cols := []string{"gameID", "rounds", "turns", "finished", "firstplayer"}
	for i := range numPlayers {
		cols = append(cols, "score"+strconv.Itoa(i+1))
	}
	cols = append(cols, "winners")
	return strings.Join(cols, ",") + "\n"
}

// CSVLine renders the result as one line of the results file.
func (res *GameResult) CSVLine() string {
	cols := []string{
		res.GameID,
		strconv.Itoa(res.Rounds),
		strconv.Itoa(res.Turns),
		strconv.FormatBool(res.Finished),
		strconv.Itoa(res.FirstPlayer),
	}
	cols = append(cols, lo.Map(res.Scores, func(s int, _ int) string {
		return strconv.Itoa(s)
	})...)
	cols = append(cols, strings.Join(lo.Map(res.Winners, func(w int, _ int) string {
		return strconv.Itoa(w)
	}), " "))
	return strings.Join(cols, ",") + "\n"
}
