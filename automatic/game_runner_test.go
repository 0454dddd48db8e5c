package automatic

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

var testSeed = [32]byte{9, 8, 7, 6, 5, 4, 3, 2, 1}

func TestPlayGame(t *testing.T) {
	is := is.New(t)
	for players := 2; players <= 4; players++ {
		r, err := NewGameRunner(players, testSeed, 0)
		is.NoErr(err)
		res, err := r.PlayGame()
		is.NoErr(err)

		is.True(res.Finished)
		is.True(r.Game().IsGameOver())
		is.True(r.Game().BonusesApplied())
		is.Equal(len(res.Scores), players)
		is.True(len(res.Winners) > 0)
		is.True(res.Rounds >= 5)
		is.True(res.Turns > players)
		for _, s := range res.Scores {
			is.True(s >= 0)
		}
	}
}

func TestPlayGameIsDeterministic(t *testing.T) {
	r1, err := NewGameRunner(3, testSeed, 0)
	assert.NoError(t, err)
	r2, err := NewGameRunner(3, testSeed, 0)
	assert.NoError(t, err)
	res1, err := r1.PlayGame()
	assert.NoError(t, err)
	res2, err := r2.PlayGame()
	assert.NoError(t, err)
	assert.Equal(t, res1, res2)
	assert.Equal(t, r1.Game().Snapshot(), r2.Game().Snapshot())
}

func TestPlayGameRoundCap(t *testing.T) {
	is := is.New(t)
	r, err := NewGameRunner(2, testSeed, 1)
	is.NoErr(err)
	res, err := r.PlayGame()
	is.NoErr(err)
	// Nobody can fill a wall row in a single round.
	is.True(!res.Finished)
	is.Equal(res.Rounds, 1)
	is.True(!r.Game().BonusesApplied())
}

func TestNewGameRunnerBadPlayers(t *testing.T) {
	is := is.New(t)
	_, err := NewGameRunner(1, testSeed, 0)
	is.True(err != nil)
}

func TestCSVLine(t *testing.T) {
	is := is.New(t)
	res := &GameResult{
		GameID: "abc", Rounds: 6, Turns: 70, FirstPlayer: 1, Finished: true,
		Scores: []int{40, 52, 52}, Winners: []int{1, 2},
	}
	is.Equal(CSVHeader(3), "gameID,rounds,turns,finished,firstplayer,score1,score2,score3,winners\n")
	is.Equal(res.CSVLine(), "abc,6,70,true,1,40,52,52,1 2\n")

	parsed, n, err := ReadResults(strings.NewReader(CSVHeader(3) + res.CSVLine()))
	is.NoErr(err)
	is.Equal(n, 3)
	is.Equal(parsed, []*GameResult{res})
}

func TestReadResultsBadRecord(t *testing.T) {
	is := is.New(t)
	_, _, err := ReadResults(strings.NewReader(CSVHeader(2) + "abc,6,70,true,1,40\n"))
	is.True(err != nil)
	_, _, err = ReadResults(strings.NewReader(CSVHeader(2) + "abc,6,70,true,1,40,30,7\n"))
	is.True(err != nil)
}
