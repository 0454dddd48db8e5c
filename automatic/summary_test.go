package automatic

import (
	"bytes"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestSummaryAdd(t *testing.T) {
	is := is.New(t)
	s := NewSummary(3)
	s.Add(&GameResult{Finished: true, Rounds: 6, FirstPlayer: 0,
		Scores: []int{30, 50, 45}, Winners: []int{1}})
	s.Add(&GameResult{Finished: true, Rounds: 8, FirstPlayer: 2,
		Scores: []int{60, 20, 60}, Winners: []int{0, 2}})
	s.Add(&GameResult{Finished: false, Rounds: 50, FirstPlayer: 1,
		Scores: []int{1, 2, 3}})

	is.Equal(s.Games, 3)
	is.Equal(s.Finished, 2)
	is.Equal(s.Wins, []float64{0.5, 1, 0.5})
	is.Equal(s.FirstPlayerWins, 0.5)
	is.Equal(s.WinningScore.Values(), []float64{50, 60})
	is.Equal(s.Margin.Mean(), 2.5)
	is.Equal(s.Rounds.Mean(), 7.0)
	is.Equal(s.Scores[1].Mean(), 35.0)
}

func TestSecondBest(t *testing.T) {
	assert.Equal(t, 45, secondBest([]int{30, 50, 45}))
	assert.Equal(t, 60, secondBest([]int{60, 20, 60}))
	assert.Equal(t, 3, secondBest([]int{3, 9}))
	assert.Equal(t, 7, secondBest([]int{1, 2, 7, 8}))
}

func TestWriteYAML(t *testing.T) {
	is := is.New(t)
	s := NewSummary(2)
	s.Add(&GameResult{Finished: true, Rounds: 6, Scores: []int{30, 50}, Winners: []int{1}})
	s.Add(&GameResult{Finished: true, Rounds: 7, Scores: []int{44, 40}, Winners: []int{0}})

	var buf bytes.Buffer
	is.NoErr(s.WriteYAML(&buf))

	var out yamlSummary
	is.NoErr(yaml.Unmarshal(buf.Bytes(), &out))
	is.Equal(out.Games, 2)
	is.Equal(out.Players, 2)
	is.Equal(len(out.Seats), 2)
	is.Equal(out.Seats[1].Seat, 2)
	is.Equal(out.Seats[1].Wins, 1.0)
	is.Equal(out.WinningScore.Max, 50.0)
	is.Equal(out.Rounds.Mean, 6.5)
}

func TestWriteHistogram(t *testing.T) {
	is := is.New(t)
	s := NewSummary(2)
	var buf bytes.Buffer
	is.NoErr(s.WriteHistogram(&buf, 10))
	is.Equal(buf.String(), "no finished games\n")

	for i, score := range []int{40, 55, 61, 48, 70, 52} {
		s.Add(&GameResult{Finished: true, Rounds: 6 + i%2,
			Scores: []int{score, score - 10}, Winners: []int{0}})
	}
	buf.Reset()
	is.NoErr(s.WriteHistogram(&buf, 5))
	is.True(buf.Len() > 0)
}
