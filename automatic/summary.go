package automatic

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/azul/stats"
)

const (
	confidence     = 95
	histogramWidth = 40
)

// Summary aggregates the results of many games with the same number of
// players.
type Summary struct {
	NumPlayers int
	Games      int
	Finished   int

	// Wins per seat. A tie gives each winner an equal share.
	Wins            []float64
	FirstPlayerWins float64

	Scores       []*stats.Statistic
	WinningScore *stats.Statistic
	Margin       *stats.Statistic
	Rounds       *stats.Statistic
}

func NewSummary(numPlayers int) *Summary {
	return &Summary{
		NumPlayers: numPlayers,
		Wins:       make([]float64, numPlayers),
		Scores: lo.Times(numPlayers, func(int) *stats.Statistic {
			return stats.NewStatistic(false)
		}),
		WinningScore: stats.NewStatistic(true),
		Margin:       stats.NewStatistic(false),
		Rounds:       stats.NewStatistic(false),
	}
}

// Add counts one game. Unfinished games count toward Games only.
func (s *Summary) Add(res *GameResult) {
	s.Games++
	if !res.Finished {
		return
	}
	s.Finished++
	share := 1.0 / float64(len(res.Winners))
	for _, w := range res.Winners {
		s.Wins[w] += share
		if w == res.FirstPlayer {
			s.FirstPlayerWins += share
		}
	}
	for i, score := range res.Scores {
		s.Scores[i].PushInt(score)
	}
	best := lo.Max(res.Scores)
	s.WinningScore.PushInt(best)
	s.Margin.PushInt(best - secondBest(res.Scores))
	s.Rounds.PushInt(res.Rounds)
}

// secondBest returns the second highest score, which equals the highest
// if two players share it.
func secondBest(scores []int) int {
	best, second := scores[0], scores[1]
	if second > best {
		best, second = second, best
	}
	for _, sc := range scores[2:] {
		switch {
		case sc > best:
			best, second = sc, best
		case sc > second:
			second = sc
		}
	}
	return second
}

type statSummary struct {
	Mean  float64 `yaml:"mean"`
	Stdev float64 `yaml:"stdev"`
	CI95  float64 `yaml:"ci95"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

func summarize(st *stats.Statistic) statSummary {
	return statSummary{
		Mean:  st.Mean(),
		Stdev: st.Stdev(),
		CI95:  st.ConfidenceInterval(confidence),
		Min:   st.Min(),
		Max:   st.Max(),
	}
}

type seatSummary struct {
	Seat  int         `yaml:"seat"`
	Wins  float64     `yaml:"wins"`
	Score statSummary `yaml:"score"`
}

type yamlSummary struct {
	Players         int           `yaml:"players"`
	Games           int           `yaml:"games"`
	Finished        int           `yaml:"finished"`
	FirstPlayerWins float64       `yaml:"first_player_wins"`
	Seats           []seatSummary `yaml:"seats"`
	WinningScore    statSummary   `yaml:"winning_score"`
	Margin          statSummary   `yaml:"margin"`
	Rounds          statSummary   `yaml:"rounds"`
}

// WriteYAML writes the summary as a YAML document.
func (s *Summary) WriteYAML(w io.Writer) error {
	out := yamlSummary{
		Players:         s.NumPlayers,
		Games:           s.Games,
		Finished:        s.Finished,
		FirstPlayerWins: s.FirstPlayerWins,
		Seats: lo.Map(s.Scores, func(st *stats.Statistic, i int) seatSummary {
			return seatSummary{Seat: i + 1, Wins: s.Wins[i], Score: summarize(st)}
		}),
		WinningScore: summarize(s.WinningScore),
		Margin:       summarize(s.Margin),
		Rounds:       summarize(s.Rounds),
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

// WriteHistogram draws a histogram of the winning scores.
func (s *Summary) WriteHistogram(w io.Writer, bins int) error {
	vals := s.WinningScore.Values()
	if len(vals) == 0 {
		_, err := fmt.Fprintln(w, "no finished games")
		return err
	}
	if s.WinningScore.Min() == s.WinningScore.Max() {
		_, err := fmt.Fprintf(w, "%v: %d games\n", s.WinningScore.Min(), len(vals))
		return err
	}
	h := histogram.Hist(bins, vals)
	return histogram.Fprint(w, h, histogram.Linear(histogramWidth))
}
