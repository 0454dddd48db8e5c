package automatic

// Batch self-play. Games run in parallel, one game per goroutine at a
// time, each from its own seed.

import (
	"context"
	"errors"
	"expvar"
	"io"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/azul/config"
)

var (
	GamesCounter *expvar.Int
	// playing is 1 while a Run is in progress.
	playing atomic.Int64
)

func init() {
	GamesCounter = expvar.NewInt("azulGamesCounter")
	expvar.Publish("azulIsPlaying", expvar.Func(func() any {
		return playing.Load()
	}))
}

// IsPlaying returns true while a batch of games is being played.
func IsPlaying() bool {
	return playing.Load() > 0
}

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

// Options control a batch of games.
type Options struct {
	NumPlayers int
	Threads    int
	MaxRounds  int
	// Seeds has one entry per game.
	Seeds [][32]byte
	// Output, if not nil, receives one CSV line per game.
	Output io.Writer
}

// OptionsFromConfig builds options from the config, loading or creating
// the seed file it names.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	seeds, err := LoadOrCreateSeeds(cfg.GetString(config.ConfigSeedFile),
		cfg.GetInt(config.ConfigGames))
	if err != nil {
		return Options{}, err
	}
	return Options{
		NumPlayers: cfg.GetInt(config.ConfigPlayers),
		Threads:    cfg.GetInt(config.ConfigThreads),
		MaxRounds:  cfg.GetInt(config.ConfigMaxRounds),
		Seeds:      seeds,
	}, nil
}

// Run plays one game per seed. The summary and the results written to
// Output are in seed order, so neither depends on scheduling. If ctx is
// cancelled, Run stops starting games and returns a summary of those
// that completed, along with the context's error.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if !playing.CompareAndSwap(0, 1) {
		return nil, ErrAlreadyPlaying
	}
	defer playing.Store(0)
	GamesCounter.Set(0)

	threads := max(opts.Threads, 1)
	log.Info().Int("games", len(opts.Seeds)).Int("threads", threads).
		Int("players", opts.NumPlayers).Msg("starting-games")

	results := make([]*GameResult, len(opts.Seeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, seed := range opts.Seeds {
		if gctx.Err() != nil {
			log.Info().Msg("got stop signal, exiting soon...")
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := NewGameRunner(opts.NumPlayers, seed, opts.MaxRounds)
			if err != nil {
				return err
			}
			res, err := r.PlayGame()
			if err != nil {
				return err
			}
			results[i] = res
			GamesCounter.Add(1)
			if n := GamesCounter.Value(); n%1000 == 0 {
				log.Info().Int64("played", n).Msg("games-progress")
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	summary := NewSummary(opts.NumPlayers)
	for _, res := range results {
		if res != nil {
			summary.Add(res)
		}
	}
	if opts.Output != nil && summary.Games > 0 {
		if werr := writeResults(opts.Output, opts.NumPlayers, results); werr != nil && err == nil {
			err = werr
		}
	}
	log.Info().Int("played", summary.Games).Int("finished", summary.Finished).
		Msg("all-games-finished")
	if err != nil && !errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	return summary, err
}

// writeResults writes the CSV results file, skipping games that never ran.
func writeResults(w io.Writer, numPlayers int, results []*GameResult) error {
	if _, err := io.WriteString(w, CSVHeader(numPlayers)); err != nil {
		return err
	}
	for _, res := range results {
		if res == nil {
			continue
		}
		if _, err := io.WriteString(w, res.CSVLine()); err != nil {
			return err
		}
	}
	return nil
}

// RunFromConfig is Run with everything taken from the config, writing
// results to the configured output file, if any.
func RunFromConfig(ctx context.Context, cfg *config.Config) (*Summary, error) {
	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	if fn := cfg.GetString(config.ConfigOutput); fn != "" {
		f, err := os.Create(fn)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		opts.Output = f
	}
	return Run(ctx, opts)
}
