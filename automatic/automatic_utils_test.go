package automatic

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/azul/config"
	"github.com/domino14/azul/game"
)

func TestRunIsReproducible(t *testing.T) {
	is := is.New(t)
	seeds := GenerateSeeds(24)

	var out1, out2 bytes.Buffer
	s1, err := Run(context.Background(), Options{
		NumPlayers: 3, Threads: 4, MaxRounds: 50, Seeds: seeds, Output: &out1})
	is.NoErr(err)
	s2, err := Run(context.Background(), Options{
		NumPlayers: 3, Threads: 1, MaxRounds: 50, Seeds: seeds, Output: &out2})
	is.NoErr(err)

	is.Equal(s1.Games, 24)
	is.Equal(GamesCounter.Value(), int64(24))
	is.True(!IsPlaying())
	assert.Equal(t, s1, s2)
	is.Equal(out1.String(), out2.String())

	total := 0.0
	for _, w := range s1.Wins {
		total += w
	}
	assert.InDelta(t, float64(s1.Finished), total, 1e-9)
}

func TestRunRefusesConcurrentRuns(t *testing.T) {
	is := is.New(t)
	is.True(playing.CompareAndSwap(0, 1))
	s, err := Run(context.Background(), Options{NumPlayers: 2, Seeds: GenerateSeeds(2)})
	is.True(errors.Is(err, ErrAlreadyPlaying))
	is.Equal(s, nil)
	is.True(IsPlaying())
	playing.Store(0)

	// Many callers racing for the same slot: exactly one of them wins it.
	const callers = 16
	var wg sync.WaitGroup
	var won atomic.Int64
	start := make(chan struct{})
	release := make(chan struct{})
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if playing.CompareAndSwap(0, 1) {
				won.Add(1)
				<-release
			}
		}()
	}
	close(start)
	for won.Load() == 0 {
		runtime.Gosched()
	}
	_, err = Run(context.Background(), Options{NumPlayers: 2, Seeds: GenerateSeeds(1)})
	is.True(errors.Is(err, ErrAlreadyPlaying))
	close(release)
	wg.Wait()
	is.Equal(won.Load(), int64(1))
	playing.Store(0)

	_, err = Run(context.Background(), Options{NumPlayers: 2, Seeds: GenerateSeeds(1)})
	is.NoErr(err)
	is.True(!IsPlaying())
}

func TestRunCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := Run(ctx, Options{NumPlayers: 2, Threads: 2, Seeds: GenerateSeeds(10)})
	is.True(errors.Is(err, context.Canceled))
	is.Equal(s.Games, 0)
}

func TestRunBadPlayerCount(t *testing.T) {
	is := is.New(t)
	s, err := Run(context.Background(), Options{NumPlayers: 5, Threads: 2, Seeds: GenerateSeeds(3)})
	is.True(errors.Is(err, game.ErrInvalidPlayerCount))
	is.Equal(s, nil)
}

func TestRunFromConfigAndAnalyze(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	seedFile := filepath.Join(dir, "seeds.txt")
	output := filepath.Join(dir, "results.csv")

	cfg := &config.Config{}
	is.NoErr(cfg.Load([]string{
		"--games", "12", "--players", "2", "--threads", "3",
		"--seed-file", seedFile, "--output", output,
	}))
	summary, err := RunFromConfig(context.Background(), cfg)
	is.NoErr(err)
	is.Equal(summary.Games, 12)

	analyzed, err := AnalyzeLogFile(output)
	is.NoErr(err)
	assert.Equal(t, summary, analyzed)

	// The seed file now pins the run down.
	again, err := RunFromConfig(context.Background(), cfg)
	is.NoErr(err)
	assert.Equal(t, summary, again)

	seeds, err := LoadSeeds(seedFile)
	is.NoErr(err)
	is.Equal(len(seeds), 12)
	_, err = os.Stat(output)
	is.NoErr(err)
	is.Equal(summary.NumPlayers, 2)
}
