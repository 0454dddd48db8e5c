package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetInt(ConfigPlayers), 2)
	is.Equal(cfg.GetInt(ConfigMaxRounds), 50)
	is.Equal(cfg.GetString(ConfigLogLevel), "info")
	is.True(!cfg.GetBool(ConfigDebug))
	is.Equal(DefaultConfig().GetInt(ConfigGames), 1000)
}

func TestFlagsOverrideEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("AZUL_PLAYERS", "3")
	t.Setenv("AZUL_SEED_FILE", "/tmp/seeds.txt")
	t.Setenv("AZUL_GAMES", "7")

	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--games", "20", "--histogram", "--threads=2"}))
	is.Equal(cfg.GetInt(ConfigPlayers), 3)
	is.Equal(cfg.GetString(ConfigSeedFile), "/tmp/seeds.txt")
	is.Equal(cfg.GetInt(ConfigGames), 20)
	is.Equal(cfg.GetInt(ConfigThreads), 2)
	is.True(cfg.GetBool(ConfigHistogram))
}

func TestBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.True(cfg.Load([]string{"--no-such-flag"}) != nil)
}
