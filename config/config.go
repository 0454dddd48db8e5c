// Package config holds the settings for the self-play harness. Values
// come from command-line flags, then AZUL_* environment variables, then
// the defaults below.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug     = "debug"
	ConfigLogLevel  = "log-level"
	ConfigPlayers   = "players"
	ConfigGames     = "games"
	ConfigThreads   = "threads"
	ConfigMaxRounds = "max-rounds"
	ConfigSeedFile  = "seed-file"
	ConfigOutput    = "output"
	ConfigHistogram = "histogram"
)

type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config with only the defaults set.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigLogLevel, "info")
	c.SetDefault(ConfigPlayers, 2)
	c.SetDefault(ConfigGames, 1000)
	c.SetDefault(ConfigThreads, 4)
	c.SetDefault(ConfigMaxRounds, 50)
	c.SetDefault(ConfigSeedFile, "")
	c.SetDefault(ConfigOutput, "")
	c.SetDefault(ConfigHistogram, false)
}

// Load parses the given command-line arguments and binds them, along
// with the environment, over the defaults.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("azul", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigLogLevel, "info", "log level: debug, info, warn, error")
	fs.Int(ConfigPlayers, 2, "players per game (2-4)")
	fs.Int(ConfigGames, 1000, "number of games to play")
	fs.Int(ConfigThreads, 4, "number of games to play at once")
	fs.Int(ConfigMaxRounds, 50, "stop a game that hasn't ended after this many rounds")
	fs.String(ConfigSeedFile, "", "read game seeds from this file, or write them to it if it doesn't exist")
	fs.String(ConfigOutput, "", "write per-game results as CSV to this file")
	fs.Bool(ConfigHistogram, false, "print a histogram of winning scores")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("azul")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return nil
}
