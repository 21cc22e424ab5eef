package config

import (
	"errors"
	"fmt"
	"isolation/game"
	"isolation/meta"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigFile        = "config"
	ConfigLogLevel    = "log-level"
	ConfigBoardWidth  = "board-width"
	ConfigBoardHeight = "board-height"
	ConfigTimeLimit   = "time-limit"
	ConfigThreshold   = "threshold"
	ConfigSeed        = "seed"
	ConfigMetricsDir  = "metrics-dir"
)

// Agent kinds.
const (
	AgentMinimax   = "minimax"
	AgentAlphaBeta = "alphabeta"
	AgentRandom    = "random"
	AgentHuman     = "human"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	*viper.Viper
}

// PlayerConfig is the setup of one side, read from the p1-* or p2-* keys.
type PlayerConfig struct {
	Agent     string
	Heuristic string
	Depth     int
	MaxDepth  int
}

func DefaultConfig() Config {
	c := Config{}
	if err := c.Load(nil); err != nil {
		panic(err)
	}
	return c
}

// Load reads flags from args, then ISOLATION_* environment variables, then
// the optional config file; flags win over the environment, which wins over
// the file.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet("isolation", pflag.ContinueOnError)
	fs.String(ConfigFile, "", "optional config file (yaml, json or toml)")
	fs.String(ConfigLogLevel, "info", "log level: debug, info, warn or disabled")
	fs.Int(ConfigBoardWidth, meta.BoardWidth, "number of board columns")
	fs.Int(ConfigBoardHeight, meta.BoardHeight, "number of board rows")
	fs.Duration(ConfigTimeLimit, meta.TimeLimit, "time budget per move")
	fs.Duration(ConfigThreshold, meta.TimerThreshold, "time left at which a search is aborted")
	fs.Uint64(ConfigSeed, 1, "seed of random players")
	fs.String(ConfigMetricsDir, "", "directory to write game metrics to; empty disables")
	for _, p := range []string{"p1", "p2"} {
		fs.String(p+"-agent", AgentAlphaBeta, "agent: minimax, alphabeta, random or human")
		fs.String(p+"-heuristic", meta.Heuristic, "evaluator: lookahead, mobility, center, open or improved")
		fs.Int(p+"-depth", meta.SearchDepth, "fixed search depth, or first depth of iterative deepening")
		fs.Int(p+"-max-depth", 0, "last depth of iterative deepening, 0 for no limit")
	}

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	if err := c.BindPFlags(fs); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	c.SetEnvPrefix("isolation")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if path := c.GetString(ConfigFile); path != "" {
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	return c.Validate()
}

func (c *Config) Player(p game.Player) PlayerConfig {
	prefix := "p1-"
	if p == game.Player2 {
		prefix = "p2-"
	}
	return PlayerConfig{
		Agent:     c.GetString(prefix + "agent"),
		Heuristic: c.GetString(prefix + "heuristic"),
		Depth:     c.GetInt(prefix + "depth"),
		MaxDepth:  c.GetInt(prefix + "max-depth"),
	}
}

func (c *Config) TimeLimit() time.Duration {
	return c.GetDuration(ConfigTimeLimit)
}

func (c *Config) Threshold() time.Duration {
	return c.GetDuration(ConfigThreshold)
}

func (c *Config) Validate() error {
	if c.GetInt(ConfigBoardWidth) <= 0 || c.GetInt(ConfigBoardHeight) <= 0 {
		return fmt.Errorf("%w: board dimensions must be positive", ErrInvalidConfig)
	}
	if c.Threshold() < 0 {
		return fmt.Errorf("%w: threshold must not be negative", ErrInvalidConfig)
	}
	if c.TimeLimit() <= c.Threshold() {
		return fmt.Errorf("%w: time limit %v must exceed the threshold %v", ErrInvalidConfig, c.TimeLimit(), c.Threshold())
	}

	for _, p := range []game.Player{game.Player1, game.Player2} {
		pc := c.Player(p)
		switch pc.Agent {
		case AgentRandom, AgentHuman:
			continue
		case AgentMinimax, AgentAlphaBeta:
		default:
			return fmt.Errorf("%w: %v agent %q", ErrInvalidConfig, p, pc.Agent)
		}
		if _, err := game.EvaluatorByName(pc.Heuristic); err != nil {
			return fmt.Errorf("%w: %v: %w", ErrInvalidConfig, p, err)
		}
		if pc.Depth < 1 {
			return fmt.Errorf("%w: %v depth must be at least 1", ErrInvalidConfig, p)
		}
		if pc.MaxDepth != 0 && pc.MaxDepth < pc.Depth {
			return fmt.Errorf("%w: %v max depth %d is below depth %d", ErrInvalidConfig, p, pc.MaxDepth, pc.Depth)
		}
	}
	return nil
}
