package main

import (
	"fmt"
	"io"
	"isolation/config"
	"isolation/engine"
	"isolation/experiments"
	"isolation/game"
	"isolation/player"
	"isolation/searcher"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.GetString(config.ConfigLogLevel))
	log.Debug().Msgf("loaded config: %v", cfg.AllSettings())

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("game failed")
		os.Exit(1)
	}
}

func setupLogging(level string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}

func run(cfg *config.Config) error {
	width, height := cfg.GetInt(config.ConfigBoardWidth), cfg.GetInt(config.ConfigBoardHeight)
	board := game.NewBoard(width, height)

	var agents []player.Agent
	var options []engine.Option
	setup := experiments.Setup{Width: width, Height: height}
	for _, p := range []game.Player{game.Player1, game.Player2} {
		pc := cfg.Player(p)
		agent, err := newAgent(cfg, p, pc)
		if err != nil {
			return err
		}
		if closer, ok := agent.(io.Closer); ok {
			defer closer.Close()
		}
		agents = append(agents, agent)

		timeLimit := cfg.TimeLimit()
		if pc.Agent == config.AgentHuman {
			options = append(options, engine.WithUntimed(p))
			timeLimit = 0
		}
		setup.Players = append(setup.Players, experiments.PlayerSetup{
			Player:    p.String(),
			Agent:     pc.Agent,
			Heuristic: pc.Heuristic,
			Depth:     pc.Depth,
			MaxDepth:  pc.MaxDepth,
			TimeLimit: timeLimit,
		})
	}
	options = append(options, engine.WithTimeLimit(cfg.TimeLimit()))

	e := engine.LocalEngine(board, agents, options...)
	setup.StartTime = time.Now()
	outcome, metrics := e.Run()
	setup.EndTime = time.Now()
	setup.Duration = setup.EndTime.Sub(setup.StartTime)
	setup.Winner = outcome.Winner.String()
	setup.Reason = string(outcome.Reason)

	fmt.Println(e.State)
	fmt.Printf("%v wins after %d moves: %s\n", outcome.Winner, len(outcome.History), outcome.Reason)

	dir := cfg.GetString(config.ConfigMetricsDir)
	if dir == "" {
		return nil
	}
	writer, err := experiments.NewWriter(dir)
	if err != nil {
		return err
	}
	if err := writer.WriteSetup(setup); err != nil {
		return err
	}
	if err := writer.WriteMetrics(1, metrics); err != nil {
		return err
	}
	log.Info().Msgf("metrics written to %s", writer.Dir())
	return nil
}

func newAgent(cfg *config.Config, p game.Player, pc config.PlayerConfig) (player.Agent, error) {
	switch pc.Agent {
	case config.AgentRandom:
		return player.NewRandomPlayer(cfg.GetUint64(config.ConfigSeed) + uint64(p)), nil
	case config.AgentHuman:
		human, err := player.NewHumanPlayer()
		if err != nil {
			return nil, err
		}
		return human, nil
	}

	evaluate, err := game.EvaluatorByName(pc.Heuristic)
	if err != nil {
		return nil, err
	}
	sc := searcher.NewConfig(
		searcher.WithDepth(pc.Depth),
		searcher.WithMaxDepth(pc.MaxDepth),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithThreshold(cfg.Threshold()),
		searcher.WithMetrics(),
	)
	if pc.Agent == config.AgentMinimax {
		return player.NewMinimaxPlayer(sc), nil
	}
	return player.NewAlphaBetaPlayer(sc), nil
}
