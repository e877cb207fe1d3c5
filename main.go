package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/infoFiets/llm-catan-arena/config"
	"github.com/infoFiets/llm-catan-arena/engine"
	"github.com/infoFiets/llm-catan-arena/game"
	"github.com/infoFiets/llm-catan-arena/gamemaster"
	"github.com/infoFiets/llm-catan-arena/metrics"
	"github.com/infoFiets/llm-catan-arena/player"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to YAML run configuration")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Msgf("load config: %v", err)
		}
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Msgf("run: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	seats := make([]game.Seat, 0, len(cfg.Seats))
	seatConfigs := make([]gamemaster.SeatConfig, 0, len(cfg.Seats))
	seatRecords := make([]metrics.SeatRecord, 0, len(cfg.Seats))
	for _, s := range cfg.Seats {
		seats = append(seats, game.Seat(s.Seat))
		seatConfigs = append(seatConfigs, gamemaster.SeatConfig{
			Seat:  game.Seat(s.Seat),
			Agent: s.Agent,
			Mode:  gamemaster.Mode(s.Mode),
			Model: s.Model,
		})
		seatRecords = append(seatRecords, metrics.SeatRecord{
			Seat:  s.Seat,
			Agent: s.Agent,
			Mode:  s.Mode,
			Model: s.Model,
		})
	}

	router, err := gamemaster.NewRouter(seatConfigs, bindAdapter(cfg.Game.Seed))
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	for i := 0; i < cfg.Game.Matches; i++ {
		rules := game.NewStandardRules()
		rules.VictoryPoints = cfg.Game.VictoryPoints
		state := game.NewStandard(seats, rules, cfg.Game.Seed+uint64(i))
		eng := engine.NewLocal(state)

		orch, err := gamemaster.NewOrchestrator(eng, router,
			gamemaster.WithTurnDeadline(time.Duration(cfg.Game.TurnDeadline)),
			gamemaster.WithMaxTurns(cfg.Game.MaxTurns),
			gamemaster.WithSelectRetries(cfg.Game.SelectRetries),
			gamemaster.WithCollector(collector),
		)
		if err != nil {
			return err
		}

		result, err := orch.Run(ctx)
		if err != nil {
			log.Error().Msgf("match %d/%d aborted: %v", i+1, cfg.Game.Matches, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		log.Info().Msgf("match %d/%d: %s winner=%q turns=%d",
			i+1, cfg.Game.Matches, result.Outcome, result.Winner, result.Turns)
	}

	writer, err := metrics.NewWriter(cfg.Logging.OutputDir)
	if err != nil {
		return err
	}
	if err := writer.WriteSeatRecords(seatRecords); err != nil {
		return err
	}
	if err := writer.WriteMatchRecords(collector.MatchRecords()); err != nil {
		return err
	}
	if err := writer.WriteTurnRecords(collector.TurnRecords()); err != nil {
		return err
	}
	log.Info().Msgf("records written to %s", writer.Dir())
	return nil
}

// bindAdapter maps a seat config to its adapter. Random baselines get a
// derived per-seat seed so repeated runs are reproducible.
func bindAdapter(seed uint64) gamemaster.Binder {
	next := seed
	return func(cfg gamemaster.SeatConfig) (gamemaster.Adapter, error) {
		switch cfg.Agent {
		case "random", "":
			next++
			return player.NewRandom(next), nil
		case "openrouter":
			if cfg.Model == "" {
				return nil, fmt.Errorf("seat %q: openrouter agent requires a model id", cfg.Seat)
			}
			client, err := player.NewClient(cfg.Model)
			if err != nil {
				return nil, err
			}
			if cfg.Mode == gamemaster.ModeFreeText {
				return player.NewFreeText(client), nil
			}
			return player.NewStructured(client), nil
		default:
			return nil, fmt.Errorf("seat %q: unknown agent %q", cfg.Seat, cfg.Agent)
		}
	}
}
