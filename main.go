package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tictactoe/commentary"
	"tictactoe/config"
	"tictactoe/experiments"
	"tictactoe/experiments/metrics"
)

func main() {
	conf, err := config.Load("config.yml")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// The single supported argument is the literal "debug"; it overrides the
	// configured setting.
	if len(os.Args) > 1 && os.Args[1] == "debug" {
		conf.Debug = true
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	voice := commentary.Nop()
	if conf.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		voice = commentary.NewConsole(log.Logger, os.Stdout)
	}

	matchup := experiments.Matchup{
		AgentX:  conf.AgentX,
		AgentO:  conf.AgentO,
		Referee: conf.Referee,
		Seed:    conf.Seed,
	}

	tally, records, err := experiments.Run(matchup, conf.Trials, voice)
	if err != nil {
		log.Fatal().Err(err).Msg("campaign failed")
	}

	if conf.MetricsDir != "" {
		writer, err := metrics.NewWriter(conf.MetricsDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create metrics writer")
		}
		if err := writer.WriteGameRecords(records); err != nil {
			log.Fatal().Err(err).Msg("failed to write game records")
		}
		log.Info().Msgf("stored game records in %s", writer.Dir())
	}

	summary := metrics.Summarize(records)
	log.Info().Msgf("game length: mean %.1f steps, stddev %.1f", summary.MeanSteps, summary.StdDevSteps)

	tally.Report(os.Stdout)
}
