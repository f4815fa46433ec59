package main

import (
	"flag"
	"fmt"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"inbetween-sim/internal/config"
	"inbetween-sim/internal/console"
	"inbetween-sim/internal/rng"
	"inbetween-sim/internal/util"
	"inbetween-sim/pkg/playable"
	"inbetween-sim/pkg/playable/inbetween"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	rounds  = flag.Int("rounds", 0, "the number of rounds to play (overrides the config)")
	players = flag.Int("players", 0, "the number of players (overrides the config)")
	seed    = flag.Int64("seed", 0, "seeds the random number generator for a reproducible game (overrides the config)")
	verbose = flag.Bool("v", false, "print every game event")
)

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance().Game
	if *rounds > 0 {
		cfg.Rounds = *rounds
	}

	if *players > 0 {
		cfg.Players = *players
	}

	if *seed != 0 {
		cfg.Seed = *seed
	}

	opts, err := cfg.Options()
	if err != nil {
		logrus.WithError(err).Fatal("could not parse the game configuration")
	}

	if cfg.UsesStrategy(inbetween.StrategyUser) {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			logrus.Fatal("the user strategy requires an interactive terminal")
		}

		opts.Decider = console.NewPrompter(os.Stdin, os.Stdout)
	}

	var gen rng.Generator = rng.Crypto{}
	if cfg.Seed != 0 {
		gen = rng.NewSeeded(cfg.Seed)
	}

	game, err := inbetween.NewGame(logrus.StandardLogger(), opts, gen)
	if err != nil {
		logrus.WithError(err).Fatal("could not create the game")
	}

	names := util.GetRandomNames(gen, opts.Players)
	if *verbose || cfg.UsesStrategy(inbetween.StrategyUser) {
		game.SetLogListener(printEvents(names))
	}

	logrus.WithFields(logrus.Fields{
		"game":    game.ID(),
		"players": opts.Players,
		"rounds":  cfg.Rounds,
	}).Info("starting simulation")

	if err := game.Play(cfg.Rounds); err != nil {
		logrus.WithError(err).Fatal("simulation failed")
	}

	if err := render(game.State(), names); err != nil {
		logrus.WithError(err).Fatal("could not render the results")
	}
}

var amountRx = regexp.MustCompile(`\$\{(-?\d+)\}`)

// printEvents returns a listener that prints game events, with "{}" replaced by the player's name
func printEvents(names []string) playable.LogListener {
	return func(messages []*playable.LogMessage) {
		for _, msg := range messages {
			text := amountRx.ReplaceAllString(msg.Message, "$$$1")
			for _, id := range msg.PlayerIDs {
				text = strings.Replace(text, "{}", names[id-1], 1)
			}

			if len(msg.PlayerIDs) == 0 {
				pterm.Info.Println(text)
			} else {
				pterm.Println(text)
			}
		}
	}
}

func render(state *inbetween.GameState, names []string) error {
	data := pterm.TableData{{"Seat", "Player", "Strategy", "Purse"}}
	for i, p := range state.Players {
		data = append(data, []string{
			strconv.FormatInt(p.PlayerID, 10),
			names[i],
			p.Strategy.String(),
			fmt.Sprintf("$%d", p.Purse),
		})
	}

	pterm.DefaultHeader.Printfln("In-Between after %d round(s)", state.Round)
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	pterm.Info.Printfln("Pot: $%d", state.Pot)
	return nil
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
