package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/terminal"
)

type PlayCmd struct {
	Name    string `help:"Player name (prompted when not set here or in the config)"`
	Balance int    `help:"Starting balance (prompted when not set here or in the config)"`
	Seed    int64  `help:"Shuffle seed, 0 for random"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := g.setupLogger(cfg, "PLAY")
	if err != nil {
		return err
	}
	defer closeLog()

	terminal.ConfigureColor(os.Stdout, g.NoColor)
	console := terminal.NewConsole(os.Stdin, os.Stdout)
	console.Print(terminal.Banner(" ♠ ♥ Blackjack ♦ ♣ "))

	name := firstNonEmpty(c.Name, cfg.Player.Name)
	balance := c.Balance
	if balance == 0 {
		balance = cfg.Player.StartingBalance
	}
	name, balance, err = promptPlayer(console, name, balance)
	if errors.Is(err, terminal.ErrInputClosed) {
		return nil
	}
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	seed = randutil.Seed(seed)
	logger.Info("Starting game", "player", name, "balance", balance, "seed", seed)

	engine := game.NewEngine(game.Config{
		IO:     console,
		Shoe:   deck.NewShoe(randutil.New(seed)),
		Player: game.NewPlayer(name, balance),
		Logger: logger,
	})

	ctx, cancel := signalContext(logger)
	defer cancel()

	report, err := game.NewSession(engine).Run(ctx)
	if err != nil && !errors.Is(err, terminal.ErrInputClosed) {
		return err
	}

	profit := report.Profit()
	console.Print(terminal.Profit(fmt.Sprintf("You finished %+d", profit), profit) + "\n")
	return nil
}

// promptPlayer asks for whatever the flags and config left unset
func promptPlayer(io terminal.IO, name string, balance int) (string, int, error) {
	var err error
	for name == "" {
		io.Print("Enter your name: ")
		if name, err = io.ReadLine(); err != nil {
			return "", 0, err
		}
		name = strings.TrimSpace(name)
	}
	for balance <= 0 {
		io.Print("Enter your starting balance: ")
		if balance, err = io.ReadInt(); err != nil {
			return "", 0, err
		}
		if balance <= 0 {
			io.Print("Balance must be positive.\n")
		}
	}
	return name, balance, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
