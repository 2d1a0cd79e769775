package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/terminal"
)

// Config holds configuration for running simulations
type Config struct {
	Sessions int    // Independent sessions to play
	Rounds   int    // Maximum rounds per session
	Balance  int    // Starting bankroll of every session
	Bet      int    // Flat wager per round
	Bot      string // Registered bot name, see bot.Names
	Seed     int64  // Base seed; 0 picks one at random
	Workers  int    // Sessions played concurrently; 0 means GOMAXPROCS
	Clock    quartz.Clock
	Logger   *log.Logger
}

// Result is the outcome of a simulation run
type Result struct {
	Stats   *statistics.Statistics
	Seed    int64
	Elapsed time.Duration
}

// Simulator plays many automated sessions and aggregates their statistics
type Simulator struct {
	config Config
	bot    bot.Factory
}

// New validates the configuration and creates a simulator
func New(config Config) (*Simulator, error) {
	if config.Sessions <= 0 {
		return nil, fmt.Errorf("sessions must be positive, got %d", config.Sessions)
	}
	if config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", config.Rounds)
	}
	if config.Balance <= 0 {
		return nil, fmt.Errorf("balance must be positive, got %d", config.Balance)
	}
	if config.Bet <= 0 {
		return nil, fmt.Errorf("bet must be positive, got %d", config.Bet)
	}
	factory, err := bot.Lookup(config.Bot)
	if err != nil {
		return nil, err
	}

	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Simulator{config: config, bot: factory}, nil
}

// Run plays every session and returns the aggregated statistics. Sessions
// are independent: each one owns its shoe, player and generator, seeded from
// the base seed plus the session index.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	cfg := s.config
	seed := randutil.Seed(cfg.Seed)
	start := cfg.Clock.Now()
	cfg.Logger.Info("Starting simulation",
		"sessions", cfg.Sessions,
		"rounds", cfg.Rounds,
		"bot", cfg.Bot,
		"seed", seed,
		"workers", cfg.Workers)

	reports := make([]game.Report, cfg.Sessions)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := range cfg.Sessions {
		g.Go(func() error {
			report, err := s.playSession(ctx, i, seed+int64(i))
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range reports {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := cfg.Clock.Since(start)
	cfg.Logger.Info("Simulation complete", "rounds", stats.Rounds, "elapsed", elapsed)
	return &Result{Stats: stats, Seed: seed, Elapsed: elapsed}, nil
}

func (s *Simulator) playSession(ctx context.Context, index int, seed int64) (game.Report, error) {
	cfg := s.config
	rng := randutil.New(seed)
	logger := cfg.Logger.With("session", index)

	engine := game.NewEngine(game.Config{
		IO:      terminal.Discard{},
		Shoe:    deck.NewShoe(rng),
		Player:  game.NewPlayer(fmt.Sprintf("%s-%d", cfg.Bot, index), cfg.Balance),
		Decider: s.bot(rng, logger),
		Bettor:  bot.FlatBet(cfg.Bet),
		Clock:   cfg.Clock,
		Logger:  logger,
	})
	session := game.NewSession(engine, game.WithAutoConfirm(), game.WithMaxRounds(cfg.Rounds))
	return session.Run(ctx)
}
