package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/simulator"
	"github.com/lox/blackjack/internal/terminal"
)

type SimulateCmd struct {
	Sessions int    `help:"Number of independent sessions (default from config)"`
	Rounds   int    `help:"Maximum rounds per session (default from config)"`
	Balance  int    `help:"Starting balance per session (default from config)"`
	Bet      int    `help:"Flat bet per round (default from config)"`
	Bot      string `help:"Decision bot: ${bots} (default from config)"`
	Seed     int64  `help:"Base RNG seed, 0 for random"`
	Workers  int    `help:"Concurrent sessions, 0 for one per CPU"`

	StatsFile string `type:"path" help:"Write a JSON summary to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := g.setupLogger(cfg, "SIM")
	if err != nil {
		return err
	}
	defer closeLog()

	sc := simulator.Config{
		Sessions: pick(c.Sessions, cfg.Simulation.Sessions),
		Rounds:   pick(c.Rounds, cfg.Simulation.Rounds),
		Balance:  pick(c.Balance, cfg.Simulation.Balance),
		Bet:      pick(c.Bet, cfg.Simulation.Bet),
		Bot:      firstNonEmpty(c.Bot, cfg.Simulation.Bot),
		Seed:     c.Seed,
		Workers:  pick(c.Workers, cfg.Simulation.Workers),
		Logger:   logger,
	}
	if sc.Seed == 0 {
		sc.Seed = cfg.Game.Seed
	}

	sim, err := simulator.New(sc)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	terminal.ConfigureColor(os.Stdout, g.NoColor)
	fmt.Print(terminal.Banner(" ♠ ♥ Blackjack Simulator ♦ ♣ "))
	fmt.Printf("Simulating %d sessions of up to %d rounds with %s-bot (balance %d, bet %d)\n",
		sc.Sessions, sc.Rounds, sc.Bot, sc.Balance, sc.Bet)

	res, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	printResults(res, sc)

	if c.StatsFile != "" {
		if err := fileutil.WriteJSONAtomic(c.StatsFile, res.Stats.Summary()); err != nil {
			return fmt.Errorf("failed to write stats file: %w", err)
		}
		logger.Info("Stats written to file", "file", c.StatsFile)
	}
	return nil
}

func printResults(res *simulator.Result, sc simulator.Config) {
	stats := res.Stats
	low, high := stats.ConfidenceInterval95()

	fmt.Printf("\n=== FINAL RESULTS vs %s-bot ===\n", sc.Bot)
	fmt.Printf("Seed: %d\n", res.Seed)
	fmt.Printf("Sessions: %d, rounds played: %d\n", stats.Sessions, stats.Rounds)
	fmt.Printf("Total time: %v\n", res.Elapsed.Round(time.Millisecond))
	if secs := res.Elapsed.Seconds(); secs > 0 {
		fmt.Printf("Performance: %.0f rounds/sec\n", float64(stats.Rounds)/secs)
	}

	fmt.Printf("\n=== SESSION PROFIT ===\n")
	mean := stats.Mean()
	fmt.Println(terminal.Profit(fmt.Sprintf("Mean: %.2f per session", mean), sign(mean)))
	fmt.Printf("Median: %.2f\n", stats.Median())
	fmt.Printf("Std Dev: %.2f\n", stats.StdDev())
	fmt.Printf("Std Error: %.2f\n", stats.StdError())
	fmt.Printf("95%% CI: [%.2f, %.2f]\n", low, high)
	fmt.Printf("Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	fmt.Printf("Ruined: %d sessions (%.1f%%)\n", stats.Ruined, pct(stats.Ruined, stats.Sessions))

	fmt.Printf("\n=== ROUND OUTCOMES ===\n")
	fmt.Printf("Won: %d (%.1f%%), lost: %d (%.1f%%), pushed: %d (%.1f%%)\n",
		stats.Wins, pct(stats.Wins, stats.Rounds),
		stats.Losses, pct(stats.Losses, stats.Rounds),
		stats.Pushes, pct(stats.Pushes, stats.Rounds))
	fmt.Printf("Naturals: %d, player busts: %d, dealer busts: %d\n",
		stats.Naturals, stats.PlayerBusts, stats.DealerBusts)
	fmt.Printf("Wagered: %d\n", stats.Wagered)
	edge := stats.HouseEdge()
	fmt.Println(terminal.Profit(fmt.Sprintf("House edge: %.2f%%", edge*100), -sign(edge)))
}

func pick(flag, fallback int) int {
	if flag != 0 {
		return flag
	}
	return fallback
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
