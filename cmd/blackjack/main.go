package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lox/blackjack/internal/bot"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config  string `short:"c" default:"blackjack.hcl" type:"path" help:"HCL configuration file (ignored when missing)"`
	LogFile string `help:"Debug log file (overrides the config file)"`
	Debug   bool   `help:"Enable debug logging"`
	NoColor bool   `help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play blackjack at the console"`
	Simulate SimulateCmd      `cmd:"" help:"Run automated sessions and report statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player console blackjack"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
			"bots":    strings.Join(bot.Names(), ", "),
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
