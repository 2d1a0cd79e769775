// Package game implements the rules of single-player blackjack against the
// house.
//
// A Session repeatedly asks the player whether to play, reshuffles the shoe
// and hands control to an Engine, which plays one round through its states:
// bet collection, the initial deal (player, dealer, player, dealer), the
// natural blackjack check, the player's hit/stand loop, the dealer drawing to
// 17 and the final showdown.
//
// # Deterministic Testing
//
// All collaborators are injected. A stacked shoe fixes the cards and a
// scripted terminal supplies the answers:
//
//	shoe := deck.NewStackedShoe(deck.MustParseCards("AsKdKh5c")...)
//	script := terminal.NewScript("10")
//	e := game.NewEngine(game.Config{IO: script, Shoe: shoe, Player: game.NewPlayer("Ana", 100)})
//	res, err := e.PlayRound(1)
//
// Automated players supply a Decider and Bettor instead of reading the
// terminal; see the bot package.
package game
