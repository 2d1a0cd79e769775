package game

// Player is the human (or strategy) side of the table. It owns a wallet and
// delegates all bankroll operations to it.
type Player struct {
	seat
	name   string
	wallet *Wallet
}

// NewPlayer creates a player with a starting bankroll
func NewPlayer(name string, balance int) *Player {
	return &Player{
		name:   name,
		wallet: NewWallet(balance),
	}
}

// Name returns the player's display name
func (p *Player) Name() string {
	return p.name
}

func (p *Player) PlaceBet(amount int) bool { return p.wallet.PlaceBet(amount) }
func (p *Player) Win()                     { p.wallet.Win() }
func (p *Player) Lose()                    { p.wallet.Lose() }
func (p *Player) Push()                    { p.wallet.Push() }
func (p *Player) Balance() int             { return p.wallet.Balance() }
func (p *Player) Bet() int                 { return p.wallet.Bet() }
