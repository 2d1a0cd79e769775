package game

// Wallet tracks a player's bankroll and the wager riding on the current round.
// A bet of zero means no wager is active.
type Wallet struct {
	balance int
	bet     int
}

// NewWallet creates a wallet holding balance
func NewWallet(balance int) *Wallet {
	return &Wallet{balance: balance}
}

// Balance returns the bankroll
func (w *Wallet) Balance() int {
	return w.balance
}

// Bet returns the active wager
func (w *Wallet) Bet() int {
	return w.bet
}

// PlaceBet sets the wager when 0 < amount <= balance. Any other amount is
// rejected and clears the wager.
func (w *Wallet) PlaceBet(amount int) bool {
	if amount > 0 && amount <= w.balance {
		w.bet = amount
		return true
	}
	w.bet = 0
	return false
}

// Win pays the wager at even money
func (w *Wallet) Win() {
	w.balance += w.bet
	w.bet = 0
}

// Lose forfeits the wager
func (w *Wallet) Lose() {
	w.balance -= w.bet
	w.bet = 0
}

// Push returns the wager without changing the balance
func (w *Wallet) Push() {
	w.bet = 0
}
