package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack/internal/game"
)

// Statistics aggregates the results of many sessions. Spread figures
// (mean, variance, percentiles) are per session profit.
type Statistics struct {
	Sessions   int
	SumProfit  float64
	SumProfit2 float64   // Sum of squares for variance calculation
	Values     []float64 // Per-session profit for median/percentile calculation

	Rounds      int
	Wins        int
	Losses      int
	Pushes      int
	Naturals    int
	PlayerBusts int
	DealerBusts int
	Wagered     int
	NetRounds   int // Sum of every round's net; must equal SumProfit

	Ruined int // Sessions that ended with an empty bankroll
}

// Add incorporates a finished session
func (s *Statistics) Add(r game.Report) {
	profit := float64(r.Profit())
	s.Sessions++
	s.SumProfit += profit
	s.SumProfit2 += profit * profit
	s.Values = append(s.Values, profit)

	t := r.Tally()
	s.Rounds += len(r.Rounds)
	s.Wins += t.Wins
	s.Losses += t.Losses
	s.Pushes += t.Pushes
	s.Naturals += t.Naturals
	s.PlayerBusts += t.PlayerBusts
	s.DealerBusts += t.DealerBusts
	s.Wagered += t.Wagered
	for _, round := range r.Rounds {
		s.NetRounds += round.Net()
	}

	if r.FinalBalance <= 0 {
		s.Ruined++
	}
}

// Mean returns the average profit per session
func (s *Statistics) Mean() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.SumProfit / float64(s.Sessions)
}

// Variance returns the sample variance of session profit
func (s *Statistics) Variance() float64 {
	if s.Sessions < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumProfit2 - float64(s.Sessions)*mean*mean) / float64(s.Sessions-1)
}

// StdDev returns the sample standard deviation of session profit
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Sessions))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median session profit
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the session profit at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the fraction of rounds won
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}

// HouseEdge returns the player's loss per unit wagered; negative when the
// player came out ahead.
func (s *Statistics) HouseEdge() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return -s.SumProfit / float64(s.Wagered)
}

// Validate checks that the accounting is consistent
func (s *Statistics) Validate() error {
	if s.Sessions <= 0 {
		return fmt.Errorf("invalid sessions count: %d", s.Sessions)
	}
	if len(s.Values) != s.Sessions {
		return fmt.Errorf("values array length (%d) does not match sessions count (%d)",
			len(s.Values), s.Sessions)
	}
	if s.Wins+s.Losses+s.Pushes != s.Rounds {
		return fmt.Errorf("outcomes (%d wins, %d losses, %d pushes) do not add up to %d rounds",
			s.Wins, s.Losses, s.Pushes, s.Rounds)
	}
	if math.Abs(float64(s.NetRounds)-s.SumProfit) > 1e-6 {
		return fmt.Errorf("ledger mismatch: rounds net %d, session profit %.0f", s.NetRounds, s.SumProfit)
	}
	return nil
}

// Summary is the serialisable digest of a run
type Summary struct {
	Sessions    int        `json:"sessions"`
	Rounds      int        `json:"rounds"`
	Wins        int        `json:"wins"`
	Losses      int        `json:"losses"`
	Pushes      int        `json:"pushes"`
	Naturals    int        `json:"naturals"`
	PlayerBusts int        `json:"player_busts"`
	DealerBusts int        `json:"dealer_busts"`
	Ruined      int        `json:"ruined"`
	Wagered     int        `json:"wagered"`
	MeanProfit  float64    `json:"mean_profit"`
	Median      float64    `json:"median_profit"`
	StdDev      float64    `json:"std_dev"`
	CI95        [2]float64 `json:"ci95"`
	WinRate     float64    `json:"win_rate"`
	HouseEdge   float64    `json:"house_edge"`
}

// Summary computes the digest of the collected results
func (s *Statistics) Summary() Summary {
	low, high := s.ConfidenceInterval95()
	return Summary{
		Sessions:    s.Sessions,
		Rounds:      s.Rounds,
		Wins:        s.Wins,
		Losses:      s.Losses,
		Pushes:      s.Pushes,
		Naturals:    s.Naturals,
		PlayerBusts: s.PlayerBusts,
		DealerBusts: s.DealerBusts,
		Ruined:      s.Ruined,
		Wagered:     s.Wagered,
		MeanProfit:  s.Mean(),
		Median:      s.Median(),
		StdDev:      s.StdDev(),
		CI95:        [2]float64{low, high},
		WinRate:     s.WinRate(),
		HouseEdge:   s.HouseEdge(),
	}
}
