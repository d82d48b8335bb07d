package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// ActivityConfig holds how many times each action runs per account.
type ActivityConfig struct {
	BridgeRepetitions int `json:"bridgeRepetitions"`
	SwapRepetitions   int `json:"swapRepetitions"`
}

// DefaultActivityConfig returns one bridge and one swap per account.
func DefaultActivityConfig() *ActivityConfig {
	return &ActivityConfig{
		BridgeRepetitions: 1,
		SwapRepetitions:   1,
	}
}

// Normalize coerces every count below one to one.
func (c *ActivityConfig) Normalize() {
	if c.BridgeRepetitions < 1 {
		c.BridgeRepetitions = 1
	}
	if c.SwapRepetitions < 1 {
		c.SwapRepetitions = 1
	}
}

// ParseRepetitions converts a loosely typed value to a repetition count.
// Anything that is not a positive number yields 1.
func ParseRepetitions(v any) int {
	var f float64
	switch x := v.(type) {
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case float64:
		f = x
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 1
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 1
		}
		f = parsed
	default:
		return 1
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 1 {
		return 1
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// RunState is the runner's lifecycle flags. CancelRequested is only ever
// true while Running is true.
type RunState struct {
	Running         bool
	CancelRequested bool
}

// Phase names the runner state derived from RunState.
func (s RunState) Phase() string {
	switch {
	case s.Running && s.CancelRequested:
		return "stopping"
	case s.Running:
		return "running"
	default:
		return "idle"
	}
}

// DurationRange is an inclusive range a random delay is drawn from.
type DurationRange struct {
	Min time.Duration
	Max time.Duration
}

// Pacing holds the delays between on-chain operations.
type Pacing struct {
	// Between repetitions of the same action.
	Repetition DurationRange
	// Between the bridge phase and the swap phase of one account.
	Phase DurationRange
	// Between two accounts.
	Account time.Duration
}

// DefaultPacing returns the delays used for live runs.
func DefaultPacing() Pacing {
	return Pacing{
		Repetition: DurationRange{Min: 8 * time.Second, Max: 20 * time.Second},
		Phase:      DurationRange{Min: 7 * time.Second, Max: 15 * time.Second},
		Account:    30 * time.Second,
	}
}

// ActionTally counts executor outcomes.
type ActionTally struct {
	Succeeded int
	Failed    int
}

// Total returns the number of attempts.
func (t ActionTally) Total() int {
	return t.Succeeded + t.Failed
}

// RunSummary describes a finished activity run.
type RunSummary struct {
	Accounts  int
	Processed int
	Bridge    ActionTally
	Swap      ActionTally
	Cancelled bool
	Crashed   bool
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns the wall time of the run.
func (s RunSummary) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}
