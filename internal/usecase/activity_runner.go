package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/config"
)

// ActivityActions are the executors one activity run repeats per account.
type ActivityActions struct {
	Bridge Action
	Swap   Action
}

// ProvideActivityActions binds the concrete executors for injection.
func ProvideActivityActions(bridge *Bridge, swap *Swap) ActivityActions {
	return ActivityActions{Bridge: bridge, Swap: swap}
}

// ActivityRunner drives the sequential per-account activity loop. At most
// one run is active at a time.
//
// Stop is cooperative: it is observed before each repetition, before the
// swap phase and before the next account. The pauses at those boundaries
// end early on stop, but chain calls and confirmation waits in flight run
// to completion under the context given to Start.
type ActivityRunner struct {
	accounts AccountRepository
	configs  ActivityConfigRepository
	actions  ActivityActions
	rnd      Randomizer
	clock    Clock
	pacing   domain.Pacing
	log      *slog.Logger

	mu     sync.Mutex
	state  domain.RunState
	cancel context.CancelFunc
	done   chan struct{}
	last   *domain.RunSummary
}

// NewActivityRunner creates a new ActivityRunner
func NewActivityRunner(
	cfg *config.RuntimeConfig,
	accounts AccountRepository,
	configs ActivityConfigRepository,
	actions ActivityActions,
	rnd Randomizer,
	clock Clock,
	log *slog.Logger,
) *ActivityRunner {
	return &ActivityRunner{
		accounts: accounts,
		configs:  configs,
		actions:  actions,
		rnd:      rnd,
		clock:    clock,
		pacing:   cfg.Pacing,
		log:      log,
	}
}

// Start launches a run over the current accounts and returns true, or
// returns false without side effects when a run is already active or no
// accounts are loaded.
func (r *ActivityRunner) Start(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.Running {
		r.log.Warn(domain.ErrAlreadyRunning.Error())
		return false
	}

	set := r.accounts.Snapshot()
	if set.Empty() {
		r.log.Warn("activity not started", "reason", domain.ErrNoAccounts)
		return false
	}

	activity, err := r.configs.Load(ctx)
	if err != nil {
		r.log.Warn("failed to load activity config, using defaults", "path", r.configs.GetPath(), "error", err)
		activity = domain.DefaultActivityConfig()
	}
	activity.Normalize()

	pacing, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.state = domain.RunState{Running: true}
	r.cancel = cancel
	r.done = done

	r.log.Info("activity started",
		"accounts", len(set.Accounts),
		"proxies", len(set.Proxies),
		"bridge", activity.BridgeRepetitions,
		"swap", activity.SwapRepetitions)

	go r.run(ctx, pacing, set, *activity, done)
	return true
}

// Stop requests cancellation of the active run. It returns false when no
// run is active.
func (r *ActivityRunner) Stop() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.state.Running {
		r.log.Info(domain.ErrNotRunning.Error())
		return false
	}
	if r.state.CancelRequested {
		r.log.Info("stop already requested")
		return true
	}
	r.state.CancelRequested = true
	r.cancel()
	r.log.Info("stop requested, finishing current step")
	return true
}

// State returns a copy of the run flags.
func (r *ActivityRunner) State() domain.RunState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Wait blocks until the most recently started run has exited.
func (r *ActivityRunner) Wait() {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	if done != nil {
		<-done
	}
}

// LastSummary returns the summary of the last finished run, if any.
func (r *ActivityRunner) LastSummary() *domain.RunSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return nil
	}
	summary := *r.last
	return &summary
}

func (r *ActivityRunner) run(ctx, pacing context.Context, set domain.AccountSet, activity domain.ActivityConfig, done chan struct{}) {
	summary := &domain.RunSummary{
		Accounts:  len(set.Accounts),
		StartedAt: r.clock.Now(),
	}
	defer close(done)
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("activity panicked", "panic", rec)
			summary.Crashed = true
		}
		r.finish(summary)
	}()

	last := len(set.Accounts) - 1
	for i, account := range set.Accounts {
		if r.cancelRequested() {
			summary.Cancelled = true
			return
		}

		proxy := domain.ProxyFor(set.Proxies, i)
		r.log.Info("processing account",
			"account", account.Number(),
			"total", len(set.Accounts),
			"proxy", domain.RedactProxy(proxy))

		if !r.repeat(ctx, pacing, r.actions.Bridge, account, proxy, activity.BridgeRepetitions, &summary.Bridge) {
			summary.Cancelled = true
			return
		}

		if r.cancelRequested() || !r.pause(pacing, r.rnd.DurationBetween(r.pacing.Phase.Min, r.pacing.Phase.Max)) {
			summary.Cancelled = true
			return
		}

		if !r.repeat(ctx, pacing, r.actions.Swap, account, proxy, activity.SwapRepetitions, &summary.Swap) {
			summary.Cancelled = true
			return
		}
		summary.Processed++
		r.log.Info("account finished", "account", account.Number())

		if i < last {
			if r.cancelRequested() || !r.pause(pacing, r.pacing.Account) {
				summary.Cancelled = true
				return
			}
		}
	}
}

// repeat executes action n times, pausing between repetitions. It returns
// false when a stop was observed before all repetitions started.
func (r *ActivityRunner) repeat(ctx, pacing context.Context, action Action, account domain.Account, proxy string, n int, tally *domain.ActionTally) bool {
	for rep := 1; rep <= n; rep++ {
		if rep > 1 && !r.pause(pacing, r.rnd.DurationBetween(r.pacing.Repetition.Min, r.pacing.Repetition.Max)) {
			return false
		}
		if r.cancelRequested() {
			return false
		}

		r.log.Debug("executing", "action", action.Name(), "account", account.Number(), "repetition", rep, "of", n)
		if action.Execute(ctx, account, proxy) {
			tally.Succeeded++
		} else {
			tally.Failed++
		}
	}
	return true
}

// pause sleeps for d unless the run is stopped first.
func (r *ActivityRunner) pause(pacing context.Context, d time.Duration) bool {
	if d <= 0 {
		return pacing.Err() == nil
	}
	r.log.Debug("waiting", "duration", d.Round(time.Second))
	return r.clock.Sleep(pacing, d) == nil
}

func (r *ActivityRunner) cancelRequested() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.CancelRequested
}

func (r *ActivityRunner) finish(summary *domain.RunSummary) {
	summary.EndedAt = r.clock.Now()

	r.mu.Lock()
	r.state = domain.RunState{}
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.last = summary
	r.mu.Unlock()

	status := "completed"
	switch {
	case summary.Crashed:
		status = "crashed"
	case summary.Cancelled:
		status = "cancelled"
	}
	r.log.Info("activity "+status,
		"processed", summary.Processed,
		"accounts", summary.Accounts,
		"bridge_ok", summary.Bridge.Succeeded,
		"bridge_failed", summary.Bridge.Failed,
		"swap_ok", summary.Swap.Succeeded,
		"swap_failed", summary.Swap.Failed,
		"elapsed", summary.Duration().Round(time.Second))
}
