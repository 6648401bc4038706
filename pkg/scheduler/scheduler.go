package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newswire/pkg/domain"
)

const maxRecentErrors = 10

// Scheduler drives poll cycles on a timer or on demand. At most one cycle runs at any time,
// a trigger arriving while a cycle is in progress is skipped, not queued.
type Scheduler struct {
	cycle         *cycleRunner
	broadcaster   BroadcastSink
	statsProvider StatsProvider

	shutdownTimeout time.Duration
	shutdownStep    time.Duration
	now             func() time.Time

	mu      sync.Mutex
	running bool
	polling bool
	stats   domain.SchedulerStats
	cancel  context.CancelFunc
	wg      sync.WaitGroup // timer loop
}

// Params contains the dependencies and settings for creating a Scheduler
type Params struct {
	SourceManager SourceManager
	ItemManager   ItemManager
	Parser        Parser
	Scorer        Scorer
	Broadcaster   BroadcastSink // optional
	StatsProvider StatsProvider // optional, stats are not broadcast without it

	SourceDelay     time.Duration // pause between sources within a cycle
	ShutdownTimeout time.Duration // max wait for an in-flight cycle on shutdown
	ShutdownStep    time.Duration // polling step of the shutdown wait
}

// NewScheduler creates a new scheduler instance. A negative SourceDelay disables the pause.
func NewScheduler(params Params) *Scheduler {
	if params.SourceDelay == 0 {
		params.SourceDelay = time.Second
	}
	if params.ShutdownTimeout <= 0 {
		params.ShutdownTimeout = 30 * time.Second
	}
	if params.ShutdownStep <= 0 {
		params.ShutdownStep = time.Second
	}

	ingestor := NewIngestor(IngestorConfig{
		SourceManager: params.SourceManager,
		ItemManager:   params.ItemManager,
		Parser:        params.Parser,
		Scorer:        params.Scorer,
	})

	return &Scheduler{
		cycle: &cycleRunner{
			sourceManager: params.SourceManager,
			ingestor:      ingestor,
			delay:         params.SourceDelay,
		},
		broadcaster:     params.Broadcaster,
		statsProvider:   params.StatsProvider,
		shutdownTimeout: params.ShutdownTimeout,
		shutdownStep:    params.ShutdownStep,
		now:             time.Now,
		stats:           domain.SchedulerStats{RecentErrors: []domain.PollError{}},
	}
}

// Start runs one cycle immediately and then one every interval. Calling Start on a running
// scheduler logs and does nothing.
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		lgr.Printf("[WARN] scheduler already running, ignoring start")
		return
	}
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.timerLoop(ctx, interval)
	lgr.Printf("[INFO] scheduler started with poll interval %v", interval)
}

// Stop disarms the timer. A cycle in progress is not interrupted.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// Shutdown stops the timer and waits, in fixed steps up to the shutdown timeout, for an
// in-flight cycle to finish. If the cycle is still running after the timeout it is left
// to complete in the background.
func (s *Scheduler) Shutdown() {
	lgr.Printf("[INFO] shutting down scheduler...")
	s.Stop()

	var waited time.Duration
	for s.isPolling() {
		if waited >= s.shutdownTimeout {
			lgr.Printf("[WARN] poll cycle still in progress after %v, shutdown continues without it", waited)
			return
		}
		time.Sleep(s.shutdownStep)
		waited += s.shutdownStep
	}
	lgr.Printf("[INFO] scheduler shutdown completed")
}

// PollNow runs a cycle right away. Returns nil if another cycle is in progress or
// the cycle failed as a whole.
func (s *Scheduler) PollNow(ctx context.Context) *domain.PollCycleResult {
	lgr.Printf("[INFO] manual poll triggered")
	return s.poll(ctx, "manual")
}

// Stats returns a snapshot of cumulative scheduler statistics
func (s *Scheduler) Stats() domain.SchedulerStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.stats
	res.Running = s.running
	res.Polling = s.polling
	res.RecentErrors = append([]domain.PollError{}, s.stats.RecentErrors...)
	if s.stats.LastPollAt != nil {
		lastPoll := *s.stats.LastPollAt
		res.LastPollAt = &lastPoll
	}
	return res
}

// ResetStats replaces cumulative statistics with zero values
func (s *Scheduler) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = domain.SchedulerStats{RecentErrors: []domain.PollError{}}
	lgr.Printf("[INFO] scheduler stats reset")
}

func (s *Scheduler) timerLoop(ctx context.Context, interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// the flag is taken before the cycle goroutine starts, so once Stop returns every
	// launched cycle is visible to Shutdown. A tick landing during a cycle is skipped.
	trigger := func(name string) {
		if s.acquire(name) {
			go s.execute(ctx)
		}
	}

	trigger("startup")
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			trigger("timer")
		}
	}
}

// poll runs one guarded cycle, updates stats and broadcasts the result
func (s *Scheduler) poll(ctx context.Context, trigger string) *domain.PollCycleResult {
	if !s.acquire(trigger) {
		return nil
	}
	return s.execute(ctx)
}

// acquire sets the single-flight flag, returns false if a cycle is already in progress
func (s *Scheduler) acquire(trigger string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.polling {
		lgr.Printf("[INFO] poll cycle already in progress, skipping %s trigger", trigger)
		return false
	}
	s.polling = true
	return true
}

// execute runs a cycle for a caller holding the single-flight flag and releases it
func (s *Scheduler) execute(ctx context.Context) *domain.PollCycleResult {
	defer func() {
		s.mu.Lock()
		s.polling = false
		s.mu.Unlock()
	}()

	// a started cycle runs to completion even if the trigger's context goes away
	ctx = context.WithoutCancel(ctx)

	started := s.now()
	res, err := s.runCycle(ctx)
	if err != nil {
		lgr.Printf("[ERROR] poll cycle failed: %v", err)
		s.recordFailure(err)
		return nil
	}
	s.recordSuccess(started, s.now().Sub(started), res)
	s.broadcast(ctx, res)
	return res
}

// runCycle executes the cycle, converting a panic into a cycle-fatal error
func (s *Scheduler) runCycle(ctx context.Context) (res *domain.PollCycleResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("poll cycle panic: %v", r)
		}
	}()
	return s.cycle.run(ctx)
}

func (s *Scheduler) recordSuccess(started time.Time, duration time.Duration, res *domain.PollCycleResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.TotalPolls++
	s.stats.SuccessfulPolls++
	s.stats.TotalItemsFetched += int64(res.TotalNewItems)
	s.stats.LastPollAt = &started
	s.stats.LastPollDuration = duration
}

func (s *Scheduler) recordFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.TotalPolls++
	s.stats.FailedPolls++
	s.stats.RecentErrors = append(s.stats.RecentErrors, domain.PollError{Timestamp: s.now(), Message: err.Error()})
	if len(s.stats.RecentErrors) > maxRecentErrors {
		s.stats.RecentErrors = s.stats.RecentErrors[len(s.stats.RecentErrors)-maxRecentErrors:]
	}
}

// broadcast pushes new items, if any, and then fresh feed stats to the sink
func (s *Scheduler) broadcast(ctx context.Context, res *domain.PollCycleResult) {
	if s.broadcaster == nil {
		return
	}

	if len(res.NewItems) > 0 {
		s.broadcaster.BroadcastItems(res.NewItems)
		for _, item := range res.NewItems {
			s.broadcaster.BroadcastItem(item)
		}
	}

	if s.statsProvider == nil {
		return
	}
	stats, err := s.statsProvider.GetFeedStats(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to get feed stats for broadcast: %v", err)
		return
	}
	s.broadcaster.BroadcastStats(stats)
}

func (s *Scheduler) isPolling() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.polling
}
