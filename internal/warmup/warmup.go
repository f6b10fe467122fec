package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_header_similarity/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  200,
		Duration:    2 * time.Second,
		ForceGC:     true,
	}
}

// Stats reports how much work a warmup run did.
type Stats struct {
	Assessments    int64
	Normalizations int64
	Duration       time.Duration
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	kinds       []ports.ColumnKind
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterKind adds a column kind to be warmed up
func (wm *Manager) RegisterKind(kind ports.ColumnKind) {
	wm.kinds = append(wm.kinds, kind)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) Stats {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.kinds)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	var stats Stats
	stats.Normalizations = wm.run(warmupCtx, len(wm.normalizers), func(text string) {
		for _, normalizer := range wm.normalizers {
			_ = normalizer.Normalize(text)
		}
	})
	stats.Assessments = wm.run(warmupCtx, len(wm.kinds), func(text string) {
		for _, kind := range wm.kinds {
			_ = kind.AssessHeader(text)
			_ = kind.AssessValue(text)
		}
	})

	// Force garbage collection if configured
	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	stats.Duration = time.Since(startTime)
	wm.logger.Info("System warmup completed",
		"duration", stats.Duration,
		"assessments", stats.Assessments,
		"normalizations", stats.Normalizations,
	)
	return stats
}

// run feeds sample texts to fn from Concurrency goroutines and returns how
// many component calls were made in total.
func (wm *Manager) run(ctx context.Context, components int, fn func(text string)) int64 {
	if components == 0 {
		return 0
	}

	samples := sampleTexts()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int64
	)
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func(routineID int) {
			defer wg.Done()

			var done int64
			for j := 0; j < wm.config.Iterations; j++ {
				// Check for context cancellation
				if ctx.Err() != nil {
					break
				}
				fn(samples[(routineID+j)%len(samples)])
				done += int64(components)
			}

			mu.Lock()
			total += done
			mu.Unlock()
		}(i)
	}

	wg.Wait()
	return total
}

// sampleTexts returns header-like and value-like strings of varied shape.
func sampleTexts() []string {
	headers := []string{
		"MEMBER NAME", "Subscriber Name", "SSN", "Member ID No.", "COVERAGE TYPE",
		"Premium Amount", "Rate Chg*", "TOTAL AMOUNT PER CLASS", "", "Prémium",
	}
	values := []string{
		"Smith, John A", "123-45-6789", "A12345", "$1,204.50", "EMPLOYEE+SPOUSE",
		"PPO 500", "2024-01-31",
	}

	samples := make([]string, 0, len(headers)+len(values)+1)
	samples = append(samples, headers...)
	samples = append(samples, values...)
	samples = append(samples, strings.Repeat("x", 64))
	return samples
}
