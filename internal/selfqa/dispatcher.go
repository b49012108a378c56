package selfqa

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/selfqa-api/internal/domain"
)

// DispatcherConfig holds configuration options for the dispatcher.
type DispatcherConfig struct {
	// WorkerCount bounds how many model requests may be in flight at once.
	// The bound is a deliberate throttle on the external endpoint, not a
	// performance knob; keep it small. If zero or negative, defaults to 1.
	WorkerCount int
}

// DefaultDispatcherConfig returns a DispatcherConfig with reasonable defaults.
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		WorkerCount: 2,
	}
}

// Dispatcher fans a question list out to the model client under a bounded
// worker pool and collects the successful answers. The model client may be
// nil, in which case every request fails uniformly and the result is empty.
type Dispatcher struct {
	client      ModelClient
	workerCount int
	logger      *slog.Logger

	// onProgress, when set, is invoked after each unit of work resolves
	// with the monotonically increasing completed count and the fixed
	// total. It is a side channel only; calls happen from the collection
	// goroutine, one at a time.
	onProgress func(completed, total int)
}

// NewDispatcher creates a dispatcher for the given model client. A nil
// client is accepted and degrades every request to the log-and-drop
// failure path rather than failing construction.
func NewDispatcher(client ModelClient, config DispatcherConfig, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	workerCount := config.WorkerCount
	if workerCount <= 0 {
		workerCount = 1
		logger.Warn("invalid worker count specified, using default",
			"specified_count", config.WorkerCount,
			"default_count", 1)
	}

	return &Dispatcher{
		client:      client,
		workerCount: workerCount,
		logger:      logger.With(slog.String("component", "selfqa_dispatcher")),
	}
}

// SetProgressFunc installs an observer for per-completion progress.
// Must be called before Generate.
func (d *Dispatcher) SetProgressFunc(fn func(completed, total int)) {
	d.onProgress = fn
}

// Generate runs the whole batch and blocks until every question has
// resolved, successfully or not. Successful pairs are appended in
// completion order, which is non-deterministic across runs; each pair
// carries its own question, so callers must not rely on ordering.
//
// Generate never returns an error. Total failure, including a nil model
// client, yields an empty slice that is indistinguishable from the
// result of an empty question list.
func (d *Dispatcher) Generate(ctx context.Context, identity domain.Identity, questions []string) []domain.QAPair {
	total := len(questions)
	pairs := make([]domain.QAPair, 0, total)
	if total == 0 {
		return pairs
	}

	systemPrompt, err := renderSystemPrompt(identity)
	if err != nil {
		// A template that cannot render fails the whole batch the same
		// way an unavailable client does: log it and return empty.
		d.logger.Error("failed to render system prompt",
			"subject_name", identity.SubjectName,
			"error", err)
		return pairs
	}

	d.logger.Info("starting self-qa generation",
		"question_count", total,
		"worker_count", d.workerCount,
		"language", string(identity.Language))

	jobs := make(chan string, total)
	for _, q := range questions {
		jobs <- q
	}
	close(jobs)

	// Every unit of work reports exactly once, nil on failure. The results
	// channel is the only shared mutable path, so appends cannot race.
	results := make(chan *domain.QAPair, total)

	var wg sync.WaitGroup
	for i := 0; i < d.workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			logger := d.logger.With(slog.Int("worker_id", workerID))
			for question := range jobs {
				results <- executeRequest(ctx, d.client, systemPrompt, question, logger)
			}
		}(i)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// Drain in completion order: first finished, first collected.
	completed := 0
	for pair := range results {
		completed++
		if pair != nil {
			pairs = append(pairs, *pair)
		}
		d.logger.Debug("self-qa progress",
			"completed", completed,
			"total", total)
		if d.onProgress != nil {
			d.onProgress(completed, total)
		}
	}

	d.logger.Info("self-qa generation finished",
		"generated_pairs", len(pairs),
		"question_count", total)

	return pairs
}
