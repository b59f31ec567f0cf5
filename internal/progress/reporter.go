package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Options configures the progress reporter.
type Options struct {
	// TotalTasks is the number of tasks dispatched this run.
	TotalTasks int

	// Workers is the number of parallel workers.
	Workers int

	// Output is where to write progress output.
	// Default: os.Stderr
	Output io.Writer

	// UpdateInterval is how often to update the progress display.
	// Default: 500ms
	UpdateInterval time.Duration
}

// Reporter outputs human-readable progress information.
type Reporter struct {
	opts Options

	mu             sync.Mutex
	completedBytes atomic.Int64
	completedTasks atomic.Int32
	failedTasks    atomic.Int32
	inProgress     atomic.Int32
	startTime      time.Time
	lastUpdate     time.Time
	lastDone       int32
	stopCh         chan struct{}
	doneCh         chan struct{}
	started        bool
	stopped        bool
}

// NewReporter creates a new progress reporter.
func NewReporter(opts Options) *Reporter {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.UpdateInterval == 0 {
		opts.UpdateInterval = 500 * time.Millisecond
	}

	return &Reporter{
		opts:   opts,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start begins outputting progress information.
func (r *Reporter) Start() {
	r.mu.Lock()
	r.started = true
	r.mu.Unlock()

	r.startTime = time.Now()
	r.lastUpdate = r.startTime

	fmt.Fprintf(r.opts.Output, "[s3importer] Importing %d images | Workers: %d\n",
		r.opts.TotalTasks,
		r.opts.Workers,
	)

	go r.updateLoop()
}

// Stop stops the progress reporter and waits for the final status to
// be written.
func (r *Reporter) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	started := r.started
	r.mu.Unlock()

	close(r.stopCh)
	if started {
		<-r.doneCh
	}
}

// TaskStarted marks a task as in progress.
func (r *Reporter) TaskStarted() {
	r.inProgress.Add(1)
}

// TaskCompleted marks a task as completed, with the number of bytes uploaded.
func (r *Reporter) TaskCompleted(size int64) {
	r.completedBytes.Add(size)
	r.completedTasks.Add(1)
	r.inProgress.Add(-1)
}

// TaskFailed marks a task as failed.
func (r *Reporter) TaskFailed() {
	r.failedTasks.Add(1)
	r.inProgress.Add(-1)
}

// updateLoop periodically updates the progress display.
func (r *Reporter) updateLoop() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.opts.UpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			r.printFinalStatus()
			return
		case <-ticker.C:
			r.printProgress()
		}
	}
}

// printProgress outputs the current progress.
func (r *Reporter) printProgress() {
	now := time.Now()
	completed := int(r.completedTasks.Load())
	failed := int(r.failedTasks.Load())
	done := int32(completed + failed)

	// Task completion rate over the last interval
	elapsed := now.Sub(r.lastUpdate).Seconds()
	if elapsed < 0.1 {
		elapsed = 0.1
	}
	rate := float64(done-r.lastDone) / elapsed

	r.lastUpdate = now
	r.lastDone = done

	var percent float64
	eta := "calculating..."
	if r.opts.TotalTasks > 0 {
		percent = float64(done) / float64(r.opts.TotalTasks) * 100
		if rate > 0 {
			remaining := float64(r.opts.TotalTasks) - float64(done)
			eta = formatDuration(time.Duration(remaining / rate * float64(time.Second)))
		}
	}

	fmt.Fprintf(r.opts.Output, "\r[s3importer] Progress: %.1f%% | %d/%d done | %d failed | Rate: %.1f/s | ETA: %s    ",
		percent,
		done,
		r.opts.TotalTasks,
		failed,
		rate,
		eta,
	)
}

// printFinalStatus outputs the final status.
func (r *Reporter) printFinalStatus() {
	completed := int(r.completedTasks.Load())
	failed := int(r.failedTasks.Load())
	bytes := r.completedBytes.Load()
	duration := time.Since(r.startTime)

	fmt.Fprintf(r.opts.Output, "\r[s3importer] Done: %d imported | %d failed | %s uploaded    \n",
		completed,
		failed,
		formatBytes(bytes),
	)
	fmt.Fprintf(r.opts.Output, "[s3importer] Total time: %s | Average: %.1f images/s\n",
		formatDuration(duration),
		float64(completed+failed)/maxSeconds(duration),
	)
}

func maxSeconds(d time.Duration) float64 {
	s := d.Seconds()
	if s < 0.1 {
		return 0.1
	}
	return s
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case b >= TB:
		return fmt.Sprintf("%.2f TB", float64(b)/float64(TB))
	case b >= GB:
		return fmt.Sprintf("%.2f GB", float64(b)/float64(GB))
	case b >= MB:
		return fmt.Sprintf("%.2f MB", float64(b)/float64(MB))
	case b >= KB:
		return fmt.Sprintf("%.2f KB", float64(b)/float64(KB))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// FormatBytes is exported for use by other packages.
func FormatBytes(b int64) string {
	return formatBytes(b)
}

// formatDuration formats a duration as a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
