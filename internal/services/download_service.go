package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/tuanphamm/ytsplit/internal/errors"
	"github.com/tuanphamm/ytsplit/internal/metrics"
	"github.com/tuanphamm/ytsplit/internal/segment"
	"github.com/tuanphamm/ytsplit/internal/services/media"
	"github.com/tuanphamm/ytsplit/internal/services/youtube"
	"github.com/tuanphamm/ytsplit/internal/validation"
	"github.com/tuanphamm/ytsplit/pkg/logger"
)

// JobState describes the lifecycle of a download job
type JobState string

const (
	JobQueued  JobState = "queued"
	JobRunning JobState = "running"
	JobDone    JobState = "done"
	JobFailed  JobState = "failed"
)

// DownloadJob tracks one download (and optional split) request
type DownloadJob struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	BaseName  string    `json:"base_name"`
	Split     bool      `json:"split"`
	State     JobState  `json:"state"`
	Message   string    `json:"message,omitempty"`
	File      string    `json:"file,omitempty"`
	Segments  []string  `json:"segments,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DownloadService runs download jobs on a worker pool. Segments of one job
// execute sequentially in index order; independent jobs run concurrently.
type DownloadService struct {
	youtube     *youtube.Service
	transformer *media.Transformer
	unitSeconds float64
	logger      *logger.Logger

	queue   chan *DownloadJob
	workers int
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc

	mu       sync.RWMutex
	jobs     map[string]*DownloadJob
	inflight map[string]bool // keyed by base name
}

// NewDownloadService creates a new download service
func NewDownloadService(yt *youtube.Service, tf *media.Transformer, unitSeconds float64, workers, queueSize int, log *logger.Logger) *DownloadService {
	ctx, cancel := context.WithCancel(context.Background())

	return &DownloadService{
		youtube:     yt,
		transformer: tf,
		unitSeconds: unitSeconds,
		logger:      log,
		queue:       make(chan *DownloadJob, queueSize),
		workers:     workers,
		ctx:         ctx,
		cancel:      cancel,
		jobs:        make(map[string]*DownloadJob),
		inflight:    make(map[string]bool),
	}
}

// Start starts the worker pool
func (s *DownloadService) Start() {
	s.logger.WithField("workers", s.workers).Info("Starting download service...")

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}
}

// Stop stops the worker pool gracefully
func (s *DownloadService) Stop() {
	s.logger.Info("Stopping download service...")
	s.cancel()
	close(s.queue)
	s.wg.Wait()
	s.logger.Info("Download service stopped")
}

// Submit queues a new download job. The same base name cannot be queued twice
// while its earlier job is still in flight.
func (s *DownloadService) Submit(url, baseName string, split bool) (*DownloadJob, error) {
	if err := validation.ValidateURL(url); err != nil {
		return nil, err
	}
	if err := validation.ValidateBaseName(baseName); err != nil {
		return nil, err
	}
	if !validation.IsYouTubeURL(url) {
		return nil, apperrors.Wrap(apperrors.ErrInvalidURL, "not a YouTube URL: %s", url)
	}

	baseName = validation.SanitizeBaseName(baseName)

	s.mu.Lock()
	if s.inflight[baseName] {
		s.mu.Unlock()
		return nil, apperrors.Wrap(apperrors.ErrInvalidName, "a job for %q is already in flight", baseName)
	}
	s.inflight[baseName] = true

	now := time.Now()
	job := &DownloadJob{
		ID:        uuid.NewString(),
		URL:       url,
		BaseName:  baseName,
		Split:     split,
		State:     JobQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.jobs[job.ID] = job
	s.mu.Unlock()

	select {
	case s.queue <- job:
		metrics.QueueDepth.Inc()
		s.logger.WithFields(map[string]interface{}{
			"job_id": job.ID,
			"url":    url,
			"split":  split,
		}).Info("Download job queued")
		// Return a snapshot; a worker may already be mutating the job
		s.mu.RLock()
		snapshot := *job
		s.mu.RUnlock()
		return &snapshot, nil
	case <-s.ctx.Done():
		s.clearInflight(baseName)
		return nil, apperrors.ErrServiceStopped
	default:
		s.clearInflight(baseName)
		s.mu.Lock()
		delete(s.jobs, job.ID)
		s.mu.Unlock()
		return nil, apperrors.ErrQueueFull
	}
}

// Get returns a snapshot of a job by ID
func (s *DownloadService) Get(id string) (*DownloadJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrJobNotFound, "%s", id)
	}

	snapshot := *job
	snapshot.Segments = append([]string(nil), job.Segments...)
	return &snapshot, nil
}

func (s *DownloadService) worker(id int) {
	defer s.wg.Done()

	s.logger.WithField("worker", id).Debug("Download worker started")

	for {
		select {
		case job, ok := <-s.queue:
			if !ok {
				return
			}
			metrics.QueueDepth.Dec()
			s.run(job)
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *DownloadService) run(job *DownloadJob) {
	defer s.clearInflight(job.BaseName)

	s.update(job, JobRunning, "")

	path, err := s.youtube.Download(s.ctx, job.URL, job.BaseName)
	if err != nil {
		metrics.DownloadsTotal.WithLabelValues("failed").Inc()
		s.update(job, JobFailed, err.Error())
		return
	}

	s.mu.Lock()
	job.File = path
	s.mu.Unlock()

	if !job.Split {
		metrics.DownloadsTotal.WithLabelValues("done").Inc()
		s.update(job, JobDone, "")
		return
	}

	duration, err := s.transformer.Probe(s.ctx, path)
	if err != nil {
		metrics.DownloadsTotal.WithLabelValues("failed").Inc()
		s.update(job, JobFailed, err.Error())
		return
	}

	plan, err := segment.Plan(duration, s.unitSeconds, job.BaseName)
	if err != nil {
		metrics.DownloadsTotal.WithLabelValues("failed").Inc()
		s.update(job, JobFailed, err.Error())
		return
	}

	results := s.transformer.ExecutePlan(s.ctx, path, plan)

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			metrics.SegmentsTotal.WithLabelValues("failed").Inc()
			continue
		}
		metrics.SegmentsTotal.WithLabelValues("done").Inc()
		s.mu.Lock()
		job.Segments = append(job.Segments, r.Path)
		s.mu.Unlock()
	}

	if failed > 0 {
		s.logger.WithFields(map[string]interface{}{
			"failed": failed,
			"total":  len(results),
		}).Warn("Some segments failed")
		metrics.DownloadsTotal.WithLabelValues("partial").Inc()
		s.update(job, JobDone, fmt.Sprintf("%d of %d segments failed", failed, len(results)))
		return
	}

	metrics.DownloadsTotal.WithLabelValues("done").Inc()
	s.update(job, JobDone, "")
}

func (s *DownloadService) update(job *DownloadJob, state JobState, message string) {
	s.mu.Lock()
	job.State = state
	job.Message = message
	job.UpdatedAt = time.Now()
	s.mu.Unlock()

	s.logger.WithFields(map[string]interface{}{
		"job_id": job.ID,
		"state":  state,
	}).Info("Download job state changed")
}

func (s *DownloadService) clearInflight(baseName string) {
	s.mu.Lock()
	delete(s.inflight, baseName)
	s.mu.Unlock()
}
