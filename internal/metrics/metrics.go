package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DownloadsTotal counts finished download jobs by outcome
	DownloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ytsplit_downloads_total",
		Help: "Number of completed download jobs by status.",
	}, []string{"status"})

	// SegmentsTotal counts produced video segments by outcome
	SegmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ytsplit_segments_total",
		Help: "Number of video segments produced by status.",
	}, []string{"status"})

	// PlaylistOps counts playlist store operations by kind and outcome
	PlaylistOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ytsplit_playlist_operations_total",
		Help: "Number of playlist store operations by operation and status.",
	}, []string{"operation", "status"})

	// QueueDepth tracks pending download jobs
	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ytsplit_download_queue_depth",
		Help: "Number of download jobs waiting in the queue.",
	})
)
