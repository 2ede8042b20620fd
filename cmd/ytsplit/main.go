package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tuanphamm/ytsplit/internal/config"
	"github.com/tuanphamm/ytsplit/internal/segment"
	"github.com/tuanphamm/ytsplit/internal/services/media"
	"github.com/tuanphamm/ytsplit/internal/services/youtube"
	"github.com/tuanphamm/ytsplit/internal/validation"
	"github.com/tuanphamm/ytsplit/pkg/logger"
)

func main() {
	url := flag.String("url", "", "YouTube URL to download")
	name := flag.String("name", "", "Base name for the output file(s)")
	split := flag.Bool("split", false, "Split the download into fixed-length segments")
	unit := flag.Float64("unit", 0, "Segment length in seconds (default from SEGMENT_SECONDS)")
	gif := flag.String("gif", "", "Convert an existing mp4 to gif instead of downloading")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	transformer, err := media.NewTransformer(cfg.MediaDir, log)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()

	if *gif != "" {
		path, err := transformer.GIF(ctx, *gif)
		if err != nil {
			log.Fatalf("GIF conversion failed: %v", err)
		}
		fmt.Printf("GIF created: %s\n", path)
		return
	}

	if *url == "" || *name == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := validation.ValidateURL(*url); err != nil {
		log.Fatalf("%v", err)
	}
	if !validation.IsYouTubeURL(*url) {
		log.Fatalf("not a YouTube URL: %s", *url)
	}
	if err := validation.ValidateBaseName(*name); err != nil {
		log.Fatalf("%v", err)
	}

	unitSeconds := cfg.SegmentSeconds
	if *unit > 0 {
		unitSeconds = *unit
	}

	ytService, err := youtube.NewService(youtube.Options{
		MediaDir: cfg.MediaDir,
		Format:   cfg.YtDlpFormat,
		CacheLen: cfg.CacheSize,
		CacheTTL: time.Duration(cfg.CacheTTLMinutes) * time.Minute,
	}, log)
	if err != nil {
		log.Fatalf("%v", err)
	}

	baseName := validation.SanitizeBaseName(*name)

	path, err := ytService.Download(ctx, *url, baseName)
	if err != nil {
		log.Fatalf("Download failed: %v", err)
	}
	fmt.Printf("Downloaded: %s\n", path)

	if !*split {
		return
	}

	duration, err := transformer.Probe(ctx, path)
	if err != nil {
		log.Fatalf("Probe failed: %v", err)
	}

	plan, err := segment.Plan(duration, unitSeconds, baseName)
	if err != nil {
		log.Fatalf("Planning failed: %v", err)
	}

	fmt.Printf("Video duration: %.0f seconds, %d segment(s)\n", duration, len(plan))

	failed := 0
	for _, result := range transformer.ExecutePlan(ctx, path, plan) {
		if result.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "segment %d failed: %v\n", result.Segment.Index, result.Err)
			continue
		}
		fmt.Printf("segment %d: %s\n", result.Segment.Index, result.Path)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
