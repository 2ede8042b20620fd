package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "github.com/tuanphamm/ytsplit/internal/errors"
	"github.com/tuanphamm/ytsplit/internal/segment"
	"github.com/tuanphamm/ytsplit/pkg/logger"
)

// Transformer runs ffmpeg/ffprobe operations on local media files
type Transformer struct {
	logger      *logger.Logger
	mediaDir    string
	ffmpegPath  string
	ffprobePath string
}

// SegmentResult reports the outcome of producing one planned segment
type SegmentResult struct {
	Segment segment.Segment `json:"segment"`
	Path    string          `json:"path,omitempty"`
	Err     error           `json:"-"`
}

// NewTransformer creates a new ffmpeg transformer.
// Fails if ffmpeg or ffprobe is not installed.
func NewTransformer(mediaDir string, log *logger.Logger) (*Transformer, error) {
	ffmpegPath, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found in PATH: please install ffmpeg")
	}
	ffprobePath, err := exec.LookPath("ffprobe")
	if err != nil {
		return nil, fmt.Errorf("ffprobe not found in PATH: please install ffmpeg")
	}

	return &Transformer{
		logger:      log,
		mediaDir:    mediaDir,
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
	}, nil
}

// Probe returns the duration of a local media file in seconds
func (t *Transformer) Probe(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, t.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path)

	output, err := cmd.Output()
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrExternalTool, "ffprobe %s: %v", path, err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe duration %q: %w", output, err)
	}

	return duration, nil
}

// ExecutePlan cuts the input file into the planned segments, one at a time in
// index order. A failed segment is recorded and logged but does not stop the
// remaining segments; results come back in index order.
func (t *Transformer) ExecutePlan(ctx context.Context, inputPath string, plan []segment.Segment) []SegmentResult {
	results := make([]SegmentResult, 0, len(plan))

	for _, seg := range plan {
		outputPath := filepath.Join(t.mediaDir, seg.OutputName+".mp4")

		t.logger.WithFields(map[string]interface{}{
			"index": seg.Index,
			"start": seg.StartSeconds,
			"end":   seg.EndSeconds,
		}).Info("Splitting segment")

		cmd := exec.CommandContext(ctx, t.ffmpegPath,
			"-i", inputPath,
			"-ss", formatSeconds(seg.StartSeconds),
			"-to", formatSeconds(seg.EndSeconds),
			"-c", "copy",
			"-copyts",
			"-y",
			outputPath)

		if output, err := cmd.CombinedOutput(); err != nil {
			t.logger.WithError(err).WithField("index", seg.Index).Error("Segment failed")
			results = append(results, SegmentResult{
				Segment: seg,
				Err:     apperrors.Wrap(apperrors.ErrExternalTool, "segment %d: %v: %s", seg.Index, err, lastLine(output)),
			})
			continue
		}

		results = append(results, SegmentResult{Segment: seg, Path: outputPath})
	}

	return results
}

// Trim creates a clip of the input between start and end seconds, stream
// copied to avoid re-encoding.
func (t *Transformer) Trim(ctx context.Context, inputPath, clipName string, start, end float64) (string, error) {
	if end <= start || start < 0 {
		return "", apperrors.Wrap(apperrors.ErrInvalidWindow, "start=%v end=%v", start, end)
	}

	outputPath := filepath.Join(t.mediaDir, clipName+".mp4")

	cmd := exec.CommandContext(ctx, t.ffmpegPath,
		"-i", inputPath,
		"-ss", formatSeconds(start),
		"-to", formatSeconds(end),
		"-c", "copy",
		"-y",
		outputPath)

	if output, err := cmd.CombinedOutput(); err != nil {
		return "", apperrors.Wrap(apperrors.ErrExternalTool, "trim: %v: %s", err, lastLine(output))
	}

	t.logger.WithField("path", outputPath).Info("Clip created")
	return outputPath, nil
}

// Concat joins the input files into one output using the concat demuxer.
// Inputs must share codec parameters since streams are copied.
func (t *Transformer) Concat(ctx context.Context, inputPaths []string, outputName string) (string, error) {
	if len(inputPaths) == 0 {
		return "", fmt.Errorf("concat requires at least one input")
	}

	listFile, err := os.CreateTemp("", "concat-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create concat list: %w", err)
	}
	defer os.Remove(listFile.Name())

	for _, p := range inputPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		fmt.Fprintf(listFile, "file '%s'\n", abs)
	}
	if err := listFile.Close(); err != nil {
		return "", fmt.Errorf("failed to write concat list: %w", err)
	}

	outputPath := filepath.Join(t.mediaDir, outputName+".mp4")

	cmd := exec.CommandContext(ctx, t.ffmpegPath,
		"-f", "concat",
		"-safe", "0",
		"-i", listFile.Name(),
		"-c", "copy",
		"-y",
		outputPath)

	if output, err := cmd.CombinedOutput(); err != nil {
		return "", apperrors.Wrap(apperrors.ErrExternalTool, "concat: %v: %s", err, lastLine(output))
	}

	t.logger.WithField("path", outputPath).Info("Concatenation complete")
	return outputPath, nil
}

// GIF converts an mp4 into a high quality gif using the two-pass palette
// technique.
func (t *Transformer) GIF(ctx context.Context, inputPath string) (string, error) {
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	gifPath := filepath.Join(t.mediaDir, name+".gif")
	palettePath := filepath.Join(os.TempDir(), name+"_palette.png")
	defer os.Remove(palettePath)

	paletteCmd := exec.CommandContext(ctx, t.ffmpegPath,
		"-y",
		"-i", inputPath,
		"-vf", "fps=15,scale=960:-1:flags=lanczos,palettegen",
		palettePath)
	if output, err := paletteCmd.CombinedOutput(); err != nil {
		return "", apperrors.Wrap(apperrors.ErrExternalTool, "palettegen: %v: %s", err, lastLine(output))
	}

	gifCmd := exec.CommandContext(ctx, t.ffmpegPath,
		"-y",
		"-i", inputPath,
		"-i", palettePath,
		"-lavfi", "fps=15,scale=960:-1:flags=lanczos[x];[x][1:v]paletteuse",
		gifPath)
	if output, err := gifCmd.CombinedOutput(); err != nil {
		return "", apperrors.Wrap(apperrors.ErrExternalTool, "paletteuse: %v: %s", err, lastLine(output))
	}

	t.logger.WithField("path", gifPath).Info("GIF created")
	return gifPath, nil
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}

func lastLine(output []byte) string {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}
