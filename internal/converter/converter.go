package converter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/docshift/internal/cache"
	"github.com/dshills/docshift/internal/config"
	"github.com/dshills/docshift/internal/docparse"
	"github.com/dshills/docshift/internal/docwrite"
	"github.com/dshills/docshift/internal/pyscan"
	"github.com/dshills/docshift/pkg/types"
)

// ErrRunInProgress is returned when a second in-place run starts while one
// is already mutating files.
var ErrRunInProgress = errors.New("conversion run already in progress")

// Converter coordinates the conversion pipeline: locate -> parse -> write
// -> splice, per file, across many files concurrently.
type Converter struct {
	cfg   *config.Config
	store cache.Store

	workers int
	lock    RunLock
}

// Statistics describes the outcome of a batch run.
type Statistics struct {
	FilesConverted      int
	FilesSkipped        int
	FilesFailed         int
	DocstringsConverted int
	DocstringsSkipped   int
	Duration            time.Duration
	ErrorMessages       []string
}

// SourceResult is the outcome of converting one source text.
type SourceResult struct {
	Lines []string
	// Converted counts docstrings rewritten; Skipped counts captures
	// whose parse failed and were left as they were.
	Converted int
	Skipped   int
}

// FileResult is the outcome of converting one file.
type FileResult struct {
	Path      string
	Diff      string
	Converted int
	Skipped   int
	CacheHit  bool
	Changed   bool
}

// New creates a Converter. store may be nil to disable the conversion
// cache.
func New(cfg *config.Config, store cache.Store) *Converter {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Converter{
		cfg:     cfg,
		store:   store,
		workers: workers,
	}
}

// ConvertSource locates every docstring in lines and rewrites each in the
// configured output style. Replacements are spliced bottom-up so earlier
// line numbers stay valid. A capture that cannot be parsed is logged and
// left untouched; an unsupported style aborts before any splice.
func (c *Converter) ConvertSource(lines []string) (*SourceResult, error) {
	captures := pyscan.NewLocator(lines).Locate()
	sort.Slice(captures, func(i, j int) bool {
		return captures[i].StartLine > captures[j].StartLine
	})

	result := &SourceResult{Lines: append([]string(nil), lines...)}
	for _, capture := range captures {
		rendered, err := c.convertCapture(capture)
		if err != nil {
			if errors.Is(err, types.ErrUnsupportedStyle) {
				return nil, err
			}
			slog.Warn("skipping docstring",
				"start_line", capture.StartLine+1,
				"error", err)
			result.Skipped++
			continue
		}
		result.Lines = splice(result.Lines, capture.StartLine, capture.EndLine, rendered)
		result.Converted++
	}
	return result, nil
}

// convertCapture parses one capture's lines and renders them in the output
// style, preserving the capture's original indentation.
func (c *Converter) convertCapture(capture types.RawCapture) ([]string, error) {
	parser, err := docparse.New(capture.Lines, types.InputStyle(c.cfg.InputStyle), capture.KeywordNames())
	if err != nil {
		return nil, err
	}
	doc := parser.Parse()

	writer, err := docwrite.New(types.OutputStyle(c.cfg.OutputStyle), doc,
		parser.RawIndent(), c.cfg.Output, capture.VarArg, capture.KwArg)
	if err != nil {
		return nil, err
	}
	return writer.Write()
}

func splice(lines []string, start, end int, replacement []string) []string {
	out := make([]string, 0, len(lines)-(end-start)+len(replacement))
	out = append(out, lines[:start]...)
	out = append(out, replacement...)
	out = append(out, lines[end:]...)
	return out
}

// ConvertFile converts every docstring in the file at path. With inPlace
// the file is rewritten; otherwise a unified diff of the would-be change is
// returned. The file is written only when fully converted.
func (c *Converter) ConvertFile(ctx context.Context, path string, inPlace bool) (*FileResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	src := string(content)
	fingerprint := c.cfg.Fingerprint()

	if c.store != nil {
		hit, err := c.store.Lookup(ctx, path, hashContent(src), fingerprint)
		if err != nil {
			return nil, fmt.Errorf("cache lookup failed for %s: %w", path, err)
		}
		if hit {
			return &FileResult{Path: path, CacheHit: true}, nil
		}
	}

	lines, trailingNewline := splitLines(src)
	result, err := c.ConvertSource(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", path, err)
	}

	newContent := strings.Join(result.Lines, "\n")
	if trailingNewline {
		newContent += "\n"
	}
	fileResult := &FileResult{
		Path:      path,
		Converted: result.Converted,
		Skipped:   result.Skipped,
		Changed:   newContent != src,
	}

	if inPlace {
		if fileResult.Changed {
			if err := writePreservingMode(path, newContent); err != nil {
				return nil, err
			}
		}
		if c.store != nil {
			if err := c.store.Record(ctx, path, hashContent(newContent), fingerprint, c.cfg.OutputStyle); err != nil {
				return nil, fmt.Errorf("cache record failed for %s: %w", path, err)
			}
		}
		return fileResult, nil
	}

	if fileResult.Changed {
		diff, err := unifiedDiff(path, src, newContent)
		if err != nil {
			return nil, fmt.Errorf("failed to diff %s: %w", path, err)
		}
		fileResult.Diff = diff
	}
	return fileResult, nil
}

func hashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// splitLines splits content into lines without newline characters,
// reporting whether the content ended with a newline so the exact shape
// can be restored on join.
func splitLines(content string) ([]string, bool) {
	trailing := strings.HasSuffix(content, "\n")
	if trailing {
		content = content[:len(content)-1]
	}
	return strings.Split(content, "\n"), trailing
}

func writePreservingMode(path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// unifiedDiff renders a unified diff with a/ and b/ path prefixes.
func unifiedDiff(path, src, dst string) (string, error) {
	fromFile, toFile := "a", "b"
	if !strings.HasPrefix(path, "/") {
		fromFile += "/"
		toFile += "/"
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(src),
		B:        difflib.SplitLines(dst),
		FromFile: fromFile + path,
		ToFile:   toFile + path,
		Context:  3,
	})
}

// Run converts source, a file or a directory tree, using a worker pool.
// Per-file failures are recorded in the statistics without stopping the
// run. Only one in-place run may be active at a time per Converter.
func (c *Converter) Run(ctx context.Context, source string, inPlace bool) (*Statistics, []FileResult, error) {
	if inPlace {
		if !c.lock.TryAcquire() {
			return nil, nil, ErrRunInProgress
		}
		defer c.lock.Release()
	}

	startTime := time.Now()
	stats := &Statistics{ErrorMessages: make([]string, 0)}

	info, err := os.Stat(source)
	if err != nil {
		return nil, nil, fmt.Errorf("path does not exist: %s: %w", source, err)
	}

	var files []string
	if info.IsDir() {
		slog.Info("finding files", "root", source)
		files, err = FindPythonFiles(source, c.cfg.AcceptedShebangs)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to discover files: %w", err)
		}
	} else {
		files = []string{source}
	}
	for _, file := range files {
		slog.Debug("found file", "path", file)
	}

	var (
		converted  int32
		skipped    int32
		failed     int32
		docstrings int32
		docSkipped int32
	)
	var mu sync.Mutex // Protect stats.ErrorMessages

	results := make([]FileResult, len(files))
	semaphore := make(chan struct{}, c.workers)
	g, gctx := errgroup.WithContext(ctx)

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			result, err := c.ConvertFile(gctx, path, inPlace)
			if err != nil {
				atomic.AddInt32(&failed, 1)
				mu.Lock()
				stats.ErrorMessages = append(stats.ErrorMessages, fmt.Sprintf("%s: %v", path, err))
				mu.Unlock()
				slog.Error("failed to convert file", "path", path, "error", err)
				results[i] = FileResult{Path: path}
				return nil
			}

			if result.CacheHit || result.Converted == 0 {
				atomic.AddInt32(&skipped, 1)
			} else {
				atomic.AddInt32(&converted, 1)
			}
			atomic.AddInt32(&docstrings, int32(result.Converted))
			atomic.AddInt32(&docSkipped, int32(result.Skipped))
			results[i] = *result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	stats.FilesConverted = int(converted)
	stats.FilesSkipped = int(skipped)
	stats.FilesFailed = int(failed)
	stats.DocstringsConverted = int(docstrings)
	stats.DocstringsSkipped = int(docSkipped)
	stats.Duration = time.Since(startTime)
	slog.Info("conversion complete",
		"files_converted", stats.FilesConverted,
		"files_skipped", stats.FilesSkipped,
		"files_failed", stats.FilesFailed,
		"duration", stats.Duration)
	return stats, results, nil
}
