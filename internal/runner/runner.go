// Package runner fans analysis out across a bounded worker pool. The
// engine itself is pure and lock-free, so files are analyzed fully in
// parallel; the runner adds the two things that do not belong inside
// the engine: a per-file watchdog timeout with an infallible fallback,
// and a content-keyed cache so unchanged files cost nothing.
package runner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"runtime"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/codelens/internal/analyzer"
	"github.com/blackwell-systems/codelens/internal/repo"
)

// DefaultCacheSize bounds the result cache.
const DefaultCacheSize = 1024

// Runner executes analyses with bounded parallelism.
type Runner struct {
	workers int
	timeout time.Duration
	cache   *lru.Cache[string, analyzer.Result]
}

// New creates a Runner. Zero workers means one per CPU; zero timeout
// disables the watchdog.
func New(workers int, timeout time.Duration) (*Runner, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	cache, err := lru.New[string, analyzer.Result](DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &Runner{
		workers: workers,
		timeout: timeout,
		cache:   cache,
	}, nil
}

// Run analyzes every file and returns results in input order. Results
// carry no inter-file dependencies, so order is preserved purely for
// stable output. The only returned error is context cancellation;
// per-file trouble degrades to a fallback result instead of failing
// the batch.
func (r *Runner) Run(ctx context.Context, files []repo.SourceFile) ([]analyzer.Result, error) {
	results := make([]analyzer.Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.analyzeOne(ctx, f)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// analyzeOne runs one analysis under the watchdog, consulting the
// cache first.
func (r *Runner) analyzeOne(ctx context.Context, f repo.SourceFile) analyzer.Result {
	key := cacheKey(f)
	if res, ok := r.cache.Get(key); ok {
		return res
	}

	res := r.analyzeWithTimeout(ctx, f)
	r.cache.Add(key, res)
	return res
}

// analyzeWithTimeout guards against pathological inputs (catastrophic
// regex cost) by bounding wall time externally. On violation the
// analysis goroutine is abandoned and the zero-score fallback result is
// substituted; that substitution path cannot fail.
func (r *Runner) analyzeWithTimeout(ctx context.Context, f repo.SourceFile) analyzer.Result {
	if r.timeout <= 0 {
		return analyzer.Analyze(f.Path, f.Content, f.Language)
	}

	done := make(chan analyzer.Result, 1)
	go func() {
		done <- analyzer.Analyze(f.Path, f.Content, f.Language)
	}()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case res := <-done:
		return res
	case <-timer.C:
		return analyzer.FallbackResult(f.Path, f.Language)
	case <-ctx.Done():
		return analyzer.FallbackResult(f.Path, f.Language)
	}
}

// cacheKey hashes path, language, and content; any change to the file
// invalidates the entry.
func cacheKey(f repo.SourceFile) string {
	h := sha256.New()
	h.Write([]byte(f.Path))
	h.Write([]byte{0})
	h.Write([]byte(f.Language))
	h.Write([]byte{0})
	h.Write([]byte(f.Content))
	return hex.EncodeToString(h.Sum(nil))
}
