package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/textengine/pkg/fsutil"
	"github.com/yaklabco/textengine/pkg/importer"
	"github.com/yaklabco/textengine/pkg/layout"
	"github.com/yaklabco/textengine/pkg/measure"
)

// Run discovers files under opts.Paths and lays each one out on a pool of
// workers. Outcomes are returned in path order. Per-file failures are
// recorded on the outcome; only discovery and cancellation fail the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	if opts.Engine == nil {
		opts.Engine = layout.NewEngine(layout.Options{})
	}
	if opts.Backend == nil {
		opts.Backend = measure.Terminal{}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := process(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// process imports and lays out a single file.
func process(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	doc, format, err := importer.Import(ctx, path, content, opts.Import)
	outcome.Format = format
	if err != nil {
		outcome.Error = err
		return outcome
	}

	result, err := opts.Engine.Layout(doc, opts.Width, opts.Backend)
	if err != nil {
		outcome.Error = fmt.Errorf("layout %s: %w", path, err)
		return outcome
	}

	outcome.Length = doc.Len()
	outcome.Runs = len(doc.Runs())
	outcome.Paragraphs = len(doc.ParagraphOffsets())
	outcome.Commands = result.DisplayList.Len()
	outcome.Height = result.Height

	return outcome
}
