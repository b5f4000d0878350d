// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/trim"
)

// Reader loads a whole file. audtrim.Files satisfies it.
type Reader interface {
	Read(path string) (audio.Waveform, error)
}

// Writer stores a whole waveform. audtrim.Files satisfies it.
type Writer interface {
	Write(path string, w audio.Waveform) error
}

type Options struct {
	InputDir  string
	OutputDir string
	Recursive bool
	// Workers bounds the files processed at once. Zero or less means
	// GOMAXPROCS.
	Workers int
	Policy  Policy
	Trim    trim.Config
}

func (o Options) Validate() error {
	if o.InputDir == "" || o.OutputDir == "" {
		return fmt.Errorf("%w: input and output directories are required", ErrInvalidOptions)
	}
	if err := o.Policy.Validate(); err != nil {
		return err
	}
	if err := o.Trim.Validate(); err != nil {
		return err
	}

	return nil
}

type Status int

const (
	StatusCanceled Status = iota
	StatusTrimmed
	StatusPlaceholder
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusTrimmed:
		return "trimmed"
	case StatusPlaceholder:
		return "placeholder"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "canceled"
	}
}

// Result is the outcome for one input file.
type Result struct {
	Job
	Status  Status
	Report  trim.Report
	Err     error
	Elapsed time.Duration
}

// Summary holds one Result per input, in listing order.
type Summary struct {
	Results      []Result
	Trimmed      int
	Placeholders int
	Skipped      int
	Failed       int
	Canceled     int
}

func (s *Summary) count(r Result) {
	switch r.Status {
	case StatusTrimmed:
		s.Trimmed++
	case StatusPlaceholder:
		s.Placeholders++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	default:
		s.Canceled++
	}
}

type Processor struct {
	opts   Options
	reader Reader
	writer Writer
	logger *slog.Logger
}

// NewProcessor validates opts. A nil logger discards everything.
func NewProcessor(opts Options, r Reader, w Writer, logger *slog.Logger) (*Processor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if r == nil || w == nil {
		return nil, fmt.Errorf("%w: reader and writer are required", ErrInvalidOptions)
	}

	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Processor{
		opts:   opts,
		reader: r,
		writer: w,
		logger: logger,
	}, nil
}

// Run plans the batch and processes every file. Per-file problems are
// recorded in the Summary; the returned error is limited to planning
// failures and ctx cancellation.
func (p *Processor) Run(ctx context.Context) (Summary, error) {
	start := time.Now()

	jobs, err := Plan(p.opts.InputDir, p.opts.OutputDir, p.opts.Recursive)
	if err != nil {
		return Summary{}, err
	}

	if err := p.mirrorDirs(jobs); err != nil {
		return Summary{}, err
	}

	p.logger.Info("batch started",
		slog.String("input", p.opts.InputDir),
		slog.String("output", p.opts.OutputDir),
		slog.Int("files", len(jobs)),
		slog.Int("workers", p.opts.Workers),
		slog.String("policy", string(p.opts.Policy)),
	)

	results := make([]Result, len(jobs))
	owner := make(map[string]string, len(jobs))
	for i, job := range jobs {
		results[i] = Result{Job: job, Status: StatusCanceled}

		if first, ok := owner[job.Output]; ok {
			results[i].Status = StatusFailed
			results[i].Err = fmt.Errorf("%w: %s", ErrOutputCollision, first)
			p.logger.Warn("output collision",
				slog.String("file", job.Rel),
				slog.String("output", job.Output),
				slog.String("kept", first),
			)
			continue
		}
		owner[job.Output] = job.Rel
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)

	for i := range results {
		if results[i].Status != StatusCanceled {
			continue
		}
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			results[i] = p.process(results[i].Job)
			return nil
		})
	}
	_ = g.Wait()

	sum := Summary{Results: results}
	for _, r := range results {
		sum.count(r)
	}

	p.logger.Info("batch finished",
		slog.Int("trimmed", sum.Trimmed),
		slog.Int("placeholders", sum.Placeholders),
		slog.Int("skipped", sum.Skipped),
		slog.Int("failed", sum.Failed),
		slog.Int("canceled", sum.Canceled),
		slog.Duration("elapsed", time.Since(start)),
	)

	if err := ctx.Err(); err != nil {
		return sum, err
	}

	return sum, nil
}

// mirrorDirs creates the output root and one directory per input
// directory that holds audio.
func (p *Processor) mirrorDirs(jobs []Job) error {
	dirs := []string{p.opts.OutputDir}
	seen := map[string]bool{p.opts.OutputDir: true}
	for _, job := range jobs {
		dir := filepath.Dir(job.Output)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	return nil
}

func (p *Processor) process(job Job) Result {
	start := time.Now()
	res := Result{Job: job}
	log := p.logger.With(slog.String("file", job.Rel))

	w, err := p.reader.Read(job.Input)
	switch {
	case err == nil:
		res.Status = StatusTrimmed
	case p.opts.Policy == PolicyPlaceholder:
		log.Warn("unreadable file, using placeholder", slog.String("error", err.Error()))
		w = Placeholder()
		res.Status = StatusPlaceholder
	default:
		log.Warn("unreadable file, skipping", slog.String("error", err.Error()))
		res.Status = StatusSkipped
		res.Err = err
		res.Elapsed = time.Since(start)
		return res
	}

	out, rep, err := trim.Trim(w, p.opts.Trim)
	if err != nil {
		log.Warn("trim failed", slog.String("error", err.Error()))
		return failed(res, err, start)
	}
	res.Report = rep

	if err := p.writer.Write(job.Output, out); err != nil {
		log.Warn("write failed", slog.String("output", job.Output), slog.String("error", err.Error()))
		return failed(res, err, start)
	}

	res.Elapsed = time.Since(start)
	log.Debug("trimmed",
		slog.String("output", job.Output),
		slog.Int("first", rep.First),
		slog.Int("last", rep.Last),
		slog.Int("fade", rep.FadeLength),
		slog.Bool("active", rep.Active),
		slog.Float64("seconds", out.Seconds()),
		slog.Duration("elapsed", res.Elapsed),
	)

	return res
}

func failed(res Result, err error, start time.Time) Result {
	res.Status = StatusFailed
	res.Err = err
	res.Elapsed = time.Since(start)

	return res
}
