package batch

import (
	"context"
	"sync"

	"github.com/sgostarter/i/l"

	"github.com/alexiusacademia/gobeam/internal/analysis"
)

// Outcome is the analysis of one job. Err is set when the job failed or was
// not run because the context ended.
type Outcome struct {
	Job       Job
	Reactions analysis.Reactions
	Results   []*analysis.Result
	Err       error
}

// Runner analyzes jobs on a fixed number of workers sharing one BeamAnalysis
type Runner struct {
	analysis *analysis.BeamAnalysis
	workers  int
	logger   l.Wrapper
}

// NewRunner creates a runner. workers below 1 is treated as 1.
func NewRunner(a *analysis.BeamAnalysis, workers int, logger l.Wrapper) *Runner {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	if a == nil {
		a = analysis.NewBeamAnalysis()
	}
	if workers < 1 {
		workers = 1
	}

	return &Runner{
		analysis: a,
		workers:  workers,
		logger:   logger.WithFields(l.StringField(l.ClsKey, "batchRunner")),
	}
}

// Run analyzes every job and returns the outcomes in job order
func (r *Runner) Run(ctx context.Context, jobs []Job) []Outcome {
	outcomes := make([]Outcome, len(jobs))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				outcomes[i] = r.runJob(jobs[i])
			}
		}()
	}

	next := 0
loop:
	for ; next < len(jobs); next++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break loop
		case indexes <- next:
		}
	}
	close(indexes)
	wg.Wait()

	for i := next; i < len(jobs); i++ {
		outcomes[i] = Outcome{Job: jobs[i], Err: ctx.Err()}
	}
	if next < len(jobs) {
		r.logger.WithFields(l.IntField("skipped", len(jobs)-next)).Error("batch interrupted")
	}

	return outcomes
}

func (r *Runner) runJob(job Job) Outcome {
	out := Outcome{Job: job}
	logger := r.logger.WithFields(l.StringField("job", job.Name))

	out.Results, out.Err = r.analysis.AnalyzeAll(job.Beam, job.Load, job.Condition)
	if out.Err != nil {
		logger.WithFields(l.ErrorField(out.Err)).Error("analysis failed")
		return out
	}

	out.Reactions, out.Err = r.analysis.GetReactions(job.Beam, job.Load, job.Condition)
	if out.Err != nil {
		logger.WithFields(l.ErrorField(out.Err)).Error("reactions failed")
		return out
	}

	logger.Debug("analyzed")
	return out
}
