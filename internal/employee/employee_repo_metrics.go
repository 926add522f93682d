package employee

import (
	"context"
	"iter"
	"time"

	"go-employee/internal/metrics"
)

type instrumentedRepository struct {
	next    Repository
	backend string
	m       *metrics.Metrics
}

// NewInstrumentedRepository records the latency of every call on next in
// the store operation histogram, labelled with backend.
func NewInstrumentedRepository(next Repository, backend string, m *metrics.Metrics) Repository {
	return &instrumentedRepository{next: next, backend: backend, m: m}
}

func (r *instrumentedRepository) observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.m.StoreOpDuration.
		WithLabelValues(r.backend, op, status).
		Observe(time.Since(start).Seconds())
}

func (r *instrumentedRepository) Save(ctx context.Context, e *Employee) error {
	start := time.Now()
	err := r.next.Save(ctx, e)
	r.observe("save", start, err)
	return err
}

func (r *instrumentedRepository) Update(ctx context.Context, e *Employee) (bool, error) {
	start := time.Now()
	ok, err := r.next.Update(ctx, e)
	r.observe("update", start, err)
	return ok, err
}

func (r *instrumentedRepository) FindByID(ctx context.Context, id string) (*Employee, error) {
	start := time.Now()
	e, err := r.next.FindByID(ctx, id)
	r.observe("find_by_id", start, err)
	return e, err
}

// FindAll measures the whole iteration, from the first pull to the last.
func (r *instrumentedRepository) FindAll(ctx context.Context) iter.Seq2[Employee, error] {
	return func(yield func(Employee, error) bool) {
		start := time.Now()
		var lastErr error
		defer func() { r.observe("find_all", start, lastErr) }()

		for e, err := range r.next.FindAll(ctx) {
			lastErr = err
			if !yield(e, err) {
				return
			}
		}
	}
}

func (r *instrumentedRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	start := time.Now()
	ok, err := r.next.DeleteByID(ctx, id)
	r.observe("delete_by_id", start, err)
	return ok, err
}

func (r *instrumentedRepository) DeleteAll(ctx context.Context) error {
	start := time.Now()
	err := r.next.DeleteAll(ctx)
	r.observe("delete_all", start, err)
	return err
}

func (r *instrumentedRepository) Ping(ctx context.Context) error {
	start := time.Now()
	err := r.next.Ping(ctx)
	r.observe("ping", start, err)
	return err
}
