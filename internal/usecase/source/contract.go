package source

import (
	"context"
	"time"

	"github.com/payzee/dashboard/internal/domain/load"
	"github.com/payzee/dashboard/internal/domain/record"
)

// Loader fetches one remote list and serves its last-good copy.
type Loader interface {
	Load(ctx context.Context) (load.Batch[record.Record], error)
	Fallback(ctx context.Context) ([]record.Record, bool)
}

// Catalog is the part of the list catalog the source service writes to.
type Catalog interface {
	Sample(list string) ([]record.Record, error)
	BeginLoad(list string, now time.Time) (load.State, bool, error)
	Replace(list string, records []record.Record, st load.State) error
}

// typedLoader is a Loader over concrete rows, such as snapshot.Cache.
type typedLoader[T record.Record] interface {
	Load(ctx context.Context) (load.Batch[T], error)
	Fallback(ctx context.Context) ([]T, bool)
}

type erased[T record.Record] struct {
	inner typedLoader[T]
}

// Erase adapts a typed loader to Loader.
func Erase[T record.Record](l typedLoader[T]) Loader {
	return erased[T]{inner: l}
}

func (e erased[T]) Load(ctx context.Context) (load.Batch[record.Record], error) {
	b, err := e.inner.Load(ctx)
	if err != nil {
		return load.Batch[record.Record]{}, err
	}
	return load.Batch[record.Record]{Records: toRecords(b.Records), Rejected: b.Rejected}, nil
}

func (e erased[T]) Fallback(ctx context.Context) ([]record.Record, bool) {
	rows, ok := e.inner.Fallback(ctx)
	if !ok {
		return nil, false
	}
	return toRecords(rows), true
}

func toRecords[T record.Record](rows []T) []record.Record {
	out := make([]record.Record, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}
