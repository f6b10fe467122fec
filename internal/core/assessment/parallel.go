package assessment

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/baditaflorin/go_header_similarity/internal/ports"
)

// ForHeadersParallel is ForHeaders with rows assessed by up to workers
// goroutines. Workers <= 0 means GOMAXPROCS. The result is identical to
// ForHeaders; cancellation is checked between headers.
func ForHeadersParallel[K ports.ColumnKind](ctx context.Context, kinds []K, headers []string, workers int) (Matrix, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	matrix := make(Matrix, len(headers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for position, header := range headers {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			matrix[position] = assessRow(kinds, header, position, assessHeader[K])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return matrix, nil
}
