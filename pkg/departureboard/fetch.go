package departureboard

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/rmvtransport/pkg/rmv"
)

var retryInitialInterval = 500 * time.Millisecond

const maxConcurrentStations = 8

// getDepartures queries one station, retrying connection failures up to
// retries times with exponential backoff.
func getDepartures(ctx context.Context, client *rmv.Client, q rmv.DepartureQuery, retries int) (*rmv.DepartureBoard, error) {
	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.InitialInterval = retryInitialInterval

	var board *rmv.DepartureBoard

	operation := func() error {
		var err error
		board, err = client.GetDepartures(ctx, q)

		if errors.Is(err, rmv.APIConnectionError) {
			log.Warn().Err(err).Str("station", q.StationID).Msg("Retrying departure board")
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}

		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(retryBackoff, uint64(retries)), ctx))
	if err != nil {
		return nil, err
	}

	return board, nil
}

// GetDepartureBoards queries all stations concurrently. Boards are returned in
// query order; the first error cancels the remaining queries.
func GetDepartureBoards(ctx context.Context, client *rmv.Client, queries []rmv.DepartureQuery, retries int) ([]*rmv.DepartureBoard, error) {
	boards := make([]*rmv.DepartureBoard, len(queries))

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.WithMaxGoroutines(maxConcurrentStations)

	for i, q := range queries {
		i, q := i, q
		p.Go(func(ctx context.Context) error {
			board, err := getDepartures(ctx, client, q, retries)
			if err != nil {
				return err
			}

			boards[i] = board
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return boards, nil
}
