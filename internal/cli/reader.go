package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// ReadContract reads r to EOF, returning early with ErrInputCancelled when
// ctx is done. The reading goroutine finishes on its own after cancellation.
func ReadContract(ctx context.Context, r io.Reader) (string, error) {
	if r == nil {
		return "", errors.New("reader cannot be nil")
	}

	type result struct {
		err  error
		data []byte
	}
	resultCh := make(chan result, 1)

	go func() {
		data, err := io.ReadAll(r)
		resultCh <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil {
			return "", fmt.Errorf("failed to read contract: %w", res.err)
		}
		return string(res.data), nil
	}
}
