package storage

import (
	"context"
	"log/slog"
)

// Retrying wraps a Storage and retries a failed write once.
type Retrying struct {
	next Storage
	log  *slog.Logger
}

// NewRetrying returns st with one retry on Set and Remove.
func NewRetrying(st Storage) *Retrying {
	return &Retrying{
		next: st,
		log:  slog.Default().With("component", "storage"),
	}
}

func (r *Retrying) Get(ctx context.Context, key string) (string, error) {
	return r.next.Get(ctx, key)
}

func (r *Retrying) Set(ctx context.Context, key string, value string) error {
	return r.retry(ctx, "set", key, func() error {
		return r.next.Set(ctx, key, value)
	})
}

func (r *Retrying) Remove(ctx context.Context, key string) error {
	return r.retry(ctx, "remove", key, func() error {
		return r.next.Remove(ctx, key)
	})
}

func (r *Retrying) retry(ctx context.Context, op, key string, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}

	r.log.Debug("write failed, retrying", "op", op, "key", key, "err", err)

	if ctx.Err() != nil {
		return err
	}

	if err = fn(); err != nil {
		r.log.Warn("write failed after retry", "op", op, "key", key, "err", err)
		return err
	}

	return nil
}
