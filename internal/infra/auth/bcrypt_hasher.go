// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"whisper/config"
	"whisper/internal/domain/service"
	"whisper/internal/errors"
	"whisper/internal/infra/metrics"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// Hashing runs behind a weighted semaphore so at most `workers` bcrypt
// computations are in flight.
type bcryptHasher struct {
	cost int
	pool *semaphore.Weighted
}

// HasherParams holds dependencies for the password hasher, injected by Fx.
type HasherParams struct {
	fx.In

	Config *config.Config
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(params HasherParams) (service.PasswordHasher, error) {
	cost, workers := bcrypt.DefaultCost, 0
	if params.Config.Auth != nil {
		cost, workers = params.Config.Auth.BcryptCost, params.Config.Auth.HashWorkers
	}

	return NewBcryptHasherWithCost(cost, workers)
}

// NewBcryptHasherWithCost builds a hasher with an explicit work factor.
// workers <= 0 means GOMAXPROCS.
func NewBcryptHasherWithCost(cost, workers int) (service.PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &bcryptHasher{
		cost: cost,
		pool: semaphore.NewWeighted(int64(workers)),
	}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	var hashed []byte
	err := h.run(ctx, "hash", func() error {
		var genErr error
		hashed, genErr = bcrypt.GenerateFromPassword([]byte(password), h.cost)

		return genErr
	})
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(hashed), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(ctx context.Context, password, hash string) (bool, error) {
	var matched bool
	err := h.run(ctx, "check", func() error {
		// Any comparison error, including a malformed hash, is a mismatch.
		matched = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "bcrypt check")
	}

	return matched, nil
}

// run waits for a pool slot, then does the work on its own goroutine so the
// caller can give up when ctx ends. Abandoned work still releases its slot.
func (h *bcryptHasher) run(ctx context.Context, op string, work func() error) error {
	if err := h.pool.Acquire(ctx, 1); err != nil {
		return errors.WithStack(err)
	}

	done := make(chan error, 1)
	go func() {
		defer h.pool.Release(1)

		start := time.Now()
		err := work()
		metrics.ObservePasswordHash(op, time.Since(start))
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
