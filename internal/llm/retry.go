package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// retryVerdict says what to do with a failed attempt.
type retryVerdict int

const (
	giveUp retryVerdict = iota
	retryOnce
	retryAlways
)

// verdictFor classifies err. Malformed output gets a single second chance;
// truncation, bad credentials and cancellation never improve on a retry.
func verdictFor(err error) retryVerdict {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return giveUp
	}
	var (
		maxTok  *ErrMaxTokensExceeded
		auth    *ErrUnauthorized
		invalid *ErrInvalidResponse
	)
	switch {
	case errors.As(err, &maxTok), errors.As(err, &auth):
		return giveUp
	case errors.As(err, &invalid):
		return retryOnce
	}
	return retryAlways
}

// delay is the wait before attempt+1. A rate limit with a Retry-After hint
// wins over the exponential schedule. jitter returns a value in [0, 1).
func (c RetryConfig) delay(attempt int, err error, jitter func() float64) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	base := float64(c.InitialWait) * math.Pow(c.Multiplier, float64(attempt))
	if ceil := float64(c.MaxWait); ceil > 0 && base > ceil {
		base = ceil
	}
	// Spread by up to 20% either way.
	d := time.Duration(base * (0.8 + 0.4*jitter()))
	return max(d, 0)
}

// RetryProvider re-issues requests that failed for transient reasons.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	jitter func() float64
	logger *zap.Logger
}

// WithRetry wraps p. MaxAttempts below one means a single attempt.
func WithRetry(p Provider, cfg RetryConfig, logger *zap.Logger) Provider {
	cfg.MaxAttempts = max(cfg.MaxAttempts, 1)
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RetryProvider{
		inner:  p,
		config: cfg,
		jitter: rand.Float64,
		logger: logger.Named("llm.retry"),
	}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		err         error
		usedSecond  bool
		lastAttempt = r.config.MaxAttempts - 1
	)
	for attempt := 0; attempt <= lastAttempt; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch verdictFor(err) {
		case giveUp:
			return nil, err
		case retryOnce:
			if usedSecond {
				return nil, err
			}
			usedSecond = true
		}
		if attempt == lastAttempt {
			break
		}

		wait := r.config.delay(attempt, err, r.jitter)
		r.logger.Debug("attempt failed, retrying",
			zap.String("purpose", PurposeFrom(ctx)),
			zap.Int("attempt", attempt+1),
			zap.String("reason", Reason(err)),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
		if serr := sleepCtx(ctx, wait); serr != nil {
			return nil, serr
		}
	}
	return nil, err
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
