package forecast

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/julianstephens/uvcast/internal/models"
)

// RateLimitedSource wraps a Source with a token bucket limiter
type RateLimitedSource struct {
	source  Source
	limiter *rate.Limiter
	name    string
}

var _ Source = (*RateLimitedSource)(nil)

// NewRateLimitedSource allows rps fetches per second with the given burst.
// rps can be fractional for less than one request per second.
func NewRateLimitedSource(source Source, rps float64, burst int) *RateLimitedSource {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// WithRateLimit wraps source when rps is positive and returns it unchanged otherwise
func WithRateLimit(source Source, rps float64, burst int) Source {
	if rps <= 0 {
		return source
	}
	return NewRateLimitedSource(source, rps, burst)
}

func (r *RateLimitedSource) Fetch(ctx context.Context, postalCode string) ([]models.HourForecast, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait canceled: %v", ErrTransport, err)
	}
	return r.source.Fetch(ctx, postalCode)
}

func (r *RateLimitedSource) Name() string {
	return r.name
}
