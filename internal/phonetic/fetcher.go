package phonetic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// ErrProviderUnavailable is returned while the circuit breaker is open
var ErrProviderUnavailable = errors.New("phonetic provider unavailable")

// FetcherOptions tunes a Fetcher
type FetcherOptions struct {
	Language string
	Timeout  time.Duration
	// MaxFailures is the number of consecutive failures that opens the
	// breaker; OpenFor is how long it stays open.
	MaxFailures uint32
	OpenFor     time.Duration
}

// DefaultFetcherOptions returns options for Mexican Spanish lookups
func DefaultFetcherOptions() FetcherOptions {
	return FetcherOptions{
		Language:    "Mexican Spanish",
		Timeout:     30 * time.Second,
		MaxFailures: 5,
		OpenFor:     time.Minute,
	}
}

// Fetcher handles fetching pronunciations for words
type Fetcher struct {
	provider Provider
	options  FetcherOptions
	breaker  *gobreaker.CircuitBreaker
	cache    *Cache
}

// NewFetcher creates a new phonetic information fetcher
func NewFetcher(provider Provider, options FetcherOptions) *Fetcher {
	if options.MaxFailures == 0 {
		options.MaxFailures = DefaultFetcherOptions().MaxFailures
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "phonetic-" + provider.Name(),
		Timeout: options.OpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= options.MaxFailures
		},
	})

	return &Fetcher{
		provider: provider,
		options:  options,
		breaker:  breaker,
		cache:    NewCache(),
	}
}

// Cache returns the pronunciations fetched so far
func (f *Fetcher) Cache() *Cache {
	return f.cache
}

// Fetch returns the cleaned IPA for word. A word is asked for at most once
// successfully; later calls are served from the cache.
func (f *Fetcher) Fetch(ctx context.Context, word string) (string, error) {
	if ipa, ok := f.cache.Get(word); ok {
		return ipa, nil
	}

	out, err := f.breaker.Execute(func() (interface{}, error) {
		callCtx := ctx
		if f.options.Timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, f.options.Timeout)
			defer cancel()
		}

		raw, err := f.provider.FetchIPA(callCtx, word, f.options.Language)
		if err != nil {
			return nil, err
		}

		ipa := CleanResponse(raw)
		if ipa == "" {
			return nil, fmt.Errorf("empty pronunciation for %q", word)
		}
		return ipa, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %s", ErrProviderUnavailable, f.provider.Name())
		}
		return "", fmt.Errorf("fetch pronunciation for %q: %w", word, err)
	}

	ipa := out.(string)
	f.cache.Add(word, ipa)
	return ipa, nil
}

// CleanResponse reduces a model reply to a bare IPA string: first line
// only, without delimiters or a leading "word:" label.
func CleanResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	if _, after, ok := strings.Cut(s, ":"); ok {
		s = after
	}
	s = strings.Trim(strings.TrimSpace(s), "/[]`\"' ")
	return strings.TrimSpace(s)
}
