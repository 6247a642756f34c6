package ratelimit

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/wagner1975/eezycollectionz/internal/metrics"
	"golang.org/x/time/rate"
)

var rejectedRequests = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: metrics.Namespace,
	Subsystem: "http",
	Name:      "rate_limited_requests_total",
	Help:      "Number of requests rejected by the rate limiter",
})

type Options struct {
	// TrustHeaders identifies clients by X-Forwarded-For / X-Real-Ip
	TrustHeaders bool
	// Interval is the time needed to earn back one request
	Interval  time.Duration
	MaxBurst  int
	CacheSize int
	CacheTTL  time.Duration
}

// Middleware limits each client to a token bucket of MaxBurst requests
// refilled every Interval. Rejected requests get a 429 with a Retry-After
// header.
func Middleware(opts Options) func(http.Handler) http.Handler {
	cache := expirable.NewLRU[string, *rate.Limiter](opts.CacheSize, nil, opts.CacheTTL)

	getLimiter := func(client string) *rate.Limiter {
		limiter, exists := cache.Get(client)
		if !exists {
			limiter = rate.NewLimiter(rate.Every(opts.Interval), opts.MaxBurst)
			cache.Add(client, limiter)
		}

		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientAddr(r, opts.TrustHeaders)
			limiter := getLimiter(client)

			now := time.Now()

			reservation := limiter.ReserveN(now, 1)
			delay := reservation.DelayFrom(now)

			if !reservation.OK() || delay > 0 {
				if reservation.OK() {
					reservation.CancelAt(now)
				} else {
					delay = opts.Interval
				}

				rejectedRequests.Inc()
				slog.DebugContext(r.Context(), "request rate limited", slog.String("client", client), slog.Duration("delay", delay))

				w.Header().Set("Retry-After", strconv.Itoa(max(int(math.Ceil(delay.Seconds())), 1)))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			tokens := limiter.TokensAt(now)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(opts.MaxBurst))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(math.Max(math.Floor(tokens), 0))))

			missing := float64(opts.MaxBurst) - tokens
			resetAt := now.Add(time.Duration(missing * float64(opts.Interval)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

			next.ServeHTTP(w, r)
		})
	}
}

func clientAddr(r *http.Request, trustHeaders bool) string {
	if trustHeaders {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}

		if xri := r.Header.Get("X-Real-Ip"); xri != "" {
			return xri
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
