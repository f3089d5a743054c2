package exchange

import (
	"context"
	"strings"
	"time"

	"bank-backoffice-api/logger"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// RateFeed supplies the base-currency quote for a single currency.
type RateFeed interface {
	CurrentRate(ctx context.Context, currency string) (decimal.Decimal, error)
}

// Service computes conversion rates between arbitrary currency pairs from a
// base-currency feed, with a cache-aside layer in front of the feed.
type Service struct {
	feed         RateFeed
	redisClient  *redis.Client
	baseCurrency string
	cacheTTL     time.Duration
}

func NewService(feed RateFeed, redisClient *redis.Client, baseCurrency string, cacheTTL time.Duration) *Service {
	return &Service{
		feed:         feed,
		redisClient:  redisClient,
		baseCurrency: strings.ToUpper(baseCurrency),
		cacheTTL:     cacheTTL,
	}
}

// Rate returns how many units of the `to` currency equal one unit of the
// `from` currency, computed as a cross rate through the base currency.
func (s *Service) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	rateFrom, err := s.baseRate(ctx, strings.ToUpper(from))
	if err != nil {
		return decimal.Zero, err
	}
	rateTo, err := s.baseRate(ctx, strings.ToUpper(to))
	if err != nil {
		return decimal.Zero, err
	}
	return rateFrom.Div(rateTo), nil
}

// baseRate is the base-currency value of one unit of the given currency. The
// base currency itself always quotes at 1.
func (s *Service) baseRate(ctx context.Context, currency string) (decimal.Decimal, error) {
	if currency == s.baseCurrency {
		return decimal.NewFromInt(1), nil
	}

	cacheKey := "rate:" + s.baseCurrency + ":" + currency

	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			if rate, parseErr := decimal.NewFromString(cached); parseErr == nil {
				return rate, nil
			}
		}
	}

	rate, err := s.feed.CurrentRate(ctx, currency)
	if err != nil {
		return decimal.Zero, err
	}

	if s.redisClient != nil {
		if err := s.redisClient.Set(ctx, cacheKey, rate.String(), s.cacheTTL).Err(); err != nil {
			logger.Log.WithError(err).WithField("currency", currency).Warn("Failed to cache exchange rate")
		}
	}

	return rate, nil
}
