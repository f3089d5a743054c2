package exchange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bank-backoffice-api/logger"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownCurrency means the upstream feed carries no quote for the
	// requested currency code.
	ErrUnknownCurrency = errors.New("currency not quoted by the exchange rate feed")
	// ErrFeedUnavailable means the upstream feed could not be reached or its
	// response could not be parsed.
	ErrFeedUnavailable = errors.New("exchange rate feed unavailable")
)

// FeedClient fetches current quotes from the national bank's textual rate
// feed. Every quote is the value of one unit of a foreign currency expressed
// in the feed's base currency.
type FeedClient struct {
	url        string
	httpClient *http.Client
}

func NewFeedClient(url string, timeout time.Duration) *FeedClient {
	return &FeedClient{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CurrentRate returns the base-currency value of one unit of the given
// currency. Transport and parse failures are reported loudly; a missing rate
// is never silently turned into a zero value.
func (c *FeedClient) CurrentRate(ctx context.Context, currency string) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch exchange rate feed")
		return decimal.Zero, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.WithField("status", resp.StatusCode).Error("Exchange rate feed returned non-OK status")
		return decimal.Zero, fmt.Errorf("%w: feed returned status %d", ErrFeedUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	return parseCurrentRate(string(body), currency)
}

// parseCurrentRate extracts the quote for a currency from the feed body. The
// feed lists entries as `<Rate unit="1" curr="USD">372,89</Rate>` with a
// decimal comma.
func parseCurrentRate(body, currency string) (decimal.Decimal, error) {
	pattern := `"` + currency + `"`

	var entry string
	for _, part := range strings.Split(body, "</Rate>") {
		if strings.Contains(part, pattern) {
			entry = part
			break
		}
	}
	if entry == "" {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, currency)
	}

	split := strings.SplitN(entry, pattern+">", 2)
	if len(split) != 2 {
		return decimal.Zero, fmt.Errorf("%w: malformed entry for %s", ErrFeedUnavailable, currency)
	}

	rate, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(split[1]), ",", "."))
	if err != nil {
		logger.Log.WithError(err).WithField("currency", currency).Error("Failed to parse exchange rate entry")
		return decimal.Zero, fmt.Errorf("%w: malformed entry for %s", ErrFeedUnavailable, currency)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: non-positive quote for %s", ErrFeedUnavailable, currency)
	}
	return rate, nil
}
