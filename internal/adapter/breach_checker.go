package adapter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-vault-guard/internal/config"
	"github.com/MKhiriev/go-vault-guard/internal/logger"
	"github.com/MKhiriev/go-vault-guard/internal/utils"
)

const (
	prefixLength = 5
	probePrefix  = "00000"
	rangePath    = "/range/{prefix}"
)

type httpBreachChecker struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewBreachChecker constructs a resty-backed [BreachChecker] for the range
// API at adapterCfg.BreachAPIURL. Requests time out after
// adapterCfg.RequestTimeout.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewBreachChecker(adapterCfg config.Adapter, logger *logger.Logger) (BreachChecker, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BreachAPIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid breach api url: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpBreachChecker{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Count implements [BreachChecker]. It sends the 5-character prefix of the
// uppercase SHA-1 digest to GET /range/{prefix} and looks up the remaining
// 35 characters in the response. A connectivity probe against
// GET /range/00000 runs first; if it cannot connect the lookup is skipped.
func (b *httpBreachChecker) Count(ctx context.Context, password string) (int, error) {
	digest := strings.ToUpper(utils.DigestString(password))
	prefix, suffix := digest[:prefixLength], digest[prefixLength:]

	if err := b.probe(ctx); err != nil {
		b.logger.Warn().Err(err).Msg("breach api unreachable, skipping check")
		return 0, nil
	}

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Add-Padding", "true").
		SetPathParam("prefix", prefix).
		Get(rangePath)
	if err != nil {
		return 0, fmt.Errorf("%w: range request: %w", ErrBreachCheckFailure, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBreachCheckFailure, err)
	}

	count, err := findSuffix(resp.Body(), suffix)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBreachCheckFailure, err)
	}
	return count, nil
}

// probe only fails on transport errors. Status errors are left to the real
// query.
func (b *httpBreachChecker) probe(ctx context.Context) error {
	_, err := b.client.R().
		SetContext(ctx).
		SetPathParam("prefix", probePrefix).
		Get(rangePath)
	return err
}

// findSuffix scans SUFFIX:COUNT lines for an exact, case-sensitive suffix
// match. Padding lines carry a zero count.
func findSuffix(body []byte, suffix string) (int, error) {
	sc := bufio.NewScanner(bytes.NewReader(body))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		hashSuffix, rawCount, ok := strings.Cut(line, ":")
		if !ok {
			return 0, fmt.Errorf("%w: %q", errMalformedRange, line)
		}
		if hashSuffix != suffix {
			continue
		}

		count, err := strconv.Atoi(rawCount)
		if err != nil {
			return 0, fmt.Errorf("%w: count %q", errMalformedRange, rawCount)
		}
		return count, nil
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("read range response: %w", err)
	}
	return 0, nil
}
