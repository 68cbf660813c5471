package service

import (
	"context"
	"encoding/json"
	"time"

	"golang-monetization-engine/pkg/logger"

	"github.com/patrickmn/go-cache"
)

// MarketAnalyzer processes raw market trend data into analysis-ready form.
type MarketAnalyzer interface {
	Analyze(ctx context.Context, marketTrends map[string]interface{}) (map[string]interface{}, error)
}

type marketAnalyzer struct {
	cleaner        DataCleaner
	scraper        FeedScraper
	logger         *logger.Logger
	benchmarkCache *cache.Cache
}

// benchmarkEntry is the cached result of benchmark normalization for one
// trend input: the classified metric map plus the feed URLs it carried.
type benchmarkEntry struct {
	metrics  map[string]interface{}
	feedURLs []string
}

// NewMarketAnalyzer creates a new MarketAnalyzer. The scraper may be nil, in
// which case news sentiment enrichment is skipped. A non-positive
// benchmarkCacheTTL disables benchmark caching.
func NewMarketAnalyzer(cleaner DataCleaner, scraper FeedScraper, log *logger.Logger, benchmarkCacheTTL time.Duration) MarketAnalyzer {
	a := &marketAnalyzer{
		cleaner: cleaner,
		scraper: scraper,
		logger:  log,
	}
	if benchmarkCacheTTL > 0 {
		a.benchmarkCache = cache.New(benchmarkCacheTTL, 2*benchmarkCacheTTL)
	}
	return a
}

// Analyze normalizes trend data, classifies the overall trend direction and
// volatility, and optionally enriches the result with news feed sentiment when
// the input carries a "feed_urls" entry. Benchmark normalization is cached
// per input; sentiment enrichment runs on every call.
func (a *marketAnalyzer) Analyze(ctx context.Context, marketTrends map[string]interface{}) (map[string]interface{}, error) {
	if marketTrends == nil {
		a.logger.Error("Market analysis failed", logger.ErrorField(ErrNoMarketData))
		return nil, ErrNoMarketData
	}

	analyzed, feedURLs, err := a.benchmarks(ctx, marketTrends)
	if err != nil {
		a.logger.Error("Market analysis failed", logger.ErrorField(err))
		return nil, err
	}

	if a.scraper != nil && len(feedURLs) > 0 {
		sentiment, err := a.scraper.ScrapeSentiment(ctx, feedURLs)
		if err != nil {
			a.logger.Error("Market analysis failed", logger.ErrorField(err))
			return nil, err
		}
		if sentiment.ArticleCount > 0 {
			analyzed["news_sentiment"] = sentiment.Score
			analyzed["news_article_count"] = float64(sentiment.ArticleCount)
			if sentiment.DominantTopic != "" {
				analyzed["news_dominant_topic"] = sentiment.DominantTopic
			}
		}
	}

	return analyzed, nil
}

// benchmarks returns a fresh classified benchmark map and the feed URLs the
// input carried, serving repeated inputs from the in-process cache.
func (a *marketAnalyzer) benchmarks(ctx context.Context, marketTrends map[string]interface{}) (map[string]interface{}, []string, error) {
	key := benchmarkCacheKey(marketTrends)
	if a.benchmarkCache != nil && key != "" {
		if cached, found := a.benchmarkCache.Get(key); found {
			if entry, ok := cached.(benchmarkEntry); ok {
				return copyMetrics(entry.metrics), entry.feedURLs, nil
			}
		}
	}

	analyzed, err := a.cleaner.Clean(ctx, marketTrends)
	if err != nil {
		return nil, nil, err
	}

	if growth, ok := numeric(analyzed, "market_growth"); ok {
		analyzed["trend_direction"] = classifyTrend(growth)
	}
	if volatility, ok := numeric(analyzed, "volatility"); ok {
		analyzed["volatility_level"] = classifyVolatility(volatility)
	}

	feedURLs := extractFeedURLs(analyzed)
	delete(analyzed, "feed_urls")

	if a.benchmarkCache != nil && key != "" {
		a.benchmarkCache.Set(key, benchmarkEntry{
			metrics:  copyMetrics(analyzed),
			feedURLs: feedURLs,
		}, cache.DefaultExpiration)
	}
	return analyzed, feedURLs, nil
}

// benchmarkCacheKey is the canonical JSON form of the trend input; map keys
// marshal in sorted order so equal inputs share a key.
func benchmarkCacheKey(marketTrends map[string]interface{}) string {
	raw, err := json.Marshal(marketTrends)
	if err != nil {
		return ""
	}
	return string(raw)
}

func copyMetrics(metrics map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(metrics))
	for k, v := range metrics {
		out[k] = v
	}
	return out
}

func classifyTrend(growth float64) string {
	switch {
	case growth >= 0.02:
		return "up"
	case growth <= -0.02:
		return "down"
	default:
		return "flat"
	}
}

func classifyVolatility(volatility float64) string {
	switch {
	case volatility >= 0.3:
		return "high"
	case volatility >= 0.1:
		return "normal"
	default:
		return "low"
	}
}

func extractFeedURLs(m map[string]interface{}) []string {
	raw, ok := m["feed_urls"]
	if !ok {
		return nil
	}
	var urls []string
	switch v := raw.(type) {
	case []string:
		urls = v
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				urls = append(urls, s)
			}
		}
	}
	return urls
}
