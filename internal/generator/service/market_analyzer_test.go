package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-monetization-engine/internal/generator/dto"
	"golang-monetization-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScraper struct {
	sentiment *dto.TrendSentiment
	err       error
	calledFor []string
}

func (s *stubScraper) ScrapeSentiment(ctx context.Context, feedURLs []string) (*dto.TrendSentiment, error) {
	s.calledFor = feedURLs
	if s.err != nil {
		return nil, s.err
	}
	return s.sentiment, nil
}

func TestMarketAnalyzerClassifiesTrendAndVolatility(t *testing.T) {
	analyzer := NewMarketAnalyzer(NewDataCleaner(logger.NewNop()), nil, logger.NewNop(), 0)

	tests := []struct {
		name           string
		growth         float64
		volatility     float64
		wantDirection  string
		wantVolatility string
	}{
		{"growing volatile market", 0.05, 0.35, "up", "high"},
		{"shrinking market", -0.04, 0.15, "down", "normal"},
		{"flat calm market", 0.01, 0.05, "flat", "low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzed, err := analyzer.Analyze(context.Background(), map[string]interface{}{
				"market_growth": tt.growth,
				"volatility":    tt.volatility,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantDirection, analyzed["trend_direction"])
			assert.Equal(t, tt.wantVolatility, analyzed["volatility_level"])
		})
	}
}

func TestMarketAnalyzerNilInput(t *testing.T) {
	analyzer := NewMarketAnalyzer(NewDataCleaner(logger.NewNop()), nil, logger.NewNop(), 0)

	analyzed, err := analyzer.Analyze(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoMarketData)
	assert.Nil(t, analyzed)
}

func TestMarketAnalyzerEnrichesWithNewsSentiment(t *testing.T) {
	scraper := &stubScraper{sentiment: &dto.TrendSentiment{
		Score:         0.4,
		ArticleCount:  12,
		DominantTopic: "pricing",
	}}
	analyzer := NewMarketAnalyzer(NewDataCleaner(logger.NewNop()), scraper, logger.NewNop(), 0)

	analyzed, err := analyzer.Analyze(context.Background(), map[string]interface{}{
		"market_growth": 0.03,
		"feed_urls":     []interface{}{"https://example.com/feed.xml"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/feed.xml"}, scraper.calledFor)
	assert.Equal(t, 0.4, analyzed["news_sentiment"])
	assert.Equal(t, float64(12), analyzed["news_article_count"])
	assert.Equal(t, "pricing", analyzed["news_dominant_topic"])
	assert.NotContains(t, analyzed, "feed_urls")
}

func TestMarketAnalyzerPropagatesScraperError(t *testing.T) {
	wantErr := errors.New("feed unreachable")
	analyzer := NewMarketAnalyzer(NewDataCleaner(logger.NewNop()), &stubScraper{err: wantErr}, logger.NewNop(), 0)

	analyzed, err := analyzer.Analyze(context.Background(), map[string]interface{}{
		"market_growth": 0.03,
		"feed_urls":     []interface{}{"https://example.com/feed.xml"},
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, analyzed)
}

func TestMarketAnalyzerSkipsScrapingWithoutFeeds(t *testing.T) {
	scraper := &stubScraper{}
	analyzer := NewMarketAnalyzer(NewDataCleaner(logger.NewNop()), scraper, logger.NewNop(), 0)

	analyzed, err := analyzer.Analyze(context.Background(), map[string]interface{}{
		"market_growth": 0.03,
	})
	require.NoError(t, err)
	assert.Nil(t, scraper.calledFor)
	assert.NotContains(t, analyzed, "news_sentiment")
}

func TestMarketAnalyzerCachesBenchmarks(t *testing.T) {
	cleaner := &recordingCleaner{result: map[string]interface{}{
		"market_growth": 0.05,
		"margin":        0.3,
	}}
	analyzer := NewMarketAnalyzer(cleaner, nil, logger.NewNop(), time.Minute)

	input := map[string]interface{}{"market_growth": 0.05, "margin": 0.3}

	first, err := analyzer.Analyze(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "up", first["trend_direction"])
	assert.Equal(t, 1, cleaner.calls)

	// Same input within the TTL is served from the cache.
	second, err := analyzer.Analyze(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 1, cleaner.calls)
	assert.Equal(t, first, second)

	// Cached entries hand out copies, so caller mutations do not leak.
	first["margin"] = 0.0
	third, err := analyzer.Analyze(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 0.3, third["margin"])

	// A different input misses the cache.
	_, err = analyzer.Analyze(context.Background(), map[string]interface{}{"market_growth": -0.05})
	require.NoError(t, err)
	assert.Equal(t, 2, cleaner.calls)
}

func TestMarketAnalyzerCacheDisabledByZeroTTL(t *testing.T) {
	cleaner := &recordingCleaner{result: map[string]interface{}{"margin": 0.3}}
	analyzer := NewMarketAnalyzer(cleaner, nil, logger.NewNop(), 0)

	input := map[string]interface{}{"margin": 0.3}
	_, err := analyzer.Analyze(context.Background(), input)
	require.NoError(t, err)
	_, err = analyzer.Analyze(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 2, cleaner.calls)
}
