package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang-monetization-engine/internal/generator/config"
	"golang-monetization-engine/internal/generator/dto"
	"golang-monetization-engine/pkg/logger"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Market News</title>
    <item>
      <title>Demand surge drives record quarter</title>
      <link>http://127.0.0.1:0/article</link>
      <description>Strong growth and profit expansion reported.</description>
    </item>
  </channel>
</rss>`

func newTestFeedScraper(t *testing.T) *feedScraper {
	t.Helper()
	cfg := &config.Config{}
	cfg.Analyzer.FeedFetchTimeout = 2 * time.Second
	cfg.Analyzer.MaxFeedItems = 5
	scraper, ok := NewFeedScraper(cfg, logger.NewNop()).(*feedScraper)
	require.True(t, ok)
	return scraper
}

func TestFeedScraperMergesCachedAndFetchedFeeds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testFeedXML))
	}))
	defer server.Close()

	scraper := newTestFeedScraper(t)
	scraper.inmemoryCache.Set("cached://feed", []dto.FeedItem{
		{Title: "Recovery rally continues", Content: "Upbeat demand and strong gains."},
	}, cache.DefaultExpiration)

	// One cache hit and one live fetch in the same call; the article link in
	// the served feed is unreachable so content falls back to the description.
	sentiment, err := scraper.ScrapeSentiment(context.Background(), []string{server.URL, "cached://feed"})
	require.NoError(t, err)

	assert.Equal(t, 2, sentiment.ArticleCount)
	assert.Greater(t, sentiment.PositiveHits, 0)
	assert.Zero(t, sentiment.NegativeHits)
}

func TestFeedScraperEmptyURLList(t *testing.T) {
	scraper := newTestFeedScraper(t)

	sentiment, err := scraper.ScrapeSentiment(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, sentiment.ArticleCount)
}
