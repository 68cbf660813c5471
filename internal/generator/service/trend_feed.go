package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"golang-monetization-engine/internal/generator/config"
	"golang-monetization-engine/internal/generator/dto"
	"golang-monetization-engine/pkg/logger"
	"golang-monetization-engine/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed"
	"github.com/patrickmn/go-cache"
)

// FeedScraper pulls market news from RSS feeds and reduces it to an aggregate
// sentiment signal for the analyzer.
type FeedScraper interface {
	ScrapeSentiment(ctx context.Context, feedURLs []string) (*dto.TrendSentiment, error)
}

type feedScraper struct {
	cfg           *config.Config
	logger        *logger.Logger
	client        *http.Client
	inmemoryCache *cache.Cache
}

// NewFeedScraper creates a new FeedScraper.
func NewFeedScraper(cfg *config.Config, log *logger.Logger) FeedScraper {
	return &feedScraper{
		cfg:           cfg,
		logger:        log,
		client:        &http.Client{Timeout: cfg.Analyzer.FeedFetchTimeout},
		inmemoryCache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

var positiveTerms = []string{
	"growth", "surge", "record", "profit", "expansion", "demand", "upbeat",
	"rally", "recovery", "strong", "gain", "opportunity",
}

var negativeTerms = []string{
	"decline", "loss", "slump", "layoff", "downturn", "recession", "weak",
	"drop", "cut", "risk", "warning", "slowdown",
}

// ScrapeSentiment fetches every feed, extracts article text and scores it with
// a term lexicon. Results are cached per feed URL so repeated generation runs
// within the TTL do not re-fetch.
func (s *feedScraper) ScrapeSentiment(ctx context.Context, feedURLs []string) (*dto.TrendSentiment, error) {
	if len(feedURLs) == 0 {
		return &dto.TrendSentiment{}, nil
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		items []dto.FeedItem
	)

	// Cache hits are collected separately and merged after the fetch
	// goroutines finish, so items is only appended to under mu while they run.
	var cachedItems []dto.FeedItem
	for _, feedURL := range feedURLs {
		if cached, found := s.inmemoryCache.Get(feedURL); found {
			if hit, ok := cached.([]dto.FeedItem); ok {
				cachedItems = append(cachedItems, hit...)
				continue
			}
		}

		wg.Add(1)
		url := feedURL
		utils.GoSafe(func() {
			defer wg.Done()

			fetched, err := s.fetchFeed(ctx, url)
			if err != nil {
				s.logger.Error("Failed to fetch feed", logger.ErrorField(err), logger.StringField("url", url))
				return
			}
			s.inmemoryCache.Set(url, fetched, cache.DefaultExpiration)

			mu.Lock()
			items = append(items, fetched...)
			mu.Unlock()
		})
	}
	wg.Wait()
	items = append(items, cachedItems...)

	return s.score(items), nil
}

func (s *feedScraper) fetchFeed(ctx context.Context, url string) ([]dto.FeedItem, error) {
	fp := gofeed.NewParser()
	feed, err := fp.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	// Newest first, capped at max_feed_items per feed.
	sort.Slice(feed.Items, func(i, j int) bool {
		if feed.Items[i].PublishedParsed == nil || feed.Items[j].PublishedParsed == nil {
			return false
		}
		return feed.Items[i].PublishedParsed.After(*feed.Items[j].PublishedParsed)
	})

	maxItems := s.cfg.Analyzer.MaxFeedItems
	if maxItems <= 0 {
		maxItems = 10
	}

	var items []dto.FeedItem
	for _, item := range feed.Items {
		if len(items) >= maxItems {
			break
		}

		content, err := s.extractContent(ctx, item.Link)
		if err != nil {
			// Fall back to the feed's own description when the article page
			// cannot be fetched.
			s.logger.Debug("Falling back to feed description", logger.ErrorField(err), logger.StringField("link", item.Link))
			content = item.Description
		}

		items = append(items, dto.FeedItem{
			Title:       item.Title,
			Link:        item.Link,
			Content:     content,
			PublishedAt: item.PublishedParsed,
		})
	}
	return items, nil
}

func (s *feedScraper) extractContent(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for feed item: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch article, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read article body: %w", err)
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse article content: %w", err)
	}

	docHTML, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(doc.Content())))
	if err != nil {
		return "", fmt.Errorf("failed to parse article content: %w", err)
	}

	content := strings.TrimSpace(docHTML.Text())
	content = strings.ReplaceAll(content, "\n", " ")
	content = strings.ReplaceAll(content, "\t", " ")
	return content, nil
}

func (s *feedScraper) score(items []dto.FeedItem) *dto.TrendSentiment {
	sentiment := &dto.TrendSentiment{ArticleCount: len(items)}
	if len(items) == 0 {
		return sentiment
	}

	topicHits := make(map[string]int)
	for _, item := range items {
		text := strings.ToLower(item.Title + " " + item.Content)
		for _, term := range positiveTerms {
			n := strings.Count(text, term)
			sentiment.PositiveHits += n
			if n > 0 {
				topicHits[term] += n
			}
		}
		for _, term := range negativeTerms {
			n := strings.Count(text, term)
			sentiment.NegativeHits += n
			if n > 0 {
				topicHits[term] += n
			}
		}
	}

	total := sentiment.PositiveHits + sentiment.NegativeHits
	if total > 0 {
		sentiment.Score = float64(sentiment.PositiveHits-sentiment.NegativeHits) / float64(total)
	}

	best := 0
	for topic, hits := range topicHits {
		if hits > best {
			best = hits
			sentiment.DominantTopic = topic
		}
	}
	return sentiment
}
