package dto

import "time"

// FeedItem is a single market news article pulled from an RSS feed.
type FeedItem struct {
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Content     string     `json:"content"`
	PublishedAt *time.Time `json:"published_at"`
}

// TrendSentiment is the aggregate sentiment extracted from scraped market news.
type TrendSentiment struct {
	Score         float64 `json:"score"` // [-1, 1]
	ArticleCount  int     `json:"article_count"`
	PositiveHits  int     `json:"positive_hits"`
	NegativeHits  int     `json:"negative_hits"`
	DominantTopic string  `json:"dominant_topic"`
}
