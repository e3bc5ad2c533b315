package services

import (
	"context"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
	"verdure/internal/models/response_models"
	"verdure/pkg/utils"
)

type NewsServiceInterface interface {
	GetNews(ctx context.Context) ([]response_models.NewsItem, error)
}

type NewsService struct {
	feedURL string
	parser  *gofeed.Parser
	logger  *zap.Logger
}

func NewNewsService(feedURL string, logger *zap.Logger) NewsServiceInterface {
	return &NewsService{
		feedURL: feedURL,
		parser:  gofeed.NewParser(),
		logger:  logger,
	}
}

// GetNews proxies the configured syndication feed; nothing is cached or
// stored.
func (s *NewsService) GetNews(ctx context.Context) ([]response_models.NewsItem, error) {
	feed, err := s.parser.ParseURLWithContext(s.feedURL, ctx)
	if err != nil {
		s.logger.Error("fetching news feed failed", zap.String("url", s.feedURL), zap.Error(err))
		return nil, utils.ErrFeedUnavailable
	}

	source := feed.Title
	if source == "" {
		source = "RSS Feed"
	}

	items := make([]response_models.NewsItem, 0, len(feed.Items))
	for i, item := range feed.Items {
		title := item.Title
		if title == "" {
			title = "No Title"
		}
		link := item.Link
		if link == "" {
			link = "#"
		}
		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		items = append(items, response_models.NewsItem{
			ID:      i + 1,
			Title:   title,
			Link:    link,
			PubDate: item.Published,
			Source:  source,
			Summary: summary,
		})
	}

	return items, nil
}
