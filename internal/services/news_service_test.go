package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"verdure/internal/services"
	"verdure/pkg/utils"
)

func rssServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewsService_GetNews(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("maps feed items with fallbacks for missing fields", func(t *testing.T) {
		feed := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
  <channel>
    <title>AgriNews</title>
    <item>
      <title>Monsoon outlook improves</title>
      <link>https://example.com/monsoon</link>
      <description>Above-average rainfall expected.</description>
      <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
    </item>
    <item>
      <content:encoded><![CDATA[Full story body only.]]></content:encoded>
    </item>
  </channel>
</rss>`
		server := rssServer(t, feed)
		service := services.NewNewsService(server.URL, logger)

		items, err := service.GetNews(ctx)

		assert.NoError(t, err)
		assert.Len(t, items, 2)

		assert.Equal(t, 1, items[0].ID)
		assert.Equal(t, "Monsoon outlook improves", items[0].Title)
		assert.Equal(t, "https://example.com/monsoon", items[0].Link)
		assert.Equal(t, "AgriNews", items[0].Source)
		assert.Equal(t, "Above-average rainfall expected.", items[0].Summary)
		assert.NotEmpty(t, items[0].PubDate)

		assert.Equal(t, 2, items[1].ID)
		assert.Equal(t, "No Title", items[1].Title)
		assert.Equal(t, "#", items[1].Link)
		assert.Equal(t, "Full story body only.", items[1].Summary)
	})

	t.Run("untitled feed falls back to a generic source", func(t *testing.T) {
		feed := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title></title>
    <item>
      <title>Soil testing drive</title>
      <link>https://example.com/soil</link>
      <description>Free kits at the district office.</description>
    </item>
  </channel>
</rss>`
		server := rssServer(t, feed)
		service := services.NewNewsService(server.URL, logger)

		items, err := service.GetNews(ctx)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "RSS Feed", items[0].Source)
	})

	t.Run("unreachable feed surfaces the feed sentinel", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		t.Cleanup(server.Close)
		service := services.NewNewsService(server.URL, logger)

		items, err := service.GetNews(ctx)

		assert.Nil(t, items)
		assert.ErrorIs(t, err, utils.ErrFeedUnavailable)
	})
}
