package controllers

import (
	"github.com/gin-gonic/gin"
	"verdure/internal/services"
	"verdure/pkg/utils"
)

type NewsController struct {
	newsService services.NewsServiceInterface
}

func NewNewsController(newsService services.NewsServiceInterface) *NewsController {
	return &NewsController{
		newsService: newsService,
	}
}

// GetNews godoc
// @Summary Fetch agriculture news
// @Description Proxy the configured RSS feed as a JSON item list
// @Tags News
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /news [get]
func (nc *NewsController) GetNews(c *gin.Context) {
	items, err := nc.newsService.GetNews(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "News fetched successfully")
}
