package controllers

import (
	"github.com/gin-gonic/gin"
	"verdure/internal/services"
	"verdure/pkg/utils"
)

type StoryController struct {
	storyService services.StoryServiceInterface
}

func NewStoryController(storyService services.StoryServiceInterface) *StoryController {
	return &StoryController{
		storyService: storyService,
	}
}

// GetStories godoc
// @Summary List success stories
// @Tags Stories
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /success-stories [get]
func (sc *StoryController) GetStories(c *gin.Context) {
	stories, err := sc.storyService.GetStories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stories, "Stories fetched successfully")
}
