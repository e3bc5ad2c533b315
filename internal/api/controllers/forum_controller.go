package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"verdure/internal/models/request_models"
	"verdure/internal/repositories"
	"verdure/internal/services"
	"verdure/pkg/utils"
)

type ForumController struct {
	forumService services.ForumServiceInterface
}

func NewForumController(forumService services.ForumServiceInterface) *ForumController {
	return &ForumController{
		forumService: forumService,
	}
}

// GetPosts godoc
// @Summary List forum posts
// @Description Paged active posts, optionally filtered by category or a search term
// @Tags Forum
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Case-insensitive match on title, content and tags"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /forum [get]
func (fc *ForumController) GetPosts(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := repositories.ForumFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	}

	result, err := fc.forumService.GetPosts(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Posts fetched successfully")
}

// GetStats godoc
// @Summary Forum totals
// @Tags Forum
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /forum/stats [get]
func (fc *ForumController) GetStats(c *gin.Context) {
	stats, err := fc.forumService.GetStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Forum stats fetched successfully")
}

// CreatePost godoc
// @Summary Create a forum post
// @Tags Forum
// @Accept json
// @Produce json
// @Param request body request_models.CreatePostRequest true "Post payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /forum [post]
func (fc *ForumController) CreatePost(c *gin.Context) {
	var req request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title and content are required")
		return
	}

	post, err := fc.forumService.CreatePost(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, post, "Post created successfully")
}

// GetPost godoc
// @Summary Fetch a single post
// @Description Returns the post and bumps its view counter
// @Tags Forum
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /forum/{id} [get]
func (fc *ForumController) GetPost(c *gin.Context) {
	post, err := fc.forumService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post fetched successfully")
}

// AddComment godoc
// @Summary Comment on a post
// @Tags Forum
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body request_models.AddCommentRequest true "Comment payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /forum/{id}/comments [post]
func (fc *ForumController) AddComment(c *gin.Context) {
	var req request_models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Comment content is required")
		return
	}

	post, err := fc.forumService.AddComment(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, post, "Comment added successfully")
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Tags Forum
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /forum/{id}/like [post]
func (fc *ForumController) ToggleLike(c *gin.Context) {
	result, err := fc.forumService.ToggleLike(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Like toggled successfully")
}

// UpdatePost godoc
// @Summary Update a post
// @Description Only the author may edit
// @Tags Forum
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body request_models.UpdatePostRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /forum/{id} [put]
func (fc *ForumController) UpdatePost(c *gin.Context) {
	var req request_models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := fc.forumService.UpdatePost(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post updated successfully")
}

// DeletePost godoc
// @Summary Delete a post
// @Description Author or admin; the post is deactivated, not removed
// @Tags Forum
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /forum/{id} [delete]
func (fc *ForumController) DeletePost(c *gin.Context) {
	err := fc.forumService.DeletePost(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post deleted successfully")
}
