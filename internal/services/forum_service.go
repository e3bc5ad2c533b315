package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"verdure/internal/models/db_models"
	"verdure/internal/models/request_models"
	"verdure/internal/models/response_models"
	"verdure/internal/repositories"
	"verdure/pkg/utils"
)

type ForumServiceInterface interface {
	GetPosts(ctx context.Context, filter repositories.ForumFilter) (*response_models.ForumListResponse, error)
	GetStats(ctx context.Context) (*db_models.ForumStats, error)
	CreatePost(ctx context.Context, userID string, req request_models.CreatePostRequest) (*response_models.ForumPostView, error)
	GetPost(ctx context.Context, postID string) (*response_models.ForumPostView, error)
	AddComment(ctx context.Context, userID, postID, content string) (*response_models.ForumPostView, error)
	ToggleLike(ctx context.Context, userID, postID string) (*response_models.ToggleLikeResponse, error)
	UpdatePost(ctx context.Context, userID, postID string, req request_models.UpdatePostRequest) (*response_models.ForumPostView, error)
	DeletePost(ctx context.Context, userID, role, postID string) error
}

type ForumService struct {
	forumRepo repositories.ForumRepository
	userRepo  repositories.UserRepository
	logger    *zap.Logger
}

func NewForumService(forumRepo repositories.ForumRepository, userRepo repositories.UserRepository, logger *zap.Logger) ForumServiceInterface {
	return &ForumService{
		forumRepo: forumRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (s *ForumService) GetPosts(ctx context.Context, filter repositories.ForumFilter) (*response_models.ForumListResponse, error) {
	posts, total, err := s.forumRepo.ListActive(ctx, filter)
	if err != nil {
		s.logger.Error("listing forum posts failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.ForumPostView, 0, len(posts))
	for i := range posts {
		views = append(views, toPostView(&posts[i]))
	}

	return &response_models.ForumListResponse{
		Items:       views,
		TotalPages:  response_models.TotalPages(total, filter.Limit),
		CurrentPage: filter.Page,
		TotalCount:  total,
	}, nil
}

func (s *ForumService) GetStats(ctx context.Context) (*db_models.ForumStats, error) {
	stats, err := s.forumRepo.GetStats(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stats == nil {
		return s.recomputeStats(ctx)
	}
	return stats, nil
}

func (s *ForumService) CreatePost(ctx context.Context, userID string, req request_models.CreatePostRequest) (*response_models.ForumPostView, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrMissingFields
	}

	post := &db_models.ForumPost{
		UserID:   uid,
		Title:    req.Title,
		Content:  req.Content,
		Category: db_models.ForumCommunity,
		Tags:     req.Tags,
		IsActive: true,
	}
	if req.Category != "" {
		if !validForumCategory(req.Category) {
			return nil, utils.ErrInvalidCategory
		}
		post.Category = db_models.ForumCategory(req.Category)
	}

	if err := s.forumRepo.Insert(ctx, post); err != nil {
		s.logger.Error("creating forum post failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if _, err := s.recomputeStats(ctx); err != nil {
		s.logger.Warn("recomputing forum stats failed", zap.Error(err))
	}

	reloaded, err := s.forumRepo.FindByID(ctx, post.ID.String())
	if err != nil || reloaded == nil {
		view := toPostView(post)
		return &view, nil
	}
	view := toPostView(reloaded)
	return &view, nil
}

func (s *ForumService) GetPost(ctx context.Context, postID string) (*response_models.ForumPostView, error) {
	post, err := s.activePost(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Views++
	if err := s.forumRepo.Save(ctx, post); err != nil {
		s.logger.Error("bumping view count failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	view := toPostView(post)
	return &view, nil
}

func (s *ForumService) AddComment(ctx context.Context, userID, postID, content string) (*response_models.ForumPostView, error) {
	post, err := s.activePost(ctx, postID)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if author == nil {
		return nil, utils.ErrUserNotFound
	}

	post.Comments = append(post.Comments, db_models.Comment{
		AuthorID:   author.ID,
		AuthorName: author.Username,
		Content:    content,
		CreatedAt:  time.Now().Unix(),
	})

	if err := s.forumRepo.Save(ctx, post); err != nil {
		s.logger.Error("adding comment failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if _, err := s.recomputeStats(ctx); err != nil {
		s.logger.Warn("recomputing forum stats failed", zap.Error(err))
	}

	view := toPostView(post)
	return &view, nil
}

// ToggleLike is a read-modify-write without a surrounding transaction;
// concurrent toggles against the same post can lose updates.
func (s *ForumService) ToggleLike(ctx context.Context, userID, postID string) (*response_models.ToggleLikeResponse, error) {
	post, err := s.activePost(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked := false
	for _, id := range post.LikedBy {
		if id == userID {
			liked = true
			break
		}
	}

	if liked {
		post.Likes--
		kept := post.LikedBy[:0]
		for _, id := range post.LikedBy {
			if id != userID {
				kept = append(kept, id)
			}
		}
		post.LikedBy = kept
	} else {
		post.Likes++
		post.LikedBy = append(post.LikedBy, userID)
	}

	if err := s.forumRepo.Save(ctx, post); err != nil {
		s.logger.Error("toggling like failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ToggleLikeResponse{
		Likes:   post.Likes,
		IsLiked: !liked,
	}, nil
}

func (s *ForumService) UpdatePost(ctx context.Context, userID, postID string, req request_models.UpdatePostRequest) (*response_models.ForumPostView, error) {
	post, err := s.activePost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID.String() != userID {
		return nil, utils.ErrNotOwner
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.Category != "" {
		if !validForumCategory(req.Category) {
			return nil, utils.ErrInvalidCategory
		}
		post.Category = db_models.ForumCategory(req.Category)
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}

	if err := s.forumRepo.Save(ctx, post); err != nil {
		s.logger.Error("updating forum post failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	view := toPostView(post)
	return &view, nil
}

func (s *ForumService) DeletePost(ctx context.Context, userID, role, postID string) error {
	post, err := s.forumRepo.FindByID(ctx, postID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrPostNotFound
	}
	if post.UserID.String() != userID && role != "admin" {
		return utils.ErrNotOwner
	}

	post.IsActive = false
	if err := s.forumRepo.Save(ctx, post); err != nil {
		s.logger.Error("deleting forum post failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if _, err := s.recomputeStats(ctx); err != nil {
		s.logger.Warn("recomputing forum stats failed", zap.Error(err))
	}
	return nil
}

func validForumCategory(category string) bool {
	for _, cat := range db_models.ForumCategories {
		if string(cat) == category {
			return true
		}
	}
	return false
}

func (s *ForumService) activePost(ctx context.Context, postID string) (*db_models.ForumPost, error) {
	post, err := s.forumRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil || !post.IsActive {
		return nil, utils.ErrPostNotFound
	}
	return post, nil
}

// recomputeStats rebuilds the denormalized stats row from the active
// posts and upserts it.
func (s *ForumService) recomputeStats(ctx context.Context) (*db_models.ForumStats, error) {
	posts, err := s.forumRepo.ListAllActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	categoryStats := make(map[string]db_models.CategoryStat, len(db_models.ForumCategories))
	for _, cat := range db_models.ForumCategories {
		categoryStats[string(cat)] = db_models.CategoryStat{}
	}

	var totalComments, totalViews int64
	for i := range posts {
		post := &posts[i]
		totalComments += int64(len(post.Comments))
		totalViews += post.Views

		cat := categoryStats[string(post.Category)]
		cat.Posts++
		cat.Comments += int64(len(post.Comments))
		categoryStats[string(post.Category)] = cat
	}

	stats, err := s.forumRepo.GetStats(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stats == nil {
		stats = &db_models.ForumStats{}
	}

	stats.TotalPosts = int64(len(posts))
	stats.TotalComments = totalComments
	stats.TotalViews = totalViews
	stats.CategoryStats = categoryStats
	stats.LastUpdated = time.Now().Unix()

	if err := s.forumRepo.SaveStats(ctx, stats); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return stats, nil
}

func toPostView(post *db_models.ForumPost) response_models.ForumPostView {
	return response_models.ForumPostView{
		ForumPost: *post,
		Username:  post.User.Username,
	}
}
