package response_models

import "verdure/internal/models/db_models"

type ScheduleListResponse struct {
	Items       []db_models.Schedule `json:"items"`
	TotalPages  int64                `json:"totalPages"`
	CurrentPage int                  `json:"currentPage"`
	TotalCount  int64                `json:"totalCount"`
}

type NotificationListResponse struct {
	Items       []db_models.Notification `json:"items"`
	TotalPages  int64                    `json:"totalPages"`
	CurrentPage int                      `json:"currentPage"`
	TotalCount  int64                    `json:"totalCount"`
	UnreadCount int64                    `json:"unreadCount"`
}

type ForumPostView struct {
	db_models.ForumPost
	Username string `json:"username"`
}

type ForumListResponse struct {
	Items       []ForumPostView `json:"items"`
	TotalPages  int64           `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	TotalCount  int64           `json:"totalCount"`
}

func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return pages
}
