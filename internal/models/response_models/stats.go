package response_models

type ScheduleStatsResponse struct {
	TotalSchedules     int64            `json:"totalSchedules"`
	CompletedSchedules int64            `json:"completedSchedules"`
	PendingSchedules   int64            `json:"pendingSchedules"`
	OverdueSchedules   int64            `json:"overdueSchedules"`
	ThisWeekSchedules  int64            `json:"thisWeekSchedules"`
	CompletionRate     int              `json:"completionRate"`
	CategoryStats      map[string]int64 `json:"categoryStats"`
}

type NotificationStatsResponse struct {
	TotalNotifications  int64            `json:"totalNotifications"`
	ReadNotifications   int64            `json:"readNotifications"`
	UnreadNotifications int64            `json:"unreadNotifications"`
	ReadRate            int              `json:"readRate"`
	NotificationsByType map[string]int64 `json:"notificationsByType"`
}
