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

type ScheduleServiceInterface interface {
	GetSchedules(ctx context.Context, userID string, filter repositories.ScheduleFilter) (*response_models.ScheduleListResponse, error)
	GetUpcoming(ctx context.Context, userID string) ([]db_models.Schedule, error)
	GetStats(ctx context.Context, userID string) (*response_models.ScheduleStatsResponse, error)
	Create(ctx context.Context, userID string, req request_models.CreateScheduleRequest) (*db_models.Schedule, error)
	Update(ctx context.Context, userID, scheduleID string, req request_models.UpdateScheduleRequest) (*db_models.Schedule, error)
	Complete(ctx context.Context, userID, scheduleID string, actualDuration *int) (*db_models.Schedule, error)
	Delete(ctx context.Context, userID, scheduleID string) error
}

type ScheduleService struct {
	scheduleRepo repositories.ScheduleRepository
	cropRepo     repositories.CropRepository
	logger       *zap.Logger
}

func NewScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	cropRepo repositories.CropRepository,
	logger *zap.Logger,
) ScheduleServiceInterface {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		cropRepo:     cropRepo,
		logger:       logger,
	}
}

func (s *ScheduleService) GetSchedules(ctx context.Context, userID string, filter repositories.ScheduleFilter) (*response_models.ScheduleListResponse, error) {
	schedules, total, err := s.scheduleRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		s.logger.Error("listing schedules failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return &response_models.ScheduleListResponse{
		Items:       schedules,
		TotalPages:  response_models.TotalPages(total, filter.Limit),
		CurrentPage: filter.Page,
		TotalCount:  total,
	}, nil
}

func (s *ScheduleService) GetUpcoming(ctx context.Context, userID string) ([]db_models.Schedule, error) {
	now := time.Now()
	schedules, err := s.scheduleRepo.Upcoming(ctx, userID, now.Unix(), now.AddDate(0, 0, 7).Unix(), 10)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return schedules, nil
}

func (s *ScheduleService) GetStats(ctx context.Context, userID string) (*response_models.ScheduleStatsResponse, error) {
	now := time.Now()

	total, err := s.scheduleRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	completed, err := s.scheduleRepo.CountByUserAndStatus(ctx, userID, db_models.ScheduleStatusCompleted)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	pending, err := s.scheduleRepo.CountByUserAndStatus(ctx, userID, db_models.ScheduleStatusPending)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	overdue, err := s.scheduleRepo.CountOverdue(ctx, userID, now.Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	thisWeek, err := s.scheduleRepo.CountDueBetween(ctx, userID, now.AddDate(0, 0, -7).Unix(), now.AddDate(0, 0, 7).Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	categories, err := s.scheduleRepo.CategoryCounts(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	completionRate := 0
	if total > 0 {
		completionRate = int(float64(completed)/float64(total)*100 + 0.5)
	}

	return &response_models.ScheduleStatsResponse{
		TotalSchedules:     total,
		CompletedSchedules: completed,
		PendingSchedules:   pending,
		OverdueSchedules:   overdue,
		ThisWeekSchedules:  thisWeek,
		CompletionRate:     completionRate,
		CategoryStats:      categories,
	}, nil
}

func (s *ScheduleService) Create(ctx context.Context, userID string, req request_models.CreateScheduleRequest) (*db_models.Schedule, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrMissingFields
	}

	schedule := &db_models.Schedule{
		UserID:            uid,
		Title:             req.Title,
		Description:       req.Description,
		DueDate:           req.DueDate,
		Priority:          db_models.PriorityMedium,
		Category:          db_models.CategoryOther,
		EstimatedDuration: req.EstimatedDuration,
		Notes:             req.Notes,
		Reminders:         req.Reminders,
	}
	if req.Priority != "" {
		schedule.Priority = db_models.SchedulePriority(req.Priority)
	}
	if req.Category != "" {
		schedule.Category = db_models.ScheduleCategory(req.Category)
	}

	if req.CropID != "" {
		crop, err := s.cropRepo.FindByID(ctx, req.CropID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if crop == nil {
			return nil, utils.ErrCropNotFound
		}
		schedule.CropID = &crop.ID
	}

	if err := s.scheduleRepo.Insert(ctx, schedule); err != nil {
		s.logger.Error("creating schedule failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return s.reloadWithCrop(ctx, schedule)
}

func (s *ScheduleService) Update(ctx context.Context, userID, scheduleID string, req request_models.UpdateScheduleRequest) (*db_models.Schedule, error) {
	schedule, err := s.ownedSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}

	previousStatus := schedule.Status

	if req.Title != "" {
		schedule.Title = req.Title
	}
	if req.Description != "" {
		schedule.Description = req.Description
	}
	if req.DueDate != 0 {
		schedule.DueDate = req.DueDate
	}
	if req.Priority != "" {
		schedule.Priority = db_models.SchedulePriority(req.Priority)
	}
	if req.Category != "" {
		schedule.Category = db_models.ScheduleCategory(req.Category)
	}
	if req.Status != "" {
		schedule.Status = db_models.ScheduleStatus(req.Status)
	}
	if req.EstimatedDuration != nil {
		schedule.EstimatedDuration = req.EstimatedDuration
	}
	if req.Notes != "" {
		schedule.Notes = req.Notes
	}
	if req.Reminders != nil {
		schedule.Reminders = req.Reminders
	}

	// completedAt marks the transition into completed, never a re-save of an
	// already completed schedule.
	if schedule.Status == db_models.ScheduleStatusCompleted && previousStatus != db_models.ScheduleStatusCompleted {
		now := time.Now().Unix()
		schedule.CompletedAt = &now
		if schedule.ActualDuration == nil {
			schedule.ActualDuration = schedule.EstimatedDuration
		}
	}

	if err := s.scheduleRepo.Save(ctx, schedule); err != nil {
		s.logger.Error("updating schedule failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return s.reloadWithCrop(ctx, schedule)
}

func (s *ScheduleService) Complete(ctx context.Context, userID, scheduleID string, actualDuration *int) (*db_models.Schedule, error) {
	schedule, err := s.ownedSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	schedule.Status = db_models.ScheduleStatusCompleted
	schedule.CompletedAt = &now
	if actualDuration != nil {
		schedule.ActualDuration = actualDuration
	} else {
		schedule.ActualDuration = schedule.EstimatedDuration
	}

	if err := s.scheduleRepo.Save(ctx, schedule); err != nil {
		s.logger.Error("completing schedule failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return s.reloadWithCrop(ctx, schedule)
}

func (s *ScheduleService) Delete(ctx context.Context, userID, scheduleID string) error {
	if _, err := s.ownedSchedule(ctx, userID, scheduleID); err != nil {
		return err
	}
	if err := s.scheduleRepo.Delete(ctx, scheduleID); err != nil {
		s.logger.Error("deleting schedule failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

// ownedSchedule loads a schedule and enforces that the caller owns it.
// A foreign schedule answers Forbidden, not NotFound.
func (s *ScheduleService) ownedSchedule(ctx context.Context, userID, scheduleID string) (*db_models.Schedule, error) {
	schedule, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if schedule == nil {
		return nil, utils.ErrScheduleNotFound
	}
	if schedule.UserID.String() != userID {
		return nil, utils.ErrNotOwner
	}
	return schedule, nil
}

func (s *ScheduleService) reloadWithCrop(ctx context.Context, schedule *db_models.Schedule) (*db_models.Schedule, error) {
	if schedule.CropID == nil {
		return schedule, nil
	}
	reloaded, err := s.scheduleRepo.FindByID(ctx, schedule.ID.String())
	if err != nil || reloaded == nil {
		return schedule, nil
	}
	return reloaded, nil
}
