package services

import (
	"context"

	"verdure/internal/models/db_models"
	"verdure/internal/repositories"
	"verdure/pkg/utils"
)

type CropServiceInterface interface {
	GetCrops(ctx context.Context) ([]db_models.Crop, error)
}

type CropService struct {
	cropRepo repositories.CropRepository
}

func NewCropService(cropRepo repositories.CropRepository) CropServiceInterface {
	return &CropService{cropRepo: cropRepo}
}

func (s *CropService) GetCrops(ctx context.Context) ([]db_models.Crop, error) {
	crops, err := s.cropRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return crops, nil
}
