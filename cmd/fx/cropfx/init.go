package cropfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"verdure/internal/repositories"
	"verdure/internal/services"
)

var Module = fx.Provide(
	provideCropRepo, provideCropService)

func provideCropRepo(db *gorm.DB) repositories.CropRepository {
	return repositories.NewCropRepository(db)
}

func provideCropService(cropRepo repositories.CropRepository) services.CropServiceInterface {
	return services.NewCropService(cropRepo)
}
