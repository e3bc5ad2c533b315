package controllers

import (
	"github.com/gin-gonic/gin"
	"verdure/internal/services"
	"verdure/pkg/utils"
)

type CropController struct {
	cropService services.CropServiceInterface
}

func NewCropController(cropService services.CropServiceInterface) *CropController {
	return &CropController{
		cropService: cropService,
	}
}

// GetCrops godoc
// @Summary List crops
// @Description Fetch the full crop catalogue
// @Tags Crops
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /crop [get]
func (cc *CropController) GetCrops(c *gin.Context) {
	crops, err := cc.cropService.GetCrops(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, crops, "Crops fetched successfully")
}
