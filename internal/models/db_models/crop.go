package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CropStatus string

const (
	CropStatusPlanted   CropStatus = "planted"
	CropStatusGrowing   CropStatus = "growing"
	CropStatusReady     CropStatus = "ready"
	CropStatusHarvested CropStatus = "harvested"
)

type Crop struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	Name   string    `gorm:"not null" json:"name"`

	ExportPrice  float64 `json:"exportPrice"`
	Expenses     float64 `json:"expenses"`
	TotalIncome  float64 `json:"totalIncome"`
	ProfitMargin float64 `json:"profitMargin"`
	ProfitIncome float64 `json:"profitIncome"`
	Link         string  `json:"link,omitempty"`

	Status              CropStatus `gorm:"default:planted" json:"status"`
	PlantedDate         int64      `json:"plantedDate"`
	ExpectedHarvestDate *int64     `json:"expectedHarvestDate,omitempty"`
	Area                float64    `json:"area"` // in acres
	Location            string     `json:"location,omitempty"`
	SoilHealth          *float64   `json:"soilHealth,omitempty"` // percentage

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (c *Crop) BeforeCreate(tx *gorm.DB) error {
	if err := c.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if c.PlantedDate == 0 {
		c.PlantedDate = time.Now().Unix()
	}
	return nil
}
