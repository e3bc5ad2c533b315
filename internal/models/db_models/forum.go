package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ForumCategory string

const (
	ForumCommunity   ForumCategory = "community"
	ForumExpert      ForumCategory = "expert"
	ForumCropCare    ForumCategory = "cropcare"
	ForumHarvest     ForumCategory = "harvest"
	ForumWeather     ForumCategory = "weather"
	ForumMarketplace ForumCategory = "marketplace"
	ForumSuccess     ForumCategory = "success"
)

var ForumCategories = []ForumCategory{
	ForumCommunity, ForumExpert, ForumCropCare, ForumHarvest,
	ForumWeather, ForumMarketplace, ForumSuccess,
}

type Comment struct {
	AuthorID   uuid.UUID `json:"userId"`
	AuthorName string    `json:"username"`
	Content    string    `json:"content"`
	CreatedAt  int64     `json:"createdAt"`
}

type ForumPost struct {
	BaseModel
	UserID   uuid.UUID      `gorm:"type:uuid;index;not null" json:"userId"`
	Title    string         `gorm:"not null" json:"title"`
	Content  string         `gorm:"not null" json:"content"`
	Category ForumCategory  `gorm:"default:community;index" json:"category"`
	Tags     pq.StringArray `gorm:"type:text[]" json:"tags"`

	Likes   int64          `gorm:"default:0" json:"likes"`
	LikedBy pq.StringArray `gorm:"type:text[]" json:"likedBy"`
	Views   int64          `gorm:"default:0" json:"views"`

	Comments []Comment `gorm:"serializer:json" json:"comments"`

	// Deletes are soft; inactive posts are invisible everywhere.
	IsActive bool `gorm:"default:true;index" json:"isActive"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

type CategoryStat struct {
	Posts    int64 `json:"posts"`
	Comments int64 `json:"comments"`
}

// ForumStats is a single denormalized row recomputed whenever posts or
// comments change.
type ForumStats struct {
	BaseModel
	TotalPosts    int64                   `json:"totalPosts"`
	TotalComments int64                   `json:"totalComments"`
	TotalViews    int64                   `json:"totalViews"`
	CategoryStats map[string]CategoryStat `gorm:"serializer:json" json:"categoryStats"`
	LastUpdated   int64                   `json:"lastUpdated"`
}
