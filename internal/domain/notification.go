package domain

import "time"

type NotificationType string

const (
	NotifFollower NotificationType = "SEGUIDOR"
	NotifComment  NotificationType = "COMENTARIO"
	NotifRating   NotificationType = "AVALIACAO"
	NotifFavorite NotificationType = "FAVORITO"
)

type Notification struct {
	ID        int64            `json:"id" gorm:"primaryKey"`
	UserID    int64            `json:"user_id" gorm:"not null;index"`
	Type      NotificationType `json:"type" gorm:"size:10;not null"`
	Read      bool             `json:"read" gorm:"default:false"`
	Data      map[string]any   `json:"data,omitempty" gorm:"serializer:json"`
	CreatedAt time.Time        `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
