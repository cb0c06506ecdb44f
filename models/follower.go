package models

import (
	"time"
)

// Follower 关注边（follower 关注 following）
type Follower struct {
	ID          uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	FollowerID  int       `gorm:"column:follower_id;not null;index:idx_follower_pair,unique" json:"follower_id"`   // 关注人
	FollowingID int       `gorm:"column:following_id;not null;index:idx_follower_pair,unique" json:"following_id"` // 被关注人
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Follower) TableName() string {
	return "followers"
}
