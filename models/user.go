package models

import (
	"time"
)

// 档案类型
const (
	UserTypeRegular  = 0 // 普通用户
	UserTypeWorkshop = 1 // 工坊
)

// Users 档案主表。主键来自注册系统签发的 JWT，不自增。
// 粉丝数与关注数为冗余计数，随关注边一并在事务内更新。
type Users struct {
	UserID         int       `gorm:"column:user_id;primary_key" json:"user_id"`
	UserName       string    `gorm:"column:user_name;type:varchar(64);uniqueIndex;not null" json:"user_name"`
	Name           string    `gorm:"column:name;type:varchar(64);not null" json:"name"`
	Description    string    `gorm:"column:description;type:varchar(255)" json:"description"`
	Address        string    `gorm:"column:address;type:varchar(255)" json:"address"`
	ProfilePicture string    `gorm:"column:profile_picture;type:varchar(255)" json:"profile_picture"`
	Type           int       `gorm:"column:type;not null;default:0" json:"type"`
	CountFollowers int       `gorm:"column:count_followers;not null;default:0" json:"count_followers"`
	CountFollowing int       `gorm:"column:count_following;not null;default:0" json:"count_following"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
