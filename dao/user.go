package dao

import (
	"Circle/models"
	"Circle/types"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByUserID 主键查询，不存在返回 nil
func (u *Users) FindByUserID(ctx context.Context, userID int) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "user_id = ?", userID)
}

// IsUserNameExist 判断用户名是否被占用
func (u *Users) IsUserNameExist(ctx context.Context, userName string) bool {
	exist, _ := u.Repo.IsExist(ctx, "user_name = ?", userName)
	return exist
}

func (u *Users) UpdateById(
	ctx context.Context,
	id int,
	data map[string]any,
) error {

	if id <= 0 {
		return gorm.ErrRecordNotFound
	}
	return u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("user_id = ?", id).
		Updates(data).Error
}

// scrollQuery 档案滚动列表的公共过滤条件
func (u *Users) scrollQuery(ctx context.Context, lastUserID int, name string, userType *int) *gorm.DB {
	q := u.Db.WithContext(ctx).Model(&models.Users{})
	if lastUserID != 0 {
		q = q.Where("user_id > ?", lastUserID)
	}
	if name != "" {
		q = q.Where("user_name LIKE ?", "%"+name+"%")
	}
	if userType != nil {
		q = q.Where("type = ?", *userType)
	}
	return q
}

// CountScroll 过滤后的总条数（含游标条件，与分页查询同口径）
func (u *Users) CountScroll(ctx context.Context, lastUserID int, name string, userType *int) (int64, error) {
	var total int64
	err := u.scrollQuery(ctx, lastUserID, name, userType).Count(&total).Error
	return total, err
}

// ListScroll 按 user_id 升序取一页
func (u *Users) ListScroll(ctx context.Context, lastUserID int, name string, userType *int, limit int) ([]types.UserListItem, error) {
	var items []types.UserListItem
	err := u.scrollQuery(ctx, lastUserID, name, userType).
		Select("user_id, user_name, profile_picture").
		Order("user_id ASC").
		Limit(limit).
		Scan(&items).Error
	return items, err
}
