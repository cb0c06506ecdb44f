package dao

import (
	"Circle/models"
	"Circle/types"
	"context"
	"time"

	"gorm.io/gorm"
)

type FollowerDAO struct {
	Repo[models.Follower]
}

func NewFollowerDAO(db *gorm.DB) *FollowerDAO {
	return &FollowerDAO{
		Repo: NewRepo[models.Follower](db),
	}
}

// IsFollowing 检查是否存在 follower -> following 的关注边
func (d *FollowerDAO) IsFollowing(ctx context.Context, followerID, followingID int) (bool, error) {
	return d.Repo.IsExist(ctx, "follower_id = ? AND following_id = ?", followerID, followingID)
}

// CreateWithCounters 插入关注边并同步双方计数。
// 边与两条计数更新必须同生共死，整体放进一个事务。
func (d *FollowerDAO) CreateWithCounters(ctx context.Context, followerID, followingID int) error {
	now := time.Now()
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		edge := models.Follower{
			FollowerID:  followerID,
			FollowingID: followingID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.Create(&edge).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Users{}).
			Where("user_id = ?", followerID).
			UpdateColumn("count_following", gorm.Expr("count_following + ?", 1)).Error; err != nil {
			return err
		}
		return tx.Model(&models.Users{}).
			Where("user_id = ?", followingID).
			UpdateColumn("count_followers", gorm.Expr("count_followers + ?", 1)).Error
	})
}

// DeleteWithCounters 删除关注边并回退双方计数，边不存在时返回 ErrRecordNotFound
func (d *FollowerDAO) DeleteWithCounters(ctx context.Context, followerID, followingID int) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&models.Follower{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Model(&models.Users{}).
			Where("user_id = ?", followerID).
			UpdateColumn("count_following", gorm.Expr("count_following - ?", 1)).Error; err != nil {
			return err
		}
		return tx.Model(&models.Users{}).
			Where("user_id = ?", followingID).
			UpdateColumn("count_followers", gorm.Expr("count_followers - ?", 1)).Error
	})
}

// ListFollowers 关注 userID 的用户，按 user_id 升序滚动。
// limit 由上层传 pageSize+1 做精确 hasMore 预读。
func (d *FollowerDAO) ListFollowers(ctx context.Context, userID, lastUserID int, name string, limit int) ([]types.UserListItem, error) {
	var items []types.UserListItem
	q := d.Db.WithContext(ctx).
		Table("followers f").
		Select("u.user_id, u.user_name, u.profile_picture").
		Joins("INNER JOIN users u ON f.follower_id = u.user_id").
		Where("f.following_id = ?", userID)
	if name != "" {
		q = q.Where("u.user_name LIKE ?", "%"+name+"%")
	}
	if lastUserID != 0 {
		q = q.Where("u.user_id > ?", lastUserID)
	}
	err := q.Order("u.user_id ASC").
		Limit(limit).
		Scan(&items).Error
	return items, err
}

// ListFollowing userID 关注的用户，其余同 ListFollowers
func (d *FollowerDAO) ListFollowing(ctx context.Context, userID, lastUserID int, name string, limit int) ([]types.UserListItem, error) {
	var items []types.UserListItem
	q := d.Db.WithContext(ctx).
		Table("followers f").
		Select("u.user_id, u.user_name, u.profile_picture").
		Joins("INNER JOIN users u ON f.following_id = u.user_id").
		Where("f.follower_id = ?", userID)
	if name != "" {
		q = q.Where("u.user_name LIKE ?", "%"+name+"%")
	}
	if lastUserID != 0 {
		q = q.Where("u.user_id > ?", lastUserID)
	}
	err := q.Order("u.user_id ASC").
		Limit(limit).
		Scan(&items).Error
	return items, err
}
