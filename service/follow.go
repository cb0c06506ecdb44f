package service

import (
	"Circle/dao"
	"Circle/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	ListFollowers(ctx context.Context, userID, lastUserID int, name string) (*types.Scroll[types.UserListItem], error)
	ListFollowing(ctx context.Context, userID, lastUserID int, name string) (*types.Scroll[types.UserListItem], error)
	IsFollowing(ctx context.Context, userID, otherUserID int) (bool, error)
	StartFollowing(ctx context.Context, userID, profileID int) error
	StopFollowing(ctx context.Context, userID, profileID int) error
	DropFollower(ctx context.Context, userID, profileID int) error
}

type FollowService struct {
	FollowerDAO *dao.FollowerDAO
	UserDAO     *dao.Users
}

// scroll 关注列表分页：多取一条判断 hasMore，比用户列表的整页近似更准，两套口径各自保留
func scroll(items []types.UserListItem, err error) (*types.Scroll[types.UserListItem], error) {
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []types.UserListItem{}
	}

	hasMore := len(items) > types.DefaultPageSize
	if hasMore {
		items = items[:types.DefaultPageSize]
	}

	lastID := 0
	if len(items) > 0 {
		lastID = items[len(items)-1].UserId
	}

	return &types.Scroll[types.UserListItem]{
		Data:         items,
		TotalRecords: len(items),
		LastId:       lastID,
		HasMore:      hasMore,
	}, nil
}

func (s *FollowService) ListFollowers(ctx context.Context, userID, lastUserID int, name string) (*types.Scroll[types.UserListItem], error) {
	items, err := s.FollowerDAO.ListFollowers(ctx, userID, lastUserID, name, types.DefaultPageSize+1)
	return scroll(items, err)
}

func (s *FollowService) ListFollowing(ctx context.Context, userID, lastUserID int, name string) (*types.Scroll[types.UserListItem], error) {
	items, err := s.FollowerDAO.ListFollowing(ctx, userID, lastUserID, name, types.DefaultPageSize+1)
	return scroll(items, err)
}

func (s *FollowService) IsFollowing(ctx context.Context, userID, otherUserID int) (bool, error) {
	return s.FollowerDAO.IsFollowing(ctx, userID, otherUserID)
}

// StartFollowing 关注：插入关注边并给双方计数各 +1
func (s *FollowService) StartFollowing(ctx context.Context, userID, profileID int) error {
	// 不能关注自己
	if userID == profileID {
		return ErrSelfFollow
	}

	// 校验被关注用户是否存在
	target, err := s.UserDAO.FindByUserID(ctx, profileID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	isFollowing, err := s.FollowerDAO.IsFollowing(ctx, userID, profileID)
	if err != nil {
		return err
	}
	if isFollowing {
		return ErrAlreadyFollowing
	}

	return s.FollowerDAO.CreateWithCounters(ctx, userID, profileID)
}

// StopFollowing 取消关注：删除 userID -> profileID 的边并回退计数
func (s *FollowService) StopFollowing(ctx context.Context, userID, profileID int) error {
	target, err := s.UserDAO.FindByUserID(ctx, profileID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	err = s.FollowerDAO.DeleteWithCounters(ctx, userID, profileID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFollowing
	}
	return err
}

// DropFollower 移除粉丝：删除反向的 profileID -> userID 边
func (s *FollowService) DropFollower(ctx context.Context, userID, profileID int) error {
	target, err := s.UserDAO.FindByUserID(ctx, profileID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	err = s.FollowerDAO.DeleteWithCounters(ctx, profileID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFollowedBy
	}
	return err
}
