package service

import (
	"Circle/dao"
	"Circle/models"
	"Circle/types"
	"context"
	"mime/multipart"
	"path/filepath"
	"time"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	ListUsers(ctx context.Context, lastUserID int, name string) (*types.Scroll[types.UserListItem], error)
	ListWorkshops(ctx context.Context, lastUserID int, name string) (*types.Scroll[types.UserListItem], error)
	GetUserByID(ctx context.Context, userID int) (*types.UserDetail, error)
	CreateUser(ctx context.Context, userID, userType int, form *types.UserForm, picture *multipart.FileHeader) error
	UpdateUser(ctx context.Context, userID int, form *types.UserForm, picture *multipart.FileHeader) error
}

type UserService struct {
	UserDAO *dao.Users
	Storage IStorageService
}

// listScroll 用户/工坊列表共用。
// hasMore 用"整页即有下一页"的近似判断，口径与关注列表的预读方案不同，保持各自原状。
func (s *UserService) listScroll(ctx context.Context, lastUserID int, name string, userType *int) (*types.Scroll[types.UserListItem], error) {
	total, err := s.UserDAO.CountScroll(ctx, lastUserID, name, userType)
	if err != nil {
		return nil, err
	}

	items, err := s.UserDAO.ListScroll(ctx, lastUserID, name, userType, types.DefaultPageSize)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []types.UserListItem{}
	}

	lastID := 0
	if len(items) > 0 {
		lastID = items[len(items)-1].UserId
	}

	return &types.Scroll[types.UserListItem]{
		Data:         items,
		TotalRecords: int(total),
		LastId:       lastID,
		HasMore:      len(items) == types.DefaultPageSize,
	}, nil
}

func (s *UserService) ListUsers(ctx context.Context, lastUserID int, name string) (*types.Scroll[types.UserListItem], error) {
	return s.listScroll(ctx, lastUserID, name, nil)
}

func (s *UserService) ListWorkshops(ctx context.Context, lastUserID int, name string) (*types.Scroll[types.UserListItem], error) {
	workshop := models.UserTypeWorkshop
	return s.listScroll(ctx, lastUserID, name, &workshop)
}

func (s *UserService) GetUserByID(ctx context.Context, userID int) (*types.UserDetail, error) {
	user, err := s.UserDAO.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &types.UserDetail{
		UserId:         user.UserID,
		UserName:       user.UserName,
		Name:           user.Name,
		Description:    user.Description,
		Address:        user.Address,
		ProfilePicture: user.ProfilePicture,
		Type:           user.Type,
		CountFollowers: user.CountFollowers,
		CountFollowing: user.CountFollowing,
	}, nil
}

// validatePicture 头像扩展名与大小校验，创建和更新走同一套规则
func (s *UserService) validatePicture(picture *multipart.FileHeader) error {
	ext := filepath.Ext(picture.Filename)
	if !s.Storage.IsValidExtension(ext) {
		return ErrBadExtension
	}
	if !s.Storage.IsValidSize(picture.Size) {
		return ErrPictureTooLarge
	}
	return nil
}

// CreateUser 档案主键取自令牌里的用户ID，不能替他人建档
func (s *UserService) CreateUser(ctx context.Context, userID, userType int, form *types.UserForm, picture *multipart.FileHeader) error {
	if form.Name == "" || form.UserName == "" {
		return ErrNameRequired
	}

	if s.UserDAO.IsUserNameExist(ctx, form.UserName) {
		return ErrUserNameTaken
	}

	if picture == nil || picture.Size == 0 {
		return ErrPictureRequired
	}
	if err := s.validatePicture(picture); err != nil {
		return err
	}

	picturePath := s.Storage.SaveFile(picture, userID)
	if picturePath == "" {
		return ErrSavePicture
	}

	now := time.Now()
	user := models.Users{
		UserID:         userID,
		UserName:       form.UserName,
		Name:           form.Name,
		Description:    form.Description,
		Address:        form.Address,
		ProfilePicture: picturePath,
		Type:           userType,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return s.UserDAO.Create(ctx, &user)
}

// UpdateUser 全量覆盖档案字段，头像可选换新（旧图先删后存）
func (s *UserService) UpdateUser(ctx context.Context, userID int, form *types.UserForm, picture *multipart.FileHeader) error {
	user, err := s.UserDAO.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	updates := map[string]any{
		"name":        form.Name,
		"user_name":   form.UserName,
		"description": form.Description,
		"address":     form.Address,
		"updated_at":  time.Now(),
	}

	if picture != nil && picture.Size > 0 {
		if err := s.validatePicture(picture); err != nil {
			return err
		}

		if user.ProfilePicture != "" {
			if !s.Storage.DeleteFile(user.ProfilePicture) {
				return ErrDeletePicture
			}
		}

		picturePath := s.Storage.SaveFile(picture, userID)
		if picturePath == "" {
			return ErrSavePicture
		}
		updates["profile_picture"] = picturePath
	}

	return s.UserDAO.UpdateById(ctx, userID, updates)
}
