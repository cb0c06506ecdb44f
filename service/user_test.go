package service

import (
	"Circle/dao"
	"Circle/models"
	"Circle/types"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T, db *gorm.DB) *UserService {
	chdirTemp(t)
	return &UserService{
		UserDAO: dao.NewUsers(db),
		Storage: &StorageService{Config: newTestConfig()},
	}
}

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)
	s := newUserService(t, db)

	form := &types.UserForm{Name: "Ana", UserName: "ana", Description: "desc", Address: "addr"}
	picture := newFileHeader(t, "avatar.jpg", 128)

	require.NoError(t, s.CreateUser(context.Background(), 7, models.UserTypeWorkshop, form, picture))

	user := getUser(t, db, 7)
	assert.Equal(t, "ana", user.UserName)
	assert.Equal(t, models.UserTypeWorkshop, user.Type)
	assert.Equal(t, "/profile_images/7_avatar.jpg", user.ProfilePicture)

	// 文件确实写到了 {folder}/{userId}_{原文件名}
	_, err := os.Stat(filepath.Join("profile_images", "7_avatar.jpg"))
	assert.NoError(t, err)
}

func TestCreateUserMissingName(t *testing.T) {
	db := newTestDB(t)
	s := newUserService(t, db)

	err := s.CreateUser(context.Background(), 7, models.UserTypeRegular,
		&types.UserForm{Name: "", UserName: "ana"}, newFileHeader(t, "a.jpg", 8))
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestCreateUserDuplicateUserName(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 1, "ana", models.UserTypeRegular)
	s := newUserService(t, db)

	err := s.CreateUser(context.Background(), 7, models.UserTypeRegular,
		&types.UserForm{Name: "Ana", UserName: "ana"}, newFileHeader(t, "a.jpg", 8))
	assert.ErrorIs(t, err, ErrUserNameTaken)

	// 冲突时不落库
	var cnt int64
	require.NoError(t, db.Model(&models.Users{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestCreateUserMissingPicture(t *testing.T) {
	db := newTestDB(t)
	s := newUserService(t, db)

	err := s.CreateUser(context.Background(), 7, models.UserTypeRegular,
		&types.UserForm{Name: "Ana", UserName: "ana"}, nil)
	assert.ErrorIs(t, err, ErrPictureRequired)
}

func TestCreateUserBadExtension(t *testing.T) {
	db := newTestDB(t)
	s := newUserService(t, db)

	err := s.CreateUser(context.Background(), 7, models.UserTypeRegular,
		&types.UserForm{Name: "Ana", UserName: "ana"}, newFileHeader(t, "a.gif", 8))
	assert.ErrorIs(t, err, ErrBadExtension)

	// 校验失败不写文件、不落库
	_, statErr := os.Stat(filepath.Join("profile_images", "7_a.gif"))
	assert.True(t, os.IsNotExist(statErr))
	var cnt int64
	require.NoError(t, db.Model(&models.Users{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestCreateUserPictureTooLarge(t *testing.T) {
	db := newTestDB(t)
	chdirTemp(t)
	cfg := newTestConfig()
	cfg.Upload.MaxSizeMB = 1
	s := &UserService{
		UserDAO: dao.NewUsers(db),
		Storage: &StorageService{Config: cfg},
	}

	err := s.CreateUser(context.Background(), 7, models.UserTypeRegular,
		&types.UserForm{Name: "Ana", UserName: "ana"}, newFileHeader(t, "a.jpg", (1<<20)+1))
	assert.ErrorIs(t, err, ErrPictureTooLarge)
}

func TestUpdateUserNotFound(t *testing.T) {
	db := newTestDB(t)
	s := newUserService(t, db)

	err := s.UpdateUser(context.Background(), 7, &types.UserForm{Name: "Ana", UserName: "ana"}, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUserFields(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 7, "ana", models.UserTypeRegular)
	s := newUserService(t, db)

	form := &types.UserForm{Name: "Ana B", UserName: "anab", Description: "new", Address: "elsewhere"}
	require.NoError(t, s.UpdateUser(context.Background(), 7, form, nil))

	user := getUser(t, db, 7)
	assert.Equal(t, "anab", user.UserName)
	assert.Equal(t, "Ana B", user.Name)
	assert.Equal(t, "new", user.Description)
}

func TestUpdateUserReplacesPicture(t *testing.T) {
	db := newTestDB(t)
	s := newUserService(t, db)
	ctx := context.Background()

	form := &types.UserForm{Name: "Ana", UserName: "ana"}
	require.NoError(t, s.CreateUser(ctx, 7, models.UserTypeRegular, form, newFileHeader(t, "old.jpg", 16)))

	require.NoError(t, s.UpdateUser(ctx, 7, form, newFileHeader(t, "new.png", 16)))

	// 旧图删除，新图落盘
	_, err := os.Stat(filepath.Join("profile_images", "7_old.jpg"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join("profile_images", "7_new.png"))
	assert.NoError(t, err)
	assert.Equal(t, "/profile_images/7_new.png", getUser(t, db, 7).ProfilePicture)
}

func TestListUsersScroll(t *testing.T) {
	db := newTestDB(t)
	for i := 1; i <= 12; i++ {
		seedUser(t, db, i, fmt.Sprintf("user%02d", i), models.UserTypeRegular)
	}
	s := newUserService(t, db)
	ctx := context.Background()

	page, err := s.ListUsers(ctx, 0, "")
	require.NoError(t, err)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, 12, page.TotalRecords)
	assert.Equal(t, 10, page.LastId)
	assert.True(t, page.HasMore)

	// 游标只返回 user_id > lastId 的行，升序
	page, err = s.ListUsers(ctx, page.LastId, "")
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, 11, page.Data[0].UserId)
	assert.Equal(t, 12, page.Data[1].UserId)
	assert.Equal(t, 2, page.TotalRecords)
	assert.False(t, page.HasMore)
}

// 用户列表的 hasMore 是"整页即认为还有"的近似口径：恰好取满一页时即便
// 后面没有数据也报 true，这是沿用下来的已知特性。
func TestListUsersHasMoreHeuristic(t *testing.T) {
	db := newTestDB(t)
	for i := 1; i <= 10; i++ {
		seedUser(t, db, i, fmt.Sprintf("user%02d", i), models.UserTypeRegular)
	}
	s := newUserService(t, db)

	page, err := s.ListUsers(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Len(t, page.Data, 10)
	assert.True(t, page.HasMore)
}

func TestListWorkshops(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 1, "ana", models.UserTypeRegular)
	seedUser(t, db, 2, "taller", models.UserTypeWorkshop)
	seedUser(t, db, 3, "forge", models.UserTypeWorkshop)
	s := newUserService(t, db)

	page, err := s.ListWorkshops(context.Background(), 0, "")
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, 2, page.Data[0].UserId)
	assert.Equal(t, 3, page.Data[1].UserId)
	assert.Equal(t, 2, page.TotalRecords)
}

func TestGetUserByID(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 7, "ana", models.UserTypeWorkshop)
	s := newUserService(t, db)

	detail, err := s.GetUserByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, detail.UserId)
	assert.Equal(t, "ana", detail.UserName)
	assert.Equal(t, models.UserTypeWorkshop, detail.Type)

	_, err = s.GetUserByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
