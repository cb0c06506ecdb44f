package service

import (
	"Circle/config"
	"Circle/models"
	"bytes"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Users{}, &models.Follower{}))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Upload: &config.Upload{
			Folder:     "profile_images",
			MaxSizeMB:  5,
			Extensions: []string{".jpg", ".jpeg", ".png"},
		},
	}
}

func seedUser(t *testing.T, db *gorm.DB, id int, userName string, userType int) {
	t.Helper()
	now := time.Now()
	u := models.Users{
		UserID:    id,
		UserName:  userName,
		Name:      userName,
		Type:      userType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(&u).Error)
}

func getUser(t *testing.T, db *gorm.DB, id int) *models.Users {
	t.Helper()
	var u models.Users
	require.NoError(t, db.Where("user_id = ?", id).First(&u).Error)
	return &u
}

// newFileHeader 通过真实的 multipart 编解码构造文件头，Open 可用
func newFileHeader(t *testing.T, filename string, size int) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("profilePicture", filename)
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["profilePicture"][0]
}
