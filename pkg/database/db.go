package database

import (
	"Circle/config"
	"Circle/models"
	"Circle/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
	}

	// 启动时自动建表，对应注册系统之外自管理的两张表
	if err := db.AutoMigrate(&models.Users{}, &models.Follower{}); err != nil {
		log.L.Error("failed to migrate database", zap.Error(err))
	}

	log.L.Info("connect database success")
	return db
}
