package database

import (
	"Shelf/config"
	"Shelf/models"
	"Shelf/pkg/log"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	gormConf := &gorm.Config{TranslateError: true}
	if !conf.Debug() {
		gormConf.Logger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(mysql.Open(conf.MySQL.Dsn()), gormConf)
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.L.Fatal("failed to get sql.DB", zap.Error(err))
	}
	if conf.MySQL.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MySQL.MaxOpenConns)
	}
	if conf.MySQL.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MySQL.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := SetupJoinTables(db); err != nil {
		log.L.Fatal("failed to setup join tables", zap.Error(err))
	}

	log.L.Info("connect database success")
	return db
}

// SetupJoinTables registers product_tag as the Product.Tags join model so
// preloads and migrations see its timestamp columns.
func SetupJoinTables(db *gorm.DB) error {
	return db.SetupJoinTable(&models.Product{}, "Tags", &models.ProductTag{})
}

// Migrate creates or alters every table the catalog needs.
func Migrate(db *gorm.DB) error {
	if err := SetupJoinTables(db); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.Tag{},
		&models.Product{},
		&models.ProductTag{},
		&models.SiteSetting{},
	)
}
