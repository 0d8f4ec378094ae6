package config

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var SessionGorm *gorm.DB

// InitSessionDB opens the embedded SQLite database used for durable
// session persistence. The gateway holds no catalog data of its own; this
// store carries only per-session shopper state.
func InitSessionDB() {
	path := os.Getenv("SESSION_DB_PATH")
	if path == "" {
		path = "velora_sessions.db"
		log.Println("⚠️ SESSION_DB_PATH not set, using local default:", path)
	}

	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	SessionGorm, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to open session database: %v", err)
	}
	if sqlDB, err := SessionGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}
	log.Println("✅ Session database connected (GORM, sqlite)")
}

func CloseSessionDB() {
	if SessionGorm != nil {
		sqlDB, _ := SessionGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Session database connection closed")
		}
	}
}
