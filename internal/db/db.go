package db

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenMemory 打开一个仅存在于当前进程内的 SQLite 数据库并执行自动迁移。
// name 为空时生成随机名称，保证不同实例互不共享数据；进程退出后数据即消失。
func OpenMemory(name string) (*gorm.DB, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "habitgrid-" + uuid.NewString()
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// 共享缓存的内存库在最后一个连接关闭时被销毁，保持至少一个连接常驻
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := gdb.AutoMigrate(&Habit{}, &HabitCompletion{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return gdb, nil
}

// Close releases the underlying connection pool, which drops the in-memory database.
func Close(gdb *gorm.DB) error {
	if gdb == nil {
		return nil
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
