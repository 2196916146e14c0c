package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// mirrorMigrationsTable 迁移版本表，与外部系统自身的 schema_migrations 区分
const mirrorMigrationsTable = "canvasdb_mirror_migrations"

// ApplyMirrorSchema 在空库上创建 Canvas 镜像表结构
// 仅用于开发与集成测试；生产库结构由外部系统维护，本层不做任何写入。
func ApplyMirrorSchema(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("加载迁移文件失败: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: mirrorMigrationsTable})
	if err != nil {
		return fmt.Errorf("创建迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("初始化迁移实例失败: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("执行迁移失败: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("镜像表结构处于 dirty 状态", zap.Uint("version", version))
	} else {
		logger.Info("镜像表结构就绪", zap.Uint("version", version))
	}

	return nil
}
