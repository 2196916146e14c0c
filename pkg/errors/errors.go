package errors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ── 错误类别 ──

var (
	// ErrNotFound 主键或外键无法解析到行；加载器以 nil 表示，不作为错误抛出
	ErrNotFound = errors.New("记录不存在")

	// ErrStorageUnavailable 连接或传输失败，必须向调用方传播
	ErrStorageUnavailable = errors.New("存储不可用")

	// ErrSchemaMismatch 表或列缺失、类型不匹配；启动阶段即致命
	ErrSchemaMismatch = errors.New("数据库结构不匹配")
)

// PostgreSQL SQLSTATE
const (
	sqlStateUndefinedTable   = "42P01"
	sqlStateUndefinedColumn  = "42703"
	sqlStateDatatypeMismatch = "42804"
)

// IsNotFound 判断是否为“记录不存在”
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) || errors.Is(err, ErrNotFound)
}

// Classify 将底层驱动错误归类为 ErrNotFound / ErrSchemaMismatch / ErrStorageUnavailable，
// 原始错误保留在错误链中。
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrStorageUnavailable) || errors.Is(err, ErrSchemaMismatch) {
		return err
	}
	if IsNotFound(err) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateUndefinedTable, sqlStateUndefinedColumn, sqlStateDatatypeMismatch:
			return fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
		}
	}

	// 调用方主动取消不属于存储故障，原样返回
	if errors.Is(err, context.Canceled) {
		return err
	}

	// 只读点查询不存在业务层失败，其余驱动错误（断连、超时、连接池关闭等）一律视为存储不可用
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}
