package database

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/yessenovuniversity/canvas-db/internal/model"
	pkgerrors "github.com/yessenovuniversity/canvas-db/pkg/errors"
)

// typeFamily 数据库列类型归类
type typeFamily int

const (
	familyUnknown typeFamily = iota
	familyInt
	familyBool
	familyString
	familyFloat
	familyNumeric
	familyTime
)

// familyOf 归一化列类型名（去掉长度与精度）后归类
func familyOf(dbType string) typeFamily {
	name := strings.ToLower(strings.TrimSpace(dbType))
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}

	switch name {
	case "int", "int2", "int4", "int8", "integer", "smallint", "bigint", "tinyint",
		"serial", "serial4", "serial8", "bigserial":
		return familyInt
	case "bool", "boolean":
		return familyBool
	case "varchar", "character varying", "char", "character", "bpchar", "text", "citext", "uuid":
		return familyString
	case "real", "float", "float4", "float8", "double", "double precision":
		return familyFloat
	case "numeric", "decimal":
		return familyNumeric
	case "timestamp", "timestamptz", "timestamp without time zone", "timestamp with time zone",
		"date", "datetime", "time", "timetz":
		return familyTime
	default:
		return familyUnknown
	}
}

// compatible 判断模型字段类型能否从该列扫描
// 无法识别的列类型不做判断。
func compatible(field schema.DataType, fam typeFamily) bool {
	if fam == familyUnknown {
		return true
	}
	switch field {
	case schema.Int, schema.Uint:
		return fam == familyInt || fam == familyNumeric
	case schema.Float:
		return fam == familyFloat || fam == familyNumeric || fam == familyInt
	case schema.Bool:
		return fam == familyBool || fam == familyNumeric || fam == familyInt
	case schema.String:
		return fam == familyString
	case schema.Time:
		return fam == familyTime
	default:
		return true
	}
}

// VerifySchema 校验每个实体的表、映射列存在且类型族兼容
// 连接不可用返回 ErrStorageUnavailable；任何结构问题汇总后以 ErrSchemaMismatch 返回。
func VerifySchema(ctx context.Context, db *gorm.DB, entities []model.Entity, logger *zap.Logger) error {
	if err := Ping(ctx, db); err != nil {
		return err
	}

	tx := db.WithContext(ctx)
	migrator := tx.Migrator()
	var problems []string

	for _, ent := range entities {
		stmt := &gorm.Statement{DB: tx}
		if err := stmt.Parse(ent); err != nil {
			return fmt.Errorf("解析模型 %s 失败: %w", ent.TableName(), err)
		}
		table := stmt.Schema.Table

		if !migrator.HasTable(ent) {
			problems = append(problems, fmt.Sprintf("缺少表 %s", table))
			continue
		}

		columns, err := migrator.ColumnTypes(ent)
		if err != nil {
			return fmt.Errorf("读取 %s 列信息失败: %w", table, pkgerrors.Classify(err))
		}
		byName := make(map[string]gorm.ColumnType, len(columns))
		for _, c := range columns {
			byName[c.Name()] = c
		}

		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" {
				continue
			}
			col, ok := byName[field.DBName]
			if !ok {
				problems = append(problems, fmt.Sprintf("缺少列 %s.%s", table, field.DBName))
				continue
			}
			if !compatible(field.GORMDataType, familyOf(col.DatabaseTypeName())) {
				problems = append(problems, fmt.Sprintf("列 %s.%s 类型 %s 与字段 %s 不兼容",
					table, field.DBName, col.DatabaseTypeName(), field.Name))
			}
		}
	}

	if len(problems) > 0 {
		logger.Error("数据库结构校验失败", zap.Strings("problems", problems))
		return fmt.Errorf("%w: %s", pkgerrors.ErrSchemaMismatch, strings.Join(problems, "; "))
	}

	logger.Info("数据库结构校验通过", zap.Int("tables", len(entities)))
	return nil
}
