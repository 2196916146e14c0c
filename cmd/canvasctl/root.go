package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yessenovuniversity/canvas-db/config"
	"github.com/yessenovuniversity/canvas-db/internal/api/handler"
	"github.com/yessenovuniversity/canvas-db/internal/dto"
	"github.com/yessenovuniversity/canvas-db/internal/model"
	"github.com/yessenovuniversity/canvas-db/internal/repository"
	"github.com/yessenovuniversity/canvas-db/internal/service"
	"github.com/yessenovuniversity/canvas-db/pkg/database"
	applogger "github.com/yessenovuniversity/canvas-db/pkg/logger"
)

// session 一次命令执行所持有的资源
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	nav    handler.Navigator
}

func (s *session) close() {
	if s.db != nil {
		_ = database.Close(s.db)
	}
	_ = s.logger.Sync()
}

// openSession 建立连接并装配 Repository → Service → Relations；测试中替换
var openSession = func(cfgFile string) (*session, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, err
	}
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	svc := service.NewService(repository.NewRepository(db), logger)
	nav := service.NewRelations(svc, service.NewDefaultRegistry(svc))
	return &session{cfg: cfg, logger: logger, db: db, nav: nav}, nil
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:          "canvasctl",
		Short:        "Canvas LMS 数据库只读访问工具",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径（默认 ./config/config.yaml）")

	rootCmd.AddCommand(
		newEntitiesCmd(&cfgFile),
		newGetCmd(&cfgFile),
		newFollowCmd(&cfgFile),
		newSchemaCmd(&cfgFile),
	)
	return rootCmd
}

// ── entities ──

func newEntitiesCmd(cfgFile *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "entities",
		Short: "列出所有实体及其命名关联",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(*cfgFile)
			if err != nil {
				return err
			}
			defer s.close()

			items := make([]dto.EntityCatalogItem, 0)
			for _, name := range s.nav.Entities() {
				edges, err := s.nav.Edges(name)
				if err != nil {
					return err
				}
				items = append(items, dto.EntityCatalogItem{Entity: name, Relations: edges})
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}
			renderCatalog(cmd.OutOrStdout(), items)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "以 JSON 输出")
	return cmd
}

// ── get ──

func newGetCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:     "get <entity> <id>",
		Short:   "按主键读取一条记录",
		Example: "  canvasctl get courses 10",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			s, err := openSession(*cfgFile)
			if err != nil {
				return err
			}
			defer s.close()

			e, err := s.nav.Get(cmd.Context(), args[0], id)
			if err != nil {
				return err
			}
			return printEntity(cmd.OutOrStdout(), e)
		},
	}
}

// ── follow ──

func newFollowCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:     "follow <entity> <id> <relation>",
		Short:   "沿命名外键读取被引用的记录",
		Example: "  canvasctl follow courses 10 root_account",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			s, err := openSession(*cfgFile)
			if err != nil {
				return err
			}
			defer s.close()

			e, err := s.nav.Follow(cmd.Context(), args[0], id, args[2])
			if err != nil {
				return err
			}
			return printEntity(cmd.OutOrStdout(), e)
		},
	}
}

// ── schema ──

func newSchemaCmd(cfgFile *string) *cobra.Command {
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "数据库结构相关操作",
	}

	schemaCmd.AddCommand(&cobra.Command{
		Use:   "verify",
		Short: "校验数据库结构与实体定义是否一致",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(*cfgFile)
			if err != nil {
				return err
			}
			defer s.close()
			if err := verifySchema(cmd.Context(), s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema ok")
			return nil
		},
	})

	schemaCmd.AddCommand(&cobra.Command{
		Use:   "apply-mirror",
		Short: "在空库上创建镜像表结构（仅用于开发和测试）",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(*cfgFile)
			if err != nil {
				return err
			}
			defer s.close()
			sqlDB, err := s.db.DB()
			if err != nil {
				return err
			}
			if err := database.ApplyMirrorSchema(sqlDB, s.logger); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "mirror schema applied")
			return nil
		},
	})

	return schemaCmd
}

// verifySchema 测试中替换
var verifySchema = func(ctx context.Context, s *session) error {
	return database.VerifySchema(ctx, s.db, model.All(), s.logger)
}

// ── 输出 ──

func renderCatalog(w io.Writer, items []dto.EntityCatalogItem) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Entity", "Relations"})
	for _, it := range items {
		t.AppendRow(table.Row{it.Entity, strings.Join(it.Relations, ", ")})
	}
	t.Render()
}

// printEntity 以 JSON 输出实体；记录不存在时输出 null
func printEntity(w io.Writer, e model.Entity) error {
	var body *dto.EntityResponse
	if e != nil {
		body = dto.NewEntityResponse(e)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(body)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("无效的 id: %q", raw)
	}
	return id, nil
}
