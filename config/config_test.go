package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: 8080, Mode: "release"},
		Database: DatabaseConfig{Host: "localhost", Port: 5432, Name: "canvas"},
		Log:      LogConfig{Level: "info", Format: "json"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "合法配置", mutate: func(*Config) {}},
		{name: "端口越界", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "server.port"},
		{name: "数据库主机为空", mutate: func(c *Config) { c.Database.Host = "" }, wantErr: "db.host"},
		{name: "数据库端口为 0", mutate: func(c *Config) { c.Database.Port = 0 }, wantErr: "db.port"},
		{name: "数据库名为空", mutate: func(c *Config) { c.Database.Name = "" }, wantErr: "db.name"},
		{name: "未知日志格式", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("期望通过，实际 %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("期望包含 %q 的错误，实际 %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CANVASDB_DB_HOST", "canvas-db.internal")
	t.Setenv("CANVASDB_DB_VERIFY_SCHEMA", "false")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if cfg.Database.Host != "canvas-db.internal" {
		t.Errorf("环境变量应覆盖默认值，实际 %q", cfg.Database.Host)
	}
	if cfg.Database.VerifySchema {
		t.Error("CANVASDB_DB_VERIFY_SCHEMA=false 应关闭结构校验")
	}
	if cfg.Server.Port != 8080 || cfg.Database.MaxOpenConns != 25 || cfg.Log.Format != "json" {
		t.Errorf("默认值未生效: %+v", cfg)
	}
	if cfg.Database.ApplyMirrorSchema {
		t.Error("镜像表结构默认应关闭")
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	content := "server:\n  port: 9090\ndb:\n  name: canvas_test\n  max_open_conns: 5\nlog:\n  format: console\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Database.Name != "canvas_test" || cfg.Database.MaxOpenConns != 5 {
		t.Errorf("配置文件未生效: %+v", cfg)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("期望 console，实际 %q", cfg.Log.Format)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("CANVASDB_DB_NAME=from_dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("CANVASDB_DB_NAME") })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if cfg.Database.Name != "from_dotenv" {
		t.Errorf("期望 .env 注入 from_dotenv，实际 %q", cfg.Database.Name)
	}
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable", Timezone: "UTC"}
	want := "host=h port=5432 user=u password=p dbname=n sslmode=disable TimeZone=UTC"
	if got := c.DSN(); got != want {
		t.Errorf("期望 %q，实际 %q", want, got)
	}
}
