package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/yessenovuniversity/canvas-db/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		level   zapcore.Level
		wantErr bool
	}{
		{name: "json info", cfg: config.LogConfig{Level: "info", Format: "json"}, level: zapcore.InfoLevel},
		{name: "console debug", cfg: config.LogConfig{Level: "debug", Format: "console"}, level: zapcore.DebugLevel},
		{name: "无效级别", cfg: config.LogConfig{Level: "verbose", Format: "json"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLogger(&tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("期望返回错误")
				}
				return
			}
			if err != nil {
				t.Fatalf("初始化失败: %v", err)
			}
			if !l.Core().Enabled(tt.level) {
				t.Errorf("级别 %s 应启用", tt.level)
			}
			if tt.level > zapcore.DebugLevel && l.Core().Enabled(zapcore.DebugLevel) {
				t.Error("debug 级别不应启用")
			}
		})
	}
}
