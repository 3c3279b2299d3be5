package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	initialized = false
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("data/thunder.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Unexpected error: %v", err)
	}
	if Exists("data/thunder.yaml") {
		t.Error("Exists should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/thunder.yaml": {Data: []byte("screen: {}")},
	})
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"正常路径", "data/thunder.yaml", false},
		{"带 ./ 前缀", "./data/thunder.yaml", false},
		{"不存在", "data/missing.yaml", true},
		{"未知前缀", "assets/thunder.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) failed: %v", tt.path, err)
			}
			if string(data) != "screen: {}" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}

	if !Exists("data/thunder.yaml") {
		t.Error("Exists(data/thunder.yaml) should be true")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists(data/missing.yaml) should be false")
	}
}
