package embedded

import (
	"testing"
	"testing/fstest"
)

// resetEmbedded 恢复未初始化状态，避免测试之间互相影响
func resetEmbedded() {
	dataFS = nil
	initialized = false
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetEmbedded()
	defer resetEmbedded()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	resetEmbedded()

	_, err := ReadFile("data/score.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestReadFile 测试正常读取以及路径标准化
func TestReadFile(t *testing.T) {
	resetEmbedded()
	defer resetEmbedded()

	Init(fstest.MapFS{
		"data/score.yaml": &fstest.MapFile{Data: []byte("pointsPerSecond: 15\n")},
	})

	tests := []struct {
		name string
		path string
	}{
		{"plain", "data/score.yaml"},
		{"dot prefix", "./data/score.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != "pointsPerSecond: 15\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, string(data))
			}
		})
	}
}

// TestReadFileUnknownPrefix 测试非 data/ 前缀的路径被拒绝
func TestReadFileUnknownPrefix(t *testing.T) {
	resetEmbedded()
	defer resetEmbedded()

	Init(fstest.MapFS{})

	if _, err := ReadFile("assets/score.yaml"); err == nil {
		t.Error("Expected error for path without data/ prefix")
	}
}

// TestExists 测试文件存在性检查
func TestExists(t *testing.T) {
	resetEmbedded()
	defer resetEmbedded()

	Init(fstest.MapFS{
		"data/score.yaml": &fstest.MapFile{Data: []byte("{}")},
	})

	if !Exists("data/score.yaml") {
		t.Error("Expected data/score.yaml to exist")
	}
	if Exists("data/missing.yaml") {
		t.Error("Expected data/missing.yaml to not exist")
	}
}
