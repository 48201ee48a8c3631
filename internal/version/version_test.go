package version

import (
	"testing"
)

// TestVersionNotEmpty tests that version is not empty
// TestVersionNotEmpty 测试版本不为空
func TestVersionNotEmpty(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
}
