package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-09-04")

	if info.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", info.Version, "1.0.0")
	}
	if info.Commit != "abc123" {
		t.Errorf("Commit = %q, want %q", info.Commit, "abc123")
	}
	if info.Date != "2024-09-04" {
		t.Errorf("Date = %q, want %q", info.Date, "2024-09-04")
	}
	if info.GoVer != runtime.Version() {
		t.Errorf("GoVer = %q, want %q", info.GoVer, runtime.Version())
	}
	if info.OS == "" || info.Arch == "" {
		t.Error("OS and Arch should not be empty")
	}
}

func TestInfoString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-09-04")

	if s := info.String(); s != "pocket 1.0.0 (commit: abc123, built: 2024-09-04)" {
		t.Errorf("String() = %q, unexpected format", s)
	}
}

func TestInfoFullString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-09-04")
	s := info.FullString()

	for _, want := range []string{"pocket 1.0.0", "Commit:   abc123", "Built:    2024-09-04", "OS/Arch:  " + runtime.GOOS + "/" + runtime.GOARCH} {
		if !strings.Contains(s, want) {
			t.Errorf("FullString() should contain %q, got:\n%s", want, s)
		}
	}
}
