package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFillFromBuildInfo(t *testing.T) {
	info := Info{CommitHash: "dev", BuildTime: "unknown", Version: "dev"}
	fillFromBuildInfo(&info, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	if info.CommitHash != "0123456789abcdef" || info.BuildTime != "2026-10-01T12:00:00Z" {
		t.Errorf("vcs stamp not applied: %+v", info)
	}
	if info.Version != "v0.4.1" {
		t.Errorf("Version = %q", info.Version)
	}
	if got := info.String(); got != "argx v0.4.1 (commit 0123456+dirty, built 2026-10-01T12:00:00Z)" {
		t.Errorf("String() = %q", got)
	}
}

func TestLdflagsWin(t *testing.T) {
	info := Info{CommitHash: "feedbeef", BuildTime: "yesterday", Version: "v1.0.0"}
	fillFromBuildInfo(&info, &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0000000"}},
	})
	if info.CommitHash != "feedbeef" || info.Version != "v1.0.0" {
		t.Errorf("ldflags values were overwritten: %+v", info)
	}
}

func TestShort(t *testing.T) {
	if got := (Info{CommitHash: "abc"}).Short(); got != "abc" {
		t.Errorf("Short() = %q", got)
	}
	if !strings.HasPrefix(Get().String(), "argx ") {
		t.Errorf("Get().String() = %q", Get().String())
	}
}
