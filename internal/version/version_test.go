package version

import (
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		info     BuildInfo
		expected string
	}{
		{BuildInfo{Version: "dev", BuildTime: "unknown"}, "dev (development build)"},
		{BuildInfo{Version: "v1.2.0", BuildTime: "yesterday"}, "v1.2.0 (built yesterday)"},
		{BuildInfo{Version: "v1.2.0", BuildTime: "2026-10-14T08:00:00Z", GitCommit: "0123456789abcdef"}, "v1.2.0 (built 2026-10-14 08:00:00 UTC, commit 01234567)"},
		{BuildInfo{Version: "v1.2.0", BuildTime: "2026-10-14T08:00:00Z", GitCommit: "abc"}, "v1.2.0 (built 2026-10-14 08:00:00 UTC, commit abc)"},
	}

	for _, tt := range tests {
		result := format(tt.info)
		if result != tt.expected {
			t.Errorf("format(%+v) = %q; want %q", tt.info, result, tt.expected)
		}
	}
}

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()
	if info.Version != Version {
		t.Errorf("Version = %s; want %s", info.Version, Version)
	}
	if info.GoVersion == "" || info.Platform == "" {
		t.Errorf("runtime fields not populated: %+v", info)
	}
}
