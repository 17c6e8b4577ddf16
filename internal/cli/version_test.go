package cli

import "testing"

func TestCurrentVersionInfo(t *testing.T) {
	info := currentVersionInfo()
	if info.Version == "" {
		t.Error("version is empty")
	}
	if info.GoVersion == "" {
		t.Error("go version is empty")
	}
	if info.GOOS == "" || info.GOARCH == "" {
		t.Error("platform is empty")
	}
}

func TestNormalizeVersion(t *testing.T) {
	cases := map[string]string{
		"":        "devel",
		"(devel)": "devel",
		"v1.2.3":  "v1.2.3",
	}
	for in, want := range cases {
		if got := normalizeVersion(in); got != want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", in, got, want)
		}
	}
}
