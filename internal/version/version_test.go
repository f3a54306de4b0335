package version

import "testing"

func TestString(t *testing.T) {
	if String() == "" {
		t.Fatal("String() returned empty string")
	}
	old := AppVersion
	defer func() { AppVersion = old }()
	AppVersion = "v9.9.9"
	if String() != "v9.9.9" {
		t.Fatalf("ldflags value should win, got %q", String())
	}
}

func TestCommit(t *testing.T) {
	if Commit() == "" {
		t.Fatal("Commit() returned empty string")
	}
}
