package version

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in        string
		wantMajor int
		wantMinor int
		wantErr   bool
	}{
		{in: "1.00", wantMajor: 1, wantMinor: 0},
		{in: "1.23", wantMajor: 1, wantMinor: 23},
		{in: "12.05", wantMajor: 12, wantMinor: 5},
		{in: " 2.10 ", wantMajor: 2, wantMinor: 10},
		{in: "1.0", wantErr: true},
		{in: "1.000", wantErr: true},
		{in: "1", wantErr: true},
		{in: "dev", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		major, minor, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && (major != tt.wantMajor || minor != tt.wantMinor) {
			t.Errorf("Parse(%q) = %d, %d, want %d, %d", tt.in, major, minor, tt.wantMajor, tt.wantMinor)
		}
	}
}

func TestBump(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "1.00", want: "1.01"},
		{in: "1.09", want: "1.10"},
		{in: "1.99", want: "2.00"},
		{in: "9.99", want: "10.00"},
		{in: "garbage", wantErr: true},
	}

	for _, tt := range tests {
		got, err := Bump(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Bump(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("Bump(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.json")

	if err := Save(path, "1.42"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "1.42" {
		t.Errorf("Load() = %q, want %q", got, "1.42")
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.json")

	if _, err := Load(path); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	if err := os.WriteFile(path, []byte(`{"version": "junk"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of an invalid version should fail")
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.json")
	if err := Save(path, "not-a-version"); err == nil {
		t.Error("Save() should reject an invalid version")
	}
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{a: "1.00", b: "1.01", want: true},
		{a: "1.99", b: "2.00", want: true},
		{a: "2.00", b: "1.99", want: false},
		{a: "1.05", b: "1.05", want: false},
		{a: "dev", b: "1.00", want: true},
		{a: "1.00", b: "dev", want: false},
	}

	for _, tt := range tests {
		if got := IsNewer(tt.a, tt.b); got != tt.want {
			t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
