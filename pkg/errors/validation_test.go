package errors

import (
	"strings"
	"testing"
)

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple", "admin", false},
		{"spaces allowed", "Export Reports", false},
		{"unicode", "zugriff-prüfung", false},
		{"empty", "", true},
		{"control character", "bad\x01id", true},
		{"null byte", "bad\x00id", true},
		{"too long", strings.Repeat("a", 257), true},
		{"max length ok", strings.Repeat("a", 256), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateGraphID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid uuid", "9f1c6f9e-2a74-4d7b-8c1f-3a9b7e2d4c5a", false},
		{"empty", "", true},
		{"not a uuid", "latest", true},
		{"traversal attempt", "../secrets", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGraphID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGraphID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidGraphID) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidGraphID)
			}
		})
	}
}

func TestValidateGraphFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"simple", "model.json", false},
		{"empty", "", true},
		{"path separator", "dir/model.json", true},
		{"backslash", `dir\model.json`, true},
		{"hidden file", ".model.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGraphFilename(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGraphFilename(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}
