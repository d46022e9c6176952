package cddis

import (
	"os"
	"path/filepath"
	"testing"
)

func writeNetrc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".netrc")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateNetrcFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			"complete entry",
			"machine urs.earthdata.nasa.gov login alice password s3cret\n",
			false,
		},
		{
			"multiline entry",
			"machine urs.earthdata.nasa.gov\n  login alice\n  password s3cret\n",
			false,
		},
		{
			"entry among others",
			"machine example.com login bob password pw\nmachine urs.earthdata.nasa.gov login alice password s3cret\n",
			false,
		},
		{
			"missing machine",
			"machine example.com login bob password pw\n",
			true,
		},
		{
			"missing password",
			"machine urs.earthdata.nasa.gov login alice\n",
			true,
		},
		{
			"empty file",
			"",
			true,
		},
		{
			"credentials under wrong machine",
			"machine urs.earthdata.nasa.gov\nmachine example.com login bob password pw\n",
			true,
		},
		{
			"default entry only",
			"default login alice password s3cret\n",
			false,
		},
		{
			"other machine plus default",
			"machine example.com login bob password pw\ndefault login alice password s3cret\n",
			false,
		},
		{
			"incomplete machine entry beats complete default",
			"machine urs.earthdata.nasa.gov login alice\ndefault login bob password pw\n",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeNetrc(t, tt.content)
			err := ValidateNetrcFile(path, DefaultMachine)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateNetrcFile() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNetrcFileMissing(t *testing.T) {
	err := ValidateNetrcFile(filepath.Join(t.TempDir(), ".netrc"), DefaultMachine)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
