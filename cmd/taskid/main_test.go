package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	catalog := `version: "1"
tasks:
  InputText:
    params:
      - name: date
        kind: date
`

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{
			name:         "Encode with valid catalog",
			args:         []string{"taskid", "encode", "InputText", "date=2014-12-29"},
			expectedExit: 0,
		},
		{
			name:         "Parse needs no catalog",
			args:         []string{"taskid", "parse", "InputText(date=2014-12-29)", "-c", "missing.yaml"},
			expectedExit: 0,
		},
		{
			name:         "Resolve invalid value",
			args:         []string{"taskid", "resolve", "InputText(date=yesterday)"},
			expectedExit: 1,
		},
		{
			name:         "Missing catalog",
			args:         []string{"taskid", "tasks", "--catalog", "missing.yaml"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			if err := os.WriteFile(filepath.Join(tmpDir, "taskid.yaml"), []byte(catalog), 0o600); err != nil {
				t.Fatalf("failed to write catalog: %v", err)
			}

			// Change to tmpDir for relative path resolution
			t.Chdir(tmpDir)

			os.Args = tt.args
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
