package logger_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"go.trai.ch/taskid/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	// Close the write end of the pipe to signal EOF to the reader
	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	output := <-done

	if err := r.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	os.Stderr = originalStderr

	return output, nil
}

func TestLogger_Info(t *testing.T) {
	output, err := captureStderr(func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Info("resolved 2 task ids")
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	if !strings.Contains(output, "resolved 2 task ids") {
		t.Errorf("Expected output to contain the message, got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	output, err := captureStderr(func() {
		lg := logger.New()
		lg.Warn("catalog version not set")
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	if !strings.Contains(output, "catalog version not set") {
		t.Errorf("Expected output to contain the warning, got: %s", output)
	}
	if !strings.Contains(output, "WARN") {
		t.Errorf("Expected output to contain 'WARN', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	output, err := captureStderr(func() {
		lg := logger.New()
		lg.Error(os.ErrPermission)
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	if !strings.Contains(output, "permission denied") {
		t.Errorf("Expected output to contain 'permission denied', got: %s", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("Expected output to contain 'ERROR', got: %s", output)
	}
}

func TestLogger_ErrorMetadata(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf, slog.LevelInfo)

	lg.Error(zerr.With(zerr.New("task not found"), "task_name", "InputText"))

	output := buf.String()
	for _, want := range []string{"task not found", "task_name=InputText"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got: %s", want, output)
		}
	}
}

func TestLogger_LevelAndSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first, slog.LevelWarn)

	lg.Info("hidden")
	lg.Warn("shown")
	if strings.Contains(first.String(), "hidden") {
		t.Errorf("Expected info to be filtered at warn level, got: %s", first.String())
	}

	lg.SetOutput(&second)
	lg.Warn("moved")
	if strings.Contains(first.String(), "moved") || !strings.Contains(second.String(), "moved") {
		t.Errorf("Expected output to move to the new writer")
	}
}

func TestNew(t *testing.T) {
	if lg := logger.New(); lg == nil {
		t.Fatal("Expected New() to return a non-nil logger")
	}
}
