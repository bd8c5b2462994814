package runner_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const unordered = `  class Bad {
    render() {
    }
    b = 2;
    a = 1;
  }
`

// binaryPath builds the memberlint binary and returns its path.
func binaryPath(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	bin := filepath.Join(dir, "memberlint")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}

	cmd := exec.CommandContext(t.Context(), "go", "build", "-o", bin, "../../cmd/memberlint")
	cmd.Dir = filepath.Join(projectRoot(t), "internal", "runner")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

func projectRoot(t *testing.T) string {
	t.Helper()
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..")
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("running binary: %v", err)
	}
	return exitErr.ExitCode()
}

func TestIntegrationStdinViolation(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin, "--color", "off", "-")
	cmd.Stdin = strings.NewReader(unordered)
	out, err := cmd.Output()
	if code := exitCode(t, err); code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}

	output := string(out)
	if !strings.Contains(output, "-PUBLIC_METHOD render() { (line 2, in Bad)") {
		t.Errorf("diff missing declared line: %s", output)
	}
	if !strings.Contains(output, "+PUBLIC_FIELD b = 2; (line 4, in Bad)") {
		t.Errorf("diff missing canonical line: %s", output)
	}
}

func TestIntegrationCleanDir(t *testing.T) {
	bin := binaryPath(t)
	dir := t.TempDir()
	src := "  class Ok {\n    a = 1;\n    render() {\n    }\n  }\n"
	if err := os.WriteFile(filepath.Join(dir, "ok.js"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.CommandContext(t.Context(), bin, "-q", dir)
	out, err := cmd.CombinedOutput()
	if code := exitCode(t, err); code != 0 {
		t.Errorf("expected exit 0, got %d\n%s", code, out)
	}
}

func TestIntegrationCanonical(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin, "--canonical", "-")
	cmd.Stdin = strings.NewReader(unordered)
	out, err := cmd.Output()
	if code := exitCode(t, err); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.HasPrefix(string(out), "== <stdin>: Bad\nNAME Bad") {
		t.Errorf("listing: got %q", string(out))
	}
}

func TestIntegrationVersion(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin, "--version")
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(string(out), "memberlint version ") {
		t.Errorf("version: got %q", string(out))
	}
}

func TestIntegrationMissingFile(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin, "/nonexistent/file.js")
	if code := exitCode(t, cmd.Run()); code != 2 {
		t.Errorf("missing file: expected exit 2, got %d", code)
	}
}

func TestIntegrationBadColorFlag(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin, "--color", "sometimes", "-")
	cmd.Stdin = strings.NewReader(unordered)
	if code := exitCode(t, cmd.Run()); code != 2 {
		t.Errorf("bad flag: expected exit 2, got %d", code)
	}
}

func TestIntegrationExplicitConfig(t *testing.T) {
	bin := binaryPath(t)
	dir := t.TempDir()

	// Members at indent 4 fall outside a max_indent of 4, leaving only the
	// class name.
	configPath := filepath.Join(dir, "custom.yml")
	if err := os.WriteFile(configPath, []byte("lint:\n  max_indent: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.CommandContext(t.Context(), bin, "--config", configPath, "-")
	cmd.Stdin = strings.NewReader(unordered)
	out, err := cmd.CombinedOutput()
	if code := exitCode(t, err); code != 0 {
		t.Errorf("config: expected exit 0, got %d\n%s", code, out)
	}
}
