package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/asalkapakli/ykscountdown/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{config.EnvStorageDir, config.EnvTimezone, config.EnvLogLevel, config.EnvCounterEnabled} {
		t.Setenv(name, "")
	}
}

// writeTestConfig writes a config that keeps settings inside a temp dir.
// An empty counterURL disables the visit counter.
func writeTestConfig(t *testing.T, counterURL string) string {
	t.Helper()
	clearEnv(t)
	dir := t.TempDir()
	enabled := counterURL != ""
	if counterURL == "" {
		counterURL = config.DefaultCounterBaseURL
	}
	content := fmt.Sprintf(`storage:
  dir: %s
counter:
  enabled: %t
  base_url: %s
  namespace: test
display:
  timezone: UTC
logging:
  level: silent
`, filepath.Join(dir, "data"), enabled, counterURL)
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "ykscountdown version dev") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestShowAt(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	out, err := execute(t, "show", "--config", cfgPath, "--at", "2026-06-19T10:15:00Z", "--width", "20")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	for _, want := range []string{
		"Aziz Sancar Anadolu Lisesi",
		"YKS Serüveni İlerleme Durumu",
		"Başlangıç: 01.09.2025  Hedef: 20.06.2026",
		"01 GÜN 00 SAAT 00 DAKİKA 00 SANİYE",
		"20 Haziran 2026 10:15",
		"https://azizsancaranadolu.meb.k12.tr/",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShowJSON(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	out, err := execute(t, "show", "--config", cfgPath, "--at", "2026-07-01", "--json")
	if err != nil {
		t.Fatalf("show --json failed: %v", err)
	}

	var board boardJSON
	if err := json.Unmarshal([]byte(out), &board); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if board.Window.Percent != 100 || !board.Window.Valid {
		t.Errorf("expected a valid, finished window: %+v", board.Window)
	}
	if len(board.Exams) != 3 {
		t.Fatalf("expected 3 exams, got %d", len(board.Exams))
	}
	for _, e := range board.Exams {
		if !e.Completed {
			t.Errorf("exam %s should be completed", e.Name)
		}
	}
}

func TestShowFlagErrors(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad at", []string{"--at", "yesterday"}, "--at"},
		{"watch with json", []string{"--watch", "--json"}, "--watch cannot be combined"},
		{"negative width", []string{"--width", "-1"}, "--width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"show", "--config", cfgPath}, tt.args...)
			_, err := execute(t, args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error: got %q want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestShowWatchStops(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	out, err := execute(t, "show", "--config", cfgPath, "--watch", "--for", "20ms")
	if err != nil {
		t.Fatalf("show --watch failed: %v", err)
	}
	if !strings.Contains(out, "Aziz Sancar Anadolu Lisesi") {
		t.Errorf("watch should print the board when it stops:\n%s", out)
	}
}

func TestSettingsShowFormats(t *testing.T) {
	cfgPath := writeTestConfig(t, "")

	out, err := execute(t, "settings", "show", "--config", cfgPath)
	if err != nil {
		t.Fatalf("settings show failed: %v", err)
	}
	if !strings.Contains(out, "title: Aziz Sancar Anadolu Lisesi") {
		t.Errorf("unexpected yaml:\n%s", out)
	}

	out, err = execute(t, "settings", "show", "--config", cfgPath, "--format", "json")
	if err != nil {
		t.Fatalf("settings show --format json failed: %v", err)
	}
	if !strings.Contains(out, `"socialLinks"`) {
		t.Errorf("unexpected json:\n%s", out)
	}

	if _, err := execute(t, "settings", "show", "--config", cfgPath, "--format", "toml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestSettingsImportLegacy(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	legacy := `{
  "theme": "light",
  "color": "green",
  "school": {"title": "Kapaklı Fen Lisesi"},
  "social": {"instagram": "@kfl"},
  "exams": [{"id": "1", "name": "TYT", "startDate": "2025-09-01", "date": "2026-06-20", "startTime": "10:15", "endTime": "13:00", "isVisible": true}]
}`
	file := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(file, []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "settings", "import", "--config", cfgPath, file)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if !strings.Contains(out, `"Kapaklı Fen Lisesi"`) {
		t.Errorf("unexpected output: %q", out)
	}

	out, err = execute(t, "settings", "show", "--config", cfgPath, "--format", "json")
	if err != nil {
		t.Fatalf("settings show failed: %v", err)
	}
	if !strings.Contains(out, `"@kfl"`) || strings.Contains(out, `"social":`) {
		t.Errorf("legacy links were not migrated:\n%s", out)
	}
}

func TestSettingsImportMalformed(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	file := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(file, []byte(`{"theme": "dark"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "settings", "import", "--config", cfgPath, file)
	if err == nil || !strings.Contains(err.Error(), "malformed settings") {
		t.Fatalf("expected malformed error, got %v", err)
	}
	if !strings.Contains(err.Error(), "File is not a settings export") {
		t.Errorf("malformed import should be reported as such, got %v", err)
	}
}

func TestSettingsExportRoundTrip(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	file := filepath.Join(t.TempDir(), "out.json")

	if _, err := execute(t, "settings", "export", "--config", cfgPath, file); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"exams"`) {
		t.Errorf("unexpected export:\n%s", data)
	}
	if _, err := execute(t, "settings", "import", "--config", cfgPath, file); err != nil {
		t.Fatalf("re-import failed: %v", err)
	}
}

func TestSettingsReset(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	_, err := execute(t, "settings", "reset", "--config", cfgPath)
	if err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Fatalf("reset without --yes should fail, got %v", err)
	}

	out, err := execute(t, "settings", "reset", "--config", cfgPath, "--yes")
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if !strings.Contains(out, "Settings reset to defaults") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestSettingsPath(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	out, err := execute(t, "settings", "path", "--config", cfgPath)
	if err != nil {
		t.Fatalf("settings path failed: %v", err)
	}
	if !strings.Contains(out, cfgPath) || !strings.Contains(out, "yks-countdown-settings") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestCounterDryRun(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	out, err := execute(t, "counter", "--config", cfgPath, "--dry-run")
	if err != nil {
		t.Fatalf("counter --dry-run failed: %v", err)
	}
	if !strings.Contains(out, "key: aziz-sancar-anadolu-lisesi") {
		t.Errorf("unexpected key: %q", out)
	}
	if !strings.Contains(out, "url: https://api.counterapi.dev/v1/test/aziz-sancar-anadolu-lisesi/up") {
		t.Errorf("unexpected url: %q", out)
	}
}

func TestCounterHit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/test/kapakli-fen/up" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"count": 1234}`)
	}))
	defer srv.Close()

	cfgPath := writeTestConfig(t, srv.URL+"/v1")
	out, err := execute(t, "counter", "--config", cfgPath, "--title", "Kapaklı Fen")
	if err != nil {
		t.Fatalf("counter failed: %v", err)
	}
	if strings.TrimSpace(out) != "1.234 Görüntülenme" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestCounterErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := execute(t, "counter", "--config", writeTestConfig(t, srv.URL))
	if err == nil || !strings.Contains(err.Error(), "Visit counter request") {
		t.Errorf("expected wrapped counter error, got %v", err)
	}

	_, err = execute(t, "counter", "--config", writeTestConfig(t, ""))
	if err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Errorf("expected disabled error, got %v", err)
	}
}

func TestInvalidConfig(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("display:\n  tick_ms: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "show", "--config", path)
	if err == nil || !strings.Contains(err.Error(), "Configuration error") {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestUnknownLogLevel(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	_, err := execute(t, "show", "--config", cfgPath, "--log-level", "loud")
	if err == nil || !strings.Contains(err.Error(), "unknown log level") {
		t.Fatalf("expected log level error, got %v", err)
	}
}
