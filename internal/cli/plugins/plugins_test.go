package plugins

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFindPlugin_NotFound(t *testing.T) {
	_, err := FindPlugin("nonexistent-plugin-xyz")
	if err != ErrPluginNotFound {
		t.Errorf("expected ErrPluginNotFound, got %v", err)
	}
}

func TestFindPlugin_InPluginsDir(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("cannot get home directory: %v", err)
	}

	pluginsDir := filepath.Join(homeDir, ".daytally", "plugins")
	if err := os.MkdirAll(pluginsDir, 0755); err != nil {
		t.Fatalf("failed to create plugins dir: %v", err)
	}

	pluginPath := filepath.Join(pluginsDir, "daytally-testplugin")
	if err := os.WriteFile(pluginPath, []byte("#!/bin/sh\necho test"), 0755); err != nil {
		t.Fatalf("failed to create test plugin: %v", err)
	}
	defer os.Remove(pluginPath)

	found, err := FindPlugin("testplugin")
	if err != nil {
		t.Errorf("expected to find plugin, got error: %v", err)
	}
	if found != pluginPath {
		t.Errorf("expected %s, got %s", pluginPath, found)
	}
}

func TestFormatNotFoundError(t *testing.T) {
	msg := FormatNotFoundError("export")

	if !strings.Contains(msg, `unknown command "export"`) {
		t.Errorf("unexpected message: %s", msg)
	}
	if !strings.Contains(msg, "daytally-export") {
		t.Error("expected message to mention daytally-export")
	}
	if !strings.Contains(msg, ".daytally/plugins") {
		t.Error("expected message to mention the plugins directory")
	}
}

func TestExecute_ExitCode(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "daytally-fail")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0755); err != nil {
		t.Fatal(err)
	}

	if code := Execute(script, nil); code != 3 {
		t.Errorf("Execute() = %d, want 3", code)
	}
}
