package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"thoreinstein.com/vcsroot/pkg/config"
)

func TestConfigCommandRegistered(t *testing.T) {
	t.Parallel()

	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "config" {
			found = true
			break
		}
	}

	if !found {
		t.Error("config command should be registered with rootCmd")
	}
}

func TestConfigSubcommands(t *testing.T) {
	t.Parallel()

	want := map[string]bool{
		"init": false,
		"show": false,
	}

	for _, cmd := range configCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("config command should have %q subcommand", name)
		}
	}
}

func TestConfigInitForceFlag(t *testing.T) {
	t.Parallel()

	flag := configInitCmd.Flags().Lookup("force")
	if flag == nil {
		t.Fatal("config init should have --force flag")
	}

	if flag.DefValue != "false" {
		t.Errorf("--force default = %q, want %q", flag.DefValue, "false")
	}
}

func TestConfigFilePath_DefaultLocation(t *testing.T) {
	oldCfgFile := cfgFile
	cfgFile = ""
	t.Cleanup(func() { cfgFile = oldCfgFile })

	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := configFilePath()
	if err != nil {
		t.Fatalf("configFilePath() error = %v", err)
	}

	want := filepath.Join(home, ".config", "vcsroot", "config.toml")
	if path != want {
		t.Errorf("configFilePath() = %q, want %q", path, want)
	}
}

func TestConfigFilePath_HonorsConfigFlag(t *testing.T) {
	oldCfgFile := cfgFile
	cfgFile = "/tmp/custom-config.toml"
	t.Cleanup(func() { cfgFile = oldCfgFile })

	path, err := configFilePath()
	if err != nil {
		t.Fatalf("configFilePath() error = %v", err)
	}

	if path != "/tmp/custom-config.toml" {
		t.Errorf("configFilePath() = %q, want %q", path, "/tmp/custom-config.toml")
	}
}

func TestRunConfigInit_WritesDefaults(t *testing.T) {
	oldCfgFile := cfgFile
	cfgFile = ""
	t.Cleanup(func() { cfgFile = oldCfgFile })

	home := t.TempDir()
	t.Setenv("HOME", home)

	output, err := captureStdout(t, func() error {
		return runConfigInit(configInitCmd, nil)
	})
	if err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}

	path := filepath.Join(home, ".config", "vcsroot", "config.toml")
	if !strings.Contains(output, path) {
		t.Errorf("output %q should mention %q", output, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	content := string(data)

	for _, want := range []string{"# vcsroot configuration", "[search]", "mode", "closest", "span_file_systems", "[update]"} {
		if !strings.Contains(content, want) {
			t.Errorf("config file should contain %q, got:\n%s", want, content)
		}
	}
}

func TestRunConfigInit_ExistingFile(t *testing.T) {
	oldCfgFile := cfgFile
	t.Cleanup(func() { cfgFile = oldCfgFile })

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[search]\nmode = 'farthest'\n"), 0644); err != nil {
		t.Fatalf("failed to seed config file: %v", err)
	}
	cfgFile = path

	oldForce := configInitForce
	configInitForce = false
	t.Cleanup(func() { configInitForce = oldForce })

	_, err := captureStdout(t, func() error {
		return runConfigInit(configInitCmd, nil)
	})
	if err == nil {
		t.Fatal("runConfigInit() should fail when the config file already exists")
	}

	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error %q should mention the existing file", err)
	}
}

func TestRunConfigInit_ForceOverwrites(t *testing.T) {
	oldCfgFile := cfgFile
	t.Cleanup(func() { cfgFile = oldCfgFile })

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("stale = true\n"), 0644); err != nil {
		t.Fatalf("failed to seed config file: %v", err)
	}
	cfgFile = path

	oldForce := configInitForce
	configInitForce = true
	t.Cleanup(func() { configInitForce = oldForce })

	if _, err := captureStdout(t, func() error {
		return runConfigInit(configInitCmd, nil)
	}); err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "stale") {
		t.Error("config init --force should overwrite the existing file")
	}

	if !strings.Contains(content, "[search]") {
		t.Errorf("config file should contain defaults, got:\n%s", content)
	}
}

func TestRunConfigShow_PrintsEffectiveConfig(t *testing.T) {
	oldAppConfig := appConfig
	cfg := config.Default()
	cfg.Search.Mode = "farthest"
	appConfig = cfg
	t.Cleanup(func() { appConfig = oldAppConfig })

	output, err := captureStdout(t, func() error {
		return runConfigShow(configShowCmd, nil)
	})
	if err != nil {
		t.Fatalf("runConfigShow() error = %v", err)
	}

	for _, want := range []string{"[search]", "farthest", "span_file_systems", "[update]"} {
		if !strings.Contains(output, want) {
			t.Errorf("config show output should contain %q, got:\n%s", want, output)
		}
	}
}
