package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScaffoldProject(t *testing.T) {
	t.Run("creates all files in empty directory", func(t *testing.T) {
		dir := t.TempDir()

		created, err := ScaffoldProject(dir)
		if err != nil {
			t.Fatal(err)
		}

		expected := []string{
			filepath.Join(dir, FileName),
			filepath.Join(dir, ".gitignore"),
		}
		if len(created) != len(expected) {
			t.Fatalf("created %d files, want %d: %v", len(created), len(expected), created)
		}
		for i, want := range expected {
			if created[i] != want {
				t.Errorf("created[%d] = %q, want %q", i, created[i], want)
			}
		}

		content, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(content), ".multitimer/") {
			t.Errorf(".gitignore = %q, want journal dir entry", content)
		}
	})

	t.Run("second run creates nothing", func(t *testing.T) {
		dir := t.TempDir()
		if _, err := ScaffoldProject(dir); err != nil {
			t.Fatal(err)
		}
		created, err := ScaffoldProject(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(created) != 0 {
			t.Errorf("created = %v, want nothing", created)
		}
	})

	t.Run("appends to existing gitignore", func(t *testing.T) {
		dir := t.TempDir()
		gitignore := filepath.Join(dir, ".gitignore")
		if err := os.WriteFile(gitignore, []byte("bin/"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := ScaffoldProject(dir); err != nil {
			t.Fatal(err)
		}
		content, err := os.ReadFile(gitignore)
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "bin/\n.multitimer/\n" {
			t.Errorf(".gitignore = %q", content)
		}
	})

	t.Run("keeps existing config", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "[tui]\ntitle = \"Mine\"\n")

		created, err := ScaffoldProject(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, p := range created {
			if filepath.Base(p) == FileName {
				t.Error("existing config must not be recreated")
			}
		}
		data, _ := os.ReadFile(filepath.Join(dir, FileName))
		if !strings.Contains(string(data), "Mine") {
			t.Error("existing config was overwritten")
		}
	})
}
