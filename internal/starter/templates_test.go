package starter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTemplateNames(t *testing.T) {
	names := TemplateNames()

	expected := []string{"reader-20s-it-woman", "settings-seo", "writer-friendly-senpai"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d starter templates, got %v", len(expected), names)
	}
	for i, exp := range expected {
		if names[i] != exp {
			t.Errorf("names[%d] = %q, want %q", i, names[i], exp)
		}
	}
}

func TestGetTemplate(t *testing.T) {
	content, err := GetTemplate("writer-friendly-senpai")
	if err != nil {
		t.Fatalf("GetTemplate failed: %v", err)
	}
	if !strings.Contains(string(content), "親しみやすい先輩") {
		t.Error("expected writer template to carry its name")
	}
}

func TestGetTemplate_NotFound(t *testing.T) {
	if _, err := GetTemplate("nonexistent"); err == nil {
		t.Error("expected error for nonexistent template")
	}
}

func TestBootstrapTemplates(t *testing.T) {
	tmpDir := t.TempDir()

	count, err := BootstrapTemplates(tmpDir)
	if err != nil {
		t.Fatalf("BootstrapTemplates failed: %v", err)
	}
	if count != len(TemplateNames()) {
		t.Errorf("expected %d templates copied, got %d", len(TemplateNames()), count)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}
	if len(entries) != count {
		t.Errorf("expected %d files, got %d", count, len(entries))
	}
}

func TestBootstrapTemplates_SkipsExisting(t *testing.T) {
	tmpDir := t.TempDir()

	existing := filepath.Join(tmpDir, "settings-seo.yaml")
	if err := os.WriteFile(existing, []byte("custom"), 0644); err != nil {
		t.Fatal(err)
	}

	count, err := BootstrapTemplates(tmpDir)
	if err != nil {
		t.Fatalf("BootstrapTemplates failed: %v", err)
	}
	if count != len(TemplateNames())-1 {
		t.Errorf("expected existing file to be skipped, copied %d", count)
	}

	content, _ := os.ReadFile(existing)
	if string(content) != "custom" {
		t.Error("existing file was overwritten")
	}

	count, err = BootstrapTemplates(tmpDir)
	if err != nil {
		t.Fatalf("second BootstrapTemplates failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected nothing copied on second run, got %d", count)
	}
}
