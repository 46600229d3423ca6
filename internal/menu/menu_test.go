package menu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Valid File", func(t *testing.T) {
		path := writeCatalog(t, `{"selection1":[
			{"name":"Margherita Pizza","description":"Classic tomato and mozzarella","price":"Rs. 800"},
			{"name":"BBQ Wings","description":"6 pieces","price":"Rs. 450"}
		]}`)

		c := Load(path, nil)
		if !c.Loaded() {
			t.Fatal("expected catalog loaded")
		}
		if len(c.Items()) != 2 {
			t.Errorf("expected 2 items, got %d", len(c.Items()))
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		c := Load(filepath.Join(t.TempDir(), "nope.json"), nil)
		if c.Loaded() {
			t.Error("expected unloaded catalog for missing file")
		}
		if got := c.Context(); got != unavailableContext {
			t.Errorf("expected unavailable context, got %q", got)
		}
	})

	t.Run("Corrupt File", func(t *testing.T) {
		c := Load(writeCatalog(t, `{not json`), nil)
		if c.Loaded() {
			t.Error("expected unloaded catalog for corrupt file")
		}
	})
}

func TestContext(t *testing.T) {
	path := writeCatalog(t, `{"selection1":[
		{"name":"Margherita Pizza","description":"Classic","price":"Rs. 800"}
	]}`)
	c := Load(path, nil)

	got := c.Context()
	if !strings.Contains(got, "Margherita Pizza") || !strings.Contains(got, "Rs. 800") {
		t.Errorf("menu context missing item details: %q", got)
	}

	t.Run("Cached Within TTL", func(t *testing.T) {
		base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
		now := base
		c.now = func() time.Time { return now }
		c.cachedCtx = "" // force a rebuild at base time
		first := c.Context()

		now = base.Add(ContextTTL / 2)
		c.cachedCtx = first + " MUTATED"
		// Within TTL the mutated cached value is returned untouched,
		// proving no rebuild happened.
		if got := c.Context(); got != first+" MUTATED" {
			t.Error("context rebuilt before TTL elapsed")
		}

		now = base.Add(ContextTTL + time.Second)
		if got := c.Context(); got != first {
			t.Error("context not rebuilt after TTL elapsed")
		}
	})
}
