package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "none", "storage.json"))

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestFileStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsonalchemist", "storage.json")
	store := NewFileStore(path)

	want := Settings{
		Provider: ProviderOpenAI,
		OpenAI:   OpenAIConfig{BaseURL: "http://x/v1", APIKey: "k", Model: "m"},
		Theme:    Theme{Name: "Ocean", ClassPrefix: "ocean"},
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries map[string]map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("storage is not a key/value document: %v", err)
	}
	if entries[StorageKey]["openAi"] == nil {
		t.Errorf("expected openAi field under %s, got %s", StorageKey, data)
	}
}

func TestFileStore_MissingThemeGetsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	doc := `{"json_alchemist_config": {"provider": "OPENAI", "openAi": {"baseUrl": "u", "apiKey": "k", "model": ""}}}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != Themes[0] {
		t.Errorf("expected default theme, got %+v", cfg.Theme)
	}
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("expected stored provider, got %q", cfg.Provider)
	}
}

func TestFileStore_PreservesOtherKeysAndResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte(`{"other": 1}`), 0o600); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)

	cfg := Default()
	cfg.Provider = ProviderOpenAI
	if err := store.Save(cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != Default() {
		t.Errorf("expected defaults after reset, got %+v", got)
	}

	data, _ := os.ReadFile(path)
	var entries map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if _, ok := entries["other"]; !ok {
		t.Errorf("unrelated key was dropped: %s", data)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte(`{nope`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("expected decode error")
	}
}
