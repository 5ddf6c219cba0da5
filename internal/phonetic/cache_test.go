package phonetic

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestCache(t *testing.T) {
	c := NewCache()

	if _, ok := c.Get("casa"); ok {
		t.Error("Expected empty cache")
	}

	c.Add("casa", "kasa")
	c.Add("casa", "ˈkasa")

	got, ok := c.Get("casa")
	if !ok || got != "ˈkasa" {
		t.Errorf("Get(casa) = %q, %v", got, ok)
	}

	all := c.All()
	all["sol"] = "sol"
	if c.Len() != 1 {
		t.Error("All() must return a copy")
	}
}

func TestCacheConcurrentAdd(t *testing.T) {
	c := NewCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(string(rune('a'+i%26)), "x")
		}()
	}
	wg.Wait()

	if c.Len() != 26 {
		t.Errorf("Expected 26 entries, got %d", c.Len())
	}
}

func TestCacheSave(t *testing.T) {
	c := NewCache()
	c.Add("casa", "kasa")
	c.Add("año", "aɲo")

	path := filepath.Join(t.TempDir(), "fetched.json")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved cache: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Saved cache is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded["año"] != "aɲo" {
		t.Errorf("Unexpected saved cache: %v", decoded)
	}

	if err := c.Save(filepath.Join(t.TempDir(), "missing", "fetched.json")); err == nil {
		t.Error("Expected error for missing directory")
	}
}
