package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	c.Set("k", "value", time.Minute)
	got, ok := c.Get("k")
	if !ok || got.(string) != "value" {
		t.Errorf("Expected cached value, got %v (ok=%v)", got, ok)
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	if _, ok := c.Get("absent"); ok {
		t.Error("Expected miss for absent key")
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.Set("k", 1, time.Minute)
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("Expected key deleted")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Clear()
	if _, ok := c.Get("a"); ok {
		t.Error("Expected cache cleared")
	}
}

func TestKey_StableAndNamespaced(t *testing.T) {
	if Key("prompt", "x") != Key("prompt", "x") {
		t.Error("Expected stable keys")
	}
	if Key("prompt", "x") == Key("knowledge", "x") {
		t.Error("Expected namespaces to separate keys")
	}
}
