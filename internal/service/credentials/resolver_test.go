package credentials

import "testing"

func TestResolvePrefersProfileKey(t *testing.T) {
	r := NewResolver("fallback-key-123")

	key, ok := r.Resolve("profile-key-456")
	if !ok {
		t.Fatalf("Resolve() ok = false, want true")
	}
	if key != "profile-key-456" {
		t.Errorf("Resolve() = %q, want profile key", key)
	}
}

func TestResolveFallsBackWhenProfileKeyShort(t *testing.T) {
	r := NewResolver("fallback-key-123")

	key, ok := r.Resolve("abc")
	if !ok {
		t.Fatalf("Resolve() ok = false, want fallback")
	}
	if key != "fallback-key-123" {
		t.Errorf("Resolve() = %q, want fallback key", key)
	}
}

func TestResolveNoUsableKey(t *testing.T) {
	r := NewResolver("")

	if _, ok := r.Resolve("  ab  "); ok {
		t.Errorf("Resolve() ok = true, want false when both sources empty or short")
	}
	if r.Available("") {
		t.Errorf("Available() = true, want false")
	}
}

func TestResolveTrimsWhitespace(t *testing.T) {
	r := NewResolver("")

	key, ok := r.Resolve("  spaced-key-789  ")
	if !ok || key != "spaced-key-789" {
		t.Errorf("Resolve() = %q, %v; want trimmed profile key", key, ok)
	}
}
