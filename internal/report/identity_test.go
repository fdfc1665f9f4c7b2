package report

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateIDUniquenessUnderLoad(t *testing.T) {
	// Pin the clock so every identifier shares one timestamp and the
	// random suffix alone must keep 1,000 storage keys distinct.
	pinTime(t, time.Date(2025, 8, 11, 14, 5, 0, 0, time.UTC))

	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		key := SanitizeKey(GenerateID("123456"))
		if seen[key] {
			t.Fatalf("duplicate storage key after %d ids: %s", i, key)
		}
		seen[key] = true
	}
}

func TestGenerateIDCarriesOwner(t *testing.T) {
	id := GenerateID("654321")
	if !strings.Contains(id, "-654321-") {
		t.Fatalf("owner id missing from identifier: %s", id)
	}
}

func TestSanitizeKey(t *testing.T) {
	t.Run("replaces illegal characters", func(t *testing.T) {
		got := SanitizeKey(`14:05_11.08.2025/123456`)
		if got != "14-05_11.08.2025-123456" {
			t.Fatalf("unexpected key: %s", got)
		}
		for _, c := range `<>:"/\|?*` {
			if strings.ContainsRune(got, c) {
				t.Fatalf("illegal character %q survived: %s", c, got)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := SanitizeKey(`a<b>c:d"e/f\g|h?i*j`)
		if SanitizeKey(once) != once {
			t.Fatalf("sanitization not idempotent: %s", once)
		}
	})

	t.Run("legal ids pass through", func(t *testing.T) {
		id := "20250811-140500-123456-ab12cd34ef56"
		if SanitizeKey(id) != id {
			t.Fatalf("legal id was altered: %s", SanitizeKey(id))
		}
	})
}
