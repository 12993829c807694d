package botid_test

import (
	"strings"
	"sync"
	"testing"

	"duck-server/services/bot-api/utils/botid"
)

func TestNewBot(t *testing.T) {
	id := botid.NewBot()
	if !strings.HasPrefix(id, "bot_") {
		t.Errorf("expected bot_ prefix, got %q", id)
	}
	if !botid.IsValid(id) {
		t.Errorf("expected %q to parse as a ULID", id)
	}
	if id != strings.ToLower(id) {
		t.Errorf("expected lowercase id, got %q", id)
	}
}

func TestPrefixes(t *testing.T) {
	if id := botid.NewCategory(); !strings.HasPrefix(id, "cat_") {
		t.Errorf("expected cat_ prefix, got %q", id)
	}
	if id := botid.NewMessage(); !strings.HasPrefix(id, "msg_") {
		t.Errorf("expected msg_ prefix, got %q", id)
	}
}

func TestConcurrentGeneration(t *testing.T) {
	const goroutines = 16
	const perGoroutine = 200

	var mu sync.Mutex
	seen := make(map[string]struct{}, goroutines*perGoroutine)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]string, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				ids = append(ids, botid.NewBot())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()

	if len(seen) != goroutines*perGoroutine {
		t.Errorf("expected %d unique ids, got %d", goroutines*perGoroutine, len(seen))
	}
	for id := range seen {
		if !botid.IsValid(id) {
			t.Errorf("generated id %q does not parse", id)
			break
		}
	}
}

func TestParse_RejectsGarbage(t *testing.T) {
	for _, value := range []string{"", "bot_", "bot_notaulid", "justtext"} {
		if botid.IsValid(value) {
			t.Errorf("expected %q to be invalid", value)
		}
	}
}
