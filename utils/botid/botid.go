package botid

import (
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// The monotonic reader is shared across goroutines, so it must be the
// locked variant.
var entropy = &ulid.LockedMonotonicReader{
	MonotonicReader: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
}

func generate(prefix string) string {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	return prefix + "_" + strings.ToLower(id.String())
}

// NewBot returns a bot_* ULID string.
func NewBot() string {
	return generate("bot")
}

// NewCategory returns a cat_* ULID string.
func NewCategory() string {
	return generate("cat")
}

// NewMessage returns a msg_* ULID string.
func NewMessage() string {
	return generate("msg")
}

// IsValid reports whether the string is a prefixed ULID.
func IsValid(value string) bool {
	_, err := Parse(value)
	return err == nil
}

// Parse strips the prefix and returns the ULID.
func Parse(value string) (ulid.ULID, error) {
	value = strings.TrimSpace(value)
	if idx := strings.IndexByte(value, '_'); idx >= 0 {
		value = value[idx+1:]
	}
	return ulid.Parse(value)
}
