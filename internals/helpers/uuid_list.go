package helper

import (
	"strings"

	"github.com/google/uuid"
)

// ParseUUIDList splits a comma-joined id list and keeps the valid uuids.
// Invalid or empty tokens are dropped silently, duplicates removed.
func ParseUUIDList(raw string) []uuid.UUID {
	parts := strings.Split(raw, ",")
	out := make([]uuid.UUID, 0, len(parts))
	seen := make(map[uuid.UUID]struct{}, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(strings.TrimSpace(p))
		if err != nil || id == uuid.Nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ParseUUIDTokens does the same over an already-split token list
// (repeated form fields).
func ParseUUIDTokens(tokens []string) []uuid.UUID {
	return ParseUUIDList(strings.Join(tokens, ","))
}
