package usecase

import (
	"strings"

	"github.com/google/uuid"
)

// mrNumberLength is the length of a generated medical-record number.
const mrNumberLength = 8

// newMRNumber derives an 8-character uppercase token from a random UUID.
// Collisions are vanishingly unlikely at this length but still possible, so
// callers must treat the unique constraint as the source of truth and retry.
func newMRNumber() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:mrNumberLength])
}
