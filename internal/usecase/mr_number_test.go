package usecase

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var mrNumberPattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func TestNewMRNumberFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		mr := newMRNumber()
		assert.Len(t, mr, mrNumberLength)
		assert.Regexp(t, mrNumberPattern, mr)
	}
}

func TestNewMRNumberVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[newMRNumber()] = true
	}
	// Collisions in 1000 draws from a 16^8 space would mean the generator
	// is broken, not unlucky.
	assert.Len(t, seen, 1000)
}
