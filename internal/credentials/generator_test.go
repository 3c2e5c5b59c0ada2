package credentials

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	tokenPattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)
	pinPattern   = regexp.MustCompile(`^[0-9]{4}$`)
)

func TestGenerate_Format(t *testing.T) {
	gen := NewGenerator()

	for i := 0; i < 1000; i++ {
		token, pin := gen.Generate()
		assert.Regexp(t, tokenPattern, token)
		assert.Regexp(t, pinPattern, pin)
	}
}

func TestGenerate_Varies(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, _ := gen.Generate()
		seen[token] = struct{}{}
	}

	// 36^6 значений: сотня подряд совпасть не может
	assert.Greater(t, len(seen), 90)
}
