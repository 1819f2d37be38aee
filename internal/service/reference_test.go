package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTransferReference(t *testing.T) {
	pattern := regexp.MustCompile(`^TRF[0-9A-F]{12}$`)

	seen := make(map[string]struct{})
	for range 100 {
		ref := GenerateTransferReference()
		assert.Regexp(t, pattern, ref)
		seen[ref] = struct{}{}
	}
	// коллизии на выборке в 100 штук крайне маловероятны
	assert.Len(t, seen, 100)
}

func TestGenerateTransactionReference(t *testing.T) {
	pattern := regexp.MustCompile(`^TXN[0-9A-F]{12}$`)

	for range 100 {
		assert.Regexp(t, pattern, GenerateTransactionReference())
	}
}

func TestGenerateAuditReference(t *testing.T) {
	// неймспейс TXN_ не пересекается с референсами леджера: там после TXN
	// сразу идет hex, здесь - подчеркивание
	pattern := regexp.MustCompile(`^TXN_\d+_[0-9A-Z]{6}$`)

	seen := make(map[string]struct{})
	for range 100 {
		ref := GenerateAuditReference()
		assert.Regexp(t, pattern, ref)
		seen[ref] = struct{}{}
	}
	assert.Len(t, seen, 100)
}
