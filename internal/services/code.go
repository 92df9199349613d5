package services

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
)

const (
	DefaultCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	DefaultCodeLength   = 8

	maxCodeAttempts = 10
)

// CodeGenerator produces redemption codes that are unique in the attachment store.
type CodeGenerator struct {
	index    CodeIndex
	alphabet string
	length   int
}

// NewCodeGenerator returns a generator for codes of length symbols. A length below
// DefaultCodeLength falls back to the default.
func NewCodeGenerator(index CodeIndex, length int) *CodeGenerator {
	if length < DefaultCodeLength {
		length = DefaultCodeLength
	}
	return &CodeGenerator{index: index, alphabet: DefaultCodeAlphabet, length: length}
}

// Generate draws codes until one is not yet taken, giving up after a bounded number of collisions.
func (g *CodeGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := g.random()
		if err != nil {
			return "", err
		}
		taken, err := g.index.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
		logger.Log.Warnw("redemption code collision", "attempt", attempt)
	}
	return "", fail(ErrInvalidState, "could not generate a unique redemption code")
}

func (g *CodeGenerator) random() (string, error) {
	size := big.NewInt(int64(len(g.alphabet)))
	buf := make([]byte, g.length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		buf[i] = g.alphabet[n.Int64()]
	}
	return string(buf), nil
}

// maskCode keeps a redemption code out of logs, leaving a short prefix for correlation.
func maskCode(code string) string {
	if len(code) <= 2 {
		return "***"
	}
	return code[:2] + "***"
}
