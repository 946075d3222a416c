package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// maxCodeAttempts bounds the rejection-sampling loop. The code spaces are
// large relative to the number of live reports, so hitting the cap means
// something is badly wrong with the store, not bad luck.
const maxCodeAttempts = 20

var errCodeSpaceExhausted = errors.New("code generation retries exhausted")

type existsFunc func(ctx context.Context, code string) (bool, error)

// generateUnique draws candidates until one does not collide with an existing
// stored code, up to maxCodeAttempts.
func generateUnique(ctx context.Context, draw func() (string, error), exists existsFunc) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		candidate, err := draw()
		if err != nil {
			return "", err
		}

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", errCodeSpaceExhausted
}

// drawReportID produces a 6-character upper-case hex identifier.
func drawReportID() (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// drawVerificationCode produces a uniform 6-digit decimal code.
func drawVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
