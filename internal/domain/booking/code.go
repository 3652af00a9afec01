package booking

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var ErrCodeGenerationExhausted = errors.New("could not generate a unique confirmation code")

const codePrefix = "BK-"

var codePattern = regexp.MustCompile(`^BK-[0-9A-F]{8}$`)

// CodeGenerator mints the short human-shareable booking reference, format
// BK-XXXXXXXX. Each call draws fresh entropy; uniqueness against the persisted
// set is the caller's responsibility (the store holds a unique constraint and
// the create workflow retries a bounded number of times).
type CodeGenerator struct{}

func NewCodeGenerator() CodeGenerator {
	return CodeGenerator{}
}

func (CodeGenerator) Generate() string {
	return codePrefix + strings.ToUpper(uuid.NewString()[:8])
}

func IsValidCode(s string) bool {
	return codePattern.MatchString(s)
}
