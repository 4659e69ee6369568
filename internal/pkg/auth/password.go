// internal/pkg/auth/password.go
package auth

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// ErrWeakPassword wraps every strength violation reported by ValidatePassword
var ErrWeakPassword = errors.New("weak password")

var (
	sequentialLetters = regexp.MustCompile(`(?i)(abc|bcd|cde|def|efg|fgh|ghi|hij|ijk|jkl|klm|lmn|mno|nop|opq|pqr|qrs|rst|stu|tuv|uvw|vwx|wxy|xyz)`)
	sequentialNumbers = regexp.MustCompile(`(012|123|234|345|456|567|678|789)`)
	commonPasswords   = regexp.MustCompile(`(?i)(password|123456|admin|qwerty|letmein|welcome|monkey|dragon|football)`)
)

type passwordRule struct {
	message string
	broken  func(password string) bool
}

var passwordRules = []passwordRule{
	{"at least 8 characters", func(p string) bool { return len(p) < 8 }},
	// bcrypt ignores everything past 72 bytes
	{"at most 72 bytes", func(p string) bool { return len(p) > 72 }},
	{"an uppercase letter", lacks(unicode.IsUpper)},
	{"a lowercase letter", lacks(unicode.IsLower)},
	{"a number", lacks(unicode.IsNumber)},
	{"a special character", lacks(func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) })},
	{"no sequential letters", sequentialLetters.MatchString},
	{"no sequential numbers", sequentialNumbers.MatchString},
	{"no common words", commonPasswords.MatchString},
	{"no character repeated three times in a row", hasTripleRun},
}

func lacks(class func(rune) bool) func(string) bool {
	return func(p string) bool { return !strings.ContainsFunc(p, class) }
}

// RE2 has no backreferences
func hasTripleRun(p string) bool {
	runes := []rune(p)
	for i := 2; i < len(runes); i++ {
		if runes[i] == runes[i-1] && runes[i] == runes[i-2] {
			return true
		}
	}
	return false
}

// PasswordManager hashes and checks the admin password
type PasswordManager struct {
	cost int
}

// NewPasswordManager clamps out-of-range costs to bcrypt.DefaultCost
func NewPasswordManager(cost int) *PasswordManager {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordManager{cost: cost}
}

// HashPassword rejects weak passwords before hashing
func (p *PasswordManager) HashPassword(password string) (string, error) {
	if err := p.ValidatePassword(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (p *PasswordManager) VerifyPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidatePassword lists every rule the password breaks
func (p *PasswordManager) ValidatePassword(password string) error {
	var broken []string
	for _, rule := range passwordRules {
		if rule.broken(password) {
			broken = append(broken, rule.message)
		}
	}
	if len(broken) == 0 {
		return nil
	}
	return fmt.Errorf("%w: needs %s", ErrWeakPassword, strings.Join(broken, ", "))
}
