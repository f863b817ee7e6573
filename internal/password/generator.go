// Package password generates passwords from a character-class policy and
// scores password strength.
package password

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+{}[]|:;<>,.?/~`"

	MinLength     = 8
	MaxLength     = 32
	DefaultLength = 12
)

var (
	ErrLengthTooShort = errors.New("password length must be at least 8")
	ErrLengthTooLong  = errors.New("password length must be at most 32")
)

// Policy configures the generator. Lowercase letters are always part of the
// alphabet; the flags add the other classes.
type Policy struct {
	Length    int
	Uppercase bool
	Numbers   bool
	Symbols   bool

	// RequireEachClass places at least one character of every enabled class
	// in the output. Off by default, in which case every character is drawn
	// uniformly from the whole alphabet.
	RequireEachClass bool
}

// DefaultPolicy returns the dashboard defaults: 12 characters, all classes on.
func DefaultPolicy() Policy {
	return Policy{
		Length:    DefaultLength,
		Uppercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Validate reports whether the policy length is within [MinLength, MaxLength].
func (p Policy) Validate() error {
	if p.Length < MinLength {
		return ErrLengthTooShort
	}
	if p.Length > MaxLength {
		return ErrLengthTooLong
	}
	return nil
}

// classes returns the enabled character classes, lowercase first.
func (p Policy) classes() []string {
	sets := []string{lowercaseChars}
	if p.Uppercase {
		sets = append(sets, uppercaseChars)
	}
	if p.Numbers {
		sets = append(sets, numberChars)
	}
	if p.Symbols {
		sets = append(sets, symbolChars)
	}
	return sets
}

// Alphabet returns every character the policy may emit.
func (p Policy) Alphabet() string {
	var pool string
	for _, set := range p.classes() {
		pool += set
	}
	return pool
}

// Generate creates a random password of exactly p.Length characters using
// crypto/rand.
func Generate(p Policy) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	pool := p.Alphabet()
	result := make([]byte, p.Length)

	start := 0
	if p.RequireEachClass {
		for i, charset := range p.classes() {
			ch, err := randChar(charset)
			if err != nil {
				return "", err
			}
			result[i] = ch
		}
		start = len(p.classes())
	}

	for i := start; i < p.Length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if p.RequireEachClass {
		if err := secureShuffle(result); err != nil {
			return "", err
		}
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
