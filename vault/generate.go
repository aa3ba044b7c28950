package vault

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	charsetUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	charsetLower   = "abcdefghijklmnopqrstuvwxyz"
	charsetDigits  = "0123456789"
	charsetSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Classes selects which character classes feed the generator's alphabet.
type Classes struct {
	Upper   bool
	Lower   bool
	Digits  bool
	Symbols bool
}

// AllClasses enables every character class.
func AllClasses() Classes {
	return Classes{Upper: true, Lower: true, Digits: true, Symbols: true}
}

func (c Classes) alphabet() string {
	var b strings.Builder
	if c.Upper {
		b.WriteString(charsetUpper)
	}
	if c.Lower {
		b.WriteString(charsetLower)
	}
	if c.Digits {
		b.WriteString(charsetDigits)
	}
	if c.Symbols {
		b.WriteString(charsetSymbols)
	}
	return b.String()
}

// Generate produces a random password of the given length, each character
// drawn independently and uniformly from the selected classes using the
// system CSPRNG. There is no guarantee every enabled class appears in the
// output; uniformity wins over coverage here.
func Generate(length int, classes Classes) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}
	alphabet := classes.alphabet()
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}

	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}
