package random

import (
	"crypto/rand"
	"math/big"
)

// ASCIIString generates random ASCII string starting with a letter
func ASCIIString(minLen, maxLen int) string {
	var letters = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFJHIJKLMNOPQRSTUVWXYZ"

	slen := minLen
	if maxLen > minLen {
		slen += rnd.Intn(maxLen - minLen)
	}
	lettersLen := big.NewInt(int64(len(letters)))

	s := make([]byte, 0, slen)
	for len(s) < slen {
		num, _ := rand.Int(rand.Reader, lettersLen)
		char := letters[num.Int64()]
		if len(s) == 0 && '0' <= char && char <= '9' {
			continue
		}
		s = append(s, char)
	}

	return string(s)
}
