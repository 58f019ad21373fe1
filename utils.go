package driftcord

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

type void struct{}

// randomHex returns a cryptographically random hex string of n bytes.
func randomHex(n int) string {
	if n <= 0 {
		return ""
	}

	buf := make([]byte, n)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}

// quickHash returns the sha256 hex digest of text.
func quickHash(text string) string {
	sum := sha256.Sum256([]byte(text))

	return hex.EncodeToString(sum[:])
}

func includes(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}

// returnRangeInt32 converts a string like 0-4,6-7 to [0,1,2,3,4,6,7].
func returnRangeInt32(_range string, max int32) (result []int32) {
	splits := strings.Split(_range, ",")

	for _, split := range splits {
		ranges := strings.Split(split, "-")

		if low, err := strconv.Atoi(ranges[0]); err == nil {
			if hi, err := strconv.Atoi(ranges[len(ranges)-1]); err == nil {
				for i := int32(low); i < int32(hi+1); i++ {
					if 0 <= i && i < max {
						result = append(result, i)
					}
				}
			}
		}
	}

	return result
}
