package model

import (
	"crypto/rand"
	"strconv"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns an identifier unique within the process lifetime with
// overwhelming probability: the Unix-millisecond timestamp plus a random
// 9-character base-36 suffix. Collisions are not checked or retried.
func NewID() string {
	buf := make([]byte, 9)
	_, _ = rand.Read(buf)
	suffix := make([]byte, len(buf))
	for i, b := range buf {
		suffix[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(suffix)
}
