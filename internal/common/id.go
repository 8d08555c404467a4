package common

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"strings"
	"time"
)

// ObjectIDLength is the length of an identifier in its hex form.
const ObjectIDLength = 24

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// NewObjectID returns a new 24-character hex identifier. The first four bytes
// hold the creation unix time (big endian), the remaining eight are random,
// which keeps ids roughly sortable by creation time.
func NewObjectID() (string, error) {
	return newObjectIDAt(time.Now())
}

func newObjectIDAt(t time.Time) (string, error) {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(t.Unix()))
	if _, err := rand.Read(b[4:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

// IsObjectID reports whether s is a well-formed identifier.
func IsObjectID(s string) bool {
	return objectIDPattern.MatchString(s)
}

// NormalizeObjectID lower-cases a well-formed identifier. ok is false when s
// is malformed, in which case no lookup should be attempted.
func NormalizeObjectID(s string) (id string, ok bool) {
	if !IsObjectID(s) {
		return "", false
	}
	return strings.ToLower(s), true
}
