package session

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewToken digests name, password digest and login instant into an opaque lowercase hex token.
// A random nonce keeps tokens distinct even for logins within the same clock tick.
func NewToken(name, hashPwd string, at time.Time) string {
	sum := sha512.Sum512([]byte(fmt.Sprintf("%s_%s_%d_%s", name, hashPwd, at.UnixNano(), uuid.NewString())))
	return hex.EncodeToString(sum[:])
}
