package orderservice

import "crypto/rand"

const (
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength  = 5
)

// generateCode returns a short human-facing order code. Uniqueness is
// enforced by the orders.code constraint; callers retry on collision.
func generateCode() string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "AAAAA"
	}
	for i := range buf {
		buf[i] = codeCharset[int(buf[i])%len(codeCharset)]
	}
	return string(buf)
}
