package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

const (
	headerDeliveryID = "X-Webhook-Delivery-ID"
	headerEvent      = "X-Webhook-Event"
	headerTimestamp  = "X-Webhook-Timestamp"
	headerSignature  = "X-Webhook-Signature"
)

// Sign returns the signature of payload sent at timestamp (unix seconds):
// "v1=" followed by the hex HMAC-SHA256 of "{timestamp}.{payload}".
func Sign(payload []byte, secret string, timestamp int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)

	return "v1=" + hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches payload and timestamp.
func Verify(payload []byte, secret string, timestamp int64, signature string) bool {
	return hmac.Equal([]byte(Sign(payload, secret, timestamp)), []byte(signature))
}
