// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

// Package dispatcher signs, sends, retries, and records webhook deliveries.
// Request construction is grounded directly on internal/events/delivery.go's
// sender.sendEvent (request build, header loop, response body draining),
// generalized with HMAC signing and a bounded-size response body cap.
package dispatcher

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the "sha256=<hex>" HMAC-SHA256 signature the spec requires
// in the X-Webhook-Signature header. HMAC is a three-line stdlib primitive
// that no dependency in the pack wraps, so it is implemented directly
// against crypto/hmac and crypto/sha256 rather than adopting one.
//
// Sign is deterministic in (secret, body): the same inputs always produce
// the same signature.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
