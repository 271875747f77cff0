// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package model

import (
	"bytes"
	"encoding/base32"

	"github.com/pborman/uuid"
	"github.com/sirupsen/logrus"
)

var encoding = base32.NewEncoding("ybndrfg8ejkmcpqxot1uwisza345h769")

// NewID returns a globally unique identifier. It is a [A-Z0-9] string 26
// characters long: a UUID version 4 encoded with zbase32 and the padding
// stripped off. Used for subscriber, event, delivery, and DLQ entry ids.
func NewID() string {
	var b bytes.Buffer
	encoder := base32.NewEncoder(encoding, &b)

	if _, err := encoder.Write(uuid.NewRandom()); err != nil {
		logrus.WithError(err).Error("failed to write to id encoder")
		return ""
	}

	if err := encoder.Close(); err != nil {
		logrus.WithError(err).Error("failed to close id encoder")
		return ""
	}

	if b.Len() < 26 {
		logrus.Errorf("unexpected id buffer length: got %d, want at least 26", b.Len())
		return b.String()
	}

	b.Truncate(26)
	return b.String()
}
