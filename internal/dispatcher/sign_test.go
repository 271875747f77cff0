// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSign_Deterministic(t *testing.T) {
	body := []byte(`{"hello":"world"}`)
	s1 := Sign("secret", body)
	s2 := Sign("secret", body)
	require.Equal(t, s1, s2)
	require.Regexp(t, `^sha256=[0-9a-f]{64}$`, s1)
}

func TestSign_DifferentSecretsDiffer(t *testing.T) {
	body := []byte(`{"hello":"world"}`)
	require.NotEqual(t, Sign("secret1", body), Sign("secret2", body))
}
