// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package model_test

import (
	"testing"

	"github.com/nine-rivers/hookline/model"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := model.NewID()
		require.Len(t, id, 26)
		require.False(t, seen[id], "id %s generated twice", id)
		seen[id] = true
	}
}
