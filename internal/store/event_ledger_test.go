// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package store

import (
	"testing"

	"github.com/nine-rivers/hookline/model"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestEventLedger_RecordEventOnce(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	first, err := sqlStore.RecordEventOnce("change-feed", "hash-1")
	require.NoError(t, err)
	require.True(t, first)

	second, err := sqlStore.RecordEventOnce("change-feed", "hash-1")
	require.NoError(t, err)
	require.False(t, second)

	// A different source sharing the same hash is a distinct pair.
	other, err := sqlStore.RecordEventOnce("other-feed", "hash-1")
	require.NoError(t, err)
	require.True(t, other)
}

func TestEventLedger_EmptyArgumentsAlwaysFirst(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	first, err := sqlStore.RecordEventOnce("", "")
	require.NoError(t, err)
	require.True(t, first)

	second, err := sqlStore.RecordEventOnce("", "")
	require.NoError(t, err)
	require.True(t, second)
}
