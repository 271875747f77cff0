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

func TestResumeCursorStore_GetMissingReturnsNil(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	cursor, err := sqlStore.GetResumeCursor("change-feed")
	require.NoError(t, err)
	require.Nil(t, cursor)
}

func TestResumeCursorStore_UpsertInsertsThenUpdates(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	cursor := &model.ResumeCursor{
		Service:    "change-feed",
		Token:      model.NewRawResumeToken("pos-1"),
		LastSaved:  model.GetMillis(),
		MaxHistory: 5,
	}
	require.NoError(t, sqlStore.UpsertResumeCursor(cursor))

	fetched, err := sqlStore.GetResumeCursor("change-feed")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, "pos-1", fetched.Token["_raw"])

	cursor.Append(model.NewRawResumeToken("pos-2"), model.GetMillis())
	require.NoError(t, sqlStore.UpsertResumeCursor(cursor))

	updated, err := sqlStore.GetResumeCursor("change-feed")
	require.NoError(t, err)
	require.Equal(t, "pos-2", updated.Token["_raw"])
	require.Len(t, updated.History, 1)
	require.Equal(t, "pos-1", updated.History[0]["_raw"])
}
