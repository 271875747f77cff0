// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package cursorstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nine-rivers/hookline/model"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadFreshStart(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "cursor.json"), "svc1", 0, logrus.New())

	cursor, err := fs.Load()
	require.NoError(t, err)
	require.Nil(t, cursor.Token)
}

func TestFileStore_SaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cursor.json")
	fs := NewFileStore(path, "svc1", 5, logrus.New())

	_, err := fs.Load()
	require.NoError(t, err)

	token := model.NewRawResumeToken("pos-1")
	require.NoError(t, fs.Save(token, true))

	fs2 := NewFileStore(path, "svc1", 5, logrus.New())
	cursor, err := fs2.Load()
	require.NoError(t, err)
	require.True(t, cursor.Token.IsWellFormed())
	require.Equal(t, "pos-1", cursor.Token["_raw"])
}

func TestFileStore_HistoryBounded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cursor.json")
	fs := NewFileStore(path, "svc1", 2, logrus.New())
	_, err := fs.Load()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, fs.Save(model.NewRawResumeToken("pos"), true))
	}
	require.LessOrEqual(t, len(fs.current.History), 2)
}

func TestFileStore_NoTempFileLeftBehindAfterFlush(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cursor.json")
	fs := NewFileStore(path, "svc1", 5, logrus.New())
	_, err := fs.Load()
	require.NoError(t, err)
	require.NoError(t, fs.Save(model.NewRawResumeToken("pos-1"), true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "cursor.json", entries[0].Name())
}

func TestResumeToken_IsWellFormed(t *testing.T) {
	require.True(t, model.ResumeToken{"_data": "x"}.IsWellFormed())
	require.True(t, model.ResumeToken{"_id": "x"}.IsWellFormed())
	require.True(t, model.NewRawResumeToken("abc").IsWellFormed())
	require.False(t, model.ResumeToken{}.IsWellFormed())
	require.False(t, model.NewRawResumeToken("").IsWellFormed())
}
