// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package supervisor

import (
	"testing"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeHistoryRetentionStore struct {
	olderThanMillis int64
	removed         int64
	err             error
}

func (f *fakeHistoryRetentionStore) DeleteDeliveryHistoryOlderThan(olderThanMillis int64) (int64, error) {
	f.olderThanMillis = olderThanMillis
	return f.removed, f.err
}

func TestHistoryRetentionSupervisor_Do(t *testing.T) {
	store := &fakeHistoryRetentionStore{removed: 5}
	supervisor := NewHistoryRetentionSupervisor(store, 2000, log.New())

	err := supervisor.Do()
	require.NoError(t, err)
	require.NotZero(t, store.olderThanMillis)
}

func TestHistoryRetentionSupervisor_DoPropagatesError(t *testing.T) {
	store := &fakeHistoryRetentionStore{err: errors.New("boom")}
	supervisor := NewHistoryRetentionSupervisor(store, 2000, log.New())

	err := supervisor.Do()
	require.Error(t, err)
}
