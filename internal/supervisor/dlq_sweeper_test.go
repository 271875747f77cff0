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

type fakeDLQExpiryStore struct {
	olderThanMillis int64
	removed         int64
	err             error
}

func (f *fakeDLQExpiryStore) DeleteExpiredDLQEntries(olderThanMillis int64) (int64, error) {
	f.olderThanMillis = olderThanMillis
	return f.removed, f.err
}

func TestDLQExpirySupervisor_Do(t *testing.T) {
	store := &fakeDLQExpiryStore{removed: 3}
	supervisor := NewDLQExpirySupervisor(store, 1000, log.New())

	err := supervisor.Do()
	require.NoError(t, err)
	require.NotZero(t, store.olderThanMillis)
}

func TestDLQExpirySupervisor_DoPropagatesError(t *testing.T) {
	store := &fakeDLQExpiryStore{err: errors.New("boom")}
	supervisor := NewDLQExpirySupervisor(store, 1000, log.New())

	err := supervisor.Do()
	require.Error(t, err)
}
