// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package supervisor

import (
	"github.com/nine-rivers/hookline/model"
	log "github.com/sirupsen/logrus"
)

// historyRetentionStore abstracts the store operations the history
// retention sweeper needs.
type historyRetentionStore interface {
	DeleteDeliveryHistoryOlderThan(olderThanMillis int64) (int64, error)
}

// HistoryRetentionSupervisor purges delivery history rows past their
// retention window on a schedule.
type HistoryRetentionSupervisor struct {
	store           historyRetentionStore
	retentionMillis int64
	logger          log.FieldLogger
}

// NewHistoryRetentionSupervisor creates a new HistoryRetentionSupervisor.
func NewHistoryRetentionSupervisor(store historyRetentionStore, retentionMillis int64, logger log.FieldLogger) *HistoryRetentionSupervisor {
	return &HistoryRetentionSupervisor{
		store:           store,
		retentionMillis: retentionMillis,
		logger:          logger.WithField("supervisor", "history-retention"),
	}
}

// Do purges delivery history records older than the retention window.
func (s *HistoryRetentionSupervisor) Do() error {
	cutoff := model.GetMillis() - s.retentionMillis
	removed, err := s.store.DeleteDeliveryHistoryOlderThan(cutoff)
	if err != nil {
		s.logger.WithError(err).Error("failed to delete expired delivery history")
		return err
	}
	if removed > 0 {
		s.logger.Debugf("deleted %d expired delivery history records", removed)
	}
	return nil
}

// Shutdown performs graceful shutdown tasks for the history retention
// supervisor.
func (s *HistoryRetentionSupervisor) Shutdown() {
	s.logger.Debug("shutting down history retention supervisor")
}
