// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package supervisor

import (
	"github.com/nine-rivers/hookline/model"
	log "github.com/sirupsen/logrus"
)

// dlqExpiryStore abstracts the store operations the DLQ sweeper needs.
type dlqExpiryStore interface {
	DeleteExpiredDLQEntries(olderThanMillis int64) (int64, error)
}

// DLQExpirySupervisor purges dead-lettered entries past their retention
// window on a schedule, the same Doer shape the teacher uses for its
// backup and installation-deletion sweeps.
type DLQExpirySupervisor struct {
	store           dlqExpiryStore
	retentionMillis int64
	logger          log.FieldLogger
}

// NewDLQExpirySupervisor creates a new DLQExpirySupervisor.
func NewDLQExpirySupervisor(store dlqExpiryStore, retentionMillis int64, logger log.FieldLogger) *DLQExpirySupervisor {
	return &DLQExpirySupervisor{
		store:           store,
		retentionMillis: retentionMillis,
		logger:          logger.WithField("supervisor", "dlq-expiry"),
	}
}

// Do purges DLQ entries dead-lettered before the retention window.
func (s *DLQExpirySupervisor) Do() error {
	cutoff := model.GetMillis() - s.retentionMillis
	removed, err := s.store.DeleteExpiredDLQEntries(cutoff)
	if err != nil {
		s.logger.WithError(err).Error("failed to delete expired dlq entries")
		return err
	}
	if removed > 0 {
		s.logger.Debugf("deleted %d expired dlq entries", removed)
	}
	return nil
}

// Shutdown performs graceful shutdown tasks for the DLQ expiry supervisor.
func (s *DLQExpirySupervisor) Shutdown() {
	s.logger.Debug("shutting down dlq expiry supervisor")
}
