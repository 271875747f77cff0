// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
)

const eventLedgerTable = "EventLedger"

// RecordEventOnce inserts a (sourceID, eventHash) ledger row and reports
// whether this is the first time the pair has been seen. A unique index on
// (SourceID, EventHash) makes the insert itself the race-free check: a
// duplicate change record re-delivered by the upstream feed after a
// reconnect produces a unique-constraint violation rather than a second
// routed event.
func (sqlStore *SQLStore) RecordEventOnce(sourceID, eventHash string) (bool, error) {
	if sourceID == "" || eventHash == "" {
		return true, nil
	}

	_, err := sqlStore.execBuilder(sqlStore.db, sq.Insert(eventLedgerTable).
		SetMap(map[string]interface{}{
			"ID":        model.NewID(),
			"SourceID":  sourceID,
			"EventHash": eventHash,
			"CreateAt":  model.GetMillis(),
		}),
	)
	if err == nil {
		return true, nil
	}
	if isUniqueConstraintViolation(err) {
		return false, nil
	}
	return false, errors.Wrap(err, "failed to record event ledger entry")
}
