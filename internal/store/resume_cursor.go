// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package store

import (
	"database/sql"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
)

const resumeCursorTable = "ResumeCursor"

type resumeCursorRow struct {
	Service    string
	Token      string
	History    string
	LastSaved  int64
	MaxHistory int
}

// GetResumeCursor fetches the saved cursor row for service, returning nil
// if none has been persisted yet, satisfying internal/cursorstore.Backend.
func (sqlStore *SQLStore) GetResumeCursor(service string) (*model.ResumeCursor, error) {
	var row resumeCursorRow
	err := sqlStore.getBuilder(sqlStore.db, &row, sq.
		Select("Service", "Token", "History", "LastSaved", "MaxHistory").
		From(resumeCursorTable).
		Where("Service = ?", service),
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get resume cursor")
	}

	cursor := &model.ResumeCursor{
		Service:    row.Service,
		LastSaved:  row.LastSaved,
		MaxHistory: row.MaxHistory,
	}
	if row.Token != "" {
		if err := json.Unmarshal([]byte(row.Token), &cursor.Token); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal resume token")
		}
	}
	if row.History != "" {
		if err := json.Unmarshal([]byte(row.History), &cursor.History); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal resume token history")
		}
	}
	return cursor, nil
}

// UpsertResumeCursor inserts or replaces the cursor row for cursor.Service,
// satisfying internal/cursorstore.Backend.
func (sqlStore *SQLStore) UpsertResumeCursor(cursor *model.ResumeCursor) error {
	token, err := json.Marshal(cursor.Token)
	if err != nil {
		return errors.Wrap(err, "failed to marshal resume token")
	}
	history, err := json.Marshal(cursor.History)
	if err != nil {
		return errors.Wrap(err, "failed to marshal resume token history")
	}

	result, err := sqlStore.execBuilder(sqlStore.db, sq.Update(resumeCursorTable).
		SetMap(map[string]interface{}{
			"Token":      string(token),
			"History":    string(history),
			"LastSaved":  cursor.LastSaved,
			"MaxHistory": cursor.MaxHistory,
		}).
		Where("Service = ?", cursor.Service),
	)
	if err != nil {
		return errors.Wrap(err, "failed to update resume cursor")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to count updated resume cursor rows")
	}
	if rowsAffected > 0 {
		return nil
	}

	_, err = sqlStore.execBuilder(sqlStore.db, sq.Insert(resumeCursorTable).
		SetMap(map[string]interface{}{
			"Service":    cursor.Service,
			"Token":      string(token),
			"History":    string(history),
			"LastSaved":  cursor.LastSaved,
			"MaxHistory": cursor.MaxHistory,
		}),
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert resume cursor")
	}
	return nil
}
