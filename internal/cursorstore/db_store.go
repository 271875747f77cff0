// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package cursorstore

import (
	"sync"

	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Backend is the persistence boundary DBStore delegates to; internal/store
// provides the SQLStore-backed implementation keyed by service identity.
type Backend interface {
	GetResumeCursor(service string) (*model.ResumeCursor, error)
	UpsertResumeCursor(cursor *model.ResumeCursor) error
}

// DBStore is the database-row cursor mode, selectable in place of FileStore
// via configuration. It buffers saves the same way FileStore does and
// delegates the actual write to Backend.
type DBStore struct {
	backend    Backend
	service    string
	maxHistory int
	logger     logrus.FieldLogger

	mu      sync.Mutex
	current model.ResumeCursor
	dirty   bool
}

// NewDBStore returns a DBStore backed by backend.
func NewDBStore(backend Backend, service string, maxHistory int, logger logrus.FieldLogger) *DBStore {
	if maxHistory <= 0 {
		maxHistory = model.DefaultMaxCursorHistory
	}
	return &DBStore{
		backend:    backend,
		service:    service,
		maxHistory: maxHistory,
		logger:     logger.WithField("component", "cursorstore"),
	}
}

// Load returns the saved cursor or a fresh one if none exists yet.
func (d *DBStore) Load() (model.ResumeCursor, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	cursor, err := d.backend.GetResumeCursor(d.service)
	if err != nil {
		return model.ResumeCursor{}, errors.Wrap(err, "cursor_persist_failed: failed to load cursor row")
	}
	if cursor == nil {
		d.current = model.ResumeCursor{Service: d.service, MaxHistory: d.maxHistory}
		return d.current, nil
	}
	cursor.MaxHistory = d.maxHistory
	d.current = *cursor
	return d.current, nil
}

// Save buffers token, flushing immediately when force is true.
func (d *DBStore) Save(token model.ResumeToken, force bool) error {
	d.mu.Lock()
	d.current.Append(token, model.GetMillis())
	d.dirty = true
	d.mu.Unlock()

	if force {
		return d.Flush()
	}
	return nil
}

// Flush writes any pending cursor state to the backend.
func (d *DBStore) Flush() error {
	d.mu.Lock()
	if !d.dirty {
		d.mu.Unlock()
		return nil
	}
	cursor := d.current
	d.mu.Unlock()

	if err := d.backend.UpsertResumeCursor(&cursor); err != nil {
		return errors.Wrap(err, "cursor_persist_failed: failed to upsert cursor row")
	}

	d.mu.Lock()
	d.dirty = false
	d.mu.Unlock()
	return nil
}
