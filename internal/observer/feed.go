// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

// Package observer tails the upstream change feed from a durable resume
// cursor and hands each change to a sink in feed order. The small
// consumed-interface shape (ChangeFeed, Source, CursorStore, Sink) matches
// the teacher's pattern of narrow store-facing interfaces consumed by one
// component, e.g. internal/events' delivererStore/producerStore.
package observer

import (
	"context"

	"github.com/nine-rivers/hookline/model"
)

// ChangeFeed is a live tail over the upstream change feed.
type ChangeFeed interface {
	// Open starts (or resumes) the feed. resumeAfter is nil to open from
	// the current tail.
	Open(ctx context.Context, resumeAfter model.ResumeToken) error
	// Next blocks until the next change is available, the feed closes
	// (io.EOF-style sentinel via a nil record and nil error is not used;
	// implementations return an error), or ctx is cancelled.
	Next(ctx context.Context) (*model.ChangeRecord, error)
	Close() error
}

// Source is the minimal polling primitive a PollingChangeFeed degrades
// to when no push-based upstream feed is available.
type Source interface {
	// Poll returns any changes made since resumeAfter, and the new
	// cursor position to resume from on the next call.
	Poll(ctx context.Context, resumeAfter model.ResumeToken) ([]*model.ChangeRecord, model.ResumeToken, error)
}
