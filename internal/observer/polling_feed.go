// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package observer

import (
	"context"
	"time"

	"github.com/nine-rivers/hookline/model"
)

// DefaultPollInterval is how often PollingChangeFeed asks Source for new
// changes when no push-based feed is available.
const DefaultPollInterval = 2 * time.Second

// PollingChangeFeed adapts a Source into a ChangeFeed by polling it on an
// interval and draining each batch through Next one record at a time.
type PollingChangeFeed struct {
	source       Source
	pollInterval time.Duration

	resumeAfter model.ResumeToken
	buffered    []*model.ChangeRecord
}

// NewPollingChangeFeed returns a PollingChangeFeed over source. A
// pollInterval of 0 uses DefaultPollInterval.
func NewPollingChangeFeed(source Source, pollInterval time.Duration) *PollingChangeFeed {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &PollingChangeFeed{source: source, pollInterval: pollInterval}
}

// Open records the resume position; polling begins on the first Next call.
func (p *PollingChangeFeed) Open(ctx context.Context, resumeAfter model.ResumeToken) error {
	p.resumeAfter = resumeAfter
	p.buffered = nil
	return nil
}

// Next returns the next buffered record, polling Source again once the
// buffer is drained.
func (p *PollingChangeFeed) Next(ctx context.Context) (*model.ChangeRecord, error) {
	for len(p.buffered) == 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.pollInterval):
		}

		changes, next, err := p.source.Poll(ctx, p.resumeAfter)
		if err != nil {
			return nil, err
		}
		p.resumeAfter = next
		p.buffered = changes
	}

	record := p.buffered[0]
	p.buffered = p.buffered[1:]
	return record, nil
}

// Close is a no-op; Source owns its own connection lifecycle.
func (p *PollingChangeFeed) Close() error {
	return nil
}
