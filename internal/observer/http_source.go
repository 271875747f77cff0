// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package observer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
)

// httpSourceTimeout bounds one poll round trip, the same per-request
// timeout shape the dispatcher applies to outbound deliveries.
const httpSourceTimeout = 15 * time.Second

// pollResponse is the wire shape a feed endpoint is expected to answer
// with: a batch of changes plus the cursor to resume from on the next
// call. The upstream change feed connector itself (translating a
// replicated document store's native resumable feed into this shape) is
// out of scope; this is only the polling transport boundary a deployment
// points at its own feed-adapter service.
type pollResponse struct {
	Changes []*model.ChangeRecord `json:"changes"`
	Cursor  model.ResumeToken      `json:"cursor"`
}

// HTTPSource is a Source that polls a single HTTP endpoint for new
// changes, POSTing the resume token it was given and decoding a
// pollResponse back. Grounded on the dispatcher's own http.Client usage
// (internal/dispatcher/request.go): a bounded-timeout client, JSON body in
// and out, no connection pooling beyond what http.Client already does.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource returns an HTTPSource polling url.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: httpSourceTimeout},
	}
}

// Poll asks the feed endpoint for changes since resumeAfter.
func (s *HTTPSource) Poll(ctx context.Context, resumeAfter model.ResumeToken) ([]*model.ChangeRecord, model.ResumeToken, error) {
	body, err := json.Marshal(resumeAfter)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to marshal resume token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to build poll request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, errors.Wrap(err, "poll request failed")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, errors.Errorf("poll endpoint returned status %d", resp.StatusCode)
	}

	var decoded pollResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, nil, errors.Wrap(err, "failed to decode poll response")
	}

	next := decoded.Cursor
	if next == nil {
		next = resumeAfter
	}
	return decoded.Changes, next, nil
}
