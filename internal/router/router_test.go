// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package router

import (
	"testing"

	"github.com/nine-rivers/hookline/model"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestClassifyEventType_StatusChange(t *testing.T) {
	update := &model.UpdateDescription{Updated: map[string]interface{}{"status": "InProgress"}}
	require.Equal(t, "issue.status_changed", ClassifyEventType("Issue", model.OperationUpdate, update))
}

func TestClassifyEventType_Fallback(t *testing.T) {
	require.Equal(t, "issue.updated", ClassifyEventType("Unknown", model.OperationUpdate, nil))
}

func TestTransformPayload_Delete(t *testing.T) {
	change := &model.ChangeRecord{
		Operation:   model.OperationDelete,
		Namespace:   model.Namespace{Collection: "Issue"},
		DocumentKey: "X",
	}
	payload := TransformPayload(change)
	require.Equal(t, "X", payload["id"])
	require.Equal(t, true, payload["deleted"])
}

func TestTransformChanges(t *testing.T) {
	update := &model.UpdateDescription{
		Updated: map[string]interface{}{"status": "InProgress"},
		Removed: []string{"assignee"},
	}
	changes := TransformChanges(update)
	require.Equal(t, map[string]interface{}{"to": "InProgress"}, changes["status"])
	require.Equal(t, map[string]interface{}{"removed": true}, changes["assignee"])
}

type fakeSubscriberSource struct {
	subs []*model.Subscriber
}

func (f *fakeSubscriberSource) Snapshot() []*model.Subscriber { return f.subs }

type fakeFilter struct{}

func (fakeFilter) Evaluate(expr string, event *model.Event) (bool, error) {
	if expr == "" {
		return true, nil
	}
	return event.Payload["priority"] == "high", nil
}

func TestRouter_WildcardAndFilterMatching(t *testing.T) {
	subs := &fakeSubscriberSource{subs: []*model.Subscriber{
		{ID: "s1", Enabled: true, EventTypePatterns: model.StringSet{"issue.*"}},
		{ID: "s2", Enabled: true, EventTypePatterns: model.StringSet{"issue.*"}, FilterExpression: "data.priority == high"},
		{ID: "s3", Enabled: true, EventTypePatterns: model.StringSet{"project.*"}},
		{ID: "s4", Enabled: false, EventTypePatterns: model.StringSet{"issue.*"}},
	}}
	r := New(subs, fakeFilter{}, "ws1", logrus.New())

	change := &model.ChangeRecord{
		Operation:    model.OperationUpdate,
		Namespace:    model.Namespace{Collection: "Issue"},
		DocumentKey:  "issue-1",
		FullDocument: map[string]interface{}{"id": "issue-1", "priority": "high"},
		UpdateDescription: &model.UpdateDescription{
			Updated: map[string]interface{}{"status": "InProgress"},
		},
	}

	event, matched := r.Route(change)
	require.Equal(t, "issue.status_changed", event.Type)
	require.Len(t, matched, 2)
	require.Equal(t, "s1", matched[0].ID)
	require.Equal(t, "s2", matched[1].ID)
}

func TestRouter_DeleteTransform(t *testing.T) {
	subs := &fakeSubscriberSource{}
	r := New(subs, fakeFilter{}, "ws1", logrus.New())

	change := &model.ChangeRecord{
		Operation:   model.OperationDelete,
		Namespace:   model.Namespace{Collection: "Issue"},
		DocumentKey: "X",
	}
	event, matched := r.Route(change)
	require.Equal(t, "issue.deleted", event.Type)
	require.Empty(t, matched)
	require.Equal(t, "X", event.Payload["id"])
	require.Equal(t, true, event.Payload["deleted"])
}
