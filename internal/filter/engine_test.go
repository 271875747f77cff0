// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package filter

import (
	"testing"

	"github.com/nine-rivers/hookline/model"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testEvent() *model.Event {
	return &model.Event{
		ID:        "evt1",
		Type:      "issue.status_changed",
		Workspace: "ws1",
		Payload: model.StringMap{
			"id":       "issue-1",
			"title":    "Something broke",
			"priority": "high",
			"status":   "InProgress",
		},
		Changes: model.StringMap{
			"status": map[string]interface{}{"to": "InProgress"},
		},
	}
}

func TestEngine_Evaluate(t *testing.T) {
	e := NewEngine(logrus.New())
	event := testEvent()

	cases := []struct {
		name    string
		expr    string
		want    bool
		wantErr bool
	}{
		{name: "empty matches everything", expr: "", want: true},
		{name: "equality case-insensitive", expr: `data.priority == "HIGH"`, want: true},
		{name: "or short circuit", expr: `data.priority == "low" || data.priority == "high"`, want: true},
		{name: "and both must hold", expr: `data.priority == "high" && data.status == "InProgress"`, want: true},
		{name: "and fails", expr: `data.priority == "high" && data.status == "Done"`, want: false},
		{name: "not", expr: `!(data.priority == "low")`, want: true},
		{name: "contains", expr: `data.title contains "broke"`, want: true},
		{name: "startsWith", expr: `type startsWith "issue."`, want: true},
		{name: "in list", expr: `data.priority in ["low", "high"]`, want: true},
		{name: "notIn list", expr: `data.priority notIn ["low", "medium"]`, want: true},
		{name: "exists", expr: `data.priority exists`, want: true},
		{name: "notExists on missing field", expr: `data.missingfield notExists`, want: true},
		{name: "matches regex", expr: `data.title matches "^something"`, want: true},
		{name: "nested changes path", expr: `changes.status.to == "InProgress"`, want: true},
		{name: "numeric comparison", expr: `length(data.title) > 5`, want: true},
		{name: "unknown function fails closed", expr: `bogus(data.title) == "x"`, want: false, wantErr: true},
		{name: "malformed expression fails closed", expr: `data.priority ==`, want: false, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.Evaluate(tc.expr, event)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestEngine_CompileIsIdempotent(t *testing.T) {
	e := NewEngine(logrus.New())
	expr := `data.priority == "high"`

	require.NoError(t, e.Compile(expr))
	c1, err := e.compileCached(expr)
	require.NoError(t, err)
	c2, err := e.compileCached(expr)
	require.NoError(t, err)

	event := testEvent()
	tree := eventToTree(event)
	r1, err := c1.eval(tree)
	require.NoError(t, err)
	r2, err := c2.eval(tree)
	require.NoError(t, err)
	require.Equal(t, r1, r2)
}

func TestEngine_WildcardSubscriberMatching(t *testing.T) {
	sub := &model.Subscriber{
		EventTypePatterns: model.StringSet{"issue.*"},
	}
	require.True(t, sub.MatchesEventType("issue.created"))
	require.True(t, sub.MatchesEventType("issue.status_changed"))
	require.False(t, sub.MatchesEventType("project.created"))
}
