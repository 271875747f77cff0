// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package router

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/nine-rivers/hookline/model"
	"github.com/sirupsen/logrus"
)

// FilterEvaluator is the subset of internal/filter.Engine the router
// depends on, kept as a small interface so the router can be tested
// without compiling the expression engine.
type FilterEvaluator interface {
	Evaluate(expr string, event *model.Event) (bool, error)
}

// SubscriberSource returns the read-only snapshot of enabled subscribers
// the router selects against. Ownership of the underlying registry is
// external to the core, per spec.
type SubscriberSource interface {
	Snapshot() []*model.Subscriber
}

// Router classifies ChangeRecords into Events and selects matching
// subscribers, in feed order.
type Router struct {
	subscribers SubscriberSource
	filters     FilterEvaluator
	workspace   string
	logger      logrus.FieldLogger
}

// New builds a Router. workspace is the tenant identifier stamped onto
// every derived Event.
func New(subscribers SubscriberSource, filters FilterEvaluator, workspace string, logger logrus.FieldLogger) *Router {
	return &Router{
		subscribers: subscribers,
		filters:     filters,
		workspace:   workspace,
		logger:      logger.WithField("component", "router"),
	}
}

// Route derives one Event from change and returns it alongside the ordered
// list of subscribers it matches.
func (r *Router) Route(change *model.ChangeRecord) (*model.Event, []*model.Subscriber) {
	eventType := ClassifyEventType(change.Namespace.Collection, change.Operation, change.UpdateDescription)

	event := &model.Event{
		ID:        model.NewID(),
		Type:      eventType,
		Workspace: r.workspace,
		CreateAt:  model.GetMillis(),
		Payload:   TransformPayload(change),
		Changes:   TransformChanges(change.UpdateDescription),
	}
	event.SourceID = change.DocumentKey
	event.EventHash = hashEvent(event)

	var matched []*model.Subscriber
	for _, sub := range r.subscribers.Snapshot() {
		if r.matches(sub, change, event) {
			matched = append(matched, sub)
		}
	}
	return event, matched
}

// matches implements the subscriber selection rule: enabled AND type
// pattern matches AND collection filter (if any) passes AND custom filter
// expression (if any) evaluates true. Any filter evaluation error rejects
// the event for that subscriber (fail closed).
func (r *Router) matches(sub *model.Subscriber, change *model.ChangeRecord, event *model.Event) bool {
	if !sub.Enabled || sub.IsDeleted() {
		return false
	}
	if !sub.MatchesEventType(event.Type) {
		return false
	}
	if sub.CollectionFilter != "" && sub.CollectionFilter != change.Namespace.Collection {
		return false
	}
	if sub.FilterExpression == "" {
		return true
	}
	ok, err := r.filters.Evaluate(sub.FilterExpression, event)
	if err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"subscriber": sub.ID,
			"event":      event.ID,
		}).Debug("filter_eval_failed, rejecting event for subscriber")
		return false
	}
	return ok
}

// hashEvent computes the canonical-JSON sha256 backing the events ledger's
// (sourceId, eventHash) dedup index.
func hashEvent(event *model.Event) string {
	canonical, err := json.Marshal(struct {
		Type    string          `json:"type"`
		Payload model.StringMap `json:"data"`
		Changes model.StringMap `json:"changes"`
	}{Type: event.Type, Payload: event.Payload, Changes: event.Changes})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}
