// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package router

import "github.com/nine-rivers/hookline/model"

// domainFields are the fields surfaced from a full document into an
// event's payload, per the spec's payload-transformation rule.
var domainFields = []string{
	"id", "title", "description", "status", "priority", "assignee",
	"project", "createdAt", "modifiedAt",
}

// TransformPayload builds an event's data payload from a ChangeRecord. For
// a delete, it returns the minimal {id, deleted: true} shape; otherwise it
// surfaces the fixed set of domain fields present in the full document.
func TransformPayload(change *model.ChangeRecord) model.StringMap {
	if change.Operation == model.OperationDelete {
		return model.StringMap{
			"id":      change.DocumentKey,
			"deleted": true,
		}
	}

	payload := model.StringMap{}
	for _, field := range domainFields {
		if v, ok := change.FullDocument[field]; ok {
			payload[field] = v
		}
	}
	if _, ok := payload["id"]; !ok && change.DocumentKey != "" {
		payload["id"] = change.DocumentKey
	}
	return payload
}

// TransformChanges derives an event's "changes" map from an update
// description: each updated field becomes {to: newValue}, each removed
// field becomes {removed: true}.
func TransformChanges(update *model.UpdateDescription) model.StringMap {
	if update == nil {
		return nil
	}
	changes := model.StringMap{}
	for field, value := range update.Updated {
		changes[field] = map[string]interface{}{"to": value}
	}
	for _, field := range update.Removed {
		changes[field] = map[string]interface{}{"removed": true}
	}
	return changes
}
