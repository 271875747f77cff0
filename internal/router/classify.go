// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

// Package router transforms a ChangeRecord into an Event and selects the
// subscribers that should receive it. Event-type classification and
// payload transformation are pure functions, grounded on the teacher's
// switch-based state classification idiom (model/cluster_states.go in the
// original tree) and internal/events/producer.go's extra-data conventions.
package router

import "github.com/nine-rivers/hookline/model"

// ClassifyEventType is a pure function of (collection, operation,
// updateDescription) implementing the spec's event-type table.
func ClassifyEventType(collection string, op model.OperationKind, update *model.UpdateDescription) string {
	switch collection {
	case "Issue":
		return classifyIssue(op, update)
	case "Space", "Project":
		return classifyProject(op)
	case "Comment":
		return "comment.created"
	case "Attachment":
		return "attachment.added"
	default:
		return "issue.updated"
	}
}

func classifyIssue(op model.OperationKind, update *model.UpdateDescription) string {
	switch op {
	case model.OperationInsert:
		return "issue.created"
	case model.OperationDelete:
		return "issue.deleted"
	case model.OperationUpdate:
		if hasUpdatedField(update, "status") {
			return "issue.status_changed"
		}
		if hasUpdatedField(update, "assignee") {
			return "issue.assigned"
		}
		return "issue.updated"
	default:
		return "issue.updated"
	}
}

func classifyProject(op model.OperationKind) string {
	switch op {
	case model.OperationInsert:
		return "project.created"
	case model.OperationDelete:
		return "project.archived"
	default:
		return "project.updated"
	}
}

func hasUpdatedField(update *model.UpdateDescription, field string) bool {
	if update == nil {
		return false
	}
	_, ok := update.Updated[field]
	return ok
}
