// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package filter

import (
	"sync"

	"github.com/nine-rivers/hookline/model"
	"github.com/sirupsen/logrus"
)

// Engine compiles subscriber filter expressions and evaluates them against
// events, caching compiled expressions by their source text so a hot
// expression shared by many subscribers is tokenized and parsed once.
type Engine struct {
	logger logrus.FieldLogger
	cache  sync.Map // expression text -> *compiled

	loggedCompileFailures sync.Map // expression text -> struct{}
}

// NewEngine returns a ready-to-use filter engine.
func NewEngine(logger logrus.FieldLogger) *Engine {
	return &Engine{
		logger: logger.WithField("component", "filter"),
	}
}

// Compile parses and caches expr, returning an error if the expression is
// malformed. Calling Compile ahead of Evaluate lets a caller validate a
// subscriber's expression at write time; Evaluate itself also compiles
// on-demand.
func (e *Engine) Compile(expr string) error {
	_, err := e.compileCached(expr)
	return err
}

func (e *Engine) compileCached(expr string) (*compiled, error) {
	if v, ok := e.cache.Load(expr); ok {
		return v.(*compiled), nil
	}

	root, err := parseExpression(expr)
	if err != nil {
		if _, already := e.loggedCompileFailures.LoadOrStore(expr, struct{}{}); !already {
			e.logger.WithError(err).WithField("expression", expr).Error("filter_compile_failed")
		}
		return nil, err
	}

	c := compileNode(root)
	e.cache.Store(expr, c)
	return c, nil
}

// Evaluate reports whether event matches expr. An empty expression always
// matches. Any compilation or evaluation error causes the event to be
// rejected for that subscriber (fail closed), per the filter engine's
// stated error policy — the error is returned for logging by the caller
// but must never be treated as "match".
func (e *Engine) Evaluate(expr string, event *model.Event) (bool, error) {
	if expr == "" {
		return true, nil
	}

	c, err := e.compileCached(expr)
	if err != nil {
		return false, err
	}

	root := eventToTree(event)
	matched, err := c.eval(root)
	if err != nil {
		e.logger.WithError(err).WithField("expression", expr).Debug("filter_eval_failed")
		return false, err
	}
	return matched, nil
}

// eventToTree builds the map the filter expression's dotted paths resolve
// against: the same shape as the event's wire envelope, so an expression
// like "data.priority == \"high\"" is written exactly how it reads.
func eventToTree(event *model.Event) map[string]interface{} {
	data := make(map[string]interface{}, len(event.Payload))
	for k, v := range event.Payload {
		data[k] = v
	}
	changes := make(map[string]interface{}, len(event.Changes))
	for k, v := range event.Changes {
		changes[k] = v
	}
	return map[string]interface{}{
		"id":        event.ID,
		"type":      event.Type,
		"workspace": event.Workspace,
		"data":      data,
		"changes":   changes,
	}
}
