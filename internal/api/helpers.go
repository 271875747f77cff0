// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// outputJSON encodes obj as the response body, logging (but not failing)
// if the client disconnected mid-write.
func outputJSON(logger logrus.FieldLogger, w http.ResponseWriter, obj interface{}) {
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		logger.WithError(err).Warn("failed to write json response")
	}
}

func parseString(u *url.URL, name, defaultValue string) string {
	value := u.Query().Get(name)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseInt(u *url.URL, name string, defaultValue int) (int, error) {
	value := u.Query().Get(name)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse %s as integer", name)
	}
	return parsed, nil
}

func parseInt64(u *url.URL, name string, defaultValue int64) (int64, error) {
	value := u.Query().Get(name)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse %s as integer", name)
	}
	return parsed, nil
}

func parsePaging(u *url.URL) (model.Paging, error) {
	page, err := parseInt(u, "page", 0)
	if err != nil {
		return model.Paging{}, err
	}
	perPage, err := parseInt(u, "per_page", 100)
	if err != nil {
		return model.Paging{}, err
	}
	return model.Paging{Page: page, PerPage: perPage}, nil
}

func parseDLQFilter(u *url.URL) (model.DLQFilter, error) {
	paging, err := parsePaging(u)
	if err != nil {
		return model.DLQFilter{}, err
	}
	from, err := parseInt64(u, "from_millis", 0)
	if err != nil {
		return model.DLQFilter{}, err
	}
	to, err := parseInt64(u, "to_millis", 0)
	if err != nil {
		return model.DLQFilter{}, err
	}
	return model.DLQFilter{
		SubscriberID: parseString(u, "subscriber_id", ""),
		EventType:    parseString(u, "event_type", ""),
		Status:       model.DLQStatus(parseString(u, "status", "")),
		FromMillis:   from,
		ToMillis:     to,
		Paging:       paging,
	}, nil
}
