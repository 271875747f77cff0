// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package store

import (
	"testing"

	"github.com/nine-rivers/hookline/model"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSubscriberStore_CreateGetUpdateDelete(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	sub := &model.Subscriber{
		Name:              "issue-tracker",
		URL:               "https://example.com/hooks",
		Secret:            "topsecret",
		EventTypePatterns: model.StringSet{"issue.*"},
		CustomHeaders:     model.Headers{"X-Team": "platform"},
		RetryPolicy:       model.DefaultRetryPolicy(),
		Enabled:           true,
		RateLimitOverride: &model.RateLimitOverride{MaxRequests: 10},
		BreakerOverride:   &model.BreakerOverride{FailureThreshold: 5},
	}

	err := sqlStore.CreateSubscriber(sub)
	require.NoError(t, err)
	require.NotEmpty(t, sub.ID)
	require.NotZero(t, sub.CreateAt)

	fetched, err := sqlStore.GetSubscriber(sub.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, sub.Name, fetched.Name)
	require.Equal(t, sub.URL, fetched.URL)
	require.Equal(t, model.StringSet{"issue.*"}, fetched.EventTypePatterns)
	require.Equal(t, "platform", fetched.CustomHeaders["X-Team"])
	require.NotNil(t, fetched.RateLimitOverride)
	require.Equal(t, 10, fetched.RateLimitOverride.MaxRequests)
	require.NotNil(t, fetched.BreakerOverride)
	require.Equal(t, 5, fetched.BreakerOverride.FailureThreshold)

	fetched.URL = "https://example.com/hooks/v2"
	fetched.Enabled = false
	err = sqlStore.UpdateSubscriber(fetched)
	require.NoError(t, err)

	updated, err := sqlStore.GetSubscriber(sub.ID)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/hooks/v2", updated.URL)
	require.False(t, updated.Enabled)

	err = sqlStore.DeleteSubscriber(sub.ID)
	require.NoError(t, err)

	deleted, err := sqlStore.GetSubscriber(sub.ID)
	require.NoError(t, err)
	require.True(t, deleted.IsDeleted())
}

func TestSubscriberStore_GetSubscribersFiltersEnabled(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	enabled := &model.Subscriber{Name: "a", URL: "https://a.example.com", Enabled: true}
	disabled := &model.Subscriber{Name: "b", URL: "https://b.example.com", Enabled: false}
	require.NoError(t, sqlStore.CreateSubscriber(enabled))
	require.NoError(t, sqlStore.CreateSubscriber(disabled))

	all, err := sqlStore.GetSubscribers(&model.SubscriberFilter{Paging: model.AllPagesNotDeleted()})
	require.NoError(t, err)
	require.Len(t, all, 2)

	onlyEnabled, err := sqlStore.GetSubscribers(&model.SubscriberFilter{
		EnabledOnly: true,
		Paging:      model.AllPagesNotDeleted(),
	})
	require.NoError(t, err)
	require.Len(t, onlyEnabled, 1)
	require.Equal(t, enabled.ID, onlyEnabled[0].ID)
}

func TestSubscriberStore_GetSubscriberNotFound(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	sub, err := sqlStore.GetSubscriber(model.NewID())
	require.NoError(t, err)
	require.Nil(t, sub)
}
