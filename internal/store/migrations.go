// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package store

import (
	"github.com/blang/semver"
)

type migration struct {
	fromVersion   semver.Version
	toVersion     semver.Version
	migrationFunc func(execer) error
}

// migrations defines the set of migrations necessary to advance the database to the latest
// expected version.
//
// Note that the canonical schema is currently obtained by applying all migrations to an empty
// database.
var migrations = []migration{
	{semver.MustParse("0.0.0"), semver.MustParse("0.1.0"), func(e execer) error {
		_, err := e.Exec(`
			CREATE TABLE System (
				Key VARCHAR(64) PRIMARY KEY,
				Value VARCHAR(1024) NULL
			);
		`)
		if err != nil {
			return err
		}

		_, err = e.Exec(`
			CREATE TABLE Subscriber (
				ID CHAR(26) PRIMARY KEY,
				Name VARCHAR(255) NOT NULL,
				URL VARCHAR(1024) NOT NULL,
				Secret VARCHAR(255) NULL,
				EventTypePatterns TEXT NULL,
				CollectionFilter VARCHAR(128) NULL,
				FilterExpression TEXT NULL,
				RateLimitOverride TEXT NULL,
				BreakerOverride TEXT NULL,
				CustomHeaders TEXT NULL,
				RetryPolicy TEXT NULL,
				Enabled BOOLEAN NOT NULL,
				CreateAt BIGINT NOT NULL,
				UpdateAt BIGINT NOT NULL,
				DeleteAt BIGINT NOT NULL
			);
		`)
		if err != nil {
			return err
		}

		_, err = e.Exec(`
			CREATE TABLE DeliveryAttempt (
				ID CHAR(26) PRIMARY KEY,
				DeliveryID CHAR(36) NOT NULL,
				SubscriberID CHAR(26) NOT NULL,
				EventID CHAR(26) NOT NULL,
				AttemptNumber INTEGER NOT NULL,
				Status VARCHAR(32) NOT NULL,
				HTTPStatus INTEGER NULL,
				ResponseBody TEXT NULL,
				ResponseHeaders TEXT NULL,
				ErrorText TEXT NULL,
				DurationMs BIGINT NOT NULL,
				NextRetryAt BIGINT NOT NULL,
				FinalAttempt BOOLEAN NOT NULL,
				CreateAt BIGINT NOT NULL
			);
		`)
		if err != nil {
			return err
		}

		_, err = e.Exec(`CREATE INDEX IDX_DeliveryAttempt_SubscriberID ON DeliveryAttempt (SubscriberID);`)
		if err != nil {
			return err
		}
		_, err = e.Exec(`CREATE INDEX IDX_DeliveryAttempt_DeliveryID ON DeliveryAttempt (DeliveryID);`)
		if err != nil {
			return err
		}

		_, err = e.Exec(`
			CREATE TABLE DeliveryHistory (
				ID CHAR(26) PRIMARY KEY,
				SubscriberID CHAR(26) NOT NULL,
				EventID CHAR(26) NOT NULL,
				EventType VARCHAR(128) NOT NULL,
				AttemptNumber INTEGER NOT NULL,
				Status VARCHAR(32) NOT NULL,
				HTTPStatus INTEGER NULL,
				DurationMs BIGINT NOT NULL,
				ResponseBody TEXT NULL,
				Compressed BOOLEAN NOT NULL,
				EventEnvelope TEXT NULL,
				CreateAt BIGINT NOT NULL
			);
		`)
		if err != nil {
			return err
		}

		_, err = e.Exec(`CREATE INDEX IDX_DeliveryHistory_SubscriberID_CreateAt ON DeliveryHistory (SubscriberID, CreateAt);`)
		if err != nil {
			return err
		}

		_, err = e.Exec(`
			CREATE TABLE DLQEntry (
				ID CHAR(26) PRIMARY KEY,
				SubscriberID CHAR(26) NOT NULL,
				EventID CHAR(26) NOT NULL,
				EventType VARCHAR(128) NULL,
				DeliveryID CHAR(36) NOT NULL,
				FailureReason TEXT NULL,
				Status VARCHAR(32) NOT NULL,
				OriginalAttemptCount INTEGER NOT NULL,
				RetryCount INTEGER NOT NULL,
				LastRetryResult VARCHAR(32) NULL,
				EventEnvelope TEXT NULL,
				DeadLetteredAt BIGINT NOT NULL
			);
		`)
		if err != nil {
			return err
		}

		_, err = e.Exec(`CREATE INDEX IDX_DLQEntry_SubscriberID ON DLQEntry (SubscriberID);`)
		if err != nil {
			return err
		}
		_, err = e.Exec(`CREATE INDEX IDX_DLQEntry_DeadLetteredAt ON DLQEntry (DeadLetteredAt);`)
		if err != nil {
			return err
		}

		_, err = e.Exec(`
			CREATE TABLE ResumeCursor (
				Service VARCHAR(128) PRIMARY KEY,
				Token TEXT NULL,
				History TEXT NULL,
				LastSaved BIGINT NOT NULL,
				MaxHistory INTEGER NOT NULL
			);
		`)
		if err != nil {
			return err
		}

		_, err = e.Exec(`
			CREATE TABLE EventLedger (
				ID CHAR(26) PRIMARY KEY,
				SourceID VARCHAR(255) NOT NULL,
				EventHash VARCHAR(64) NOT NULL,
				CreateAt BIGINT NOT NULL
			);
		`)
		if err != nil {
			return err
		}

		_, err = e.Exec(`CREATE UNIQUE INDEX IDX_EventLedger_Source_Hash ON EventLedger (SourceID, EventHash);`)
		if err != nil {
			return err
		}

		return nil
	}},
}
