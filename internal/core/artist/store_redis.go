// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eventfulindia/eventful/internal/platform/apperr"
	"github.com/eventfulindia/eventful/internal/platform/constants"
)

// # Redis Criteria Store

// RedisCriteriaStore keeps saved criteria as JSON under artist:criteria:<userID>.
// Every save refreshes the expiry.
type RedisCriteriaStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCriteriaStore(client *redis.Client) *RedisCriteriaStore {
	return &RedisCriteriaStore{client: client, ttl: constants.CriteriaTTL}
}

func (store *RedisCriteriaStore) Get(context context.Context, userID string) (Criteria, error) {
	raw, err := store.client.Get(context, criteriaKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return DefaultCriteria(), nil
	}
	if err != nil {
		return Criteria{}, apperr.Internal(err)
	}

	criteria := DefaultCriteria()
	if err := json.Unmarshal(raw, &criteria); err != nil {
		return Criteria{}, apperr.Internal(err)
	}
	return criteria.Merge(CriteriaPatch{}), nil
}

func (store *RedisCriteriaStore) Save(context context.Context, userID string, criteria Criteria) error {
	raw, err := json.Marshal(criteria)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := store.client.Set(context, criteriaKey(userID), raw, store.ttl).Err(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func criteriaKey(userID string) string {
	return constants.RedisPrefixCriteria + userID
}
