package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cognitive-pathways/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []domain.Question {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return []domain.Question{
		{ID: "q1", Category: domain.CategoryCareer, Question: "Favourite subject?", Options: []string{"Maths", "Art"}, CreatedAt: created},
		{ID: "q2", Category: domain.CategoryCareer, Question: "Work style?", Options: []string{"Team", "Solo"}, CreatedAt: created},
	}
}

func TestRedisQuestionCache_PutThenGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	qc := NewRedisQuestionCache(NewRedisCacheAdapter(db), 15*time.Minute)
	ctx := context.Background()
	key := "cognitivepathways:quiz:questions:career"

	questions := sampleQuestions()
	payload, err := json.Marshal(questions)
	require.NoError(t, err)

	mock.ExpectSet(key, string(payload), 15*time.Minute).SetVal("OK")
	qc.Put(ctx, domain.CategoryCareer, questions)

	mock.ExpectGet(key).SetVal(string(payload))
	got, ok := qc.Get(ctx, domain.CategoryCareer)
	assert.True(t, ok)
	assert.Equal(t, questions, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisQuestionCache_PutEmptyIsNotStored(t *testing.T) {
	db, mock := redismock.NewClientMock()
	qc := NewRedisQuestionCache(NewRedisCacheAdapter(db), time.Minute)

	qc.Put(context.Background(), domain.CategoryFoundational, nil)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisQuestionCache_GetMissAndError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	qc := NewRedisQuestionCache(NewRedisCacheAdapter(db), time.Minute)
	ctx := context.Background()
	key := "cognitivepathways:quiz:questions:foundational"

	mock.ExpectGet(key).SetErr(redis.Nil)
	_, ok := qc.Get(ctx, domain.CategoryFoundational)
	assert.False(t, ok)

	mock.ExpectGet(key).SetErr(errors.New("i/o timeout"))
	_, ok = qc.Get(ctx, domain.CategoryFoundational)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisQuestionCache_GetCorruptEntryIsEvicted(t *testing.T) {
	db, mock := redismock.NewClientMock()
	qc := NewRedisQuestionCache(NewRedisCacheAdapter(db), time.Minute)
	ctx := context.Background()
	key := "cognitivepathways:quiz:questions:career"

	mock.ExpectGet(key).SetVal("{not json")
	mock.ExpectDel(key).SetVal(1)

	_, ok := qc.Get(ctx, domain.CategoryCareer)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisQuestionCache_InvalidateAllAndKeys(t *testing.T) {
	db, mock := redismock.NewClientMock()
	qc := NewRedisQuestionCache(NewRedisCacheAdapter(db), time.Minute)
	ctx := context.Background()
	pattern := "cognitivepathways:quiz:questions:*"
	keys := []string{"cognitivepathways:quiz:questions:career", "cognitivepathways:quiz:questions:foundational"}

	mock.ExpectScan(0, pattern, scanBatchSize).SetVal(keys, 0)
	assert.ElementsMatch(t, []string{"career", "foundational"}, qc.Keys(ctx))

	mock.ExpectScan(0, pattern, scanBatchSize).SetVal(keys, 0)
	mock.ExpectDel(keys...).SetVal(2)
	qc.InvalidateAll(ctx)

	mock.ExpectDel("cognitivepathways:quiz:questions:career").SetVal(1)
	qc.Invalidate(ctx, domain.CategoryCareer)

	assert.NoError(t, mock.ExpectationsWereMet())
}
