package service

import (
	"context"
	"testing"

	"study_boost_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGuardRejectsSecondSubmission(t *testing.T) {
	ctx := context.Background()
	guard := NewMemoryGuard()

	ok, err := guard.Acquire(ctx, "u1", util.FeatureQuiz)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = guard.Acquire(ctx, "u1", util.FeatureQuiz)
	assert.False(t, ok)

	// 其他功能与其他用户互不影响
	ok, _ = guard.Acquire(ctx, "u1", util.FeatureFlashcards)
	assert.True(t, ok)
	ok, _ = guard.Acquire(ctx, "u2", util.FeatureQuiz)
	assert.True(t, ok)

	guard.Release(ctx, "u1", util.FeatureQuiz)
	ok, _ = guard.Acquire(ctx, "u1", util.FeatureQuiz)
	assert.True(t, ok)
}

func TestRunGuarded(t *testing.T) {
	ctx := context.Background()
	guard := NewMemoryGuard()

	var inner error
	err := runGuarded(ctx, guard, "u1", util.FeaturePlan, func() error {
		inner = runGuarded(ctx, guard, "u1", util.FeaturePlan, func() error { return nil })
		return nil
	})
	require.NoError(t, err)
	assert.ErrorIs(t, inner, util.ErrRequestInFlight)

	// fn 返回后守卫已释放
	err = runGuarded(ctx, guard, "u1", util.FeaturePlan, func() error { return nil })
	assert.NoError(t, err)
}
