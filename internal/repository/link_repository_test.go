package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

func TestUserSkillDuplicatePair(t *testing.T) {
	ctx := context.Background()
	links := NewUserSkillRepository()

	first, err := links.Add(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	_, err = links.Add(ctx, 1, 7)
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeAlreadyExists))

	list, _ := links.ListByUser(ctx, 1)
	require.Len(t, list, 1)
	assert.Equal(t, int64(7), list[0].SkillID)
}

func TestConcurrentAddsInsertOnce(t *testing.T) {
	ctx := context.Background()
	links := NewGigSkillRepository()

	var wg sync.WaitGroup
	var mu sync.Mutex
	inserted := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := links.Add(ctx, 3, 3); err == nil {
				mu.Lock()
				inserted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, inserted)
	list, _ := links.ListByGig(ctx, 3)
	assert.Len(t, list, 1)
}

func TestLinkRemoveAndScan(t *testing.T) {
	ctx := context.Background()
	links := NewGigSkillRepository()

	_, _ = links.Add(ctx, 1, 10)
	_, _ = links.Add(ctx, 2, 10)
	_, _ = links.Add(ctx, 1, 11)

	bySkill, _ := links.ListBySkill(ctx, 10)
	assert.Len(t, bySkill, 2)

	removed, err := links.Remove(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, _ = links.Remove(ctx, 1, 10)
	assert.False(t, removed)

	byGig, _ := links.ListByGig(ctx, 1)
	require.Len(t, byGig, 1)
	assert.Equal(t, int64(11), byGig[0].SkillID)

	again, err := links.Add(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(4), again.ID, "link ids are never reused")
}
