package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementHit_CreatesAtOne(t *testing.T) {
	ctx := context.Background()
	repo := NewPatternRepository()
	categoryID := uuid.New()

	require.NoError(t, repo.IncrementHit(ctx, "netflix monthly", categoryID))

	patterns, err := repo.GetBySignature(ctx, "netflix monthly")
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, 1, patterns[0].HitCount)
	assert.Equal(t, categoryID, patterns[0].CategoryID)
	assert.False(t, patterns[0].LastSeenAt.IsZero())
}

func TestGetBySignature_OrdersByHitCount(t *testing.T) {
	ctx := context.Background()
	repo := NewPatternRepository()
	weak, strong := uuid.New(), uuid.New()

	require.NoError(t, repo.IncrementHit(ctx, "acme corp", weak))
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.IncrementHit(ctx, "acme corp", strong))
	}

	patterns, err := repo.GetBySignature(ctx, "acme corp")
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, strong, patterns[0].CategoryID)
	assert.Equal(t, 5, patterns[0].HitCount)
	assert.Equal(t, 1, patterns[1].HitCount)
}

func TestGetBySignature_UnknownSignature(t *testing.T) {
	repo := NewPatternRepository()

	patterns, err := repo.GetBySignature(context.Background(), "nothing here")

	require.NoError(t, err)
	assert.Empty(t, patterns)
}

func TestIncrementHit_ConcurrentIncrementsAllCount(t *testing.T) {
	ctx := context.Background()
	repo := NewPatternRepository()
	categoryID := uuid.New()

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.IncrementHit(ctx, "rewe supermarket", categoryID))
		}()
	}
	wg.Wait()

	patterns, err := repo.GetBySignature(ctx, "rewe supermarket")
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, workers, patterns[0].HitCount)
}
