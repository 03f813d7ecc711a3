package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seuhd/campus-coffee/internal/core/domain"
)

func testPos(name string) domain.Pos {
	return domain.Pos{
		Name:        name,
		Description: "A cafe in Heidelberg",
		Type:        domain.PosTypeCafe,
		Campus:      domain.CampusAltstadt,
		Street:      "Hauptstraße",
		HouseNumber: "1",
		PostalCode:  69117,
		City:        "Heidelberg",
	}
}

func TestNewPosStore(t *testing.T) {
	store := NewPosStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.pos)
	assert.NotNil(t, store.clock)
}

func TestPosStore_Create_Success(t *testing.T) {
	store := NewPosStore()
	ctx := context.Background()

	created, err := store.Create(ctx, testPos("Rada Coffee"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Rada Coffee", created.Name)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	// Verify it was stored
	saved, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *saved)
}

func TestPosStore_Create_AssignsSequentialIDs(t *testing.T) {
	store := NewPosStore()
	ctx := context.Background()

	first, err := store.Create(ctx, testPos("First"))
	require.NoError(t, err)
	second, err := store.Create(ctx, testPos("Second"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestPosStore_Create_DuplicateName(t *testing.T) {
	store := NewPosStore()
	ctx := context.Background()

	_, err := store.Create(ctx, testPos("Rada Coffee"))
	require.NoError(t, err)

	_, err = store.Create(ctx, testPos("Rada Coffee"))
	assert.ErrorIs(t, err, domain.ErrDuplicatePosName)

	// First writer wins, nothing else persisted
	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPosStore_Create_StampsClockTime(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	store := NewPosStoreWithClock(clock)
	ctx := context.Background()

	created, err := store.Create(ctx, testPos("Rada Coffee"))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), created.CreatedAt)
}

func TestPosStore_Update_Success(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	store := NewPosStoreWithClock(clock)
	ctx := context.Background()

	created, err := store.Create(ctx, testPos("Rada Coffee"))
	require.NoError(t, err)

	clock.Advance(time.Hour)

	changed := *created
	changed.Description = "Now with more roast"
	updated, err := store.Update(ctx, changed)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Now with more roast", updated.Description)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, created.CreatedAt.Add(time.Hour), updated.UpdatedAt)
}

func TestPosStore_Update_NotFound(t *testing.T) {
	store := NewPosStore()
	ctx := context.Background()

	pos := testPos("Ghost")
	pos.ID = 99

	_, err := store.Update(ctx, pos)
	assert.ErrorIs(t, err, domain.ErrPosNotFound)
}

func TestPosStore_Update_DuplicateName(t *testing.T) {
	store := NewPosStore()
	ctx := context.Background()

	_, err := store.Create(ctx, testPos("Rada Coffee"))
	require.NoError(t, err)
	second, err := store.Create(ctx, testPos("Backhaus"))
	require.NoError(t, err)

	second.Name = "Rada Coffee"
	_, err = store.Update(ctx, *second)
	assert.ErrorIs(t, err, domain.ErrDuplicatePosName)
}

func TestPosStore_Update_KeepingOwnNameSucceeds(t *testing.T) {
	store := NewPosStore()
	ctx := context.Background()

	created, err := store.Create(ctx, testPos("Rada Coffee"))
	require.NoError(t, err)

	created.Description = "Fresh beans daily"
	_, err = store.Update(ctx, *created)
	assert.NoError(t, err)
}

func TestPosStore_GetByID_NotFound(t *testing.T) {
	store := NewPosStore()
	ctx := context.Background()

	_, err := store.GetByID(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrPosNotFound)
}

func TestPosStore_GetAll_OrderedByID(t *testing.T) {
	store := NewPosStore()
	ctx := context.Background()

	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		_, err := store.Create(ctx, testPos(name))
		require.NoError(t, err)
	}

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Charlie", all[0].Name)
	assert.Equal(t, "Alpha", all[1].Name)
	assert.Equal(t, "Bravo", all[2].Name)
}

func TestPosStore_GetAll_Empty(t *testing.T) {
	store := NewPosStore()
	ctx := context.Background()

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NotNil(t, all)
}

func TestPosStore_Clear(t *testing.T) {
	store := NewPosStore()
	ctx := context.Background()

	_, err := store.Create(ctx, testPos("Rada Coffee"))
	require.NoError(t, err)

	err = store.Clear(ctx)
	require.NoError(t, err)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// IDs are not reused after a clear
	created, err := store.Create(ctx, testPos("Rada Coffee"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
}

func TestPosStore_ConcurrentAccess(t *testing.T) {
	store := NewPosStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			pos := testPos("POS " + string(rune('A'+n)))
			_, _ = store.Create(ctx, pos)
			_, _ = store.GetAll(ctx)
		}(i)
	}
	wg.Wait()

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}
