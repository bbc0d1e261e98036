package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villa-api-backend/internal/model"
	"villa-api-backend/internal/testutil"
)

func TestVillaRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(testutil.NewSQLiteDB(t))
	repo := s.Villas()

	villa := &model.Villa{Name: "Sunset Villa", Rate: 200, Occupancy: 4, Sqft: 1200}
	require.NoError(t, repo.Create(ctx, villa))
	require.NotZero(t, villa.ID, "Create should assign an identifier")

	got, err := repo.Get(ctx, true, ByID(villa.ID))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Sunset Villa", got.Name)
	assert.Equal(t, 200.0, got.Rate)

	byName, err := repo.Get(ctx, false, NameEqualFold("SUNSET villa"))
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, villa.ID, byName.ID)

	createdAt := got.CreatedAt
	time.Sleep(10 * time.Millisecond)
	replacement := &model.Villa{ID: villa.ID, Name: "Sunrise Villa", Rate: 250, Occupancy: 2}
	require.NoError(t, repo.Update(ctx, replacement))

	got, err = repo.Get(ctx, false, ByID(villa.ID))
	require.NoError(t, err)
	assert.Equal(t, "Sunrise Villa", got.Name)
	assert.Equal(t, 250.0, got.Rate)
	assert.Equal(t, 0, got.Sqft, "full replace should clear omitted fields")
	assert.Equal(t, createdAt.Unix(), got.CreatedAt.Unix(), "creation time must survive a replace")

	require.NoError(t, repo.Remove(ctx, got))
	assert.ErrorIs(t, repo.Remove(ctx, got), ErrNotFound, "second remove is not idempotent")

	missing, err := repo.Get(ctx, true, ByID(villa.ID))
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestVillaRepository_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewGormStore(testutil.NewSQLiteDB(t)).Villas()

	assert.ErrorIs(t, repo.Update(ctx, &model.Villa{ID: 99, Name: "Nowhere"}), ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &model.Villa{Name: "No id"}), ErrNotFound)
	assert.ErrorIs(t, repo.Remove(ctx, &model.Villa{}), ErrNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "update of a missing id must not upsert")
}

func TestVillaRepository_GetAllFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewGormStore(testutil.NewSQLiteDB(t)).Villas()

	for _, v := range []model.Villa{
		{Name: "Royal Villa", Occupancy: 4},
		{Name: "Pool Villa", Occupancy: 2},
		{Name: "Luxury Pool House", Occupancy: 4},
	} {
		require.NoError(t, repo.Create(ctx, &v))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Royal Villa", all[0].Name, "results are ordered by id")
	assert.Equal(t, "Luxury Pool House", all[2].Name)

	fours, err := repo.GetAll(ctx, OccupancyEquals(4))
	require.NoError(t, err)
	assert.Len(t, fours, 2)

	pools, err := repo.GetAll(ctx, NameContains("POOL"), OccupancyEquals(4))
	require.NoError(t, err)
	require.Len(t, pools, 1)
	assert.Equal(t, "Luxury Pool House", pools[0].Name)

	others, err := repo.GetAll(ctx, ExcludeID(all[0].ID))
	require.NoError(t, err)
	assert.Len(t, others, 2)
}

func TestNameContains_WildcardsMatchLiterally(t *testing.T) {
	ctx := context.Background()
	repo := NewGormStore(testutil.NewSQLiteDB(t)).Villas()

	for _, v := range []model.Villa{
		{Name: "100% Ocean"},
		{Name: "Big_House"},
		{Name: `Back\Slash`},
		{Name: "Plain Villa"},
	} {
		require.NoError(t, repo.Create(ctx, &v))
	}

	testCases := []struct {
		term string
		want []string
	}{
		{term: "_", want: []string{"Big_House"}},
		{term: "%", want: []string{"100% Ocean"}},
		{term: "0%", want: []string{"100% Ocean"}},
		{term: `\`, want: []string{`Back\Slash`}},
		{term: "villa", want: []string{"Plain Villa"}},
	}

	for _, tc := range testCases {
		t.Run(tc.term, func(t *testing.T) {
			found, err := repo.GetAll(ctx, NameContains(tc.term))
			require.NoError(t, err)

			names := make([]string, 0, len(found))
			for _, v := range found {
				names = append(names, v.Name)
			}
			assert.Equal(t, tc.want, names)
		})
	}
}

func TestVillaNumberRepository(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(testutil.NewSQLiteDB(t))

	villa := &model.Villa{Name: "Royal Villa"}
	require.NoError(t, s.Villas().Create(ctx, villa))

	repo := s.VillaNumbers()
	require.NoError(t, repo.Create(ctx, &model.VillaNumber{VillaNo: 101, VillaID: villa.ID, SpecialDetails: "corner"}))
	require.NoError(t, repo.Create(ctx, &model.VillaNumber{VillaNo: 102, VillaID: villa.ID}))

	var pErr *PersistenceError
	assert.ErrorAs(t, repo.Create(ctx, &model.VillaNumber{VillaNo: 101, VillaID: villa.ID}), &pErr,
		"duplicate primary key is a persistence error")

	n, err := repo.Get(ctx, false, ByVillaNo(101))
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "corner", n.SpecialDetails)

	require.NoError(t, repo.Update(ctx, &model.VillaNumber{VillaNo: 101, VillaID: villa.ID, SpecialDetails: "garden"}))
	n, err = repo.Get(ctx, false, ByVillaNo(101))
	require.NoError(t, err)
	assert.Equal(t, "garden", n.SpecialDetails)

	list, err := repo.GetAll(ctx, ByVillaID(villa.ID))
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, repo.Remove(ctx, &model.VillaNumber{VillaNo: 102}))
	assert.ErrorIs(t, repo.Remove(ctx, &model.VillaNumber{VillaNo: 102}), ErrNotFound)
}

func TestGormStore_Ping(t *testing.T) {
	s := NewGormStore(testutil.NewSQLiteDB(t))
	assert.NoError(t, s.Ping(context.Background()))
}
