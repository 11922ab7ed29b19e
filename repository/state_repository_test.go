package repository

import (
	"context"
	"errors"
	"testing"

	"storefront-service/database"
	apperrors "storefront-service/errors"
	"storefront-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const profileID = "7d7f0e0a-2b0b-4c8e-9d52-3f1f1f9a6b10"

func newTestRecords(t *testing.T) (*database.MemoryStore, *ProfileRecords) {
	t.Helper()
	store := database.NewMemoryStore()
	repo := NewStateRepository(store, zap.NewNop())
	return store, repo.Profile(profileID)
}

func TestLoad_AbsentRecordsYieldDefaults(t *testing.T) {
	ctx := context.Background()
	_, p := newTestRecords(t)

	cart, err := p.LoadCart(ctx)
	require.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Empty(t, cart)

	wishlist, err := p.LoadWishlist(ctx)
	require.NoError(t, err)
	assert.Empty(t, wishlist)

	users, err := p.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	session, err := p.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatus{IsLoggedIn: false, Name: "Guest", Email: ""}, session)
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	_, p := newTestRecords(t)

	cart := models.Cart{{Name: "Lens", Price: 25, Img: "lens.png", Quantity: 2}}
	require.NoError(t, p.SaveCart(ctx, cart))
	got, err := p.LoadCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, cart, got)

	session := models.SessionStatus{IsLoggedIn: true, Name: "Jane", Email: "jane@x.com", CartCount: 2}
	require.NoError(t, p.SaveSession(ctx, session))
	gotSession, err := p.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, gotSession)
}

func TestLoad_MalformedRecordsYieldDefaults(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		kind models.RecordKind
		raw  string
	}{
		{"cart not json", models.RecordCart, "{not json"},
		{"cart wrong shape", models.RecordCart, `{"name":"Lens"}`},
		{"cart zero quantity", models.RecordCart, `[{"name":"Lens","price":25,"img":"a","quantity":0}]`},
		{"cart negative price", models.RecordCart, `[{"name":"Lens","price":-1,"img":"a","quantity":1}]`},
		{"cart duplicate names", models.RecordCart, `[{"name":"Lens","price":1,"img":"a","quantity":1},{"name":"Lens","price":1,"img":"a","quantity":1}]`},
		{"cart missing name", models.RecordCart, `[{"price":1,"img":"a","quantity":1}]`},
		{"wishlist string price", models.RecordWishlist, `[{"name":"Frame","price":"80","img":"a"}]`},
		{"users duplicate email", models.RecordUsers, `[{"email":"a@b.com","password":"x"},{"email":"a@b.com","password":"y"}]`},
		{"session logged in without email", models.RecordSession, `{"isLoggedIn":true,"name":"Jane","email":""}`},
		{"session wrong type", models.RecordSession, `{"isLoggedIn":"yes"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, p := newTestRecords(t)
			require.NoError(t, store.Set(ctx, Key(profileID, tc.kind), tc.raw))

			switch tc.kind {
			case models.RecordCart:
				cart, err := p.LoadCart(ctx)
				require.NoError(t, err)
				assert.Empty(t, cart)
			case models.RecordWishlist:
				wishlist, err := p.LoadWishlist(ctx)
				require.NoError(t, err)
				assert.Empty(t, wishlist)
			case models.RecordUsers:
				users, err := p.LoadUsers(ctx)
				require.NoError(t, err)
				assert.Empty(t, users)
			case models.RecordSession:
				session, err := p.LoadSession(ctx)
				require.NoError(t, err)
				assert.Equal(t, models.GuestSession(), session)
			}
		})
	}
}

func TestLoad_LoggedOutSessionNormalizedToGuest(t *testing.T) {
	ctx := context.Background()
	store, p := newTestRecords(t)
	require.NoError(t, store.Set(ctx, Key(profileID, models.RecordSession), `{"isLoggedIn":false,"name":"Jane","email":"jane@x.com"}`))

	session, err := p.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.GuestSession(), session)
}

func TestSave_NotifiesListeners(t *testing.T) {
	ctx := context.Background()
	_, p := newTestRecords(t)

	var seen []models.RecordKind
	p.OnSave(func(_ context.Context, kind models.RecordKind) {
		seen = append(seen, kind)
	})

	require.NoError(t, p.SaveWishlist(ctx, models.Wishlist{{Name: "Frame", Price: 80, Img: "f.png"}}))
	require.NoError(t, p.SaveCart(ctx, nil))
	require.NoError(t, p.ClearCart(ctx))

	assert.Equal(t, []models.RecordKind{models.RecordWishlist, models.RecordCart, models.RecordCart}, seen)
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	_, p := newTestRecords(t)

	require.NoError(t, p.SaveCart(ctx, models.Cart{{Name: "Lens", Price: 25, Img: "a", Quantity: 1}}))
	require.NoError(t, p.SaveWishlist(ctx, models.Wishlist{{Name: "Frame", Price: 80, Img: "f"}}))
	require.NoError(t, p.ClearCart(ctx))

	cart, err := p.LoadCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)

	wishlist, err := p.LoadWishlist(ctx)
	require.NoError(t, err)
	assert.Len(t, wishlist, 1)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) { return "", errors.New("connection refused") }
func (failingStore) Set(context.Context, string, string) error   { return errors.New("connection refused") }
func (failingStore) Delete(context.Context, string) error        { return errors.New("connection refused") }

func TestStoreFailuresAreReturned(t *testing.T) {
	ctx := context.Background()
	p := NewStateRepository(failingStore{}, zap.NewNop()).Profile(profileID)

	notified := false
	p.OnSave(func(context.Context, models.RecordKind) { notified = true })

	_, err := p.LoadCart(ctx)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)

	session, err := p.LoadSession(ctx)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.Equal(t, models.GuestSession(), session)

	err = p.SaveCart(ctx, models.Cart{})
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.False(t, notified)
}

func TestProfilesAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	repo := NewStateRepository(store, zap.NewNop())

	require.NoError(t, repo.Profile("a").SaveCart(ctx, models.Cart{{Name: "Lens", Price: 1, Img: "a", Quantity: 1}}))

	cart, err := repo.Profile("b").LoadCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)
}
