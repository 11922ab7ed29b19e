package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"storefront-service/database"
	apperrors "storefront-service/errors"
	"storefront-service/models"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// SaveListener is notified after a record has been persisted.
type SaveListener func(ctx context.Context, kind models.RecordKind)

// StateRepository is the typed storage adapter over a KVStore. Records are
// scoped per profile.
type StateRepository struct {
	store    database.KVStore
	validate *validator.Validate
	logger   *zap.Logger
}

func NewStateRepository(store database.KVStore, logger *zap.Logger) *StateRepository {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateSession, models.SessionStatus{})
	return &StateRepository{
		store:    store,
		validate: v,
		logger:   logger,
	}
}

// Key returns the storage key of one profile record.
func Key(profileID string, kind models.RecordKind) string {
	return fmt.Sprintf("storefront:profile:%s:%s", profileID, kind)
}

// Profile returns the records of a single profile. The returned value is
// cheap and meant to live for one interaction.
func (r *StateRepository) Profile(profileID string) *ProfileRecords {
	return &ProfileRecords{repo: r, profileID: profileID}
}

// ProfileRecords gives typed access to the four records of one profile.
// Loads never fail on absent or malformed data: they fall back to the
// record's default. Only store transport failures are returned.
type ProfileRecords struct {
	repo      *StateRepository
	profileID string

	mu        sync.Mutex
	listeners []SaveListener
}

func (p *ProfileRecords) ProfileID() string { return p.profileID }

// OnSave registers l to run after every successful save or clear.
func (p *ProfileRecords) OnSave(l SaveListener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, l)
}

func (p *ProfileRecords) LoadCart(ctx context.Context) (models.Cart, error) {
	cart := models.Cart{}
	ok, err := p.load(ctx, models.RecordCart, &cart, func() error {
		return p.repo.validate.Var(cart, "unique=Name,dive")
	})
	if err != nil || !ok || cart == nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (p *ProfileRecords) LoadWishlist(ctx context.Context) (models.Wishlist, error) {
	wishlist := models.Wishlist{}
	ok, err := p.load(ctx, models.RecordWishlist, &wishlist, func() error {
		return p.repo.validate.Var(wishlist, "unique=Name,dive")
	})
	if err != nil || !ok || wishlist == nil {
		return models.Wishlist{}, err
	}
	return wishlist, nil
}

func (p *ProfileRecords) LoadUsers(ctx context.Context) (models.RegisteredUsers, error) {
	users := models.RegisteredUsers{}
	ok, err := p.load(ctx, models.RecordUsers, &users, func() error {
		return p.repo.validate.Var(users, "unique=Email,dive")
	})
	if err != nil || !ok || users == nil {
		return models.RegisteredUsers{}, err
	}
	return users, nil
}

func (p *ProfileRecords) LoadSession(ctx context.Context) (models.SessionStatus, error) {
	var session models.SessionStatus
	ok, err := p.load(ctx, models.RecordSession, &session, func() error {
		return p.repo.validate.Struct(session)
	})
	if err != nil || !ok {
		return models.GuestSession(), err
	}
	if !session.IsLoggedIn {
		// a logged-out record always reads as the guest default
		return models.GuestSession(), nil
	}
	return session, nil
}

func (p *ProfileRecords) SaveCart(ctx context.Context, cart models.Cart) error {
	if cart == nil {
		cart = models.Cart{}
	}
	return p.save(ctx, models.RecordCart, cart)
}

func (p *ProfileRecords) SaveWishlist(ctx context.Context, wishlist models.Wishlist) error {
	if wishlist == nil {
		wishlist = models.Wishlist{}
	}
	return p.save(ctx, models.RecordWishlist, wishlist)
}

func (p *ProfileRecords) SaveUsers(ctx context.Context, users models.RegisteredUsers) error {
	if users == nil {
		users = models.RegisteredUsers{}
	}
	return p.save(ctx, models.RecordUsers, users)
}

func (p *ProfileRecords) SaveSession(ctx context.Context, session models.SessionStatus) error {
	return p.save(ctx, models.RecordSession, session)
}

// ClearCart removes the cart record; the next load yields an empty cart.
func (p *ProfileRecords) ClearCart(ctx context.Context) error {
	if err := p.repo.store.Delete(ctx, Key(p.profileID, models.RecordCart)); err != nil {
		return apperrors.ErrStoreUnavailable.Wrap(err)
	}
	p.notify(ctx, models.RecordCart)
	return nil
}

// load decodes the record into dst and runs check. It reports false when the
// record is absent or malformed, in which case dst must not be used.
func (p *ProfileRecords) load(ctx context.Context, kind models.RecordKind, dst any, check func() error) (bool, error) {
	raw, err := p.repo.store.Get(ctx, Key(p.profileID, kind))
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.ErrStoreUnavailable.Wrap(err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		p.malformed(kind, err)
		return false, nil
	}
	if err := check(); err != nil {
		p.malformed(kind, err)
		return false, nil
	}
	return true, nil
}

func (p *ProfileRecords) malformed(kind models.RecordKind, cause error) {
	p.repo.logger.Warn("stored record replaced with default",
		zap.String("kind", apperrors.ErrMalformedStoredRecord.Kind),
		zap.String("record", string(kind)),
		zap.String("profile_id", p.profileID),
		zap.Error(cause),
	)
}

func (p *ProfileRecords) save(ctx context.Context, kind models.RecordKind, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	if err := p.repo.store.Set(ctx, Key(p.profileID, kind), string(data)); err != nil {
		return apperrors.ErrStoreUnavailable.Wrap(err)
	}
	p.notify(ctx, kind)
	return nil
}

func (p *ProfileRecords) notify(ctx context.Context, kind models.RecordKind) {
	p.mu.Lock()
	listeners := append([]SaveListener(nil), p.listeners...)
	p.mu.Unlock()

	for _, l := range listeners {
		l(ctx, kind)
	}
}

// validateSession enforces that a logged-in session names its user.
func validateSession(sl validator.StructLevel) {
	s := sl.Current().Interface().(models.SessionStatus)
	if !s.IsLoggedIn {
		return
	}
	if s.Name == "" {
		sl.ReportError(s.Name, "Name", "name", "required_if_logged_in", "")
	}
	if s.Email == "" {
		sl.ReportError(s.Email, "Email", "email", "required_if_logged_in", "")
	}
}
