package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "storefront-service/errors"
	"storefront-service/logger"
	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

// OrderPublisher receives order events after a successful checkout.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, evt models.OrderPlacedEvent) error
}

// StorefrontService renders pages and dispatches interaction events for a
// profile.
type StorefrontService interface {
	RenderPage(ctx context.Context, profileID, path string) (*models.RefreshResult, error)
	Dispatch(ctx context.Context, profileID string, evt models.Event) (*models.EventResult, error)
}

type Options struct {
	MockLogin bool
	Catalog   []models.Product
	Views     ViewSet
	Publisher OrderPublisher
	Now       func() time.Time
}

type actionHandler func(ctx context.Context, in *interaction) (*models.EventResult, error)

// interaction is the working set of one dispatched event.
type interaction struct {
	profileID string
	event     models.Event
	records   *repository.ProfileRecords
	holder    *StateHolder
}

type storefrontServiceImpl struct {
	repo      *repository.StateRepository
	opts      Options
	logger    *zap.Logger
	locks     *profileLocks
	dispatchT map[models.Action]actionHandler
}

// NewStorefrontService creates a new StorefrontService.
func NewStorefrontService(repo *repository.StateRepository, opts Options, logger *zap.Logger) StorefrontService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Views == nil {
		opts.Views = func(models.Page) []View { return nil }
	}
	s := &storefrontServiceImpl{
		repo:   repo,
		opts:   opts,
		logger: logger,
		locks:  newProfileLocks(),
	}
	s.dispatchT = map[models.Action]actionHandler{
		models.ActionAddToCart:          s.addToCart,
		models.ActionToggleWishlist:     s.toggleWishlist,
		models.ActionRemoveCartItem:     s.removeCartItem,
		models.ActionSetQuantity:        s.setQuantity,
		models.ActionRemoveWishlistItem: s.removeWishlistItem,
		models.ActionMoveToCart:         s.moveToCart,
		models.ActionLogin:              s.login,
		models.ActionRegister:           s.register,
		models.ActionLogout:             s.logout,
		models.ActionPlaceOrder:         s.placeOrder,
	}
	return s
}

func (s *storefrontServiceImpl) holder(profileID, path string) (*repository.ProfileRecords, *StateHolder) {
	records := s.repo.Profile(profileID)
	h := NewStateHolder(records, path, s.opts.Catalog, s.logger)
	for _, v := range s.opts.Views(h.Page()) {
		h.Subscribe(v)
	}
	return records, h
}

// RenderPage performs a unified refresh of every view on the page at path.
func (s *storefrontServiceImpl) RenderPage(ctx context.Context, profileID, path string) (*models.RefreshResult, error) {
	_, h := s.holder(profileID, path)
	return h.Refresh(ctx)
}

// Dispatch routes evt to its action handler. Domain rejections come back as
// a populated result together with the application error describing them.
// Events of one profile run one at a time, each on the state left by the
// previous one.
func (s *storefrontServiceImpl) Dispatch(ctx context.Context, profileID string, evt models.Event) (*models.EventResult, error) {
	handle, ok := s.dispatchT[evt.Action]
	if !ok {
		return nil, apperrors.ErrUnknownAction.Wrap(fmt.Errorf("action %q", evt.Action))
	}

	unlock := s.locks.lock(profileID)
	defer unlock()

	records, h := s.holder(profileID, evt.Page)
	if _, err := h.Refresh(ctx); err != nil {
		return nil, err
	}

	in := &interaction{profileID: profileID, event: evt, records: records, holder: h}
	result, err := handle(ctx, in)

	var appErr *apperrors.Error
	if err != nil && !errors.As(err, &appErr) {
		return nil, err
	}
	if err != nil && appErr.Code >= 500 {
		return nil, err
	}
	if h.Err() != nil {
		return nil, h.Err()
	}

	result.Action = evt.Action
	if err != nil {
		result.Error = appErr.Message
		result.ErrorKind = appErr.Kind
		if result.Outcome == "" {
			result.Outcome = models.OutcomeRejected
		}
	}
	result.Refresh = h.Last()
	return result, err
}

// productFromTarget reads product attributes the way the catalog exposes
// them. Any missing or malformed attribute aborts the action.
func productFromTarget(t models.Target) (models.Product, error) {
	name := strings.TrimSpace(t.Name)
	img := strings.TrimSpace(t.Img)
	price, err := strconv.ParseFloat(strings.TrimSpace(t.Price), 64)
	if name == "" || img == "" || err != nil || price < 0 {
		return models.Product{}, apperrors.ErrMissingProductAttributes
	}
	return models.Product{Name: name, Price: price, Img: img}, nil
}

func (s *storefrontServiceImpl) aborted(ctx context.Context, in *interaction, reason string) *models.EventResult {
	logger.With(ctx, s.logger).Warn("interaction aborted",
		zap.String("kind", apperrors.ErrMissingProductAttributes.Kind),
		zap.String("action", string(in.event.Action)),
		zap.String("profile_id", in.profileID),
		zap.String("reason", reason),
	)
	return &models.EventResult{Outcome: models.OutcomeAborted}
}

func targetName(in *interaction) string {
	return strings.TrimSpace(in.event.Target.Name)
}

func (s *storefrontServiceImpl) addToCart(ctx context.Context, in *interaction) (*models.EventResult, error) {
	p, err := productFromTarget(in.event.Target)
	if err != nil {
		return s.aborted(ctx, in, "missing product data attributes"), nil
	}
	cart := AddToCart(in.holder.State().Cart, p)
	if err := in.records.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return &models.EventResult{
		Outcome: models.OutcomeAdded,
		Message: fmt.Sprintf("%s added to cart!", p.Name),
	}, nil
}

func (s *storefrontServiceImpl) toggleWishlist(ctx context.Context, in *interaction) (*models.EventResult, error) {
	p, err := productFromTarget(in.event.Target)
	if err != nil {
		return s.aborted(ctx, in, "missing product data attributes for wishlist"), nil
	}
	wishlist, outcome := ToggleWishlist(in.holder.State().Wishlist, p)
	if err := in.records.SaveWishlist(ctx, wishlist); err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("%s added to wishlist!", p.Name)
	if outcome == models.WishlistRemoved {
		msg = fmt.Sprintf("%s removed from wishlist.", p.Name)
	}
	return &models.EventResult{Outcome: string(outcome), Message: msg}, nil
}

func (s *storefrontServiceImpl) removeCartItem(ctx context.Context, in *interaction) (*models.EventResult, error) {
	name := targetName(in)
	if name == "" {
		return s.aborted(ctx, in, "missing product name"), nil
	}
	cart := RemoveFromCart(in.holder.State().Cart, name)
	if err := in.records.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return &models.EventResult{Outcome: models.OutcomeRemoved}, nil
}

func (s *storefrontServiceImpl) setQuantity(ctx context.Context, in *interaction) (*models.EventResult, error) {
	name := targetName(in)
	if name == "" {
		return s.aborted(ctx, in, "missing product name"), nil
	}
	current := in.holder.State().Cart
	item, found := FindCartItem(current, name)

	qty, err := ParseQuantity(in.event.Target.Quantity)
	if err != nil {
		revert := 1
		if found {
			revert = item.Quantity
		}
		return &models.EventResult{Outcome: models.OutcomeRejected, Revert: &revert}, err
	}
	if !found {
		return &models.EventResult{Outcome: models.OutcomeNoop}, nil
	}

	cart, err := SetQuantity(current, name, qty)
	if err != nil {
		return &models.EventResult{Outcome: models.OutcomeRejected, Revert: &item.Quantity}, err
	}
	if err := in.records.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return &models.EventResult{Outcome: models.OutcomeUpdated}, nil
}

func (s *storefrontServiceImpl) removeWishlistItem(ctx context.Context, in *interaction) (*models.EventResult, error) {
	name := targetName(in)
	if name == "" {
		return s.aborted(ctx, in, "missing product name"), nil
	}
	wishlist := RemoveFromWishlist(in.holder.State().Wishlist, name)
	if err := in.records.SaveWishlist(ctx, wishlist); err != nil {
		return nil, err
	}
	return &models.EventResult{
		Outcome: models.OutcomeRemoved,
		Message: fmt.Sprintf("%s removed from wishlist.", name),
	}, nil
}

func (s *storefrontServiceImpl) moveToCart(ctx context.Context, in *interaction) (*models.EventResult, error) {
	name := targetName(in)
	if name == "" {
		return s.aborted(ctx, in, "missing product name"), nil
	}
	state := in.holder.State()
	cart, wishlist, moved := MoveToCart(state.Cart, state.Wishlist, name)
	if !moved {
		return &models.EventResult{Outcome: models.OutcomeNoop}, nil
	}
	if err := in.records.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	if err := in.records.SaveWishlist(ctx, wishlist); err != nil {
		return nil, err
	}
	return &models.EventResult{
		Outcome: models.OutcomeMoved,
		Message: fmt.Sprintf("%s moved to cart!", name),
	}, nil
}

func (s *storefrontServiceImpl) login(ctx context.Context, in *interaction) (*models.EventResult, error) {
	var creds models.Credentials
	if in.event.Credentials != nil {
		creds = *in.event.Credentials
	}
	state := in.holder.State()

	session, err := Login(creds, state.Users, s.opts.MockLogin, state.Cart, state.Wishlist)
	if err != nil {
		return &models.EventResult{
			Outcome:       models.OutcomeRejected,
			ClearPassword: errors.Is(err, apperrors.ErrInvalidCredentials),
		}, err
	}
	if err := in.records.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	logger.With(ctx, s.logger).Info("profile logged in",
		zap.String("profile_id", in.profileID),
		zap.Bool("mock_login", s.opts.MockLogin),
	)
	return &models.EventResult{
		Outcome:  models.OutcomeOK,
		Message:  fmt.Sprintf("Login successful! Welcome back, %s.", session.Name),
		Redirect: models.PageAccount,
	}, nil
}

func (s *storefrontServiceImpl) register(ctx context.Context, in *interaction) (*models.EventResult, error) {
	var form models.RegisterForm
	if in.event.Registration != nil {
		form = *in.event.Registration
	}

	users, err := Register(form, in.holder.State().Users)
	if err != nil {
		return &models.EventResult{Outcome: models.OutcomeRejected}, err
	}
	if err := in.records.SaveUsers(ctx, users); err != nil {
		return nil, err
	}
	return &models.EventResult{
		Outcome:  models.OutcomeOK,
		Message:  "Registration successful! You can now log in.",
		Redirect: models.PageLogin,
	}, nil
}

func (s *storefrontServiceImpl) logout(ctx context.Context, in *interaction) (*models.EventResult, error) {
	if err := in.records.SaveSession(ctx, Logout()); err != nil {
		return nil, err
	}
	return &models.EventResult{
		Outcome:  models.OutcomeOK,
		Message:  "You have been logged out.",
		Redirect: models.PageHome,
	}, nil
}

func (s *storefrontServiceImpl) placeOrder(ctx context.Context, in *interaction) (*models.EventResult, error) {
	state := in.holder.State()
	order, err := Checkout(in.profileID, state.Session, state.Cart, s.opts.Now())
	if err != nil {
		return &models.EventResult{Outcome: models.OutcomeRejected}, err
	}
	if err := in.records.ClearCart(ctx); err != nil {
		return nil, err
	}
	s.publishOrderPlaced(ctx, order)

	return &models.EventResult{
		Outcome:  models.OutcomeOK,
		Message:  "Order Placed Successfully! Thank you for shopping with OPTIQUE.",
		Redirect: models.PageHome,
	}, nil
}

// publishOrderPlaced never fails the checkout; the cart is already cleared.
func (s *storefrontServiceImpl) publishOrderPlaced(ctx context.Context, order models.OrderPlacedEvent) {
	log := logger.With(ctx, s.logger)
	if s.opts.Publisher == nil {
		log.Debug("order publisher not configured, skipping order.placed event")
		return
	}
	if err := s.opts.Publisher.PublishOrderPlaced(ctx, order); err != nil {
		log.Error("Failed to publish order.placed event",
			zap.String("order_id", order.OrderID),
			zap.Error(err),
		)
		return
	}
	log.Info("Published order.placed event",
		zap.String("order_id", order.OrderID),
		zap.Float64("grand_total", order.GrandTotal),
	)
}
