package services

import (
	"context"
	"html/template"

	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

// View is a page region that is fully re-rendered from state on every
// refresh.
type View interface {
	Region() string
	Render(state models.State) template.HTML
}

// ViewSet returns the views present on a page.
type ViewSet func(page models.Page) []View

// StateHolder owns one profile's state for a single interaction and keeps
// every subscribed view in sync with it. It registers itself as the save
// listener of the profile records, so each save triggers a unified refresh.
type StateHolder struct {
	records *repository.ProfileRecords
	path    string
	page    models.Page
	catalog []models.Product
	logger  *zap.Logger

	views []View
	state models.State
	last  *models.RefreshResult
	err   error
}

func NewStateHolder(records *repository.ProfileRecords, path string, catalog []models.Product, logger *zap.Logger) *StateHolder {
	h := &StateHolder{
		records: records,
		path:    path,
		page:    models.PageFromPath(path),
		catalog: catalog,
		logger:  logger,
	}
	records.OnSave(h.onSave)
	return h
}

// Subscribe adds v to the views rendered on every refresh.
func (h *StateHolder) Subscribe(v View) {
	h.views = append(h.views, v)
}

func (h *StateHolder) Page() models.Page { return h.page }

// State returns the snapshot taken by the latest refresh.
func (h *StateHolder) State() models.State { return h.state }

// Last returns the latest refresh result, or nil before the first refresh.
func (h *StateHolder) Last() *models.RefreshResult { return h.last }

// Err reports the first refresh failure triggered by a save.
func (h *StateHolder) Err() error { return h.err }

// Refresh reloads all records, renders every subscribed view and evaluates
// the navigation guard.
func (h *StateHolder) Refresh(ctx context.Context) (*models.RefreshResult, error) {
	state, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	h.state = state

	result := &models.RefreshResult{
		Page:    h.page,
		Regions: make(map[string]template.HTML, len(h.views)),
	}
	for _, v := range h.views {
		result.Regions[v.Region()] = v.Render(state)
	}
	if target, redirect := Guard(h.path, state.Session.IsLoggedIn); redirect {
		result.Redirect = target
	}

	h.last = result
	return result, nil
}

func (h *StateHolder) load(ctx context.Context) (models.State, error) {
	cart, err := h.records.LoadCart(ctx)
	if err != nil {
		return models.State{}, err
	}
	wishlist, err := h.records.LoadWishlist(ctx)
	if err != nil {
		return models.State{}, err
	}
	users, err := h.records.LoadUsers(ctx)
	if err != nil {
		return models.State{}, err
	}
	session, err := h.records.LoadSession(ctx)
	if err != nil {
		return models.State{}, err
	}
	return models.State{
		Page:     h.page,
		Cart:     cart,
		Wishlist: wishlist,
		Users:    users,
		Session:  session,
		Catalog:  h.catalog,
	}, nil
}

func (h *StateHolder) onSave(ctx context.Context, kind models.RecordKind) {
	if _, err := h.Refresh(ctx); err != nil {
		h.logger.Error("refresh after save failed",
			zap.String("record", string(kind)),
			zap.String("profile_id", h.records.ProfileID()),
			zap.Error(err),
		)
		if h.err == nil {
			h.err = err
		}
	}
}
