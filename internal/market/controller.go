// Package market is the application controller for swapmeet. It owns the
// view state (current page, selected listing, suggestion-in-flight flag)
// and mediates every mutation of the catalog, so the whole marketplace
// can be driven and tested without a terminal attached.
package market

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"swapmeet/internal/catalog"
	"swapmeet/internal/logging"
	"swapmeet/internal/suggest"
)

// User-facing messages for the suggestion flow. Configuration and
// authentication failures share one message because the user can fix
// neither; everything else is worth a retry.
const (
	MsgSuggestNeedsInput     = "Please enter product name or keywords to generate a description suggestion."
	MsgSuggestNotConfigured  = "Description suggestion service is not configured correctly or API key is missing. Please contact support."
	MsgSuggestTryAgain       = "Failed to suggest description. Please try again or write your own."
	MsgSuggestAlreadyRunning = "A description suggestion is already in progress."
)

// Suggester drafts a listing description. Satisfied by *suggest.Client.
type Suggester interface {
	Suggest(ctx context.Context, name, keywords string) (string, error)
}

// Controller owns all view and catalog state for one session.
type Controller struct {
	store     *catalog.Store
	suggester Suggester
	seller    string

	page       Page
	selectedID string
	suggesting bool
}

// NewController creates a controller on the home page.
func NewController(store *catalog.Store, suggester Suggester, seller string) *Controller {
	if seller == "" {
		seller = "CurrentUser"
	}
	return &Controller{
		store:     store,
		suggester: suggester,
		seller:    seller,
		page:      PageHome,
	}
}

// Page returns the active page.
func (c *Controller) Page() Page { return c.page }

// Navigate switches the active page.
func (c *Controller) Navigate(p Page) {
	if p == c.page {
		return
	}
	logging.Router("navigate %s -> %s", c.page, p)
	c.page = p
}

// Listings returns the current catalog snapshot, newest first.
func (c *Controller) Listings() []catalog.Product {
	return c.store.List()
}

// Select marks a listing for the detail overlay.
func (c *Controller) Select(id string) error {
	if _, ok := c.store.Get(id); !ok {
		return fmt.Errorf("no listing with id %q", id)
	}
	c.selectedID = id
	return nil
}

// Selected returns the listing shown in the detail overlay, if any. The
// selection is a weak reference: if the listing has been deleted since it
// was selected, this reports nothing selected.
func (c *Controller) Selected() (catalog.Product, bool) {
	if c.selectedID == "" {
		return catalog.Product{}, false
	}
	return c.store.Get(c.selectedID)
}

// ClearSelection closes the detail overlay.
func (c *Controller) ClearSelection() { c.selectedID = "" }

// SubmitListing validates the form input and, on success, adds the new
// listing to the head of the catalog and navigates to browse.
func (c *Controller) SubmitListing(in ListingInput) (catalog.Product, error) {
	price, err := in.Validate()
	if err != nil {
		logging.FormWarn("submission rejected: %v", err)
		return catalog.Product{}, err
	}

	id := uuid.NewString()
	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL == "" {
		imageURL = catalog.PlaceholderImage(id)
	}

	p := catalog.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		Seller:      c.seller,
		ImageURL:    imageURL,
		Category:    strings.TrimSpace(in.Category),
		Keywords:    strings.TrimSpace(in.Keywords),
	}
	if err := c.store.Add(p); err != nil {
		// A uuid collision would be the only path here.
		return catalog.Product{}, fmt.Errorf("failed to add listing: %w", err)
	}

	logging.Form("listing added id=%s name=%q price=%.2f", p.ID, p.Name, p.Price)
	logging.Catalog("size=%d after add", c.store.Len())
	c.Navigate(PageBrowse)
	return p, nil
}

// DeleteListing removes a listing after the UI has confirmed the action.
// Deleting an absent id is a logged no-op, never an error; the admin
// table may be stale by at most one event and redraws right after.
func (c *Controller) DeleteListing(id string) bool {
	removed := c.store.Remove(id)
	if !removed {
		logging.CatalogDebug("delete of absent id %q ignored", id)
		return false
	}
	if c.selectedID == id {
		c.selectedID = ""
	}
	logging.Catalog("listing removed id=%s size=%d", id, c.store.Len())
	return true
}

// Suggesting reports whether a suggestion call is outstanding.
func (c *Controller) Suggesting() bool { return c.suggesting }

// BeginSuggestion validates a suggestion request and marks it in flight.
// While in flight the trigger control stays disabled, which is the only
// concurrency rule this system needs.
func (c *Controller) BeginSuggestion(name, keywords string) error {
	if c.suggesting {
		return fmt.Errorf("%s", MsgSuggestAlreadyRunning)
	}
	if strings.TrimSpace(name) == "" && strings.TrimSpace(keywords) == "" {
		return &ValidationError{Fields: []string{"Name or Keywords"}}
	}
	c.suggesting = true
	logging.Form("suggestion started name=%q", name)
	return nil
}

// EndSuggestion clears the in-flight flag. Runs on every outcome.
func (c *Controller) EndSuggestion() { c.suggesting = false }

// SuggestDescription performs the drafting call. The name falls back to
// "this item" when blank because the prompt needs a subject. The call
// never mutates the catalog.
func (c *Controller) SuggestDescription(ctx context.Context, name, keywords string) (string, error) {
	subject := strings.TrimSpace(name)
	if subject == "" {
		subject = "this item"
	}
	return c.suggester.Suggest(ctx, subject, strings.TrimSpace(keywords))
}

// SuggestionFailureMessage maps a suggestion failure to the user-facing
// text for the form error slot.
func (c *Controller) SuggestionFailureMessage(err error) string {
	switch suggest.KindOf(err) {
	case suggest.KindConfiguration, suggest.KindAuthentication:
		return MsgSuggestNotConfigured
	default:
		return MsgSuggestTryAgain
	}
}
