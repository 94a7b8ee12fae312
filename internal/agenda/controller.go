package agenda

import (
	"context"
	"log/slog"
	"slices"

	"github.com/adso-sena/agenda/internal/contacts"
)

// Controller holds the authoritative contact collection. It is not safe for
// concurrent use: callers drive it from a single event loop and run only the
// network calls elsewhere, feeding results back through the Apply methods.
type Controller struct {
	store   Store
	logger  *slog.Logger
	items   []contacts.Contact
	state   State
	started bool
	editGen uint64
}

// NewController creates a controller in the create view, sorted A-Z.
func NewController(log *slog.Logger, store Store) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		store:  store,
		logger: log.With(slog.String("component", "agenda")),
		items:  []contacts.Contact{},
		state: State{
			Ascending: true,
			View:      ViewCreate,
		},
	}
}

// State returns a snapshot of the flags. EditTarget is a copy.
func (c *Controller) State() State {
	s := c.state
	if s.EditTarget != nil {
		target := *s.EditTarget
		s.EditTarget = &target
	}
	return s
}

// Contacts returns a copy of the collection in storage order.
func (c *Controller) Contacts() []contacts.Contact {
	return slices.Clone(c.items)
}

// Visible returns the filtered and sorted contacts for display.
func (c *Controller) Visible() []contacts.Contact {
	return contacts.Display(c.items, c.state.Search, c.state.Ascending)
}

// Find returns the contact with id from the collection.
func (c *Controller) Find(id string) (contacts.Contact, bool) {
	idx := contacts.IndexByID(c.items, id)
	if idx < 0 {
		return contacts.Contact{}, false
	}
	return c.items[idx], true
}

// ---------------------------------------------------------------------------
// load
// ---------------------------------------------------------------------------

// BeginLoad marks the initial load as started. It reports false when the load
// already ran, so the collection is fetched once per controller.
func (c *Controller) BeginLoad() (Ticket, bool) {
	if c.started {
		return Ticket{}, false
	}
	c.started = true
	c.state.Loading = true
	c.state.Error = ""
	return Ticket{Kind: LoadError, EditGen: c.editGen}, true
}

// ApplyLoad stores the fetched collection or records the load failure.
func (c *Controller) ApplyLoad(_ Ticket, items []contacts.Contact, err error) error {
	c.state.Loading = false
	if err != nil {
		return c.fail(LoadError, err)
	}
	c.items = slices.Clone(items)
	if c.items == nil {
		c.items = []contacts.Contact{}
	}
	c.logger.Info("contacts loaded", slog.Int("count", len(c.items)))
	return nil
}

// Load fetches the collection once.
func (c *Controller) Load(ctx context.Context) error {
	t, ok := c.BeginLoad()
	if !ok {
		return nil
	}
	items, err := c.store.List(ctx)
	return c.ApplyLoad(t, items, err)
}

// ---------------------------------------------------------------------------
// create
// ---------------------------------------------------------------------------

// BeginCreate clears the error banner before a create request.
func (c *Controller) BeginCreate() Ticket {
	c.state.Error = ""
	return Ticket{Kind: CreateError, EditGen: c.editGen}
}

// ApplyCreate appends the created record or records the failure. The failure
// is returned so the form keeps its draft.
func (c *Controller) ApplyCreate(_ Ticket, created contacts.Contact, err error) error {
	if err != nil {
		return c.fail(CreateError, err)
	}
	c.items = append(c.items, created)
	c.logger.Info("contact created", slog.String("id", created.ID))
	return nil
}

// Create persists draft and appends the stored record.
func (c *Controller) Create(ctx context.Context, draft contacts.Draft) (contacts.Contact, error) {
	t := c.BeginCreate()
	created, err := c.store.Create(ctx, draft)
	if err := c.ApplyCreate(t, created, err); err != nil {
		return contacts.Contact{}, err
	}
	return created, nil
}

// ---------------------------------------------------------------------------
// update
// ---------------------------------------------------------------------------

// BeginUpdate clears the error banner and captures the edit target the update
// applies to.
func (c *Controller) BeginUpdate() (Ticket, error) {
	if c.state.EditTarget == nil {
		return Ticket{}, ErrNoEditTarget
	}
	c.state.Error = ""
	return Ticket{Kind: UpdateError, ID: c.state.EditTarget.ID, EditGen: c.editGen}, nil
}

// ApplyUpdate replaces the record with the same id. Edit mode is left only if
// the selection has not changed since the request was issued.
func (c *Controller) ApplyUpdate(t Ticket, updated contacts.Contact, err error) error {
	if err != nil {
		return c.fail(UpdateError, err)
	}
	if updated.ID == "" {
		updated.ID = t.ID
	}
	if idx := contacts.IndexByID(c.items, updated.ID); idx >= 0 {
		c.items[idx] = updated
	}
	if t.EditGen == c.editGen {
		c.setEditTarget(nil)
	} else {
		c.logger.Debug("stale update result; keeping current edit target", slog.String("id", updated.ID))
	}
	c.logger.Info("contact updated", slog.String("id", updated.ID))
	return nil
}

// Update persists draft over the current edit target.
func (c *Controller) Update(ctx context.Context, draft contacts.Draft) (contacts.Contact, error) {
	t, err := c.BeginUpdate()
	if err != nil {
		return contacts.Contact{}, err
	}
	updated, err := c.store.Update(ctx, t.ID, draft)
	if err := c.ApplyUpdate(t, updated, err); err != nil {
		return contacts.Contact{}, err
	}
	if updated.ID == "" {
		updated.ID = t.ID
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// delete
// ---------------------------------------------------------------------------

// BeginDelete clears the error banner before deleting id.
func (c *Controller) BeginDelete(id string) Ticket {
	c.state.Error = ""
	return Ticket{Kind: DeleteError, ID: id, EditGen: c.editGen}
}

// ApplyDelete removes the record, leaving edit mode when it was the one being
// edited. On failure the collection is left unchanged.
func (c *Controller) ApplyDelete(t Ticket, err error) error {
	if err != nil {
		return c.fail(DeleteError, err)
	}
	c.items = slices.DeleteFunc(c.items, func(item contacts.Contact) bool { return item.ID == t.ID })
	if c.state.EditTarget != nil && c.state.EditTarget.ID == t.ID {
		c.setEditTarget(nil)
	}
	c.logger.Info("contact deleted", slog.String("id", t.ID))
	return nil
}

// Delete removes contact id from the backend and the collection.
func (c *Controller) Delete(ctx context.Context, id string) error {
	t := c.BeginDelete(id)
	return c.ApplyDelete(t, c.store.Delete(ctx, id))
}

// ---------------------------------------------------------------------------
// local transitions
// ---------------------------------------------------------------------------

// Edit selects a copy of contact for editing and clears the error banner.
func (c *Controller) Edit(contact contacts.Contact) {
	c.setEditTarget(&contact)
	c.state.Error = ""
}

// EditByID selects the contact with id. It reports false when id is unknown.
func (c *Controller) EditByID(id string) bool {
	contact, ok := c.Find(id)
	if !ok {
		return false
	}
	c.Edit(contact)
	return true
}

// CancelEdit returns to create mode. It is a no-op when nothing is being edited.
func (c *Controller) CancelEdit() {
	c.setEditTarget(nil)
}

// SetSearch updates the search term.
func (c *Controller) SetSearch(term string) {
	c.state.Search = term
}

// ToggleSort flips between A-Z and Z-A.
func (c *Controller) ToggleSort() {
	c.state.Ascending = !c.state.Ascending
}

// SetAscending sets the sort direction.
func (c *Controller) SetAscending(ascending bool) {
	c.state.Ascending = ascending
}

// SetView switches screens.
func (c *Controller) SetView(v View) {
	if v != ViewCreate && v != ViewList {
		return
	}
	c.state.View = v
}

// ToggleView switches between the create and list screens.
func (c *Controller) ToggleView() {
	if c.state.View == ViewList {
		c.state.View = ViewCreate
		return
	}
	c.state.View = ViewList
}

// setEditTarget bumps the edit generation only when the selection changes, so
// leaving edit mode twice (ApplyUpdate, then the form's cancel) counts once.
func (c *Controller) setEditTarget(target *contacts.Contact) {
	if target == nil && c.state.EditTarget == nil {
		return
	}
	if target != nil {
		copied := *target
		target = &copied
	}
	c.state.EditTarget = target
	c.editGen++
}

func (c *Controller) fail(kind Kind, err error) error {
	c.logger.Error("contact operation failed", slog.String("kind", string(kind)), slog.Any("error", err))
	c.state.Error = MessageFor(kind)
	return &Failure{Kind: kind, Err: err}
}

// EditGeneration changes every time the edit target is set or cleared, so
// views can tell when to re-sync their form.
func (c *Controller) EditGeneration() uint64 {
	return c.editGen
}
