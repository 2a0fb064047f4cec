package pipeline

// Store is the capability interface a Resource needs from its datastore.
// Persist covers both the first commit (which assigns the id) and updates of
// an already-loaded entity; the id never changes after the first commit.
type Store[T any] interface {
	List(page PageRequest) ([]T, error)
	Load(id string) (*T, error)
	Persist(entity *T) error
	Delete(id string) error
}

// Resource is the shared lifecycle for one entity kind: authorize,
// load-or-create, merge, validate, commit. The four entity controllers of
// the API are instances of this one type with different descriptors.
type Resource[T any, P any] struct {
	// Name appears in routes, Location references and not-found errors.
	Name string
	// ReadRole gates list/get, WriteRole gates every mutation.
	ReadRole  RolePredicate
	WriteRole RolePredicate

	Store Store[T]
	// ID extracts the store-assigned id of an entity.
	ID func(*T) string
	// Merge copies payload-present fields of the patch onto the target.
	// It may return a *ValidationError when a payload reference does not
	// resolve; any other error is treated as an infrastructure failure.
	Merge func(target *T, patch *P) error
	// Validate runs the entity's constraints and returns the ordered
	// violation list. A non-empty list rejects the operation before any
	// commit.
	Validate func(*T) []Violation
	// Project maps an entity onto its read representation. Nil means the
	// entity serializes as-is.
	Project func(*T) any
}

// List returns one page of projected entities.
func (r *Resource[T, P]) List(p Principal, page PageRequest) ([]any, error) {
	if !r.ReadRole(p) {
		return nil, ErrForbidden
	}
	entities, err := r.Store.List(page)
	if err != nil {
		return nil, err
	}
	views := make([]any, 0, len(entities))
	for i := range entities {
		views = append(views, r.View(&entities[i]))
	}
	return views, nil
}

// Get returns the projected entity with the given id.
func (r *Resource[T, P]) Get(p Principal, id string) (any, error) {
	if !r.ReadRole(p) {
		return nil, ErrForbidden
	}
	entity, err := r.Store.Load(id)
	if err != nil {
		return nil, err
	}
	return r.View(entity), nil
}

// Create allocates a new entity, applies the full patch, validates and
// commits it. The returned entity carries its newly assigned id.
func (r *Resource[T, P]) Create(p Principal, patch *P) (*T, error) {
	if !r.WriteRole(p) {
		return nil, ErrForbidden
	}
	entity := new(T)
	if err := r.Merge(entity, patch); err != nil {
		return nil, err
	}
	if violations := r.Validate(entity); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	if err := r.Store.Persist(entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Update loads the targeted entity and applies only the payload-present
// fields onto it, leaving every other field at its prior value. The merged
// entity is validated before the commit; a rejected update changes nothing.
func (r *Resource[T, P]) Update(p Principal, id string, patch *P) (*T, error) {
	if !r.WriteRole(p) {
		return nil, ErrForbidden
	}
	entity, err := r.Store.Load(id)
	if err != nil {
		return nil, err
	}
	if err := r.Merge(entity, patch); err != nil {
		return nil, err
	}
	if violations := r.Validate(entity); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	if err := r.Store.Persist(entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Delete removes the targeted entity. Deleting a game never cascades to its
// editor or categories.
func (r *Resource[T, P]) Delete(p Principal, id string) error {
	if !r.WriteRole(p) {
		return ErrForbidden
	}
	if _, err := r.Store.Load(id); err != nil {
		return err
	}
	return r.Store.Delete(id)
}

// View maps an entity onto its configured read representation.
func (r *Resource[T, P]) View(entity *T) any {
	if r.Project == nil {
		return entity
	}
	return r.Project(entity)
}
