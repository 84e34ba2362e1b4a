package entity

// Collection is an ordered id list plus an id-to-entity mapping. The two are
// kept in 1:1 correspondence by construction: every mutator returns a new
// Collection and never leaves an orphan id or an unlisted entity.
type Collection[ID comparable, T any] struct {
	IDs      []ID     `json:"ids"`
	Entities map[ID]T `json:"entities"`
}

// NewCollection returns an empty collection
func NewCollection[ID comparable, T any]() Collection[ID, T] {
	return Collection[ID, T]{
		IDs:      []ID{},
		Entities: map[ID]T{},
	}
}

// Len returns the number of entities
func (c Collection[ID, T]) Len() int {
	return len(c.IDs)
}

// Get looks up an entity by id
func (c Collection[ID, T]) Get(id ID) (T, bool) {
	v, ok := c.Entities[id]
	return v, ok
}

// Has reports whether the id is present
func (c Collection[ID, T]) Has(id ID) bool {
	_, ok := c.Entities[id]
	return ok
}

// Upsert returns a copy with the entity added or replaced. New ids are
// appended to the order.
func (c Collection[ID, T]) Upsert(id ID, v T) Collection[ID, T] {
	next := c.clone()
	if !next.Has(id) {
		next.IDs = append(next.IDs, id)
	}
	next.Entities[id] = v
	return next
}

// UpsertMany returns a copy with every entity added or replaced
func (c Collection[ID, T]) UpsertMany(ids []ID, entities map[ID]T) Collection[ID, T] {
	next := c.clone()
	for _, id := range ids {
		if _, ok := next.Entities[id]; !ok {
			next.IDs = append(next.IDs, id)
		}
		next.Entities[id] = entities[id]
	}
	return next
}

// Update returns a copy with the entity replaced if it exists. An unknown id
// is a no-op returning the receiver unchanged.
func (c Collection[ID, T]) Update(id ID, v T) Collection[ID, T] {
	if !c.Has(id) {
		return c
	}
	next := c.clone()
	next.Entities[id] = v
	return next
}

// Remove returns a copy without the given id. An unknown id is a no-op
// returning the receiver unchanged.
func (c Collection[ID, T]) Remove(id ID) Collection[ID, T] {
	if !c.Has(id) {
		return c
	}
	next := Collection[ID, T]{
		IDs:      make([]ID, 0, len(c.IDs)-1),
		Entities: make(map[ID]T, len(c.Entities)-1),
	}
	for _, existing := range c.IDs {
		if existing == id {
			continue
		}
		next.IDs = append(next.IDs, existing)
		next.Entities[existing] = c.Entities[existing]
	}
	return next
}

// RemoveMany returns a copy without the given ids
func (c Collection[ID, T]) RemoveMany(ids []ID) Collection[ID, T] {
	drop := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		if c.Has(id) {
			drop[id] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return c
	}
	next := Collection[ID, T]{
		IDs:      make([]ID, 0, len(c.IDs)-len(drop)),
		Entities: make(map[ID]T, len(c.Entities)-len(drop)),
	}
	for _, existing := range c.IDs {
		if _, ok := drop[existing]; ok {
			continue
		}
		next.IDs = append(next.IDs, existing)
		next.Entities[existing] = c.Entities[existing]
	}
	return next
}

// All returns the entities in id order
func (c Collection[ID, T]) All() []T {
	out := make([]T, 0, len(c.IDs))
	for _, id := range c.IDs {
		out = append(out, c.Entities[id])
	}
	return out
}

func (c Collection[ID, T]) clone() Collection[ID, T] {
	next := Collection[ID, T]{
		IDs:      make([]ID, len(c.IDs)),
		Entities: make(map[ID]T, len(c.Entities)),
	}
	copy(next.IDs, c.IDs)
	for id, v := range c.Entities {
		next.Entities[id] = v
	}
	return next
}
