package vault

import (
	"sort"
	"strings"
)

// NormalizeService lowercases a service name so "GitHub" and "github" hit
// the same record.
func NormalizeService(service string) string {
	return strings.ToLower(strings.TrimSpace(service))
}

// Upsert inserts or unconditionally replaces the entry for service. Whether
// an existing entry may be overwritten is the caller's decision; ask before
// calling, not here.
func (c Contents) Upsert(service string, e Entry) {
	c[NormalizeService(service)] = e
}

// Get looks up the entry for service.
func (c Contents) Get(service string) (Entry, error) {
	e, ok := c[NormalizeService(service)]
	if !ok {
		return Entry{}, ErrEntryNotFound
	}
	return e, nil
}

// Has reports whether an entry exists for service.
func (c Contents) Has(service string) bool {
	_, ok := c[NormalizeService(service)]
	return ok
}

// Remove deletes the entry for service, leaving contents untouched on a miss.
func (c Contents) Remove(service string) error {
	key := NormalizeService(service)
	if _, ok := c[key]; !ok {
		return ErrEntryNotFound
	}
	delete(c, key)
	return nil
}

// List returns (service, username) rows sorted by service name. Passwords
// never appear in this view.
func (c Contents) List() []ListItem {
	items := make([]ListItem, 0, len(c))
	for service, e := range c {
		items = append(items, ListItem{Service: service, Username: e.Username})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Service < items[j].Service })
	return items
}
