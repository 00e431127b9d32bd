package resolve

import (
	"strings"

	"github.com/Diavel78/product-trainer/pkg/inventory"
)

// LocationResolver maps raw location hints to one of the configured stores
// or StoreUnassigned. Resolution is total and idempotent: every input maps
// to exactly one store and no input raises.
type LocationResolver struct {
	config LocationConfig
}

// NewLocationResolver creates a resolver over the given store table.
func NewLocationResolver(config LocationConfig) *LocationResolver {
	return &LocationResolver{config: config}
}

// Resolve applies the ordered resolution policy:
//
//  1. A non-empty explicit location/dealer field that matches a store
//     alias is authoritative and returns immediately, without URL
//     inspection; a dealer field match must not be second-guessed by an
//     incidental domain hit.
//  2. A URL containing a known per-store domain resolves next; the domain
//     is considered more reliable than free-text tag matches.
//  3. Joined tag text is matched against the alias table last.
//
// Anything else resolves to StoreUnassigned.
func (r *LocationResolver) Resolve(location string, tags []string, url string) inventory.Store {
	if location != "" {
		if store, ok := r.matchAlias(location); ok {
			return store
		}
	}

	if url != "" {
		if store, ok := r.matchDomain(url); ok {
			return store
		}
	}

	if len(tags) > 0 {
		if store, ok := r.matchAlias(strings.Join(tags, " ")); ok {
			return store
		}
	}

	return inventory.StoreUnassigned
}

// FromURL resolves a store from a unit URL alone.
func (r *LocationResolver) FromURL(url string) inventory.Store {
	if store, ok := r.matchDomain(url); ok {
		return store
	}
	return inventory.StoreUnassigned
}

// matchAlias case-insensitively substring-matches text against each store
// alias, in table order.
func (r *LocationResolver) matchAlias(text string) (inventory.Store, bool) {
	lower := strings.ToLower(text)
	for _, rule := range r.config.Rules {
		for _, alias := range rule.Aliases {
			if strings.Contains(lower, strings.ToLower(alias)) {
				return rule.Store, true
			}
		}
	}
	return inventory.StoreUnassigned, false
}

// matchDomain matches a URL against each store's known domains, in table order.
func (r *LocationResolver) matchDomain(url string) (inventory.Store, bool) {
	lower := strings.ToLower(url)
	for _, rule := range r.config.Rules {
		for _, domain := range rule.Domains {
			if strings.Contains(lower, strings.ToLower(domain)) {
				return rule.Store, true
			}
		}
	}
	return inventory.StoreUnassigned, false
}
