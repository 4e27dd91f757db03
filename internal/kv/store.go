// Package kv defines the persistent key-value contract the rest of GophGate
// is built on. It plays the part of a browser's local storage: string keys,
// opaque values, no transactions.
package kv

import (
	"context"
)

// Store is a string-keyed persistent value store.
//
// Get returns (nil, nil) when the key is absent. Delete of an absent key is
// not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type prefixed struct {
	next   Store
	prefix string
}

// WithPrefix returns a Store that namespaces every key with prefix + ":".
// An empty prefix returns s unchanged.
func WithPrefix(s Store, prefix string) Store {
	if prefix == "" {
		return s
	}
	return &prefixed{next: s, prefix: prefix + ":"}
}

func (p *prefixed) Get(ctx context.Context, key string) ([]byte, error) {
	return p.next.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key string, value []byte) error {
	return p.next.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Delete(ctx context.Context, key string) error {
	return p.next.Delete(ctx, p.prefix+key)
}
