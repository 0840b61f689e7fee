package registry

import (
	"asset-marketplace/internal/marketerrors"
	"fmt"
	"sync"
)

// AssetRegistry defines the external collaborator that owns minting, burning
// and transfer of unique-asset identities. The marketplace never mutates
// ownership directly; every custody movement goes through this interface.
type AssetRegistry interface {
	Mint(owner string, id uint64, uri string) error
	Burn(id uint64) error
	OwnerOf(id uint64) (string, error)
	Transfer(from, to string, id uint64) error
}

// MemoryRegistry is a concurrency-safe in-memory implementation of AssetRegistry
type MemoryRegistry struct {
	mu     sync.RWMutex
	owners map[uint64]string // key: asset id -> value: current owner
	uris   map[uint64]string // key: asset id -> value: token URI
}

// NewMemoryRegistry creates a new in-memory registry instance
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		owners: make(map[uint64]string),
		uris:   make(map[uint64]string),
	}
}

// Mint records a new asset owned by the given account
func (r *MemoryRegistry) Mint(owner string, id uint64, uri string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner == "" {
		return fmt.Errorf("mint asset %d: %w: empty owner", id, marketerrors.ErrTransferFailed)
	}
	if _, ok := r.owners[id]; ok {
		return fmt.Errorf("mint asset %d: %w: id already minted", id, marketerrors.ErrTransferFailed)
	}

	r.owners[id] = owner
	r.uris[id] = uri
	return nil
}

// Burn removes an asset from the registry
func (r *MemoryRegistry) Burn(id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.owners[id]; !ok {
		return fmt.Errorf("burn asset %d: %w", id, marketerrors.ErrItemNotFound)
	}

	delete(r.owners, id)
	delete(r.uris, id)
	return nil
}

// OwnerOf returns the current owner of an asset
func (r *MemoryRegistry) OwnerOf(id uint64) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owner, ok := r.owners[id]
	if !ok {
		return "", fmt.Errorf("owner of asset %d: %w", id, marketerrors.ErrItemNotFound)
	}
	return owner, nil
}

// Transfer moves an asset between accounts. The from account must be the
// current owner, otherwise the transfer is rejected.
func (r *MemoryRegistry) Transfer(from, to string, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, ok := r.owners[id]
	if !ok {
		return fmt.Errorf("transfer asset %d: %w", id, marketerrors.ErrItemNotFound)
	}
	if owner != from {
		return fmt.Errorf("transfer asset %d: %w: held by %s", id, marketerrors.ErrNotOwner, owner)
	}
	if to == "" {
		return fmt.Errorf("transfer asset %d: %w: empty receiver", id, marketerrors.ErrTransferFailed)
	}

	r.owners[id] = to
	return nil
}

// URI returns the token URI recorded at mint time
func (r *MemoryRegistry) URI(id uint64) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	uri, ok := r.uris[id]
	if !ok {
		return "", fmt.Errorf("uri of asset %d: %w", id, marketerrors.ErrItemNotFound)
	}
	return uri, nil
}
