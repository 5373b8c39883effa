package carreltex

import "github.com/boan-anbo/carreltex-sub000/mount"

// Mount re-exports the mount package's container type so callers driving
// the top-level API never need to import the mount subpackage directly.
type Mount = mount.Mount

// NewMount returns an empty, unfinalised Mount.
func NewMount() *Mount {
	return mount.New()
}
