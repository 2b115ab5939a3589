package vfs

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrNotAFile       = errors.New("record is not a file")
	ErrNotAFolder     = errors.New("parent is not a folder")
	ErrInvalidName    = errors.New("name must be non-empty and must not contain '/'")
	ErrRootImmutable  = errors.New("the root folder cannot be moved or deleted")
	ErrCycle          = errors.New("operation would create a cycle in the folder tree")
	ErrUnresolvedPath = errors.New("path leads to a missing parent")
	ErrReadOnly       = errors.New("file system is opened read-only")

	ErrMalformedState = errors.New("persisted file system state is malformed")
	ErrDuplicateID    = errors.New("duplicate record id")
	ErrRootCount      = errors.New("state must contain exactly one root folder")
	ErrOrphanRecord   = errors.New("record references a missing parent")
	ErrUnknownVersion = errors.New("unsupported state version")
)
