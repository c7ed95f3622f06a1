package domain

import "strconv"

// ID is a storage-assigned surrogate key. Entities created in memory carry a
// nil *ID until the repository persists them; that presence signal drives the
// insert-vs-update split during beneficiary reconciliation.
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// NewID is a convenience for building the nullable id fields on restored
// entities.
func NewID(v int64) *ID {
	id := ID(v)
	return &id
}

type Event interface {
	GetName() string
	GetEntityName() string
}
