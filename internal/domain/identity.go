package domain

import (
	"encoding/json"
	"strconv"
)

type idKind int

const (
	idCreate idKind = iota
	idUpdate
	idInvalid
)

// UpsertID is the create/update decision carried by an entity's identity
// field. On the wire it is a plain integer: 0 requests a create, a positive
// value updates that row, a negative value is malformed input. The zero
// value of UpsertID is Create, so an omitted identity field means "insert".
type UpsertID struct {
	kind idKind
	id   int64
}

// UpsertIDFrom classifies a raw identity value.
func UpsertIDFrom(raw int64) UpsertID {
	switch {
	case raw == 0:
		return UpsertID{kind: idCreate}
	case raw > 0:
		return UpsertID{kind: idUpdate, id: raw}
	default:
		return UpsertID{kind: idInvalid, id: raw}
	}
}

// CreateID requests insertion of a new row.
func CreateID() UpsertID { return UpsertID{kind: idCreate} }

// UpdateID targets an existing row.
func UpdateID(id int64) UpsertID { return UpsertIDFrom(id) }

func (u UpsertID) IsCreate() bool  { return u.kind == idCreate }
func (u UpsertID) IsInvalid() bool { return u.kind == idInvalid }

// Target returns the update target and whether this id is an update.
func (u UpsertID) Target() (int64, bool) {
	return u.id, u.kind == idUpdate
}

// Raw returns the wire representation of the identity.
func (u UpsertID) Raw() int64 { return u.id }

func (u *UpsertID) UnmarshalJSON(data []byte) error {
	raw, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*u = UpsertIDFrom(raw)
	return nil
}

func (u UpsertID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.id)
}
