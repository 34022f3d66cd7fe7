package query

import "github.com/noah-isme/dayflow-go-api/internal/models"

// Actor identifies the authenticated caller for row-level decisions.
type Actor struct {
	ID   string
	Role models.Role
}

// Elevated reports whether the actor may act on records of any owner.
func (a Actor) Elevated() bool {
	return a.Role.Elevated()
}

// Policy decides row-level visibility. It is pure and never consults
// storage; the same rule applies to every entity kind.
type Policy struct{}

// CanView reports whether the actor may read a record owned by ownerID.
func (Policy) CanView(actor Actor, ownerID string) bool {
	if actor.Elevated() {
		return true
	}
	return actor.ID == ownerID
}

// CanMutate reports whether the actor may modify or delete a record
// owned by ownerID. The rule is identical to CanView.
func (p Policy) CanMutate(actor Actor, ownerID string) bool {
	return p.CanView(actor, ownerID)
}
