package kernel

import "errors"

// ErrActorIsNotConstructed is returned when a zero-value Actor reaches a command.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated identity a command runs for. The HTTP adapter
// builds it from a verified session token; commands never trust a user id
// taken from a request body.
type Actor struct {
	userID UUID
	role   Role
}

// NewActor validates both the identifier and the role.
func NewActor(userID UUID, role Role) (Actor, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{userID: userID, role: role}, nil
}

func (a Actor) UserID() UUID { return a.userID }

func (a Actor) Role() Role { return a.role }

func (a Actor) IsAdmin() bool { return a.role == RoleAdmin }

// Owns reports whether the actor is the given owner.
func (a Actor) Owns(ownerID UUID) bool {
	return a.userID.IsEqual(ownerID)
}

// Validate rejects actors that were not built through NewActor.
func (a Actor) Validate() error {
	if a.userID.Validate() != nil || a.role.Validate() != nil {
		return ErrActorIsNotConstructed
	}
	return nil
}
