package domain

// ScopeKind distinguishes unrestricted access from owner-restricted access.
type ScopeKind int

const (
	ScopeAll ScopeKind = iota
	ScopeOwner
)

// Scope restricts which records a store query may touch. It is applied when
// the query is built, never as a filter over results.
type Scope struct {
	Kind    ScopeKind
	OwnerID string
}

// Unrestricted returns a scope covering every record.
func Unrestricted() Scope {
	return Scope{Kind: ScopeAll}
}

// OwnedBy returns a scope covering only records owned by ownerID.
func OwnedBy(ownerID string) Scope {
	return Scope{Kind: ScopeOwner, OwnerID: ownerID}
}

// Restricted reports whether the scope limits records to one owner.
func (s Scope) Restricted() bool {
	return s.Kind == ScopeOwner
}

// Action is the operation a policy is asked to authorise.
type Action int

const (
	ActionCreate Action = iota
	ActionList
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionList:
		return "list"
	case ActionDelete:
		return "delete"
	}
	return "unknown"
}

// Policy decides the scope an actor gets for an action, or ErrForbidden.
type Policy func(actor *Actor, action Action) (Scope, error)

// AdminManaged lets admins do everything across all records. Reader roles
// may list all records but not create or delete them.
func AdminManaged(readers ...Role) Policy {
	return func(actor *Actor, action Action) (Scope, error) {
		if actor == nil {
			return Scope{}, ErrUnauthorized
		}
		if actor.Role == RoleAdmin {
			return Unrestricted(), nil
		}
		if action == ActionList {
			for _, r := range readers {
				if actor.Role == r {
					return Unrestricted(), nil
				}
			}
		}
		return Scope{}, ErrForbidden
	}
}

// OwnerScoped confines the owner role to its own records for every action.
// Admins may list and delete across owners but cannot create, since a new
// record needs an owner.
func OwnerScoped(owner Role) Policy {
	return func(actor *Actor, action Action) (Scope, error) {
		if actor == nil {
			return Scope{}, ErrUnauthorized
		}
		switch actor.Role {
		case owner:
			if actor.ID == "" {
				return Scope{}, ErrUnauthorized
			}
			return OwnedBy(actor.ID), nil
		case RoleAdmin:
			if action == ActionCreate {
				return Scope{}, ErrForbidden
			}
			return Unrestricted(), nil
		}
		return Scope{}, ErrForbidden
	}
}
