package services

import (
	"github.com/rankmaker/rankmaker/internal/apperr"
	"github.com/rankmaker/rankmaker/internal/identity"
	"github.com/rankmaker/rankmaker/internal/models"
)

// Access is the resolved capability of a requester against one tier list.
type Access struct {
	CanRead  bool
	CanWrite bool
}

// ResolveAccess applies the ownership rules in order: public lists are
// always readable; anonymous-owned lists require the matching capability
// token; user-owned lists require the matching authenticated id; unowned
// lists (seed templates) are read-only for everyone.
func ResolveAccess(list *models.TierList, ident identity.Identity) Access {
	ownerMatch := false
	switch {
	case list.AnonymousID != nil:
		ownerMatch = ident.AnonymousID != "" && ident.AnonymousID == *list.AnonymousID
	case list.UserID != nil:
		ownerMatch = ident.Authenticated() && ident.UserID == *list.UserID
	}

	return Access{
		CanRead:  list.IsPublic || ownerMatch || (list.UserID == nil && list.AnonymousID == nil),
		CanWrite: ownerMatch,
	}
}

// CheckRead returns the taxonomy error for a denied read: Unauthorized when
// no matching identity channel was presented at all, Forbidden when one was
// presented but does not match.
func CheckRead(list *models.TierList, ident identity.Identity) error {
	if ResolveAccess(list, ident).CanRead {
		return nil
	}
	return denial(list, ident)
}

func CheckWrite(list *models.TierList, ident identity.Identity) error {
	if ResolveAccess(list, ident).CanWrite {
		return nil
	}
	if list.UserID == nil && list.AnonymousID == nil {
		return apperr.New(apperr.Forbidden, "this tier list cannot be modified")
	}
	return denial(list, ident)
}

func denial(list *models.TierList, ident identity.Identity) error {
	if list.AnonymousID != nil {
		if ident.AnonymousID == "" {
			return apperr.New(apperr.Unauthorized, "anonymous id required")
		}
		return apperr.New(apperr.Forbidden, "you do not own this tier list")
	}
	if !ident.Authenticated() {
		return apperr.New(apperr.Unauthorized, "authentication required")
	}
	return apperr.New(apperr.Forbidden, "you do not own this tier list")
}
