package domain

// Authorization policy. These two functions are the single source of truth
// for access decisions; services must call them rather than compare roles
// or owner ids inline.

// CanViewAll reports whether a role may see every task in the store.
func CanViewAll(role Role) bool {
	return role == RoleAdmin
}

// CanMutate reports whether a requester may update or delete a resource
// owned by ownerID.
func CanMutate(role Role, requesterID, ownerID int64) bool {
	return role == RoleAdmin || requesterID == ownerID
}
