package application

// AuthorizeOwner is the single ownership check used by every operation
// that references an existing project. Keeping it as one pure function
// guarantees a new operation cannot forget or reimplement the check.
func AuthorizeOwner(ownerID, callerID string) error {
	if ownerID != callerID {
		return ErrNotProjectOwner
	}
	return nil
}
