package todo

// Ownership policy: pure decision functions over already-loaded entities.
// They perform no I/O and signal refusal by returning false; callers
// translate false into the appropriate typed error.

// CanAssignManager reports whether the requester may assign a manager on t.
// Only the todo's creator may do so: the owner must be present and its id
// must equal the requester's. Global role plays no part in this decision.
func CanAssignManager(t *Todo, requesterID int64) bool {
	return t.Owner != nil && t.Owner.ID == requesterID
}

// CanRemoveManager reports whether the requester may remove a manager from t.
// The rule is identical to assignment: creator privilege only.
func CanRemoveManager(t *Todo, requesterID int64) bool {
	return CanAssignManager(t, requesterID)
}

// BelongsTo reports whether m is registered on the todo identified by todoID.
func BelongsTo(m *Manager, todoID int64) bool {
	return m.Todo.ID == todoID
}
