package models

// Caller is the authenticated identity attached to a request by the auth
// boundary. Services take it explicitly; nothing reads ambient request
// state.
type Caller struct {
	ID   uint
	Role string
}
