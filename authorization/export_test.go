package authorization

// SessionContextKey exposes sessionContextKey to the external authorization_test package.
const SessionContextKey = sessionContextKey
