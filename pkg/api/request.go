package api

import "net/http"

// UserIDHeader carries the authenticated caller's id. Authentication itself
// happens upstream at the gateway; by the time a request reaches this
// service the header is trusted.
const UserIDHeader = "X-User-Id"

// UserID extracts the caller's user id from the request.
func UserID(r *http.Request) string {
	return r.Header.Get(UserIDHeader)
}
