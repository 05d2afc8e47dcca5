package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/wonderwords/internal/api/shared"
	"github.com/phrazzld/wonderwords/internal/store"
)

// errNoSession is reported when a handler runs without the session middleware.
var errNoSession = errors.New("no session history in request context")

// historyFromRequest extracts the session's word history from the request context.
// The history is expected to be placed in the context by the session middleware.
// It writes an error response when the history is missing.
//
// Returns:
//   - (history, true): The session history if found
//   - (nil, false): If not found; an error response has been written
func historyFromRequest(w http.ResponseWriter, r *http.Request) (*store.History, bool) {
	history, ok := shared.GetHistory(r.Context())
	if !ok {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MessageUnexpected, errNoSession)
		return nil, false
	}
	return history, true
}

// handleAPIError writes the status code and safe message for err and logs
// the redacted details.
func handleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
