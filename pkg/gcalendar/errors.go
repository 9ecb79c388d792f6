package gcalendar

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// isGone reports whether the API says the event no longer exists.
func isGone(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	return gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone
}
