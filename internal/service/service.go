// Package service implements the asynchronous workflows issued against the
// stores. Every workflow follows the same protocol: mark the store busy,
// call the transport, apply exactly one store mutation on success, record a
// readable message and propagate on failure, and always settle the busy flag.
package service

import (
	appErrors "github.com/edusphere/lms-client/pkg/errors"
)

// failMessage picks the error message surfaced to the UI: the server-reported
// message when one exists, otherwise the workflow's fixed fallback.
func failMessage(err error, fallback string) string {
	appErr := appErrors.FromError(err)
	if appErr.Code == appErrors.ErrTransport.Code || appErr.Message == "" {
		return fallback
	}
	return appErr.Message
}
