package domain

import "errors"

var (
	// ErrFetch is returned when the question source could not deliver a batch.
	ErrFetch = errors.New("question fetch failed")
	// ErrMalformedData is returned alongside ErrFetch when the source answered with an unexpected shape.
	ErrMalformedData = errors.New("malformed question data")
	// ErrPersistenceRead indicates stored scores or identity could not be decoded.
	ErrPersistenceRead = errors.New("stored data is unreadable")
	// ErrEmptyUsername is returned when an anonymous player submits without a name.
	ErrEmptyUsername = errors.New("username must not be empty")
	// ErrInvalidSelection indicates a selection that does not match the rendered batch.
	ErrInvalidSelection = errors.New("selection does not match rendered questions")
)
