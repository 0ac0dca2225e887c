package core

import (
	"errors"
)

var (
	ErrEndOfBuffer     = errors.New("end of buffer")
	ErrStartOfBuffer   = errors.New("start of buffer")
	ErrInvalidPosition = errors.New("invalid position")
	ErrDeleteRunes     = errors.New("cannot delete runes")
	ErrFailedToApply   = errors.New("cannot apply edit")
)

type ErrorId int

const (
	ErrEndOfBufferId ErrorId = iota
	ErrStartOfBufferId
	ErrInvalidPositionId
	ErrDeleteRunesId
	ErrFailedToApplyId
	ErrFailedToYankId
	ErrFailedToPasteId
)

// EditorError pairs an error with the id consumers switch on.
type EditorError struct {
	id  ErrorId
	err error
}

// NewEditorError wraps err with the given id.
func NewEditorError(id ErrorId, err error) *EditorError {
	return &EditorError{id: id, err: err}
}

func (e *EditorError) ID() ErrorId {
	return e.id
}

func (e *EditorError) Error() string {
	return e.err.Error()
}

func (e *EditorError) Unwrap() error {
	return e.err
}
