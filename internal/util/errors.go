package util

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("screening session not found")
	ErrSessionCompleted   = errors.New("screening session already completed")
	ErrReportNotFound     = errors.New("report not found")
	ErrNoExtractableText  = errors.New("no extractable text in uploaded document")
	ErrEmptyAnswer        = errors.New("answer must not be empty")
)
