package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for roster operations
var (
	ErrEmptyRoster   = goerr.New("roster has no rows")
	ErrNoMembers     = goerr.New("roster has no member columns")
	ErrUnknownMember = goerr.New("member not found in roster")
)

// Error tags for categorization
var (
	ErrTagFetch        = goerr.NewTag("fetch_failed")
	ErrTagParse        = goerr.NewTag("parse_failed")
	ErrTagInvalidInput = goerr.NewTag("invalid_input")
)
