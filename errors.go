package localeid

import "errors"

// Errors returned by the parsers and serializers. They are wrapped with
// context; test for them with errors.Is.
var (
	ErrInvalidInput  = errors.New("localeid: empty locale identifier")
	ErrEmptyChunk    = errors.New("localeid: empty chunk")
	ErrOrdering      = errors.New("localeid: duplicated or misplaced field")
	ErrSubtagShape   = errors.New("localeid: malformed subtag")
	ErrStructure     = errors.New("localeid: locale lacks required fields")
	ErrNoLocale      = errors.New("localeid: no locale set in environment")
	ErrUnknownFormat = errors.New("localeid: unknown identifier format")
)
