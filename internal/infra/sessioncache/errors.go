package sessioncache

import "errors"

var (
	ErrSessionNotFound  = errors.New("sessioncache: session not found")
	ErrEncodeSession    = errors.New("sessioncache: failed to encode session")
	ErrDecodeSession    = errors.New("sessioncache: failed to decode session")
	ErrCacheUnavailable = errors.New("sessioncache: cache unavailable")
)
