package mediastore

import "errors"

var (
	ErrInitClient   = errors.New("mediastore: failed to init client")
	ErrUploadFailed = errors.New("mediastore: failed to upload file")
	ErrDeleteFailed = errors.New("mediastore: failed to delete file")
)
