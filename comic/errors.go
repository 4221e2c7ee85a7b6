package comic

import "errors"

var (
	ErrStagingExists = errors.New("staging directory already exists")
	ErrTargetExists  = errors.New("target file already exists")
	ErrVerifyFailed  = errors.New("new archive does not match staged pages")
	ErrInvalidTitle  = errors.New("invalid title")
)
