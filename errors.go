package localepath

import "errors"

var (
	ErrInvalidConfigFile   = errors.New("localepath: invalid config file")
	ErrUnsupportedFileType = errors.New("localepath: unsupported config file type")
)
