package buildlog

import "errors"

var ErrLogFile = errors.New("log file operation failed")
