package toolchain

import "errors"

var ErrQtNotFound = errors.New("qt6 installation not found")
