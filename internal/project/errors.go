package project

import "errors"

var ErrManifest = errors.New("invalid project manifest")
