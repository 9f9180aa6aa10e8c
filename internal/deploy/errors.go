package deploy

import "errors"

var ErrDeploy = errors.New("deployment failed")
