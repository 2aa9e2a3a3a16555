package fixtures

import "github.com/pkg/errors"

var errInvalidLemniscateParams = errors.New("invalid parameters for lemniscate curve")
