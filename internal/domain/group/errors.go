package group

import "errors"

var ErrGroupNotFound = errors.New("appraisal group not found")
