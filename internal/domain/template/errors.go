package template

import "errors"

var ErrTemplateNotFound = errors.New("questionnaire template not found")
