package emailtemplate

import "errors"

var (
	ErrTemplateNotFound   = errors.New("email template not found")
	ErrTemplateNameExists = errors.New("email template with this name already exists")
	ErrTemplateInactive   = errors.New("email template is inactive")
	ErrTemplateRender     = errors.New("failed to render email template")
	ErrLogNotFound        = errors.New("email log not found")
)
