package organisation

import "errors"

var (
	ErrOrganisationNotFound = errors.New("organisation not found")
	ErrCodeExists           = errors.New("organisation code already exists in this tenant")
	ErrOrganisationInactive = errors.New("organisation is inactive")
)
