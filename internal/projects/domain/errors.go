package domain

import "errors"

var (
	ErrNotFound   = errors.New("project not found")
	ErrDuplicate  = errors.New("project already exists")
	ErrValidation = errors.New("project_id and project_name are required")
)
