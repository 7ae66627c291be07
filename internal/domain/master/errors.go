package master

import "errors"

var (
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrDesignationNotFound = errors.New("designation not found")
	ErrDepartmentNameTaken = errors.New("department name already exists")
)
