package utils

import "fmt"

// ServiceError is a failed call to one of the external services
// ("spreadsheet" or "email").
type ServiceError struct {
	Service string
	Err     error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service: %v", e.Service, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
