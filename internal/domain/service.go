package domain

import "fmt"

type ServiceType string

const (
	ServiceGrooming ServiceType = "grooming"
	ServiceDaycare  ServiceType = "daycare"
	ServiceHotel    ServiceType = "hotel"
)

var ServiceTypes = []ServiceType{ServiceGrooming, ServiceDaycare, ServiceHotel}

func ParseServiceType(s string) (ServiceType, error) {
	for _, st := range ServiceTypes {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown service type %q", ErrValidation, s)
}

// IntervalBased reports whether the service books a check-in/check-out range
// instead of a discrete slot.
func (s ServiceType) IntervalBased() bool {
	return s == ServiceHotel
}
