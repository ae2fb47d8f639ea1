package application

import "fmt"

// Entity names used in ReferenceNotFoundError, in validation order.
const (
	EntityCarrier  = "Carrier"
	EntityRoute    = "Route"
	EntitySchedule = "Schedule"
	EntityVehicle  = "Vehicle"
)

// ReferenceNotFoundError reports a foreign id that does not resolve to an
// existing collaborator entity. Creation fails fast on the first missing
// reference in the order carrier, route, schedule, vehicle.
type ReferenceNotFoundError struct {
	Entity string
	ID     string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s with id %q does not exist", e.Entity, e.ID)
}

// DuplicateOfferingError reports that the submitted 4-tuple already exists,
// whether detected by the pre-check or by the storage constraint.
type DuplicateOfferingError struct {
	CarrierID  string
	RouteID    string
	ScheduleID string
	VehicleID  string
}

func (e *DuplicateOfferingError) Error() string {
	return fmt.Sprintf(
		"offering already exists for carrier=%s route=%s schedule=%s vehicle=%s",
		e.CarrierID, e.RouteID, e.ScheduleID, e.VehicleID,
	)
}
