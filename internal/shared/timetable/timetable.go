// Package timetable holds the day-of-week and time-of-day wire values shared
// by the schedules and offerings contexts.
package timetable

import (
	"errors"
	"regexp"
)

// DayOfWeek enumerates timetable days using the persisted wire values.
type DayOfWeek string

const (
	Sunday    DayOfWeek = "Domingo"
	Monday    DayOfWeek = "Segunda-feira"
	Tuesday   DayOfWeek = "Terça-feira"
	Wednesday DayOfWeek = "Quarta-feira"
	Thursday  DayOfWeek = "Quinta-feira"
	Friday    DayOfWeek = "Sexta-feira"
	Saturday  DayOfWeek = "Sábado"
)

var (
	ErrInvalidDay       = errors.New("day of week is invalid")
	ErrInvalidTimeOfDay = errors.New("time of day must be in HH:MM:SS format")
)

// ValidDay reports whether d is one of the seven known values.
func ValidDay(d DayOfWeek) bool {
	switch d {
	case Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	default:
		return false
	}
}

var timeOfDayRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

// ValidTimeOfDay reports whether s matches the HH:MM:SS wire format.
func ValidTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(s)
}
