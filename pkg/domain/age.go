package domain

import "time"

// AgeOn returns the number of whole years between birthDate and now using calendar
// semantics: the year difference, minus one when now's (month, day) falls before the
// birthday's (month, day). Both instants are compared in UTC. Birth dates after now
// yield 0.
//
// Example:
//
//	birthDate := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
//	AgeOn(birthDate, time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)) // 34
//	AgeOn(birthDate, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)) // 33
func AgeOn(birthDate, now time.Time) int {
	birthDate = birthDate.UTC()
	now = now.UTC()
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
