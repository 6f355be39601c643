package services

import "time"

// FormatContractDate formats a point-in-time value the way the contract
// header expects it: two-digit day, three-letter month, two-digit year,
// e.g. "05-Mar-26".
func FormatContractDate(t time.Time) string {
	return t.Format("02-Jan-06")
}
