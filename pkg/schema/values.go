/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package schema

import "fmt"

// Date is a calendar date field value. The zero value is not a valid date;
// field values are either a well-formed Date or nil.
//
// Dates are plain value types: structural validity (month and day ranges) is
// enforced by the grammar parser, not here.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%02d", d.Month, d.Day, d.Year%100)
}

// Time is a time-of-day field value with one second resolution.
type Time struct {
	Hour   int
	Minute int
	Second int
}

func (t Time) String() string {
	return fmt.Sprintf("%d:%02d:%02d", t.Hour, t.Minute, t.Second)
}
