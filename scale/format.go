// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"strconv"
)

// powerTol is the log10-space tolerance for recognizing a power of ten.
const powerTol = 1e-10

// FormatTick returns the label text for a tick value.
// Log and SymLog render exact powers of ten as 10^n. Otherwise
// Linear and Log use one decimal, SymLog uses two decimals for
// magnitudes below one, and Time renders month/day.
func (t Types) FormatTick(v float64) string {
	switch t {
	case Time:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ""
		}
		_, m, d := CivilDate(int64(math.Floor(v / 86400)))
		return strconv.Itoa(m) + "/" + strconv.Itoa(d)
	case Log, SymLog:
		if v == 0 {
			return "0"
		}
		if n, ok := PowerOfTen(v); ok {
			if v < 0 {
				return "-10^" + strconv.Itoa(n)
			}
			return "10^" + strconv.Itoa(n)
		}
		if t == SymLog && math.Abs(v) < 1 {
			return strconv.FormatFloat(v, 'f', 2, 64)
		}
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// PowerOfTen returns n and true when |v| is 10^n within tolerance.
func PowerOfTen(v float64) (int, bool) {
	a := math.Abs(v)
	if a == 0 || math.IsInf(a, 0) || math.IsNaN(a) {
		return 0, false
	}
	lg := math.Log10(a)
	n := math.Round(lg)
	if math.Abs(lg-n) < powerTol {
		return int(n), true
	}
	return 0, false
}

// IsLeapYear reports whether y is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in month m (1-12) of year y.
func DaysInMonth(y, m int) int {
	if m == 2 && IsLeapYear(y) {
		return 29
	}
	return monthDays[m-1]
}

// CivilDate returns the year, month (1-12) and day (1-31) for a
// count of days since 1970-01-01, which may be negative.
func CivilDate(days int64) (year, month, day int) {
	// any 400 consecutive years have 146097 days
	const cycle = 146097
	year = 1970
	if days < 0 {
		k := -(days + 1) / cycle
		days += k * cycle
		days += cycle
		year -= int(k+1) * 400
	}
	year += int(days/cycle) * 400
	days %= cycle
	for {
		n := int64(daysInYear(year))
		if days < n {
			break
		}
		days -= n
		year++
	}
	month = 1
	for {
		n := int64(DaysInMonth(year, month))
		if days < n {
			break
		}
		days -= n
		month++
	}
	return year, month, int(days) + 1
}

func daysInYear(y int) int {
	if IsLeapYear(y) {
		return 366
	}
	return 365
}
