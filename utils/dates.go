// utils/dates.go
package utils

import (
	"strconv"
	"strings"
	"time"
)

const isoDateLayout = "2006-01-02"

// ToISODate converts a time to its canonical YYYY-MM-DD string.
func ToISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// TodayISO returns today's date as YYYY-MM-DD (local wall clock).
func TodayISO() string {
	return ToISODate(time.Now())
}

// ParseISODate parses a canonical YYYY-MM-DD string.
func ParseISODate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(isoDateLayout, dateStr, time.Local)
}

// IsSameDay reports whether a YYYY-MM-DD string names the same calendar
// day as t.
func IsSameDay(dateStr string, t time.Time) bool {
	return dateStr == ToISODate(t)
}

// IsSameMonth reports whether a YYYY-MM-DD string falls in the given year
// and month.
func IsSameMonth(dateStr string, year int, month time.Month) bool {
	t, err := ParseISODate(dateStr)
	if err != nil {
		return false
	}
	return t.Year() == year && t.Month() == month
}

// FormatDate converts YYYY-MM-DD to the display form DD/MM/YYYY.
func FormatDate(dateStr string) string {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return dateStr
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// FormatTime returns an HH:MM string as-is; times are stored already
// formatted.
func FormatTime(timeStr string) string {
	return timeStr
}

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName returns the month's name in Portuguese.
func MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return monthNames[month-1]
}

var weekdayNames = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// WeekdayShort returns the abbreviated Portuguese weekday for a YYYY-MM-DD
// string, or "" when the date does not parse.
func WeekdayShort(dateStr string) string {
	t, err := ParseISODate(dateStr)
	if err != nil {
		return ""
	}
	return weekdayNames[t.Weekday()]
}

// CombineDateTime merges a YYYY-MM-DD date and an HH:MM time into a local
// time.Time, useful for ordering appointments chronologically.
func CombineDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(isoDateLayout+" 15:04", dateStr+" "+timeStr, time.Local)
}

// FormatMoney renders a value as Brazilian currency, e.g. 35 → "R$ 35,00".
// The stored value is always the raw decimal; only display uses this form.
func FormatMoney(value float64) string {
	return "R$ " + strings.Replace(strconv.FormatFloat(value, 'f', 2, 64), ".", ",", 1)
}
