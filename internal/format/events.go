package format

import (
	"fmt"

	"github.com/bilgisen/kientruc/internal/models"
)

const (
	EventFallbackTitle    = "Sự kiện nổi bật"
	EventFallbackSubtitle = "Sự kiện đã có thời gian cụ thể."
	EventTimeUnknown      = "Thời gian cập nhật"
)

var eventTitleFields = []field[models.EventItem]{
	func(e models.EventItem) string { return e.Title },
	func(e models.EventItem) string { return e.Name },
}

var eventSubtitleFields = []field[models.EventItem]{
	func(e models.EventItem) string { return e.ShortDescription },
	func(e models.EventItem) string { return e.Description },
	func(e models.EventItem) string { return e.Summary },
	func(e models.EventItem) string { return e.Location },
}

func EventTitle(e models.EventItem) string {
	return firstOf(e, eventTitleFields, EventFallbackTitle)
}

func EventSubtitle(e models.EventItem) string {
	return firstOf(e, eventSubtitleFields, EventFallbackSubtitle)
}

// EventTimeRange renders the clock times of an event, e.g. "08:00 - 11:30".
func EventTimeRange(e models.EventItem) string {
	start, okStart := parseDate(e.StartTime)
	end, okEnd := parseDate(e.EndTime)

	switch {
	case okStart && okEnd:
		return start.Format("15:04") + " - " + end.Format("15:04")
	case okStart:
		return start.Format("15:04")
	case okEnd:
		return "Đến " + end.Format("15:04")
	}
	return EventTimeUnknown
}

// EventDateRange renders the days an event spans, collapsing the shared
// month and year:
//
//	same month    Ngày 05 - 08 / 03/2024
//	same year     Ngày 05/03 - 08/05/2024
//	otherwise     Ngày 30/12/2024 - 02/01/2025
//	start only    Ngày 05/03/2024
//	end only      Kết thúc 08/03/2024
//	neither       Đang cập nhật
func EventDateRange(e models.EventItem) string {
	start, okStart := parseDate(e.StartTime)
	end, okEnd := parseDate(e.EndTime)

	switch {
	case !okStart && !okEnd:
		return Updating
	case !okEnd:
		return "Ngày " + shortDate(start)
	case !okStart:
		return "Kết thúc " + shortDate(end)
	}

	sameYear := start.Year() == end.Year()
	sameMonth := sameYear && start.Month() == end.Month()

	switch {
	case sameMonth:
		return fmt.Sprintf("Ngày %02d - %02d / %02d/%d", start.Day(), end.Day(), int(start.Month()), start.Year())
	case sameYear:
		return fmt.Sprintf("Ngày %s - %s", start.Format("02/01"), shortDate(end))
	}
	return fmt.Sprintf("Ngày %s - %s", shortDate(start), shortDate(end))
}
