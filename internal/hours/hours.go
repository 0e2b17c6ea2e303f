// Package hours parses opening-hours strings (e.g. from Google Places
// weekdayDescriptions) and resolves the current open/closed status of a gym.
//
// The input format is up to 7 day segments joined by " · ", each segment
// "<DayName>: <range or 'Closed' or 'Open 24 hours'>". Day names may be the
// full English name or the 3-letter abbreviation. Malformed input never
// produces an error: status degrades to unknown (nil) and the day list to
// fewer entries.
package hours

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var dayNamesLong = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
var dayNamesShort = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// segmentSeparator joins day segments in the upstream hours string.
const segmentSeparator = " · "

// alwaysOpenClosesAt is the sentinel closing time reported for 24-hour days.
// Intentionally a fixed literal rather than a real midnight rollover.
const alwaysOpenClosesAt = "11:59 PM"

var (
	re12h = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)$`)
	re24h = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

	reClosed = regexp.MustCompile(`(?i)closed`)
	// reOpen24Hint is the narrower marker used to keep "Closed" from
	// shadowing text like "Closed, but open 24 hours on holidays".
	reOpen24Hint   = regexp.MustCompile(`(?i)open\s*24`)
	reAlwaysOpen   = regexp.MustCompile(`(?i)open\s*24|24\s*hour|00:00\s*[–-]\s*24:00|12:00\s*AM\s*[–-]\s*11:59\s*PM`)
	reRange12h     = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:AM|PM)?)\s*[–-]\s*(\d{1,2}:\d{2}\s*(?:AM|PM)?)`)
	reRange24h     = regexp.MustCompile(`(\d{1,2}:\d{2})\s*[–-]\s*(\d{1,2}:\d{2})`)
)

// PlaceStatus reports whether a place is open right now and the clock time of
// the next transition. Exactly one of OpensAt/ClosesAt is set.
type PlaceStatus struct {
	IsOpen   bool   `json:"isOpen"`
	OpensAt  string `json:"opensAt,omitempty"`
	ClosesAt string `json:"closesAt,omitempty"`
}

// DayHours is one row of a weekly schedule for display.
type DayHours struct {
	DayName   string `json:"dayName"`
	HoursText string `json:"hoursText"`
}

// parseTimeToMinutes parses "6:00 AM", "9:00 PM", "06:00" or "21:00" into
// minutes since midnight.
func parseTimeToMinutes(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if m := re12h.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		switch strings.ToUpper(m[3]) {
		case "PM":
			if h != 12 {
				h += 12
			}
		case "AM":
			if h == 12 {
				h = 0
			}
		}
		return h*60 + mm, true
	}
	if m := re24h.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		return h*60 + mm, true
	}
	return 0, false
}

// formatMinutes renders minutes since midnight as "h:mm AM/PM".
func formatMinutes(minutes int) string {
	h := (minutes / 60) % 24
	m := minutes % 60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	hour12 := h % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return strconv.Itoa(hour12) + ":" + pad2(m) + " " + period
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func splitSegments(hoursStr string) []string {
	parts := strings.Split(hoursStr, segmentSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// daySegment resolves the segment for the given weekday index (0=Sunday).
// Primary path matches the long or short day name at the start of a segment;
// the positional fallback (segments[dayIdx]) is a deliberate degradation for
// upstream data that omits day names.
func daySegment(segments []string, dayIdx int) (string, bool) {
	longPrefix := dayNamesLong[dayIdx] + ":"
	shortPrefix := dayNamesShort[dayIdx] + ":"
	for _, seg := range segments {
		if strings.HasPrefix(seg, longPrefix) || strings.HasPrefix(seg, shortPrefix) {
			return seg, true
		}
	}
	if dayIdx < len(segments) && segments[dayIdx] != "" {
		return segments[dayIdx], true
	}
	return "", false
}

// segmentBody strips the day-name prefix: everything after the first colon,
// or the whole segment when it has none.
func segmentBody(segment string) string {
	if i := strings.Index(segment, ":"); i >= 0 {
		return strings.TrimSpace(segment[i+1:])
	}
	return segment
}

// parseRange extracts the open/close minutes from a segment body, trying the
// 12-hour grammar first and plain 24-hour times second.
func parseRange(body string) (openMin, closeMin int, ok bool) {
	m := reRange12h.FindStringSubmatch(body)
	if m == nil {
		m = reRange24h.FindStringSubmatch(body)
	}
	if m == nil {
		return 0, 0, false
	}
	openMin, okOpen := parseTimeToMinutes(m[1])
	closeMin, okClose := parseTimeToMinutes(m[2])
	if !okOpen || !okClose {
		return 0, 0, false
	}
	return openMin, closeMin, true
}

// nextOpening scans forward up to 7 days from today for the next day whose
// body parses to a valid opening time and returns it formatted, or "" when
// no future day within the week parses.
func nextOpening(segments []string, todayIdx int) string {
	for i := 1; i <= 7; i++ {
		idx := (todayIdx + i) % 7
		seg, ok := daySegment(segments, idx)
		if !ok {
			continue
		}
		body := segmentBody(seg)
		if reClosed.MatchString(body) {
			continue
		}
		if openMin, _, ok := parseRange(body); ok {
			return formatMinutes(openMin)
		}
	}
	return ""
}

// withinRange reports whether currentMin falls inside an opening range,
// handling overnight spans where the close time is past midnight.
func withinRange(currentMin, openMin, closeMin int) bool {
	if closeMin > openMin {
		return currentMin >= openMin && currentMin <= closeMin
	}
	return currentMin >= openMin || currentMin <= closeMin
}

// GetPlaceStatus resolves open/closed status at the given instant plus the
// relevant transition time for display: ClosesAt while open, OpensAt while
// closed. Returns nil when the hours string is absent or unparseable.
func GetPlaceStatus(hoursOfOperation string, now time.Time) *PlaceStatus {
	if strings.TrimSpace(hoursOfOperation) == "" {
		return nil
	}
	segments := splitSegments(hoursOfOperation)
	dayIdx := int(now.Weekday())
	currentMin := now.Hour()*60 + now.Minute()

	seg, ok := daySegment(segments, dayIdx)
	if !ok {
		return nil
	}
	body := segmentBody(seg)

	if reClosed.MatchString(body) && !reOpen24Hint.MatchString(body) {
		if opensAt := nextOpening(segments, dayIdx); opensAt != "" {
			return &PlaceStatus{IsOpen: false, OpensAt: opensAt}
		}
		return nil
	}
	if reAlwaysOpen.MatchString(body) {
		return &PlaceStatus{IsOpen: true, ClosesAt: alwaysOpenClosesAt}
	}

	openMin, closeMin, ok := parseRange(body)
	if !ok {
		return nil
	}

	if withinRange(currentMin, openMin, closeMin) {
		return &PlaceStatus{IsOpen: true, ClosesAt: formatMinutes(closeMin)}
	}
	if currentMin < openMin {
		// Opens later today.
		return &PlaceStatus{IsOpen: false, OpensAt: formatMinutes(openMin)}
	}
	if opensAt := nextOpening(segments, dayIdx); opensAt != "" {
		return &PlaceStatus{IsOpen: false, OpensAt: opensAt}
	}
	return nil
}

// IsOpenNow reports whether the place is open at the given instant.
// Returns nil when unknown. Unlike GetPlaceStatus it can still answer
// "closed" when no future opening time is parseable.
func IsOpenNow(hoursOfOperation string, now time.Time) *bool {
	if strings.TrimSpace(hoursOfOperation) == "" {
		return nil
	}
	segments := splitSegments(hoursOfOperation)
	seg, ok := daySegment(segments, int(now.Weekday()))
	if !ok {
		return nil
	}
	body := segmentBody(seg)

	if reClosed.MatchString(body) && !reOpen24Hint.MatchString(body) {
		return boolPtr(false)
	}
	if reAlwaysOpen.MatchString(body) {
		return boolPtr(true)
	}
	openMin, closeMin, ok := parseRange(body)
	if !ok {
		return nil
	}
	currentMin := now.Hour()*60 + now.Minute()
	return boolPtr(withinRange(currentMin, openMin, closeMin))
}

func boolPtr(b bool) *bool { return &b }

// GetHoursByDayStartingToday expands the hours string into a weekly schedule
// ordered from today. Days whose segment cannot be located are omitted, so
// the result holds at most 7 entries.
func GetHoursByDayStartingToday(hoursOfOperation string, now time.Time) []DayHours {
	if strings.TrimSpace(hoursOfOperation) == "" {
		return nil
	}
	segments := splitSegments(hoursOfOperation)
	todayIdx := int(now.Weekday())

	var result []DayHours
	for i := 0; i < 7; i++ {
		dayIdx := (todayIdx + i) % 7
		seg, ok := daySegment(segments, dayIdx)
		if !ok {
			continue
		}
		text := segmentBody(seg)
		if text == "" {
			text = "—"
		}
		result = append(result, DayHours{DayName: dayNamesLong[dayIdx], HoursText: text})
	}
	return result
}
