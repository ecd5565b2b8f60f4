package domain

import "time"

const eventDateLayout = "2006/01/02"

// ParseEventDate validates a user-supplied event date in yyyy/mm/dd form and
// returns it normalized to ISO (yyyy-mm-dd).
func ParseEventDate(input string) (string, error) {
	t, err := time.Parse(eventDateLayout, input)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}
