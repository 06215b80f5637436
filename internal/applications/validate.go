package applications

import (
	"fmt"
	"strings"
	"time"
)

var weekdays = map[string]string{
	"monday": "Monday", "tuesday": "Tuesday", "wednesday": "Wednesday",
	"thursday": "Thursday", "friday": "Friday", "saturday": "Saturday", "sunday": "Sunday",
}

// normalizeSlots canonicalizes day names and validates each slot.
func normalizeSlots(slots []Slot, fields map[string]string) []Slot {
	if len(slots) == 0 {
		fields["availability"] = "at least one availability slot is required"
		return nil
	}
	out := make([]Slot, 0, len(slots))
	for i, s := range slots {
		day, ok := weekdays[strings.ToLower(strings.TrimSpace(s.Day))]
		if !ok {
			fields[fmt.Sprintf("availability[%d].day", i)] = "day must be Monday to Sunday"
		}
		t := strings.TrimSpace(s.Time)
		if t != "" {
			if _, err := time.Parse("15:04", t); err != nil {
				fields[fmt.Sprintf("availability[%d].time", i)] = "time must be HH:MM"
			}
		}
		out = append(out, Slot{Day: day, Time: t})
	}
	return out
}

func validateApply(in ApplyInput) (ApplyInput, error) {
	fields := map[string]string{}
	in.JobID = strings.TrimSpace(in.JobID)
	in.TeachingStyle = strings.TrimSpace(in.TeachingStyle)
	if in.JobID == "" {
		fields["jobId"] = "job is required"
	}
	if len(in.Resume) == 0 {
		fields["file"] = "resume PDF is required"
	}
	if in.TeachingStyle == "" {
		fields["teachingStyle"] = "teaching style is required"
	}
	if !in.Confirmed {
		fields["confirmed"] = "please confirm the information is accurate"
	}
	in.Availability = normalizeSlots(in.Availability, fields)
	if len(fields) > 0 {
		return in, &ValidationError{Fields: fields}
	}
	return in, nil
}
