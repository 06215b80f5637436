package jobs

import (
	"strings"
	"time"
)

var contactMethods = map[string]string{
	strings.ToLower(ContactEmail):     ContactEmail,
	strings.ToLower(ContactPhone):     ContactPhone,
	strings.ToLower(ContactMessaging): ContactMessaging,
}

// normalize trims free-text fields and canonicalizes the contact method.
func normalize(p Posting) Posting {
	for _, f := range []*string{
		&p.ParentEmail, &p.FullName, &p.PhoneNumber, &p.City, &p.State,
		&p.DetailedAddress, &p.Title, &p.Description, &p.PreferredStartDate,
		&p.Frequency, &p.RequiredSkills, &p.EducationalBackground, &p.AgeRange,
		&p.Subject, &p.SpecialConditions,
	} {
		*f = strings.TrimSpace(*f)
	}
	if p.PreferredContact = strings.TrimSpace(p.PreferredContact); p.PreferredContact == "" {
		p.PreferredContact = ContactEmail
	} else if canonical, ok := contactMethods[strings.ToLower(p.PreferredContact)]; ok {
		p.PreferredContact = canonical
	}
	return p
}

func validate(p Posting) error {
	fields := map[string]string{}
	if p.Title == "" {
		fields["jobTitle"] = "job title is required"
	}
	if p.Description == "" {
		fields["jobDescription"] = "job description is required"
	}
	if p.HourlyRate < 0 {
		fields["hourlyRate"] = "hourly rate must be zero or more"
	}
	if _, ok := contactMethods[strings.ToLower(p.PreferredContact)]; !ok {
		fields["preferredContact"] = "must be one of Email, Phone, Platform Messaging"
	}
	if p.PreferredContact == ContactPhone && p.PhoneNumber == "" {
		fields["phoneNumber"] = "phone number is required when Phone is the preferred contact"
	}
	if p.PreferredStartDate != "" {
		if _, err := time.Parse(dateLayout, p.PreferredStartDate); err != nil {
			fields["preferredStartDate"] = "must be YYYY-MM-DD"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
