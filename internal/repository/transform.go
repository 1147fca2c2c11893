package repository

import (
	"encoding/json"
	"strings"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
)

// ContentDefaults supplies fallback values for nullable presentation fields.
// They come from configuration so row transforms stay deterministic.
type ContentDefaults struct {
	OrganizerName    string
	OrganizerContact string
	AvatarURL        string
}

// parseLocation decodes the stored location column. Legacy rows hold either a
// bare venue name or a JSON object; anything that fails to decode is treated
// as a bare name.
func parseLocation(raw string) models.EventLocation {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") {
		var loc models.EventLocation
		if err := json.Unmarshal([]byte(trimmed), &loc); err == nil {
			return loc
		}
	}
	return models.EventLocation{Name: raw, Address: ""}
}

// encodeLocation is the storage-side inverse of parseLocation.
func encodeLocation(loc models.EventLocation) string {
	if loc.Address == "" {
		return loc.Name
	}
	encoded, err := json.Marshal(loc)
	if err != nil {
		return loc.Name
	}
	return string(encoded)
}

// parsePeriod splits a "START-END" tenure string on the first dash. Without a
// separator both ends resolve to the whole string.
func parsePeriod(raw string) models.Period {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) < 2 {
		return models.Period{Start: raw, End: raw}
	}
	return models.Period{Start: parts[0], End: parts[1]}
}

// encodePeriod is the storage-side inverse of parsePeriod.
func encodePeriod(p models.Period) string {
	if p.End == "" || p.Start == p.End {
		return p.Start
	}
	return p.Start + "-" + p.End
}

// optionalString collapses NULL and empty-string columns to nil so the JSON
// projection omits them.
func optionalString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// stringOr returns the column value or a fallback when it is NULL/empty.
func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// nullableString is the write-path inverse of optionalString/stringOr.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// socialMedia folds the flat profile columns into the nested domain object,
// omitting it entirely when both links are absent.
func socialMedia(instagram, linkedin *string) *models.SocialMedia {
	ig := optionalString(instagram)
	li := optionalString(linkedin)
	if ig == nil && li == nil {
		return nil
	}
	return &models.SocialMedia{Instagram: ig, LinkedIn: li}
}

// divisionPtr converts a nullable division column, leaving validation of the
// closed set to the service layer.
func divisionPtr(s *string) *models.Division {
	if s == nil || *s == "" {
		return nil
	}
	d := models.Division(*s)
	return &d
}
