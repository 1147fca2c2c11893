package models

import "time"

// MemberStatus tracks membership standing.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
	MemberStatusAlumni   MemberStatus = "alumni"
)

// Valid reports whether the status belongs to the closed set.
func (s MemberStatus) Valid() bool {
	switch s {
	case MemberStatusActive, MemberStatusInactive, MemberStatusAlumni:
		return true
	}
	return false
}

// Member is the full projection of an organization member.
type Member struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	NIM          string       `json:"nim"`
	Batch        string       `json:"batch"`
	Status       MemberStatus `json:"status"`
	Division     *Division    `json:"division,omitempty"`
	Position     *string      `json:"position,omitempty"`
	Email        *string      `json:"email,omitempty"`
	Phone        *string      `json:"phone,omitempty"`
	Photo        *string      `json:"photo,omitempty"`
	Bio          *string      `json:"bio,omitempty"`
	Interests    []string     `json:"interests,omitempty"`
	Achievements []string     `json:"achievements,omitempty"`
	SocialMedia  *SocialMedia `json:"socialMedia,omitempty"`
	JoinedAt     time.Time    `json:"joinedAt"`
	GraduatedAt  *time.Time   `json:"graduatedAt,omitempty"`
}

// MemberListItem is the summary projection used by listings.
type MemberListItem struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	NIM      string       `json:"nim"`
	Batch    string       `json:"batch"`
	Status   MemberStatus `json:"status"`
	Division *Division    `json:"division,omitempty"`
	Position *string      `json:"position,omitempty"`
	Photo    *string      `json:"photo,omitempty"`
}

// MemberFilter encapsulates paginated listing parameters.
type MemberFilter struct {
	Status   MemberStatus
	Batch    string
	Division Division
	Page     int
	Limit    int
}
