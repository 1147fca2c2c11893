package models

// LeadershipPosition enumerates board roles in display priority order.
type LeadershipPosition string

const (
	PositionKetua       LeadershipPosition = "ketua"
	PositionWakilKetua  LeadershipPosition = "wakil-ketua"
	PositionSekretaris  LeadershipPosition = "sekretaris"
	PositionBendahara   LeadershipPosition = "bendahara"
	PositionCoordinator LeadershipPosition = "coordinator"
	PositionMember      LeadershipPosition = "member"
)

// Valid reports whether the position belongs to the closed set.
func (p LeadershipPosition) Valid() bool {
	switch p {
	case PositionKetua, PositionWakilKetua, PositionSekretaris,
		PositionBendahara, PositionCoordinator, PositionMember:
		return true
	}
	return false
}

// CorePositions are the executive-board roles surfaced on the leadership page.
var CorePositions = []LeadershipPosition{
	PositionKetua, PositionWakilKetua, PositionSekretaris, PositionBendahara,
}

// Division enumerates organization divisions.
type Division string

const (
	DivisionInternalAffairs     Division = "internal-affairs"
	DivisionExternalAffairs     Division = "external-affairs"
	DivisionAcademic            Division = "academic"
	DivisionStudentDevelopment  Division = "student-development"
	DivisionEntrepreneurship    Division = "entrepreneurship"
	DivisionMediaInformation    Division = "media-information"
	DivisionSportsArts          Division = "sports-arts"
	DivisionIslamicSpirituality Division = "islamic-spirituality"
)

// Valid reports whether the division belongs to the closed set.
func (d Division) Valid() bool {
	switch d {
	case DivisionInternalAffairs, DivisionExternalAffairs, DivisionAcademic,
		DivisionStudentDevelopment, DivisionEntrepreneurship,
		DivisionMediaInformation, DivisionSportsArts, DivisionIslamicSpirituality:
		return true
	}
	return false
}

// Period is a tenure span derived from the stored "START-END" string.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SocialMedia holds optional profile links.
type SocialMedia struct {
	Instagram *string `json:"instagram,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
}

// Leadership is the full projection of a board member.
type Leadership struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Position    LeadershipPosition `json:"position"`
	Division    *Division          `json:"division,omitempty"`
	Period      Period             `json:"period"`
	Email       *string            `json:"email,omitempty"`
	Phone       *string            `json:"phone,omitempty"`
	Photo       string             `json:"photo"`
	NIM         *string            `json:"nim,omitempty"`
	Batch       *string            `json:"batch,omitempty"`
	Bio         *string            `json:"bio,omitempty"`
	SocialMedia *SocialMedia       `json:"socialMedia,omitempty"`
	Order       int                `json:"order"`
	Active      bool               `json:"active"`
}

// LeadershipListItem is the summary projection used by listings.
type LeadershipListItem struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Position LeadershipPosition `json:"position"`
	Division *Division          `json:"division,omitempty"`
	Period   Period             `json:"period"`
	Email    *string            `json:"email,omitempty"`
	Photo    string             `json:"photo"`
	Order    int                `json:"order"`
}

// LeadershipFilter encapsulates paginated listing parameters.
type LeadershipFilter struct {
	Division Division
	Position LeadershipPosition
	Period   string
	Page     int
	Limit    int
}
