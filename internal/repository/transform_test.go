package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
)

func TestParseLocationBareName(t *testing.T) {
	loc := parseLocation("Main Hall")
	assert.Equal(t, "Main Hall", loc.Name)
	assert.Equal(t, "", loc.Address)
}

func TestParseLocationJSON(t *testing.T) {
	loc := parseLocation(`{"name":"Hall A","address":"Block 3"}`)
	assert.Equal(t, "Hall A", loc.Name)
	assert.Equal(t, "Block 3", loc.Address)
}

func TestParseLocationMalformedJSON(t *testing.T) {
	raw := `{"name":"Hall A",`
	loc := parseLocation(raw)
	// undecodable JSON falls back to the bare-name interpretation
	assert.Equal(t, raw, loc.Name)
	assert.Equal(t, "", loc.Address)
}

func TestEncodeLocationRoundTrip(t *testing.T) {
	assert.Equal(t, "Main Hall", encodeLocation(models.EventLocation{Name: "Main Hall"}))

	encoded := encodeLocation(models.EventLocation{Name: "Hall A", Address: "Block 3"})
	decoded := parseLocation(encoded)
	assert.Equal(t, "Hall A", decoded.Name)
	assert.Equal(t, "Block 3", decoded.Address)
}

func TestParsePeriod(t *testing.T) {
	period := parsePeriod("2024-2025")
	assert.Equal(t, "2024", period.Start)
	assert.Equal(t, "2025", period.End)

	degenerate := parsePeriod("2024")
	assert.Equal(t, "2024", degenerate.Start)
	assert.Equal(t, "2024", degenerate.End)
}

func TestEncodePeriodRoundTrip(t *testing.T) {
	assert.Equal(t, "2024-2025", encodePeriod(parsePeriod("2024-2025")))
	assert.Equal(t, "2024", encodePeriod(parsePeriod("2024")))
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, optionalString(nil))
	empty := ""
	assert.Nil(t, optionalString(&empty))
	value := "x"
	require.NotNil(t, optionalString(&value))
	assert.Equal(t, "x", *optionalString(&value))
}

func TestSocialMediaFold(t *testing.T) {
	assert.Nil(t, socialMedia(nil, nil))
	empty := ""
	assert.Nil(t, socialMedia(&empty, nil))

	ig := "@hmjf"
	sm := socialMedia(&ig, nil)
	require.NotNil(t, sm)
	assert.Equal(t, "@hmjf", *sm.Instagram)
	assert.Nil(t, sm.LinkedIn)
}

func TestEventRowTransform(t *testing.T) {
	name := "Panitia Seminar"
	contact := "0812000111"
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	row := eventRow{
		ID:               "ev-1",
		Title:            "Seminar Farmasi",
		Slug:             "seminar-farmasi",
		Category:         "seminar",
		Status:           "upcoming",
		StartDate:        start,
		EndDate:          start.Add(8 * time.Hour),
		Location:         "Main Hall",
		OrganizerName:    &name,
		OrganizerContact: &contact,
	}

	event := row.event(ContentDefaults{})

	assert.Equal(t, models.EventCategorySeminar, event.Category)
	assert.Equal(t, models.EventStatusUpcoming, event.Status)
	assert.Equal(t, "Main Hall", event.Location.Name)
	assert.Equal(t, "", event.Location.Address)
	assert.Equal(t, "Panitia Seminar", event.Organizer.Name)
	assert.Equal(t, "0812000111", event.Organizer.Contact)
	// missing numeric optionals stay absent, never zero
	assert.Nil(t, event.MaxParticipants)
	assert.Nil(t, event.CurrentParticipants)
}

func TestEventRowTransformDefaults(t *testing.T) {
	row := eventRow{ID: "ev-2", Location: "Aula"}
	event := row.event(ContentDefaults{OrganizerName: "HMJF UIN Alauddin"})
	assert.Equal(t, "HMJF UIN Alauddin", event.Organizer.Name)
	assert.Equal(t, "", event.Organizer.Contact)
}

func TestEventRoundTripOrganizer(t *testing.T) {
	name := "Panitia"
	contact := "0812"
	row := eventRow{ID: "ev-3", Location: "Aula", OrganizerName: &name, OrganizerContact: &contact}

	event := row.event(ContentDefaults{})
	back := eventRowFrom(&event)

	require.NotNil(t, back.OrganizerName)
	require.NotNil(t, back.OrganizerContact)
	assert.Equal(t, name, *back.OrganizerName)
	assert.Equal(t, contact, *back.OrganizerContact)
	assert.Equal(t, "Aula", back.Location)
}

func TestLeadershipRowTransform(t *testing.T) {
	division := "academic"
	row := leadershipRow{
		ID:           "ld-1",
		Name:         "Rina",
		Position:     "coordinator",
		Division:     &division,
		Period:       "2024-2025",
		DisplayOrder: 5,
		IsActive:     true,
	}

	record := row.leadership(ContentDefaults{AvatarURL: "/images/default-avatar.png"})

	assert.Equal(t, models.PositionCoordinator, record.Position)
	require.NotNil(t, record.Division)
	assert.Equal(t, models.DivisionAcademic, *record.Division)
	assert.Equal(t, "2024", record.Period.Start)
	assert.Equal(t, "2025", record.Period.End)
	assert.Equal(t, "/images/default-avatar.png", record.Photo)
	assert.Equal(t, 5, record.Order)
	assert.Nil(t, record.Email)
	assert.Nil(t, record.SocialMedia)
}

func TestMemberRowTransform(t *testing.T) {
	row := memberRow{
		ID:     "mb-1",
		Name:   "Andi",
		NIM:    "70100123001",
		Batch:  "2023",
		Status: "active",
	}

	member := row.member()

	assert.Equal(t, models.MemberStatusActive, member.Status)
	assert.Nil(t, member.Division)
	assert.Nil(t, member.Photo)
	assert.Nil(t, member.Interests)
	assert.Nil(t, member.GraduatedAt)
}

func TestArticleRowRoundTrip(t *testing.T) {
	avatar := "/avatars/a.png"
	views := 42
	row := articleRow{
		ID:           "ar-1",
		Title:        "Judul",
		Slug:         "judul",
		Excerpt:      "Ringkasan",
		Content:      "Isi",
		Category:     "blog",
		AuthorName:   "Budi",
		AuthorRole:   "Editor",
		AuthorAvatar: &avatar,
		PublishedAt:  time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Tags:         []string{"farmasi"},
		Views:        &views,
	}

	article := row.article()
	assert.Equal(t, models.ArticleCategoryBlog, article.Category)
	assert.Equal(t, "Budi", article.Author.Name)
	assert.Equal(t, "Editor", article.Author.Role)

	back := articleRowFrom(&article)
	assert.Equal(t, row.AuthorName, back.AuthorName)
	assert.Equal(t, row.AuthorRole, back.AuthorRole)
	require.NotNil(t, back.AuthorAvatar)
	assert.Equal(t, avatar, *back.AuthorAvatar)
	assert.Equal(t, row.Tags, back.Tags)
}
