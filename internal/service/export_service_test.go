package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
	"github.com/hmjf-dev/hmjf-cms-api/pkg/export"
)

type staticMemberLister struct {
	items []models.MemberListItem
}

func (s *staticMemberLister) List(ctx context.Context) ([]models.MemberListItem, error) {
	return s.items, nil
}

type staticEventLister struct {
	items []models.EventListItem
}

func (s *staticEventLister) List(ctx context.Context) ([]models.EventListItem, error) {
	return s.items, nil
}

func TestExportServiceMembersCSV(t *testing.T) {
	division := models.DivisionAcademic
	members := &staticMemberLister{items: []models.MemberListItem{
		{Name: "Andi Saputra", NIM: "60900122001", Batch: "2022", Status: models.MemberStatusActive, Division: &division},
		{Name: "Siti Rahma", NIM: "60900121045", Batch: "2021", Status: models.MemberStatusAlumni},
	}}
	svc := NewExportService(members, &staticEventLister{}, export.NewCSVExporter(), export.NewPDFExporter(), zap.NewNop())

	payload, contentType, err := svc.ExportMembers(context.Background(), ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,NIM,Batch,Status,Division,Position", lines[0])
	assert.Contains(t, lines[1], "Andi Saputra")
	assert.Contains(t, lines[1], "academic")
	assert.Contains(t, lines[2], "alumni")
}

func TestExportServiceEventsPDF(t *testing.T) {
	events := &staticEventLister{items: []models.EventListItem{{
		Title:     "Seminar Nasional",
		Category:  models.EventCategorySeminar,
		Status:    models.EventStatusCompleted,
		StartDate: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC),
		Location:  models.EventLocation{Name: "Aula Fakultas"},
	}}}
	svc := NewExportService(&staticMemberLister{}, events, export.NewCSVExporter(), export.NewPDFExporter(), zap.NewNop())

	payload, contentType, err := svc.ExportEvents(context.Background(), ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(&staticMemberLister{}, &staticEventLister{}, export.NewCSVExporter(), export.NewPDFExporter(), zap.NewNop())

	_, _, err := svc.ExportMembers(context.Background(), "xlsx")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}
