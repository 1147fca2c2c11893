package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
	"github.com/hmjf-dev/hmjf-cms-api/pkg/export"
)

const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type memberLister interface {
	List(ctx context.Context) ([]models.MemberListItem, error)
}

type eventLister interface {
	List(ctx context.Context) ([]models.EventListItem, error)
}

type exporter interface {
	Render(data export.Dataset) ([]byte, error)
}

type titledExporter interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportService renders member and event rosters as downloadable files.
type ExportService struct {
	members memberLister
	events  eventLister
	csv     exporter
	pdf     titledExporter
	logger  *zap.Logger
}

func NewExportService(members memberLister, events eventLister, csv exporter, pdf titledExporter, logger *zap.Logger) *ExportService {
	return &ExportService{
		members: members,
		events:  events,
		csv:     csv,
		pdf:     pdf,
		logger:  logger,
	}
}

// ExportMembers returns the full member roster in the requested format along
// with the response content type.
func (s *ExportService) ExportMembers(ctx context.Context, format string) ([]byte, string, error) {
	items, err := s.members.List(ctx)
	if err != nil {
		return nil, "", appErrors.Internal(err)
	}
	dataset := memberDataset(items)
	return s.render(format, dataset, "Member Roster")
}

// ExportEvents returns the full event list in the requested format.
func (s *ExportService) ExportEvents(ctx context.Context, format string) ([]byte, string, error) {
	items, err := s.events.List(ctx)
	if err != nil {
		return nil, "", appErrors.Internal(err)
	}
	dataset := eventDataset(items)
	return s.render(format, dataset, "Event List")
}

func (s *ExportService) render(format string, dataset export.Dataset, title string) ([]byte, string, error) {
	switch format {
	case ExportFormatCSV:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Internal(err)
		}
		return payload, "text/csv", nil
	case ExportFormatPDF:
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, "", appErrors.Internal(err)
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format: "+format)
	}
}

func memberDataset(items []models.MemberListItem) export.Dataset {
	dataset := export.Dataset{
		Headers: []string{"Name", "NIM", "Batch", "Status", "Division", "Position"},
	}
	for _, m := range items {
		row := map[string]string{
			"Name":   m.Name,
			"NIM":    m.NIM,
			"Batch":  m.Batch,
			"Status": string(m.Status),
		}
		if m.Division != nil {
			row["Division"] = string(*m.Division)
		}
		if m.Position != nil {
			row["Position"] = *m.Position
		}
		dataset.Rows = append(dataset.Rows, row)
	}
	return dataset
}

func eventDataset(items []models.EventListItem) export.Dataset {
	dataset := export.Dataset{
		Headers: []string{"Title", "Category", "Status", "Start", "End", "Location", "Featured"},
	}
	for _, e := range items {
		location := e.Location.Name
		if e.Location.Address != "" {
			location = fmt.Sprintf("%s, %s", e.Location.Name, e.Location.Address)
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Title":    e.Title,
			"Category": string(e.Category),
			"Status":   string(e.Status),
			"Start":    e.StartDate.Format(time.DateOnly),
			"End":      e.EndDate.Format(time.DateOnly),
			"Location": location,
			"Featured": strconv.FormatBool(e.Featured),
		})
	}
	return dataset
}
