// Package sheets writes report rows to Google Sheets.
package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/volleystat/internal/club"
	"github.com/mauv0809/volleystat/internal/report"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

var _ report.Sink = (*Client)(nil)

// Client is a report.Sink backed by the Sheets v4 API.
type Client struct {
	service *gsheets.Service
}

// New authenticates with a service-account credentials file.
func New(ctx context.Context, credentialsFile string) (*Client, error) {
	return NewWithOptions(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
}

// NewWithOptions creates a client with explicit API options.
func NewWithOptions(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	service, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: service}, nil
}

// WriteRows overwrites the range starting at rangeRef and returns the number of updated cells.
func (c *Client) WriteRows(ctx context.Context, spreadsheetID, rangeRef string, rows [][]any) (int, error) {
	resp, err := c.service.Spreadsheets.Values.Update(spreadsheetID, rangeRef, &gsheets.ValueRange{
		Values: normalize(rows),
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		log.Error("Failed to write rows", "error", err, "spreadsheet", spreadsheetID, "range", rangeRef)
		return 0, fmt.Errorf("failed to write %s: %w", rangeRef, err)
	}
	log.Info("Wrote rows to sheet", "spreadsheet", spreadsheetID, "range", rangeRef, "cells", resp.UpdatedCells)
	return int(resp.UpdatedCells), nil
}

// EnsureSheets adds any missing tabs and returns how many were created.
func (c *Client) EnsureSheets(ctx context.Context, spreadsheetID string, titles []string) (int, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to read spreadsheet %s: %w", spreadsheetID, err)
	}

	existing := make(map[string]bool, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			existing[sheet.Properties.Title] = true
		}
	}

	var requests []*gsheets.Request
	for _, title := range titles {
		if existing[title] {
			continue
		}
		requests = append(requests, &gsheets.Request{
			AddSheet: &gsheets.AddSheetRequest{
				Properties: &gsheets.SheetProperties{Title: title},
			},
		})
	}
	if len(requests) == 0 {
		return 0, nil
	}

	_, err = c.service.Spreadsheets.BatchUpdate(spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to add sheets to %s: %w", spreadsheetID, err)
	}
	log.Info("Created sheets", "spreadsheet", spreadsheetID, "count", len(requests))
	return len(requests), nil
}

// normalize converts native dates to ISO strings; the API rejects them otherwise.
func normalize(rows [][]any) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			switch v := cell.(type) {
			case time.Time:
				cells[j] = club.FormatDate(v)
			case *time.Time:
				if v != nil {
					cells[j] = club.FormatDate(*v)
				} else {
					cells[j] = ""
				}
			default:
				cells[j] = cell
			}
		}
		// The API drops empty rows without a cell; keep spacing rows visible.
		if len(cells) == 0 {
			cells = []any{""}
		}
		out[i] = cells
	}
	return out
}
