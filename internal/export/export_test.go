package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/topronto/admin-backoffice/internal/models"
)

func sampleDrivers() []models.Driver {
	van := "Carrinha"
	return []models.Driver{
		{FirstName: "Ana", LastName: "Silva, Jr", Email: "ana@x.pt", Phone: "912", City: "Lisboa",
			HasVehicle: true, VehicleType: &van, ExperienceYears: 4, Status: models.DriverPending,
			CreatedAt: time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)},
		{FirstName: "Rui", LastName: "Costa", Email: "rui@x.pt", City: "Porto", Status: models.DriverApproved},
	}
}

func TestDriversCSVColumnParityAndQuoting(t *testing.T) {
	var buf bytes.Buffer
	if err := Drivers.CSV(&buf, sampleDrivers()); err != nil {
		t.Fatalf("csv: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	for i, r := range records {
		if len(r) != len(records[0]) {
			t.Fatalf("row %d has %d columns, header has %d", i, len(r), len(records[0]))
		}
	}
	if records[1][0] != "Ana Silva, Jr" {
		t.Fatalf("comma inside a field must survive a round trip, got %q", records[1][0])
	}
	if !strings.Contains(buf.String(), `"Ana Silva, Jr"`) {
		t.Fatalf("field with comma must be quoted:\n%s", buf.String())
	}
	if records[1][4] != "Sim" || records[2][4] != "Não" || records[1][8] != "09/03/2025" {
		t.Fatalf("unexpected formatting %v", records[1])
	}
}

func TestEveryTemplateHasUniqueHeaders(t *testing.T) {
	headers := map[string][]string{
		Drivers.Filename:      Drivers.Header(),
		Enterprises.Filename:  Enterprises.Header(),
		Contacts.Filename:     Contacts.Header(),
		JobOffers.Filename:    JobOffers.Header(),
		Applications.Filename: Applications.Header(),
	}
	if len(headers) != 5 {
		t.Fatalf("file names must be distinct")
	}
	for name, h := range headers {
		seen := map[string]bool{}
		for _, c := range h {
			if seen[c] {
				t.Fatalf("%s: duplicate column %q", name, c)
			}
			seen[c] = true
		}
	}
}

func TestContactsCSVQuotesMultilineMessages(t *testing.T) {
	var buf bytes.Buffer
	rows := []models.Contact{{Name: "Zé", Email: "z@x.pt", Subject: `Say "hi"`, Message: "line 1\nline 2"}}
	if err := Contacts.CSV(&buf, rows); err != nil {
		t.Fatalf("csv: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if records[1][3] != `Say "hi"` || records[1][4] != "line 1\nline 2" {
		t.Fatalf("unexpected record %q", records[1])
	}
}

func TestXLSXMatchesCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Drivers.XLSX(&buf, sampleDrivers()); err != nil {
		t.Fatalf("xlsx: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Chauffeurs")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 || rows[0][0] != "Nome" || rows[1][0] != "Ana Silva, Jr" {
		t.Fatalf("unexpected sheet %v", rows)
	}
	if got := Drivers.FilenameFor("xlsx"); got != "chauffeurs.xlsx" {
		t.Fatalf("unexpected filename %s", got)
	}
}
