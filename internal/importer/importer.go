// Package importer drains the row store company-by-company into the Close
// CRM, creating one lead per company and one contact per valid row.
package importer

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/lead-import/internal/model"
	"github.com/sells-group/lead-import/internal/normalize"
	"github.com/sells-group/lead-import/internal/rowstore"
	"github.com/sells-group/lead-import/pkg/closeapi"
)

// Display names of the lead custom fields that must exist remotely.
const (
	FoundedFieldName = "Company Founded"
	RevenueFieldName = "Company Revenue"
)

// Importer builds and submits lead and contact records.
type Importer struct {
	gw   closeapi.Client
	rows *rowstore.Store

	foundedKey string
	revenueKey string
}

// New creates an importer over the given gateway and row store.
// ResolveCustomFields must be called before Push.
func New(gw closeapi.Client, rows *rowstore.Store) *Importer {
	return &Importer{gw: gw, rows: rows}
}

// Stats summarizes a push pass.
type Stats struct {
	Leads    int `json:"leads"`
	Contacts int `json:"contacts"`
}

// ResolveCustomFields looks up the remote custom-field keys for the founded
// and revenue fields. Both must exist; resolution happens once, before any
// company is processed.
func (im *Importer) ResolveCustomFields(ctx context.Context) error {
	fields, err := im.gw.LeadCustomFields(ctx)
	if err != nil {
		return eris.Wrap(err, "importer: resolve custom fields")
	}
	for _, f := range fields {
		switch f.Name {
		case FoundedFieldName:
			im.foundedKey = f.Key()
		case RevenueFieldName:
			im.revenueKey = f.Key()
		}
	}
	if im.foundedKey == "" {
		return eris.Errorf("importer: lead custom field %q not found", FoundedFieldName)
	}
	if im.revenueKey == "" {
		return eris.Errorf("importer: lead custom field %q not found", RevenueFieldName)
	}
	return nil
}

// Push processes every distinct company in enumeration order. The first
// failed remote call aborts the pass; already-created records stay behind.
func (im *Importer) Push(ctx context.Context) (Stats, error) {
	var stats Stats
	for _, company := range im.rows.Companies() {
		contacts, err := im.pushCompany(ctx, company)
		if err != nil {
			return stats, err
		}
		stats.Leads++
		stats.Contacts += contacts
	}
	zap.L().Info("importer: push complete",
		zap.Int("leads", stats.Leads),
		zap.Int("contacts", stats.Contacts),
	)
	return stats, nil
}

func (im *Importer) pushCompany(ctx context.Context, company string) (int, error) {
	canonical, err := im.rows.Canonical(company)
	if err != nil {
		return 0, err
	}

	lead, err := im.buildLead(company, canonical)
	if err != nil {
		return 0, err
	}
	leadID, err := im.gw.CreateLead(ctx, lead)
	if err != nil {
		return 0, eris.Wrapf(err, "importer: company %q", company)
	}

	valid := im.rows.Valid(company)
	for _, row := range valid {
		if err := im.gw.CreateContact(ctx, buildContact(row, leadID)); err != nil {
			return 0, eris.Wrapf(err, "importer: company %q", company)
		}
	}

	zap.L().Debug("importer: company pushed",
		zap.String("company", company),
		zap.String("lead_id", leadID),
		zap.Int("contacts", len(valid)),
	)
	return len(valid), nil
}

// buildLead assembles the lead payload from the canonical row. Fields absent
// on the row are omitted entirely, not set to zero placeholders.
func (im *Importer) buildLead(company string, row model.RawRow) (map[string]any, error) {
	payload := map[string]any{"name": company}

	if row.State != "" {
		payload["addresses"] = []map[string]any{{"state": row.State}}
	}
	if row.Founded != "" {
		display, err := normalize.StorageToDisplay(row.Founded)
		if err != nil {
			return nil, eris.Wrapf(err, "importer: company %q", company)
		}
		payload[im.foundedKey] = display
	}
	if row.Revenue != "" {
		rev, err := normalize.Currency(row.Revenue)
		if err != nil {
			return nil, eris.Wrapf(err, "importer: company %q", company)
		}
		payload[im.revenueKey] = rev
	}
	return payload, nil
}

func buildContact(row model.RawRow, leadID string) map[string]any {
	payload := map[string]any{"lead_id": leadID}

	if row.Name != "" {
		payload["name"] = normalize.Name(row.Name)
	}
	if row.Emails != "" {
		emails := []map[string]string{}
		for _, e := range normalize.Emails(row.Emails) {
			emails = append(emails, map[string]string{"email": e})
		}
		payload["emails"] = emails
	}
	if row.Phones != "" {
		phones := []map[string]string{}
		for _, p := range normalize.Phones(row.Phones) {
			phones = append(phones, map[string]string{"phone": p})
		}
		payload["phones"] = phones
	}
	return payload
}
