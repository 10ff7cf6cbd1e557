package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/gen/ent"
	entbill "github.com/akaraszi/billscan/gen/ent/bill"
	"github.com/akaraszi/billscan/internal/entity"
)

type BillRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Bill, error)
	Save(ctx context.Context, profileID uuid.UUID, bill *entity.Bill) (*ent.Bill, error)
	List(ctx context.Context, profileID uuid.UUID, from, to *time.Time, limit int) ([]*ent.Bill, error)
}

type billRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewBillRepository(entc *ent.Client, log *slog.Logger) BillRepository {
	return &billRepo{ent: entc, log: log}
}

func (r *billRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Bill, error) {
	return r.ent.Bill.Get(ctx, id)
}

func (r *billRepo) Save(ctx context.Context, profileID uuid.UUID, bill *entity.Bill) (*ent.Bill, error) {
	// Free-form category labels fold onto the taxonomy before hitting the
	// column's enum validator.
	category, known := constants.Canonicalize(string(bill.Category))
	if !known && bill.Category != "" {
		r.log.Debug("unknown category folded to Other", "category", bill.Category)
	}

	q := r.ent.Bill.Create().
		SetProfileID(profileID).
		SetVendor(bill.Vendor).
		SetAmount(bill.Amount).
		SetCurrencyCode(bill.Currency).
		SetAccountNumber(bill.AccountNumber).
		SetInvoiceNumber(bill.InvoiceNumber).
		SetCategory(string(category))
	if !bill.IssueDate.IsZero() {
		q.SetIssueDate(bill.IssueDate)
	}
	if !bill.DueDate.IsZero() {
		q.SetDueDate(bill.DueDate)
	}
	if len(bill.Dynamic) > 0 {
		if b, err := json.Marshal(dynamicJSON(bill.Dynamic)); err == nil {
			q.SetDynamicFields(b)
		}
	}
	if len(bill.Provenance) > 0 {
		if b, err := json.Marshal(bill.Provenance); err == nil {
			q.SetProvenance(b)
		}
	}

	row, err := q.Save(ctx)
	if err != nil {
		r.log.Error("bill save failed", "profile_id", profileID, "vendor", bill.Vendor, "err", err)
		return nil, err
	}
	r.log.Info("bill saved", "bill_id", row.ID, "vendor", bill.Vendor, "amount", bill.Amount)
	return row, nil
}

func (r *billRepo) List(ctx context.Context, profileID uuid.UUID, from, to *time.Time, limit int) ([]*ent.Bill, error) {
	q := r.ent.Bill.Query().
		Where(entbill.ProfileID(profileID)).
		Order(ent.Desc(entbill.FieldCreatedAt))
	if from != nil {
		q.Where(entbill.DueDateGTE(*from))
	}
	if to != nil {
		q.Where(entbill.DueDateLTE(*to))
	}
	if limit > 0 {
		q.Limit(limit)
	}
	return q.All(ctx)
}

// dynamicJSON renders the typed dynamic values as flat JSON scalars.
func dynamicJSON(dyn map[string]entity.Value) map[string]any {
	out := make(map[string]any, len(dyn))
	for name, v := range dyn {
		switch v.Kind {
		case entity.KindNumber:
			out[name] = v.Number
		case entity.KindBoolean:
			out[name] = v.Bool
		case entity.KindDate:
			out[name] = v.String()
		default:
			out[name] = v.Text
		}
	}
	return out
}
