package lead

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dealerdesk/leadkit/pkg/pg"
)

// PostgresRepository persists leads in PostgreSQL via a pgx pool. The schema
// lives in migrations/00001_create_leads.sql; the audit trail is stored as a
// JSONB column rather than a join table because it is only ever read whole.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository wraps an established connection pool.
func NewPostgresRepository(pool *pgxpool.Pool) (*PostgresRepository, error) {
	if pool == nil {
		return nil, ErrNilRepository
	}
	return &PostgresRepository{pool: pool}, nil
}

const saveLeadQuery = `
INSERT INTO leads (
	id, dealer_id, tenant_id, site_id, source, email,
	phone_country_code, phone_number,
	vehicle_make, vehicle_model, vehicle_year, trade_in_value,
	state, score, audit, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
ON CONFLICT (id) DO UPDATE SET
	source = EXCLUDED.source,
	email = EXCLUDED.email,
	phone_country_code = EXCLUDED.phone_country_code,
	phone_number = EXCLUDED.phone_number,
	vehicle_make = EXCLUDED.vehicle_make,
	vehicle_model = EXCLUDED.vehicle_model,
	vehicle_year = EXCLUDED.vehicle_year,
	trade_in_value = EXCLUDED.trade_in_value,
	state = EXCLUDED.state,
	score = EXCLUDED.score,
	audit = EXCLUDED.audit,
	updated_at = EXCLUDED.updated_at`

// Save upserts the lead. The dealer id is immutable after insert; the upsert
// deliberately never updates it.
func (r *PostgresRepository) Save(ctx context.Context, l *Lead) error {
	if l == nil {
		return ErrInvalidLead
	}

	audit, err := json.Marshal(l.Audit)
	if err != nil {
		return fmt.Errorf("marshal audit trail: %w", err)
	}

	var vehicleMake, vehicleModel *string
	var vehicleYear *int
	var tradeIn *float64
	if l.Vehicle != nil {
		vehicleMake = &l.Vehicle.Make
		vehicleModel = &l.Vehicle.Model
		vehicleYear = &l.Vehicle.Year
		tradeIn = l.Vehicle.TradeInValue
	}

	_, err = r.pool.Exec(ctx, saveLeadQuery,
		l.ID, l.DealerID, l.TenantID, l.SiteID, string(l.Source), string(l.Email),
		l.Phone.CountryCode, l.Phone.Number,
		vehicleMake, vehicleModel, vehicleYear, tradeIn,
		string(l.State), l.Score, audit, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save lead: %w", err)
	}
	return nil
}

const selectLeadColumns = `
	id, dealer_id, tenant_id, site_id, source, email,
	phone_country_code, phone_number,
	vehicle_make, vehicle_model, vehicle_year, trade_in_value,
	state, score, audit, created_at, updated_at`

// FindByIDAndDealerID returns the lead or ErrNotFound.
func (r *PostgresRepository) FindByIDAndDealerID(ctx context.Context, id, dealerID string) (*Lead, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+selectLeadColumns+` FROM leads WHERE id = $1 AND dealer_id = $2`,
		id, dealerID,
	)

	l, err := scanLead(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return l, nil
}

// FindByDealerIDAndState lists a dealer's leads in the given state.
func (r *PostgresRepository) FindByDealerIDAndState(ctx context.Context, dealerID string, state State) ([]*Lead, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+selectLeadColumns+` FROM leads WHERE dealer_id = $1 AND state = $2 ORDER BY updated_at DESC`,
		dealerID, string(state),
	)
	if err != nil {
		return nil, fmt.Errorf("list leads by state: %w", err)
	}
	defer rows.Close()

	return collectLeads(rows)
}

// FindByDealerIDOrderByScore lists a dealer's leads best-first: score
// descending with unscored leads last, ties broken by most recent update.
func (r *PostgresRepository) FindByDealerIDOrderByScore(ctx context.Context, dealerID string) ([]*Lead, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+selectLeadColumns+` FROM leads WHERE dealer_id = $1 ORDER BY score DESC NULLS LAST, updated_at DESC`,
		dealerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list leads by score: %w", err)
	}
	defer rows.Close()

	return collectLeads(rows)
}

func collectLeads(rows pgx.Rows) ([]*Lead, error) {
	var out []*Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}
	return out, nil
}

func scanLead(row pgx.Row) (*Lead, error) {
	var (
		l            Lead
		source       string
		email        string
		state        string
		vehicleMake  *string
		vehicleModel *string
		vehicleYear  *int
		tradeIn      *float64
		audit        []byte
	)

	err := row.Scan(
		&l.ID, &l.DealerID, &l.TenantID, &l.SiteID, &source, &email,
		&l.Phone.CountryCode, &l.Phone.Number,
		&vehicleMake, &vehicleModel, &vehicleYear, &tradeIn,
		&state, &l.Score, &audit, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.Source = Source(source)
	l.Email = Email(email)
	l.State = State(state)

	if vehicleMake != nil && vehicleModel != nil && vehicleYear != nil {
		l.Vehicle = &VehicleInterest{
			Make:         *vehicleMake,
			Model:        *vehicleModel,
			Year:         *vehicleYear,
			TradeInValue: tradeIn,
		}
	}

	if len(audit) > 0 {
		if err := json.Unmarshal(audit, &l.Audit); err != nil {
			return nil, errors.Join(errors.New("unmarshal audit trail"), err)
		}
	}

	return &l, nil
}
