package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/biglittle/lending/internal/domain/model"
	"github.com/biglittle/lending/internal/domain/port"
	"github.com/biglittle/lending/internal/domain/valueobject"
	"github.com/biglittle/lending/pkg/numeric"
)

// The effective rate is stored scaled by 1000 to keep the column readable at
// typical magnitudes; the domain only ever sees the unscaled value.
const effectiveRateScale = 3

// LoanRepo implements port.LoanRepository on PostgreSQL. All monetary columns
// are NUMERIC and round-trip through the exact decimal codec.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

// Insert stores a freshly keyed loan and its full schedule.
func (r *LoanRepo) Insert(ctx context.Context, loan model.Loan) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	info := loan.Info()
	loanQuery := `
		INSERT INTO loans (
			borrower_key, lender_key, lender_name, lender_business, loan_key,
			principal, num_payments, annual_rate_percent, effective_rate_scaled,
			currency, monthly_payment, overpayment_balance,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`
	_, err = tx.Exec(ctx, loanQuery,
		loan.BorrowerKey(), loan.LenderKey(), loan.LenderName(), loan.LenderBusiness(), loan.LoanKey(),
		numeric.ToStorage(info.Principal), info.NumPayments,
		numeric.ToStorage(info.AnnualRatePercent),
		numeric.ToStorage(info.EffectiveRate.Shift(effectiveRateScale)),
		info.Currency, numeric.ToStorage(info.MonthlyPayment),
		numeric.ToStorage(loan.OverpaymentBalance()),
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert loan %s: %w", loan.LoanKey(), err)
	}

	paymentQuery := `
		INSERT INTO loan_payments (borrower_key, period, amount_due, amount_paid, status, received_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, p := range loan.Payments() {
		_, err := tx.Exec(ctx, paymentQuery,
			loan.BorrowerKey(), p.Period,
			numeric.ToStorage(p.AmountDue), numeric.ToStorage(p.AmountPaid),
			p.Status.String(), p.ReceivedAt,
		)
		if err != nil {
			return fmt.Errorf("insert payment %d: %w", p.Period, err)
		}
	}

	return tx.Commit(ctx)
}

// FindByBorrowerKey returns the borrower's loan or port.ErrLoanNotFound.
func (r *LoanRepo) FindByBorrowerKey(ctx context.Context, borrowerKey string) (model.Loan, error) {
	query := `
		SELECT borrower_key, lender_key, lender_name, lender_business, loan_key,
		       principal, num_payments, annual_rate_percent, effective_rate_scaled,
		       currency, monthly_payment, overpayment_balance,
		       version, created_at, updated_at
		FROM loans
		WHERE borrower_key = $1
	`
	row := r.pool.QueryRow(ctx, query, borrowerKey)

	var (
		bKey, lenderKey, lenderName, lenderBusiness, loanKey string
		principalN, annualRateN, effRateN, monthlyN, overN   pgtype.Numeric
		numPayments, version                                 int
		currency                                             string
		createdAt, updatedAt                                 time.Time
	)
	err := row.Scan(
		&bKey, &lenderKey, &lenderName, &lenderBusiness, &loanKey,
		&principalN, &numPayments, &annualRateN, &effRateN,
		&currency, &monthlyN, &overN,
		&version, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Loan{}, port.ErrLoanNotFound
	}
	if err != nil {
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	principal, err := numeric.FromStorage(principalN)
	if err != nil {
		return model.Loan{}, fmt.Errorf("decode principal: %w", err)
	}
	annualRate, err := numeric.FromStorage(annualRateN)
	if err != nil {
		return model.Loan{}, fmt.Errorf("decode annual rate: %w", err)
	}
	effRateScaled, err := numeric.FromStorage(effRateN)
	if err != nil {
		return model.Loan{}, fmt.Errorf("decode effective rate: %w", err)
	}
	monthly, err := numeric.FromStorage(monthlyN)
	if err != nil {
		return model.Loan{}, fmt.Errorf("decode monthly payment: %w", err)
	}
	overpayment, err := numeric.FromStorage(overN)
	if err != nil {
		return model.Loan{}, fmt.Errorf("decode overpayment balance: %w", err)
	}

	payments, err := r.loadPayments(ctx, borrowerKey)
	if err != nil {
		return model.Loan{}, err
	}

	return model.ReconstructLoan(
		bKey, lenderKey, lenderName, lenderBusiness, loanKey,
		model.LoanInfo{
			Principal:         principal,
			NumPayments:       numPayments,
			AnnualRatePercent: annualRate,
			EffectiveRate:     effRateScaled.Shift(-effectiveRateScale),
			Currency:          currency,
			MonthlyPayment:    monthly,
		},
		payments, overpayment, version, createdAt, updatedAt,
	), nil
}

// ReplaceIfUnchanged writes the mutated loan only if the stored version still
// matches the version the caller read. The version column advances on every
// successful replace.
func (r *LoanRepo) ReplaceIfUnchanged(ctx context.Context, loan model.Loan) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	loanQuery := `
		UPDATE loans
		SET overpayment_balance = $1,
		    version             = version + 1,
		    updated_at          = $2
		WHERE borrower_key = $3 AND version = $4
	`
	tag, err := tx.Exec(ctx, loanQuery,
		numeric.ToStorage(loan.OverpaymentBalance()), loan.UpdatedAt(),
		loan.BorrowerKey(), loan.Version(),
	)
	if err != nil {
		return fmt.Errorf("replace loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrVersionConflict
	}

	paymentQuery := `
		UPDATE loan_payments
		SET amount_paid = $1, status = $2, received_at = $3
		WHERE borrower_key = $4 AND period = $5
	`
	for _, p := range loan.Payments() {
		_, err := tx.Exec(ctx, paymentQuery,
			numeric.ToStorage(p.AmountPaid), p.Status.String(), p.ReceivedAt,
			loan.BorrowerKey(), p.Period,
		)
		if err != nil {
			return fmt.Errorf("replace payment %d: %w", p.Period, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *LoanRepo) loadPayments(ctx context.Context, borrowerKey string) ([]model.Payment, error) {
	query := `
		SELECT period, amount_due, amount_paid, status, received_at
		FROM loan_payments
		WHERE borrower_key = $1
		ORDER BY period
	`
	rows, err := r.pool.Query(ctx, query, borrowerKey)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var (
			period     int
			dueN       pgtype.Numeric
			paidN      pgtype.Numeric
			statusStr  string
			receivedAt *time.Time
			due, paid  decimal.Decimal
		)
		if err := rows.Scan(&period, &dueN, &paidN, &statusStr, &receivedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		if due, err = numeric.FromStorage(dueN); err != nil {
			return nil, fmt.Errorf("decode amount due for period %d: %w", period, err)
		}
		if paid, err = numeric.FromStorage(paidN); err != nil {
			return nil, fmt.Errorf("decode amount paid for period %d: %w", period, err)
		}
		status, err := valueobject.NewPaymentStatus(statusStr)
		if err != nil {
			return nil, fmt.Errorf("parse payment status for period %d: %w", period, err)
		}
		payments = append(payments, model.Payment{
			Period:     period,
			AmountDue:  due,
			AmountPaid: paid,
			Status:     status,
			ReceivedAt: receivedAt,
		})
	}
	return payments, rows.Err()
}
