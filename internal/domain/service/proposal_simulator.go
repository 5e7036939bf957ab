package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biglittle/lending/internal/domain/model"
)

// Counterparty identifies one lender competing for a borrower's business.
type Counterparty struct {
	Key      string
	Name     string
	Business string
}

// ProposalSimulator fans a single borrower request out into one proposal per
// lender, varying only the annual rate.
type ProposalSimulator struct {
	rates RateStrategy
}

// NewProposalSimulator wires the rate-selection strategy.
func NewProposalSimulator(rates RateStrategy) *ProposalSimulator {
	return &ProposalSimulator{rates: rates}
}

// SimulateProposals generates one proposal per counterparty, keyed by lender
// key. Proposals share no mutable state; each carries its own schedule.
func (s *ProposalSimulator) SimulateProposals(
	principal decimal.Decimal,
	numPayments int,
	currency, borrowerKey string,
	lenders []Counterparty,
	now time.Time,
) (map[string]model.Loan, error) {
	proposals := make(map[string]model.Loan, len(lenders))
	for _, lender := range lenders {
		rate := s.rates.AnnualRatePercent(lender.Key)
		loan, err := model.NewProposal(
			principal, numPayments, rate, currency,
			borrowerKey, lender.Key, lender.Name, lender.Business,
			now,
		)
		if err != nil {
			return nil, fmt.Errorf("propose for lender %s: %w", lender.Key, err)
		}
		proposals[lender.Key] = loan
	}
	return proposals, nil
}
