package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/biglittle/lending/internal/application/dto"
	"github.com/biglittle/lending/internal/domain/service"
)

// SimulateProposalsUseCase produces one competing proposal per lender.
type SimulateProposalsUseCase struct {
	simulator *service.ProposalSimulator
}

// NewSimulateProposalsUseCase wires dependencies.
func NewSimulateProposalsUseCase(simulator *service.ProposalSimulator) *SimulateProposalsUseCase {
	return &SimulateProposalsUseCase{simulator: simulator}
}

// Execute fans the request out across the given lenders.
func (uc *SimulateProposalsUseCase) Execute(
	_ context.Context,
	req dto.SimulateProposalsRequest,
) (dto.SimulateProposalsResponse, error) {
	lenders := make([]service.Counterparty, len(req.Lenders))
	for i, l := range req.Lenders {
		lenders[i] = service.Counterparty{Key: l.Key, Name: l.Name, Business: l.Business}
	}

	proposals, err := uc.simulator.SimulateProposals(
		req.Principal, req.NumPayments, req.Currency, req.BorrowerKey,
		lenders, time.Now().UTC(),
	)
	if err != nil {
		return dto.SimulateProposalsResponse{}, fmt.Errorf("simulate proposals for borrower %s: %w", req.BorrowerKey, err)
	}

	out := make(map[string]dto.LoanResponse, len(proposals))
	for key, loan := range proposals {
		out[key] = toLoanResponse(loan)
	}

	return dto.SimulateProposalsResponse{
		BorrowerKey: req.BorrowerKey,
		Proposals:   out,
	}, nil
}
