package schedule

import (
	"context"

	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PolicyService manages the accounting policy notes of companies
type PolicyService struct {
	repo      schedule.PolicyRepository
	companies CompanyFinder
	txManager shared.TxManager
	logger    *zap.Logger
}

// NewPolicyService creates a new PolicyService
func NewPolicyService(repo schedule.PolicyRepository, companies CompanyFinder, txManager shared.TxManager, logger *zap.Logger) *PolicyService {
	return &PolicyService{repo: repo, companies: companies, txManager: txManager, logger: logger}
}

// GetAccountingPolicies returns the company's policies by note reference, or
// the global defaults when the company has none
func (s *PolicyService) GetAccountingPolicies(ctx context.Context, companyID uuid.UUID) ([]schedule.AccountingPolicy, error) {
	policies, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if len(policies) > 0 {
		return policies, nil
	}
	global, err := s.repo.ListGlobal(ctx)
	if err != nil {
		return nil, err
	}
	if global == nil {
		global = []schedule.AccountingPolicy{}
	}
	return global, nil
}

// InitializeAccountingPolicies loads the standard policy notes for a company
// that has none yet
func (s *PolicyService) InitializeAccountingPolicies(ctx context.Context, companyID uuid.UUID) (*InitializePoliciesResult, error) {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "Company not found")
		}
		return nil, err
	}

	policies := schedule.DefaultPolicies(companyID)
	err := s.txManager.InTx(ctx, func(ctx context.Context) error {
		existing, err := s.repo.CountByCompany(ctx, companyID)
		if err != nil {
			return err
		}
		if existing > 0 {
			return shared.NewDomainError(shared.CodeBadRequest,
				"Accounting policies already exist for this company. Please delete existing policies first if you want to reinitialize.")
		}
		for i := range policies {
			if err := s.repo.Create(ctx, &policies[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Accounting policies initialized",
		zap.String("company_id", companyID.String()),
		zap.Int("count", len(policies)))
	return &InitializePoliciesResult{Success: true, Count: len(policies), Policies: policies}, nil
}

// UpdateAccountingPolicy replaces a policy's text; the policy stops being a default
func (s *PolicyService) UpdateAccountingPolicy(ctx context.Context, input UpdatePolicyInput) (*schedule.AccountingPolicy, error) {
	policy, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "Accounting policy not found")
		}
		return nil, err
	}
	if policy.CompanyID == nil {
		return nil, shared.NewDomainError(shared.CodeBadRequest,
			"Global policies cannot be edited. Initialize the company's accounting policies first.")
	}
	if *policy.CompanyID != input.CompanyID {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Accounting policy not found")
	}

	if err := policy.Revise(input.Title, input.Content); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, policy); err != nil {
		return nil, err
	}
	return policy, nil
}
