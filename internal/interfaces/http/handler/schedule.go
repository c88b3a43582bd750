package handler

import (
	appschedule "github.com/finstatements/backend/internal/application/schedule"
	"github.com/finstatements/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler serves the supporting schedules and accounting policies
type ScheduleHandler struct {
	BaseHandler
	scheduleService *appschedule.ScheduleService
	policyService   *appschedule.PolicyService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(companies CompanyAuthorizer, scheduleService *appschedule.ScheduleService, policyService *appschedule.PolicyService) *ScheduleHandler {
	return &ScheduleHandler{
		BaseHandler:     BaseHandler{companies: companies},
		scheduleService: scheduleService,
		policyService:   policyService,
	}
}

// Procedures implements router.Registrar
func (h *ScheduleHandler) Procedures() []router.Procedure {
	s := h.scheduleService
	var procs []router.Procedure
	procs = append(procs, entryProcedures(h, "PPEEntry", "PPEEntries", s.PPE)...)
	procs = append(procs, entryProcedures(h, "CWIPEntry", "CWIPEntries", s.CWIP)...)
	procs = append(procs, entryProcedures(h, "IntangibleEntry", "IntangibleEntries", s.Intangibles)...)
	procs = append(procs, entryProcedures(h, "InvestmentEntry", "InvestmentEntries", s.Investments)...)
	procs = append(procs, entryProcedures(h, "ShareCapitalEntry", "ShareCapitalEntries", s.ShareCapital)...)
	procs = append(procs, entryProcedures(h, "ReceivableLedgerEntry", "ReceivableLedgerEntries", s.Receivables)...)
	procs = append(procs, entryProcedures(h, "PayableLedgerEntry", "PayableLedgerEntries", s.Payables)...)
	procs = append(procs, entryProcedures(h, "RelatedPartyTransaction", "RelatedPartyTransactions", s.RelatedParties)...)
	procs = append(procs, entryProcedures(h, "ContingentLiability", "ContingentLiabilities", s.Contingencies)...)
	procs = append(procs, entryProcedures(h, "TaxEntry", "TaxEntries", s.Taxes)...)
	procs = append(procs, entryProcedures(h, "DeferredTaxEntry", "DeferredTaxEntries", s.DeferredTaxes)...)
	procs = append(procs, entryProcedures(h, "EmployeeBenefitEntry", "EmployeeBenefitEntries", s.EmployeeBenefits)...)
	procs = append(procs, entryProcedures(h, "RatioAnalysis", "RatioAnalyses", s.Ratios)...)

	return append(procs,
		router.Procedure{Name: "getAgingSchedules", Kind: router.Query, Handler: h.GetAgingSchedules},
		router.Procedure{Name: "calculateTaxExpense", Kind: router.Query, Handler: h.CalculateTaxExpense},
		router.Procedure{Name: "getAccountingPolicies", Kind: router.Query, Handler: h.GetAccountingPolicies},
		router.Procedure{Name: "initializeAccountingPolicies", Kind: router.Mutation, Handler: h.InitializeAccountingPolicies},
		router.Procedure{Name: "updateAccountingPolicy", Kind: router.Mutation, Handler: h.UpdateAccountingPolicy},
	)
}

// entryProcedures builds add<Entity>, get<Entities>, update<Entity> and
// delete<Entity> for one schedule
func entryProcedures[T any, PT appschedule.Row[T]](h *ScheduleHandler, singular, plural string, svc *appschedule.EntryService[T, PT]) []router.Procedure {
	return []router.Procedure{
		{Name: "add" + singular, Kind: router.Mutation, Handler: addEntry(h, svc)},
		{Name: "get" + plural, Kind: router.Query, Handler: listEntries(h, svc)},
		{Name: "update" + singular, Kind: router.Mutation, Handler: updateEntry(h, svc)},
		{Name: "delete" + singular, Kind: router.Mutation, Handler: deleteEntry(h, svc)},
	}
}

// addEntry passes the raw input through so the entry service sees exactly
// the fields the caller sent
//
// @Summary      Add a schedule entry
// @Description  Creates an entry in one supporting schedule. Derived totals are computed server side.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      object  true  "Entry fields with companyId"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      404    {object}  dto.Response
// @Router       /addPPEEntry [post]
// @Router       /addCWIPEntry [post]
// @Router       /addIntangibleEntry [post]
// @Router       /addInvestmentEntry [post]
// @Router       /addShareCapitalEntry [post]
// @Router       /addReceivableLedgerEntry [post]
// @Router       /addPayableLedgerEntry [post]
// @Router       /addRelatedPartyTransaction [post]
// @Router       /addContingentLiability [post]
// @Router       /addTaxEntry [post]
// @Router       /addDeferredTaxEntry [post]
// @Router       /addEmployeeBenefitEntry [post]
// @Router       /addRatioAnalysis [post]
func addEntry[T any, PT appschedule.Row[T]](h *ScheduleHandler, svc *appschedule.EntryService[T, PT]) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := h.rawInput(c)
		if !ok {
			return
		}
		var scope companyScope
		if !h.decode(c, raw, &scope) || !h.authorize(c, scope.CompanyID) {
			return
		}
		entry, err := svc.Add(c.Request.Context(), scope.CompanyID, raw)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, entry)
	}
}

// listEntries godoc
//
// @Summary      List schedule entries
// @Description  Lists the entries of one supporting schedule. Also callable with GET and a JSON encoded input query parameter.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      appschedule.ListInput  true  "Company and optional sort"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Router       /getPPEEntries [post]
// @Router       /getCWIPEntries [post]
// @Router       /getIntangibleEntries [post]
// @Router       /getInvestmentEntries [post]
// @Router       /getShareCapitalEntries [post]
// @Router       /getReceivableLedgerEntries [post]
// @Router       /getPayableLedgerEntries [post]
// @Router       /getRelatedPartyTransactions [post]
// @Router       /getContingentLiabilities [post]
// @Router       /getTaxEntries [post]
// @Router       /getDeferredTaxEntries [post]
// @Router       /getEmployeeBenefitEntries [post]
// @Router       /getRatioAnalyses [post]
func listEntries[T any, PT appschedule.Row[T]](h *ScheduleHandler, svc *appschedule.EntryService[T, PT]) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, ok := bindScoped(&h.BaseHandler, c, func(in *appschedule.ListInput) uuid.UUID { return in.CompanyID })
		if !ok {
			return
		}
		entries, err := svc.List(c.Request.Context(), in.CompanyID, in.SortInput)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, entries)
	}
}

// updateEntry merges the sent fields into the stored entry
//
// @Summary      Update a schedule entry
// @Description  Merges the given fields into an entry and recomputes its derived totals.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      object  true  "id, companyId and the fields to change"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      404    {object}  dto.Response
// @Router       /updatePPEEntry [post]
// @Router       /updateCWIPEntry [post]
// @Router       /updateIntangibleEntry [post]
// @Router       /updateInvestmentEntry [post]
// @Router       /updateShareCapitalEntry [post]
// @Router       /updateReceivableLedgerEntry [post]
// @Router       /updatePayableLedgerEntry [post]
// @Router       /updateRelatedPartyTransaction [post]
// @Router       /updateContingentLiability [post]
// @Router       /updateTaxEntry [post]
// @Router       /updateDeferredTaxEntry [post]
// @Router       /updateEmployeeBenefitEntry [post]
// @Router       /updateRatioAnalysis [post]
func updateEntry[T any, PT appschedule.Row[T]](h *ScheduleHandler, svc *appschedule.EntryService[T, PT]) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := h.rawInput(c)
		if !ok {
			return
		}
		var id appschedule.EntryIDInput
		if !h.decode(c, raw, &id) || !h.authorize(c, id.CompanyID) {
			return
		}
		entry, err := svc.Update(c.Request.Context(), id.CompanyID, id.ID, raw)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, entry)
	}
}

// deleteEntry godoc
//
// @Summary      Delete a schedule entry
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      appschedule.EntryIDInput  true  "Entry and company"
// @Success      200    {object}  dto.Response
// @Failure      404    {object}  dto.Response
// @Router       /deletePPEEntry [post]
// @Router       /deleteCWIPEntry [post]
// @Router       /deleteIntangibleEntry [post]
// @Router       /deleteInvestmentEntry [post]
// @Router       /deleteShareCapitalEntry [post]
// @Router       /deleteReceivableLedgerEntry [post]
// @Router       /deletePayableLedgerEntry [post]
// @Router       /deleteRelatedPartyTransaction [post]
// @Router       /deleteContingentLiability [post]
// @Router       /deleteTaxEntry [post]
// @Router       /deleteDeferredTaxEntry [post]
// @Router       /deleteEmployeeBenefitEntry [post]
// @Router       /deleteRatioAnalysis [post]
func deleteEntry[T any, PT appschedule.Row[T]](h *ScheduleHandler, svc *appschedule.EntryService[T, PT]) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, ok := bindScoped(&h.BaseHandler, c, func(in *appschedule.EntryIDInput) uuid.UUID { return in.CompanyID })
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), in.CompanyID, in.ID); err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, gin.H{"success": true})
	}
}

// GetAgingSchedules summarises the receivable and payable ledgers by aging bucket
//
// @ID           getAgingSchedules
// @Summary      Summarises the receivable and payable ledgers by aging bucket
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      appschedule.CompanyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /getAgingSchedules [post]
func (h *ScheduleHandler) GetAgingSchedules(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *appschedule.CompanyInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	result, err := h.scheduleService.GetAgingSchedules(c.Request.Context(), in.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// CalculateTaxExpense totals the tax note with its current and deferred split
//
// @ID           calculateTaxExpense
// @Summary      Totals the tax note with its current and deferred split
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      appschedule.CompanyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /calculateTaxExpense [post]
func (h *ScheduleHandler) CalculateTaxExpense(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *appschedule.CompanyInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	result, err := h.scheduleService.CalculateTaxExpense(c.Request.Context(), in.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// GetAccountingPolicies returns the company's policies or the global defaults
//
// @ID           getAccountingPolicies
// @Summary      Returns the company's policies or the global defaults
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      appschedule.CompanyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /getAccountingPolicies [post]
func (h *ScheduleHandler) GetAccountingPolicies(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *appschedule.CompanyInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	policies, err := h.policyService.GetAccountingPolicies(c.Request.Context(), in.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, policies)
}

// InitializeAccountingPolicies copies the standard policies to the company
//
// @ID           initializeAccountingPolicies
// @Summary      Copies the standard policies to the company
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      appschedule.CompanyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /initializeAccountingPolicies [post]
func (h *ScheduleHandler) InitializeAccountingPolicies(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *appschedule.CompanyInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	result, err := h.policyService.InitializeAccountingPolicies(c.Request.Context(), in.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UpdateAccountingPolicy rewrites one policy of the company
//
// @ID           updateAccountingPolicy
// @Summary      Rewrites one policy of the company
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      appschedule.UpdatePolicyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /updateAccountingPolicy [post]
func (h *ScheduleHandler) UpdateAccountingPolicy(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *appschedule.UpdatePolicyInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	policy, err := h.policyService.UpdateAccountingPolicy(c.Request.Context(), *in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, policy)
}
