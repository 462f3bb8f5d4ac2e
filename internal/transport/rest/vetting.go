package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ballotworks/advocacy-backend/internal/domain"
	"github.com/ballotworks/advocacy-backend/internal/service/vetting"
	"github.com/ballotworks/advocacy-backend/internal/transport/middleware"
)

// vettingService defines the minimal interface needed by VettingHandler.
type vettingService interface {
	CreateCase(ctx context.Context, input vetting.CreateCaseInput) (*vetting.CaseDetail, error)
	AdvanceStage(ctx context.Context, input vetting.AdvanceStageInput) (*domain.VettingCase, error)
	UpdateSection(ctx context.Context, input vetting.UpdateSectionInput) (*domain.ReportSection, error)
	SetRecommendation(ctx context.Context, input vetting.SetRecommendationInput) (*domain.VettingCase, error)
	RecordInterview(ctx context.Context, input vetting.RecordInterviewInput) (*domain.VettingCase, error)
	RecordBoardVote(ctx context.Context, input vetting.RecordBoardVoteInput) (*domain.VettingCase, error)
	GetCase(ctx context.Context, caseID uuid.UUID) (*vetting.CaseDetail, error)
	ListCases(ctx context.Context, input vetting.ListCasesInput) (*vetting.CaseList, error)
	ListAudits(ctx context.Context, caseID uuid.UUID) ([]domain.PresenceAudit, error)
	GetAudit(ctx context.Context, auditID uuid.UUID) (*domain.PresenceAudit, error)
}

// VettingHandler serves vetting REST endpoints.
type VettingHandler struct {
	svc vettingService
	log *slog.Logger
}

// NewVettingHandler creates a VettingHandler.
func NewVettingHandler(svc vettingService, logger *slog.Logger) *VettingHandler {
	return &VettingHandler{svc: svc, log: logger.With("handler", "vetting")}
}

// Register mounts all vetting routes on the mux.
func (h *VettingHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/vetting/cases", h.CreateCase)
	mux.HandleFunc("GET /v1/vetting/cases", h.ListCases)
	mux.HandleFunc("GET /v1/vetting/cases/{id}", h.GetCase)
	mux.HandleFunc("POST /v1/vetting/cases/{id}/advance", h.AdvanceStage)
	mux.HandleFunc("PATCH /v1/vetting/cases/{id}/sections/{type}", h.UpdateSection)
	mux.HandleFunc("PUT /v1/vetting/cases/{id}/recommendation", h.SetRecommendation)
	mux.HandleFunc("POST /v1/vetting/cases/{id}/interview", h.RecordInterview)
	mux.HandleFunc("POST /v1/vetting/cases/{id}/board-vote", h.RecordBoardVote)
	mux.HandleFunc("GET /v1/vetting/cases/{id}/audits", h.ListAudits)
	mux.HandleFunc("GET /v1/vetting/audits/{id}", h.GetAudit)
}

type createCaseRequest struct {
	CandidateName string `json:"candidateName"`
	Office        string `json:"office"`
	State         string `json:"state"`
	District      string `json:"district"`
	Party         string `json:"party"`
}

type advanceStageRequest struct {
	TargetStage string `json:"targetStage"`
}

type updateSectionRequest struct {
	Status          *string        `json:"status"`
	Payload         map[string]any `json:"payload"`
	AssignedTo      *string        `json:"assignedTo"`
	ClearAssignment bool           `json:"clearAssignment"`
}

type recommendationRequest struct {
	Recommendation string `json:"recommendation"`
}

type interviewRequest struct {
	At    time.Time `json:"at"`
	Notes *string   `json:"notes"`
}

type boardVoteRequest struct {
	Result string `json:"result"`
}

type caseResponse struct {
	ID                string     `json:"id"`
	CandidateName     string     `json:"candidateName"`
	Office            string     `json:"office"`
	State             string     `json:"state"`
	District          string     `json:"district,omitempty"`
	Party             string     `json:"party,omitempty"`
	Stage             string     `json:"stage"`
	Recommendation    *string    `json:"recommendation,omitempty"`
	EndorsementResult *string    `json:"endorsementResult,omitempty"`
	InterviewAt       *time.Time `json:"interviewAt,omitempty"`
	InterviewNotes    *string    `json:"interviewNotes,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type sectionResponse struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Status     string         `json:"status"`
	Payload    map[string]any `json:"payload,omitempty"`
	AssignedTo *string        `json:"assignedTo,omitempty"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

type progressResponse struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type caseDetailResponse struct {
	Case     caseResponse      `json:"case"`
	Sections []sectionResponse `json:"sections"`
	Progress progressResponse  `json:"progress"`
}

type caseListResponse struct {
	Cases []caseResponse `json:"cases"`
	Total int            `json:"total"`
}

type auditResponse struct {
	ID           string     `json:"id"`
	CaseID       string     `json:"caseId"`
	Status       string     `json:"status"`
	ErrorMessage *string    `json:"errorMessage,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	TriggeredBy  string     `json:"triggeredBy"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// CreateCase handles POST /v1/vetting/cases.
func (h *VettingHandler) CreateCase(w http.ResponseWriter, r *http.Request) {
	if !h.requireManager(w, r) {
		return
	}

	var req createCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	detail, err := h.svc.CreateCase(r.Context(), vetting.CreateCaseInput{
		CandidateName: req.CandidateName,
		Office:        req.Office,
		State:         req.State,
		District:      req.District,
		Party:         req.Party,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCaseDetailResponse(detail))
}

// GetCase handles GET /v1/vetting/cases/{id}.
func (h *VettingHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.svc.GetCase(r.Context(), caseID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaseDetailResponse(detail))
}

// ListCases handles GET /v1/vetting/cases.
func (h *VettingHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter domain.CaseFilter
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	if v := q.Get("stage"); v != "" {
		stage := domain.Stage(v)
		filter.Stage = &stage
	}
	if v := q.Get("hasResult"); v != "" {
		hasResult := v == "true"
		filter.HasResult = &hasResult
	}
	filter.SortBy = q.Get("sortBy")
	filter.SortOrder = q.Get("sortOrder")
	if v := q.Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("offset"); v != "" {
		filter.Offset, _ = strconv.Atoi(v)
	}

	list, err := h.svc.ListCases(r.Context(), vetting.ListCasesInput{Filter: filter})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := caseListResponse{Cases: make([]caseResponse, 0, len(list.Cases)), Total: list.Total}
	for i := range list.Cases {
		resp.Cases = append(resp.Cases, toCaseResponse(&list.Cases[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// AdvanceStage handles POST /v1/vetting/cases/{id}/advance.
func (h *VettingHandler) AdvanceStage(w http.ResponseWriter, r *http.Request) {
	if !h.requireManager(w, r) {
		return
	}

	caseID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req advanceStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.AdvanceStage(r.Context(), vetting.AdvanceStageInput{
		CaseID:      caseID,
		TargetStage: domain.Stage(req.TargetStage),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaseResponse(c))
}

// UpdateSection handles PATCH /v1/vetting/cases/{id}/sections/{type}.
func (h *VettingHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := vetting.UpdateSectionInput{
		CaseID:          caseID,
		SectionType:     domain.SectionType(r.PathValue("type")),
		Payload:         req.Payload,
		ClearAssignment: req.ClearAssignment,
	}
	if req.Status != nil {
		status := domain.SectionStatus(*req.Status)
		input.Status = &status
	}
	if req.AssignedTo != nil {
		assignee, err := uuid.Parse(*req.AssignedTo)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid assignedTo")
			return
		}
		input.AssignedTo = &assignee
	}

	section, err := h.svc.UpdateSection(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSectionResponse(section))
}

// SetRecommendation handles PUT /v1/vetting/cases/{id}/recommendation.
func (h *VettingHandler) SetRecommendation(w http.ResponseWriter, r *http.Request) {
	if !h.requireManager(w, r) {
		return
	}

	caseID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.SetRecommendation(r.Context(), vetting.SetRecommendationInput{
		CaseID:         caseID,
		Recommendation: domain.Recommendation(req.Recommendation),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaseResponse(c))
}

// RecordInterview handles POST /v1/vetting/cases/{id}/interview.
func (h *VettingHandler) RecordInterview(w http.ResponseWriter, r *http.Request) {
	if !h.requireManager(w, r) {
		return
	}

	caseID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req interviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.RecordInterview(r.Context(), vetting.RecordInterviewInput{
		CaseID: caseID,
		At:     req.At,
		Notes:  req.Notes,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaseResponse(c))
}

// RecordBoardVote handles POST /v1/vetting/cases/{id}/board-vote.
func (h *VettingHandler) RecordBoardVote(w http.ResponseWriter, r *http.Request) {
	if !h.requireManager(w, r) {
		return
	}

	caseID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req boardVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.RecordBoardVote(r.Context(), vetting.RecordBoardVoteInput{
		CaseID: caseID,
		Result: domain.EndorsementResult(req.Result),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaseResponse(c))
}

// ListAudits handles GET /v1/vetting/cases/{id}/audits.
func (h *VettingHandler) ListAudits(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	audits, err := h.svc.ListAudits(r.Context(), caseID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]auditResponse, 0, len(audits))
	for i := range audits {
		resp = append(resp, toAuditResponse(&audits[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetAudit handles GET /v1/vetting/audits/{id}.
func (h *VettingHandler) GetAudit(w http.ResponseWriter, r *http.Request) {
	auditID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	audit, err := h.svc.GetAudit(r.Context(), auditID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuditResponse(audit))
}

func (h *VettingHandler) requireManager(w http.ResponseWriter, r *http.Request) bool {
	if err := middleware.RequireVettingManager(r.Context()); err != nil {
		writeError(w, http.StatusForbidden, "vetting manager access required")
		return false
	}
	return true
}

func (h *VettingHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var rejected *domain.StageRejectedError
	var bootstrap *domain.AuditBootstrapError

	switch {
	case errors.As(err, &rejected):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":  rejected.Reason,
			"from":   rejected.From.String(),
			"target": rejected.Target.String(),
		})
	case errors.As(err, &bootstrap):
		// The stage change was rolled back; the client may retry.
		writeError(w, http.StatusServiceUnavailable, "presence audit could not be started; stage change was rolled back")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict: resource was modified concurrently")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func toCaseResponse(c *domain.VettingCase) caseResponse {
	resp := caseResponse{
		ID:             c.ID.String(),
		CandidateName:  c.CandidateName,
		Office:         c.Office,
		State:          c.State,
		District:       c.District,
		Party:          c.Party,
		Stage:          c.Stage.String(),
		InterviewAt:    c.InterviewAt,
		InterviewNotes: c.InterviewNotes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if c.Recommendation != nil {
		rec := c.Recommendation.String()
		resp.Recommendation = &rec
	}
	if c.EndorsementResult != nil {
		res := c.EndorsementResult.String()
		resp.EndorsementResult = &res
	}
	return resp
}

func toSectionResponse(s *domain.ReportSection) sectionResponse {
	resp := sectionResponse{
		ID:        s.ID.String(),
		Type:      s.Type.String(),
		Status:    s.Status.String(),
		Payload:   s.Payload,
		UpdatedAt: s.UpdatedAt,
	}
	if s.AssignedTo != nil {
		assignee := s.AssignedTo.String()
		resp.AssignedTo = &assignee
	}
	return resp
}

func toCaseDetailResponse(detail *vetting.CaseDetail) caseDetailResponse {
	sections := make([]sectionResponse, 0, len(detail.Sections))
	for i := range detail.Sections {
		sections = append(sections, toSectionResponse(&detail.Sections[i]))
	}
	return caseDetailResponse{
		Case:     toCaseResponse(&detail.Case),
		Sections: sections,
		Progress: progressResponse{
			Completed:  detail.Progress.Completed,
			Total:      detail.Progress.Total,
			Percentage: detail.Progress.Percentage,
		},
	}
}

func toAuditResponse(a *domain.PresenceAudit) auditResponse {
	return auditResponse{
		ID:           a.ID.String(),
		CaseID:       a.CaseID.String(),
		Status:       a.Status.String(),
		ErrorMessage: a.ErrorMessage,
		CompletedAt:  a.CompletedAt,
		TriggeredBy:  a.TriggeredBy.String(),
		CreatedAt:    a.CreatedAt,
	}
}
