package handler

import (
	"errors"
	"strconv"

	"hiretrack/internal/delivery/http/dto"
	"hiretrack/internal/delivery/http/middleware"
	"hiretrack/internal/domain/candidate"
	"hiretrack/internal/domain/job"
	"hiretrack/internal/pkg/response"
	"hiretrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	candidates usecase.CandidateUsecase
	importer   usecase.BulkImportUsecase
	views      usecase.ViewUsecase
}

func NewCandidateHandler(candidates usecase.CandidateUsecase, importer usecase.BulkImportUsecase, views usecase.ViewUsecase) *CandidateHandler {
	return &CandidateHandler{candidates: candidates, importer: importer, views: views}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Post("/uploadCandidates", h.Upload)
	r.Get("/selectedCandidates/:status", h.ListByStatus)
	r.Get("/job/:jobId/status/:status", h.ListByJobAndStatus)
	r.Get("/candidateJobDetails/:candidateId", h.CandidateJobDetails)
	r.Get("/listOfCandidates/:jobId", h.JobRoster)
	r.Get("/:id", h.GetByID)
	r.Put("/:id", h.Update)
}

func (h *CandidateHandler) Create(c fiber.Ctx) error {
	var req dto.CandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	saved, err := h.candidates.Create(c.Context(), candidateFromRequest(req))
	if err != nil {
		return mapCandidateError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, candidateToResponse(saved))
}

func (h *CandidateHandler) Upload(c fiber.Ctx) error {
	var req dto.CandidateUploadRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	results := make([]usecase.MatchResult, 0, len(req.Results))
	for _, item := range req.Results {
		results = append(results, usecase.MatchResult{
			ID:            item.ID,
			FileName:      item.FileName,
			CandidateName: item.CandidateName,
			Email:         item.Email,
			Skills:        item.Skills,
			Status:        item.Status,
			MatchScore:    item.MatchScore,
			MatchedSkills: item.MatchedSkills,
			Feedback:      item.Feedback,
		})
	}

	imported, err := h.importer.Import(c.Context(), usecase.BulkImportInput{
		JobID:    req.JobID,
		JobTitle: req.JobTitle,
		Results:  results,
	})
	if err != nil {
		return mapCandidateError(err)
	}

	out := make([]dto.CandidateResponse, 0, len(imported))
	for _, ic := range imported {
		out = append(out, candidateToResponse(ic.Candidate))
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, out)
}

func (h *CandidateHandler) GetByID(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	found, err := h.candidates.GetByID(c.Context(), id)
	if err != nil {
		return mapCandidateError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, candidateToResponse(found))
}

func (h *CandidateHandler) ListByStatus(c fiber.Ctx) error {
	list, err := h.candidates.ListByStatus(c.Context(), c.Params("status"))
	if err != nil {
		return mapCandidateError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, candidatesToResponse(list))
}

func (h *CandidateHandler) ListByJobAndStatus(c fiber.Ctx) error {
	jobID, err := pathID(c, "jobId")
	if err != nil {
		return err
	}

	list, err := h.candidates.ListByStatusAndJob(c.Context(), c.Params("status"), jobID)
	if err != nil {
		return mapCandidateError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, candidatesToResponse(list))
}

func (h *CandidateHandler) Update(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	updated, err := h.candidates.Update(c.Context(), id, candidateFromRequest(req))
	if err != nil {
		return mapCandidateError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, candidateToResponse(updated))
}

// CandidateJobDetails and JobRoster return their contract shapes directly;
// the envelope would break the downstream consumers.
func (h *CandidateHandler) CandidateJobDetails(c fiber.Ctx) error {
	id, err := pathID(c, "candidateId")
	if err != nil {
		return err
	}

	details, err := h.views.CandidateJobDetails(c.Context(), id)
	if err != nil {
		return mapCandidateError(err)
	}
	return c.JSON(dto.CandidateJobDetailsResponse{
		JobRole:             details.JobRole,
		Industry:            details.Industry,
		ExperienceLevel:     details.ExperienceLevel,
		CandidateBackground: details.CandidateBackground,
		QuestionCount:       details.QuestionCount,
	})
}

func (h *CandidateHandler) JobRoster(c fiber.Ctx) error {
	jobID, err := pathID(c, "jobId")
	if err != nil {
		return err
	}

	roster, err := h.views.JobRoster(c.Context(), jobID)
	if err != nil {
		return mapCandidateError(err)
	}

	results := make([]dto.CandidateResult, 0, len(roster.Results))
	for _, rc := range roster.Results {
		results = append(results, dto.CandidateResult{
			ID:            rc.ID,
			FileName:      rc.FileName,
			Status:        rc.Status,
			MatchScore:    rc.MatchScore,
			Skills:        rc.Skills,
			MatchedSkills: rc.MatchedSkills,
			Feedback:      rc.Feedback,
			JobDetails:    dto.JobDetails{JobID: rc.JobID, JobTitle: rc.JobTitle},
			CandidateName: rc.CandidateName,
			Email:         rc.Email,
		})
	}

	return c.JSON(dto.JobRosterResponse{
		Success: true,
		Data: dto.JobRosterData{
			JobID:    roster.JobID,
			JobTitle: roster.JobTitle,
			Company:  roster.Company,
			Results:  results,
			SavedAt:  roster.SavedAt,
		},
	})
}

func pathID(c fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}

func mapCandidateError(err error) error {
	switch {
	case errors.Is(err, candidate.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func candidateFromRequest(req dto.CandidateRequest) candidate.Candidate {
	return candidate.Candidate{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		FitScore:      req.FitScore,
		Status:        req.Status,
		ResumeResult:  req.ResumeResult,
		Description:   req.Description,
		SkillSet:      req.SkillSet,
		MatchedSkills: req.MatchedSkills,
		JobID:         req.JobID,
	}
}

func candidateToResponse(c candidate.Candidate) dto.CandidateResponse {
	return dto.CandidateResponse{
		CandidateID:   c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.Email,
		FitScore:      c.FitScore,
		Status:        c.Status,
		ResumeResult:  c.ResumeResult,
		Description:   c.Description,
		SkillSet:      c.SkillSet,
		MatchedSkills: c.MatchedSkills,
		JobID:         c.JobID,
	}
}

func candidatesToResponse(list []candidate.Candidate) []dto.CandidateResponse {
	out := make([]dto.CandidateResponse, 0, len(list))
	for _, c := range list {
		out = append(out, candidateToResponse(c))
	}
	return out
}
