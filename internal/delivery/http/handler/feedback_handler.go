package handler

import (
	"errors"
	"time"

	"hiretrack/internal/delivery/http/dto"
	"hiretrack/internal/delivery/http/middleware"
	"hiretrack/internal/domain/feedback"
	"hiretrack/internal/pkg/response"
	"hiretrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FeedbackHandler struct {
	feedbacks usecase.FeedbackUsecase
}

func NewFeedbackHandler(feedbacks usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{feedbacks: feedbacks}
}

func (h *FeedbackHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Put("/updatedFeedback", h.Update)
	r.Get("/", h.List)
	r.Get("/:id", h.GetByID)
}

func (h *FeedbackHandler) Create(c fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	saved, err := h.feedbacks.Create(c.Context(), feedbackFromRequest(req))
	if err != nil {
		return mapFeedbackError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, feedbackToResponse(saved))
}

// Update takes the target id from the payload, not the path.
func (h *FeedbackHandler) Update(c fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	updated, err := h.feedbacks.Update(c.Context(), feedbackFromRequest(req))
	if err != nil {
		return mapFeedbackError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, feedbackToResponse(updated))
}

func (h *FeedbackHandler) GetByID(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	found, err := h.feedbacks.GetByID(c.Context(), id)
	if err != nil {
		return mapFeedbackError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, feedbackToResponse(found))
}

func (h *FeedbackHandler) List(c fiber.Ctx) error {
	list, err := h.feedbacks.List(c.Context())
	if err != nil {
		return mapFeedbackError(err)
	}

	out := make([]dto.FeedbackResponse, 0, len(list))
	for _, f := range list {
		out = append(out, feedbackToResponse(f))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapFeedbackError(err error) error {
	switch {
	case errors.Is(err, feedback.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Feedback not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func feedbackFromRequest(req dto.FeedbackRequest) feedback.Feedback {
	f := feedback.Feedback{
		ID:                   req.ID,
		CandidateID:          req.CandidateID,
		JobID:                req.JobID,
		JobTitle:             req.JobTitle,
		InterviewerName:      req.InterviewerName,
		TechnicalSkills:      req.TechnicalSkills,
		CommunicationSkills:  req.CommunicationSkills,
		ProblemSolving:       req.ProblemSolving,
		CulturalFit:          req.CulturalFit,
		Experience:           req.Experience,
		KeyStrength:          req.KeyStrength,
		AreasForImprovement:  req.AreasForImprovement,
		OverallAssessment:    req.OverallAssessment,
		HiringRecommendation: req.HiringRecommendation,
	}
	if t, err := time.Parse(postedDateLayout, req.InterviewDate); err == nil {
		f.InterviewDate = &t
	}
	return f
}

func feedbackToResponse(f feedback.Feedback) dto.FeedbackResponse {
	date := ""
	if f.InterviewDate != nil {
		date = f.InterviewDate.Format(postedDateLayout)
	}
	return dto.FeedbackResponse{
		ID:                   f.ID,
		CandidateID:          f.CandidateID,
		JobID:                f.JobID,
		JobTitle:             f.JobTitle,
		InterviewDate:        date,
		InterviewerName:      f.InterviewerName,
		TechnicalSkills:      f.TechnicalSkills,
		CommunicationSkills:  f.CommunicationSkills,
		ProblemSolving:       f.ProblemSolving,
		CulturalFit:          f.CulturalFit,
		Experience:           f.Experience,
		KeyStrength:          f.KeyStrength,
		AreasForImprovement:  f.AreasForImprovement,
		OverallAssessment:    f.OverallAssessment,
		HiringRecommendation: f.HiringRecommendation,
	}
}
