package handler

import (
	"errors"
	"time"

	"hiretrack/internal/delivery/http/dto"
	"hiretrack/internal/delivery/http/middleware"
	"hiretrack/internal/domain/job"
	"hiretrack/internal/pkg/response"
	"hiretrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const postedDateLayout = "2006-01-02"

type JobHandler struct {
	jobs usecase.JobUsecase
}

func NewJobHandler(jobs usecase.JobUsecase) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.GetByID)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	saved, err := h.jobs.Create(c.Context(), jobFromRequest(req))
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, jobToResponse(saved))
}

func (h *JobHandler) GetByID(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	found, err := h.jobs.GetByID(c.Context(), id)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobToResponse(found))
}

func (h *JobHandler) List(c fiber.Ctx) error {
	jobs, err := h.jobs.List(c.Context())
	if err != nil {
		return mapJobError(err)
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobToResponse(j))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	updated, err := h.jobs.Update(c.Context(), id, jobFromRequest(req))
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobToResponse(updated))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.jobs.Delete(c.Context(), id); err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job deleted", nil)
}

func mapJobError(err error) error {
	if errors.Is(err, job.ErrNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}

func jobFromRequest(req dto.JobRequest) job.Job {
	j := job.Job{
		Title:        req.Title,
		Status:       req.Status,
		Experience:   req.Experience,
		Education:    req.Education,
		Skills:       req.Skills,
		Description:  req.Description,
		Location:     req.Location,
		LocationType: req.LocationType,
		JobType:      req.JobType,
	}
	if t, err := time.Parse(postedDateLayout, req.PostedDate); err == nil {
		j.PostedDate = &t
	}
	return j
}

func jobToResponse(j job.Job) dto.JobResponse {
	posted := ""
	if j.PostedDate != nil {
		posted = j.PostedDate.Format(postedDateLayout)
	}
	return dto.JobResponse{
		JobID:        j.ID,
		Title:        j.Title,
		Status:       j.Status,
		Experience:   j.Experience,
		Education:    j.Education,
		Skills:       j.Skills,
		Description:  j.Description,
		Location:     j.Location,
		LocationType: j.LocationType,
		JobType:      j.JobType,
		PostedDate:   posted,
	}
}
