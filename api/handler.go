package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/Hasti0013/schedcompare/config"
	"github.com/Hasti0013/schedcompare/sched"
)

type SchedulerHandler struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandler(config *config.SchedulerConfig) *SchedulerHandler {
	return &SchedulerHandler{config: config}
}

// NewApp wires the handler into a fiber app under /api/v1.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	h := NewSchedulerHandler(cfg)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/policies", h.Policies)
		v1.Post("/schedule", h.Schedule)
		v1.Post("/schedule/:policy", h.SchedulePolicy)
	}
	return app
}

// Policies lists the short names accepted by /schedule/:policy.
func (s *SchedulerHandler) Policies(ctx *fiber.Ctx) error {
	return ctx.JSON(sched.PolicyKeys())
}

// Schedule runs every policy and reports the averages and the best policy.
// ?detail=true adds the per-policy batches.
func (s *SchedulerHandler) Schedule(ctx *fiber.Ctx) error {
	processes, quantum, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}
	cmp, err := sched.Compare(processes, quantum)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"processes": len(processes),
		"quantum":   quantum,
		"best":      cmp.Best,
	}).Info("schedule comparison done")

	response := ScheduleResponse{Results: cmp.Results, Best: cmp.Best}
	if ctx.QueryBool("detail") {
		response.Batches = cmp.Batches
	}
	return ctx.JSON(response)
}

// SchedulePolicy runs a single policy named by the :policy param.
func (s *SchedulerHandler) SchedulePolicy(ctx *fiber.Ctx) error {
	processes, quantum, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}
	policy, err := sched.NewPolicy(ctx.Params("policy"), quantum)
	if err != nil {
		return err
	}
	batch, err := policy.Schedule(processes)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"policy":    batch.Policy,
		"processes": len(processes),
	}).Debug("policy run done")
	return ctx.JSON(batch)
}

// parseRequest accepts a JSON body or the form fields process, arrival_time,
// burst_time (repeated, parallel) and quantum.
func (s *SchedulerHandler) parseRequest(ctx *fiber.Ctx) ([]sched.Process, int64, error) {
	if ctx.Is("json") {
		var request ScheduleRequest
		if err := ctx.BodyParser(&request); err != nil {
			return nil, 0, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
		}
		processes := make([]sched.Process, len(request.Processes))
		for i, p := range request.Processes {
			processes[i] = sched.NewProcess(p.ID, p.ArrivalTime, p.BurstTime)
		}
		return processes, s.quantumOrDefault(request.Quantum), nil
	}

	arrivals, err := parseInts(formValues(ctx, "arrival_time"))
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, "arrival_time: "+err.Error())
	}
	bursts, err := parseInts(formValues(ctx, "burst_time"))
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, "burst_time: "+err.Error())
	}
	var quantum int64
	if q := formValues(ctx, "quantum"); len(q) > 0 && strings.TrimSpace(q[0]) != "" {
		if quantum, err = strconv.ParseInt(strings.TrimSpace(q[0]), 10, 64); err != nil {
			return nil, 0, fiber.NewError(fiber.StatusBadRequest, "quantum: "+err.Error())
		}
	}
	processes, err := sched.FromColumns(formValues(ctx, "process"), arrivals, bursts)
	if err != nil {
		return nil, 0, err
	}
	return processes, s.quantumOrDefault(quantum), nil
}

func (s *SchedulerHandler) quantumOrDefault(quantum int64) int64 {
	if quantum == 0 {
		return s.config.RoundRobinTimeQuantum
	}
	return quantum
}

func formValues(ctx *fiber.Ctx, key string) []string {
	if form, err := ctx.MultipartForm(); err == nil {
		return form.Value[key]
	}
	var values []string
	for _, v := range ctx.Request().PostArgs().PeekMulti(key) {
		values = append(values, string(v))
	}
	return values
}

func parseInts(values []string) ([]int64, error) {
	out := make([]int64, len(values))
	for i, v := range values {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case errors.Is(err, sched.ErrUnknownPolicy):
		code = fiber.StatusNotFound
	case errors.Is(err, sched.ErrInvalidInput):
		code = fiber.StatusBadRequest
	}
	entry := logrus.WithField("path", ctx.Path()).WithError(err)
	if code >= fiber.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Warn("request rejected")
	}
	return ctx.Status(code).JSON(ErrorResponse{Error: err.Error()})
}
