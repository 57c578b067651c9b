package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"taskmanager-api/domain/dto"
	"taskmanager-api/domain/services"
	"taskmanager-api/pkg/logger"
	"taskmanager-api/pkg/utils"
)

const taskNotFoundMessage = "Task not found"

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.TaskRequest
	if ok, err := bindTaskRequest(c, &req); !ok {
		return err
	}

	task, err := h.taskService.CreateTask(ctx, user, &req)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	tasks, err := h.taskService.ListTasks(ctx, user)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return utils.NotFoundResponse(c, taskNotFoundMessage)
	}

	task, err := h.taskService.GetTask(ctx, user, taskID)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return utils.NotFoundResponse(c, taskNotFoundMessage)
	}

	var req dto.TaskRequest
	if ok, err := bindTaskRequest(c, &req); !ok {
		return err
	}

	task, err := h.taskService.UpdateTask(ctx, user, taskID, &req)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return utils.NotFoundResponse(c, taskNotFoundMessage)
	}

	if err := h.taskService.DeleteTask(ctx, user, taskID); err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.MessageResponse(c, "Task deleted successfully")
}

// parseTaskID: id ที่ parse ไม่ได้ตอบ 404 เหมือน id ที่ไม่มีอยู่
func parseTaskID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		logger.WarnContext(c.UserContext(), "Invalid task ID", "task_id", c.Params("id"))
		return 0, false
	}
	return uint(id), true
}

// bindTaskRequest parse + validate body; ok=false แปลว่าเขียน response 400 ไปแล้ว
func bindTaskRequest(c *fiber.Ctx, req *dto.TaskRequest) (bool, error) {
	ctx := c.UserContext()

	if err := c.BodyParser(req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return false, utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return false, utils.ValidationErrorResponse(c, errs)
	}

	return true, nil
}

func taskErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		return utils.NotFoundResponse(c, taskNotFoundMessage)
	case errors.Is(err, services.ErrInvalidTask):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil)
	default:
		logger.ErrorContext(c.UserContext(), "Task request failed", "path", c.Path(), "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}
