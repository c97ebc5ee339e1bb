package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/middleware"
	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
	"github.com/felpschneider/TripSync/internal/utils"
)

// TaskHandler handles trip to-dos
type TaskHandler struct {
	store storage.Store
}

// NewTaskHandler creates a new TaskHandler instance
func NewTaskHandler(store storage.Store) *TaskHandler {
	return &TaskHandler{store: store}
}

// ListTasks returns all tasks of a trip
// @Summary List trip tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {array} dto.TaskResponse "Tasks"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id}/tasks [get]
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	tasks, err := h.store.ListTasks(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	out := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskToResponse(&tasks[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// CreateTask adds a task, optionally assigned to a member
// @Summary Add a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param request body dto.CreateTaskRequest true "Task data"
// @Success 201 {object} dto.TaskResponse "Created task"
// @Failure 400 {object} utils.ErrorBody "Invalid request data"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id}/tasks [post]
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	var req dto.CreateTaskRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Title is required")
		return
	}

	task := &models.Task{
		ID:        uuid.New(),
		TripID:    tripID,
		Title:     req.Title,
		CreatedAt: time.Now(),
	}
	if req.AssignedToID != nil {
		if !h.validAssignee(w, r, tripID, *req.AssignedToID) {
			return
		}
		task.AssignedToID = req.AssignedToID
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := utils.ParseDate(*req.DueDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid date", err.Error())
			return
		}
		task.DueDate = &due
	}

	if err := h.store.CreateTask(r.Context(), task); err != nil {
		writeStoreError(w, err)
		return
	}

	created, err := h.store.GetTask(r.Context(), tripID, task.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, taskToResponse(created))
}

// UpdateTask applies partial changes to a task. Completing a task records
// an activity entry.
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param taskId path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Task changes"
// @Success 200 {object} dto.TaskResponse "Updated task"
// @Failure 400 {object} utils.ErrorBody "Invalid request data"
// @Failure 404 {object} utils.ErrorBody "Task not found"
// @Router /api/v1/trips/{id}/tasks/{taskId} [put]
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	taskID, ok := pathUUID(w, r, "taskId")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	task, err := h.store.GetTask(r.Context(), tripID, taskID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	var req dto.UpdateTaskRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Title must not be empty")
			return
		}
		task.Title = title
	}
	if req.AssignedToID != nil {
		if !h.validAssignee(w, r, tripID, *req.AssignedToID) {
			return
		}
		task.AssignedToID = req.AssignedToID
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else {
			due, err := utils.ParseDate(*req.DueDate)
			if err != nil {
				utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid date", err.Error())
				return
			}
			task.DueDate = &due
		}
	}

	var activity *models.Activity
	if req.Completed != nil {
		// Only the transition into completed lands in the feed
		if *req.Completed && !task.Completed {
			user, err := h.store.GetUserByID(r.Context(), userID)
			if err != nil {
				writeStoreError(w, err)
				return
			}
			activity = newActivity(tripID, userID, models.ActivityTaskCompleted,
				fmt.Sprintf("%s completed the task %q", user.Name, task.Title))
		}
		task.Completed = *req.Completed
	}

	if err := h.store.UpdateTask(r.Context(), task, activity); err != nil {
		writeStoreError(w, err)
		return
	}

	updated, err := h.store.GetTask(r.Context(), tripID, taskID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, taskToResponse(updated))
}

// ToggleTask flips a task's completion state. Completing it records an
// activity entry; un-completing does not.
// @Summary Toggle task completion
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param taskId path string true "Task ID"
// @Success 200 {object} dto.TaskResponse "Updated task"
// @Failure 404 {object} utils.ErrorBody "Task not found"
// @Router /api/v1/trips/{id}/tasks/{taskId}/toggle [post]
func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	taskID, ok := pathUUID(w, r, "taskId")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	task, err := h.store.GetTask(r.Context(), tripID, taskID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	var activity *models.Activity
	if !task.Completed {
		user, err := h.store.GetUserByID(r.Context(), userID)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		activity = newActivity(tripID, userID, models.ActivityTaskCompleted,
			fmt.Sprintf("%s completed the task %q", user.Name, task.Title))
	}
	task.Completed = !task.Completed

	if err := h.store.UpdateTask(r.Context(), task, activity); err != nil {
		writeStoreError(w, err)
		return
	}

	updated, err := h.store.GetTask(r.Context(), tripID, taskID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, taskToResponse(updated))
}

// DeleteTask removes a task
// @Summary Delete a task
// @Tags tasks
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param taskId path string true "Task ID"
// @Success 204 "Deleted"
// @Failure 404 {object} utils.ErrorBody "Task not found"
// @Router /api/v1/trips/{id}/tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	taskID, ok := pathUUID(w, r, "taskId")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	if err := h.store.DeleteTask(r.Context(), tripID, taskID); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validAssignee checks that the assignee is a trip member, writing a 400
// otherwise
func (h *TaskHandler) validAssignee(w http.ResponseWriter, r *http.Request, tripID, assigneeID uuid.UUID) bool {
	member, err := h.store.HasTripAccess(r.Context(), tripID, assigneeID)
	if err != nil {
		writeStoreError(w, err)
		return false
	}
	if !member {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid assignee", "Tasks can only be assigned to trip members")
		return false
	}
	return true
}

func taskToResponse(t *models.Task) dto.TaskResponse {
	resp := dto.TaskResponse{
		ID:         t.ID.String(),
		TripID:     t.TripID.String(),
		Title:      t.Title,
		Completed:  t.Completed,
		AssignedTo: t.AssignedTo,
		CreatedAt:  utils.FormatTimestamp(t.CreatedAt),
	}
	if t.DueDate != nil {
		due := utils.FormatDate(*t.DueDate)
		resp.DueDate = &due
	}
	return resp
}
