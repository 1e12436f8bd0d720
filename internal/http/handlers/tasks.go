package handlers

import (
	"net/http"

	"github.com/NotAnsar/orava-api/internal/store"
	"github.com/NotAnsar/orava-api/pkg/response"
)

type taskPayload struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
}

func (h *Handler) TasksList(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Store.Tasks(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve tasks")
		return
	}
	response.Success(w, tasks)
}

func (h *Handler) TaskGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	task, err := h.Store.TaskByID(r.Context(), id)
	if err != nil {
		notFoundOrInternal(w, err, "Task")
		return
	}
	response.Success(w, task)
}

func (h *Handler) TaskCreate(w http.ResponseWriter, r *http.Request) {
	var payload taskPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Title == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Title is required")
		return
	}

	task := store.Task{
		Title:       payload.Title,
		Description: payload.Description,
		Status:      store.TaskStatusTodo,
		Priority:    store.TaskPriorityMedium,
	}
	if status, ok := store.ParseTaskStatus(payload.Status); ok {
		task.Status = status
	}
	if priority, ok := store.ParseTaskPriority(payload.Priority); ok {
		task.Priority = priority
	}

	created, err := h.Store.CreateTask(r.Context(), task)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create task")
		return
	}
	response.Created(w, created)
}

func (h *Handler) TaskUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var payload taskPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	task, err := h.Store.TaskByID(ctx, id)
	if err != nil {
		notFoundOrInternal(w, err, "Task")
		return
	}
	if payload.Title != "" {
		task.Title = payload.Title
	}
	if payload.Description != nil {
		task.Description = payload.Description
	}
	if status, ok := store.ParseTaskStatus(payload.Status); ok {
		task.Status = status
	}
	if priority, ok := store.ParseTaskPriority(payload.Priority); ok {
		task.Priority = priority
	}

	if err := h.Store.UpdateTask(ctx, task); err != nil {
		notFoundOrInternal(w, err, "Task")
		return
	}
	response.Success(w, task)
}

type taskStatusPayload struct {
	Status string `json:"status"`
}

func (h *Handler) TaskUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var payload taskStatusPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	status, valid := store.ParseTaskStatus(payload.Status)
	if !valid {
		response.Error(w, http.StatusBadRequest, "INVALID_STATUS", "Unknown task status")
		return
	}

	task, err := h.Store.TaskByID(ctx, id)
	if err != nil {
		notFoundOrInternal(w, err, "Task")
		return
	}
	task.Status = status
	if err := h.Store.UpdateTask(ctx, task); err != nil {
		notFoundOrInternal(w, err, "Task")
		return
	}
	response.Success(w, task)
}

func (h *Handler) TaskDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteTask(r.Context(), id); err != nil {
		notFoundOrInternal(w, err, "Task")
		return
	}
	response.Message(w, "Task deleted successfully")
}
