package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/berean/internal/config"
	"github.com/mrlokans/berean/internal/scheduler"
	"github.com/mrlokans/berean/internal/tasks"
)

// TasksController handles task queue management endpoints.
type TasksController struct {
	client        *tasks.Client
	journal       *scheduler.JournalSyncScheduler
	journalConfig config.Journal
}

// NewTasksController creates a new TasksController.
func NewTasksController(client *tasks.Client, journal *scheduler.JournalSyncScheduler, journalConfig config.Journal) *TasksController {
	return &TasksController{
		client:        client,
		journal:       journal,
		journalConfig: journalConfig,
	}
}

// TaskTypeInfo describes an available task type.
type TaskTypeInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Queue       string `json:"queue"`
}

// ListTaskTypes handles GET /api/tasks/types
// Returns the list of available task types that can be triggered.
func (tc *TasksController) ListTaskTypes(c *gin.Context) {
	types := []TaskTypeInfo{
		{
			Type:        "warm_translation",
			Description: "Preload a translation's book data into the content cache",
			Queue:       tasks.QueueWarmTranslation,
		},
		{
			Type:        "export_journal",
			Description: "Export the caller's annotations as a markdown study journal",
			Queue:       tasks.QueueExportJournal,
		},
	}

	c.JSON(http.StatusOK, gin.H{
		"task_types": types,
	})
}

// GetTaskStatus handles GET /api/tasks/:id
// Returns the status of a specific task.
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.client.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

// RunTaskRequest is the request body for running a task.
type RunTaskRequest struct {
	// Translation is required for the warm_translation task.
	Translation string `json:"translation,omitempty"`
	// Books limits warm_translation to the named books; empty warms them all.
	Books []string `json:"books,omitempty"`
}

// RunTask handles POST /api/tasks/:type/run
// Manually triggers a task of the specified type.
func (tc *TasksController) RunTask(c *gin.Context) {
	taskType := c.Param("type")

	var req RunTaskRequest
	if c.Request.ContentLength > 0 {
		_ = c.ShouldBindJSON(&req)
	}

	var task backlite.Task
	switch taskType {
	case "warm_translation":
		if req.Translation == "" {
			respondBadRequest(c, "translation is required for warm_translation task")
			return
		}
		task = tasks.WarmTranslationTask{
			TranslationID: strings.ToLower(req.Translation),
			Books:         req.Books,
		}

	case "export_journal":
		if tc.journalConfig.ExportDir == "" {
			respondBadRequest(c, "journal export directory is not configured")
			return
		}
		task = tasks.ExportJournalTask{
			UserID:    GetUserID(c),
			ExportDir: tc.journalConfig.ExportDir,
		}

	default:
		respondBadRequest(c, fmt.Sprintf("unknown task type: %s", taskType))
		return
	}

	ids, err := tc.client.Add(task).Save()
	if err != nil {
		respondInternalError(c, err, "enqueue task")
		return
	}

	respondAccepted(c, "task enqueued", gin.H{"task_id": ids[0], "type": taskType})
}

// JournalSyncNow handles POST /api/journal/sync-now
// Triggers an immediate journal export outside the cron schedule.
func (tc *TasksController) JournalSyncNow(c *gin.Context) {
	if tc.journal == nil {
		respondBadRequest(c, "journal sync is not configured")
		return
	}
	tc.journal.RunNow()
	respondAccepted(c, "journal sync started", nil)
}

// JournalSyncStatus handles GET /api/journal/status
func (tc *TasksController) JournalSyncStatus(c *gin.Context) {
	if tc.journal == nil {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}

	status, message := tc.journal.LastRun()
	resp := gin.H{
		"enabled":     tc.journalConfig.SyncEnabled,
		"running":     tc.journal.IsRunning(),
		"export_dir":  tc.journalConfig.ExportDir,
		"schedule":    tc.journalConfig.SyncSchedule,
		"last_status": status,
		"last_result": message,
	}
	if next := tc.journal.GetNextRunTime(); next != nil {
		resp["next_run"] = next.Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, resp)
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
