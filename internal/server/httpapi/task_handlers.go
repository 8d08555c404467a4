package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) listTasks(c *gin.Context) {
	user := currentUser(c)
	tasks, err := a.tasks.List(c.Request.Context(), user.ID)
	if err != nil {
		a.writeError(c, err, MsgFetchTasksFailed)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"tasks": toTaskListJSON(tasks)})
}

func (a *API) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	user := currentUser(c)
	task, err := a.tasks.Create(c.Request.Context(), user.ID, req.Title)
	if err != nil {
		a.writeError(c, err, MsgCreateTaskFailed)
		return
	}
	respond(c, http.StatusCreated, MsgTaskCreated, gin.H{"task": toTaskJSON(task)})
}

func (a *API) updateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	user := currentUser(c)
	task, err := a.tasks.Update(c.Request.Context(), user.ID, c.Param("id"), req.patch())
	if err != nil {
		a.writeError(c, err, MsgUpdateTaskFailed)
		return
	}
	respond(c, http.StatusOK, MsgTaskUpdated, gin.H{"task": toTaskJSON(task)})
}

func (a *API) deleteTask(c *gin.Context) {
	user := currentUser(c)
	if err := a.tasks.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		a.writeError(c, err, MsgDeleteTaskFailed)
		return
	}
	respond(c, http.StatusOK, MsgTaskDeleted, nil)
}
