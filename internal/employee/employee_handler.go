package employee

import (
	"net/http"

	employeeerrors "go-employee/internal/employee/errors"
	"go-employee/internal/shared/apperror"
	"go-employee/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	log := h.logger.Warn
	if httpErr.Status >= http.StatusInternalServerError {
		log = h.logger.Error
	}
	log("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindEmployee(c *gin.Context) (EmployeeDto, bool) {
	var req EmployeeDto
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http employee body rejected", zap.Error(err))
		httpErr := apperror.ToHTTP(employeeerrors.ErrInvalidRequestBody)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return EmployeeDto{}, false
	}
	return req, true
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create employee")
	req, ok := h.bindEmployee(c)
	if !ok {
		return
	}

	resp, err := h.service.SaveEmployee(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	h.logger.Debug("http get all employees")

	resp := make([]EmployeeDto, 0)
	for dto, err := range h.service.GetAllEmployees(c.Request.Context()) {
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		resp = append(resp, dto)
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetById(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get employee by id", zap.String("employee_id", id))

	resp, found, err := h.service.GetEmployee(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !found {
		h.writeServiceError(c, employeeerrors.ErrEmployeeNotFound)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http update employee", zap.String("employee_id", id))
	req, ok := h.bindEmployee(c)
	if !ok {
		return
	}

	resp, outcome, err := h.service.UpdateEmployee(c.Request.Context(), req, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if outcome == OutcomeNotFound {
		h.writeServiceError(c, employeeerrors.ErrEmployeeNotFound)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http delete employee", zap.String("employee_id", id))

	outcome, err := h.service.DeleteEmployee(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if outcome == OutcomeNotFound {
		h.writeServiceError(c, employeeerrors.ErrEmployeeNotFound)
		return
	}

	response.NoContent(c)
}
