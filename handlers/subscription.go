package handlers

import (
	"errors"
	"net/http"

	"farmstead/models"
	"farmstead/services/subscription"
	"farmstead/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubscriptionHandler serves the recurring-delivery endpoints. Every
// schedule-affecting mutation returns the subscription with its recomputed
// next delivery date.
type SubscriptionHandler struct {
	Service subscription.SubscriptionService
}

func NewSubscriptionHandler(svc subscription.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{Service: svc}
}

func (h *SubscriptionHandler) respond(c *gin.Context, sub *models.Subscription, err error) {
	if err != nil {
		var vErr *subscription.ValidationError
		var cErr *subscription.CancelledError
		switch {
		case errors.As(err, &vErr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid subscription input", err.Error())
		case errors.As(err, &cErr):
			utils.JSONError(c, http.StatusConflict, "Subscription is cancelled", err.Error())
		default:
			getLogger(c).Error("Subscription operation failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Subscription operation failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, sub)
}

// CreateSubscription starts a new recurring delivery for the session.
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	var input subscription.CreateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	input.SessionID = sessionID

	sub, err := h.Service.Create(input)
	h.respond(c, sub, err)
}

// GetSubscription returns a subscription by ID.
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	sub, err := h.Service.Get(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Subscription not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, sub)
}

// ListSubscriptions returns the session's subscriptions.
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	subs, err := h.Service.ListBySession(sessionID)
	if err != nil {
		getLogger(c).Error("Failed to list subscriptions", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list subscriptions", err.Error())
		return
	}
	c.JSON(http.StatusOK, subs)
}

// UpdateSchedule replaces the weekly delivery pattern.
func (h *SubscriptionHandler) UpdateSchedule(c *gin.Context) {
	var input models.DeliverySchedule
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	sub, err := h.Service.UpdateSchedule(c.Param("id"), input)
	h.respond(c, sub, err)
}

// SetStartDate moves the subscription's start date.
func (h *SubscriptionHandler) SetStartDate(c *gin.Context) {
	var input struct {
		StartDate string `json:"start_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	sub, err := h.Service.SetStartDate(c.Param("id"), input.StartDate)
	h.respond(c, sub, err)
}

// AddSkipDate excludes a single date from delivery.
func (h *SubscriptionHandler) AddSkipDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	sub, err := h.Service.AddSkipDate(c.Param("id"), input.Date)
	h.respond(c, sub, err)
}

// SetVacation sets or clears vacation mode.
func (h *SubscriptionHandler) SetVacation(c *gin.Context) {
	var input models.VacationMode
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	sub, err := h.Service.SetVacationMode(c.Param("id"), &input)
	h.respond(c, sub, err)
}

// PreviewNextDelivery computes the next delivery for an unsaved schedule.
func (h *SubscriptionHandler) PreviewNextDelivery(c *gin.Context) {
	var input subscription.PreviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Service.Preview(input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to preview schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// PauseSubscription suspends deliveries without losing the schedule.
func (h *SubscriptionHandler) PauseSubscription(c *gin.Context) {
	sub, err := h.Service.Pause(c.Param("id"))
	h.respond(c, sub, err)
}

// ResumeSubscription reactivates a paused subscription.
func (h *SubscriptionHandler) ResumeSubscription(c *gin.Context) {
	sub, err := h.Service.Resume(c.Param("id"))
	h.respond(c, sub, err)
}

// CancelSubscription permanently ends the subscription.
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	sub, err := h.Service.Cancel(c.Param("id"))
	h.respond(c, sub, err)
}
