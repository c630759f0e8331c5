package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/application/lifecycle/usecases"
	"github.com/lipagate/lipagate/internal/shared/logger"
	"github.com/lipagate/lipagate/internal/shared/utils"
)

// CronHandler triggers the lifecycle sweeps over HTTP for external cron
// services. The scheduler runs the same use cases in process; both paths
// share the distributed lock, so overlapping triggers degrade to a skip.
type CronHandler struct {
	sweepUC  *usecases.SweepSubscriptionsUseCase
	trialsUC *usecases.CheckTrialsUseCase
	logger   logger.Interface
}

func NewCronHandler(
	sweepUC *usecases.SweepSubscriptionsUseCase,
	trialsUC *usecases.CheckTrialsUseCase,
) *CronHandler {
	return &CronHandler{
		sweepUC:  sweepUC,
		trialsUC: trialsUC,
		logger:   logger.NewLogger(),
	}
}

type sweepStatusUpdates struct {
	Expired int `json:"expired"`
	PastDue int `json:"past_due"`
}

type sweepResults struct {
	Processed     int                `json:"processed"`
	StatusUpdates sweepStatusUpdates `json:"statusUpdates"`
	ExpiringSoon  []string           `json:"expiringSoon"`
	Errors        []string           `json:"errors"`
	Skipped       bool               `json:"skipped,omitempty"`
}

type sweepResponse struct {
	Success   bool         `json:"success"`
	Timestamp time.Time    `json:"timestamp"`
	Results   sweepResults `json:"results"`
}

// SweepSubscriptions runs one lifecycle sweep and reports the summary.
func (h *CronHandler) SweepSubscriptions(c *gin.Context) {
	now := time.Now().UTC()

	result, err := h.sweepUC.Execute(c.Request.Context(), now)
	if err != nil {
		h.logger.Errorw("subscription sweep failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sweepResponse{
		Success:   true,
		Timestamp: now,
		Results: sweepResults{
			Processed: result.Processed,
			StatusUpdates: sweepStatusUpdates{
				Expired: result.MarkedExpired,
				PastDue: result.MarkedPastDue,
			},
			ExpiringSoon: result.ExpiringSoonNotified,
			Errors:       result.Errors,
			Skipped:      result.Skipped,
		},
	})
}

// CheckTrials ends expired platform trials and reports the summary.
func (h *CronHandler) CheckTrials(c *gin.Context) {
	now := time.Now().UTC()

	result, err := h.trialsUC.Execute(c.Request.Context(), now)
	if err != nil {
		h.logger.Errorw("trial check failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"timestamp": now,
		"results":   result,
	})
}
