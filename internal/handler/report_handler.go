package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/blues/ets/internal/export"
	"github.com/blues/ets/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportHandler struct {
	reportLogic *logic.ReportLogic
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{
		reportLogic: logic.NewReportLogic(db),
	}
}

// GetReport builds a classified task report. Leads may scope to any
// member or the whole team; non-leads always get their own data.
func (h *ReportHandler) GetReport(c *gin.Context) {
	actor := actorFrom(c)

	period := c.DefaultQuery("period", logic.PeriodWeekly)
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" && format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json, csv or xlsx"})
		return
	}

	start, end, err := logic.PeriodWindow(period, time.Now().UTC())
	if err != nil {
		errorJSON(c, err)
		return
	}

	// Explicit dates override the period window.
	if startParam, err := parseDateParam(c.Query("start_date")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	} else if startParam != nil {
		start = *startParam
	}
	if endParam, err := parseDateParam(c.Query("end_date")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	} else if endParam != nil {
		end = *endParam
	}

	var memberID *int64
	if raw := c.Query("member_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member_id"})
			return
		}
		memberID = &id
	}

	scopedMember, err := logic.ReportScope(actor, memberID)
	if err != nil {
		errorJSON(c, err)
		return
	}

	summary, rows, err := h.reportLogic.Build(logic.ReportFilters{
		StartDate: start,
		EndDate:   end,
		MemberID:  scopedMember,
		Statuses:  logic.ParseStatusSet(c.Query("status")),
	})
	if err != nil {
		errorJSON(c, err)
		return
	}

	switch format {
	case "csv":
		data, err := export.RenderCSV(rows)
		if err != nil {
			errorJSON(c, err)
			return
		}
		filename := fmt.Sprintf("report_%s.csv", period)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/csv", data)

	case "xlsx":
		data, err := export.RenderXLSX(rows)
		if err != nil {
			errorJSON(c, err)
			return
		}
		filename := fmt.Sprintf("report_%s.xlsx", period)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)

	default:
		c.JSON(http.StatusOK, gin.H{
			"summary": summary,
			"rows":    rows,
		})
	}
}
