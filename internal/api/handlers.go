package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperrors "github.com/snacktrack-dev/snacktrack/internal/application/errors"
	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/repositories"
	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
	"github.com/snacktrack-dev/snacktrack/internal/version"
)

// scanRequest is the scan endpoint's request body. The profile is kept
// raw so it can be schema-validated before binding.
type scanRequest struct {
	UserProfile json.RawMessage `json:"user_profile"`
	Ingredients []string        `json:"ingredients"`
}

// reportResponse is the wire form of a verdict report. Rule failures
// are internal: callers only see the degraded flag and a failure
// count, never the underlying error text.
type reportResponse struct {
	ID           values.ScanID          `json:"id"`
	User         string                 `json:"user"`
	StartTime    time.Time              `json:"start_time"`
	DurationMS   float64                `json:"duration_ms"`
	Verdict      []entities.Finding     `json:"verdict"`
	Degraded     bool                   `json:"degraded"`
	RuleFailures int                    `json:"rule_failures,omitempty"`
	Summary      entities.ReportSummary `json:"summary"`
}

func newReportResponse(report *entities.VerdictReport) reportResponse {
	return reportResponse{
		ID:           report.ID,
		User:         report.User,
		StartTime:    report.StartTime,
		DurationMS:   report.DurationMS,
		Verdict:      report.Findings,
		Degraded:     report.Degraded,
		RuleFailures: len(report.Failures),
		Summary:      report.Summary,
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Get().String(),
	})
}

// createProfile validates and stores a profile under a fresh ID.
func (s *Server) createProfile(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to read request body"})
		return
	}

	profile, err := s.bindProfile(raw)
	if err != nil {
		s.renderError(c, err)
		return
	}

	id := uuid.New()
	if err := s.profiles.Save(c.Request.Context(), id, profile); err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      id.String(),
		"profile": profile,
	})
}

// getProfile retrieves a stored profile by ID.
func (s *Server) getProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "profile not found"})
		return
	}

	profile, err := s.profiles.FindByID(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "profile not found"})
		return
	}
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// scan evaluates an ingredient list against an inline profile.
func (s *Server) scan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if len(req.UserProfile) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "user_profile is required"})
		return
	}

	profile, err := s.bindProfile(req.UserProfile)
	if err != nil {
		s.renderError(c, err)
		return
	}

	report, err := s.scans.Scan(c.Request.Context(), profile, req.Ingredients)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReportResponse(report))
}

// listScans returns recent stored reports for a user.
func (s *Server) listScans(c *gin.Context) {
	user := c.Query("user")
	if user == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "user query parameter is required"})
		return
	}

	limit := 20
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	reports, err := s.scans.History(c.Request.Context(), user, limit)
	if err != nil {
		s.renderError(c, err)
		return
	}

	scans := make([]reportResponse, 0, len(reports))
	for _, report := range reports {
		scans = append(scans, newReportResponse(report))
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"scans": scans,
	})
}

// getScan returns one stored report by scan ID.
func (s *Server) getScan(c *gin.Context) {
	report, err := s.scans.Report(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReportResponse(report))
}

// bindProfile schema-validates raw profile JSON and binds it into the
// domain entity. Entity validation runs as well: the schema catches
// structural issues, the entity enforces domain invariants.
func (s *Server) bindProfile(raw []byte) (*entities.Profile, error) {
	if err := s.validator.Validate(raw); err != nil {
		return nil, err
	}

	var profile entities.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, apperrors.NewInvalidProfileError(err.Error())
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return &profile, nil
}

// renderError maps the error taxonomy onto HTTP statuses. Internal
// faults are logged and answered with a generic message, never verbatim.
func (s *Server) renderError(c *gin.Context, err error) {
	var invalidProfile *apperrors.InvalidProfileError
	var validationErr *entities.ProfileValidationError
	var notFound *apperrors.NotFoundError

	switch {
	case errors.As(err, &invalidProfile):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "invalid profile",
			"details": invalidProfile.Issues,
		})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "invalid profile",
			"details": validationErr.Issues,
		})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFound.Error()})
	default:
		slog.Error("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
