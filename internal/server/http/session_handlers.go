package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nsplatform/backend/internal/service"
)

type createSessionRequest struct {
	TypeID    int64  `json:"type_id"`
	StatusID  int64  `json:"status_id"`
	StartDate string `json:"start_date"`
	StopDate  string `json:"stop_date"`
}

func (s *Server) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, want YYYY-MM-DD"})
		return
	}
	stop, err := parseDate(req.StopDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stop_date, want YYYY-MM-DD"})
		return
	}
	sess, err := s.sessions.Create(c.Request.Context(), service.CreateSessionInput{
		TypeID:    req.TypeID,
		StatusID:  req.StatusID,
		StartDate: start,
		StopDate:  stop,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSessionView(sess))
}

func (s *Server) listSessions(c *gin.Context) {
	limit, offset := pageParams(c)
	ss, err := s.sessions.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	views := make([]sessionView, 0, len(ss))
	for i := range ss {
		views = append(views, toSessionView(&ss[i]))
	}
	c.JSON(http.StatusOK, gin.H{"sessions": views})
}

func (s *Server) getSession(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	d, err := s.sessions.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionDetailView(d))
}

type addSessionGoalRequest struct {
	GoalID int64  `json:"goal_id"`
	Weight int    `json:"weight"`
	Plan   string `json:"plan"`
	Steps  string `json:"steps"`
}

func (s *Server) addSessionGoal(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req addSessionGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	sg, err := s.sessions.AddGoal(c.Request.Context(), id, req.GoalID, req.Weight, req.Plan, req.Steps)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSessionGoalView(sg))
}

type addParticipantRequest struct {
	UserID int64 `json:"user_id"`
	RoleID int64 `json:"role_id"`
}

func (s *Server) addParticipant(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req addParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	p, err := s.sessions.AddParticipant(c.Request.Context(), id, req.UserID, req.RoleID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, toParticipantView(p))
}

type recordWeightRequest struct {
	Weight int    `json:"weight"`
	Reason string `json:"reason"`
}

func (s *Server) recordWeightChange(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req recordWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	w, err := s.sessions.RecordWeightChange(c.Request.Context(), id, req.Weight, req.Reason)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, toWeightChangeView(w))
}

func (s *Server) listWeightHistory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	d, err := s.sessions.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	views := make([]weightChangeView, 0, len(d.History))
	for i := range d.History {
		views = append(views, toWeightChangeView(&d.History[i]))
	}
	c.JSON(http.StatusOK, gin.H{"weight_history": views})
}

func (s *Server) sessionTypes(c *gin.Context) {
	vs, err := s.sessions.Types(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"types": toVocabViews(vs)})
}

func (s *Server) sessionStatuses(c *gin.Context) {
	vs, err := s.sessions.Statuses(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statuses": toVocabViews(vs)})
}

func parseDate(v string) (time.Time, error) {
	return time.Parse(dateLayout, v)
}
