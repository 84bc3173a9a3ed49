package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nsplatform/backend/internal/model"
	"github.com/nsplatform/backend/internal/repository"
)

func (s *Server) adminListUsers(c *gin.Context) {
	limit, offset := pageParams(c)
	f := repository.UserFilter{
		Search: c.Query("q"),
		Limit:  limit,
		Offset: offset,
	}
	if v := c.Query("verified"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid verified flag"})
			return
		}
		f.Verified = &b
	}
	if v := c.Query("active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active flag"})
			return
		}
		f.Active = &b
	}
	items, err := s.users.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	views := make([]userListView, 0, len(items))
	for i := range items {
		views = append(views, toUserListView(&items[i]))
	}
	c.JSON(http.StatusOK, gin.H{"users": views})
}

type bulkResendRequest struct {
	All     bool     `json:"all"`
	UserIDs []int64  `json:"user_ids"`
	Emails  []string `json:"emails"`
}

// adminBulkResend re-issues verification emails in bulk. Individual send
// failures are reported per address; the batch always completes.
func (s *Server) adminBulkResend(c *gin.Context) {
	var req bulkResendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	ctx := c.Request.Context()

	var targets []model.User
	switch {
	case req.All:
		us, err := s.users.Unverified(ctx)
		if err != nil {
			respondErr(c, err)
			return
		}
		targets = us
	case len(req.Emails) > 0:
		us, err := s.users.ByEmails(ctx, req.Emails)
		if err != nil {
			respondErr(c, err)
			return
		}
		targets = us
	case len(req.UserIDs) > 0:
		for _, id := range req.UserIDs {
			u, err := s.users.Get(ctx, id)
			if err != nil {
				respondErr(c, err)
				return
			}
			targets = append(targets, *u)
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "one of all, user_ids or emails is required"})
		return
	}

	results := s.verif.SendBatch(ctx, targets)
	type outcome struct {
		UserID int64  `json:"user_id"`
		Email  string `json:"email"`
		Sent   bool   `json:"sent"`
		Error  string `json:"error,omitempty"`
	}
	out := make([]outcome, 0, len(results))
	sent := 0
	for _, r := range results {
		o := outcome{UserID: r.UserID, Email: r.Email, Sent: r.Err == nil}
		if r.Err != nil {
			o.Error = r.Err.Error()
		} else {
			sent++
		}
		out = append(out, o)
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent, "total": len(results), "results": out})
}

func (s *Server) adminListGoals(c *gin.Context) {
	limit, offset := pageParams(c)
	gs, err := s.goals.ListAll(c.Request.Context(), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": toGoalViews(gs)})
}

func (s *Server) adminListSessions(c *gin.Context) {
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

func (s *Server) adminListRoles(c *gin.Context) {
	rs, err := s.users.Roles(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	views := make([]roleView, 0, len(rs))
	for _, r := range rs {
		views = append(views, roleView{ID: r.ID, Name: r.Name})
	}
	c.JSON(http.StatusOK, gin.H{"roles": views})
}

// adminDeleteRole removes a role; participations referencing it block the
// delete with a conflict.
func (s *Server) adminDeleteRole(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := s.users.DeleteRole(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
