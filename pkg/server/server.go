package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akeil/notetool"
	"github.com/akeil/notetool/internal/logging"
	"github.com/akeil/notetool/pkg/api"
)

// DefaultPath is where the note collection is served.
const DefaultPath = "/api/notes"

// Server exposes a Repository as a ReST note collection.
//
//	GET    <path>        list all notes
//	POST   <path>        create a note
//	PUT    <path>/:id    update a note
//	DELETE <path>/:id    delete a note
type Server struct {
	repo notetool.Repository
	path string
}

// New creates a server for the given repository.
// An empty path means DefaultPath.
func New(repo notetool.Repository, path string) *Server {
	if path == "" {
		path = DefaultPath
	}
	return &Server{
		repo: repo,
		path: "/" + strings.Trim(path, "/"),
	}
}

// Handler sets up a gin engine with all routes.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(requestLog(), gin.Recovery(), cors())
	s.Map(r)
	return r
}

// Map adds the note routes to the given router.
func (s *Server) Map(r gin.IRoutes) {
	r.GET(s.path, wrap(s.list))
	r.POST(s.path, wrap(s.create))
	r.PUT(s.path+"/:id", wrap(s.update))
	r.DELETE(s.path+"/:id", wrap(s.delete))
}

// result is what a handler produces; the wrapper writes it as JSON.
type result struct {
	status int
	body   interface{}
}

// Error is the body for unsuccessful responses.
type Error struct {
	Message string `json:"message"`
}

func wrap(h func(*gin.Context) result) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := h(c)
		if res.body == nil {
			c.Status(res.status)
			return
		}
		c.JSON(res.status, res.body)
	}
}

func fail(status int, msg string) result {
	return result{status: status, body: Error{Message: msg}}
}

func (s *Server) list(c *gin.Context) result {
	notes, err := s.repo.List()
	if err != nil {
		return fail(http.StatusInternalServerError, err.Error())
	}

	items := make([]api.Item, len(notes))
	for i, n := range notes {
		items[i] = api.FromNote(n)
	}
	return result{status: http.StatusOK, body: items}
}

func (s *Server) create(c *gin.Context) result {
	n, res, ok := bindNote(c)
	if !ok {
		return res
	}

	created, err := s.repo.Create(n)
	if err != nil {
		return fail(http.StatusInternalServerError, err.Error())
	}
	return result{status: http.StatusCreated, body: api.FromNote(created)}
}

func (s *Server) update(c *gin.Context) result {
	id, ok := parseID(c)
	if !ok {
		return fail(http.StatusBadRequest, "invalid id")
	}

	n, res, ok := bindNote(c)
	if !ok {
		return res
	}
	n.ID = id

	updated, err := s.repo.Update(n)
	switch {
	case notetool.IsNotFound(err):
		return fail(http.StatusNotFound, "note not found")
	case err != nil:
		return fail(http.StatusInternalServerError, err.Error())
	default:
		return result{status: http.StatusOK, body: api.FromNote(updated)}
	}
}

func (s *Server) delete(c *gin.Context) result {
	id, ok := parseID(c)
	if !ok {
		return fail(http.StatusBadRequest, "invalid id")
	}

	err := s.repo.Delete(id)
	switch {
	case notetool.IsNotFound(err):
		return fail(http.StatusNotFound, "note not found")
	case err != nil:
		return fail(http.StatusInternalServerError, err.Error())
	default:
		return result{status: http.StatusNoContent}
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// bindNote reads and validates the request payload.
// If the payload is not acceptable, the error result is returned with false.
func bindNote(c *gin.Context) (notetool.Note, result, bool) {
	var item api.Item
	err := c.ShouldBindJSON(&item)
	if err != nil {
		return notetool.Note{}, fail(http.StatusBadRequest, "invalid payload"), false
	}

	n := item.ToNote()
	if strings.TrimSpace(n.Title) == "" || strings.TrimSpace(n.Body) == "" {
		return notetool.Note{}, fail(http.StatusBadRequest, notetool.MsgRequired), false
	}
	return n, result{}, true
}

// requestLog logs every request with its status and duration.
// Requests without an ID get a new one; the ID is sent back to the client.
func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader(api.HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Header(api.HeaderRequestID, reqID)

		c.Next()

		logging.Info("%v %v -> %v (%v) [%v]", c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start), reqID)
	}
}

// cors allows browser front ends on other origins to use the collection.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+api.HeaderRequestID)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
