package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/backbone"
	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/components"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/dfs"
)

// Handlers binds HTTP requests to an analysis.Service.
type Handlers struct {
	svc *analysis.Service
	log *zap.Logger
}

// NewHandlers returns handlers over svc.
func NewHandlers(svc *analysis.Service, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}

	return &Handlers{svc: svc, log: log}
}

func (h *Handlers) fail(c *gin.Context, status int, code string, err error) {
	_ = c.Error(err)
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code, RequestID: getRequestID(c)})
}

func (h *Handlers) badRequest(c *gin.Context, err error) {
	h.fail(c, http.StatusBadRequest, "INVALID_REQUEST", err)
}

func (h *Handlers) pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		h.badRequest(c, errors.New(name+" must be an integer"))
		return 0, false
	}

	return id, true
}

func (h *Handlers) mutation(c *gin.Context, o core.Outcome, created bool, node *core.Node) {
	status := outcomeStatus(o, created)
	if !o.Applied() {
		h.fail(c, status, o.String(), errors.New("mutation not applied: "+o.String()))
		return
	}
	c.JSON(status, MutationResponse{Outcome: o.String(), Node: node})
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	st := h.svc.Stats(c.Request.Context())
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Nodes: st.Nodes, Edges: st.Edges})
}

// HandleStats handles GET /v1/stats.
func (h *Handlers) HandleStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Stats(c.Request.Context()))
}

// HandleListNodes handles GET /v1/nodes.
func (h *Handlers) HandleListNodes(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Nodes())
}

// HandleGetNode handles GET /v1/nodes/:id.
func (h *Handlers) HandleGetNode(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	n, found := h.svc.Node(id)
	if !found {
		h.fail(c, http.StatusNotFound, core.OutcomeNotFound.String(), core.ErrNodeNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"node": n, "neighbors": nonNil(h.svc.Neighbors(id))})
}

// HandleCreateNode handles POST /v1/nodes.
//
//	201 Created: MutationResponse
//	400 Bad Request: binding error or invalid node
//	409 Conflict: id already taken
func (h *Handlers) HandleCreateNode(c *gin.Context) {
	var req CreateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	n := core.Node{ID: *req.ID, Name: req.Name, Aktiflik: req.Aktiflik, Etkilesim: req.Etkilesim}
	h.mutation(c, h.svc.AddNode(c.Request.Context(), n), true, &n)
}

// HandleUpdateNode handles PUT /v1/nodes/:id. Incident edge weights are
// recomputed by the graph.
func (h *Handlers) HandleUpdateNode(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	o := h.svc.UpdateNode(c.Request.Context(), id, req.Name, req.Aktiflik, req.Etkilesim)
	var node *core.Node
	if n, found := h.svc.Node(id); found && o.Applied() {
		node = &n
	}
	h.mutation(c, o, false, node)
}

// HandleDeleteNode handles DELETE /v1/nodes/:id.
func (h *Handlers) HandleDeleteNode(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	h.mutation(c, h.svc.RemoveNode(c.Request.Context(), id), false, nil)
}

// HandleListEdges handles GET /v1/edges.
func (h *Handlers) HandleListEdges(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Edges())
}

// HandleCreateEdge handles POST /v1/edges.
func (h *Handlers) HandleCreateEdge(c *gin.Context) {
	var req EdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	h.mutation(c, h.svc.AddEdge(c.Request.Context(), *req.Source, *req.Target), true, nil)
}

// HandleDeleteEdge handles DELETE /v1/edges.
func (h *Handlers) HandleDeleteEdge(c *gin.Context) {
	var req EdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	h.mutation(c, h.svc.RemoveEdge(c.Request.Context(), *req.Source, *req.Target), false, nil)
}

// HandleTraverse handles GET /v1/traverse/:algo/:start with algo bfs or dfs.
func (h *Handlers) HandleTraverse(c *gin.Context) {
	start, ok := h.pathID(c, "start")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	algo := c.Param("algo")

	var (
		order []int
		depth map[int]int
		err   error
	)
	switch algo {
	case "bfs":
		var res *bfs.BFSResult
		if res, err = h.svc.BFS(ctx, start); err == nil {
			order, depth = res.Order, res.Depth
		}
	case "dfs":
		var res *dfs.DFSResult
		if res, err = h.svc.DFS(ctx, start); err == nil {
			order, depth = res.Order, res.Depth
		}
	default:
		h.badRequest(c, errors.New("algo must be bfs or dfs"))
		return
	}
	if errors.Is(err, bfs.ErrStartNodeNotFound) || errors.Is(err, dfs.ErrStartNodeNotFound) {
		h.fail(c, http.StatusNotFound, "START_NOT_FOUND", err)
		return
	}
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "TRAVERSAL_FAILED", err)
		return
	}
	c.JSON(http.StatusOK, TraversalResponse{Algorithm: algo, Start: start, Order: order, Depth: depth})
}

// HandlePath handles GET /v1/path?algo=&from=&to=.
//
//	200 OK: PathResponse (reachable=false when no route exists)
//	400 Bad Request: malformed query
//	404 Not Found: unknown endpoint id
func (h *Handlers) HandlePath(c *gin.Context) {
	var q PathQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return
	}
	algo, err := analysis.ParsePathAlgorithm(q.Algo)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	res, err := h.svc.ShortestPath(c.Request.Context(), algo, *q.From, *q.To)
	if errors.Is(err, core.ErrNodeNotFound) {
		h.fail(c, http.StatusNotFound, "NODE_NOT_FOUND", err)
		return
	}
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "PATH_FAILED", err)
		return
	}
	c.JSON(http.StatusOK, newPathResponse(string(algo), *q.From, *q.To, res))
}

// HandleDegreeCentrality handles GET /v1/centrality/degree?top=.
func (h *Handlers) HandleDegreeCentrality(c *gin.Context) {
	var q TopQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.svc.DegreeCentrality(c.Request.Context(), q.Top))
}

// HandleBetweenness handles GET /v1/centrality/betweenness?top=.
func (h *Handlers) HandleBetweenness(c *gin.Context) {
	var q TopQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return
	}
	res, err := h.svc.Betweenness(c.Request.Context(), q.Top)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "BETWEENNESS_FAILED", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// HandleColoring handles GET /v1/coloring.
func (h *Handlers) HandleColoring(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Color(c.Request.Context()))
}

// HandleBackbone handles GET /v1/backbone?method=.
func (h *Handlers) HandleBackbone(c *gin.Context) {
	var q BackboneQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return
	}
	m, err := backbone.ParseMethod(q.Method)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	res, err := h.svc.Backbone(c.Request.Context(), m)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "BACKBONE_FAILED", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// HandleComponents handles GET /v1/components.
func (h *Handlers) HandleComponents(c *gin.Context) {
	comps, err := h.svc.Components(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "COMPONENTS_FAILED", err)
		return
	}
	if comps == nil {
		comps = [][]int{}
	}
	c.JSON(http.StatusOK, ComponentsResponse{
		Count:      len(comps),
		Largest:    components.Largest(comps),
		Sizes:      nonNil(components.Sizes(comps)),
		Components: comps,
	})
}

func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}

	return s
}
