package server

import (
	"math"
	"net/http"

	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/dijkstra"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Nodes  int    `json:"nodes"`
	Edges  int    `json:"edges"`
}

// CreateNodeRequest is the body of POST /v1/nodes.
type CreateNodeRequest struct {
	ID        *int    `json:"id" binding:"required,gte=0"`
	Name      string  `json:"name" binding:"required"`
	Aktiflik  float64 `json:"aktiflik"`
	Etkilesim float64 `json:"etkilesim"`
}

// UpdateNodeRequest is the body of PUT /v1/nodes/:id. A missing etkilesim
// leaves the stored value untouched.
type UpdateNodeRequest struct {
	Name      string   `json:"name" binding:"required"`
	Aktiflik  float64  `json:"aktiflik"`
	Etkilesim *float64 `json:"etkilesim"`
}

// EdgeRequest is the body of POST and DELETE /v1/edges.
type EdgeRequest struct {
	Source *int `json:"source" binding:"required"`
	Target *int `json:"target" binding:"required"`
}

// PathQuery is the query string of GET /v1/path.
type PathQuery struct {
	Algo string `form:"algo" binding:"omitempty,oneof=dijkstra astar"`
	From *int   `form:"from" binding:"required"`
	To   *int   `form:"to" binding:"required"`
}

// BackboneQuery is the query string of GET /v1/backbone.
type BackboneQuery struct {
	Method string `form:"method" binding:"omitempty,oneof=kruskal prim"`
}

// TopQuery is the query string of the centrality endpoints. Top 0 uses the
// configured default, -1 returns every user.
type TopQuery struct {
	Top int `form:"top" binding:"gte=-1"`
}

// MutationResponse reports the outcome of a mutation.
type MutationResponse struct {
	Outcome string     `json:"outcome"`
	Node    *core.Node `json:"node,omitempty"`
}

// TraversalResponse is returned by GET /v1/traverse/:algo/:start.
type TraversalResponse struct {
	Algorithm string      `json:"algorithm"`
	Start     int         `json:"start"`
	Order     []int       `json:"order"`
	Depth     map[int]int `json:"depth"`
}

// PathResponse is returned by GET /v1/path. Cost is omitted when the target
// is unreachable since JSON has no infinity.
type PathResponse struct {
	Algorithm string   `json:"algorithm"`
	From      int      `json:"from"`
	To        int      `json:"to"`
	Reachable bool     `json:"reachable"`
	Path      []int    `json:"path"`
	Cost      *float64 `json:"cost,omitempty"`
	Hops      int      `json:"hops"`
}

func newPathResponse(algo string, from, to int, r dijkstra.Result) PathResponse {
	resp := PathResponse{Algorithm: algo, From: from, To: to, Reachable: r.Reachable(), Path: r.Path, Hops: r.Hops()}
	if resp.Path == nil {
		resp.Path = []int{}
	}
	if !math.IsInf(r.Cost, 0) {
		c := r.Cost
		resp.Cost = &c
	}

	return resp
}

// ComponentsResponse is returned by GET /v1/components.
type ComponentsResponse struct {
	Count      int     `json:"count"`
	Largest    int     `json:"largest"`
	Sizes      []int   `json:"sizes"`
	Components [][]int `json:"components"`
}

// outcomeStatus maps a mutation outcome to an HTTP status. created is used
// for applied insertions.
func outcomeStatus(o core.Outcome, created bool) int {
	switch o {
	case core.OutcomeApplied:
		if created {
			return http.StatusCreated
		}
		return http.StatusOK
	case core.OutcomeExists:
		return http.StatusConflict
	case core.OutcomeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
