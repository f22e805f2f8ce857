package server

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"github.com/meikuraledutech/pipecheck"
)

func (s *Server) handlePing(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"Ping": "Pong"})
}

// handleParsePipeline validates the graph posted in the "nodes" and "edges"
// form fields, each a JSON-encoded list. Malformed input never yields a
// non-OK status: decode and shape failures come back as a 200 with an
// {"error": ...} body, everything else folds into the is_dag verdict.
func (s *Server) handleParsePipeline(c fiber.Ctx) error {
	nodesRaw, err := pipecheck.DecodeList(pipecheck.SideNodes, c.FormValue("nodes"))
	if err != nil {
		return s.inputError(c, "decode", err)
	}
	edgesRaw, err := pipecheck.DecodeList(pipecheck.SideEdges, c.FormValue("edges"))
	if err != nil {
		return s.inputError(c, "decode", err)
	}

	result, err := s.validate(nodesRaw, edgesRaw)
	var shapeErr *pipecheck.ShapeError
	if errors.As(err, &shapeErr) {
		return s.inputError(c, "shape", err)
	}
	if err != nil {
		s.log.Error("pipeline validation failed",
			"request_id", requestid.FromContext(c), "error", err)
		return c.JSON(fiber.Map{"error": "unable to process pipeline"})
	}

	s.metrics.validations.WithLabelValues(result.Verdict.String()).Inc()
	s.log.Info("pipeline validated",
		"request_id", requestid.FromContext(c),
		"num_nodes", result.NumNodes,
		"num_edges", result.NumEdges,
		"is_dag", result.IsDAG,
		"verdict", result.Verdict.String())
	return c.JSON(result)
}

// validate runs the core check, downgrading any panic to an error so the
// endpoint keeps its always-200 contract.
func (s *Server) validate(nodesRaw, edgesRaw any) (result *pipecheck.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("validate: %v", r)
		}
	}()
	return pipecheck.Validate(nodesRaw, edgesRaw)
}

func (s *Server) inputError(c fiber.Ctx, kind string, err error) error {
	s.metrics.inputErrors.WithLabelValues(kind).Inc()
	s.log.Warn("rejected pipeline input",
		"request_id", requestid.FromContext(c), "kind", kind, "error", err)
	return c.JSON(fiber.Map{"error": err.Error()})
}
