package pipecheck

// Status messages reported in Result.Message. These are part of the API
// contract consumed by the frontend, so they stay stable.
const (
	MsgEmptyPipeline     = "Empty pipeline - no nodes or edges"
	MsgEdgesWithoutNodes = "Invalid pipeline - edges exist without nodes"
	MsgIsolatedNodes     = "Pipeline contains only isolated nodes"
	MsgCycleDetected     = "Pipeline contains cycles and is not a valid DAG"
	MsgValidPipeline     = "Valid pipeline structure"
)

// Verdict classifies the structural outcome of a validation. The HTTP
// response folds every non-valid verdict into is_dag=false; the tag exists
// so that library callers and metrics can still tell the cases apart.
type Verdict int

const (
	// VerdictValid means the pipeline is a well-formed DAG.
	VerdictValid Verdict = iota
	// VerdictEmpty means both the node and edge lists were empty.
	VerdictEmpty
	// VerdictNoNodes means edges were supplied without any nodes.
	VerdictNoNodes
	// VerdictCyclic means the topological sort left unprocessed nodes.
	VerdictCyclic
	// VerdictMalformedNode means a node record was not an object with an id.
	VerdictMalformedNode
	// VerdictMalformedEdge means an edge record was missing source or target.
	VerdictMalformedEdge
	// VerdictDangling means an edge referenced an unknown node id.
	VerdictDangling
)

// String returns a stable lowercase label, suitable for metric labels.
func (v Verdict) String() string {
	switch v {
	case VerdictValid:
		return "valid"
	case VerdictEmpty:
		return "empty"
	case VerdictNoNodes:
		return "no_nodes"
	case VerdictCyclic:
		return "cyclic"
	case VerdictMalformedNode:
		return "malformed_node"
	case VerdictMalformedEdge:
		return "malformed_edge"
	case VerdictDangling:
		return "dangling_edge"
	}
	return "unknown"
}

// Result is the outcome of validating one pipeline. It is built fresh per
// call and never retained.
type Result struct {
	NumNodes int    `json:"num_nodes"`
	NumEdges int    `json:"num_edges"`
	IsDAG    bool   `json:"is_dag"`
	Message  string `json:"message"`

	// Verdict carries the detailed classification. It is deliberately
	// excluded from the JSON body: the wire contract only exposes is_dag.
	Verdict Verdict `json:"-"`
}
