// Package pipecheck validates the structure of a pipeline graph: two
// decoded JSON collections of node and edge records are checked for shape
// and for acyclicity via Kahn's algorithm.
package pipecheck

// Validate checks the pipeline described by two decoded generic values.
// nodesRaw and edgesRaw must each be a list; anything else fails with a
// *ShapeError. Every other problem — malformed records, dangling edge
// references, cycles — degrades into a Result with IsDAG false rather than
// an error, so the operation never rejects a structurally decodable input.
// It is pure and safe for concurrent use.
func Validate(nodesRaw, edgesRaw any) (*Result, error) {
	nodes, ok := nodesRaw.([]any)
	if !ok {
		return nil, &ShapeError{Side: SideNodes}
	}
	edges, ok := edgesRaw.([]any)
	if !ok {
		return nil, &ShapeError{Side: SideEdges}
	}

	res := &Result{NumNodes: len(nodes), NumEdges: len(edges)}

	// Degenerate inputs short-circuit before any record validation.
	switch {
	case len(nodes) == 0 && len(edges) == 0:
		res.IsDAG = true
		res.Verdict = VerdictEmpty
		res.Message = MsgEmptyPipeline
		return res, nil
	case len(nodes) == 0:
		res.Verdict = VerdictNoNodes
		res.Message = MsgEdgesWithoutNodes
		return res, nil
	}

	res.Verdict = checkAcyclic(nodes, edges)
	res.IsDAG = res.Verdict == VerdictValid

	// The message is composed independently of the verdict: a pipeline with
	// no edges always reports isolated nodes, even when a node record is
	// malformed and IsDAG came out false.
	switch {
	case len(edges) == 0:
		res.Message = MsgIsolatedNodes
	case !res.IsDAG:
		res.Message = MsgCycleDetected
	default:
		res.Message = MsgValidPipeline
	}
	return res, nil
}

// checkAcyclic validates record shapes, builds the adjacency and in-degree
// tables, and runs Kahn's algorithm. O(N+E) time and space.
func checkAcyclic(nodes, edges []any) Verdict {
	// Collect node ids in declaration order. Duplicate ids collapse into
	// one graph vertex; the processed-count comparison at the end then
	// fails, so duplicated ids surface as a cyclic verdict.
	ids := make([]any, 0, len(nodes))
	known := make(map[any]bool, len(nodes))
	for _, raw := range nodes {
		rec, ok := raw.(map[string]any)
		if !ok {
			return VerdictMalformedNode
		}
		id, ok := rec["id"]
		if !ok {
			return VerdictMalformedNode
		}
		// Object and array ids cannot be map keys; treat them as malformed.
		if !comparableID(id) {
			return VerdictMalformedNode
		}
		if !known[id] {
			known[id] = true
			ids = append(ids, id)
		}
	}

	adjacency := make(map[any][]any, len(ids))
	inDegree := make(map[any]int, len(ids))
	for _, id := range ids {
		inDegree[id] = 0
	}

	for _, raw := range edges {
		rec, ok := raw.(map[string]any)
		if !ok {
			return VerdictMalformedEdge
		}
		source, ok := rec["source"]
		if !ok {
			return VerdictMalformedEdge
		}
		target, ok := rec["target"]
		if !ok {
			return VerdictMalformedEdge
		}
		if !comparableID(source) || !comparableID(target) {
			return VerdictMalformedEdge
		}
		if !known[source] || !known[target] {
			return VerdictDangling
		}
		adjacency[source] = append(adjacency[source], target)
		inDegree[target]++
	}

	// Kahn's algorithm: seed the queue with zero in-degree nodes in
	// declaration order, then peel layers until it drains.
	queue := make([]any, 0, len(ids))
	for _, id := range ids {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	processed := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		processed++
		for _, next := range adjacency[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	// Any residual node sits on a cycle (self-loops included).
	if processed != len(nodes) {
		return VerdictCyclic
	}
	return VerdictValid
}

// comparableID reports whether a decoded JSON value can key a map. After
// json.Unmarshal into any, only objects and arrays are non-comparable.
func comparableID(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return false
	}
	return true
}
