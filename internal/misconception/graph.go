package misconception

// Graph is a read-only projection of a learner's misconceptions for
// visualization. Built from a snapshot list; never mutated by the scorer.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Node is one misconception record in the graph.
type Node struct {
	ID       string // "<concept>/<type>", unique within one owner's graph.
	Concept  string
	Type     string
	Category string
	Strength int
	Status   Status
}

// Edge links two related misconceptions.
type Edge struct {
	From     string
	To       string
	Relation string // "same-concept" or "same-category"
}

const (
	RelationSameConcept  = "same-concept"
	RelationSameCategory = "same-category"
)

// BuildGraph projects a snapshot of records into nodes and edges. Pairwise
// comparison is O(n²), which is fine at the scale of a single learner's
// misconception set. Exact concept matches take precedence over shared
// categories; each pair produces at most one edge.
func BuildGraph(records []*Record, rules []CategoryRule) *Graph {
	g := &Graph{}

	for _, r := range records {
		g.Nodes = append(g.Nodes, Node{
			ID:       r.Concept + "/" + r.Type,
			Concept:  r.Concept,
			Type:     r.Type,
			Category: Categorize(r.Type, rules),
			Strength: r.Strength,
			Status:   r.Status,
		})
	}

	for i := 0; i < len(g.Nodes); i++ {
		for j := i + 1; j < len(g.Nodes); j++ {
			a, b := g.Nodes[i], g.Nodes[j]
			switch {
			case a.Concept == b.Concept:
				g.Edges = append(g.Edges, Edge{From: a.ID, To: b.ID, Relation: RelationSameConcept})
			case a.Category == b.Category:
				g.Edges = append(g.Edges, Edge{From: a.ID, To: b.ID, Relation: RelationSameCategory})
			}
		}
	}

	return g
}
