package misconception

import "testing"

func TestBuildGraph_NodesCarryCategories(t *testing.T) {
	records := []*Record{
		{Concept: "fractions", Type: "adds fraction denominators", Strength: 6, Status: StatusActive},
		{Concept: "integers", Type: "drops negative sign", Strength: 3, Status: StatusResolving},
	}

	g := BuildGraph(records, DefaultCategoryRules())

	if len(g.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(g.Nodes))
	}
	if g.Nodes[0].Category != "fractions" {
		t.Errorf("node 0 category = %q, want fractions", g.Nodes[0].Category)
	}
	if g.Nodes[1].Category != "signs and negatives" {
		t.Errorf("node 1 category = %q, want signs and negatives", g.Nodes[1].Category)
	}
	if g.Nodes[0].ID != "fractions/adds fraction denominators" {
		t.Errorf("node 0 ID = %q", g.Nodes[0].ID)
	}
}

func TestBuildGraph_SameConceptTakesPrecedence(t *testing.T) {
	records := []*Record{
		{Concept: "fractions", Type: "adds fraction denominators"},
		{Concept: "fractions", Type: "inverts the wrong fraction"},
	}

	g := BuildGraph(records, DefaultCategoryRules())

	if len(g.Edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(g.Edges))
	}
	if g.Edges[0].Relation != RelationSameConcept {
		t.Errorf("relation = %q, want %q", g.Edges[0].Relation, RelationSameConcept)
	}
}

func TestBuildGraph_SameCategoryEdge(t *testing.T) {
	records := []*Record{
		{Concept: "subtraction", Type: "drops negative sign"},
		{Concept: "multiplication", Type: "sign error with two negatives"},
		{Concept: "geometry", Type: "confuses area and perimeter"},
	}

	g := BuildGraph(records, DefaultCategoryRules())

	var sameCat int
	for _, e := range g.Edges {
		if e.Relation == RelationSameCategory {
			sameCat++
		}
	}
	if sameCat != 1 {
		t.Errorf("got %d same-category edges, want 1", sameCat)
	}
}

func TestBuildGraph_EmptySnapshot(t *testing.T) {
	g := BuildGraph(nil, DefaultCategoryRules())
	if len(g.Nodes) != 0 || len(g.Edges) != 0 {
		t.Errorf("expected empty graph, got %d nodes %d edges", len(g.Nodes), len(g.Edges))
	}
}
