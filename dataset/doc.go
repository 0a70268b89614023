// Package dataset loads SNAP-style edge lists into a core.Graph.
//
// The format is line-oriented: each line names two whitespace-separated
// user IDs forming one friendship. Lines starting with '#' are comments
// and blank lines are skipped. Anything else with a field count other
// than two is a malformed line and aborts the load with a wrapped
// ErrBadLine carrying the line number.
//
// The loader is a thin collaborator: it only calls g.AddEdge, so graph
// policy (e.g. the self-loop rejection) surfaces unchanged, wrapped
// with the offending line number.
package dataset
