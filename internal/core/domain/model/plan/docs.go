// Package plan provides the planning Board aggregate used for manual, one event at a
// time planning.
//
// Unlike the allocator, which searches for a complete allocation in one go, the board
// accepts assignments incrementally and checks each one against the running corridor
// ledger. A search result can be put on the board with Replace.
package plan
