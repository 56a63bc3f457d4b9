package analyzer

import "errors"

var (
	// ErrDivisionByZero is returned by Score when no room was visited.
	ErrDivisionByZero = errors.New("analyzer: visited room count is zero")

	// ErrNegativeCount is returned by Score for negative inputs.
	ErrNegativeCount = errors.New("analyzer: negative count")
)

const (
	methodShortestPathLength         = "ShortestPathLength"
	methodShortestPathLengthDijkstra = "ShortestPathLengthDijkstra"
	methodDepthOf                    = "DepthOf"
	methodCountVisitedRooms          = "CountVisitedRooms"
	methodNextRoomToward             = "NextRoomToward"
	methodRootPath                   = "RootPath"
	methodLowestCommonAncestor       = "LowestCommonAncestor"
	methodHintPath                   = "HintPath"
	methodDepths                     = "Depths"
	methodScore                      = "Score"
)
