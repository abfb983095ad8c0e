package queries

import "planner/internal/core/domain/model/network"

// CorridorLoadResponse is the read model of a corridor and the people on it.
type CorridorLoadResponse struct {
	Start    string
	End      string
	Capacity int
	Load     int
}

func corridorLoads(traffic *network.Traffic) []CorridorLoadResponse {
	loads := make([]CorridorLoadResponse, 0, traffic.Len())
	for corridor, load := range traffic.All() {
		loads = append(loads, CorridorLoadResponse{
			Start:    corridor.Start().Name(),
			End:      corridor.End().Name(),
			Capacity: corridor.Capacity(),
			Load:     load,
		})
	}
	return loads
}
