package derive

import (
	"github.com/yungbote/luminus-backend/internal/types"
)

// Edge is one directed relationship inside a batch, referencing batch ids.
type Edge struct {
	SourceID string
	TargetID string
	Strength int
	Type     string
}

// Relationships infers the typed edge set over one batch by threshold rules,
// applied per employee in list order. The builder does not deduplicate; the
// persistence layer collapses identical (source, target, type) triples.
func Relationships(profiles []Profile) []Edge {
	var edges []Edge
	n := len(profiles)
	if n < 2 {
		return edges
	}

	for i, p := range profiles {
		rng := NewRand(i, p.EmployeeCode+"/graph")
		cross := p.Counters.CrossTeamCollaborations

		if p.LevelNum >= 5 && cross > 10 {
			var lower []int
			for j, q := range profiles {
				if q.LevelNum < p.LevelNum {
					lower = append(lower, j)
				}
			}
			if len(lower) > 0 {
				target := profiles[lower[rng.Intn(len(lower))]]
				edges = append(edges, Edge{
					SourceID: p.ID,
					TargetID: target.ID,
					Strength: minInt(9, p.Counters.HelpRequestReplies/10+5),
					Type:     types.RelMentorship,
				})
			}
		}

		if cross > 5 {
			count := minInt(3, cross/4)
			strength := minInt(8, cross/2+3)
			for k := 0; k < count; k++ {
				j := (i + k + 1) % n
				if j == i {
					continue
				}
				edges = append(edges, Edge{
					SourceID: p.ID,
					TargetID: profiles[j].ID,
					Strength: strength,
					Type:     types.RelCollaboration,
				})
			}
		}

		if p.ImpactScore >= 85 && p.Counters.PeerReviewScore >= 4.5 {
			var peers []int
			for j, q := range profiles {
				if j != i && q.ImpactScore >= 80 {
					peers = append(peers, j)
				}
			}
			if len(peers) > 0 {
				target := profiles[peers[rng.Intn(len(peers))]]
				edges = append(edges, Edge{
					SourceID: p.ID,
					TargetID: target.ID,
					Strength: 9,
					Type:     types.RelRecognition,
				})
			}
		}

		if p.BurnoutCategory == types.BurnoutHigh && p.ImpactScore >= 70 {
			var calm []int
			for j, q := range profiles {
				if j != i && q.BurnoutCategory == types.BurnoutLow {
					calm = append(calm, j)
				}
			}
			if len(calm) > 0 {
				source := profiles[calm[rng.Intn(len(calm))]]
				edges = append(edges, Edge{
					SourceID: source.ID,
					TargetID: p.ID,
					Strength: 7,
					Type:     types.RelSupport,
				})
			}
		}
	}
	return edges
}
