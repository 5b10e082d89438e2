package services

import (
	"context"
	"sort"

	"github.com/fitmatch-dev/TrainerMatchBack/internal/metrics"
	"github.com/fitmatch-dev/TrainerMatchBack/internal/models"
	"github.com/fitmatch-dev/TrainerMatchBack/internal/scoring"
)

type TrainerMatcher interface {
	ListAllOnboarded(ctx context.Context) ([]models.TrainerProfile, error)
}

type MatchmakingService struct {
	trainerRepo TrainerMatcher
}

func NewMatchmakingService(trainerRepo TrainerMatcher) *MatchmakingService {
	return &MatchmakingService{trainerRepo: trainerRepo}
}

// RankTrainers scores every onboarded trainer against the client profile and
// returns them best first. Ties on global score break by confidence, then by
// trainer user id so equal candidates always come back in the same order.
func (s *MatchmakingService) RankTrainers(
	ctx context.Context,
	clientProfile *models.ClientProfile,
	limit int,
) ([]models.TrainerWithScore, error) {
	trainers, err := s.trainerRepo.ListAllOnboarded(ctx)
	if err != nil {
		return nil, err
	}

	metrics.RankingRequests.Inc()

	ranked := make([]models.TrainerWithScore, 0, len(trainers))
	for _, trainer := range trainers {
		breakdown := scoring.Score(clientProfile, &trainer)
		metrics.TrainersScored.Inc()
		metrics.GlobalScores.Observe(float64(breakdown.Global))
		ranked = append(ranked, models.TrainerWithScore{
			TrainerProfile: trainer,
			Breakdown:      breakdown,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		left, right := ranked[i].Breakdown, ranked[j].Breakdown
		if left.Global != right.Global {
			return left.Global > right.Global
		}
		if left.Confidence != right.Confidence {
			return left.Confidence > right.Confidence
		}
		return ranked[i].UserID < ranked[j].UserID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

// ScoreTrainer computes the breakdown for a single client/trainer pair, used
// by the match-detail endpoint.
func (s *MatchmakingService) ScoreTrainer(
	clientProfile *models.ClientProfile,
	trainer *models.TrainerProfile,
) models.ScoreBreakdown {
	breakdown := scoring.Score(clientProfile, trainer)
	metrics.TrainersScored.Inc()
	metrics.GlobalScores.Observe(float64(breakdown.Global))
	return breakdown
}
