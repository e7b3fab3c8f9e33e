package recommending

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analyst/internal/config"
	"github.com/vfg2006/ads-analyst/internal/domain"
)

const (
	emDash = "—"

	// hookFallbackLength é o corte aplicado quando o exemplar não tem "—"
	hookFallbackLength = 20

	recommendationRationale = "Criativo de baixo CTR reescrito com o gancho de um criativo de alto ROAS."
)

// Recommender identifica criativos fracos e gera variações inspiradas nos melhores
type Recommender interface {
	FindUnderperformers(ds domain.Dataset) []*domain.CreativeAggregate
	FindTopPerformers(ds domain.Dataset, n int) []string
	Generate(ds domain.Dataset, maxRecommendations int) []domain.Recommendation
}

type Service struct {
	cfg *config.Config
	rng *rand.Rand
}

// NewService recebe a fonte de aleatoriedade já semeada para que a escolha de
// exemplares seja reproduzível em testes
func NewService(cfg *config.Config, rng *rand.Rand) Recommender {
	return &Service{
		cfg: cfg,
		rng: rng,
	}
}

// FindUnderperformers retorna os criativos com CTR abaixo do limite e gasto
// acima do mínimo, ordenados por gasto decrescente
func (s *Service) FindUnderperformers(ds domain.Dataset) []*domain.CreativeAggregate {
	order, groups := ds.GroupByCreative()

	underperformers := make([]*domain.CreativeAggregate, 0)
	for _, message := range order {
		aggregate := domain.AggregateCreative(message, groups[message])
		if aggregate.CTR < s.cfg.Thresholds.LowCTR && aggregate.Spend > s.cfg.Thresholds.MinSpend {
			underperformers = append(underperformers, aggregate)
		}
	}

	sort.SliceStable(underperformers, func(i, j int) bool {
		return underperformers[i].Spend > underperformers[j].Spend
	})

	return underperformers
}

// FindTopPerformers ranqueia os criativos pela média do ROAS linha a linha.
// Cada linha pesa igual, independente do gasto. Empates preservam a ordem do
// primeiro encontro do criativo no dataset.
func (s *Service) FindTopPerformers(ds domain.Dataset, n int) []string {
	order, groups := ds.GroupByCreative()

	type creativeScore struct {
		message  string
		meanROAS float64
	}

	scores := make([]creativeScore, 0, len(order))
	for _, message := range order {
		rows := groups[message]
		if len(rows) == 0 {
			continue
		}

		total := 0.0
		for _, row := range rows {
			total += row.ROAS()
		}

		scores = append(scores, creativeScore{
			message:  message,
			meanROAS: total / float64(len(rows)),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].meanROAS > scores[j].meanROAS
	})

	if n < len(scores) {
		scores = scores[:n]
	}

	top := make([]string, 0, len(scores))
	for _, score := range scores {
		top = append(top, score.message)
	}

	return top
}

// Generate produz até maxRecommendations variações para os piores criativos,
// cada uma inspirada em um exemplar sorteado entre os melhores
func (s *Service) Generate(ds domain.Dataset, maxRecommendations int) []domain.Recommendation {
	underperformers := s.FindUnderperformers(ds)
	if len(underperformers) == 0 {
		logrus.Info("Nenhum criativo abaixo dos limites configurados; sem recomendações")
		return nil
	}

	topPerformers := s.FindTopPerformers(ds, s.cfg.Analysis.TopPerformers)
	if len(topPerformers) == 0 {
		// Sem exemplares não há de onde sortear; pular a geração em vez de falhar
		logrus.Warn("Nenhum criativo qualificado como exemplar; geração de recomendações pulada")
		return nil
	}

	if maxRecommendations < len(underperformers) {
		underperformers = underperformers[:maxRecommendations]
	}

	recommendations := make([]domain.Recommendation, 0, len(underperformers))
	for _, creative := range underperformers {
		exemplar := topPerformers[s.rng.Intn(len(topPerformers))]

		recommendations = append(recommendations, domain.Recommendation{
			Original:           creative.CreativeMessage,
			InspirationSource:  exemplar,
			SuggestedVariation: spliceCreative(creative.CreativeMessage, exemplar),
			Rationale:          recommendationRationale,
		})
	}

	logrus.WithField("count", len(recommendations)).Info("Recomendações de criativos geradas")
	return recommendations
}

// spliceCreative monta a variação combinando o gancho do exemplar com a oferta
// do criativo original
func spliceCreative(original, exemplar string) string {
	hook := exemplar
	if before, _, found := strings.Cut(exemplar, emDash); found {
		hook = before
	} else if runes := []rune(exemplar); len(runes) > hookFallbackLength {
		hook = string(runes[:hookFallbackLength])
	}

	offer := original
	if index := strings.LastIndex(original, emDash); index >= 0 {
		offer = original[index+len(emDash):]
	}

	hook = strings.TrimSpace(hook)
	offer = strings.TrimSpace(offer)

	return hook + " — " + offer + " - Limited Time Offer."
}
