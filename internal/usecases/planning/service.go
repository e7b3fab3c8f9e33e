package planning

import (
	"github.com/vfg2006/ads-analyst/internal/domain"
)

// Planner produz o plano de passos que a análise executa para uma consulta
type Planner interface {
	Plan(query string) []domain.PlanStep
}

type Service struct{}

func NewService() Planner {
	return &Service{}
}

// Plan retorna o plano fixo da análise. A consulta é apenas um rótulo de
// contexto; nenhum passo depende do texto dela.
func (s *Service) Plan(query string) []domain.PlanStep {
	return []domain.PlanStep{
		{
			Step:        1,
			Name:        "Load Data",
			Description: "Carregar o dataset de performance de anúncios",
		},
		{
			Step:        2,
			Name:        "Windowed Metrics",
			Description: "Calcular métricas agregadas das duas janelas adjacentes",
		},
		{
			Step:        3,
			Name:        "Driver Analysis",
			Description: "Comparar as janelas e apontar os drivers da variação de ROAS",
		},
		{
			Step:        4,
			Name:        "Creative Recommendations",
			Description: "Reescrever criativos de baixo CTR inspirados nos melhores",
		},
		{
			Step:        5,
			Name:        "Report",
			Description: "Montar e persistir o relatório final",
		},
	}
}
