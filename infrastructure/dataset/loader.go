package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analyst/internal/domain"
	"github.com/vfg2006/ads-analyst/pkg/utils"
)

// Colunas esperadas no arquivo de performance de anúncios
const (
	columnDate            = "date"
	columnSpend           = "spend"
	columnImpressions     = "impressions"
	columnClicks          = "clicks"
	columnPurchases       = "purchases"
	columnRevenue         = "revenue"
	columnCreativeMessage = "creative_message"
	columnCampaign        = "campaign"
	columnPlatform        = "platform"
	columnCountry         = "country"
)

// Loader carrega o dataset de performance de anúncios a partir de uma fonte tabular
type Loader interface {
	Load() (domain.Dataset, error)
}

type csvLoader struct {
	path string
}

func NewCSVLoader(path string) Loader {
	return &csvLoader{
		path: path,
	}
}

// Load lê o arquivo CSV e converte cada linha em um Record. Valores numéricos
// ausentes assumem 0; datas ou números malformados abortam o carregamento.
func (l *csvLoader) Load() (domain.Dataset, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o dataset: %s", l.path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho do dataset")
	}

	columnIndex := make(map[string]int, len(header))
	for i, name := range header {
		columnIndex[name] = i
	}

	if _, exists := columnIndex[columnDate]; !exists {
		return nil, errors.Errorf("dataset sem a coluna obrigatória %q", columnDate)
	}

	records := make(domain.Dataset, 0)
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler a linha %d do dataset", line)
		}

		record, err := l.parseRow(row, columnIndex)
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d malformada", line)
		}

		records = append(records, *record)
	}

	logrus.WithFields(logrus.Fields{
		"path": l.path,
		"rows": len(records),
	}).Info("Dataset carregado com sucesso")

	return records, nil
}

func (l *csvLoader) parseRow(row []string, columnIndex map[string]int) (*domain.Record, error) {
	dateStr := cell(row, columnIndex, columnDate)
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, errors.Wrapf(err, "data inválida: %q", dateStr)
	}

	record := &domain.Record{
		Date:            *date,
		CreativeMessage: cell(row, columnIndex, columnCreativeMessage),
		Campaign:        cell(row, columnIndex, columnCampaign),
		Platform:        cell(row, columnIndex, columnPlatform),
		Country:         cell(row, columnIndex, columnCountry),
	}

	numericColumns := []struct {
		name   string
		target *float64
	}{
		{columnSpend, &record.Spend},
		{columnImpressions, &record.Impressions},
		{columnClicks, &record.Clicks},
		{columnPurchases, &record.Purchases},
		{columnRevenue, &record.Revenue},
	}

	for _, column := range numericColumns {
		value, err := parseNumeric(cell(row, columnIndex, column.name))
		if err != nil {
			return nil, errors.Wrapf(err, "valor inválido na coluna %q", column.name)
		}
		*column.target = value
	}

	return record, nil
}

// cell retorna o valor da coluna ou vazio quando a coluna não existe na linha
func cell(row []string, columnIndex map[string]int, name string) string {
	index, exists := columnIndex[name]
	if !exists || index >= len(row) {
		return ""
	}
	return row[index]
}

// parseNumeric converte o valor da célula; células vazias valem 0
func parseNumeric(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}

	return strconv.ParseFloat(raw, 64)
}
