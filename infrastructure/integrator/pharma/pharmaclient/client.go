package pharmaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	pharmadomain "github.com/vfg2006/pharmacy-analytics-api/infrastructure/integrator/pharma/domain"
	"github.com/vfg2006/pharmacy-analytics-api/internal/config"
)

// Client é o contrato de acesso aos endpoints do backend da farmácia.
type Client interface {
	ListSales(ctx context.Context, startDate, endDate string) ([]pharmadomain.Sale, error)
	ListSaleItems(ctx context.Context, startDate, endDate string) ([]pharmadomain.SaleItem, error)
	ListProducts(ctx context.Context) ([]pharmadomain.Product, error)
	ListPatients(ctx context.Context) ([]pharmadomain.Patient, error)
	GetDailyTrend(ctx context.Context, days int) ([]pharmadomain.DailyTrendEntry, error)
	GetTodayRevenue(ctx context.Context) (*pharmadomain.TodayRevenue, error)
	GetInventoryStats(ctx context.Context) (*pharmadomain.InventoryStats, error)
}

type PharmaClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &PharmaClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// pageEnvelope aceita os dois formatos de resposta dos endpoints de listagem:
// o paginado {results, next, count} e o array puro (página única).
type pageEnvelope struct {
	Results   []json.RawMessage
	Next      *string
	Count     *int
	Paginated bool
}

func (e *pageEnvelope) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		e.Paginated = false
		return json.Unmarshal(trimmed, &e.Results)
	}

	var paginated struct {
		Results []json.RawMessage `json:"results"`
		Next    *string           `json:"next"`
		Count   *int              `json:"count"`
	}

	if err := json.Unmarshal(trimmed, &paginated); err != nil {
		return err
	}

	e.Results = paginated.Results
	e.Next = paginated.Next
	e.Count = paginated.Count
	e.Paginated = true

	return nil
}

// fetchAllPages percorre todas as páginas de um endpoint de listagem e
// concatena os registros. A iteração para quando a resposta é um array puro,
// quando não há próxima página ou quando o teto de páginas é atingido.
// Qualquer página com erro aborta o fetch inteiro.
func (c *PharmaClient) fetchAllPages(ctx context.Context, endpoint string, filters url.Values) ([]json.RawMessage, error) {
	maxPages := c.config.Pharma.MaxPages
	if maxPages <= 0 {
		maxPages = 16
	}

	records := make([]json.RawMessage, 0)

	for page := 1; page <= maxPages; page++ {
		envelope, err := c.getPage(ctx, endpoint, filters, page)
		if err != nil {
			return nil, err
		}

		records = append(records, envelope.Results...)

		if !envelope.Paginated || envelope.Next == nil {
			break
		}
	}

	return records, nil
}

func (c *PharmaClient) getPage(ctx context.Context, resource string, filters url.Values, page int) (*pageEnvelope, error) {
	endpoint, err := url.Parse(c.config.Pharma.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	// Montar os parâmetros de paginação por cima dos filtros do recurso.
	query := endpoint.Query()
	for key, values := range filters {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(c.config.Pharma.PageSize))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Pharma.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição para %s falhou com status: %s", resource, resp.Status)
	}

	envelope := &pageEnvelope{}
	if err := json.NewDecoder(resp.Body).Decode(envelope); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return envelope, nil
}

// getObject busca um endpoint de estatística pré-agregada (objeto plano).
func (c *PharmaClient) getObject(ctx context.Context, resource string, filters url.Values, out any) error {
	endpoint, err := url.Parse(c.config.Pharma.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	query := endpoint.Query()
	for key, values := range filters {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Pharma.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requisição para %s falhou com status: %s", resource, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

// decodeRecords converte a lista bruta de registros no tipo do endpoint.
func decodeRecords[T any](raw []json.RawMessage) ([]T, error) {
	records := make([]T, 0, len(raw))

	for _, message := range raw {
		var record T
		if err := json.Unmarshal(message, &record); err != nil {
			return nil, fmt.Errorf("erro ao decodificar registro: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}
