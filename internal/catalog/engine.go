package catalog

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/MOWLI17/luxora-sub001/internal/domain"
)

// UnboundedPrice — сентинел "верхняя граница цены не задана".
const UnboundedPrice = math.MaxFloat64

// Filter описывает параметры отбора товаров каталога.
type Filter struct {
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
	// Search — подстрока имени без учёта регистра; пустая строка означает
	// отсутствие текстового поиска.
	Search string
}

// DefaultFilter возвращает фильтр, пропускающий весь каталог.
func DefaultFilter() Filter {
	return Filter{MaxPrice: UnboundedPrice}
}

// ParseFilter коэрсит строковые параметры публичного поискового запроса.
// Некорректное число деградирует до значения по умолчанию: пользовательский
// ввод никогда не приводит к ошибке на этой поверхности.
func ParseFilter(minPrice, maxPrice, minRating, search string) Filter {
	return Filter{
		MinPrice:  parseFloatOrDefault(minPrice, 0),
		MaxPrice:  parseFloatOrDefault(maxPrice, UnboundedPrice),
		MinRating: parseFloatOrDefault(minRating, 0),
		Search:    strings.TrimSpace(search),
	}
}

func parseFloatOrDefault(raw string, def float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return def
	}
	return v
}

// Matches проверяет запись каталога против предиката фильтра.
func (f Filter) Matches(p domain.Product) bool {
	if p.Price < f.MinPrice || p.Price > f.MaxPrice {
		return false
	}
	if p.Rating < f.MinRating {
		return false
	}
	if f.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search))
}

// Result — выборка каталога и количество совпадений до любой пагинации.
type Result struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

// Engine вычисляет предикат фильтра над внешней коллекцией товаров.
// Движок чистый: никакого состояния, кроме источника, у него нет.
type Engine struct {
	source domain.ProductSource
	logger *log.Entry
}

// NewEngine конструирует движок над источником каталога.
func NewEngine(source domain.ProductSource, logger *log.Entry) *Engine {
	if logger == nil {
		logger = log.WithField("component", "catalog-engine")
	}
	return &Engine{source: source, logger: logger}
}

// Query возвращает совпадения в порядке итерации источника плюс их число.
func (e *Engine) Query(ctx context.Context, filter Filter) (Result, error) {
	products, err := e.source.List(ctx)
	if err != nil {
		e.logger.WithError(err).Error("failed to list products")
		return Result{}, fmt.Errorf("list products: %w", err)
	}

	matches := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if filter.Matches(p) {
			matches = append(matches, p)
		}
	}

	return Result{Products: matches, Total: len(matches)}, nil
}
