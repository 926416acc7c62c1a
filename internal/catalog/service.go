package catalog

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/avaldez/nookstop-backend/pkg/config"
)

// Service exposes the browsing surface over the upstream catalog data.
type Service interface {
	Menu(ctx context.Context) (*Menu, error)
	VillagerTraits(ctx context.Context) (*VillagerTraits, error)
	ListVillagers(ctx context.Context, filter VillagerFilter, page int) (*Page[Villager], error)
	ListFurniture(ctx context.Context, category string, page int) (*Page[FurnitureItem], error)
	FindVillager(ctx context.Context, name string) (*Villager, error)
}

type service struct {
	client   *Client
	pageSize int
}

// NewService builds the catalog service.
func NewService(client *Client, cfg config.CatalogConfig) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("catalog client is required")
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 12
	}
	return &service{client: client, pageSize: pageSize}, nil
}

// Menu extracts the distinct concept, series, and set labels used for
// storefront navigation.
func (s *service) Menu(ctx context.Context) (*Menu, error) {
	items, err := s.client.fetchHouseware(ctx)
	if err != nil {
		return nil, err
	}

	concepts := map[string]struct{}{}
	series := map[string]struct{}{}
	sets := map[string]struct{}{}

	for _, item := range items {
		if item.HHAConcept1 != nil && *item.HHAConcept1 != "" {
			concepts[toTitleCase(*item.HHAConcept1)] = struct{}{}
		}
		if item.HHASeries != nil && *item.HHASeries != "" {
			series[toTitleCase(*item.HHASeries)] = struct{}{}
		}
		if item.HHASet != nil && *item.HHASet != "" {
			sets[toTitleCase(*item.HHASet)] = struct{}{}
		}
	}

	return &Menu{
		Concepts: sortedKeys(concepts),
		Series:   sortedKeys(series),
		Sets:     sortedKeys(sets),
	}, nil
}

// VillagerTraits returns the distinct species, personalities, and signs.
func (s *service) VillagerTraits(ctx context.Context) (*VillagerTraits, error) {
	villagers, err := s.client.FetchVillagers(ctx)
	if err != nil {
		return nil, err
	}

	species := map[string]struct{}{}
	personalities := map[string]struct{}{}
	signs := map[string]struct{}{}
	for _, v := range villagers {
		if v.Species != "" {
			species[v.Species] = struct{}{}
		}
		if v.Personality != "" {
			personalities[v.Personality] = struct{}{}
		}
		if v.Sign != "" {
			signs[v.Sign] = struct{}{}
		}
	}

	return &VillagerTraits{
		Species:       sortedKeys(species),
		Personalities: sortedKeys(personalities),
		Signs:         sortedKeys(signs),
	}, nil
}

// ListVillagers pages through the roster, optionally filtered by traits.
func (s *service) ListVillagers(ctx context.Context, filter VillagerFilter, page int) (*Page[Villager], error) {
	villagers, err := s.client.FetchVillagers(ctx)
	if err != nil {
		return nil, err
	}

	filtered := villagers[:0:0]
	for _, v := range villagers {
		if filter.Species != "" && v.Species != filter.Species {
			continue
		}
		if filter.Personality != "" && v.Personality != filter.Personality {
			continue
		}
		if filter.Sign != "" && v.Sign != filter.Sign {
			continue
		}
		filtered = append(filtered, v)
	}

	return paginate(filtered, page, s.pageSize), nil
}

// ListFurniture returns the page of items matching a concept, series, or set.
func (s *service) ListFurniture(ctx context.Context, category string, page int) (*Page[FurnitureItem], error) {
	raw, err := s.client.fetchHouseware(ctx)
	if err != nil {
		return nil, err
	}

	selected := strings.ToLower(strings.TrimSpace(category))
	seen := map[int]struct{}{}
	var matched []FurnitureItem
	for _, item := range raw {
		if !matchesCategory(item, selected) {
			continue
		}
		if _, dup := seen[item.InternalID]; dup {
			continue
		}
		seen[item.InternalID] = struct{}{}
		matched = append(matched, FurnitureItem{
			SKU:      strconv.Itoa(item.InternalID),
			Name:     toTitleCase(item.Name.NameUSen),
			Price:    item.SellPrice,
			ImageURL: s.client.furnitureImageURL(item.FileName),
		})
	}

	return paginate(matched, page, s.pageSize), nil
}

// FindVillager looks up a single villager by exact name, case-insensitive.
func (s *service) FindVillager(ctx context.Context, name string) (*Villager, error) {
	villagers, err := s.client.FetchVillagers(ctx)
	if err != nil {
		return nil, err
	}
	target := strings.ToLower(strings.TrimSpace(name))
	for i := range villagers {
		if strings.ToLower(villagers[i].Name) == target {
			return &villagers[i], nil
		}
	}
	return nil, nil
}

func matchesCategory(item rawFurniture, category string) bool {
	if category == "" {
		return true
	}
	for _, field := range []*string{item.HHAConcept1, item.HHASeries, item.HHASet} {
		if field != nil && strings.ToLower(*field) == category {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, page, pageSize int) *Page[T] {
	if page < 1 {
		page = 1
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &Page[T]{
		Items:       items[start:end],
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
	}
}

func toTitleCase(value string) string {
	words := strings.Fields(strings.ToLower(value))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
