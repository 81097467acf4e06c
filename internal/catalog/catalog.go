package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"ayonne-skin/internal/domain"
)

//go:embed catalog.yaml
var rawCatalog []byte

// Product es el producto recomendado del catálogo para una condición.
type Product struct {
	Slug          string  `yaml:"slug" json:"slug"`
	Name          string  `yaml:"name" json:"name"`
	Effectiveness float64 `yaml:"effectiveness" json:"effectiveness"` // 0.0 - 1.0
}

// Entry es la fila del catálogo para una condición: categoría, peso base
// y tasas semanales de cambio por escenario.
type Entry struct {
	Name        string
	Category    domain.Category
	BaseWeight  float64
	WithRate    float64 // fracción semanal de mejora siguiendo la rutina
	WithoutRate float64 // deriva semanal natural sin tratamiento
	Product     *Product
	Known       bool // false cuando el nombre no estaba en el catálogo
}

// Catalog es la tabla versionada condición → metadatos, cargada una sola
// vez desde el YAML embebido. Tunear pesos o tasas es un cambio de datos,
// no de código.
type Catalog struct {
	version     string
	categoryMax float64
	entries     map[string]Entry
	fallback    Entry
}

type yamlEntry struct {
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	BaseWeight  float64  `yaml:"base_weight"`
	WithRate    float64  `yaml:"with_rate"`
	WithoutRate float64  `yaml:"without_rate"`
	Product     *Product `yaml:"product"`
}

type yamlCatalog struct {
	Version     string      `yaml:"version"`
	CategoryMax float64     `yaml:"category_max"`
	Default     yamlEntry   `yaml:"default"`
	Conditions  []yamlEntry `yaml:"conditions"`
}

// Load parsea y valida el catálogo embebido.
func Load() (*Catalog, error) {
	return Parse(rawCatalog)
}

// Parse construye un catálogo desde bytes YAML, validando que cada fila
// pertenezca al conjunto cerrado de categorías y que las tasas sean sanas.
func Parse(data []byte) (*Catalog, error) {
	var yc yamlCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	if strings.TrimSpace(yc.Version) == "" {
		return nil, fmt.Errorf("catalog version missing")
	}
	if yc.CategoryMax <= 0 {
		return nil, fmt.Errorf("catalog category_max must be positive, got %v", yc.CategoryMax)
	}

	fallback, err := buildEntry(yc.Default, false)
	if err != nil {
		return nil, fmt.Errorf("catalog default entry: %w", err)
	}

	entries := make(map[string]Entry, len(yc.Conditions))
	for _, ye := range yc.Conditions {
		if strings.TrimSpace(ye.Name) == "" {
			return nil, fmt.Errorf("catalog condition without name")
		}
		entry, err := buildEntry(ye, true)
		if err != nil {
			return nil, fmt.Errorf("catalog condition %q: %w", ye.Name, err)
		}
		key := normalizeName(ye.Name)
		if _, dup := entries[key]; dup {
			return nil, fmt.Errorf("catalog condition %q duplicated", ye.Name)
		}
		entries[key] = entry
	}

	return &Catalog{
		version:     yc.Version,
		categoryMax: yc.CategoryMax,
		entries:     entries,
		fallback:    fallback,
	}, nil
}

func buildEntry(ye yamlEntry, known bool) (Entry, error) {
	cat, ok := parseCategory(ye.Category)
	if !ok {
		return Entry{}, fmt.Errorf("unknown category %q", ye.Category)
	}
	if ye.BaseWeight <= 0 {
		return Entry{}, fmt.Errorf("base_weight must be positive, got %v", ye.BaseWeight)
	}
	if ye.WithRate < 0 || ye.WithRate >= 1 {
		return Entry{}, fmt.Errorf("with_rate out of range: %v", ye.WithRate)
	}
	if ye.WithoutRate < 0 || ye.WithoutRate >= 1 {
		return Entry{}, fmt.Errorf("without_rate out of range: %v", ye.WithoutRate)
	}
	return Entry{
		Name:        strings.TrimSpace(ye.Name),
		Category:    cat,
		BaseWeight:  ye.BaseWeight,
		WithRate:    ye.WithRate,
		WithoutRate: ye.WithoutRate,
		Product:     ye.Product,
		Known:       known,
	}, nil
}

func parseCategory(s string) (domain.Category, bool) {
	cat := domain.Category(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range domain.AllCategories() {
		if c == cat {
			return c, true
		}
	}
	return "", false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Lookup nunca falla: un nombre desconocido resuelve a la entrada default
// conservadora con Known=false, para que el caller lo reporte como señal
// de calidad de datos y no como error de usuario.
func (c *Catalog) Lookup(name string) Entry {
	if e, ok := c.entries[normalizeName(name)]; ok {
		return e
	}
	e := c.fallback
	e.Name = strings.TrimSpace(name)
	return e
}

// Version devuelve la versión declarada en el YAML.
func (c *Catalog) Version() string {
	return c.version
}

// CategoryMax es el máximo fijo de severidad ponderada por categoría,
// usado para normalizar a porcentaje.
func (c *Catalog) CategoryMax() float64 {
	return c.categoryMax
}

// Len devuelve cuántas condiciones conocidas tiene la tabla.
func (c *Catalog) Len() int {
	return len(c.entries)
}
