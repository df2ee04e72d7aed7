// Package render turns product collections into HTML.
package render

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/fairyhunter13/product-list-ui/internal/model"
)

//go:embed templates/*
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Card holds the display values of one product.
type Card struct {
	Key         string
	Name        string
	Description string
	PriceText   string
	DateText    string
}

// BuildCards derives one card per product, in order. The collection is checked against the
// product shape first; any violation is returned and nothing is rendered.
func BuildCards(products model.Collection, loc Locale) ([]Card, error) {
	if err := products.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid product collection")
	}
	cards := make([]Card, 0, len(products))
	for _, p := range products {
		date, err := FormatDate(p.CreatedAt, loc)
		if err != nil {
			return nil, errors.Wrapf(err, "product %d", p.ID)
		}
		cards = append(cards, Card{
			Key:         strconv.FormatInt(p.ID, 10),
			Name:        p.Name,
			Description: p.Description,
			PriceText:   FormatPrice(p.Price),
			DateText:    date,
		})
	}
	return cards, nil
}

// ListPage is the data behind the product list page.
type ListPage struct {
	Title  string
	Lang   string
	Cards  []Card
	Notice string
}

// NotFoundPage is the data behind the 404 page.
type NotFoundPage struct {
	Title string
	Lang  string
	Path  string
}

// Renderer executes the embedded page templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates once so each request only executes them.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return &Renderer{templates: tmpl}, nil
}

// Grid writes only the card grid.
func (r *Renderer) Grid(w io.Writer, cards []Card) error {
	return r.templates.ExecuteTemplate(w, "grid", cards)
}

// ProductList writes the full product list page.
func (r *Renderer) ProductList(w io.Writer, p ListPage) error {
	return r.templates.ExecuteTemplate(w, "products.gohtml", p)
}

// NotFound writes the 404 page.
func (r *Renderer) NotFound(w io.Writer, p NotFoundPage) error {
	if p.Title == "" {
		p.Title = "Not found"
	}
	if p.Lang == "" {
		p.Lang = "en"
	}
	return r.templates.ExecuteTemplate(w, "notfound.gohtml", p)
}

// Static exposes the embedded stylesheet directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
