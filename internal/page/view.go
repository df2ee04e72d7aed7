package page

import (
	"github.com/fairyhunter13/product-list-ui/internal/render"
)

// Title is the document title of the product list page.
const Title = "Product List"

const (
	noticeFailed  = "Products could not be loaded right now."
	noticeLoading = "Products are still loading."
)

// View maps a state onto the page template data. Every state renders the grid; only the
// notice line differs.
func View(s State, loc render.Locale) (render.ListPage, error) {
	cards, err := render.BuildCards(s.Products, loc)
	if err != nil {
		return render.ListPage{}, err
	}
	v := render.ListPage{Title: Title, Lang: loc.Tag.String(), Cards: cards}
	switch s.Status {
	case Failed:
		v.Notice = noticeFailed
	case NotStarted, Loading:
		v.Notice = noticeLoading
	}
	return v, nil
}
