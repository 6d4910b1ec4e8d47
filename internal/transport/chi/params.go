package chi

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/oapi-codegen/runtime"

	"github.com/payzee/dashboard/internal/domain"
	"github.com/payzee/dashboard/internal/domain/listview"
	"github.com/payzee/dashboard/internal/usecase/listing"
)

const (
	paramPage  = "page"
	paramQuery = "q"
)

// bindViewQuery reads ?page=&q=&<filter>= into a listing query. Query keys
// that are neither page, q nor a declared filter field are rejected.
func bindViewQuery(r *http.Request, def listview.Definition) (listing.Query, error) {
	values := r.URL.Query()
	for key := range values {
		if key == paramPage || key == paramQuery || def.HasFilter(key) {
			continue
		}
		return listing.Query{}, fmt.Errorf("%w: list %s has no filter %q", domain.ErrInvalidQuery, def.Name, key)
	}

	var page *int
	if err := runtime.BindQueryParameter("form", true, false, paramPage, values, &page); err != nil {
		return listing.Query{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
	}
	var q *string
	if err := runtime.BindQueryParameter("form", true, false, paramQuery, values, &q); err != nil {
		return listing.Query{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
	}

	query := listing.Query{Page: 1, Filters: make(map[string]string, len(def.FilterFields))}
	if page != nil {
		query.Page = *page
	}
	if q != nil {
		query.Search = *q
	}
	for _, field := range def.FilterFields {
		var v *string
		if err := runtime.BindQueryParameter("form", true, false, field, values, &v); err != nil {
			return listing.Query{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
		}
		if v != nil {
			query.Filters[field] = *v
		}
	}
	return query, nil
}

func findDefinition(defs []listview.Definition, name string) (listview.Definition, error) {
	i := slices.IndexFunc(defs, func(d listview.Definition) bool { return d.Name == name })
	if i < 0 {
		return listview.Definition{}, fmt.Errorf("%w: %s", domain.ErrUnknownList, name)
	}
	return defs[i], nil
}
