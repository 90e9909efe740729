package httputil

import (
	"net/url"
	"reflect"
	"strings"
)

// GetURLFields reports which fields of a query filter struct were given as
// query parameters. Parameters are matched by the field's form tag.
//
// queryFields can be passed to gorm's Where so that zero values like
// isPrimary=false are filtered on too. It is []any because that is what
// Where takes. Fields tagged filterField:"false", e.g. activeOn or limit,
// need their own query logic and are only part of setFields.
func GetURLFields(url *url.URL, filter any) (queryFields []any, setFields []string) {
	query := url.Query()
	t := reflect.Indirect(reflect.ValueOf(filter)).Type()

	for _, field := range reflect.VisibleFields(t) {
		param, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if param == "" || param == "-" || !query.Has(param) {
			continue
		}

		setFields = append(setFields, field.Name)
		if field.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, field.Name)
		}
	}

	return queryFields, setFields
}
