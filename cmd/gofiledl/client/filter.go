package client

import (
	"errors"

	"github.com/Knetic/govaluate"
	"github.com/OnitiFR/gofiledl/common"
	"github.com/m-mizutani/goerr/v2"
)

// ErrFilterResult is returned when a filter does not evaluate to a boolean
var ErrFilterResult = errors.New("filter expression must return a boolean")

// Filter selects entries of a listing using an expression, ex:
// size_MB < 100 && name =~ '\.mkv$'
type Filter struct {
	Original string
	expr     *govaluate.EvaluableExpression
}

// NewFilter parses expression and checks it against a sample entry
func NewFilter(expression string) (*Filter, error) {
	expr, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return nil, goerr.Wrap(err, "error in filter expression", goerr.V("filter", expression))
	}

	filter := &Filter{
		Original: expression,
		expr:     expr,
	}

	_, err = filter.Match(common.FileEntry{RemoteID: "id", Name: "sample", Size: 1})
	if err != nil {
		return nil, err
	}

	return filter, nil
}

// Match returns true if entry is selected by the filter
func (f *Filter) Match(entry common.FileEntry) (bool, error) {
	params := make(map[string]interface{})

	params["id"] = entry.RemoteID
	params["name"] = entry.Name
	params["size"] = float64(entry.Size)
	params["size_KB"] = float64(entry.Size) / 1024
	params["size_MB"] = float64(entry.Size) / 1024 / 1024
	params["size_GB"] = float64(entry.Size) / 1024 / 1024 / 1024

	res, err := f.expr.Evaluate(params)
	if err != nil {
		return false, goerr.Wrap(err, "error in filter expression", goerr.V("filter", f.Original))
	}

	match, ok := res.(bool)
	if !ok {
		return false, goerr.Wrap(ErrFilterResult, "invalid filter", goerr.V("filter", f.Original))
	}

	return match, nil
}
