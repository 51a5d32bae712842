package output

import (
	"encoding/json"

	"github.com/loansim/loansim/internal/domain"
)

// JSONFormatter formats search results as JSON for downstream tooling.
type JSONFormatter struct {
	Pretty bool
}

func (jf *JSONFormatter) Name() string { return "json" }

// Format generates JSON output for a search result.
func (jf *JSONFormatter) Format(result *domain.SearchResult) (string, error) {
	var (
		data []byte
		err  error
	)
	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
