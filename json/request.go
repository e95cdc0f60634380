package json

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/scribe"
)

// requestDTO is the JSON representation of a BlogRequest. Numeric fields are
// pointers so absent values take the form defaults.
type requestDTO struct {
	Title      string `json:"title"`
	Keywords   string `json:"keywords,omitempty"`
	WordCount  *int   `json:"word_count,omitempty"`
	ImageCount *int   `json:"image_count,omitempty"`
	Model      string `json:"model,omitempty"`
}

func marshalRequest(r scribe.BlogRequest) requestDTO {
	wc, ic := r.WordCount, r.ImageCount
	return requestDTO{
		Title:      r.Title,
		Keywords:   r.Keywords,
		WordCount:  &wc,
		ImageCount: &ic,
		Model:      r.Model,
	}
}

func unmarshalRequest(dto requestDTO) scribe.BlogRequest {
	req := scribe.NewBlogRequest()
	req.Title = dto.Title
	req.Keywords = dto.Keywords
	req.Model = dto.Model
	if dto.WordCount != nil {
		req.WordCount = *dto.WordCount
	}
	if dto.ImageCount != nil {
		req.ImageCount = *dto.ImageCount
	}
	return req
}

// UnmarshalRequest deserializes a request file. Missing counts take the
// form defaults; the result is not validated.
func UnmarshalRequest(data []byte) (scribe.BlogRequest, error) {
	var dto requestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return scribe.BlogRequest{}, fmt.Errorf("unmarshal request: %w", err)
	}
	return unmarshalRequest(dto), nil
}

// LoadRequest reads a request from a JSON file.
func LoadRequest(path string) (scribe.BlogRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scribe.BlogRequest{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalRequest(data)
}
