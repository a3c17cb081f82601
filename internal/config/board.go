package config

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// BoardParams is a custom board written in query form, as in
// "width=30&height=16&mines=99".
type BoardParams struct {
	Width  int `schema:"width,required"`
	Height int `schema:"height,required"`
	Mines  int `schema:"mines,required"`
}

func ParseBoard(s string) (BoardParams, error) {
	var p BoardParams
	query, err := url.ParseQuery(s)
	if err != nil {
		return p, fmt.Errorf("invalid board %q: %w", s, err)
	}
	if err := decoder.Decode(&p, query); err != nil {
		return p, fmt.Errorf("invalid board %q: %w", s, err)
	}
	return p, nil
}

func (p BoardParams) Difficulty() Difficulty {
	return Difficulty{Name: "Custom", Width: p.Width, Height: p.Height, Mines: p.Mines}
}
