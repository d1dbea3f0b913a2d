package service

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseSearchForm_Trims(t *testing.T) {
	f := ParseSearchForm("  creamy pasta ", "\tItalian\n", " 30 ")
	if f.Query != "creamy pasta" || f.Cuisine != "Italian" || f.MaxReadyTime != "30" {
		t.Errorf("ParseSearchForm = %+v, want trimmed fields", f)
	}
}

func TestSearchForm_OmitsEmptyFields(t *testing.T) {
	tests := []struct {
		name                          string
		query, cuisine, maxReadyTime string
		want                          url.Values
	}{
		{"all set", "pasta", "Italian", "30", url.Values{"query": {"pasta"}, "cuisine": {"Italian"}, "maxReadyTime": {"30"}}},
		{"query only", "pasta", "", "", url.Values{"query": {"pasta"}}},
		{"cuisine only", " ", "Thai", "  ", url.Values{"cuisine": {"Thai"}}},
		{"time only", "", "", "15", url.Values{"maxReadyTime": {"15"}}},
		{"whitespace everywhere", "   ", "\t", "\n", url.Values{}},
		{"time is not parsed", "", "", "abc", url.Values{"maxReadyTime": {"abc"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSearchForm(tt.query, tt.cuisine, tt.maxReadyTime).Values()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Values() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSearchForm_IsEmpty(t *testing.T) {
	if !ParseSearchForm(" ", "", "\t").IsEmpty() {
		t.Error("whitespace-only form should be empty")
	}
	if ParseSearchForm("", "", "10").IsEmpty() {
		t.Error("form with maxReadyTime should not be empty")
	}
}

func TestSearchForm_Encode(t *testing.T) {
	got := ParseSearchForm("mac & cheese", "", "20").Encode()
	want := "maxReadyTime=20&query=mac+%26+cheese"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestParseSearchValues(t *testing.T) {
	v := url.Values{"query": {" soup "}, "cuisine": {""}, "other": {"x"}}
	f := ParseSearchValues(v)
	if f != (SearchForm{Query: "soup"}) {
		t.Errorf("ParseSearchValues = %+v", f)
	}
}

func TestSearchForm_Params(t *testing.T) {
	p := ParseSearchForm("pasta", "", "30").Params(40, 20)
	if p.Query != "pasta" || p.Cuisine != "" || p.MaxReadyTime != "30" || p.Offset != 40 || p.Number != 20 {
		t.Errorf("Params = %+v", p)
	}
}

func TestSearchForm_Criteria(t *testing.T) {
	got := ParseSearchForm("pasta", "Italian", "30").Criteria()
	want := []string{`"pasta"`, "Italian cuisine", "under 30 minutes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Criteria() = %v, want %v", got, want)
	}
	if c := (SearchForm{}).Criteria(); len(c) != 0 {
		t.Errorf("empty form criteria = %v, want none", c)
	}
}
