package dto

import (
	"reflect"
	"testing"
)

type validator interface {
	Validate() []string
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		req     validator
		missing []string
	}{
		{
			name:    "blog empty",
			req:     &BlogRequest{},
			missing: []string{"title", "slug", "content"},
		},
		{
			name:    "blog whitespace only",
			req:     &BlogRequest{Title: "  ", Slug: "\t", Content: "x"},
			missing: []string{"title", "slug"},
		},
		{
			name:    "product empty",
			req:     &ProductRequest{},
			missing: []string{"name", "description"},
		},
		{
			name:    "qna empty",
			req:     &QnARequest{},
			missing: []string{"question", "answer"},
		},
		{
			name:    "award empty",
			req:     &AwardRequest{},
			missing: []string{"title", "issuer"},
		},
		{
			name:    "media empty",
			req:     &MediaRequest{},
			missing: []string{"title", "link_url"},
		},
		{
			name:    "inquiry empty",
			req:     &InquiryRequest{},
			missing: []string{"name", "email", "message"},
		},
		{
			name:    "application empty",
			req:     &ApplicationRequest{},
			missing: []string{"name", "email", "role"},
		},
		{
			name:    "subscriber empty",
			req:     &SubscriberRequest{},
			missing: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.Validate()
			if !reflect.DeepEqual(got, tt.missing) {
				t.Errorf("Validate() = %v, want %v", got, tt.missing)
			}
		})
	}
}

func TestValidate_AllFieldsPresent(t *testing.T) {
	tests := []struct {
		name string
		req  validator
	}{
		{"blog", &BlogRequest{Title: "t", Slug: "s", Content: "c"}},
		{"product", &ProductRequest{Name: "n", Description: "d"}},
		{"qna", &QnARequest{Question: "q", Answer: "a"}},
		{"award", &AwardRequest{Title: "t", Issuer: "i"}},
		{"media", &MediaRequest{Title: "t", LinkURL: "https://example.com"}},
		{"inquiry", &InquiryRequest{Name: "n", Email: "e@x.com", Message: "m"}},
		{"application", &ApplicationRequest{Name: "n", Email: "e@x.com", Role: "r"}},
		{"subscriber", &SubscriberRequest{Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if missing := tt.req.Validate(); len(missing) != 0 {
				t.Errorf("Validate() = %v, want no missing fields", missing)
			}
		})
	}
}
